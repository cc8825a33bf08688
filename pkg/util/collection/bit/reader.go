// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package bit

// Reader provides a mechanism for reading words of bits from a given array of
// bytes, where the most significant bits are read first.  For example, the
// sequence of bytes [0x9f,0x05] is viewed as the following bit sequence:
//
// | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 || 8 | 9 | A | B | C | D | E | F |
// +===+===+===+===+===+===+===+===++===+===+===+===+===+===+===+===+
// | 1 | 0 | 0 | 1 | 1 | 1 | 1 | 1 || 0 | 0 | 0 | 0 | 0 | 1 | 0 | 1 |
// |   |   |   |   |
// | 1 | 0 | 0 | 1 |
//
// The above illustrates the outcome from reading 4 bits.  In such case, the
// value 0b1001 is returned.  Reading whole bytes at a time therefore decodes
// big-endian words.
type Reader struct {
	bitoffset uint
	bytes     []byte
}

// NewReader constructs a new bit reader.
func NewReader(bytes []byte) Reader {
	return Reader{0, bytes}
}

// Remaining returns the remaining number of bits which can be read.
func (p *Reader) Remaining() uint {
	var n = uint(len(p.bytes) * 8)
	//
	return n - p.bitoffset
}

// Offset returns the number of bits read so far.
func (p *Reader) Offset() uint {
	return p.bitoffset
}

// Read the next nbits (at most 64) from the underlying array, returning false
// if insufficient bits remain.  In such case, nothing is consumed.
func (p *Reader) Read(nbits uint) (uint64, bool) {
	var word uint64
	//
	if nbits > 64 || nbits > p.Remaining() {
		return 0, false
	}
	//
	for i := uint(0); i < nbits; i++ {
		var (
			offset = p.bitoffset + i
			b      = p.bytes[offset/8] >> (7 - offset%8)
		)
		//
		word = (word << 1) | uint64(b&1)
	}
	//
	p.bitoffset += nbits
	//
	return word, true
}
