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

// Writer is the counterpart of Reader, appending words of bits to a growing
// array of bytes with the most significant bits written first.  Any partially
// written final byte is padded with zeros.
type Writer struct {
	bitoffset uint
	bytes     []byte
}

// NewWriter constructs a new (empty) bit writer.
func NewWriter() *Writer {
	return &Writer{0, nil}
}

// Offset returns the number of bits written so far.
func (p *Writer) Offset() uint {
	return p.bitoffset
}

// Write the least significant nbits (at most 64) of a given word.
func (p *Writer) Write(nbits uint, word uint64) {
	if nbits > 64 {
		panic("cannot write more than 64 bits")
	}
	//
	for i := nbits; i > 0; i-- {
		var offset = p.bitoffset
		//
		if offset%8 == 0 {
			p.bytes = append(p.bytes, 0)
		}
		//
		if (word>>(i-1))&1 == 1 {
			p.bytes[offset/8] |= 1 << (7 - offset%8)
		}
		//
		p.bitoffset++
	}
}

// Bytes returns the bytes written so far.
func (p *Writer) Bytes() []byte {
	return p.bytes
}
