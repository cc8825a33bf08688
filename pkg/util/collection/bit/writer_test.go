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

import (
	"bytes"
	"testing"
)

func Test_Writer_00(t *testing.T) {
	checkWriter(t, []uint{8}, []uint64{159}, []byte{159})
}

func Test_Writer_01(t *testing.T) {
	checkWriter(t, []uint{32}, []uint64{0x025c44d8}, []byte{0x02, 0x5c, 0x44, 0xd8})
}

func Test_Writer_02(t *testing.T) {
	checkWriter(t, []uint{4, 4}, []uint64{0b1001, 0b1111}, []byte{0x9f})
}

func Test_Writer_03(t *testing.T) {
	// Partial final byte is padded
	checkWriter(t, []uint{4, 8}, []uint64{0b1001, 0xf0}, []byte{0x9f, 0x00})
}

func Test_Writer_04(t *testing.T) {
	// Higher bits are ignored
	checkWriter(t, []uint{3}, []uint64{0xff}, []byte{0xe0})
}

func Test_Writer_05(t *testing.T) {
	checkWriter(t, []uint{64}, []uint64{0x0102030405060708}, []byte{1, 2, 3, 4, 5, 6, 7, 8})
}

func Test_Writer_Reader_00(t *testing.T) {
	var (
		writer = NewWriter()
		widths = []uint{3, 13, 16, 1, 31, 64}
		words  = []uint64{5, 0x1abc, 0xffff, 0, 0x7fff0001, 0xdeadbeefcafef00d}
	)
	//
	for i, w := range widths {
		writer.Write(w, words[i])
	}
	//
	reader := NewReader(writer.Bytes())
	//
	for i, w := range widths {
		if actual, ok := reader.Read(w); !ok || actual != words[i] {
			t.Errorf("word %d: got %x, expected %x", i, actual, words[i])
		}
	}
}

func checkWriter(t *testing.T, widths []uint, words []uint64, expected []byte) {
	var (
		writer = NewWriter()
		nbits  uint
	)
	//
	for i, w := range widths {
		writer.Write(w, words[i])
		nbits += w
	}
	//
	if !bytes.Equal(writer.Bytes(), expected) {
		t.Errorf("got %x, expected %x", writer.Bytes(), expected)
	} else if writer.Offset() != nbits {
		t.Errorf("got offset %d, expected %d", writer.Offset(), nbits)
	}
}
