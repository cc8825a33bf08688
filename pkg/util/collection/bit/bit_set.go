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
	"iter"
	"math/bits"
	"slices"
)

// Set provides a straightforward bitset implementation. That is, a set of
// (unsigned) integer values implemented as an array of bits.  Sets are used to
// record the canonical indices at which a given token occurs in a pattern.
type Set struct {
	words []uint64
}

// Clone creates a true copy of this bitset which ensures no aliasing between
// this set and the result.
func (p *Set) Clone() Set {
	return Set{slices.Clone(p.words)}
}

// Insert a given value into this set.
func (p *Set) Insert(val uint) {
	word := val / 64
	bit := val % 64
	//
	for uint(len(p.words)) <= word {
		p.words = append(p.words, 0)
	}
	// Set bit
	mask := uint64(1) << bit
	p.words[word] = p.words[word] | mask
}

// Count returns the number of bits in the bitset which are set to one.
func (p *Set) Count() uint {
	count := 0
	//
	for _, word := range p.words {
		count += bits.OnesCount64(word)
	}
	//
	return uint(count)
}

// Max returns the largest element of this set, or false if the set is empty.
func (p *Set) Max() (uint, bool) {
	for w := len(p.words) - 1; w >= 0; w-- {
		if word := p.words[w]; word != 0 {
			return uint(w*64+bits.Len64(word)) - 1, true
		}
	}
	//
	return 0, false
}

// Min returns the smallest element of this set, or false if the set is empty.
func (p *Set) Min() (uint, bool) {
	for w, word := range p.words {
		if word != 0 {
			return uint(w*64 + bits.TrailingZeros64(word)), true
		}
	}
	//
	return 0, false
}

// All returns an iterator over the elements of this set in ascending order.
func (p *Set) All() iter.Seq[uint] {
	return func(yield func(uint) bool) {
		for w, word := range p.words {
			for word != 0 {
				bit := uint(bits.TrailingZeros64(word))
				//
				if !yield(uint(w*64) + bit) {
					return
				}
				// clear lowest bit
				word &= word - 1
			}
		}
	}
}
