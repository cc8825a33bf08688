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
package bitrange

import "math/bits"

// Get extracts the bits of a field, shifted down so that its least
// significant bit lands at bit 0.
func Get[T Unsigned](bits T, mask T, offset uint) T {
	return (bits & mask) >> offset
}

// Set replaces the bits of a field with those of a given value, leaving all
// bits outside the field's mask untouched.  Bits of the value which do not fit
// in the field are silently discarded.
func Set[T Unsigned](bits T, value T, mask T, offset uint) T {
	return (bits &^ mask) | ((value << offset) & mask)
}

// Accessor holds the precomputed mask and offset of a single token within a
// layout.
type Accessor[T Unsigned] struct {
	token  rune
	mask   T
	offset uint
	// Layout from which this accessor was obtained.
	layout *Layout[T]
}

// Token returns the pattern character identifying this field.
func (p Accessor[T]) Token() rune {
	return p.token
}

// Mask returns the bits occupied by this field within the storage word.
func (p Accessor[T]) Mask() T {
	return p.mask
}

// Offset returns the right shift aligning this field with bit 0.
func (p Accessor[T]) Offset() uint {
	return p.offset
}

// Width returns the number of bits occupied by this field.
func (p Accessor[T]) Width() uint {
	return uint(bits.OnesCount64(uint64(p.mask)))
}

// Get extracts this field from a given storage word.
func (p Accessor[T]) Get(bits T) T {
	return Get(bits, p.mask, p.offset)
}

// Set writes a given value into this field of a storage word, truncating it
// as necessary.
func (p Accessor[T]) Set(bits T, value T) T {
	return Set(bits, value, p.mask, p.offset)
}

// Fits determines whether a given value survives Set unchanged, i.e. whether
// reading it back after writing gives the same value.
func (p Accessor[T]) Fits(value T) bool {
	return value&^(p.mask>>p.offset) == 0
}
