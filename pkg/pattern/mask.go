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
package pattern

// Mask returns the integer with a bit set at every position of a given token.
// Canonical index i corresponds to bit Len()-1-i, so the first character of
// a pattern is its most significant bit.
func Mask(p *Pattern, token rune) (uint64, error) {
	positions, ok := p.positions[token]
	if !ok {
		return 0, unknownToken(p.original, token)
	}
	//
	var mask uint64
	for i := range positions.All() {
		mask |= uint64(1) << (p.Len() - 1 - i)
	}
	//
	return mask, nil
}

// Offset returns the right shift which aligns the least significant bit of a
// given token with bit 0.  This is determined solely by the last (i.e. least
// significant) occurrence of the token, so the high groups of a token split
// across the pattern are not repacked.
func Offset(p *Pattern, token rune) (uint, error) {
	positions, ok := p.positions[token]
	if !ok {
		return 0, unknownToken(p.original, token)
	}
	// Sets in the positions map are never empty.
	last, _ := positions.Max()
	//
	return p.Len() - last - 1, nil
}

// Width returns the number of bits occupied by a given token.
func Width(p *Pattern, token rune) (uint, error) {
	positions, ok := p.positions[token]
	if !ok {
		return 0, unknownToken(p.original, token)
	}
	//
	return positions.Count(), nil
}

// Contiguous determines whether a given token occupies a single run of
// adjacent bits.
func Contiguous(p *Pattern, token rune) (bool, error) {
	positions, ok := p.positions[token]
	if !ok {
		return false, unknownToken(p.original, token)
	}
	//
	first, _ := positions.Min()
	last, _ := positions.Max()
	//
	return last-first+1 == positions.Count(), nil
}
