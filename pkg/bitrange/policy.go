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

// Policy determines how a mismatch between storage bits and the fixed bits of
// a layout is surfaced.  Exactly one policy is compiled into a given build,
// selected with the bitrange_failfast build tag.
type Policy uint8

const (
	// Recoverable returns mismatches to the caller as *MismatchError values.
	Recoverable Policy = iota
	// FailFast panics on a mismatch.
	FailFast
)

func (p Policy) String() string {
	if p == FailFast {
		return "fail-fast"
	}
	//
	return "recoverable"
}

// Check determines whether the fixed bits of a storage word hold their
// expected values, i.e. whether bits & defaultMask == defaultValue.  This is
// the single point at which bitfield values are validated.  On a mismatch the
// outcome depends upon the ActivePolicy.
func Check[T Unsigned](bits T, defaultMask T, defaultValue T) error {
	if provided := bits & defaultMask; provided != defaultValue {
		return mismatch(&MismatchError[T]{defaultValue, provided})
	}
	//
	return nil
}
