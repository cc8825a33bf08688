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

import "fmt"

// MismatchError reports storage bits which disagree with the fixed bits of a
// layout.
type MismatchError[T Unsigned] struct {
	// Expected value of the fixed bits (i.e. the default value).
	Expected T
	// Provided value of the fixed bits (i.e. bits & default mask).
	Provided T
}

func (e *MismatchError[T]) Error() string {
	w := int(BitWidth[T]()+3) / 4
	//
	return fmt.Sprintf("invalid bits: expected 0x%0*x, provided 0x%0*x", w, uint64(e.Expected), w,
		uint64(e.Provided))
}
