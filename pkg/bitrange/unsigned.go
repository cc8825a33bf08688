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

// Package bitrange provides named, validated accessors over the bits of a
// fixed-width unsigned integer, as described by a pattern.
package bitrange

import "math/bits"

// Unsigned captures the storage types over which a bitfield can be laid out.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// BitWidth returns the number of bits in a given storage type.
func BitWidth[T Unsigned]() uint {
	var ones T = ^T(0)
	//
	return uint(bits.Len64(uint64(ones)))
}
