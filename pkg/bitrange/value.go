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

import (
	"fmt"
	"strings"
)

// Value is a storage word which has been validated against a layout.  Values
// are created with Layout.From or Layout.Default, and subsequently mutated
// only through field setters.
type Value[T Unsigned] struct {
	layout *Layout[T]
	bits   T
}

// Layout returns the layout of this value.
func (v Value[T]) Layout() *Layout[T] {
	return v.layout
}

// Bits returns the underlying storage word.
func (v Value[T]) Bits() T {
	return v.bits
}

// Get returns the value of a given field.  This panics if the field does not
// belong to the layout of this value.
func (v Value[T]) Get(field Accessor[T]) T {
	v.checkAccessor(field)
	//
	return field.Get(v.bits)
}

// Set assigns a given field, truncating the value as necessary.  Bits outside
// the field (and hence all fixed bits) are unchanged.  This panics if the field
// does not belong to the layout of this value, since its mask could then cover
// fixed bits.
func (v *Value[T]) Set(field Accessor[T], value T) {
	v.checkAccessor(field)
	//
	v.bits = field.Set(v.bits, value)
}

func (v Value[T]) checkAccessor(field Accessor[T]) {
	switch {
	case field.layout == v.layout:
		return
	case v.layout == nil:
		panic(fmt.Sprintf("accessor for token '%c' used with uninitialised value", field.token))
	default:
		panic(fmt.Sprintf("accessor for token '%c' used with value of layout %s", field.token, v.layout.name))
	}
}

func (v Value[T]) String() string {
	var builder strings.Builder
	//
	if v.layout == nil {
		return fmt.Sprintf("{%#x}", uint64(v.bits))
	}
	//
	builder.WriteString(v.layout.name)
	builder.WriteString("{")
	//
	for i, acc := range v.layout.Accessors() {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		fmt.Fprintf(&builder, "%c: %#x", acc.token, uint64(acc.Get(v.bits)))
	}
	//
	builder.WriteString("}")
	//
	return builder.String()
}
