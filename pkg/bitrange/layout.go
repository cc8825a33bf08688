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
	"errors"
	"fmt"

	"github.com/consensys/go-bitrange/pkg/pattern"
)

// ErrTooWide indicates a pattern addressing more bits than its storage type
// holds.
var ErrTooWide = errors.New("pattern wider than storage")

// Layout is a compiled pattern over a given storage type.  All masks, offsets
// and defaults are determined once, when the layout is compiled, after which
// it is immutable and can be shared freely.
type Layout[T Unsigned] struct {
	name         string
	pattern      *pattern.Pattern
	defaultMask  T
	defaultValue T
	accessors    map[rune]Accessor[T]
}

// Compile a raw pattern into a layout over storage type T.
func Compile[T Unsigned](name string, raw string) (*Layout[T], error) {
	p, err := pattern.Parse(raw)
	if err != nil {
		return nil, err
	}
	//
	return FromPattern[T](name, p)
}

// MustCompile compiles a raw pattern into a layout, panicking if this fails.
// This is intended for layouts declared as package-level variables.
func MustCompile[T Unsigned](name string, raw string) *Layout[T] {
	layout, err := Compile[T](name, raw)
	if err != nil {
		panic(err)
	}
	//
	return layout
}

// FromPattern constructs a layout from an already parsed pattern.
func FromPattern[T Unsigned](name string, p *pattern.Pattern) (*Layout[T], error) {
	if p.Len() > BitWidth[T]() {
		return nil, fmt.Errorf("%s: %w (%d bits into %d)", name, ErrTooWide, p.Len(), BitWidth[T]())
	}
	//
	layout := &Layout[T]{
		name,
		p,
		T(pattern.DefaultMask(p)),
		T(pattern.DefaultValue(p)),
		make(map[rune]Accessor[T]),
	}
	//
	for _, token := range p.Tokens() {
		mask, err := pattern.Mask(p, token)
		if err != nil {
			return nil, err
		}
		//
		offset, err := pattern.Offset(p, token)
		if err != nil {
			return nil, err
		}
		//
		layout.accessors[token] = Accessor[T]{token, T(mask), offset, layout}
	}
	//
	return layout, nil
}

// Name returns the name given to this layout.
func (l *Layout[T]) Name() string {
	return l.name
}

// Pattern returns the pattern from which this layout was compiled.
func (l *Layout[T]) Pattern() *pattern.Pattern {
	return l.pattern
}

// DefaultMask returns the bits which are fixed by this layout.
func (l *Layout[T]) DefaultMask() T {
	return l.defaultMask
}

// DefaultValue returns the values of the fixed bits.
func (l *Layout[T]) DefaultValue() T {
	return l.defaultValue
}

// Accessor returns the precomputed accessor for a given token.
func (l *Layout[T]) Accessor(token rune) (Accessor[T], error) {
	if acc, ok := l.accessors[token]; ok {
		return acc, nil
	}
	// Reports the unknown token
	_, err := pattern.Mask(l.pattern, token)
	//
	return Accessor[T]{}, err
}

// Accessors returns the accessors of this layout, ordered by token.
func (l *Layout[T]) Accessors() []Accessor[T] {
	var accessors []Accessor[T]
	//
	for _, token := range l.pattern.Tokens() {
		accessors = append(accessors, l.accessors[token])
	}
	//
	return accessors
}

// From constructs a value from the given storage bits, provided they agree
// with the fixed bits of this layout.
func (l *Layout[T]) From(bits T) (Value[T], error) {
	if err := Check(bits, l.defaultMask, l.defaultValue); err != nil {
		return Value[T]{}, err
	}
	//
	return Value[T]{l, bits}, nil
}

// Default constructs the value whose fixed bits hold their expected values
// and whose fields are all zero.
func (l *Layout[T]) Default() Value[T] {
	return Value[T]{l, l.defaultValue}
}
