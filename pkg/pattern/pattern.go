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

// Package pattern compiles textual bit layouts, such as "aaaa_bbbb_cccccccc",
// into the positions of their tokens.  Characters are read from the most
// significant bit to the least; letters identify the bits of a field, the
// digits 0 and 1 fix a bit to that value, and anything else (typically '_')
// is a visual separator occupying no bit.
package pattern

import (
	"slices"
	"unicode"

	"github.com/consensys/go-bitrange/pkg/util/collection/bit"
)

// MaxWidth is the largest number of bits a pattern can address.
const MaxWidth = 64

// Pattern is an immutable, parsed bit layout.
type Pattern struct {
	original  string
	canonical []rune
	// Canonical indices of each token, counted from the most significant end.
	positions map[rune]bit.Set
	// Tokens in sorted order.
	tokens []rune
}

// Parse a raw pattern.  This fails if the pattern is empty once separators
// are removed, contains digits other than 0 or 1, or is wider than MaxWidth.
func Parse(raw string) (*Pattern, error) {
	var (
		canonical []rune
		positions = make(map[rune]bit.Set)
	)
	//
	for _, c := range raw {
		switch {
		case unicode.IsLetter(c):
			set := positions[c]
			set.Insert(uint(len(canonical)))
			positions[c] = set
		case c == '0' || c == '1':
			// literal bit
		case unicode.IsDigit(c):
			return nil, malformed(raw, "invalid literal bit '%c'", c)
		default:
			// separator
			continue
		}
		//
		canonical = append(canonical, c)
	}
	//
	if len(canonical) == 0 {
		return nil, malformed(raw, "empty pattern")
	} else if len(canonical) > MaxWidth {
		return nil, malformed(raw, "pattern has %d bits (max %d)", len(canonical), MaxWidth)
	}
	//
	tokens := make([]rune, 0, len(positions))
	for t := range positions {
		tokens = append(tokens, t)
	}
	//
	slices.Sort(tokens)
	//
	return &Pattern{raw, canonical, positions, tokens}, nil
}

// ParseDelimited parses a pattern which must be isolated from its surroundings
// by square brackets (which may be nested, as in "[[aaaa]]") or double quotes.
func ParseDelimited(raw string) (*Pattern, error) {
	inner, ok := Isolate(raw)
	if !ok {
		return nil, malformed(raw, "cannot isolate pattern (expected [...] or \"...\")")
	}
	//
	return Parse(inner)
}

// Isolate strips the square brackets (possibly nested) or double quotes
// enclosing a pattern, returning false if it is not so enclosed.
func Isolate(raw string) (string, bool) {
	var (
		text     = []rune(raw)
		brackets = false
	)
	//
	for enclosed(text) {
		text = text[1 : len(text)-1]
		brackets = true
	}
	//
	if brackets {
		return string(text), true
	} else if n := len(text); n >= 2 && text[0] == '"' && text[n-1] == '"' {
		return string(text[1 : n-1]), true
	}
	//
	return "", false
}

// Determine whether the first and last characters of some text form a
// matching pair of square brackets.
func enclosed(text []rune) bool {
	var depth = 0
	//
	if len(text) < 2 || text[0] != '[' {
		return false
	}
	//
	for i, c := range text {
		switch c {
		case '[':
			depth++
		case ']':
			depth--
		}
		//
		if depth == 0 {
			return i == len(text)-1
		}
	}
	//
	return false
}

// Original returns the pattern as written.
func (p *Pattern) Original() string {
	return p.original
}

// Canonical returns the pattern with all separators removed.
func (p *Pattern) Canonical() string {
	return string(p.canonical)
}

// Len returns the number of bits addressed by this pattern.
func (p *Pattern) Len() uint {
	return uint(len(p.canonical))
}

// At returns the canonical character at a given index.
func (p *Pattern) At(index uint) rune {
	return p.canonical[index]
}

// IsLiteral determines whether a given canonical index holds a fixed bit.
func (p *Pattern) IsLiteral(index uint) bool {
	c := p.canonical[index]
	return c == '0' || c == '1'
}

// Tokens returns the distinct tokens of this pattern in sorted order.
func (p *Pattern) Tokens() []rune {
	return slices.Clone(p.tokens)
}

// Has determines whether a given token occurs in this pattern.
func (p *Pattern) Has(token rune) bool {
	_, ok := p.positions[token]
	return ok
}

// Positions returns the canonical indices at which a given token occurs.
func (p *Pattern) Positions(token rune) (bit.Set, bool) {
	set, ok := p.positions[token]
	if !ok {
		return bit.Set{}, false
	}
	//
	return set.Clone(), true
}

// String returns the pattern as written.
func (p *Pattern) String() string {
	return p.original
}
