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
package lex

import (
	"slices"
	"testing"

	"github.com/consensys/go-bitrange/pkg/util/source"
)

func TestLexer_00(t *testing.T) {
	var tokens = []Token{
		{END_OF, source.NewSpan(0, 0)},
	}

	checkLexer(t, "", 0, tokens...)
}

func TestLexer_01(t *testing.T) {
	var tokens = []Token{
		{LBRACE, source.NewSpan(0, 1)},
		{END_OF, source.NewSpan(1, 1)},
	}

	checkLexer(t, "[", 0, tokens...)
}

func TestLexer_02(t *testing.T) {
	var tokens = []Token{
		{LBRACE, source.NewSpan(0, 1)},
		{RBRACE, source.NewSpan(1, 2)},
		{END_OF, source.NewSpan(2, 2)},
	}

	checkLexer(t, "[]", 0, tokens...)
}

func TestLexer_03(t *testing.T) {
	var tokens = []Token{}

	checkLexer(t, "#", 1, tokens...)
}

func TestLexer_04(t *testing.T) {
	var tokens = []Token{
		{LBRACE, source.NewSpan(0, 1)},
		{WSPACE, source.NewSpan(1, 2)},
		{RBRACE, source.NewSpan(2, 3)},
		{END_OF, source.NewSpan(3, 3)},
	}

	checkLexer(t, "[ ]", 0, tokens...)
}

func TestLexer_05(t *testing.T) {
	var tokens = []Token{
		{IDENT, source.NewSpan(0, 1)},
		{END_OF, source.NewSpan(1, 1)},
	}

	checkLexer(t, "a", 0, tokens...)
}

func TestLexer_06(t *testing.T) {
	var tokens = []Token{
		{IDENT, source.NewSpan(0, 9)},
		{END_OF, source.NewSpan(9, 9)},
	}

	checkLexer(t, "aaa1_0bbb", 0, tokens...)
}

func TestLexer_07(t *testing.T) {
	var tokens = []Token{
		{LBRACE, source.NewSpan(0, 1)},
		{IDENT, source.NewSpan(1, 10)},
		{RBRACE, source.NewSpan(10, 11)},
		{END_OF, source.NewSpan(11, 11)},
	}

	checkLexer(t, "[aaa1_0bbb]", 0, tokens...)
}

func TestLexer_08(t *testing.T) {
	var tokens = []Token{
		{STRING, source.NewSpan(0, 6)},
		{WSPACE, source.NewSpan(6, 7)},
		{COMMENT, source.NewSpan(7, 11)},
		{WSPACE, source.NewSpan(11, 12)},
		{END_OF, source.NewSpan(12, 12)},
	}

	checkLexer(t, "\"aa_b\" // x\n", 0, tokens...)
}

func TestLexer_09(t *testing.T) {
	// unterminated strings are not matched
	var tokens = []Token{}

	checkLexer(t, "\"aa_b", 5, tokens...)
}

func TestLexer_10(t *testing.T) {
	var tokens = []Token{
		{NUMBER, source.NewSpan(0, 2)},
		{IDENT, source.NewSpan(2, 4)},
		{END_OF, source.NewSpan(4, 4)},
	}

	checkLexer(t, "12ab", 0, tokens...)
}

func TestLexer_11(t *testing.T) {
	// tokenising stops where no rule applies
	var tokens = []Token{
		{LBRACE, source.NewSpan(0, 1)},
		{WSPACE, source.NewSpan(1, 2)},
	}

	checkLexer(t, "[ #]", 2, tokens...)
}

func TestLexerNested(t *testing.T) {
	rule := Nested('[', ']')
	//
	for input, expected := range map[string]uint{
		"[a]":       3,
		"[[a]]":     5,
		"[[a]b]c":   6,
		"[a":        0,
		"[[a]":      0,
		"a]":        0,
		"[]":        2,
		"[a][b]":    3,
		"[[a][b]]]": 8,
	} {
		if n := rule([]rune(input)); n != expected {
			t.Errorf("%s: unexpected match of length %d (expected %d)", input, n, expected)
		}
	}
}

func TestLexerSequenceNullableLast(t *testing.T) {
	rule := SequenceNullableLast(Unit('a'), Many(Unit('b')))
	//
	if n := rule([]rune{'a'}); n != 1 {
		t.Errorf("unexpected match of length %d", n)
	}
	//
	if n := rule([]rune{'a', 'b', 'b', 'c'}); n != 3 {
		t.Errorf("unexpected match of length %d", n)
	}
	//
	if n := rule([]rune{'b'}); n != 0 {
		t.Errorf("unexpected match of length %d", n)
	}
}

// ==================================================================
// Framework
// ==================================================================

const END_OF uint = 0
const WSPACE uint = 1
const LBRACE uint = 2
const RBRACE uint = 3
const NUMBER uint = 4
const IDENT uint = 5
const STRING uint = 6
const COMMENT uint = 7

// Rule for describing whitespace
var whitespace Scanner[rune] = Many(Space())

// Rule for describing numbers
var number Scanner[rune] = Many(Within('0', '9'))

// Rule for describing identifiers
var identifier Scanner[rune] = SequenceNullableLast(
	Or(Letter(), Unit('_')),
	Many(Or(Letter(), Within('0', '9'), Unit('_'))))

// Rule for describing comments
var comment Scanner[rune] = SequenceNullableLast(Unit('/', '/'), Until('\n'))

// lexing rules
var rules []Rule[rune] = []Rule[rune]{
	Match(Unit('['), LBRACE),
	Match(Unit(']'), RBRACE),
	Match(comment, COMMENT),
	Match(Delimited('"', '"'), STRING),
	Match(whitespace, WSPACE),
	Match(number, NUMBER),
	Match(identifier, IDENT),
	Match(Eof[rune](), END_OF),
}

func checkLexer(t *testing.T, input string, remainder uint, expected ...Token) {
	items := []rune(input)
	// Apply lexer
	tokens, end := Tokenise(items, rules...)
	// Check what was matched
	if !slices.Equal(tokens, expected) {
		t.Errorf("got %v, expected %v", tokens, expected)
	} else if uint(len(items))-end != remainder {
		t.Errorf("unmatched items: %v", items[end:])
	}
}
