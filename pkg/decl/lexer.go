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
package decl

import (
	"slices"

	"github.com/consensys/go-bitrange/pkg/util/source"
	"github.com/consensys/go-bitrange/pkg/util/source/lex"
)

// END_OF signals "end of file"
const END_OF uint = 0

// WHITESPACE signals whitespace
const WHITESPACE uint = 1

// COMMENT signals "// ... \n"
const COMMENT uint = 2

// LCURLY signals "{"
const LCURLY uint = 3

// RCURLY signals "}"
const RCURLY uint = 4

// COMMA signals ","
const COMMA uint = 5

// COLON signals ":"
const COLON uint = 6

// PATTERN signals a bracketed pattern, e.g. "[aaa_bbbb]"
const PATTERN uint = 7

// STRING signals a quoted string
const STRING uint = 8

// IDENTIFIER signals a name
const IDENTIFIER uint = 9

// Rule for describing whitespace
var whitespace lex.Scanner[rune] = lex.Many(lex.Space())

var identifierStart lex.Scanner[rune] = lex.Or(
	lex.Unit('_'),
	lex.Letter())

var identifierRest lex.Scanner[rune] = lex.Many(lex.Or(
	lex.Unit('_'),
	lex.Within('0', '9'),
	lex.Letter()))

// Rule for describing identifiers.  Observe that patterns starting with a
// letter also lex as identifiers (e.g. aaa1_0bbb), but they are only
// permitted when enclosed.
var identifier lex.Scanner[rune] = lex.SequenceNullableLast(identifierStart, identifierRest)

// Comments start with '//' and continue until a newline or EOF.
var comment lex.Scanner[rune] = lex.SequenceNullableLast(lex.Unit('/', '/'), lex.Until('\n'))

// lexing rules
var rules []lex.Rule[rune] = []lex.Rule[rune]{
	lex.Match(comment, COMMENT),
	lex.Match(lex.Unit('{'), LCURLY),
	lex.Match(lex.Unit('}'), RCURLY),
	lex.Match(lex.Unit(','), COMMA),
	lex.Match(lex.Unit(':'), COLON),
	lex.Match(lex.Nested('[', ']'), PATTERN),
	lex.Match(lex.Delimited('"', '"'), STRING),
	lex.Match(whitespace, WHITESPACE),
	lex.Match(identifier, IDENTIFIER),
	lex.Match(lex.Eof[rune](), END_OF),
}

// Lex a given source file into a sequence of zero or more tokens, along with
// any syntax errors arising.
func Lex(srcfile *source.File) ([]lex.Token, []source.SyntaxError) {
	var (
		contents = srcfile.Contents()
		// Lex as many tokens as possible
		tokens, end = lex.Tokenise(contents, rules...)
	)
	// Check whether anything was left (if so this is an error)
	if n := uint(len(contents)); end != n {
		err := srcfile.SyntaxError(source.NewSpan(int(end), int(n)), "unknown text encountered")
		// errors
		return nil, []source.SyntaxError{*err}
	}
	// Remove any whitespace and comments
	tokens = slices.DeleteFunc(tokens, func(t lex.Token) bool {
		return t.Kind == WHITESPACE || t.Kind == COMMENT
	})
	// Done
	return tokens, nil
}
