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

import "github.com/consensys/go-bitrange/pkg/util/source"

// Token is a span of the input tagged with the kind of item it holds.
type Token struct {
	Kind uint
	Span source.Span
}

// Rule tags each run of items accepted by its scanner.
type Rule[T any] struct {
	scanner Scanner[T]
	tag     uint
}

// Match constructs a rule tagging the items accepted by a given scanner.
func Match[T any](scanner Scanner[T], tag uint) Rule[T] {
	return Rule[T]{scanner, tag}
}

// Tokenise splits an input sequence into tokens.  At each position the rules
// are tried in order, and the first accepting one or more items gives the next
// token.  A rule accepting the empty remainder (such as Eof) gives a final
// token of zero width.  Tokenising stops at the end of the input, or where no
// rule applies, and the position reached is returned with the tokens.  Hence,
// the input was tokenised entirely when this position equals its length.
func Tokenise[T any](input []T, rules ...Rule[T]) ([]Token, uint) {
	var (
		tokens []Token
		index  int
	)
	//
	for index <= len(input) {
		token, ok := match(input, index, rules)
		if !ok {
			break
		}
		//
		tokens = append(tokens, token)
		//
		if index == len(input) {
			// End of input
			break
		}
		//
		index = token.Span.End()
	}
	//
	return tokens, uint(index)
}

// Find the first rule matching at a given position.
func match[T any](input []T, index int, rules []Rule[T]) (Token, bool) {
	for _, r := range rules {
		if n := r.scanner(input[index:]); n > 0 {
			end := min(len(input), index+int(n))
			return Token{r.tag, source.NewSpan(index, end)}, true
		}
	}
	//
	return Token{}, false
}
