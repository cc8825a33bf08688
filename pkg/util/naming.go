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
package util

import (
	"strings"
	"unicode"
)

// ToPascalCase converts a snake_case, kebab-case or camelCase name into a
// (Go exported) PascalCase name.  For example, "type_of_service" becomes
// "TypeOfService".
func ToPascalCase(name string) string {
	var builder strings.Builder
	//
	for _, w := range splitWords(name) {
		builder.WriteString(camelify(w, true))
	}
	//
	return builder.String()
}

// ToCamelCase capitalises each word, except the first.
func ToCamelCase(name string) string {
	var builder strings.Builder
	//
	for i, w := range splitWords(name) {
		builder.WriteString(camelify(w, i != 0))
	}
	//
	return builder.String()
}

// LowerFirst makes the first letter of a name lowercase, leaving the remainder
// untouched.  This turns an exported Go identifier into an unexported one.
func LowerFirst(name string) string {
	runes := []rune(name)
	if len(runes) > 0 {
		runes[0] = unicode.ToLower(runes[0])
	}
	//
	return string(runes)
}

// IsIdentifier determines whether a given name is a valid identifier, i.e. a
// letter or underscore followed by zero or more letters, digits or
// underscores.
func IsIdentifier(name string) bool {
	for i, r := range name {
		switch {
		case r == '_' || unicode.IsLetter(r):
			continue
		case i > 0 && unicode.IsDigit(r):
			continue
		default:
			return false
		}
	}
	//
	return name != ""
}

// Make all letters lowercase, and optionally capitalise the first letter.
func camelify(name string, first bool) string {
	runes := []rune(name)
	for i := range runes {
		if first && i == 0 {
			runes[i] = unicode.ToUpper(runes[i])
		} else {
			runes[i] = unicode.ToLower(runes[i])
		}
	}
	//
	return string(runes)
}

func splitWords(name string) []string {
	var words []string
	//
	for _, w1 := range strings.Split(name, "_") {
		for _, w2 := range strings.Split(w1, "-") {
			if w2 != "" {
				words = append(words, splitCaseChange(w2)...)
			}
		}
	}
	//
	return words
}

func splitCaseChange(word string) []string {
	var (
		runes = []rune(word)
		words []string
		last  bool = true
		start int
	)
	//
	for i, r := range runes {
		ith := unicode.IsUpper(r)
		if !last && ith {
			// case change
			words = append(words, string(runes[start:i]))
			start = i
		}

		last = ith
	}
	// Append whatever is left
	words = append(words, string(runes[start:]))
	//
	return words
}
