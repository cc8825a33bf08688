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
package pattern

import "fmt"

// ErrorKind classifies the errors arising from a pattern.
type ErrorKind uint

const (
	// Malformed indicates a pattern which is empty, cannot be isolated from
	// its surrounding syntax or contains unexpected characters.
	Malformed ErrorKind = iota
	// UnknownToken indicates a token which does not occur in a pattern.
	UnknownToken
)

func (k ErrorKind) String() string {
	switch k {
	case Malformed:
		return "malformed pattern"
	case UnknownToken:
		return "unknown token"
	default:
		return fmt.Sprintf("ErrorKind(%d)", uint(k))
	}
}

// Error is returned by pattern operations.  These only ever arise whilst a
// bitfield type is being declared.
type Error struct {
	kind ErrorKind
	// Pattern as written.
	pattern string
	// Message describing the problem.
	msg string
}

// Kind returns the classification of this error.
func (e *Error) Kind() ErrorKind {
	return e.kind
}

// Pattern returns the pattern (as written) on which this error arose.
func (e *Error) Pattern() string {
	return e.pattern
}

// Message returns the message to be reported.
func (e *Error) Message() string {
	return e.msg
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %q: %s", e.kind, e.pattern, e.msg)
}

// Is matches any error of the same kind, such that errors.Is(err,
// pattern.ErrUnknownToken) holds for every unknown token.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return t.kind == e.kind && t.pattern == "" && t.msg == ""
	}
	//
	return false
}

// ErrMalformed is a sentinel for use with errors.Is.
var ErrMalformed = &Error{kind: Malformed}

// ErrUnknownToken is a sentinel for use with errors.Is.
var ErrUnknownToken = &Error{kind: UnknownToken}

func malformed(pattern string, format string, args ...any) *Error {
	return &Error{Malformed, pattern, fmt.Sprintf(format, args...)}
}

func unknownToken(pattern string, token rune) *Error {
	return &Error{UnknownToken, pattern, fmt.Sprintf("no token %q", token)}
}
