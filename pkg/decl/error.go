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

import "fmt"

// Part identifies the component of a declaration on which an error arose.
type Part uint8

const (
	// NamePart is the name of the declared type.
	NamePart Part = iota
	// StoragePart is the storage type.
	StoragePart
	// PatternPart is the pattern.
	PatternPart
	// TokenPart is the token of a field.
	TokenPart
	// GetterPart is the getter name of a field.
	GetterPart
	// SetterPart is the setter name of a field.
	SetterPart
)

// Error is a declaration-time error.  A declaration which fails to compile
// yields no bitfield type at all.
type Error struct {
	decl  string
	field int
	part  Part
	msg   string
	cause error
}

func errorAt(decl string, field int, part Part, cause error, format string, args ...any) *Error {
	return &Error{decl, field, part, fmt.Sprintf(format, args...), cause}
}

// Decl returns the name of the declaration on which this error arose.
func (e *Error) Decl() string {
	return e.decl
}

// Field returns the index of the field on which this error arose, or -1 if
// the error does not concern a specific field.
func (e *Error) Field() int {
	return e.field
}

// Part returns the component of the declaration on which this error arose.
func (e *Error) Part() Part {
	return e.part
}

// Message returns the message to be reported.
func (e *Error) Message() string {
	return e.msg
}

func (e *Error) Error() string {
	if e.decl == "" {
		return e.msg
	}
	//
	return fmt.Sprintf("%s: %s", e.decl, e.msg)
}

// Unwrap returns the underlying cause of this error (if any), such as a
// pattern error.
func (e *Error) Unwrap() error {
	return e.cause
}
