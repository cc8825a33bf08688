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

// Package decl provides declarations of bitfield types.  A declaration names
// a type, its storage width, the pattern describing its layout and the
// accessors to be generated for its fields.  Declarations are read from
// ".bitrange" files, written in a small declaration language, or from YAML
// files.
package decl

import (
	"fmt"
	"strings"

	"github.com/consensys/go-bitrange/pkg/util"
)

// Field requests accessors for a single token of a pattern.
type Field struct {
	// Pattern character whose bits make up this field.
	Token rune
	// Name of the getter to generate.
	Getter string
	// Name of the setter to generate (if any).
	Setter util.Option[string]
}

// Definition is an (as yet unchecked) declaration of a bitfield type.
type Definition struct {
	// Name of the type being declared.
	Name string
	// Number of bits in the underlying storage type.
	Storage uint
	// Pattern describing the layout, without enclosing delimiters.
	Pattern string
	// Fields for which accessors are generated.
	Fields []Field
}

func (s Definition) String() string {
	var builder strings.Builder
	//
	fmt.Fprintf(&builder, "bitrange { %s: u%d, [%s]", s.Name, s.Storage, s.Pattern)
	//
	for _, f := range s.Fields {
		fmt.Fprintf(&builder, ", %c: %s", f.Token, f.Getter)
		//
		if f.Setter.HasValue() {
			fmt.Fprintf(&builder, " %s", f.Setter.Unwrap())
		}
	}
	//
	builder.WriteString(" }")
	//
	return builder.String()
}

// ParseStorage converts the name of an unsigned storage type (e.g. "u32",
// "uint32" or simply "32") into its width in bits.
func ParseStorage(name string) (uint, bool) {
	switch strings.TrimPrefix(strings.TrimPrefix(name, "uint"), "u") {
	case "8":
		return 8, true
	case "16":
		return 16, true
	case "32":
		return 32, true
	case "64":
		return 64, true
	default:
		return 0, false
	}
}
