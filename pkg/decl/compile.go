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
	"go/token"

	"github.com/consensys/go-bitrange/pkg/bitrange"
	"github.com/consensys/go-bitrange/pkg/pattern"
	"github.com/consensys/go-bitrange/pkg/util"
)

// Names of methods present on every generated type.
var reservedNames = []string{"Bits", "String"}

// Accessor is a field of a compiled declaration, along with the mask and
// offset of its bits.
type Accessor struct {
	Field
	// Bits occupied by this field.
	Mask uint64
	// Right shift aligning this field with bit 0.
	Offset uint
	// Number of bits occupied by this field.
	Width uint
	// Indicates whether the bits of this field are adjacent.  If not, only the
	// least significant group is aligned with bit 0.
	Contiguous bool
}

// Declaration is a checked declaration of a bitfield type.
type Declaration struct {
	def          Definition
	pattern      *pattern.Pattern
	defaultMask  uint64
	defaultValue uint64
	accessors    []Accessor
}

// Compile checks a given declaration and computes the masks, offsets and
// defaults needed for its accessors.  Specifically, the declared names must be
// valid identifiers, the storage must be 8, 16, 32 or 64 bits wide, the
// pattern must fit within the storage, every field token must occur in the
// pattern (and be declared at most once), and accessor names must be distinct
// from each other and from those of the generated methods.  Tokens for which no
// field is declared are permitted, and simply have no accessors.
func Compile(def Definition) (*Declaration, error) {
	var (
		tokens = make(map[rune]bool)
		names  = make(map[string]bool)
	)
	//
	if !util.IsIdentifier(def.Name) || token.IsKeyword(def.Name) {
		return nil, errorAt(def.Name, -1, NamePart, nil, "invalid name %q", def.Name)
	} else if !validStorage(def.Storage) {
		return nil, errorAt(def.Name, -1, StoragePart, nil, "invalid storage width %d (expected 8, 16, 32 or 64)",
			def.Storage)
	}
	//
	p, err := pattern.Parse(def.Pattern)
	if err != nil {
		return nil, errorAt(def.Name, -1, PatternPart, err, "%s", err.Error())
	} else if p.Len() > def.Storage {
		return nil, errorAt(def.Name, -1, PatternPart, bitrange.ErrTooWide, "pattern has %d bits, exceeding u%d storage",
			p.Len(), def.Storage)
	}
	//
	for _, name := range reservedNames {
		names[name] = true
	}
	//
	accessors := make([]Accessor, len(def.Fields))
	//
	for i, field := range def.Fields {
		if tokens[field.Token] {
			return nil, errorAt(def.Name, i, TokenPart, nil, "token '%c' declared twice", field.Token)
		} else if !p.Has(field.Token) {
			// Reports the unknown token
			_, err := pattern.Mask(p, field.Token)
			return nil, errorAt(def.Name, i, TokenPart, err, "token '%c' not found in pattern %q", field.Token,
				def.Pattern)
		} else if err := checkName(def.Name, i, GetterPart, field.Getter, names); err != nil {
			return nil, err
		} else if field.Setter.HasValue() {
			if err := checkName(def.Name, i, SetterPart, field.Setter.Unwrap(), names); err != nil {
				return nil, err
			}
		}
		//
		tokens[field.Token] = true
		accessors[i] = compileField(p, field)
	}
	//
	return &Declaration{def, p, pattern.DefaultMask(p), pattern.DefaultValue(p), accessors}, nil
}

func validStorage(width uint) bool {
	switch width {
	case 8, 16, 32, 64:
		return true
	default:
		return false
	}
}

func checkName(decl string, field int, part Part, name string, names map[string]bool) *Error {
	exported := util.ToPascalCase(name)
	//
	if !util.IsIdentifier(name) || exported == "" {
		return errorAt(decl, field, part, nil, "invalid accessor name %q", name)
	} else if names[exported] {
		return errorAt(decl, field, part, nil, "accessor name %q clashes with %s", name, exported)
	}
	//
	names[exported] = true
	//
	return nil
}

func compileField(p *pattern.Pattern, field Field) Accessor {
	// Token is known to be present, hence these cannot fail.
	mask, _ := pattern.Mask(p, field.Token)
	offset, _ := pattern.Offset(p, field.Token)
	width, _ := pattern.Width(p, field.Token)
	contiguous, _ := pattern.Contiguous(p, field.Token)
	//
	return Accessor{field, mask, offset, width, contiguous}
}

// Name returns the name of the declared type.
func (d *Declaration) Name() string {
	return d.def.Name
}

// Storage returns the number of bits in the storage type.
func (d *Declaration) Storage() uint {
	return d.def.Storage
}

// Definition returns the declaration as written.
func (d *Declaration) Definition() Definition {
	return d.def
}

// Pattern returns the parsed pattern of this declaration.
func (d *Declaration) Pattern() *pattern.Pattern {
	return d.pattern
}

// DefaultMask returns the bits fixed by the pattern.
func (d *Declaration) DefaultMask() uint64 {
	return d.defaultMask
}

// DefaultValue returns the values of the fixed bits.
func (d *Declaration) DefaultValue() uint64 {
	return d.defaultValue
}

// Accessors returns the compiled fields of this declaration, in the order
// they were declared.
func (d *Declaration) Accessors() []Accessor {
	return d.accessors
}

// Layout constructs a runtime layout for this declaration.  Since every
// storage width fits within 64 bits, the layout operates over uint64 words.
func (d *Declaration) Layout() *bitrange.Layout[uint64] {
	// Pattern is known to fit, hence this cannot fail.
	layout, _ := bitrange.FromPattern[uint64](d.def.Name, d.pattern)
	//
	return layout
}
