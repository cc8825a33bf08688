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
package codegen

import (
	"fmt"

	"github.com/consensys/go-bitrange/pkg/decl"
	"github.com/consensys/go-bitrange/pkg/util"
)

// Template view of a generated file.
type fileData struct {
	Decls []declData
}

// Template view of a single declaration.
type declData struct {
	// Go name of the generated type.
	Type string
	// Prefix of unexported constants belonging to this type.
	Prefix       string
	Pattern      string
	Storage      uint
	DefaultMask  uint64
	DefaultValue uint64
	Fields       []fieldData
}

// Template view of a single field.
type fieldData struct {
	Token string
	// Name of the field as declared.
	Name string
	// Exported getter and (optional) setter names.
	Getter      string
	Setter      string
	MaskConst   string
	OffsetConst string
	Mask        uint64
	Offset      uint
	Width       uint
}

// Identifiers which a generated type cannot redeclare: the imports of a
// generated file and the predeclared names it refers to.
var reservedIdentifiers = []string{
	"_", "init", "fmt", "bitrange", "error", "string", "uint", "uint8", "uint16", "uint32", "uint64",
}

func newFile(decls []*decl.Declaration) (fileData, error) {
	var (
		file fileData
		// Maps each top-level identifier to the declaration defining it.
		scope = make(map[string]string)
	)
	//
	for _, name := range reservedIdentifiers {
		scope[name] = ""
	}
	//
	for _, d := range decls {
		data := newDecl(d)
		//
		for _, id := range data.identifiers() {
			owner, ok := scope[id]
			//
			switch {
			case !ok:
				scope[id] = d.Name()
			case owner == d.Name():
				return file, fmt.Errorf("duplicate declaration %s", d.Name())
			case owner == "":
				return file, fmt.Errorf("declaration %s: identifier %s is reserved", d.Name(), id)
			default:
				return file, fmt.Errorf("declaration %s: identifier %s clashes with declaration %s",
					d.Name(), id, owner)
			}
		}
		//
		file.Decls = append(file.Decls, data)
	}
	//
	return file, nil
}

func newDecl(d *decl.Declaration) declData {
	var (
		prefix = util.LowerFirst(d.Name())
		fields = make([]fieldData, len(d.Accessors()))
	)
	//
	for i, acc := range d.Accessors() {
		var (
			getter = util.ToPascalCase(acc.Getter)
			setter string
		)
		//
		if !acc.Setter.IsEmpty() {
			setter = util.ToPascalCase(acc.Setter.Unwrap())
		}
		// Field constants are kept apart from the Default constants, since a
		// getter may itself be named "default".
		fields[i] = fieldData{
			Token:       string(acc.Token),
			Name:        acc.Getter,
			Getter:      getter,
			Setter:      setter,
			MaskConst:   prefix + "Field" + getter + "Mask",
			OffsetConst: prefix + "Field" + getter + "Offset",
			Mask:        acc.Mask,
			Offset:      acc.Offset,
			Width:       acc.Width,
		}
	}
	//
	return declData{
		Type:         d.Name(),
		Prefix:       prefix,
		Pattern:      d.Pattern().Original(),
		Storage:      d.Storage(),
		DefaultMask:  d.DefaultMask(),
		DefaultValue: d.DefaultValue(),
		Fields:       fields,
	}
}

// Top-level identifiers declared in a generated file for this declaration.
func (p *declData) identifiers() []string {
	ids := []string{
		p.Type,
		"New" + p.Type,
		p.Type + "From",
		p.Prefix + "DefaultMask",
		p.Prefix + "DefaultValue",
	}
	//
	for _, f := range p.Fields {
		ids = append(ids, f.MaskConst, f.OffsetConst)
	}
	//
	return ids
}
