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

// Package codegen generates Go source for compiled bitfield declarations.  For
// each declaration a struct type wrapping the storage word is emitted, along
// with its default and validating constructors and an accessor per field.
package codegen

import (
	_ "embed"
	"fmt"
	"text/template"
	"time"

	"github.com/consensys/bavard"
	"github.com/consensys/go-bitrange/pkg/decl"
	"github.com/consensys/go-bitrange/pkg/util"
	log "github.com/sirupsen/logrus"
)

//go:embed templates/bitrange.go.tmpl
var bitrangeTemplate string

// GeneratedBy identifies the generator in the header of generated files.
const GeneratedBy = "bitrange"

// Config determines how source files are generated.
type Config struct {
	// Package to which the generated file belongs.
	Package string
	// Copyright holder for the Apache-2.0 license header.  When empty, no
	// license header is written.
	License string
	// Year of the copyright (defaults to the current year).
	Year int
	// Run gofmt on the generated file.
	Format bool
}

// Generate writes a Go source file containing one bitfield type for each of
// the given declarations.
func Generate(output string, decls []*decl.Declaration, cfg Config) error {
	if !util.IsIdentifier(cfg.Package) {
		return fmt.Errorf("invalid package name %q", cfg.Package)
	}
	//
	data, err := newFile(decls)
	if err != nil {
		return err
	}
	//
	options := []func(*bavard.Bavard) error{
		bavard.Package(cfg.Package),
		bavard.GeneratedBy(GeneratedBy),
		bavard.Format(cfg.Format),
		bavard.Import(false),
		bavard.Verbose(false),
		bavard.Funcs(helpers),
	}
	//
	if cfg.License != "" {
		year := cfg.Year
		if year == 0 {
			year = time.Now().Year()
		}
		//
		options = append(options, bavard.Apache2(cfg.License, year))
	}
	//
	log.Debugf("generating %s (%d declarations)", output, len(decls))
	//
	if err := bavard.GenerateFromString(output, []string{bitrangeTemplate}, data, options...); err != nil {
		return fmt.Errorf("generating %s: %w", output, err)
	}
	//
	return nil
}

var helpers = template.FuncMap{
	"hex":     hex,
	"storage": storage,
}

// Format a value as a hex literal, zero-padded to the given bit width.
func hex(value uint64, width uint) string {
	return fmt.Sprintf("0x%0*x", int(width/4), value)
}

// Name of the Go type used for storage of a given width.
func storage(width uint) string {
	return fmt.Sprintf("uint%d", width)
}
