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
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/consensys/go-bitrange/pkg/util/source"
	log "github.com/sirupsen/logrus"
)

// ReadFiles reads and compiles the declarations in a given set of files.  An
// error is returned only if a file cannot be read; problems with the
// declarations themselves are reported as syntax errors.
func ReadFiles(filenames ...string) ([]*Declaration, []source.SyntaxError, error) {
	files, err := source.ReadFiles(filenames...)
	if err != nil {
		return nil, nil, fmt.Errorf("reading declarations: %w", err)
	}
	//
	decls, errs := CompileFiles(files...)
	//
	return decls, errs, nil
}

// CompileFiles parses and compiles the declarations in a given set of source
// files.  Files ending in ".yaml" or ".yml" are parsed as YAML, whilst all
// others are parsed using the declaration language.  Declared names must be
// unique across all files.
func CompileFiles(files ...*source.File) ([]*Declaration, []source.SyntaxError) {
	var (
		decls    []*Declaration
		reported []source.SyntaxError
		names    = make(map[string]bool)
	)
	//
	for _, file := range files {
		log.Debugf("reading declarations from %s", file.Filename())
		//
		defs, srcmap, errs := ParseFile(file)
		if len(errs) > 0 {
			reported = append(reported, errs...)
			continue
		}
		//
		for i, def := range defs {
			decl, err := Compile(def)
			//
			if err != nil {
				reported = append(reported, *syntaxError(srcmap, i, err))
				continue
			} else if names[def.Name] {
				msg := fmt.Sprintf("duplicate declaration %s", def.Name)
				reported = append(reported, *srcmap.SyntaxError(Node{i, -1, NamePart}, msg))
				//
				continue
			}
			//
			log.Debugf("compiled %s (u%d, %d accessors)", decl.Name(), decl.Storage(), len(decl.Accessors()))
			//
			names[def.Name] = true
			decls = append(decls, decl)
		}
	}
	//
	return decls, reported
}

// ParseFile parses the declarations in a given source file, choosing the
// format based on its extension.
func ParseFile(file *source.File) ([]Definition, *source.Map[Node], []source.SyntaxError) {
	switch strings.ToLower(filepath.Ext(file.Filename())) {
	case ".yaml", ".yml":
		return ParseYaml(file)
	default:
		return Parse(file)
	}
}

// Convert a declaration error into a syntax error which highlights the
// offending component.
func syntaxError(srcmap *source.Map[Node], index int, err error) *source.SyntaxError {
	var derr *Error
	//
	if errors.As(err, &derr) {
		return srcmap.SyntaxError(Node{index, derr.Field(), derr.Part()}, derr.Message())
	}
	//
	return srcmap.SyntaxError(Node{index, -1, NamePart}, err.Error())
}
