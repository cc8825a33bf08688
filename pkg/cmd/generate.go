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
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/consensys/go-bitrange/pkg/codegen"
	"github.com/consensys/go-bitrange/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate [flags] declaration_file(s)",
	Short: "generate Go source for bitfield declarations.",
	Long: `Generate a Go source file containing a bitfield type (with constructors and
accessors) for each declaration in the given files.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		filename := GetString(cmd, "output")
		cfg := codegen.Config{
			Package: GetString(cmd, "package"),
			License: GetString(cmd, "license"),
			Year:    GetInt(cmd, "year"),
			Format:  GetFlag(cmd, "gofmt"),
		}
		// Default package name is that of the enclosing directory
		if cfg.Package == "" {
			cfg.Package = defaultPackage(filename)
		}
		// Parse declarations
		decls := ReadDeclarationFiles(args)
		// Generate Go source
		if err := codegen.Generate(filename, decls, cfg); err != nil {
			fmt.Println(err.Error())
			os.Exit(1)
		}
		//
		log.Infof("generated %d declaration(s) into %s", len(decls), filename)
	},
}

// Determine a suitable package name from the directory of an output file,
// falling back to "main" if this is not a valid identifier.
func defaultPackage(filename string) string {
	abs, err := filepath.Abs(filename)
	if err != nil {
		return "main"
	}
	//
	name := filepath.Base(filepath.Dir(abs))
	//
	if !util.IsIdentifier(name) {
		return "main"
	}
	//
	return name
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringP("output", "o", "bitrange_gen.go", "specify output file.")
	generateCmd.Flags().StringP("package", "p", "", "specify Go package (default: enclosing directory).")
	generateCmd.Flags().String("license", "", "copyright holder for Apache-2.0 license header.")
	generateCmd.Flags().Int("year", 0, "copyright year (default: current year).")
	generateCmd.Flags().Bool("gofmt", false, "run gofmt on generated file.")
}
