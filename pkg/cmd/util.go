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
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/consensys/go-bitrange/pkg/decl"
	"github.com/consensys/go-bitrange/pkg/util/source"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetInt gets an expected integer flag, or exits if an error arises.
func GetInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// ReadDeclarationFiles reads and compiles the declarations in the given files.
// Any syntax errors are reported, after which the process exits.
func ReadDeclarationFiles(filenames []string) []*decl.Declaration {
	decls, errs, err := decl.ReadFiles(filenames...)
	// Check for I/O errors
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	// Check for syntax errors
	if len(errs) > 0 {
		for _, e := range errs {
			printSyntaxError(os.Stdout, &e)
		}
		//
		os.Exit(1)
	}
	//
	return decls
}

// Find the declaration with a given name, or exit if none exists.
func findDeclaration(name string, decls []*decl.Declaration) *decl.Declaration {
	if d := lookupDeclaration(name, decls); d != nil {
		return d
	}
	//
	fmt.Printf("unknown declaration %q\n", name)
	os.Exit(2)
	// unreachable
	return nil
}

func lookupDeclaration(name string, decls []*decl.Declaration) *decl.Declaration {
	for _, d := range decls {
		if d.Name() == name {
			return d
		}
	}
	//
	return nil
}

// Parse a string of hex digits into bytes, where whitespace, underscores and
// an optional "0x" prefix are ignored.
func parseHex(text string) ([]byte, error) {
	text = strings.TrimPrefix(strings.TrimSpace(text), "0x")
	text = strings.Map(func(r rune) rune {
		if r == '_' || r == ' ' || r == '\t' {
			return -1
		}
		//
		return r
	}, text)
	//
	bytes, err := hex.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("invalid hex string: %w", err)
	}
	//
	return bytes, nil
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(out io.Writer, err *source.SyntaxError) {
	span := err.Span()
	line := err.FirstEnclosingLine()
	lineOffset := span.Start() - line.Start()
	// Calculate length (ensures don't overflow line)
	length := max(1, min(line.Length()-lineOffset, span.Length()))
	// Print error + line number
	fmt.Fprintf(out, "%s:%d: %s\n", err.SourceFile().Filename(), line.Number(), err.Message())
	// Print line
	fmt.Fprintln(out, line.String())
	// Print indent (todo: account for tabs)
	fmt.Fprint(out, strings.Repeat(" ", lineOffset))
	// Print highlight
	fmt.Fprintln(out, strings.Repeat("^", length))
}
