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
	"io"
	"os"

	"github.com/consensys/go-bitrange/pkg/decl"
	"github.com/consensys/go-bitrange/pkg/util/termio"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [flags] declaration_file(s)",
	Short: "inspect the layout of bitfield declarations.",
	Long: `Print the compiled layout of each declaration in the given files, including
the mask and offset of each field along with the default mask and value.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		colour := termio.IsTerminal(os.Stdout) && !GetFlag(cmd, "no-colour")
		decls := ReadDeclarationFiles(args)
		//
		for i, d := range decls {
			if i != 0 {
				fmt.Println()
			}
			//
			inspectDeclaration(os.Stdout, d, colour)
		}
	},
}

// Print the layout of a given declaration, optionally using ANSI escapes for
// highlighting.
func inspectDeclaration(out io.Writer, d *decl.Declaration, colour bool) {
	var (
		digits    = int(d.Storage() / 4)
		accessors = d.Accessors()
		table     = termio.NewTablePrinter(6, uint(1+len(accessors)))
	)
	//
	fmt.Fprintf(out, "%s: u%d [%s]\n", d.Name(), d.Storage(), d.Pattern().Original())
	fmt.Fprintf(out, "default mask 0x%0*x, default value 0x%0*x\n", digits, d.DefaultMask(), digits, d.DefaultValue())
	//
	table.SetRow(0, "token", "getter", "setter", "width", "offset", "mask")
	table.SetRowEscape(0, termio.BoldAnsiEscape())
	//
	for i, acc := range accessors {
		row := uint(i + 1)
		offset := fmt.Sprintf("%d", acc.Offset)
		// Only the lowest group of a split field is aligned with bit 0
		if !acc.Contiguous {
			offset += "*"
		}
		//
		table.SetRow(row, string(acc.Token), acc.Getter, acc.Setter.UnwrapOr(""),
			fmt.Sprintf("%d", acc.Width), offset, fmt.Sprintf("0x%0*x", digits, acc.Mask))
		//
		if !acc.Contiguous {
			table.SetEscape(4, row, termio.NewAnsiEscape().FgColour(termio.TERM_YELLOW))
		}
	}
	//
	table.AnsiEscapes(colour)
	table.Print(out)
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().Bool("no-colour", false, "disable colour output.")
}
