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
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/consensys/go-bitrange/pkg/bitrange"
	"github.com/consensys/go-bitrange/pkg/decl"
	"github.com/consensys/go-bitrange/pkg/util/collection/bit"
	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [flags] declaration_file(s) hex",
	Short: "decode bytes as words of a bitfield declaration.",
	Long: `Split a string of hex-encoded bytes into big-endian words of a given declared
type, and print the value of each field in each word.  Words whose fixed bits
do not match the declared pattern are reported.`,
	Args: cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		n := len(args) - 1
		decls := ReadDeclarationFiles(args[:n])
		d := findDeclaration(GetString(cmd, "type"), decls)
		//
		bytes, err := parseHex(args[n])
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		if err := decodeWords(os.Stdout, d, bytes); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

// Decode a sequence of bytes as big-endian words of a given declaration,
// printing the fields of each.  An error is returned if the bytes do not
// divide into whole words, or if any word is invalid.
func decodeWords(out io.Writer, d *decl.Declaration, bytes []byte) error {
	var (
		layout  = d.Layout()
		width   = d.Storage()
		digits  = int(width / 4)
		reader  = bit.NewReader(bytes)
		padding = 0
		invalid = 0
	)
	//
	if len(bytes) == 0 {
		return errors.New("no bytes to decode")
	} else if reader.Remaining()%width != 0 {
		return fmt.Errorf("%d byte(s) do not divide into u%d words", len(bytes), width)
	}
	//
	for _, acc := range d.Accessors() {
		padding = max(padding, len(acc.Getter))
	}
	//
	for i := 0; reader.Remaining() > 0; i++ {
		var mismatch *bitrange.MismatchError[uint64]
		// Cannot fail, since bytes divide into whole words.
		word, _ := reader.Read(width)
		//
		fmt.Fprintf(out, "%s[%d] = 0x%0*x\n", d.Name(), i, digits, word)
		//
		value, err := construct(layout, word)
		//
		if errors.As(err, &mismatch) {
			fmt.Fprintf(out, "  invalid bits: expected 0x%0*x, provided 0x%0*x\n",
				digits, mismatch.Expected, digits, mismatch.Provided)
			//
			invalid++
			//
			continue
		} else if err != nil {
			return err
		}
		//
		for _, acc := range d.Accessors() {
			// Token is known to be present, hence this cannot fail.
			field, _ := layout.Accessor(acc.Token)
			fmt.Fprintf(out, "  %-*s = %#x\n", padding, acc.Getter, value.Get(field))
		}
	}
	//
	if invalid > 0 {
		return fmt.Errorf("%d invalid word(s)", invalid)
	}
	//
	return nil
}

// Construct a value of a given layout.  Under a fail-fast build a mismatch
// panics, in which case it is recovered and returned like any other.
func construct(layout *bitrange.Layout[uint64], bits uint64) (value bitrange.Value[uint64], err error) {
	defer func() {
		if r := recover(); r != nil {
			mismatch, ok := r.(*bitrange.MismatchError[uint64])
			if !ok {
				panic(r)
			}
			//
			err = mismatch
		}
	}()
	//
	return layout.From(bits)
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(decodeCmd)
	decodeCmd.Flags().StringP("type", "t", "", "declared type to decode.")
	decodeCmd.MarkFlagRequired("type")
}
