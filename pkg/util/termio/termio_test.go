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
package termio

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Table_00(t *testing.T) {
	var out strings.Builder
	//
	table := NewTablePrinter(2, 2)
	table.SetRow(0, "token", "mask")
	table.SetRow(1, "a", "0xf0")
	table.AnsiEscapes(false)
	table.Print(&out)
	//
	assert.Equal(t, " token | mask |\n     a | 0xf0 |\n", out.String())
}

func Test_Table_01(t *testing.T) {
	var out strings.Builder
	// Columns are as wide as their widest cell
	table := NewTablePrinter(2, 3)
	table.SetRow(0, "a", "b")
	table.SetRow(1, "abcdefgh", "")
	table.SetRow(2, "", "xyz")
	table.AnsiEscapes(false)
	table.Print(&out)
	//
	assert.Equal(t, "        a |   b |\n abcdefgh |     |\n          | xyz |\n", out.String())
}

func Test_Table_02(t *testing.T) {
	var out strings.Builder
	//
	table := NewTablePrinter(1, 1)
	table.SetRow(0, "x")
	table.SetEscape(0, 0, NewAnsiEscape().FgColour(TERM_RED))
	table.Print(&out)
	//
	assert.Equal(t, "\033[31m x\033[0m |\n", out.String())
}

func Test_Table_03(t *testing.T) {
	var out strings.Builder
	//
	table := NewTablePrinter(2, 1)
	table.SetRow(0, "ab", "c")
	table.SetRowEscape(0, BoldAnsiEscape())
	table.Print(&out)
	//
	assert.Equal(t, "\033[1m ab\033[0m |\033[1m c\033[0m |\n", out.String())
	assert.Panics(t, func() { table.SetRow(0, "too", "many", "columns") })
}

func Test_Escape_00(t *testing.T) {
	assert.Equal(t, "\033[1;32m", BoldAnsiEscape().FgColour(TERM_GREEN).Build())
	assert.Equal(t, "\033[0m", ResetAnsiEscape().Build())
}

func Test_Terminal_00(t *testing.T) {
	file, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	//
	defer file.Close()
	// Regular files are never terminals
	assert.False(t, IsTerminal(file))
}
