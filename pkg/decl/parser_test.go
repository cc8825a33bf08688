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
	"testing"

	"github.com/consensys/go-bitrange/pkg/util"
	"github.com/consensys/go-bitrange/pkg/util/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Parse_00(t *testing.T) {
	defs := check_Parse(t, `bitrange { Test: u8, [aaa1_0bbb], a: first, b: second }`)
	//
	assert.Equal(t, []Definition{{"Test", 8, "aaa1_0bbb", []Field{
		{'a', "first", util.None[string]()},
		{'b', "second", util.None[string]()},
	}}}, defs)
}

func Test_Parse_01(t *testing.T) {
	defs := check_Parse(t, `
	// struct name, pattern and fields
	bitrange {
		IpHeader: u32,
		"aaaa_bbbb_cccccccc_dddddddddddddddd",
		a: version set_version, // with setter
		b: ihl,
		c: type_of_service,
		d: total_length,
	}`)
	//
	require.Len(t, defs, 1)
	assert.Equal(t, "IpHeader", defs[0].Name)
	assert.Equal(t, uint(32), defs[0].Storage)
	assert.Equal(t, "aaaa_bbbb_cccccccc_dddddddddddddddd", defs[0].Pattern)
	require.Len(t, defs[0].Fields, 4)
	assert.Equal(t, util.Some("set_version"), defs[0].Fields[0].Setter)
	assert.True(t, defs[0].Fields[3].Setter.IsEmpty())
}

func Test_Parse_02(t *testing.T) {
	defs := check_Parse(t, `bitrange { Test: uint16, [[1111_111a]] }`)
	//
	assert.Equal(t, []Definition{{Name: "Test", Storage: 16, Pattern: "1111_111a"}}, defs)
}

func Test_Parse_03(t *testing.T) {
	defs := check_Parse(t, `bitrange { A: u8, [aaaa], a: x } bitrange { B: u64, [bbbb], b: _first, }`)
	//
	require.Len(t, defs, 2)
	assert.Equal(t, "A", defs[0].Name)
	assert.Equal(t, "B", defs[1].Name)
	assert.Equal(t, "_first", defs[1].Fields[0].Getter)
}

func Test_Parse_04(t *testing.T) {
	check_Parse(t, "")
	check_Parse(t, "// nothing to see here\n")
}

func Test_Parse_05(t *testing.T) {
	file := source.NewSourceFile("test.bitrange", []byte(`bitrange { Test: u8, [aaaa_bbbb], a: first f, b: second }`))
	_, srcmap, errs := Parse(file)
	require.Empty(t, errs)
	//
	check_Span(t, srcmap, Node{0, -1, NamePart}, "Test")
	check_Span(t, srcmap, Node{0, -1, StoragePart}, "u8")
	check_Span(t, srcmap, Node{0, -1, PatternPart}, "[aaaa_bbbb]")
	check_Span(t, srcmap, Node{0, 0, TokenPart}, "a")
	check_Span(t, srcmap, Node{0, 0, GetterPart}, "first")
	check_Span(t, srcmap, Node{0, 0, SetterPart}, "f")
	check_Span(t, srcmap, Node{0, 1, GetterPart}, "second")
	// Unmapped nodes are reported at the start of the file
	assert.Equal(t, source.NewSpan(0, 0), srcmap.SyntaxError(Node{0, 1, SetterPart}, "").Span())
}

func Test_Parse_Invalid_00(t *testing.T) {
	check_ParseError(t, `bitrange { Test u8 }`, "u8", "unexpected text, expected a colon")
}

func Test_Parse_Invalid_01(t *testing.T) {
	check_ParseError(t, `bitrange { Test: u8, aaa1_0bbb }`, "aaa1_0bbb",
		"unexpected text, expected a format, e.g. [aaa_bbbb]")
}

func Test_Parse_Invalid_02(t *testing.T) {
	check_ParseError(t, `bitrange { Test: u8, [aaaa], ab: first }`, "ab",
		"token needs to be a single char, expected 'a: name'")
}

func Test_Parse_Invalid_03(t *testing.T) {
	check_ParseError(t, `bitrange { Test: u12, [aaaa] }`, "u12",
		"unknown storage type \"u12\", expected u8, u16, u32 or u64")
}

func Test_Parse_Invalid_04(t *testing.T) {
	check_ParseError(t, `bitrange { Test: u8, [aaaa], a: }`, "}",
		"unexpected token, expected a name for the key, e.g. 'a: first'")
}

func Test_Parse_Invalid_05(t *testing.T) {
	check_ParseError(t, `bitrange { Test: u8, [aaaa], a: first`, "", "unexpected end of file, expected a comma")
}

func Test_Parse_Invalid_06(t *testing.T) {
	check_ParseError(t, `bitrange { Test: u8, [aaaa] @ }`, "@ }", "unknown text encountered")
}

func Test_Parse_Invalid_07(t *testing.T) {
	check_ParseError(t, `bitfield { Test: u8, [aaaa] }`, "bitfield", "expected \"bitrange\"")
}

func Test_Parse_Invalid_08(t *testing.T) {
	check_ParseError(t, `bitrange { Test: u8, [aaaa], a: first b: second }`, ":",
		"unexpected colon, expected a comma")
}

func Test_Parse_Invalid_09(t *testing.T) {
	check_ParseError(t, `bitrange { Test: u8,, [aaaa] }`, ",",
		"unexpected comma, expected a format, e.g. [aaa_bbbb]")
}

// ============================================================================
// Framework
// ============================================================================

func check_Parse(t *testing.T, input string) []Definition {
	file := source.NewSourceFile("test.bitrange", []byte(input))
	defs, _, errs := Parse(file)
	//
	for _, err := range errs {
		t.Errorf("unexpected syntax error: %s", err.Error())
	}
	//
	return defs
}

func check_ParseError(t *testing.T, input string, text string, msg string) {
	file := source.NewSourceFile("test.bitrange", []byte(input))
	_, _, errs := Parse(file)
	//
	require.Len(t, errs, 1)
	assert.Equal(t, msg, errs[0].Message())
	assert.Equal(t, text, file.Text(errs[0].Span()))
}

func check_Span(t *testing.T, srcmap *source.Map[Node], node Node, text string) {
	err := srcmap.SyntaxError(node, "")
	assert.Equal(t, text, err.SourceFile().Text(err.Span()), "node %v", node)
}
