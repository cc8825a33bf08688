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
	"strings"
	"testing"

	"github.com/consensys/go-bitrange/pkg/util"
	"github.com/consensys/go-bitrange/pkg/util/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Yaml_00(t *testing.T) {
	files, err := source.ReadFiles("testdata/example.yaml")
	require.NoError(t, err)
	//
	defs, srcmap, errs := ParseYaml(files[0])
	require.Empty(t, errs)
	//
	assert.Equal(t, []Definition{
		{"Example", 8, "aaa1_0bbb", []Field{
			{'a', "first", util.Some("set_first")},
			{'b', "second", util.None[string]()},
		}},
		{"Flags", 16, "1111_111a", []Field{
			{'a', "enabled", util.Some("set_enabled")},
		}},
	}, defs)
	//
	check_Span(t, srcmap, Node{0, -1, NamePart}, "Example")
	check_Span(t, srcmap, Node{0, -1, PatternPart}, "aaa1_0bbb")
	check_Span(t, srcmap, Node{0, 0, SetterPart}, "set_first")
	check_Span(t, srcmap, Node{0, 1, TokenPart}, "b")
	check_Span(t, srcmap, Node{1, -1, StoragePart}, "16")
	check_Span(t, srcmap, Node{1, -1, PatternPart}, "\"1111_111a\"")
	check_Span(t, srcmap, Node{1, 0, GetterPart}, "enabled")
}

func Test_Yaml_01(t *testing.T) {
	defs := check_Yaml(t, "")
	assert.Empty(t, defs)
}

func Test_Yaml_02(t *testing.T) {
	defs := check_Yaml(t, "- {name: A, storage: uint64, pattern: '[aaaa]'}\n")
	// Brackets are separators when not stripped
	require.Len(t, defs, 1)
	assert.Equal(t, uint(64), defs[0].Storage)
	assert.Empty(t, defs[0].Fields)
}

func Test_Yaml_Invalid_00(t *testing.T) {
	check_YamlError(t, "- name: A\n  storage: u12\n  pattern: aaaa\n", "u12",
		"unknown storage type \"u12\", expected u8, u16, u32 or u64")
}

func Test_Yaml_Invalid_01(t *testing.T) {
	check_YamlError(t, "name: A\nstorage: u8\n", "n", "expected a list of declarations")
}

func Test_Yaml_Invalid_02(t *testing.T) {
	input := "- name: A\n  storage: u8\n  pattern: aaaa\n  fields:\n    - {token: ab, getter: x}\n"
	check_YamlError(t, input, "ab", "token needs to be a single char")
}

func Test_Yaml_Invalid_03(t *testing.T) {
	file := source.NewSourceFile("test.yaml", []byte("- name: A\n  storage: [u8\n"))
	_, _, errs := ParseYaml(file)
	//
	require.Len(t, errs, 1)
	assert.True(t, strings.HasPrefix(errs[0].Message(), "yaml:"), errs[0].Message())
}

func Test_Yaml_Invalid_04(t *testing.T) {
	check_YamlError(t, "- just a string\n", "just a string", "expected a declaration")
}

// ============================================================================
// Framework
// ============================================================================

func check_Yaml(t *testing.T, input string) []Definition {
	file := source.NewSourceFile("test.yaml", []byte(input))
	defs, _, errs := ParseYaml(file)
	//
	for _, err := range errs {
		t.Errorf("unexpected syntax error: %s", err.Error())
	}
	//
	return defs
}

func check_YamlError(t *testing.T, input string, text string, msg string) {
	file := source.NewSourceFile("test.yaml", []byte(input))
	_, _, errs := ParseYaml(file)
	//
	require.Len(t, errs, 1)
	assert.Equal(t, msg, errs[0].Message())
	assert.Equal(t, text, file.Text(errs[0].Span()))
}
