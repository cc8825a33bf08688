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
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/consensys/go-bitrange/pkg/decl"
	"github.com/consensys/go-bitrange/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Generate_00(t *testing.T) {
	src := check_Generate(t, Config{Package: "demo"}, example(t))
	//
	assert.Contains(t, src, "// Code generated by bitrange DO NOT EDIT")
	assert.Contains(t, src, "package demo")
	assert.Contains(t, src, "type Example struct {\n\tbits uint8\n}")
	assert.Contains(t, src, "exampleDefaultMask uint8 = 0x18")
	assert.Contains(t, src, "exampleDefaultValue uint8 = 0x10")
	assert.Contains(t, src, "exampleFieldFirstMask uint8 = 0xe0")
	assert.Contains(t, src, "exampleFieldFirstOffset uint = 5")
	assert.Contains(t, src, "exampleFieldSecondMask uint8 = 0x07")
	assert.Contains(t, src, "exampleFieldSecondOffset uint = 0")
}

func Test_Generate_01(t *testing.T) {
	src := check_Generate(t, Config{Package: "demo"}, example(t))
	//
	assert.Contains(t, src, "func NewExample() Example {\n\treturn Example{exampleDefaultValue}\n}")
	assert.Contains(t, src, "func ExampleFrom(bits uint8) (Example, error) {")
	assert.Contains(t, src, "bitrange.Check(bits, exampleDefaultMask, exampleDefaultValue)")
	assert.Contains(t, src, "func (p Example) Bits() uint8 {")
	assert.Contains(t, src, "func (p Example) First() uint8 {")
	assert.Contains(t, src, "func (p *Example) SetFirst(value uint8) {")
	assert.Contains(t, src, "func (p Example) Second() uint8 {")
	assert.NotContains(t, src, "SetSecond")
	assert.Contains(t, src, `return fmt.Sprintf("Example{first: %#x, second: %#x}", p.First(), p.Second())`)
}

func Test_Generate_02(t *testing.T) {
	// Multiple declarations, including one without fields.
	flags := check_Compile(t, decl.Definition{Name: "Flags", Storage: 16, Pattern: "1111_111a"})
	src := check_Generate(t, Config{Package: "demo"}, example(t), flags)
	//
	assert.Contains(t, src, "type Flags struct {\n\tbits uint16\n}")
	assert.Contains(t, src, "flagsDefaultMask uint16 = 0x00fe")
	assert.Contains(t, src, "flagsDefaultValue uint16 = 0x00fe")
	assert.Contains(t, src, `return fmt.Sprintf("Flags{%#x}", p.bits)`)
}

func Test_Generate_03(t *testing.T) {
	year := time.Now().Year()
	src := check_Generate(t, Config{Package: "demo", License: "Consensys Software Inc.", Year: year}, example(t))
	//
	assert.Contains(t, src, fmt.Sprintf("Copyright %d Consensys Software Inc.", year))
	assert.Contains(t, src, "Licensed under the Apache License, Version 2.0. See the LICENSE file for details.")
}

func Test_Generate_04(t *testing.T) {
	d := check_Compile(t, decl.Definition{
		Name:    "Ipv4Second",
		Storage: 32,
		Pattern: "aaaaaaaaaaaaaaaa_bbb_ccccccccccccc",
		Fields: []decl.Field{
			{Token: 'c', Getter: "fragment_offset", Setter: util.Some("set_fragment_offset")},
		},
	})
	src := check_Generate(t, Config{Package: "ipv4"}, d)
	//
	assert.Contains(t, src, "ipv4SecondFieldFragmentOffsetMask uint32 = 0x00001fff")
	assert.Contains(t, src, "ipv4SecondFieldFragmentOffsetOffset uint = 0")
	assert.Contains(t, src, "func (p Ipv4Second) FragmentOffset() uint32 {")
	assert.Contains(t, src, "func (p *Ipv4Second) SetFragmentOffset(value uint32) {")
}

func Test_Generate_05(t *testing.T) {
	// A getter named after the default constants.
	d := check_Compile(t, decl.Definition{
		Name:    "Flags",
		Storage: 8,
		Pattern: "aaaa_1bbb",
		Fields:  []decl.Field{{Token: 'a', Getter: "default", Setter: util.Some("set_default")}},
	})
	src := check_Generate(t, Config{Package: "demo"}, d)
	//
	assert.Contains(t, src, "flagsDefaultMask uint8 = 0x08")
	assert.Contains(t, src, "flagsFieldDefaultMask uint8 = 0xf0")
	assert.Contains(t, src, "flagsFieldDefaultOffset uint = 4")
	assert.Contains(t, src, "func (p *Flags) SetDefault(value uint8) {")
}

func Test_Generate_06(t *testing.T) {
	// Names which are similar, but do not clash.
	foo := check_Compile(t, decl.Definition{
		Name:    "Foo",
		Storage: 8,
		Pattern: "aaaa_bbbb",
		Fields:  []decl.Field{{Token: 'a', Getter: "bar_default"}, {Token: 'b', Getter: "bar"}},
	})
	fooBar := check_Compile(t, decl.Definition{Name: "FooBar", Storage: 8, Pattern: "aaaa_0000"})
	//
	check_Generate(t, Config{Package: "demo"}, foo, fooBar)
}

func Test_Generate_07(t *testing.T) {
	year := time.Now().Year()
	src := check_Generate(t, Config{Package: "demo", License: "Consensys Software Inc.", Year: 2020}, example(t))
	// Earlier years give a range
	assert.Contains(t, src, fmt.Sprintf("Copyright 2020-%d Consensys Software Inc.", year))
}

func Test_Generate_Invalid_00(t *testing.T) {
	output := filepath.Join(t.TempDir(), "out.go")
	// Invalid package name
	assert.Error(t, Generate(output, []*decl.Declaration{example(t)}, Config{Package: "1demo"}))
	assert.NoFileExists(t, output)
}

func Test_Generate_Invalid_01(t *testing.T) {
	output := filepath.Join(t.TempDir(), "out.go")
	// Duplicate declarations
	err := Generate(output, []*decl.Declaration{example(t), example(t)}, Config{Package: "demo"})
	assert.EqualError(t, err, "duplicate declaration Example")
}

func Test_Generate_Invalid_02(t *testing.T) {
	foo := check_Compile(t, decl.Definition{
		Name:    "Foo",
		Storage: 8,
		Pattern: "aaaa_bbbb",
		Fields:  []decl.Field{{Token: 'a', Getter: "x_default"}},
	})
	fooFieldX := check_Compile(t, decl.Definition{Name: "FooFieldX", Storage: 8, Pattern: "aaaa_bbbb"})
	//
	check_GenerateError(t, "declaration FooFieldX: identifier fooFieldXDefaultMask clashes with declaration Foo",
		foo, fooFieldX)
}

func Test_Generate_Invalid_03(t *testing.T) {
	foo := check_Compile(t, decl.Definition{Name: "Foo", Storage: 8, Pattern: "aaaa_bbbb"})
	fooFrom := check_Compile(t, decl.Definition{Name: "FooFrom", Storage: 8, Pattern: "aaaa_bbbb"})
	newFoo := check_Compile(t, decl.Definition{Name: "NewFoo", Storage: 8, Pattern: "aaaa_bbbb"})
	//
	check_GenerateError(t, "declaration FooFrom: identifier FooFrom clashes with declaration Foo", foo, fooFrom)
	check_GenerateError(t, "declaration NewFoo: identifier NewFoo clashes with declaration Foo", foo, newFoo)
	// Either order is rejected
	check_GenerateError(t, "declaration Foo: identifier FooFrom clashes with declaration FooFrom", fooFrom, foo)
}

func Test_Generate_Invalid_04(t *testing.T) {
	// Unexported and exported types share constants
	lower := check_Compile(t, decl.Definition{Name: "foo", Storage: 8, Pattern: "aaaa_bbbb"})
	upper := check_Compile(t, decl.Definition{Name: "Foo", Storage: 8, Pattern: "aaaa_bbbb"})
	//
	check_GenerateError(t, "declaration Foo: identifier fooDefaultMask clashes with declaration foo", lower, upper)
}

func Test_Generate_Invalid_05(t *testing.T) {
	for _, name := range []string{"string", "uint16", "fmt", "bitrange", "init"} {
		d := check_Compile(t, decl.Definition{Name: name, Storage: 16, Pattern: "aaaa_bbbb"})
		check_GenerateError(t, fmt.Sprintf("declaration %s: identifier %s is reserved", name, name), d)
	}
}

func Test_Hex_00(t *testing.T) {
	assert.Equal(t, "0x18", hex(0x18, 8))
	assert.Equal(t, "0x0018", hex(0x18, 16))
	assert.Equal(t, "0x00000000", hex(0, 32))
	assert.Equal(t, "0xffffffffffffffff", hex(^uint64(0), 64))
	assert.Equal(t, "uint64", storage(64))
}

// ============================================================================
// Helpers
// ============================================================================

func example(t *testing.T) *decl.Declaration {
	return check_Compile(t, decl.Definition{
		Name:    "Example",
		Storage: 8,
		Pattern: "aaa1_0bbb",
		Fields: []decl.Field{
			{Token: 'a', Getter: "first", Setter: util.Some("set_first")},
			{Token: 'b', Getter: "second", Setter: util.None[string]()},
		},
	})
}

func check_Compile(t *testing.T, def decl.Definition) *decl.Declaration {
	d, err := decl.Compile(def)
	require.NoError(t, err)
	//
	return d
}

// Generate source into a temporary file, check it is well-typed Go and return
// its contents.
func check_Generate(t *testing.T, cfg Config, decls ...*decl.Declaration) string {
	output := filepath.Join(t.TempDir(), "bitrange_gen.go")
	require.NoError(t, Generate(output, decls, cfg))
	//
	bytes, err := os.ReadFile(output)
	require.NoError(t, err)
	//
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, output, bytes, parser.ParseComments)
	require.NoError(t, err)
	//
	conf := types.Config{Importer: newStubImporter(t)}
	_, err = conf.Check(cfg.Package, fset, []*ast.File{file}, nil)
	require.NoError(t, err, string(bytes))
	//
	return string(bytes)
}

func check_GenerateError(t *testing.T, expected string, decls ...*decl.Declaration) {
	output := filepath.Join(t.TempDir(), "bitrange_gen.go")
	//
	assert.EqualError(t, Generate(output, decls, Config{Package: "demo"}), expected)
	assert.NoFileExists(t, output)
}

// Signatures of the packages imported by generated files, sufficient for
// type checking them without a build of their dependencies.
var stubPackages = map[string]string{
	"fmt": `package fmt

func Sprintf(format string, args ...any) string { return format }`,
	"github.com/consensys/go-bitrange/pkg/bitrange": `package bitrange

type Unsigned interface{ ~uint8 | ~uint16 | ~uint32 | ~uint64 }

func Check[T Unsigned](bits T, defaultMask T, defaultValue T) error { return nil }

func Get[T Unsigned](bits T, mask T, offset uint) T { return bits }

func Set[T Unsigned](bits T, value T, mask T, offset uint) T { return bits }`,
}

type stubImporter map[string]*types.Package

func newStubImporter(t *testing.T) stubImporter {
	var (
		fset     = token.NewFileSet()
		importer = make(stubImporter)
	)
	//
	for path, src := range stubPackages {
		file, err := parser.ParseFile(fset, path+".go", src, 0)
		require.NoError(t, err)
		//
		pkg, err := new(types.Config).Check(path, fset, []*ast.File{file}, nil)
		require.NoError(t, err)
		//
		importer[path] = pkg
	}
	//
	return importer
}

func (p stubImporter) Import(path string) (*types.Package, error) {
	if pkg, ok := p[path]; ok {
		return pkg, nil
	}
	//
	return nil, fmt.Errorf("unknown package %s", path)
}
