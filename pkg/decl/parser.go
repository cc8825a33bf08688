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
	"fmt"

	"github.com/consensys/go-bitrange/pkg/pattern"
	"github.com/consensys/go-bitrange/pkg/util"
	"github.com/consensys/go-bitrange/pkg/util/source"
	"github.com/consensys/go-bitrange/pkg/util/source/lex"
)

// Descriptions of what the parser expected to find, used in error messages.
const (
	expectedKeyword    = "a declaration, e.g. 'bitrange {'"
	expectedOpen       = "an opening brace '{'"
	expectedStructName = "the name of the struct, e.g. 'MappedInt'"
	expectedStorage    = "a storage type, e.g. 'u32'"
	expectedFormat     = "a format, e.g. [aaa_bbbb]"
	expectedKey        = "a key, e.g. 'a:'"
	expectedColon      = "a colon"
	expectedName       = "a name for the key, e.g. 'a: first'"
	expectedComma      = "a comma"
)

// Node identifies a component of a declaration within a source file, and is
// used to recover the span of text from which the component was parsed.
type Node struct {
	// Index of the declaration in the file.
	Decl int
	// Index of the field in the declaration, or -1.
	Field int
	// Component of the declaration or field.
	Part Part
}

// Parse a given source file written in the declaration language.  A source
// file contains zero or more declarations of the form:
//
//	bitrange {
//	    IpHeader: u32,
//	    [aaaa_bbbb_cccccccc_dddddddddddddddd],
//	    a: version set_version,
//	    b: ihl,
//	}
//
// Here, each field maps a token of the pattern to a getter and, optionally, a
// setter.  Comments start with "//" and run to the end of the line.
func Parse(srcfile *source.File) ([]Definition, *source.Map[Node], []source.SyntaxError) {
	parser := NewParser(srcfile)
	//
	return parser.Parse()
}

// Parser is a parser for the declaration language.
type Parser struct {
	srcfile *source.File
	tokens  []lex.Token
	// Source mapping
	srcmap *source.Map[Node]
	// Position within the tokens
	index int
}

// NewParser constructs a new parser for a given source file.
func NewParser(srcfile *source.File) *Parser {
	// Construct (initially empty) source mapping
	srcmap := source.NewSourceMap[Node](srcfile)
	//
	return &Parser{srcfile, nil, srcmap, 0}
}

// Parse the given source file into a sequence of zero or more declarations or
// some number of syntax errors.
func (p *Parser) Parse() ([]Definition, *source.Map[Node], []source.SyntaxError) {
	var (
		defs   []Definition
		errors []source.SyntaxError
	)
	// Convert source file into tokens
	if p.tokens, errors = Lex(p.srcfile); len(errors) > 0 {
		return nil, nil, errors
	}
	// Continue going until all consumed
	for p.lookahead().Kind != END_OF {
		def, errors := p.parseDeclaration(len(defs))
		//
		if len(errors) > 0 {
			return nil, nil, errors
		}
		//
		defs = append(defs, def)
	}
	//
	return defs, p.srcmap, nil
}

func (p *Parser) parseDeclaration(index int) (Definition, []source.SyntaxError) {
	var def Definition
	//
	if errs := p.parseKeyword("bitrange"); len(errs) > 0 {
		return def, errs
	} else if _, errs := p.expect(LCURLY, expectedOpen); len(errs) > 0 {
		return def, errs
	}
	// Struct name
	name, errs := p.expect(IDENTIFIER, expectedStructName)
	if len(errs) > 0 {
		return def, errs
	}
	//
	def.Name = p.string(name)
	p.srcmap.Put(Node{index, -1, NamePart}, name.Span)
	//
	if _, errs := p.expect(COLON, expectedColon); len(errs) > 0 {
		return def, errs
	}
	// Storage type
	if def.Storage, errs = p.parseStorage(index); len(errs) > 0 {
		return def, errs
	} else if _, errs := p.expect(COMMA, expectedComma); len(errs) > 0 {
		return def, errs
	}
	// Pattern
	if def.Pattern, errs = p.parseFormat(index); len(errs) > 0 {
		return def, errs
	}
	// Fields
	for !p.match(RCURLY) {
		if _, errs := p.expect(COMMA, expectedComma); len(errs) > 0 {
			return def, errs
		} else if p.match(RCURLY) {
			// trailing comma
			break
		}
		//
		field, errs := p.parseField(index, len(def.Fields))
		if len(errs) > 0 {
			return def, errs
		}
		//
		def.Fields = append(def.Fields, field)
	}
	//
	return def, nil
}

func (p *Parser) parseStorage(index int) (uint, []source.SyntaxError) {
	tok, errs := p.expect(IDENTIFIER, expectedStorage)
	//
	if len(errs) > 0 {
		return 0, errs
	}
	//
	width, ok := ParseStorage(p.string(tok))
	if !ok {
		return 0, p.syntaxErrors(tok, fmt.Sprintf("unknown storage type %q, expected u8, u16, u32 or u64",
			p.string(tok)))
	}
	//
	p.srcmap.Put(Node{index, -1, StoragePart}, tok.Span)
	//
	return width, nil
}

func (p *Parser) parseFormat(index int) (string, []source.SyntaxError) {
	tok := p.lookahead()
	//
	if tok.Kind != PATTERN && tok.Kind != STRING {
		return "", p.syntaxErrors(tok, fmt.Sprintf("unexpected %s, expected %s", describe(tok.Kind), expectedFormat))
	}
	//
	p.index++
	//
	format, ok := pattern.Isolate(p.string(tok))
	if !ok {
		return "", p.syntaxErrors(tok, "invalid bitrange format, expected [aaa_bbbb]")
	}
	//
	p.srcmap.Put(Node{index, -1, PatternPart}, tok.Span)
	//
	return format, nil
}

func (p *Parser) parseField(index int, field int) (Field, []source.SyntaxError) {
	var f Field
	//
	key, errs := p.expect(IDENTIFIER, expectedKey)
	if len(errs) > 0 {
		return f, errs
	} else if runes := []rune(p.string(key)); len(runes) != 1 {
		return f, p.syntaxErrors(key, "token needs to be a single char, expected 'a: name'")
	} else {
		f.Token = runes[0]
	}
	//
	p.srcmap.Put(Node{index, field, TokenPart}, key.Span)
	//
	if _, errs := p.expect(COLON, expectedColon); len(errs) > 0 {
		return f, errs
	}
	// Getter
	getter, errs := p.expect(IDENTIFIER, expectedName)
	if len(errs) > 0 {
		return f, errs
	}
	//
	f.Getter = p.string(getter)
	p.srcmap.Put(Node{index, field, GetterPart}, getter.Span)
	// Optional setter
	if setter := p.lookahead(); setter.Kind == IDENTIFIER {
		p.index++
		f.Setter = util.Some(p.string(setter))
		p.srcmap.Put(Node{index, field, SetterPart}, setter.Span)
	}
	//
	return f, nil
}

func (p *Parser) parseKeyword(keyword string) []source.SyntaxError {
	tok, errs := p.expect(IDENTIFIER, expectedKeyword)
	//
	if len(errs) > 0 {
		return errs
	} else if p.string(tok) != keyword {
		return p.syntaxErrors(tok, fmt.Sprintf("expected \"%s\"", keyword))
	}
	//
	return nil
}

// Get the text representing the given token as a string.
func (p *Parser) string(token lex.Token) string {
	return p.srcfile.Text(token.Span)
}

// Lookahead returns the next token.  This must exist because EOF is always
// appended at the end of the token stream.
func (p *Parser) lookahead() lex.Token {
	return p.tokens[p.index]
}

// Expect returns an error if the next token is not what was expected.
func (p *Parser) expect(kind uint, expected string) (lex.Token, []source.SyntaxError) {
	lookahead := p.lookahead()
	//
	if lookahead.Kind != kind {
		errs := p.syntaxErrors(lookahead, fmt.Sprintf("unexpected %s, expected %s", describe(lookahead.Kind), expected))
		return lookahead, errs
	}
	//
	p.index++
	//
	return lookahead, nil
}

// Match attempts to match the given token.
func (p *Parser) match(kind uint) bool {
	if p.lookahead().Kind == kind {
		p.index++
		return true
	}
	//
	return false
}

func (p *Parser) syntaxErrors(token lex.Token, msg string) []source.SyntaxError {
	return []source.SyntaxError{*p.srcfile.SyntaxError(token.Span, msg)}
}

func describe(kind uint) string {
	switch kind {
	case END_OF:
		return "end of file"
	case COMMA:
		return "comma"
	case COLON:
		return "colon"
	case IDENTIFIER:
		return "text"
	default:
		return "token"
	}
}
