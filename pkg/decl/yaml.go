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
	"regexp"
	"strconv"

	"github.com/consensys/go-bitrange/pkg/util"
	"github.com/consensys/go-bitrange/pkg/util/source"
	"gopkg.in/yaml.v3"
)

// YamlField is the YAML form of a field.
type YamlField struct {
	Token  string `yaml:"token"`
	Getter string `yaml:"getter"`
	Setter string `yaml:"setter,omitempty"`
}

// YamlDefinition is the YAML form of a declaration.  A YAML declaration file
// holds a list of these, for example:
//
//	# First word of an IPv4 header
//	- name: IpHeader
//	  storage: u32
//	  pattern: aaaa_bbbb_cccccccc_dddddddddddddddd
//	  fields:
//	    - {token: a, getter: version, setter: set_version}
//	    - {token: b, getter: ihl}
type YamlDefinition struct {
	Name    string      `yaml:"name"`
	Storage string      `yaml:"storage"`
	Pattern string      `yaml:"pattern"`
	Fields  []YamlField `yaml:"fields"`
}

var yamlLine = regexp.MustCompile(`line (\d+)`)

// ParseYaml parses a given YAML declaration file.  As for the declaration
// language, the source map records the text from which each component of a
// declaration was read.
func ParseYaml(srcfile *source.File) ([]Definition, *source.Map[Node], []source.SyntaxError) {
	var (
		root   yaml.Node
		defs   []Definition
		srcmap = source.NewSourceMap[Node](srcfile)
	)
	//
	if err := yaml.Unmarshal([]byte(string(srcfile.Contents())), &root); err != nil {
		return nil, nil, yamlError(srcfile, err)
	} else if len(root.Content) == 0 {
		// empty file
		return nil, srcmap, nil
	}
	//
	list := root.Content[0]
	if list.Kind != yaml.SequenceNode {
		return nil, nil, nodeError(srcfile, list, "expected a list of declarations")
	}
	//
	for i, item := range list.Content {
		def, errs := parseYamlDefinition(srcfile, srcmap, i, item)
		if len(errs) > 0 {
			return nil, nil, errs
		}
		//
		defs = append(defs, def)
	}
	//
	return defs, srcmap, nil
}

func parseYamlDefinition(srcfile *source.File, srcmap *source.Map[Node], index int, item *yaml.Node,
) (Definition, []source.SyntaxError) {
	var (
		raw YamlDefinition
		def Definition
		ok  bool
	)
	//
	if item.Kind != yaml.MappingNode {
		return def, nodeError(srcfile, item, "expected a declaration")
	} else if err := item.Decode(&raw); err != nil {
		return def, nodeError(srcfile, item, err.Error())
	}
	//
	def.Name = raw.Name
	def.Pattern = raw.Pattern
	//
	if def.Storage, ok = ParseStorage(raw.Storage); !ok {
		return def, nodeError(srcfile, lookup(item, "storage"),
			fmt.Sprintf("unknown storage type %q, expected u8, u16, u32 or u64", raw.Storage))
	}
	//
	srcmap.Put(Node{index, -1, NamePart}, nodeSpan(srcfile, lookup(item, "name")))
	srcmap.Put(Node{index, -1, StoragePart}, nodeSpan(srcfile, lookup(item, "storage")))
	srcmap.Put(Node{index, -1, PatternPart}, nodeSpan(srcfile, lookup(item, "pattern")))
	//
	fields := lookup(item, "fields")
	//
	for i, f := range raw.Fields {
		node := fields.Content[i]
		runes := []rune(f.Token)
		//
		if len(runes) != 1 {
			return def, nodeError(srcfile, lookup(node, "token"), "token needs to be a single char")
		}
		//
		field := Field{runes[0], f.Getter, optional(f.Setter)}
		//
		srcmap.Put(Node{index, i, TokenPart}, nodeSpan(srcfile, lookup(node, "token")))
		srcmap.Put(Node{index, i, GetterPart}, nodeSpan(srcfile, lookup(node, "getter")))
		srcmap.Put(Node{index, i, SetterPart}, nodeSpan(srcfile, lookup(node, "setter")))
		//
		def.Fields = append(def.Fields, field)
	}
	//
	return def, nil
}

// Find the value for a given key of a mapping node.  If there is no such key,
// then the mapping itself is returned.
func lookup(node *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	//
	return node
}

// Determine the span of text from which a given node was parsed.  Only the
// spans of scalars are precise; for anything else the span covers only the
// first character.
func nodeSpan(srcfile *source.File, node *yaml.Node) source.Span {
	var (
		start = srcfile.Offset(node.Line, node.Column)
		n     = 1
	)
	//
	if node.Kind == yaml.ScalarNode {
		n = len([]rune(node.Value))
		//
		if node.Style&(yaml.DoubleQuotedStyle|yaml.SingleQuotedStyle) != 0 {
			n += 2
		}
	}
	//
	return source.NewSpan(start, min(start+n, len(srcfile.Contents())))
}

func nodeError(srcfile *source.File, node *yaml.Node, msg string) []source.SyntaxError {
	return []source.SyntaxError{*srcfile.SyntaxError(nodeSpan(srcfile, node), msg)}
}

// Report an error from the YAML decoder, highlighting the line concerned if
// this can be determined.
func yamlError(srcfile *source.File, err error) []source.SyntaxError {
	var span source.Span
	//
	if m := yamlLine.FindStringSubmatch(err.Error()); m != nil {
		line, _ := strconv.Atoi(m[1])
		start := srcfile.Offset(line, 1)
		span = source.NewSpan(start, start)
	}
	//
	return []source.SyntaxError{*srcfile.SyntaxError(span, err.Error())}
}

// Optional setter, where an empty name means none.
func optional(name string) util.Option[string] {
	if name == "" {
		return util.None[string]()
	}
	//
	return util.Some(name)
}
