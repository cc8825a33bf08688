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
	"strings"

	"github.com/chzyer/readline"
	"github.com/consensys/go-bitrange/pkg/decl"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl [flags] declaration_file(s)",
	Short: "interactively decode words of bitfield declarations.",
	Long: `Start an interactive session in which each line of hex-encoded bytes is
decoded as words of the current declared type.  Type :help for a list of
commands.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		decls := ReadDeclarationFiles(args)
		//
		if len(decls) == 0 {
			fmt.Println("no declarations found")
			os.Exit(1)
		}
		//
		session := &replSession{decls, decls[0]}
		//
		if name := GetString(cmd, "type"); name != "" {
			session.current = findDeclaration(name, decls)
		}
		//
		if err := session.run(); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

const replHelp = `  <hex>        decode bytes as words of the current type
  :type <name> switch the current type
  :list        list declared types
  :help        show this message
  :quit        exit`

// State of an interactive session.
type replSession struct {
	decls   []*decl.Declaration
	current *decl.Declaration
}

func (s *replSession) prompt() string {
	return s.current.Name() + "> "
}

func (s *replSession) run() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          s.prompt(),
		InterruptPrompt: "^C",
		EOFPrompt:       ":quit",
	})
	//
	if err != nil {
		return fmt.Errorf("failed to initialise readline: %w", err)
	}
	//
	defer rl.Close()
	//
	for {
		rl.SetPrompt(s.prompt())
		//
		line, err := rl.Readline()
		//
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			// Ctrl+C on an empty line exits, otherwise the line is discarded.
			if len(line) == 0 {
				return nil
			}
			//
			continue
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return err
		}
		//
		if !s.eval(rl.Stdout(), line) {
			return nil
		}
	}
}

// Evaluate a single line of input, returning false if the session should end.
func (s *replSession) eval(out io.Writer, line string) bool {
	line = strings.TrimSpace(line)
	//
	switch {
	case line == "":
		// ignore
	case line == ":quit" || line == ":q":
		return false
	case line == ":help":
		fmt.Fprintln(out, replHelp)
	case line == ":list":
		for _, d := range s.decls {
			marker := " "
			if d == s.current {
				marker = "*"
			}
			//
			fmt.Fprintf(out, "%s %s (u%d)\n", marker, d.Name(), d.Storage())
		}
	case strings.HasPrefix(line, ":type"):
		name := strings.TrimSpace(strings.TrimPrefix(line, ":type"))
		//
		if d := lookupDeclaration(name, s.decls); d != nil {
			s.current = d
		} else {
			fmt.Fprintf(out, "unknown declaration %q\n", name)
		}
	case strings.HasPrefix(line, ":"):
		fmt.Fprintf(out, "unknown command %s (try :help)\n", line)
	default:
		if bytes, err := parseHex(line); err != nil {
			fmt.Fprintln(out, err)
		} else if err := decodeWords(out, s.current, bytes); err != nil {
			fmt.Fprintln(out, err)
		}
	}
	//
	return true
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.Flags().StringP("type", "t", "", "initial declared type (default: first declaration).")
}
