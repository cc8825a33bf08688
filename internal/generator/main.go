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

// Command generator regenerates the bitfield types of pkg/ipv4 from their
// declaration file.
// This is invoked via "go generate" from within pkg/ipv4.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"slices"
	"strings"

	"github.com/consensys/go-bitrange/pkg/codegen"
	"github.com/consensys/go-bitrange/pkg/decl"
)

const copyrightHolder = "Consensys Software Inc."

type target struct {
	// Declaration file to read
	Input string
	// Go source file to write
	Output  string
	Package string
}

func main() {
	targets := []target{
		{Input: "ipv4.bitrange", Output: "ipv4_gen.go", Package: "ipv4"},
	}
	//
	for _, t := range targets {
		decls, errs, err := decl.ReadFiles(t.Input)
		assertNoError(err, "for declarations \"%s\"", t.Input)
		//
		for _, e := range errs {
			fmt.Println(e.Error())
		}
		//
		if len(errs) > 0 {
			os.Exit(1)
		}
		//
		cfg := codegen.Config{Package: t.Package, License: copyrightHolder, Year: 2025}
		assertNoError(codegen.Generate(t.Output, decls, cfg), "for package \"%s\"", t.Package)
		// run gofmt on generated file
		runCmd("gofmt", "-s", "-w", t.Output)
	}
}

func runCmd(name string, arg ...string) {
	fmt.Println(name, strings.Join(arg, " "))
	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	assertNoError(cmd.Run(), "")
}

func assertNoError(err error, contextAndArgs ...any) {
	if err != nil {
		msg := err.Error()

		if len(contextAndArgs) > 0 {
			allArgs := append(slices.Clone(contextAndArgs[1:]), err)
			msg = fmt.Sprintf(contextAndArgs[0].(string)+": %v", allArgs...)
		}

		fmt.Println(msg)
		os.Exit(1)
	}
}
