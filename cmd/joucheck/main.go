// Copyright 2024 The Jou Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Program joucheck lexes a single jou source file and reports the first
// lexing error, if any, in "file:line: message" form.
//
// Usage: joucheck [--verbose] FILENAME
//
// joucheck does not parse or type-check: building an AST from the token
// stream is the parser's job, an external collaborator this front end
// does not include (see pkg/lang's package doc).
// joucheck exercises exactly the part of the front end that has no such
// external dependency: the lexer. --verbose additionally dumps the full
// token stream, each pretty-printed token indented one level via
// pkg/indent under a "tokens:" header, so that every field of a token
// is visible. The indentation is the same for every token; INDENT and
// DEDENT tokens appear in the dump but do not change it.
package main

import (
	"fmt"
	"os"

	"github.com/kylelemons/godebug/pretty"
	"github.com/pborman/getopt"

	"github.com/Arrinao/jou/pkg/indent"
	"github.com/Arrinao/jou/pkg/lang"
)

var stop = os.Exit

func main() {
	var verbose bool
	getopt.BoolVarLong(&verbose, "verbose", 'v', "print the token stream")
	getopt.SetParameters("FILENAME")

	if err := getopt.Getopt(nil); err != nil {
		fmt.Fprintln(os.Stderr, err)
		getopt.PrintUsage(os.Stderr)
		stop(2)
	}

	args := getopt.Args()
	if len(args) != 1 {
		getopt.PrintUsage(os.Stderr)
		stop(2)
	}
	filename := args[0]

	f, err := os.Open(filename)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop(1)
	}
	defer f.Close()

	tokens, err := lang.Lex(filename, f, lang.Options{})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop(1)
	}

	if verbose {
		w := indent.NewWriter(os.Stderr, "    ")
		fmt.Fprintln(os.Stderr, "tokens:")
		for _, tok := range tokens {
			fmt.Fprintln(w, pretty.Sprint(tok))
		}
	}

	stop(0)
}
