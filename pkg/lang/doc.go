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

// Package lang implements the front end of a compiler for jou, a small,
// statically-typed, Python-indented, C-like language.
//
// The front end has three stages:
//
//	bytes -> Lex -> tokens -> Parse (external) -> AST -> Check -> decorated AST
//
// Lex turns source bytes into a token stream with Python-style significant
// indentation: INDENT and DEDENT tokens are synthesized wherever the
// indentation level of a line changes.
//
// Check walks an already-parsed AST, resolves names, infers the type of
// every expression, and decorates the tree with the implicit casts a
// backend must insert. It does not parse source text itself; the parser
// that builds the AST from a token stream is an external collaborator
// this module does not include.
//
// A front-end failure is always a single *Error carrying a Location, in
// the style "file:line: message". There is no error recovery: the first
// error reported by Lex or Check ends the run.
package lang
