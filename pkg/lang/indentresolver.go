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

package lang

import "io"

// This file implements stage 2 of the lexer: it rewrites the
// stage-1 token stream, replacing each NEWLINE's indentation-count
// payload with INDENT/DEDENT tokens, synthesizing a trailing
// NEWLINE+DEDENTs at end of file, and discarding the synthetic leading
// NEWLINE that stage 1 always produces.

const indentWidth = 4

// ResolveIndentation rewrites a stage-1 token stream (as produced by
// TokenizeRaw) into the final stream a parser consumes: every NEWLINE is
// followed by the INDENT or DEDENT tokens implied by the indentation
// change, end of file is preceded by a synthesized NEWLINE and however
// many DEDENTs are needed to return to level zero, and the leading
// NEWLINE that unifies start-of-file handling is removed.
func ResolveIndentation(tokens []*Token) ([]*Token, error) {
	out := make([]*Token, 0, len(tokens)+4)
	level := 0

	for _, tok := range tokens {
		switch tok.Kind {
		case NEWLINE:
			n := tok.Indent
			afterLoc := Location{Filename: tok.Location.Filename, Line: tok.Location.Line + 1}
			if n%indentWidth != 0 {
				return nil, errorf(afterLoc, "indentation must be a multiple of %d spaces", indentWidth)
			}
			out = append(out, &Token{Kind: NEWLINE, Location: tok.Location})
			for level < n {
				out = append(out, &Token{Kind: INDENT, Location: afterLoc})
				level += indentWidth
			}
			for level > n {
				out = append(out, &Token{Kind: DEDENT, Location: afterLoc})
				level -= indentWidth
			}
		case END_OF_FILE:
			out = append(out, &Token{Kind: NEWLINE, Location: tok.Location})
			for level > 0 {
				out = append(out, &Token{Kind: DEDENT, Location: tok.Location})
				level -= indentWidth
			}
			out = append(out, tok)
		default:
			out = append(out, tok)
		}
	}

	if len(out) == 0 || out[0].Kind != NEWLINE {
		// TokenizeRaw produces a leading NEWLINE because of the
		// synthetic LF it pushes back before reading, except for an empty
		// or blank file, whose stream is a lone END_OF_FILE; the NEWLINE
		// synthesized before that END_OF_FILE is then the one removed. A
		// stream that doesn't start with either was not produced by
		// TokenizeRaw.
		return nil, errAsError("malformed token stream: missing synthetic leading NEWLINE")
	}
	return out[1:], nil
}

// Lex runs stage 1 and stage 2 together, returning the final token
// stream a parser would consume.
func Lex(filename string, r io.Reader, opts Options) ([]*Token, error) {
	raw, err := TokenizeRaw(filename, r, opts)
	if err != nil {
		return nil, err
	}
	return ResolveIndentation(raw)
}
