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

// This file implements stage 1 of the lexer: it reads bytes
// from a sourceReader and produces a flat stream of tokens, including
// the raw NEWLINE-with-indentation-count token that stage 2 (indentresolver.go)
// later expands into INDENT/DEDENT.

import (
	"io"
	"strconv"
	"strings"
)

const eof byte = 0

// operatorChars is the set of bytes that can appear in an operator.
const operatorChars = "=<>!.,()[]{};:+-*/&"

// operators is the operator table, longest match first. The
// two "no such operator" entries exist only so the greedy match can
// detect them and report "there is no '===' operator" (or '!==')
// instead of splitting them into two valid operators.
var operators = []string{
	"...", "===", "!==",
	"==", "!=", "->", "<=", ">=", "++", "--",
	".", ",", ":", ";", "=", "(", ")", "{", "}", "[", "]", "&", "*", "/", "+", "-", "<", ">",
}

// a lexer holds the state needed to run stage 1 over one source file.
type lexer struct {
	src           *sourceReader
	maxNameLength int
}

// newLexer builds a stage-1 lexer over r. A synthetic
// leading LF is pushed back before the first token is read, so the
// first real line always follows a NEWLINE and start-of-file
// indentation is handled by the same code path as any other line.
func newLexer(filename string, r io.Reader, opts Options) *lexer {
	src := newSourceReader(filename, r)
	src.unreadByte('\n')
	return &lexer{src: src, maxNameLength: opts.maxNameLength()}
}

// TokenizeRaw reads path's content (from r) and
// returns the stage-1 token stream, ending in exactly one END_OF_FILE
// token. The returned tokens still carry raw NEWLINE indentation counts;
// pass them to ResolveIndentation to get the final stream.
func TokenizeRaw(filename string, r io.Reader, opts Options) ([]*Token, error) {
	l := newLexer(filename, r, opts)
	var tokens []*Token
	for {
		tok, err := l.readToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == END_OF_FILE {
			return tokens, nil
		}
	}
}

func (l *lexer) errorf(format string, args ...interface{}) error {
	return errorf(l.src.loc, format, args...)
}

// readToken reads and returns the next token, consuming '#' comments and
// spaces as it goes.
func (l *lexer) readToken() (*Token, error) {
	for {
		loc := l.src.loc
		c, err := l.src.readByte()
		if err != nil {
			return nil, err
		}
		switch {
		case c == '#':
			if err := l.consumeRestOfLine(); err != nil {
				return nil, err
			}
			continue
		case c == ' ':
			continue
		case c == '\n':
			return l.readIndentationAsNewline(loc)
		case c == eof:
			return &Token{Kind: END_OF_FILE, Location: loc}, nil
		case c == '\'':
			return l.readCharLiteral(loc)
		case c == '"':
			return l.readStringLiteral(loc)
		case isIdentifierOrNumberByte(c):
			return l.readIdentifierOrNumber(loc, c)
		case strings.IndexByte(operatorChars, c) >= 0:
			l.src.unreadByte(c)
			return l.readOperator(loc)
		default:
			return nil, l.describeUnexpectedByte(loc, c)
		}
	}
}

func (l *lexer) describeUnexpectedByte(loc Location, c byte) error {
	if c >= 0x20 && c < 0x7f {
		return errorf(loc, "unexpected byte '%c' (0x%02x)", c, c)
	}
	return errorf(loc, "unexpected byte 0x%02x", c)
}

func (l *lexer) consumeRestOfLine() error {
	for {
		c, err := l.src.readByte()
		if err != nil {
			return err
		}
		if c == '\n' {
			l.src.unreadByte('\n')
			return nil
		}
		if c == eof {
			return nil
		}
	}
}

// readIndentationAsNewline implements read_indentation_as_newline_token:
// the leading '\n' has already been consumed. It counts the spaces that
// start the following line, treating a blank or comment-only line as
// resetting the count to zero, until it finds the first byte of real
// content (which is pushed back) or end of file.
func (l *lexer) readIndentationAsNewline(loc Location) (*Token, error) {
	tok := &Token{Kind: NEWLINE, Location: loc}
	for {
		c, err := l.src.readByte()
		if err != nil {
			return nil, err
		}
		switch c {
		case ' ':
			tok.Indent++
		case '\n':
			tok.Indent = 0
		case '#':
			if err := l.consumeRestOfLine(); err != nil {
				return nil, err
			}
		case eof:
			return &Token{Kind: END_OF_FILE, Location: loc}, nil
		default:
			l.src.unreadByte(c)
			return tok, nil
		}
	}
}

func isIdentifierOrNumberByte(c byte) bool {
	return ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z') || c == '_' || ('0' <= c && c <= '9')
}

func (l *lexer) readIdentifierOrNumber(loc Location, first byte) (*Token, error) {
	name := []byte{first}
	for {
		c, err := l.src.readByte()
		if err != nil {
			return nil, err
		}
		if !isIdentifierOrNumberByte(c) {
			l.src.unreadByte(c)
			break
		}
		if len(name) >= l.maxNameLength-1 {
			return nil, l.errorf("name is too long: %.20s...", name)
		}
		name = append(name, c)
	}
	text := string(name)

	switch {
	case IsKeyword(text):
		return &Token{Kind: KEYWORD, Location: loc, Text: text}, nil
	case text[0] >= '0' && text[0] <= '9':
		v, err := parseIntegerLiteral(text)
		if err != nil {
			return nil, errorf(loc, "%s", err)
		}
		return &Token{Kind: INT, Location: loc, Int: v}, nil
	default:
		return &Token{Kind: NAME, Location: loc, Text: text}, nil
	}
}

// parseIntegerLiteral parses the decimal/hex/binary number grammar
// §3/§6: decimal \d+ (no leading zero unless the whole literal is "0"),
// 0x[0-9A-Fa-f]+, or 0b[01]+.
func parseIntegerLiteral(text string) (int64, error) {
	switch {
	case text == "0":
		return 0, nil
	case strings.HasPrefix(text, "0x"):
		digits := text[2:]
		if digits == "" || !isAllHexDigits(digits) {
			return 0, invalidNumberError(text)
		}
		v, err := strconv.ParseUint(digits, 16, 64)
		if err != nil {
			return 0, invalidNumberError(text)
		}
		return int64(v), nil
	case strings.HasPrefix(text, "0b"):
		digits := text[2:]
		if digits == "" || !isAllBinaryDigits(digits) {
			return 0, invalidNumberError(text)
		}
		v, err := strconv.ParseUint(digits, 2, 64)
		if err != nil {
			return 0, invalidNumberError(text)
		}
		return int64(v), nil
	case text[0] == '0':
		return 0, errAsError("unnecessary zero at start of number")
	default:
		if !isAllDecimalDigits(text) {
			return 0, invalidNumberError(text)
		}
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return 0, invalidNumberError(text)
		}
		return v, nil
	}
}

type plainError string

func (e plainError) Error() string { return string(e) }

func errAsError(msg string) error { return plainError(msg) }

func invalidNumberError(text string) error {
	return plainError("invalid number or variable name \"" + text + "\"")
}

func isAllHexDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}

func isAllBinaryDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' {
			return false
		}
	}
	return true
}

func isAllDecimalDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func (l *lexer) readOperator(loc Location) (*Token, error) {
	var buf []byte
	for len(buf) < 3 {
		c, err := l.src.readByte()
		if err != nil {
			return nil, err
		}
		if c == eof || strings.IndexByte(operatorChars, c) < 0 {
			l.src.unreadByte(c)
			break
		}
		buf = append(buf, c)
	}
	text := string(buf)

	for _, op := range operators {
		if strings.HasPrefix(text, op) {
			for i := len(text) - 1; i >= len(op); i-- {
				l.src.unreadByte(text[i])
			}
			if op == "===" || op == "!==" {
				break
			}
			return &Token{Kind: OPERATOR, Location: loc, Text: op}, nil
		}
	}
	return nil, errorf(loc, "there is no '%s' operator", text)
}

func (l *lexer) readCharLiteral(loc Location) (*Token, error) {
	bytes, err := l.readQuoted(loc, '\'')
	if err != nil {
		return nil, err
	}
	switch len(bytes) {
	case 0:
		return nil, errorf(loc, "empty character literal: ''")
	case 1:
		return &Token{Kind: CHAR, Location: loc, Char: bytes[0]}, nil
	default:
		return nil, errorf(loc, "single quotes are for a single character, maybe use double quotes to instead make a string?")
	}
}

func (l *lexer) readStringLiteral(loc Location) (*Token, error) {
	bytes, err := l.readQuoted(loc, '"')
	if err != nil {
		return nil, err
	}
	return &Token{Kind: STRING, Location: loc, Str: bytes}, nil
}

// readQuoted reads the body of a '...' or "...' literal; the opening
// quote has already been consumed.
func (l *lexer) readQuoted(loc Location, quote byte) ([]byte, error) {
	var result []byte
	for {
		c, err := l.src.readByte()
		if err != nil {
			return nil, err
		}
		switch c {
		case quote:
			return result, nil
		case '\n':
			return nil, l.missingEndQuote(loc, quote)
		case eof:
			return nil, l.missingEndQuote(loc, quote)
		case '\\':
			b, cont, err := l.readEscape(loc, quote)
			if err != nil {
				return nil, err
			}
			if !cont {
				result = append(result, b)
			}
		default:
			result = append(result, c)
		}
	}
}

// readEscape reads the byte after a backslash. cont is true for the
// "\<LF>" line-continuation escape, which appends nothing.
func (l *lexer) readEscape(loc Location, quote byte) (b byte, cont bool, err error) {
	c, err := l.src.readByte()
	if err != nil {
		return 0, false, err
	}
	switch {
	case c == 'n':
		return '\n', false, nil
	case c == 'r':
		return '\r', false, nil
	case c == '\\':
		return '\\', false, nil
	case c == '\'':
		return '\'', false, nil
	case c == '"':
		return '"', false, nil
	case c >= '0' && c <= '9':
		if c == '0' && quote == '"' {
			return 0, false, errorf(loc, "strings cannot contain zero bytes (\\0), because that is the special end marker byte")
		}
		return c - '0', false, nil
	case c == '\n':
		if quote == '\'' {
			return 0, false, l.missingEndQuote(loc, quote)
		}
		return 0, true, nil
	case c == eof:
		return 0, false, l.missingEndQuote(loc, quote)
	default:
		if c >= 0x20 && c < 0x7f {
			return 0, false, errorf(l.src.loc, "unknown escape: '\\%c'", c)
		}
		return 0, false, errorf(l.src.loc, "unknown '\\' escape")
	}
}

func (l *lexer) missingEndQuote(loc Location, quote byte) error {
	if quote == '"' {
		return errorf(loc, `missing " to end the string`)
	}
	return errorf(loc, "missing ' to end the character")
}
