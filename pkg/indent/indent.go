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

// Package indent prefixes every line of some text with a fixed string.
// cmd/joucheck's --verbose mode uses it to nest the token stream it
// prints under a readable header.
package indent

import "io"

// String returns in with prefix inserted at the start and after every
// newline, so that prefix precedes every line of in. A trailing newline
// does not produce a dangling prefix with nothing after it.
func String(prefix, in string) string {
	return string(Bytes([]byte(prefix), []byte(in)))
}

// Bytes is String for []byte.
func Bytes(prefix, in []byte) []byte {
	var out []byte
	atLineStart := true
	for _, c := range in {
		if atLineStart {
			out = append(out, prefix...)
		}
		out = append(out, c)
		atLineStart = c == '\n'
	}
	return out
}

// writer implements io.Writer, inserting prefix at the start of every
// line written to it, across any number of Write calls, regardless of
// where a call's buffer boundary falls relative to a line.
type writer struct {
	w           io.Writer
	prefix      []byte
	atLineStart bool
}

// NewWriter returns an io.Writer that copies to w, with every line
// prefixed by prefix.
func NewWriter(w io.Writer, prefix string) io.Writer {
	return &writer{w: w, prefix: []byte(prefix), atLineStart: true}
}

// Write implements io.Writer. The returned byte count is always in
// terms of p, the caller's buffer, even though what actually reaches the
// underlying writer is a longer, prefixed buffer: n is the number of
// leading bytes of p whose prefixed representation was written in full.
func (iw *writer) Write(p []byte) (int, error) {
	buf := make([]byte, 0, len(p)+len(iw.prefix))
	// srcIndex[i] is the index into p that buf[i] came from, or -1 if
	// buf[i] is a byte of the inserted prefix.
	srcIndex := make([]int, 0, cap(buf))

	atLineStart := iw.atLineStart
	for i, c := range p {
		if atLineStart {
			for range iw.prefix {
				srcIndex = append(srcIndex, -1)
			}
			buf = append(buf, iw.prefix...)
		}
		buf = append(buf, c)
		srcIndex = append(srcIndex, i)
		atLineStart = c == '\n'
	}

	m, err := iw.w.Write(buf)
	if m > len(buf) {
		m = len(buf)
	}
	if err == nil && m < len(buf) {
		err = io.ErrShortWrite
	}

	n := 0
	for i := 0; i < m; i++ {
		if srcIndex[i] >= 0 {
			n = srcIndex[i] + 1
		}
	}

	if err == nil {
		iw.atLineStart = atLineStart
	}
	return n, err
}
