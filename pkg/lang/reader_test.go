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

import (
	"strings"
	"testing"

	"github.com/openconfig/gnmi/errdiff"
)

func TestSourceReaderCRLF(t *testing.T) {
	r := newSourceReader("f.jou", strings.NewReader("a\r\nb"))
	want := []byte{'a', '\n', 'b', 0}
	for i, w := range want {
		c, err := r.readByte()
		if err != nil {
			t.Fatalf("byte %d: %v", i, err)
		}
		if c != w {
			t.Errorf("byte %d: got %q, want %q", i, c, w)
		}
	}
}

func TestSourceReaderLoneCR(t *testing.T) {
	r := newSourceReader("f.jou", strings.NewReader("a\rb"))
	if _, err := r.readByte(); err != nil {
		t.Fatalf("first byte: %v", err)
	}
	_, err := r.readByte()
	if diff := errdiff.Substring(err, "CR"); diff != "" {
		t.Errorf(diff)
	}
}

func TestSourceReaderZeroByte(t *testing.T) {
	r := newSourceReader("f.jou", strings.NewReader("a\x00b"))
	if _, err := r.readByte(); err != nil {
		t.Fatalf("first byte: %v", err)
	}
	_, err := r.readByte()
	if diff := errdiff.Substring(err, "zero byte"); diff != "" {
		t.Errorf(diff)
	}
}

func TestSourceReaderPushback(t *testing.T) {
	r := newSourceReader("f.jou", strings.NewReader("ab"))
	c, _ := r.readByte()
	if c != 'a' {
		t.Fatalf("got %q, want 'a'", c)
	}
	r.unreadByte('a')
	c, _ = r.readByte()
	if c != 'a' {
		t.Fatalf("after pushback: got %q, want 'a'", c)
	}
	c, _ = r.readByte()
	if c != 'b' {
		t.Fatalf("got %q, want 'b'", c)
	}
}

func TestSourceReaderLineTracking(t *testing.T) {
	r := newSourceReader("f.jou", strings.NewReader("a\nb\nc"))
	if r.loc.Line != 1 {
		t.Fatalf("initial line = %d, want 1", r.loc.Line)
	}
	r.readByte() // 'a'
	r.readByte() // '\n'
	if r.loc.Line != 2 {
		t.Fatalf("after first newline, line = %d, want 2", r.loc.Line)
	}
	c, _ := r.readByte() // 'b'
	if c != 'b' {
		t.Fatalf("got %q, want 'b'", c)
	}
	r.unreadByte('b')
	r.unreadByte('\n')
	if r.loc.Line != 1 {
		t.Fatalf("after un-reading the newline, line = %d, want 1", r.loc.Line)
	}
}
