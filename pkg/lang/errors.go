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
	"fmt"
	"strings"
)

// A Location identifies a single position in a source file by line
// number. It is attached to every Token, AST node, and Error.
type Location struct {
	Filename string
	Line     int
}

// String returns loc in the "filename:lineno" form errors are prefixed
// with.
func (loc Location) String() string {
	return fmt.Sprintf("%s:%d", loc.Filename, loc.Line)
}

// An Error is the one kind of failure the front end reports. All of
// Lex's and Check's failures are fatal: the first one stops the run.
type Error struct {
	Location Location
	Message  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Location, e.Message)
}

// errorf builds an *Error at loc with a printf-style message.
func errorf(loc Location, format string, args ...interface{}) *Error {
	return &Error{Location: loc, Message: fmt.Sprintf(format, args...)}
}

// substituteCastTemplate fills in a message template that may contain the
// literal substrings "FROM" and "TO" with the display names of from and
// to. An empty template means "force" the cast silently (no error message
// is ever built for it); callers must not invoke this with an empty
// template.
//
// This mirrors fail_with_implicit_cast_error in the original C checker:
// the template is plain text with two placeholders, not a format string,
// so that callers can write natural English error messages without
// juggling %s ordering.
func substituteCastTemplate(template string, from, to *Type) string {
	r := strings.NewReplacer("FROM", from.Name(), "TO", to.Name())
	return r.Replace(template)
}
