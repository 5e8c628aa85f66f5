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

// Options controls the handful of knobs the front end exposes. The zero
// value is the correct set of options for a normal compile.
type Options struct {
	// MaxNameLength is the length in bytes at which an identifier,
	// keyword or number makes the lexer fail with "name is too long";
	// the longest accepted one is MaxNameLength-1 bytes. Zero means use
	// the language default of 100.
	MaxNameLength int

	// TabWidth documents that tab bytes are never expanded while
	// counting indentation; indentation is spaces only. This field is
	// not read by Lex. It exists so that choice has a named,
	// discoverable home instead of being an unwritten assumption.
	TabWidth int
}

func (o Options) maxNameLength() int {
	if o.MaxNameLength > 0 {
		return o.MaxNameLength
	}
	return 100
}
