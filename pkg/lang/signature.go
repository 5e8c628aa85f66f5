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
	"strconv"
	"strings"
)

// A Param is one resolved argument of a function Signature: a name and
// its interned type.
type Param struct {
	Name string
	Type *Type
}

// A Signature is the interned, fully-resolved shape of a function: its
// name, its ordered parameters, whether it accepts additional varargs,
// and its return type (nil means void). Two signatures for the same
// function name cannot coexist within one program.
type Signature struct {
	Name               string
	Args               []Param
	Varargs            bool
	ReturnType         *Type // nil means void
	ReturnTypeLocation Location
	Location           Location // location of the function name token
}

// String renders sig as, e.g., "add(a: int, b: int)" or
// "add(a: int, b: int, ...)". It never includes the return type; use
// StringWithReturnType for that. This is used to build the "nth argument
// of function ..." family of error messages.
func (sig *Signature) String() string {
	return sig.render(false)
}

// StringWithReturnType is like String but appends " -> returntype" (or
// " -> void" for a void function).
func (sig *Signature) StringWithReturnType() string {
	return sig.render(true)
}

func (sig *Signature) render(includeReturnType bool) string {
	var b strings.Builder
	b.WriteString(sig.Name)
	b.WriteByte('(')
	for i, a := range sig.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.Name)
		b.WriteString(": ")
		b.WriteString(a.Type.Name())
	}
	if sig.Varargs {
		if len(sig.Args) > 0 {
			b.WriteString(", ")
		}
		b.WriteString("...")
	}
	b.WriteByte(')')
	if includeReturnType {
		b.WriteString(" -> ")
		if sig.ReturnType == nil {
			b.WriteString("void")
		} else {
			b.WriteString(sig.ReturnType.Name())
		}
	}
	return b.String()
}

// nthWord returns the English ordinal word for 1-based n: "first",
// "second", "third", ..., falling back to "nth" spellings for anything
// past what a human would name a function argument by hand.
func nthWord(n int) string {
	words := []string{
		"zeroth", "first", "second", "third", "fourth", "fifth",
		"sixth", "seventh", "eighth", "ninth", "tenth",
	}
	if n >= 0 && n < len(words) {
		return words[n]
	}
	return ordinalSuffix(n)
}

func ordinalSuffix(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}
