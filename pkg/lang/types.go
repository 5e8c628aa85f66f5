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

// This file implements the type lattice: a closed set of primitive,
// pointer, and struct types, with interning so that type identity can be
// tested by pointer equality. It is the Go analogue of types.c/typeops.c
// in the jou front end.

import (
	"fmt"
	"sync"
)

// A Kind discriminates the closed set of types the language has.
type Kind int

const (
	KindBool Kind = iota
	KindSignedInteger
	KindUnsignedInteger
	KindPointer
	KindVoidPointer
	KindStruct
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindSignedInteger:
		return "signed integer"
	case KindUnsignedInteger:
		return "unsigned integer"
	case KindPointer:
		return "pointer"
	case KindVoidPointer:
		return "void pointer"
	case KindStruct:
		return "struct"
	default:
		return fmt.Sprintf("kind-%d", int(k))
	}
}

// StructField is one named, typed field of a struct, in declaration order.
type StructField struct {
	Name string
	Type *Type
}

// A Type is a single member of the closed type lattice. Two Types
// describe the same logical type if and only if they are the same
// pointer: primitives and the void pointer type are interned once per
// process, and pointer-to-T is interned once per T (cached on T).
type Type struct {
	kind Kind

	// width is set for KindSignedInteger / KindUnsignedInteger: 8, 16,
	// 32, or 64.
	width int

	// pointee is set for KindPointer: the type this one points to.
	pointee *Type

	// name, fields are set for KindStruct.
	name   string
	fields []StructField

	mu  sync.Mutex
	ptr *Type // lazily-created pointer-to-this, see PointerTo.
}

// Name returns the display name used in error messages: "bool", "int",
// "byte", "<N-bit signed integer>", "void*", "T*", or a struct name.
func (t *Type) Name() string {
	switch t.kind {
	case KindBool:
		return "bool"
	case KindSignedInteger, KindUnsignedInteger:
		return integerName(t.width, t.kind == KindSignedInteger)
	case KindPointer:
		return t.pointee.Name() + "*"
	case KindVoidPointer:
		return "void*"
	case KindStruct:
		return t.name
	default:
		return "<unknown type>"
	}
}

// Kind returns t's discriminant.
func (t *Type) Kind() Kind { return t.kind }

// Width returns the bit width of an integer type, or 0 for any other
// kind.
func (t *Type) Width() int { return t.width }

// Signed reports whether t is a signed integer type.
func (t *Type) Signed() bool { return t.kind == KindSignedInteger }

// Pointee returns the type a pointer type points to, or nil if t is not
// KindPointer (note: KindVoidPointer has no pointee; it is opaque).
func (t *Type) Pointee() *Type { return t.pointee }

// StructName returns the struct's name, or "" if t is not KindStruct.
func (t *Type) StructName() string { return t.name }

// Fields returns the struct's ordered fields, or nil if t is not
// KindStruct.
func (t *Type) Fields() []StructField { return t.fields }

// Field looks up a field by name, returning (field, true) if found.
func (t *Type) Field(name string) (StructField, bool) {
	for _, f := range t.fields {
		if f.Name == name {
			return f, true
		}
	}
	return StructField{}, false
}

// IsIntegerType reports whether t is a signed or unsigned integer.
func (t *Type) IsIntegerType() bool {
	return t.kind == KindSignedInteger || t.kind == KindUnsignedInteger
}

// IsPointerType reports whether t is a pointer type, including void*.
func (t *Type) IsPointerType() bool {
	return t.kind == KindPointer || t.kind == KindVoidPointer
}

// IsStructType reports whether t is a struct type.
func (t *Type) IsStructType() bool { return t.kind == KindStruct }

func integerName(width int, signed bool) string {
	switch {
	case signed && width == 32:
		return "int"
	case !signed && width == 8:
		return "byte"
	case signed:
		return fmt.Sprintf("<%d-bit signed integer>", width)
	default:
		return fmt.Sprintf("<%d-bit unsigned integer>", width)
	}
}

// PointerTo returns the unique pointer type whose pointee is t. Calling
// PointerTo(t) twice returns the identical *Type both times (see Testable
// Property 7).
func PointerTo(t *Type) *Type {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.ptr == nil {
		t.ptr = &Type{kind: KindPointer, pointee: t}
	}
	return t.ptr
}

// CreateStruct constructs a fresh struct type. Each call returns a new,
// independently-interned Type, even if name and fields are identical to
// a previously created struct; struct uniqueness within a program is
// enforced by the checker, not by this function.
func CreateStruct(name string, fields []StructField) *Type {
	cp := make([]StructField, len(fields))
	copy(cp, fields)
	return &Type{kind: KindStruct, name: name, fields: cp}
}

// --- process-wide interned primitives ---

var (
	primitivesOnce sync.Once

	boolType       *Type
	voidPointer    *Type
	signedIntegers map[int]*Type
	unsignedInts   map[int]*Type
)

// initPrimitives builds the process-wide primitive types exactly once,
// mirroring init_types()/atexit(free_global_state) in types.c: the
// registry is set up before any compilation's type checking begins and
// is read-only from then on, so no further locking is needed to read it.
func initPrimitives() {
	primitivesOnce.Do(func() {
		boolType = &Type{kind: KindBool}
		voidPointer = &Type{kind: KindVoidPointer}
		signedIntegers = map[int]*Type{}
		unsignedInts = map[int]*Type{}
		for _, width := range []int{8, 16, 32, 64} {
			signedIntegers[width] = &Type{kind: KindSignedInteger, width: width}
			unsignedInts[width] = &Type{kind: KindUnsignedInteger, width: width}
		}
	})
}

// BoolType returns the single interned bool type.
func BoolType() *Type {
	initPrimitives()
	return boolType
}

// IntType returns the single interned 32-bit signed integer type, jou's
// "int".
func IntType() *Type { return IntegerType(32, true) }

// ByteType returns the single interned 8-bit unsigned integer type,
// jou's "byte".
func ByteType() *Type { return IntegerType(8, false) }

// VoidPointerType returns the single interned void* type.
func VoidPointerType() *Type {
	initPrimitives()
	return voidPointer
}

// IntegerType returns the interned integer type of the given width (8,
// 16, 32, or 64) and signedness. It panics on any other width, the way
// the original's get_integer_type asserts on the width: this is a
// compiler-internal contract violation, not a user-facing error.
func IntegerType(width int, signed bool) *Type {
	initPrimitives()
	m := unsignedInts
	if signed {
		m = signedIntegers
	}
	t, ok := m[width]
	if !ok {
		panic(fmt.Sprintf("lang: invalid integer width %d", width))
	}
	return t
}

// TypeOfConstant returns the natural type of a literal constant: NULL is
// void*, a string literal is byte*, a bool literal is bool, and an
// integer literal is whatever width/signedness is recorded on it.
func TypeOfConstant(c *Constant) *Type {
	switch c.Kind {
	case ConstantNull:
		return VoidPointerType()
	case ConstantString:
		return PointerTo(ByteType())
	case ConstantBool:
		return BoolType()
	case ConstantInteger:
		return IntegerType(c.Width, c.Signed)
	default:
		panic("lang: unknown constant kind")
	}
}

// SameType reports whether a and b denote the same logical type. Because
// every Type is interned, this is exactly pointer identity; it is
// trivially reflexive, symmetric, and transitive (Testable Property 8).
func SameType(a, b *Type) bool { return a == b }

// CanImplicitlyConvert reports whether a value of type from may be used
// where a value of type to is expected without an explicit "as" cast.
// See the implicit/explicit conversion rules below.
func CanImplicitlyConvert(from, to *Type) bool {
	if SameType(from, to) {
		return true
	}
	switch {
	case from.IsIntegerType() && to.IsIntegerType():
		if from.width >= to.width {
			return false
		}
		// Widening a signed value into an unsigned destination can
		// change its meaning even though the width grows, so it is
		// excluded; every other strictly-wider combination preserves
		// every representable value.
		return !(from.Signed() && !to.Signed())
	case from.IsPointerType() && to == VoidPointerType():
		return true
	case from == VoidPointerType() && to.IsPointerType():
		return true
	default:
		return false
	}
}

// CanExplicitlyConvert reports whether an "as" cast from from to to is
// allowed: same type is always allowed (a no-op cast), and otherwise both
// sides must be pointers or both must be integers. Converting between an
// integer and a pointer is not yet supported.
func CanExplicitlyConvert(from, to *Type) bool {
	if SameType(from, to) {
		return true
	}
	if from.IsPointerType() && to.IsPointerType() {
		return true
	}
	if from.IsIntegerType() && to.IsIntegerType() {
		return true
	}
	return false
}
