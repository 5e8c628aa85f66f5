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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/openconfig/gnmi/errdiff"
)

// typeComparer compares *Type values the way the rest of this package
// does: by identity (SameType), not by recursing into the unexported
// fields that back the interned type lattice.
var typeComparer = cmp.Comparer(func(a, b *Type) bool { return SameType(a, b) })

func intLit(n int64) *Expression {
	return &Expression{Kind: ExprConstant, Constant: &Constant{Kind: ConstantInteger, Integer: n, Width: 32, Signed: true}}
}

func nullLit() *Expression {
	return &Expression{Kind: ExprConstant, Constant: &Constant{Kind: ConstantNull}}
}

func variable(name string) *Expression {
	return &Expression{Kind: ExprGetVariable, Name: name}
}

func astType(name string, stars int) AstType {
	return AstType{Name: name, Stars: stars}
}

// program wraps a single "def main() -> int: body" function so tests can
// focus on one statement sequence at a time.
func program(body []*Statement) []*TopLevel {
	return []*TopLevel{{
		Kind: TopDefineFunction,
		Signature: &AstSignature{
			Name:       "main",
			ReturnType: &AstType{Name: "int"},
		},
		Body: body,
	}}
}

func TestAssignWidensImplicitly(t *testing.T) {
	// declare x: int
	// declare y: byte
	// x = y       <- widens byte to int, records type_after_cast=int on y
	body := []*Statement{
		{Kind: StmtDeclareLocalVar, Name: "x", DeclaredType: astType("int", 0)},
		{Kind: StmtDeclareLocalVar, Name: "y", DeclaredType: astType("byte", 0)},
		{Kind: StmtAssign, Target: variable("x"), Value: variable("y")},
	}
	types, err := Check("f.jou", program(body), Options{})
	if err != nil {
		t.Fatalf("Check: %v", err)
	}

	yExpr := body[2].Value
	et := types[yExpr]
	if et == nil {
		t.Fatalf("no ExpressionTypes recorded for the assignment's value")
	}
	if et.TypeAfterCast == nil || !SameType(et.TypeAfterCast, IntType()) {
		t.Errorf("TypeAfterCast = %v, want int", et.TypeAfterCast)
	}
	if !SameType(et.NaturalType, ByteType()) {
		t.Errorf("NaturalType = %v, want byte", et.NaturalType)
	}
}

func TestAssignNarrowingFails(t *testing.T) {
	// declare x: int
	// declare y: byte
	// y = x       <- narrows int to byte, rejected
	body := []*Statement{
		{Kind: StmtDeclareLocalVar, Name: "x", DeclaredType: astType("int", 0)},
		{Kind: StmtDeclareLocalVar, Name: "y", DeclaredType: astType("byte", 0)},
		{Kind: StmtAssign, Target: variable("y"), Value: variable("x")},
	}
	_, err := Check("f.jou", program(body), Options{})
	if diff := errdiff.Substring(err, "cannot assign a value of type int to a variable of type byte"); diff != "" {
		t.Errorf(diff)
	}
}

func TestPointerComparisonAcrossTypesFails(t *testing.T) {
	// declare p: int*
	// declare q: byte*
	// p == q
	body := []*Statement{
		{Kind: StmtDeclareLocalVar, Name: "p", DeclaredType: astType("int", 1)},
		{Kind: StmtDeclareLocalVar, Name: "q", DeclaredType: astType("byte", 1)},
		{Kind: StmtExpression, Expr: &Expression{Kind: ExprEq, Left: variable("p"), Right: variable("q")}},
	}
	_, err := Check("f.jou", program(body), Options{})
	if diff := errdiff.Substring(err, "cannot compare int* and byte*"); diff != "" {
		t.Errorf(diff)
	}
}

func TestPointerComparisonWithNullSucceeds(t *testing.T) {
	// declare p: int*
	// p == NULL
	eq := &Expression{Kind: ExprEq, Left: variable("p"), Right: nullLit()}
	body := []*Statement{
		{Kind: StmtDeclareLocalVar, Name: "p", DeclaredType: astType("int", 1)},
		{Kind: StmtExpression, Expr: eq},
	}
	types, err := Check("f.jou", program(body), Options{})
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !SameType(types[eq].NaturalType, BoolType()) {
		t.Errorf("p == NULL has type %v, want bool", types[eq].NaturalType)
	}
	if !SameType(types[eq.Left].TypeAfterCast, VoidPointerType()) {
		t.Errorf("left side not promoted to void*: %v", types[eq.Left].TypeAfterCast)
	}
}

func TestAddressOfCalculationFails(t *testing.T) {
	// &(1 + 2)
	body := []*Statement{
		{Kind: StmtExpression, Expr: &Expression{
			Kind:    ExprAddressOf,
			Operand: &Expression{Kind: ExprAdd, Left: intLit(1), Right: intLit(2)},
		}},
	}
	_, err := Check("f.jou", program(body), Options{})
	if diff := errdiff.Substring(err, "the '&' operator cannot be used with the result of a calculation"); diff != "" {
		t.Errorf(diff)
	}
}

func structProgram(fields []StructFieldDecl, body []*Statement) []*TopLevel {
	return append([]*TopLevel{{
		Kind:       TopDefineStruct,
		StructName: "P",
		Fields:     fields,
	}}, program(body)...)
}

func TestStructLiteralSuccess(t *testing.T) {
	lit := &Expression{
		Kind: ExprBraceInit,
		Name: "P",
		BraceArgs: []BraceArg{
			{FieldName: "x", Value: intLit(1)},
			{FieldName: "y", Value: intLit(2)},
		},
	}
	fields := []StructFieldDecl{{Name: "x", Type: astType("int", 0)}, {Name: "y", Type: astType("int", 0)}}
	tops := structProgram(fields, []*Statement{{Kind: StmtExpression, Expr: lit}})

	types, err := Check("f.jou", tops, Options{})
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if types[lit].NaturalType.StructName() != "P" {
		t.Errorf("struct literal type = %v, want P", types[lit].NaturalType)
	}
}

func TestStructLiteralUnknownFieldFails(t *testing.T) {
	lit := &Expression{
		Kind: ExprBraceInit,
		Name: "P",
		BraceArgs: []BraceArg{
			{FieldName: "x", Value: intLit(1)},
			{FieldName: "z", Value: intLit(2)},
		},
	}
	fields := []StructFieldDecl{{Name: "x", Type: astType("int", 0)}, {Name: "y", Type: astType("int", 0)}}
	tops := structProgram(fields, []*Statement{{Kind: StmtExpression, Expr: lit}})

	_, err := Check("f.jou", tops, Options{})
	if diff := errdiff.Substring(err, "struct P has no field named 'z'"); diff != "" {
		t.Errorf(diff)
	}
}

func TestStructLiteralUndefinedTypeFails(t *testing.T) {
	lit := &Expression{Kind: ExprBraceInit, Name: "Undefined", BraceArgs: []BraceArg{{FieldName: "x", Value: intLit(1)}}}
	tops := program([]*Statement{{Kind: StmtExpression, Expr: lit}})

	_, err := Check("f.jou", tops, Options{})
	if diff := errdiff.Substring(err, "there is no type named 'Undefined'"); diff != "" {
		t.Errorf(diff)
	}
}

func TestStructLiteralMissingFieldsAllowed(t *testing.T) {
	// Omitting a field is a documented choice, not an error.
	lit := &Expression{Kind: ExprBraceInit, Name: "P", BraceArgs: []BraceArg{{FieldName: "x", Value: intLit(1)}}}
	fields := []StructFieldDecl{{Name: "x", Type: astType("int", 0)}, {Name: "y", Type: astType("int", 0)}}
	tops := structProgram(fields, []*Statement{{Kind: StmtExpression, Expr: lit}})

	if _, err := Check("f.jou", tops, Options{}); err != nil {
		t.Fatalf("Check: unexpected error for a struct literal with a missing field: %v", err)
	}
}

func TestFunctionCallArgumentCounts(t *testing.T) {
	call := &Expression{Kind: ExprFunctionCall, Name: "add", CallArgs: []*Expression{intLit(1)}}
	tops := []*TopLevel{
		{
			Kind: TopDeclareFunction,
			Signature: &AstSignature{
				Name:       "add",
				Args:       []ParamDecl{{Name: "a", Type: astType("int", 0)}, {Name: "b", Type: astType("int", 0)}},
				ReturnType: &AstType{Name: "int"},
			},
		},
		{
			Kind:      TopDefineFunction,
			Signature: &AstSignature{Name: "main", ReturnType: &AstType{Name: "int"}},
			Body:      []*Statement{{Kind: StmtExpression, Expr: call}},
		},
	}
	_, err := Check("f.jou", tops, Options{})
	if diff := errdiff.Substring(err, "takes 2 arguments, but it was called with 1 argument"); diff != "" {
		t.Errorf(diff)
	}
}

func TestFunctionCallArgumentCastMessage(t *testing.T) {
	call := &Expression{Kind: ExprFunctionCall, Name: "add", CallArgs: []*Expression{variable("p"), intLit(2)}}
	tops := []*TopLevel{
		{
			Kind: TopDeclareFunction,
			Signature: &AstSignature{
				Name:       "add",
				Args:       []ParamDecl{{Name: "a", Type: astType("int", 0)}, {Name: "b", Type: astType("int", 0)}},
				ReturnType: &AstType{Name: "int"},
			},
		},
		{
			Kind:      TopDefineFunction,
			Signature: &AstSignature{Name: "main", ReturnType: &AstType{Name: "int"}},
			Body: []*Statement{
				{Kind: StmtDeclareLocalVar, Name: "p", DeclaredType: astType("int", 1)},
				{Kind: StmtExpression, Expr: call},
			},
		},
	}
	_, err := Check("f.jou", tops, Options{})
	if diff := errdiff.Substring(err, "first argument of function add(a: int, b: int) should have type int, not int*"); diff != "" {
		t.Errorf(diff)
	}
}

func TestRecursiveFunctionCall(t *testing.T) {
	// def countdown(n: int) -> int:
	//     return countdown(n)
	call := &Expression{Kind: ExprFunctionCall, Name: "countdown", CallArgs: []*Expression{variable("n")}}
	tops := []*TopLevel{{
		Kind: TopDefineFunction,
		Signature: &AstSignature{
			Name:       "countdown",
			Args:       []ParamDecl{{Name: "n", Type: astType("int", 0)}},
			ReturnType: &AstType{Name: "int"},
		},
		Body: []*Statement{{Kind: StmtReturnValue, Expr: call}},
	}}
	types, err := Check("f.jou", tops, Options{})
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if types[call] == nil || !SameType(types[call].NaturalType, IntType()) {
		t.Errorf("recursive call type = %v, want int", types[call])
	}
}

func TestDuplicateFunctionNameFails(t *testing.T) {
	tops := []*TopLevel{
		{Kind: TopDeclareFunction, Signature: &AstSignature{Name: "f"}},
		{Kind: TopDeclareFunction, Signature: &AstSignature{Name: "f"}},
	}
	_, err := Check("f.jou", tops, Options{})
	if diff := errdiff.Substring(err, "a function named 'f' already exists"); diff != "" {
		t.Errorf(diff)
	}
}

func TestMainMustReturnInt(t *testing.T) {
	tops := []*TopLevel{{Kind: TopDeclareFunction, Signature: &AstSignature{Name: "main"}}}
	_, err := Check("f.jou", tops, Options{})
	if diff := errdiff.Substring(err, "the main() function must return int"); diff != "" {
		t.Errorf(diff)
	}
}

func TestNoLocalVariableNamed(t *testing.T) {
	body := []*Statement{{Kind: StmtExpression, Expr: variable("nope")}}
	_, err := Check("f.jou", program(body), Options{})
	if diff := errdiff.Substring(err, "no local variable named 'nope'"); diff != "" {
		t.Errorf(diff)
	}
}

func TestEveryCheckedExpressionGetsExactlyOneRecord(t *testing.T) {
	body := []*Statement{
		{Kind: StmtDeclareLocalVar, Name: "x", DeclaredType: astType("int", 0)},
		{Kind: StmtExpression, Expr: &Expression{
			Kind: ExprAdd,
			Left: variable("x"),
			Right: &Expression{
				Kind: ExprMul, Left: intLit(2), Right: intLit(3),
			},
		}},
	}
	types, err := Check("f.jou", program(body), Options{})
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	top := body[1].Expr
	for _, e := range []*Expression{top, top.Left, top.Right, top.Right.Left, top.Right.Right} {
		if _, ok := types[e]; !ok {
			t.Errorf("no ExpressionTypes recorded for %v", e)
		}
	}
	if len(types) != 5 {
		t.Errorf("len(types) = %d, want 5 (one record per visited expression)", len(types))
	}
}

func TestCheckTwiceIsIdempotent(t *testing.T) {
	body := []*Statement{
		{Kind: StmtDeclareLocalVar, Name: "x", DeclaredType: astType("int", 0)},
		{Kind: StmtDeclareLocalVar, Name: "y", DeclaredType: astType("byte", 0)},
		{Kind: StmtAssign, Target: variable("x"), Value: variable("y")},
	}
	tops := program(body)

	first, err := Check("f.jou", tops, Options{})
	if err != nil {
		t.Fatalf("first Check: %v", err)
	}
	second, err := Check("f.jou", tops, Options{})
	if err != nil {
		t.Fatalf("second Check: %v", err)
	}
	if diff := cmp.Diff(first, second, typeComparer); diff != "" {
		t.Errorf("re-checking the same AST produced a different expression-type table (-first +second):\n%s", diff)
	}
}

func TestBreakContinueNotEnclosureChecked(t *testing.T) {
	// break/continue outside a loop is accepted, not rejected.
	body := []*Statement{{Kind: StmtBreak}, {Kind: StmtContinue}}
	if _, err := Check("f.jou", program(body), Options{}); err != nil {
		t.Fatalf("Check: unexpected error for break/continue outside a loop: %v", err)
	}
}
