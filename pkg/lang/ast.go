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

// This file defines the AST the checker consumes. Building the AST is
// the parser's job (an external collaborator); this package
// only defines its shape and walks it.
//
// AST and Type are both modeled as tagged variants (a Kind field plus a
// per-variant payload) rather than as interface hierarchies, per the
// "Polymorphism" design note: a visitor is then just an exhaustive
// switch over Kind.

// ExprKind discriminates the kinds of expression node.
type ExprKind int

const (
	ExprConstant ExprKind = iota
	ExprGetVariable
	ExprFunctionCall
	ExprBraceInit
	ExprGetField
	ExprDerefAndGetField
	ExprIndexing
	ExprAs
	ExprAddressOf
	ExprDereference
	ExprNot
	ExprAnd
	ExprOr
	ExprAdd
	ExprSub
	ExprMul
	ExprDiv
	ExprEq
	ExprNe
	ExprGt
	ExprGe
	ExprLt
	ExprLe
	ExprPreIncrement
	ExprPreDecrement
	ExprPostIncrement
	ExprPostDecrement
)

// String returns a short, human-readable noun phrase describing a value
// of kind k, e.g. "a constant" or "the result of a calculation". It is
// substituted into addressability error templates the way
// short_expression_description feeds ensure_can_take_address's messages
// in the original checker. Three kinds carry data the Kind alone doesn't
// have (ExprAddressOf recurses into its operand, ExprGetField and
// ExprDerefAndGetField name a field) and are not handled correctly here;
// describeExpression in typecheck.go handles those by switching on the
// full *Expression instead.
func (k ExprKind) String() string {
	switch k {
	case ExprConstant:
		return "a constant"
	case ExprFunctionCall:
		return "a function call"
	case ExprBraceInit:
		return "a newly created instance"
	case ExprIndexing:
		return "an indexed value"
	case ExprAs:
		return "the result of a cast"
	case ExprGetVariable:
		return "a variable"
	case ExprDereference:
		return "the value of a pointer"
	case ExprAnd:
		return "the result of 'and'"
	case ExprOr:
		return "the result of 'or'"
	case ExprNot:
		return "the result of 'not'"
	case ExprAdd, ExprSub, ExprMul, ExprDiv:
		return "the result of a calculation"
	case ExprEq, ExprNe, ExprGt, ExprGe, ExprLt, ExprLe:
		return "the result of a comparison"
	case ExprPreIncrement, ExprPostIncrement:
		return "the result of incrementing a value"
	case ExprPreDecrement, ExprPostDecrement:
		return "the result of decrementing a value"
	case ExprGetField, ExprDerefAndGetField:
		return "a field"
	case ExprAddressOf:
		return "an address"
	default:
		return "an expression"
	}
}

// A BraceArg is one "name=value" pair inside a Foo{...} struct literal.
type BraceArg struct {
	FieldName string
	Value     *Expression
}

// An Expression is a single node of the expression AST. Which fields are
// meaningful depends on Kind; the comment on each field below names the
// kinds that use it.
type Expression struct {
	Kind     ExprKind
	Location Location

	Constant *Constant // ExprConstant

	// Name holds the variable name (ExprGetVariable), the called
	// function's name (ExprFunctionCall), the field name
	// (ExprGetField, ExprDerefAndGetField), or the struct type name
	// (ExprBraceInit).
	Name string

	Object *Expression // ExprGetField, ExprDerefAndGetField, ExprIndexing
	Index  *Expression // ExprIndexing

	// Operand is the sole sub-expression of every unary operator:
	// ExprAs, ExprAddressOf, ExprDereference, ExprNot, and the four
	// increment/decrement kinds.
	Operand *Expression

	// Left, Right are the two operands of every binary operator:
	// ExprAnd, ExprOr, and the arithmetic/comparison kinds.
	Left  *Expression
	Right *Expression

	CallArgs  []*Expression // ExprFunctionCall
	BraceArgs []BraceArg    // ExprBraceInit

	TargetType AstType // ExprAs: the type named after "as"
}

// StmtKind discriminates the kinds of statement node.
type StmtKind int

const (
	StmtExpression StmtKind = iota
	StmtReturnValue
	StmtReturnWithoutValue
	StmtDeclareLocalVar
	StmtAssign
	StmtIf
	StmtWhile
	StmtFor
	StmtBreak
	StmtContinue
)

// An IfBranch is one "if"/"elif" condition-and-body pair.
type IfBranch struct {
	Condition *Expression
	Body      []*Statement
}

// A Statement is a single node of the statement AST.
type Statement struct {
	Kind     StmtKind
	Location Location

	Expr *Expression // StmtExpression, StmtReturnValue

	Name         string      // StmtDeclareLocalVar
	DeclaredType AstType     // StmtDeclareLocalVar
	Initializer  *Expression // StmtDeclareLocalVar, optional (nil if absent)

	Target *Expression // StmtAssign
	Value  *Expression // StmtAssign

	IfBranches []IfBranch   // StmtIf: if, then zero or more elif
	ElseBody   []*Statement // StmtIf: else body, nil if absent

	Condition *Expression  // StmtWhile
	Body      []*Statement // StmtWhile, StmtIf-else is ElseBody above

	ForInit *Statement    // StmtFor
	ForCond *Expression   // StmtFor
	ForIncr *Statement    // StmtFor
	ForBody []*Statement  // StmtFor
}

// TopKind discriminates the kinds of top-level declaration.
type TopKind int

const (
	TopDeclareFunction TopKind = iota
	TopDefineFunction
	TopDefineStruct
)

// AstType is the unresolved, parser-level spelling of a type: a base
// name plus a count of trailing '*'.
type AstType struct {
	Name     string
	Stars    int
	Location Location
}

// ParamDecl is one (name, ast-type) pair in a function signature, before
// the checker has resolved Type to an interned *Type.
type ParamDecl struct {
	Name string
	Type AstType
}

// AstSignature is the parser-level shape of a function signature: name,
// ordered parameters, a varargs flag, and an optional return type.
type AstSignature struct {
	Name               string
	Location           Location // location of the function name
	Args               []ParamDecl
	Varargs            bool
	ReturnType         *AstType // nil means void
	ReturnTypeLocation Location
}

// StructFieldDecl is one "name: type" pair inside a struct definition,
// before the checker has resolved Type.
type StructFieldDecl struct {
	Name string
	Type AstType
}

// A TopLevel is a single top-level declaration: a function declaration,
// a function definition, or a struct definition.
type TopLevel struct {
	Kind     TopKind
	Location Location

	Signature *AstSignature // TopDeclareFunction, TopDefineFunction
	Body      []*Statement  // TopDefineFunction

	StructName string            // TopDefineStruct
	Fields     []StructFieldDecl // TopDefineStruct
}

// ConstantKind discriminates the kinds of literal constant.
type ConstantKind int

const (
	ConstantNull ConstantKind = iota
	ConstantString
	ConstantBool
	ConstantInteger
)

// A Constant is a literal value produced by the lexer/parser: NULL, a
// string, a bool, or an integer. Width and Signed are only meaningful
// for ConstantInteger and record the type the literal was parsed with.
type Constant struct {
	Kind    ConstantKind
	String  string
	Bool    bool
	Integer int64
	Width   int
	Signed  bool
}
