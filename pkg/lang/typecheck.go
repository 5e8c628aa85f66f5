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

// This file implements the type checker: given a parser-built
// []*TopLevel, it resolves every AstType, infers and records the type of
// every Expression, and enforces the language's static semantics. It is
// the Go analogue of typecheck.c.

// A Variable is one name visible in the current function: an argument,
// the synthetic "return" slot a non-void function gets, or a local
// introduced by a declaration statement or by a first assignment to a
// new name.
type Variable struct {
	ID         int
	Name       string
	Type       *Type
	IsArgument bool
}

// ExpressionTypes records what the checker decided about one Expression:
// its natural type, and — if an implicit cast was applied at that use
// site — the type it was cast to. A nil TypeAfterCast means no cast was
// needed.
type ExpressionTypes struct {
	NaturalType   *Type
	TypeAfterCast *Type
}

// FinalType returns the type a backend should use for e: the type after
// an implicit cast if one was recorded, otherwise the natural type.
func (et *ExpressionTypes) FinalType() *Type {
	if et.TypeAfterCast != nil {
		return et.TypeAfterCast
	}
	return et.NaturalType
}

// A TypeContext is the accumulated state of one compilation unit's type
// checking: the functions and structs seen so far, the decorated type of
// every expression checked so far, and (while inside a function body) the
// variables in scope and the signature being checked. It is the Go
// analogue of the C TypeContext in typecheck.c.
type TypeContext struct {
	opts Options

	Functions []*Signature
	Structs   []*Type

	Variables []*Variable
	current   *Signature

	Types map[*Expression]*ExpressionTypes
}

// NewTypeContext builds an empty checking context.
func NewTypeContext(opts Options) *TypeContext {
	return &TypeContext{
		opts:  opts,
		Types: map[*Expression]*ExpressionTypes{},
	}
}

// Check type-checks every top-level declaration in tops and returns the
// accumulated ExpressionTypes table. Structs are resolved
// in a first pass so that a function appearing anywhere in the file may
// use a struct type declared anywhere else in the file; this is a
// deliberate driver choice, not one that follows source order,
// needed because type_from_ast must be able to find every struct
// regardless of where functions vs. structs are written.
func Check(filename string, tops []*TopLevel, opts Options) (map[*Expression]*ExpressionTypes, error) {
	ctx := NewTypeContext(opts)

	for _, top := range tops {
		if top.Kind == TopDefineStruct {
			if err := ctx.checkStruct(top); err != nil {
				return nil, err
			}
		}
	}
	for _, top := range tops {
		switch top.Kind {
		case TopDeclareFunction:
			if err := ctx.checkFunction(top, false); err != nil {
				return nil, err
			}
		case TopDefineFunction:
			if err := ctx.checkFunction(top, true); err != nil {
				return nil, err
			}
		}
	}
	return ctx.Types, nil
}

func (ctx *TypeContext) findVariable(name string) *Variable {
	for _, v := range ctx.Variables {
		if v.Name == name {
			return v
		}
	}
	return nil
}

func (ctx *TypeContext) addVariable(t *Type, name string) *Variable {
	v := &Variable{ID: len(ctx.Variables), Name: name, Type: t}
	ctx.Variables = append(ctx.Variables, v)
	return v
}

func (ctx *TypeContext) findFunction(name string) *Signature {
	for _, sig := range ctx.Functions {
		if sig.Name == name {
			return sig
		}
	}
	return nil
}

func (ctx *TypeContext) findStruct(name string) *Type {
	for _, t := range ctx.Structs {
		if t.StructName() == name {
			return t
		}
	}
	return nil
}

// resolveTypeOrVoid resolves an AstType, the way type_or_void_from_ast
// does: "void" with zero stars means "not a value type" and is reported
// as ok=false, since it is only legal as a bare return type; "void" with
// N>=1 stars resolves to void* with N-1 further PointerTo applications.
func (ctx *TypeContext) resolveTypeOrVoid(at *AstType) (t *Type, ok bool, err error) {
	stars := at.Stars
	var base *Type

	switch at.Name {
	case "int":
		base = IntType()
	case "byte":
		base = ByteType()
	case "bool":
		base = BoolType()
	case "void":
		if stars == 0 {
			return nil, false, nil
		}
		stars--
		base = VoidPointerType()
	default:
		base = ctx.findStruct(at.Name)
		if base == nil {
			return nil, false, errorf(at.Location, "there is no type named '%s'", at.Name)
		}
	}

	for i := 0; i < stars; i++ {
		base = PointerTo(base)
	}
	return base, true, nil
}

// resolveType is resolveTypeOrVoid but rejects the "void" sentinel: it is
// used everywhere an AstType must name an actual value type (parameters,
// variable declarations, struct fields, "as" targets).
func (ctx *TypeContext) resolveType(at *AstType) (*Type, error) {
	t, ok, err := ctx.resolveTypeOrVoid(at)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errorf(at.Location, "'void' cannot be used here because it is not a type")
	}
	return t, nil
}

func (ctx *TypeContext) checkStruct(top *TopLevel) error {
	if ctx.findStruct(top.StructName) != nil {
		return errorf(top.Location, "a struct named '%s' already exists", top.StructName)
	}

	fields := make([]StructField, len(top.Fields))
	for i, f := range top.Fields {
		ft, err := ctx.resolveType(&f.Type)
		if err != nil {
			return err
		}
		fields[i] = StructField{Name: f.Name, Type: ft}
	}

	ctx.Structs = append(ctx.Structs, CreateStruct(top.StructName, fields))
	return nil
}

// checkFunction implements typecheck_function: it registers astsig's
// Signature before checking the body (so the function can call itself),
// then — only if defined — enters a fresh scope with its parameters and
// checks the body. main's parameters are intentionally left unvalidated,
// matching the original checker's own TODO on this point.
func (ctx *TypeContext) checkFunction(top *TopLevel, defined bool) error {
	astsig := top.Signature

	if ctx.findFunction(astsig.Name) != nil {
		return errorf(astsig.Location, "a function named '%s' already exists", astsig.Name)
	}

	args := make([]Param, len(astsig.Args))
	for i, a := range astsig.Args {
		t, err := ctx.resolveType(&a.Type)
		if err != nil {
			return err
		}
		args[i] = Param{Name: a.Name, Type: t}
	}

	var returnType *Type
	if astsig.ReturnType != nil {
		t, ok, err := ctx.resolveTypeOrVoid(astsig.ReturnType)
		if err != nil {
			return err
		}
		if ok {
			returnType = t
		}
	}

	// TODO: validate main()'s parameters against the fixed
	// (argc int, argv byte**) shape once the language defines one.
	if astsig.Name == "main" && returnType != IntType() {
		return errorf(astsig.ReturnTypeLocation, "the main() function must return int")
	}

	sig := &Signature{
		Name:               astsig.Name,
		Args:               args,
		Varargs:            astsig.Varargs,
		ReturnType:         returnType,
		ReturnTypeLocation: astsig.ReturnTypeLocation,
		Location:           astsig.Location,
	}

	// Register before checking the body: a recursive call inside the
	// body must find this signature via findFunction.
	ctx.Functions = append(ctx.Functions, sig)
	if !defined {
		return nil
	}

	savedVars, savedCurrent := ctx.Variables, ctx.current
	ctx.Variables = nil
	ctx.current = sig
	defer func() {
		ctx.Variables, ctx.current = savedVars, savedCurrent
	}()

	for _, a := range sig.Args {
		v := ctx.addVariable(a.Type, a.Name)
		v.IsArgument = true
	}
	if sig.ReturnType != nil {
		ctx.addVariable(sig.ReturnType, "return")
	}

	return ctx.checkBody(top.Body)
}

func (ctx *TypeContext) checkBody(body []*Statement) error {
	for _, stmt := range body {
		if err := ctx.checkStatement(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (ctx *TypeContext) checkStatement(stmt *Statement) error {
	switch stmt.Kind {
	case StmtIf:
		return ctx.checkIfStatement(stmt)

	case StmtWhile:
		if err := ctx.checkImplicitCast(stmt.Condition, BoolType(), "'while' condition must be a boolean, not FROM"); err != nil {
			return err
		}
		return ctx.checkBody(stmt.Body)

	case StmtFor:
		if stmt.ForInit != nil {
			if err := ctx.checkStatement(stmt.ForInit); err != nil {
				return err
			}
		}
		if err := ctx.checkImplicitCast(stmt.ForCond, BoolType(), "'for' condition must be a boolean, not FROM"); err != nil {
			return err
		}
		if err := ctx.checkBody(stmt.ForBody); err != nil {
			return err
		}
		if stmt.ForIncr != nil {
			if err := ctx.checkStatement(stmt.ForIncr); err != nil {
				return err
			}
		}
		return nil

	case StmtBreak, StmtContinue:
		// Whether this appears inside an enclosing loop is not verified here.
		return nil

	case StmtAssign:
		return ctx.checkAssign(stmt)

	case StmtReturnValue:
		if ctx.current.ReturnType == nil {
			return errorf(stmt.Location, "function '%s' cannot return a value because it was defined with '-> void'", ctx.current.Name)
		}
		msg := "attempting to return a value of type FROM from function '" + ctx.current.Name + "' defined with '-> TO'"
		return ctx.checkImplicitCast(stmt.Expr, ctx.findVariable("return").Type, msg)

	case StmtReturnWithoutValue:
		if ctx.current.ReturnType != nil {
			return errorf(stmt.Location, "a return value is needed, because the return type of function '%s' is %s", ctx.current.Name, ctx.current.ReturnType.Name())
		}
		return nil

	case StmtDeclareLocalVar:
		if ctx.findVariable(stmt.Name) != nil {
			return errorf(stmt.Location, "a variable named '%s' already exists", stmt.Name)
		}
		t, err := ctx.resolveType(&stmt.DeclaredType)
		if err != nil {
			return err
		}
		if stmt.Initializer != nil {
			if err := ctx.checkImplicitCast(stmt.Initializer, t, "initial value for variable of type TO cannot be of type FROM"); err != nil {
				return err
			}
		}
		ctx.addVariable(t, stmt.Name)
		return nil

	case StmtExpression:
		_, err := ctx.checkExpression(stmt.Expr)
		return err

	default:
		return errorf(stmt.Location, "internal error: unhandled statement kind %d", int(stmt.Kind))
	}
}

func (ctx *TypeContext) checkIfStatement(stmt *Statement) error {
	for i, branch := range stmt.IfBranches {
		msg := "'if' condition must be a boolean, not FROM"
		if i > 0 {
			msg = "'elif' condition must be a boolean, not FROM"
		}
		if err := ctx.checkImplicitCast(branch.Condition, BoolType(), msg); err != nil {
			return err
		}
		if err := ctx.checkBody(branch.Body); err != nil {
			return err
		}
	}
	return ctx.checkBody(stmt.ElseBody)
}

func (ctx *TypeContext) checkAssign(stmt *Statement) error {
	target, value := stmt.Target, stmt.Value

	if target.Kind == ExprGetVariable && ctx.findVariable(target.Name) == nil {
		// Assigning to a name that isn't a variable yet declares one,
		// with the type of the value being assigned.
		types, err := ctx.checkExpression(value)
		if err != nil {
			return err
		}
		ctx.addVariable(types.NaturalType, target.Name)
		return nil
	}

	if err := ctx.ensureCanTakeAddress(target, "cannot assign to %s"); err != nil {
		return err
	}

	var msg string
	if target.Kind == ExprDereference {
		msg = "cannot place a value of type FROM into a pointer of type TO*"
	} else {
		msg = "cannot assign a value of type FROM to " + describeExpression(target) + " of type TO"
	}

	targetTypes, err := ctx.checkExpressionNotVoid(target)
	if err != nil {
		return err
	}
	return ctx.checkImplicitCast(value, targetTypes.NaturalType, msg)
}

// checkExpressionNotVoid type-checks expr and fails with a friendly
// message if it turns out to be a void function call, the one kind of
// expression that has no type at all.
func (ctx *TypeContext) checkExpressionNotVoid(expr *Expression) (*ExpressionTypes, error) {
	types, err := ctx.checkExpression(expr)
	if err != nil {
		return nil, err
	}
	if types.NaturalType == nil {
		return nil, errorf(expr.Location, "function '%s' does not return a value", expr.Name)
	}
	return types, nil
}

// checkImplicitCast type-checks expr, then tries to cast it to to using
// template as the FROM/TO error message if the cast isn't allowed.
func (ctx *TypeContext) checkImplicitCast(expr *Expression, to *Type, template string) error {
	types, err := ctx.checkExpressionNotVoid(expr)
	if err != nil {
		return err
	}
	return ctx.doImplicitCast(types, expr.Location, to, template)
}

// doImplicitCast records that the value described by types should be
// used as a to, recording TypeAfterCast. A template of "" forces the
// cast to happen silently; this is used internally (e.g. check_binop's
// common-type promotion) rather than by anything that type-checks
// user-written syntax.
func (ctx *TypeContext) doImplicitCast(types *ExpressionTypes, loc Location, to *Type, template string) error {
	from := types.NaturalType
	if SameType(from, to) {
		return nil
	}
	if template != "" && !CanImplicitlyConvert(from, to) {
		return errorf(loc, "%s", substituteCastTemplate(template, from, to))
	}
	types.TypeAfterCast = to
	return nil
}

func (ctx *TypeContext) checkExpression(expr *Expression) (*ExpressionTypes, error) {
	var result *Type

	switch expr.Kind {
	case ExprFunctionCall:
		t, err := ctx.checkFunctionCall(expr)
		if err != nil {
			return nil, err
		}
		if t == nil {
			// A void call used as a value: record it with no type and
			// let the caller (checkExpressionNotVoid) reject it if it's
			// actually used as a value.
			types := &ExpressionTypes{}
			ctx.Types[expr] = types
			return types, nil
		}
		result = t

	case ExprBraceInit:
		t, err := ctx.checkStructInit(expr)
		if err != nil {
			return nil, err
		}
		result = t

	case ExprGetField:
		objTypes, err := ctx.checkExpressionNotVoid(expr.Object)
		if err != nil {
			return nil, err
		}
		objType := objTypes.NaturalType
		if !objType.IsStructType() {
			return nil, errorf(expr.Location, "left side of the '.' operator must be a struct, not %s", objType.Name())
		}
		ft, err := ctx.checkStructField(objType, expr.Name, expr.Location)
		if err != nil {
			return nil, err
		}
		result = ft

	case ExprDerefAndGetField:
		objTypes, err := ctx.checkExpressionNotVoid(expr.Object)
		if err != nil {
			return nil, err
		}
		objType := objTypes.NaturalType
		if objType.Kind() != KindPointer || !objType.Pointee().IsStructType() {
			return nil, errorf(expr.Location, "left side of the '->' operator must be a pointer to a struct, not %s", objType.Name())
		}
		ft, err := ctx.checkStructField(objType.Pointee(), expr.Name, expr.Location)
		if err != nil {
			return nil, err
		}
		result = ft

	case ExprIndexing:
		t, err := ctx.checkIndexing(expr.Object, expr.Index)
		if err != nil {
			return nil, err
		}
		result = t

	case ExprAddressOf:
		if err := ctx.ensureCanTakeAddress(expr.Operand, "the '&' operator cannot be used with %s"); err != nil {
			return nil, err
		}
		operandTypes, err := ctx.checkExpressionNotVoid(expr.Operand)
		if err != nil {
			return nil, err
		}
		result = PointerTo(operandTypes.NaturalType)

	case ExprGetVariable:
		v := ctx.findVariable(expr.Name)
		if v == nil {
			return nil, errorf(expr.Location, "no local variable named '%s'", expr.Name)
		}
		result = v.Type

	case ExprDereference:
		operandTypes, err := ctx.checkExpressionNotVoid(expr.Operand)
		if err != nil {
			return nil, err
		}
		t := operandTypes.NaturalType
		if t.Kind() != KindPointer {
			return nil, errorf(expr.Location, "the dereference operator '*' is only for pointers, not for %s", t.Name())
		}
		result = t.Pointee()

	case ExprConstant:
		result = TypeOfConstant(expr.Constant)

	case ExprAnd:
		if err := ctx.checkAndOr(expr.Left, expr.Right, "and"); err != nil {
			return nil, err
		}
		result = BoolType()

	case ExprOr:
		if err := ctx.checkAndOr(expr.Left, expr.Right, "or"); err != nil {
			return nil, err
		}
		result = BoolType()

	case ExprNot:
		if err := ctx.checkImplicitCast(expr.Operand, BoolType(), "value after 'not' must be a boolean, not FROM"); err != nil {
			return nil, err
		}
		result = BoolType()

	case ExprAdd, ExprSub, ExprMul, ExprDiv, ExprEq, ExprNe, ExprGt, ExprGe, ExprLt, ExprLe:
		lhsTypes, err := ctx.checkExpressionNotVoid(expr.Left)
		if err != nil {
			return nil, err
		}
		rhsTypes, err := ctx.checkExpressionNotVoid(expr.Right)
		if err != nil {
			return nil, err
		}
		t, err := ctx.checkBinop(expr.Kind, expr.Location, lhsTypes, rhsTypes)
		if err != nil {
			return nil, err
		}
		result = t

	case ExprPreIncrement, ExprPreDecrement, ExprPostIncrement, ExprPostDecrement:
		t, err := ctx.checkIncrementOrDecrement(expr)
		if err != nil {
			return nil, err
		}
		result = t

	case ExprAs:
		operandTypes, err := ctx.checkExpressionNotVoid(expr.Operand)
		if err != nil {
			return nil, err
		}
		t, err := ctx.resolveType(&expr.TargetType)
		if err != nil {
			return nil, err
		}
		if !CanExplicitlyConvert(operandTypes.NaturalType, t) {
			return nil, errorf(expr.Location, "cannot cast from type %s to %s", operandTypes.NaturalType.Name(), t.Name())
		}
		result = t

	default:
		return nil, errorf(expr.Location, "internal error: unhandled expression kind %d", int(expr.Kind))
	}

	types := &ExpressionTypes{NaturalType: result}
	ctx.Types[expr] = types
	return types, nil
}

func (ctx *TypeContext) checkStructField(structType *Type, fieldName string, loc Location) (*Type, error) {
	if f, ok := structType.Field(fieldName); ok {
		return f.Type, nil
	}
	return nil, errorf(loc, "struct %s has no field named '%s'", structType.Name(), fieldName)
}

func (ctx *TypeContext) checkIndexing(ptrExpr, indexExpr *Expression) (*Type, error) {
	ptrTypes, err := ctx.checkExpressionNotVoid(ptrExpr)
	if err != nil {
		return nil, err
	}
	ptrType := ptrTypes.NaturalType
	if ptrType.Kind() != KindPointer {
		return nil, errorf(ptrExpr.Location, "value of type %s cannot be indexed", ptrType.Name())
	}

	indexTypes, err := ctx.checkExpressionNotVoid(indexExpr)
	if err != nil {
		return nil, err
	}
	if !indexTypes.NaturalType.IsIntegerType() {
		return nil, errorf(indexExpr.Location, "the index inside [...] must be an integer, not %s", indexTypes.NaturalType.Name())
	}

	return ptrType.Pointee(), nil
}

func (ctx *TypeContext) checkAndOr(lhs, rhs *Expression, andOr string) error {
	msg := "'" + andOr + "' only works with booleans, not FROM"
	if err := ctx.checkImplicitCast(lhs, BoolType(), msg); err != nil {
		return err
	}
	return ctx.checkImplicitCast(rhs, BoolType(), msg)
}

// checkBinop implements check_binop, including the Open Question #1
// resolution: the result of a mixed-width integer operation is signed
// iff *either* operand is signed (value-preserving), not the original's
// duplicated-condition "lhs signed or lhs signed".
func (ctx *TypeContext) checkBinop(kind ExprKind, loc Location, lhsTypes, rhsTypes *ExpressionTypes) (*Type, error) {
	var doWhat string
	switch kind {
	case ExprAdd:
		doWhat = "add"
	case ExprSub:
		doWhat = "subtract"
	case ExprMul:
		doWhat = "multiply"
	case ExprDiv:
		doWhat = "divide"
	default:
		doWhat = "compare"
	}

	lhsType, rhsType := lhsTypes.NaturalType, rhsTypes.NaturalType
	gotIntegers := lhsType.IsIntegerType() && rhsType.IsIntegerType()
	gotPointers := lhsType.IsPointerType() && rhsType.IsPointerType() &&
		(SameType(lhsType, rhsType) || lhsType == VoidPointerType() || rhsType == VoidPointerType())

	isEqOrNe := kind == ExprEq || kind == ExprNe
	if !gotIntegers && !(gotPointers && isEqOrNe) {
		return nil, errorf(loc, "wrong types: cannot %s %s and %s", doWhat, lhsType.Name(), rhsType.Name())
	}

	var castType *Type
	switch {
	case gotIntegers:
		width := lhsType.Width()
		if rhsType.Width() > width {
			width = rhsType.Width()
		}
		castType = IntegerType(width, lhsType.Signed() || rhsType.Signed())
	case gotPointers:
		castType = VoidPointerType()
	}

	if err := ctx.doImplicitCast(lhsTypes, Location{}, castType, ""); err != nil {
		return nil, err
	}
	if err := ctx.doImplicitCast(rhsTypes, Location{}, castType, ""); err != nil {
		return nil, err
	}

	switch kind {
	case ExprAdd, ExprSub, ExprMul, ExprDiv:
		return castType, nil
	default:
		return BoolType(), nil
	}
}

func (ctx *TypeContext) checkIncrementOrDecrement(expr *Expression) (*Type, error) {
	var badType, badExpr string
	switch expr.Kind {
	case ExprPreIncrement, ExprPostIncrement:
		badType = "cannot increment a value of type %s"
		badExpr = "cannot increment %s"
	default:
		badType = "cannot decrement a value of type %s"
		badExpr = "cannot decrement %s"
	}

	if err := ctx.ensureCanTakeAddress(expr.Operand, badExpr); err != nil {
		return nil, err
	}
	operandTypes, err := ctx.checkExpressionNotVoid(expr.Operand)
	if err != nil {
		return nil, err
	}
	t := operandTypes.NaturalType
	if !t.IsIntegerType() && !t.IsPointerType() {
		return nil, errorf(expr.Location, badType, t.Name())
	}
	return t, nil
}

// ensureCanTakeAddress implements ensure_can_take_address: most
// expressions cannot appear on the left of '&' or as an assignment
// target. template is a %s format string (e.g. "the '&' operator cannot
// be used with %s" or "cannot assign to %s") filled in with the
// expression's noun-phrase description on failure.
func (ctx *TypeContext) ensureCanTakeAddress(expr *Expression, template string) error {
	switch expr.Kind {
	case ExprGetVariable, ExprDereference, ExprIndexing, ExprDerefAndGetField:
		return nil
	case ExprGetField:
		return ctx.ensureCanTakeAddress(expr.Object, template)
	default:
		return errorf(expr.Location, template, describeExpression(expr))
	}
}

// describeExpression returns a short noun phrase describing expr, for
// substitution into an ensureCanTakeAddress-style template. It mirrors
// short_expression_description, including its two recursive/data-bearing
// cases (address-of and field access) that ExprKind.String alone cannot
// produce.
func describeExpression(expr *Expression) string {
	switch expr.Kind {
	case ExprAddressOf:
		return "address of " + describeExpression(expr.Operand)
	case ExprGetField, ExprDerefAndGetField:
		return "field '" + expr.Name + "'"
	default:
		return expr.Kind.String()
	}
}

func (ctx *TypeContext) checkFunctionCall(expr *Expression) (*Type, error) {
	sig := ctx.findFunction(expr.Name)
	if sig == nil {
		return nil, errorf(expr.Location, "function \"%s\" not found", expr.Name)
	}

	nargs := len(expr.CallArgs)
	if nargs < len(sig.Args) || (nargs > len(sig.Args) && !sig.Varargs) {
		plural := func(n int) string {
			if n == 1 {
				return ""
			}
			return "s"
		}
		return nil, errorf(expr.Location, "function %s takes %d argument%s, but it was called with %d argument%s",
			sig.String(), len(sig.Args), plural(len(sig.Args)), nargs, plural(nargs))
	}

	for i, param := range sig.Args {
		msg := nthWord(i+1) + " argument of function " + sig.String() + " should have type TO, not FROM"
		if err := ctx.checkImplicitCast(expr.CallArgs[i], param.Type, msg); err != nil {
			return nil, err
		}
	}
	for i := len(sig.Args); i < nargs; i++ {
		// Varargs: still type-checked (e.g. printf's format arguments),
		// just not cast to anything in particular.
		if _, err := ctx.checkExpressionNotVoid(expr.CallArgs[i]); err != nil {
			return nil, err
		}
	}

	return sig.ReturnType, nil
}

func (ctx *TypeContext) checkStructInit(expr *Expression) (*Type, error) {
	t := ctx.findStruct(expr.Name)
	if t == nil {
		return nil, errorf(expr.Location, "there is no type named '%s'", expr.Name)
	}

	// Fields absent from expr.BraceArgs are simply never assigned here.
	// Any zero-initialization of the remaining fields is a backend
	// concern, not this checker's.
	for _, arg := range expr.BraceArgs {
		fieldType, err := ctx.checkStructField(t, arg.FieldName, arg.Value.Location)
		if err != nil {
			return nil, err
		}
		msg := "value for field '" + arg.FieldName + "' of struct " + expr.Name + " must be of type TO, not FROM"
		if err := ctx.checkImplicitCast(arg.Value, fieldType, msg); err != nil {
			return nil, err
		}
	}

	return t, nil
}
