package codegen

import (
	"fmt"
	"strings"

	"venti/internal/ast"
	"venti/internal/diag"
)

// evalExpr folds an expression tree down to a Value. Identifiers resolve
// against the globals bound so far in the walk, so a name is visible only to
// statements after its declaration.
func (lw *Lowerer) evalExpr(id ast.ExprID) (Value, bool) {
	expr := lw.arenas.Exprs.Get(id)
	switch expr.Kind {
	case ast.ExprLit:
		data, _ := lw.arenas.Exprs.Literal(id)
		switch data.Kind {
		case ast.LitInt:
			return IntValue(data.Int), true
		case ast.LitFloat:
			return FloatValue(data.Float), true
		case ast.LitBool:
			return BoolValue(data.Bool), true
		case ast.LitString:
			return StringValue(lw.arenas.StringsInterner.MustLookup(data.Str)), true
		}

	case ast.ExprIdent:
		data, _ := lw.arenas.Exprs.Ident(id)
		name := lw.name(data.Name)
		if v, ok := lw.mod.Global(name); ok {
			return v, true
		}
		lw.report(diag.GenUndefinedVariable, expr.Span,
			fmt.Sprintf("undefined variable %q", name))
		return Value{}, false

	case ast.ExprBinary:
		data, _ := lw.arenas.Exprs.Binary(id)
		left, ok := lw.evalExpr(data.Left)
		if !ok {
			return Value{}, false
		}
		right, ok := lw.evalExpr(data.Right)
		if !ok {
			return Value{}, false
		}
		return lw.foldBinary(id, data.Op, left, right)

	case ast.ExprArray:
		data, _ := lw.arenas.Exprs.Array(id)
		elems := make([]Value, 0, len(data.Elems))
		for _, elemID := range data.Elems {
			v, ok := lw.evalExpr(elemID)
			if !ok {
				return Value{}, false
			}
			elems = append(elems, v)
		}
		// Mixed element types have no single array type, so reject them.
		for i := 1; i < len(elems); i++ {
			if lw.mod.llvmType(elems[i]) != lw.mod.llvmType(elems[0]) {
				elemExpr := lw.arenas.Exprs.Get(data.Elems[i])
				lw.report(diag.GenTypeMismatch, elemExpr.Span,
					fmt.Sprintf("array elements must share one type, got %s and %s",
						elems[0].Kind, elems[i].Kind))
				return Value{}, false
			}
		}
		return ArrayValue(elems), true

	case ast.ExprAwait:
		// Await is a no-op on an already-folded value.
		data, _ := lw.arenas.Exprs.Await(id)
		return lw.evalExpr(data.Inner)

	case ast.ExprAsync:
		data, _ := lw.arenas.Exprs.Async(id)
		return lw.evalExpr(data.Inner)
	}

	lw.report(diag.GenUnsupportedExpr, expr.Span, "unsupported expression kind")
	return Value{}, false
}

// foldBinary applies op to two folded operands. Arithmetic is defined only
// within one numeric kind; int and float never mix implicitly.
func (lw *Lowerer) foldBinary(id ast.ExprID, op ast.BinaryOp, left, right Value) (Value, bool) {
	sp := lw.arenas.Exprs.Get(id).Span
	if !left.IsNumeric() || !right.IsNumeric() || left.Kind != right.Kind {
		lw.report(diag.GenTypeMismatch, sp,
			fmt.Sprintf("operands of %q must share one numeric kind, got %s and %s",
				op.String(), left.Kind, right.Kind))
		return Value{}, false
	}

	if left.Kind == ValInt {
		switch op {
		case ast.OpAdd:
			return IntValue(left.Int + right.Int), true
		case ast.OpSub:
			return IntValue(left.Int - right.Int), true
		case ast.OpMul:
			return IntValue(left.Int * right.Int), true
		case ast.OpDiv:
			if right.Int == 0 {
				lw.report(diag.GenDivideByZero, sp, "integer division by zero")
				return Value{}, false
			}
			return IntValue(left.Int / right.Int), true
		}
	}

	switch op {
	case ast.OpAdd:
		return FloatValue(left.Float + right.Float), true
	case ast.OpSub:
		return FloatValue(left.Float - right.Float), true
	case ast.OpMul:
		return FloatValue(left.Float * right.Float), true
	case ast.OpDiv:
		// IEEE semantics: float division by zero folds to an infinity.
		return FloatValue(left.Float / right.Float), true
	}

	lw.report(diag.GenUnsupportedExpr, sp, "unsupported binary operator")
	return Value{}, false
}

// llvmType renders the LLVM type of a folded value, recursing through
// arrays. String values live behind interned constants, so they type as ptr.
func (m *Module) llvmType(v Value) string {
	if v.Kind != ValArray {
		return v.scalarType()
	}
	elemTy := "i64"
	if len(v.Elems) > 0 {
		elemTy = m.llvmType(v.Elems[0])
	}
	return fmt.Sprintf("[%d x %s]", len(v.Elems), elemTy)
}

// llvmConst renders a folded value as an LLVM constant expression. Strings
// intern into the module and render as a reference to the constant.
func (m *Module) llvmConst(v Value) string {
	switch v.Kind {
	case ValString:
		return "@" + m.InternString(v.Str)
	case ValArray:
		parts := make([]string, 0, len(v.Elems))
		for _, e := range v.Elems {
			parts = append(parts, m.llvmType(e)+" "+m.llvmConst(e))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	return v.scalarConst()
}
