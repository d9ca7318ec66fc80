package ast

import (
	"venti/internal/source"
)

// Exprs manages allocation of expressions.
type Exprs struct {
	Arena    *Arena[Expr]
	Literals *Arena[ExprLiteralData]
	Idents   *Arena[ExprIdentData]
	Binaries *Arena[ExprBinaryData]
	Arrays   *Arena[ExprArrayData]
	Awaits   *Arena[ExprUnwrapData]
	Asyncs   *Arena[ExprUnwrapData]
}

// NewExprs creates a new Exprs with per-kind arenas preallocated using
// capHint as the initial capacity.
func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Exprs{
		Arena:    NewArena[Expr](capHint),
		Literals: NewArena[ExprLiteralData](capHint),
		Idents:   NewArena[ExprIdentData](capHint),
		Binaries: NewArena[ExprBinaryData](capHint),
		Arrays:   NewArena[ExprArrayData](capHint),
		Awaits:   NewArena[ExprUnwrapData](capHint),
		Asyncs:   NewArena[ExprUnwrapData](capHint),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload PayloadID) ExprID {
	return ExprID(e.Arena.Allocate(Expr{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the expression with the given ID.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

// NewLiteral creates a new literal expression.
func (e *Exprs) NewLiteral(span source.Span, data ExprLiteralData) ExprID {
	payload := e.Literals.Allocate(data)
	return e.new(ExprLit, span, PayloadID(payload))
}

// Literal returns the literal data for the given expression ID.
func (e *Exprs) Literal(id ExprID) (*ExprLiteralData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprLit {
		return nil, false
	}
	return e.Literals.Get(uint32(expr.Payload)), true
}

// NewIdent creates a new identifier expression.
func (e *Exprs) NewIdent(span source.Span, name source.StringID) ExprID {
	payload := e.Idents.Allocate(ExprIdentData{Name: name})
	return e.new(ExprIdent, span, PayloadID(payload))
}

// Ident returns the identifier data for the given expression ID.
func (e *Exprs) Ident(id ExprID) (*ExprIdentData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIdent {
		return nil, false
	}
	return e.Idents.Get(uint32(expr.Payload)), true
}

// NewBinary creates a new binary expression.
func (e *Exprs) NewBinary(span source.Span, op BinaryOp, left, right ExprID) ExprID {
	payload := e.Binaries.Allocate(ExprBinaryData{Op: op, Left: left, Right: right})
	return e.new(ExprBinary, span, PayloadID(payload))
}

// Binary returns the binary data for the given expression ID.
func (e *Exprs) Binary(id ExprID) (*ExprBinaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprBinary {
		return nil, false
	}
	return e.Binaries.Get(uint32(expr.Payload)), true
}

// NewArray creates a new array literal expression.
func (e *Exprs) NewArray(span source.Span, elems []ExprID) ExprID {
	payload := e.Arrays.Allocate(ExprArrayData{Elems: elems})
	return e.new(ExprArray, span, PayloadID(payload))
}

// Array returns the array data for the given expression ID.
func (e *Exprs) Array(id ExprID) (*ExprArrayData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprArray {
		return nil, false
	}
	return e.Arrays.Get(uint32(expr.Payload)), true
}

// NewAwait creates a new await expression.
func (e *Exprs) NewAwait(span source.Span, inner ExprID) ExprID {
	payload := e.Awaits.Allocate(ExprUnwrapData{Inner: inner})
	return e.new(ExprAwait, span, PayloadID(payload))
}

// Await returns the await data for the given expression ID.
func (e *Exprs) Await(id ExprID) (*ExprUnwrapData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprAwait {
		return nil, false
	}
	return e.Awaits.Get(uint32(expr.Payload)), true
}

// NewAsync creates a new async wrapper expression.
func (e *Exprs) NewAsync(span source.Span, inner ExprID) ExprID {
	payload := e.Asyncs.Allocate(ExprUnwrapData{Inner: inner})
	return e.new(ExprAsync, span, PayloadID(payload))
}

// Async returns the async data for the given expression ID.
func (e *Exprs) Async(id ExprID) (*ExprUnwrapData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprAsync {
		return nil, false
	}
	return e.Asyncs.Get(uint32(expr.Payload)), true
}
