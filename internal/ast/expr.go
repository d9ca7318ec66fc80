package ast

import (
	"venti/internal/source"
)

type ExprKind uint8

const (
	// ExprLit is an integer, float, boolean, or string literal.
	ExprLit ExprKind = iota
	// ExprIdent is a reference to a named binding.
	ExprIdent
	// ExprBinary is a left-associative binary operation.
	ExprBinary
	// ExprArray is a fixed-length array literal.
	ExprArray
	// ExprAwait unwraps its inner expression; no suspension is modeled.
	ExprAwait
	// ExprAsync wraps its inner expression; a purely syntactic marker.
	ExprAsync
)

// Expr is one node of the expression tree. Payload indexes the per-kind
// arena holding the node's data; children are ExprIDs, so the tree has no
// back references.
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

// LitKind classifies literal payloads.
type LitKind uint8

const (
	LitInt LitKind = iota
	LitFloat
	LitBool
	LitString
)

// BinaryOp is the operator of an ExprBinary node.
type BinaryOp uint8

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
)

func (op BinaryOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	}
	return "?"
}

// ExprLiteralData carries the already-converted literal value; the parser
// does the text-to-value conversion.
type ExprLiteralData struct {
	Kind  LitKind
	Int   int64
	Float float64
	Bool  bool
	Str   source.StringID // without the surrounding quotes
}

type ExprIdentData struct {
	Name source.StringID
}

type ExprBinaryData struct {
	Op    BinaryOp
	Left  ExprID
	Right ExprID
}

type ExprArrayData struct {
	Elems []ExprID
}

// ExprUnwrapData backs both await and async wrapper nodes.
type ExprUnwrapData struct {
	Inner ExprID
}
