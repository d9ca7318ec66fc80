package ast

import (
	"venti/internal/source"
)

type StmtKind uint8

const (
	// StmtDeclare is `venti name = expr ;`.
	StmtDeclare StmtKind = iota
	// StmtAssign rebinds an existing name: `name expr ;` (no '=').
	StmtAssign
	// StmtPrint is `printventi expr ;`.
	StmtPrint
	// StmtCall is `name ( args ) ;`.
	StmtCall
	// StmtAsyncFn is `async name { body }`.
	StmtAsyncFn
)

// Stmt is one statement node; Payload indexes the per-kind arena.
type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload PayloadID
}

type StmtDeclareData struct {
	Name     source.StringID
	NameSpan source.Span
	Value    ExprID
}

type StmtAssignData struct {
	Name     source.StringID
	NameSpan source.Span
	Value    ExprID
}

type StmtPrintData struct {
	Value ExprID
}

type StmtCallData struct {
	Name     source.StringID
	NameSpan source.Span
	Args     []ExprID
}

type StmtAsyncFnData struct {
	Name     source.StringID
	NameSpan source.Span
	Body     []StmtID
}
