package ast

import (
	"venti/internal/source"
)

type Hints struct{ Files, Stmts, Exprs uint }

// Builder owns the arenas one parse writes into and the string interner the
// AST's StringIDs resolve against.
type Builder struct {
	Files           *Files
	Stmts           *Stmts
	Exprs           *Exprs
	StringsInterner *source.Interner
}

// NewBuilder creates arenas sized by hints; interner may be nil, in which
// case a fresh one is created.
func NewBuilder(hints Hints, interner *source.Interner) *Builder {
	if hints.Files == 0 {
		hints.Files = 1 << 3
	}
	if hints.Stmts == 0 {
		hints.Stmts = 1 << 8
	}
	if hints.Exprs == 0 {
		hints.Exprs = 1 << 8
	}
	if interner == nil {
		interner = source.NewInterner()
	}
	return &Builder{
		Files:           NewFiles(hints.Files),
		Stmts:           NewStmts(hints.Stmts),
		Exprs:           NewExprs(hints.Exprs),
		StringsInterner: interner,
	}
}

// PushStmt appends a top-level statement to a file, keeping source order.
func (b *Builder) PushStmt(file FileID, stmt StmtID) {
	f := b.Files.Get(file)
	f.Stmts = append(f.Stmts, stmt)
}
