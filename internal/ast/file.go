package ast

import (
	"venti/internal/source"
)

// File is the root of one parsed source file: its top-level statements in
// source order.
type File struct {
	Span  source.Span
	Stmts []StmtID
}

type Files struct {
	Arena *Arena[File]
}

func NewFiles(capHint uint) *Files {
	return &Files{
		Arena: NewArena[File](capHint),
	}
}

func (f *Files) New(span source.Span) FileID {
	return FileID(f.Arena.Allocate(File{Span: span}))
}

func (f *Files) Get(id FileID) *File {
	return f.Arena.Get(uint32(id))
}
