package ast

import (
	"venti/internal/source"
)

// Stmts manages allocation of statements.
type Stmts struct {
	Arena    *Arena[Stmt]
	Declares *Arena[StmtDeclareData]
	Assigns  *Arena[StmtAssignData]
	Prints   *Arena[StmtPrintData]
	Calls    *Arena[StmtCallData]
	AsyncFns *Arena[StmtAsyncFnData]
}

func NewStmts(capHint uint) *Stmts {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Stmts{
		Arena:    NewArena[Stmt](capHint),
		Declares: NewArena[StmtDeclareData](capHint),
		Assigns:  NewArena[StmtAssignData](capHint),
		Prints:   NewArena[StmtPrintData](capHint),
		Calls:    NewArena[StmtCallData](capHint),
		AsyncFns: NewArena[StmtAsyncFnData](capHint),
	}
}

func (s *Stmts) new(kind StmtKind, span source.Span, payload PayloadID) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the statement with the given ID.
func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

// NewDeclare creates a new declaration statement.
func (s *Stmts) NewDeclare(span source.Span, data StmtDeclareData) StmtID {
	payload := s.Declares.Allocate(data)
	return s.new(StmtDeclare, span, PayloadID(payload))
}

// Declare returns the declaration data for the given statement ID.
func (s *Stmts) Declare(id StmtID) (*StmtDeclareData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtDeclare {
		return nil, false
	}
	return s.Declares.Get(uint32(stmt.Payload)), true
}

// NewAssign creates a new assignment statement.
func (s *Stmts) NewAssign(span source.Span, data StmtAssignData) StmtID {
	payload := s.Assigns.Allocate(data)
	return s.new(StmtAssign, span, PayloadID(payload))
}

// Assign returns the assignment data for the given statement ID.
func (s *Stmts) Assign(id StmtID) (*StmtAssignData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtAssign {
		return nil, false
	}
	return s.Assigns.Get(uint32(stmt.Payload)), true
}

// NewPrint creates a new print statement.
func (s *Stmts) NewPrint(span source.Span, data StmtPrintData) StmtID {
	payload := s.Prints.Allocate(data)
	return s.new(StmtPrint, span, PayloadID(payload))
}

// Print returns the print data for the given statement ID.
func (s *Stmts) Print(id StmtID) (*StmtPrintData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtPrint {
		return nil, false
	}
	return s.Prints.Get(uint32(stmt.Payload)), true
}

// NewCall creates a new call statement.
func (s *Stmts) NewCall(span source.Span, data StmtCallData) StmtID {
	payload := s.Calls.Allocate(data)
	return s.new(StmtCall, span, PayloadID(payload))
}

// Call returns the call data for the given statement ID.
func (s *Stmts) Call(id StmtID) (*StmtCallData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtCall {
		return nil, false
	}
	return s.Calls.Get(uint32(stmt.Payload)), true
}

// NewAsyncFn creates a new async function declaration.
func (s *Stmts) NewAsyncFn(span source.Span, data StmtAsyncFnData) StmtID {
	payload := s.AsyncFns.Allocate(data)
	return s.new(StmtAsyncFn, span, PayloadID(payload))
}

// AsyncFn returns the async function data for the given statement ID.
func (s *Stmts) AsyncFn(id StmtID) (*StmtAsyncFnData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtAsyncFn {
		return nil, false
	}
	return s.AsyncFns.Get(uint32(stmt.Payload)), true
}
