package diag

import (
	"fmt"
)

// Code identifies a diagnostic. The thousands digit carries the error
// taxonomy of the language: 1xxx lexical, 2xxx syntax, 3xxx type (reserved),
// 4xxx codegen, 5xxx I/O, 6xxx runtime (reserved).
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexBadNumber          Code = 1003

	// Syntax
	SynInfo              Code = 2000
	SynUnexpectedToken   Code = 2001
	SynExpectIdentifier  Code = 2002
	SynExpectAssign      Code = 2003
	SynExpectSemicolon   Code = 2004
	SynExpectExpression  Code = 2005
	SynUnclosedParen     Code = 2006
	SynUnclosedBracket   Code = 2007
	SynUnclosedBrace     Code = 2008
	SynExpectBlock       Code = 2009
	SynReservedKeyword   Code = 2010
	SynBadIntLiteral     Code = 2011
	SynBadFloatLiteral   Code = 2012
	SynInvalidTokenInput Code = 2013

	// Type checking (reserved: no construct in the current grammar
	// triggers these)
	TypeInfo Code = 3000

	// Codegen (lowering)
	GenInfo              Code = 4000
	GenUndefinedVariable Code = 4001
	GenUndefinedFunction Code = 4002
	GenTypeMismatch      Code = 4003
	GenNotConstant       Code = 4004
	GenUnsupportedExpr   Code = 4005
	GenBadArity          Code = 4006
	GenDivideByZero      Code = 4007

	// I/O
	IOInfo        Code = 5000
	IOReadFailed  Code = 5001
	IOWriteFailed Code = 5002

	// Runtime (reserved: the pipeline is compile-time only)
	RuntimeInfo Code = 6000
)

// ID returns the stable user-facing identifier, e.g. "VEN2001".
func (c Code) ID() string {
	return fmt.Sprintf("VEN%04d", uint16(c))
}

// Phase names the taxonomy bucket the code belongs to.
func (c Code) Phase() string {
	switch {
	case c >= 1000 && c < 2000:
		return "lex"
	case c >= 2000 && c < 3000:
		return "syntax"
	case c >= 3000 && c < 4000:
		return "type"
	case c >= 4000 && c < 5000:
		return "codegen"
	case c >= 5000 && c < 6000:
		return "io"
	case c >= 6000 && c < 7000:
		return "runtime"
	default:
		return "unknown"
	}
}

func (c Code) String() string {
	return c.ID()
}
