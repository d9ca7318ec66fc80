package token

import (
	"venti/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a numeric, boolean, or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, BoolLit, StringLit:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	switch t.Kind {
	case Plus, Minus, Star, Slash, Assign,
		LParen, RParen, LBrace, RBrace, LBracket, RBracket, Comma, Semicolon:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword, reserved ones
// included.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwDeclare, KwPrint, KwAsync, KwAwait,
		KwIf, KwElse, KwFor, KwWhile, KwInt, KwFloat, KwBool:
		return true
	default:
		return false
	}
}

// IsReserved reports whether the token is a keyword the lexer recognizes but
// the grammar never accepts: control flow and primitive type names.
func (t Token) IsReserved() bool {
	switch t.Kind {
	case KwIf, KwElse, KwFor, KwWhile, KwInt, KwFloat, KwBool:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
