package lexer

import (
	"venti/internal/diag"
	"venti/internal/token"
)

// scanNumber scans a decimal integer or float literal: [0-9]+ with an
// optional fractional part and an optional exponent, or ".digits" when
// invoked after isNumberAfterDot. The raw text is kept in Token.Text;
// conversion to a value happens in the parser.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	// Leading dot: the ".digits" form.
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		if !isDec(lx.cursor.Peek()) {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexBadNumber, sp, "expected digit after '.'")
			return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		kind = token.FloatLit
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		return lx.finishNumberExponent(start, kind)
	}

	// Integer part.
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	// Fractional part.
	if lx.cursor.Peek() == '.' {
		b0, b1, ok := lx.cursor.Peek2()
		if ok && b0 == '.' && isDec(b1) {
			lx.cursor.Bump() // '.'
			kind = token.FloatLit
			for isDec(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
		}
	}

	return lx.finishNumberExponent(start, kind)
}

// finishNumberExponent consumes an optional exponent and emits the token.
func (lx *Lexer) finishNumberExponent(start Mark, kind token.Kind) token.Token {
	if lx.cursor.Peek() == 'e' || lx.cursor.Peek() == 'E' {
		mark := lx.cursor.Mark()
		lx.cursor.Bump() // e/E
		if lx.cursor.Peek() == '+' || lx.cursor.Peek() == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			// "1e" with no digits: the 'e' belongs to a following
			// identifier, not this number.
			lx.cursor.Reset(mark)
		} else {
			kind = token.FloatLit
			for isDec(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
		}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
