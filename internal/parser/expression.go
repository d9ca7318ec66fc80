package parser

import (
	"venti/internal/ast"
	"venti/internal/diag"
	"venti/internal/token"
)

// Expression grammar (left-associative, multiplication binds tighter):
//
//	expression := term
//	term       := factor ( ('+' | '-') factor )*
//	factor     := primary ( ('*' | '/') primary )*
//	primary    := literal | identifier | '(' expression ')'
//	            | '[' elements ']' | 'await' expression | 'async' expression

// startsPrimary reports whether k can open a primary operand.
func startsPrimary(k token.Kind) bool {
	switch k {
	case token.IntLit, token.FloatLit, token.BoolLit, token.StringLit,
		token.Ident, token.LParen, token.LBracket,
		token.KwAwait, token.KwAsync:
		return true
	}
	return false
}

// parseExpr is the entry point for expression parsing.
func (p *Parser) parseExpr() (ast.ExprID, bool) {
	left, ok := p.parseFactor()
	if !ok {
		return ast.NoExprID, false
	}
	return p.parseTermRest(left)
}

// parseExprFrom continues an expression whose first primary has already been
// consumed (the assignment statement form hands its leading identifier in
// here, keeping lookahead at one token).
func (p *Parser) parseExprFrom(lead ast.ExprID) (ast.ExprID, bool) {
	left, ok := p.parseFactorRest(lead)
	if !ok {
		return ast.NoExprID, false
	}
	return p.parseTermRest(left)
}

// parseTermRest consumes ('+' | '-') factor repetitions to the left of left.
func (p *Parser) parseTermRest(left ast.ExprID) (ast.ExprID, bool) {
	for {
		var op ast.BinaryOp
		switch p.lx.Peek().Kind {
		case token.Plus:
			op = ast.OpAdd
		case token.Minus:
			op = ast.OpSub
		default:
			return left, true
		}
		p.advance()

		right, ok := p.parseFactor()
		if !ok {
			return ast.NoExprID, false
		}
		span := p.arenas.Exprs.Get(left).Span.Cover(p.arenas.Exprs.Get(right).Span)
		left = p.arenas.Exprs.NewBinary(span, op, left, right)
	}
}

// parseFactor parses primary ( ('*' | '/') primary )*.
func (p *Parser) parseFactor() (ast.ExprID, bool) {
	left, ok := p.parsePrimary()
	if !ok {
		return ast.NoExprID, false
	}
	return p.parseFactorRest(left)
}

// parseFactorRest consumes ('*' | '/') primary repetitions to the left of left.
func (p *Parser) parseFactorRest(left ast.ExprID) (ast.ExprID, bool) {
	for {
		var op ast.BinaryOp
		switch p.lx.Peek().Kind {
		case token.Star:
			op = ast.OpMul
		case token.Slash:
			op = ast.OpDiv
		default:
			return left, true
		}
		p.advance()

		right, ok := p.parsePrimary()
		if !ok {
			return ast.NoExprID, false
		}
		span := p.arenas.Exprs.Get(left).Span.Cover(p.arenas.Exprs.Get(right).Span)
		left = p.arenas.Exprs.NewBinary(span, op, left, right)
	}
}

// parsePrimary parses one operand.
func (p *Parser) parsePrimary() (ast.ExprID, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.IntLit, token.FloatLit, token.BoolLit, token.StringLit:
		return p.parseLiteral()

	case token.Ident:
		identTok := p.advance()
		name := p.arenas.StringsInterner.Intern(identTok.Text)
		return p.arenas.Exprs.NewIdent(identTok.Span, name), true

	case token.LParen:
		// Parentheses are transparent: the inner expression is returned
		// as-is.
		p.advance()
		inner, ok := p.parseExpr()
		if !ok {
			return ast.NoExprID, false
		}
		if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')'"); !ok {
			return ast.NoExprID, false
		}
		return inner, true

	case token.LBracket:
		return p.parseArray()

	case token.KwAwait:
		kw := p.advance()
		inner, ok := p.parseExpr()
		if !ok {
			return ast.NoExprID, false
		}
		span := kw.Span.Cover(p.arenas.Exprs.Get(inner).Span)
		return p.arenas.Exprs.NewAwait(span, inner), true

	case token.KwAsync:
		kw := p.advance()
		inner, ok := p.parseExpr()
		if !ok {
			return ast.NoExprID, false
		}
		span := kw.Span.Cover(p.arenas.Exprs.Get(inner).Span)
		return p.arenas.Exprs.NewAsync(span, inner), true

	default:
		if tok.IsReserved() {
			p.err(diag.SynReservedKeyword, "reserved keyword \""+tok.Text+"\" is not allowed in an expression")
			return ast.NoExprID, false
		}
		p.err(diag.SynExpectExpression, "expected expression, got \""+tok.Text+"\"")
		return ast.NoExprID, false
	}
}

// parseArray parses `[ expr , ... ]`; a trailing comma before ']' is
// tolerated.
func (p *Parser) parseArray() (ast.ExprID, bool) {
	lbracket := p.advance() // '['

	var elems []ast.ExprID
	for !p.at(token.RBracket) {
		elem, ok := p.parseExpr()
		if !ok {
			return ast.NoExprID, false
		}
		elems = append(elems, elem)
		if !p.at(token.Comma) {
			break
		}
		p.advance() // ','
	}
	rbracket, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' after array elements")
	if !ok {
		return ast.NoExprID, false
	}

	span := lbracket.Span.Cover(rbracket.Span)
	return p.arenas.Exprs.NewArray(span, elems), true
}
