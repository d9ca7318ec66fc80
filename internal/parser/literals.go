package parser

import (
	"strconv"
	"strings"

	"venti/internal/ast"
	"venti/internal/diag"
	"venti/internal/token"
)

// parseLiteral converts the raw token text into a typed literal node. The
// lexer defers conversion, so a malformed payload surfaces here as a syntax
// error.
func (p *Parser) parseLiteral() (ast.ExprID, bool) {
	tok := p.advance()
	switch tok.Kind {
	case token.IntLit:
		v, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			p.report(diag.SynBadIntLiteral, diag.SevError, tok.Span,
				"invalid integer literal \""+tok.Text+"\"")
			return ast.NoExprID, false
		}
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.ExprLiteralData{
			Kind: ast.LitInt,
			Int:  v,
		}), true

	case token.FloatLit:
		v, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			p.report(diag.SynBadFloatLiteral, diag.SevError, tok.Span,
				"invalid float literal \""+tok.Text+"\"")
			return ast.NoExprID, false
		}
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.ExprLiteralData{
			Kind:  ast.LitFloat,
			Float: v,
		}), true

	case token.BoolLit:
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.ExprLiteralData{
			Kind: ast.LitBool,
			Bool: tok.Text == "true",
		}), true

	case token.StringLit:
		text := unquoteString(tok.Text)
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.ExprLiteralData{
			Kind: ast.LitString,
			Str:  p.arenas.StringsInterner.Intern(text),
		}), true
	}

	p.report(diag.SynExpectExpression, diag.SevError, tok.Span,
		"expected literal, got \""+tok.Text+"\"")
	return ast.NoExprID, false
}

// unquoteString strips the surrounding quotes and resolves the escapes the
// lexer accepts: \\, \", \n, \t. Unknown escapes keep the escaped byte.
func unquoteString(raw string) string {
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		raw = raw[1 : len(raw)-1]
	}
	if !strings.ContainsRune(raw, '\\') {
		return raw
	}

	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != '\\' || i+1 >= len(raw) {
			b.WriteByte(c)
			continue
		}
		i++
		switch raw[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		default:
			b.WriteByte(raw[i])
		}
	}
	return b.String()
}
