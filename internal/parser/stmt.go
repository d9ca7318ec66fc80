package parser

import (
	"venti/internal/ast"
	"venti/internal/diag"
	"venti/internal/source"
	"venti/internal/token"
)

// parseStmt dispatches on the leading token.
//
// venti      -> declaration
// printventi -> print
// async      -> async function declaration
// Ident      -> call when followed by '(', otherwise assignment
//
// Reserved keywords (control flow, type names) are recognized lexically but
// have no statement form; they are rejected here.
func (p *Parser) parseStmt() (ast.StmtID, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.KwDeclare:
		return p.parseDeclare()
	case token.KwPrint:
		return p.parsePrint()
	case token.KwAsync:
		return p.parseAsyncFn()
	case token.Ident:
		return p.parseCallOrAssign()
	case token.Invalid:
		// The lexer already reported; just stop.
		p.errors++
		return ast.NoStmtID, false
	default:
		if tok.IsReserved() {
			p.err(diag.SynReservedKeyword, "reserved keyword \""+tok.Text+"\" is not allowed here")
			return ast.NoStmtID, false
		}
		p.err(diag.SynUnexpectedToken, "unexpected token \""+tok.Text+"\", expected a statement")
		return ast.NoStmtID, false
	}
}

// parseDeclare parses `venti name = expr ;`.
func (p *Parser) parseDeclare() (ast.StmtID, bool) {
	kw := p.advance() // 'venti'

	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.Assign, diag.SynExpectAssign, "expected '=' after variable name"); !ok {
		return ast.NoStmtID, false
	}
	value, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	semi, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after declaration")
	if !ok {
		return ast.NoStmtID, false
	}

	span := kw.Span.Cover(semi.Span)
	return p.arenas.Stmts.NewDeclare(span, ast.StmtDeclareData{
		Name:     name,
		NameSpan: nameSpan,
		Value:    value,
	}), true
}

// parsePrint parses `printventi expr ;`.
func (p *Parser) parsePrint() (ast.StmtID, bool) {
	kw := p.advance() // 'printventi'

	value, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	semi, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after print statement")
	if !ok {
		return ast.NoStmtID, false
	}

	span := kw.Span.Cover(semi.Span)
	return p.arenas.Stmts.NewPrint(span, ast.StmtPrintData{Value: value}), true
}

// parseCallOrAssign disambiguates the two identifier-led statement forms by
// the token after the identifier: '(' makes a call, anything else an
// assignment. The assignment form has no '=': when the next token opens a
// new primary (`x 2 + 3;`) the value is that fresh expression; when it is an
// operator or the ';' itself (`x * 2;`, `x;`) the identifier is the first
// operand of the value expression.
func (p *Parser) parseCallOrAssign() (ast.StmtID, bool) {
	identTok := p.advance()
	name := p.arenas.StringsInterner.Intern(identTok.Text)

	if p.at(token.LParen) {
		return p.parseCallTail(identTok, name)
	}

	var value ast.ExprID
	var ok bool
	if startsPrimary(p.lx.Peek().Kind) {
		value, ok = p.parseExpr()
	} else {
		lead := p.arenas.Exprs.NewIdent(identTok.Span, name)
		value, ok = p.parseExprFrom(lead)
	}
	if !ok {
		return ast.NoStmtID, false
	}
	semi, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after assignment")
	if !ok {
		return ast.NoStmtID, false
	}

	span := identTok.Span.Cover(semi.Span)
	return p.arenas.Stmts.NewAssign(span, ast.StmtAssignData{
		Name:     name,
		NameSpan: identTok.Span,
		Value:    value,
	}), true
}

// parseCallTail parses `( args ) ;` after the callee identifier. Arguments
// are comma-separated; a trailing comma before ')' is tolerated.
func (p *Parser) parseCallTail(identTok token.Token, name source.StringID) (ast.StmtID, bool) {
	p.advance() // '('

	var args []ast.ExprID
	for !p.at(token.RParen) {
		arg, ok := p.parseExpr()
		if !ok {
			return ast.NoStmtID, false
		}
		args = append(args, arg)
		if !p.at(token.Comma) {
			break
		}
		p.advance() // ','
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after call arguments"); !ok {
		return ast.NoStmtID, false
	}
	semi, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after call")
	if !ok {
		return ast.NoStmtID, false
	}

	span := identTok.Span.Cover(semi.Span)
	return p.arenas.Stmts.NewCall(span, ast.StmtCallData{
		Name:     name,
		NameSpan: identTok.Span,
		Args:     args,
	}), true
}

// parseAsyncFn parses `async name { stmts }`. The body is an ordinary
// statement block; the async marker carries no runtime semantics.
func (p *Parser) parseAsyncFn() (ast.StmtID, bool) {
	kw := p.advance() // 'async'

	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.LBrace, diag.SynExpectBlock, "expected '{' to open function body"); !ok {
		return ast.NoStmtID, false
	}

	var body []ast.StmtID
	for !p.at(token.RBrace) {
		if p.at(token.EOF) {
			p.err(diag.SynUnclosedBrace, "expected '}' to close function body")
			return ast.NoStmtID, false
		}
		stmt, ok := p.parseStmt()
		if !ok {
			return ast.NoStmtID, false
		}
		body = append(body, stmt)
	}
	rbrace := p.advance() // '}'

	span := kw.Span.Cover(rbrace.Span)
	return p.arenas.Stmts.NewAsyncFn(span, ast.StmtAsyncFnData{
		Name:     name,
		NameSpan: nameSpan,
		Body:     body,
	}), true
}
