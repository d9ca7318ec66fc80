package parser

import (
	"slices"

	"venti/internal/ast"
	"venti/internal/diag"
	"venti/internal/lexer"
	"venti/internal/source"
	"venti/internal/token"
)

type Options struct {
	Reporter diag.Reporter
}

type Result struct {
	File ast.FileID
	Bag  *diag.Bag
	// Ok is false when the parse aborted; the statement list is then partial
	// and must not be consumed.
	Ok bool
}

// Parser is the per-file parse state. Lookahead is exactly one token
// (lexer.Peek); there is no error recovery — the first syntax error aborts
// the parse.
type Parser struct {
	lx       *lexer.Lexer
	arenas   *ast.Builder
	file     ast.FileID
	fs       *source.FileSet
	opts     Options
	errors   uint
	lastSpan source.Span // span of the last consumed token, for diagnostics
}

// ParseFile is the entry point for parsing one file. It requires an
// already-constructed lexer over the file.
func ParseFile(
	fs *source.FileSet,
	lx *lexer.Lexer,
	arenas *ast.Builder,
	opts Options,
) Result {
	p := Parser{
		lx:       lx,
		arenas:   arenas,
		file:     arenas.Files.New(lx.EmptySpan()),
		fs:       fs,
		opts:     opts,
		lastSpan: lx.EmptySpan(),
	}

	ok := p.parseStmts()
	var bag *diag.Bag
	if br, isBag := opts.Reporter.(*diag.BagReporter); isBag {
		bag = br.Bag
	}
	return Result{
		File: p.file,
		Bag:  bag,
		Ok:   ok,
	}
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.lx.Peek().Kind)
}

// parseStmts is the top-level loop: statements until EOF, stopping dead at
// the first error.
func (p *Parser) parseStmts() bool {
	startSpan := p.lx.Peek().Span
	for !p.at(token.EOF) {
		stmtID, ok := p.parseStmt()
		if !ok {
			return false
		}
		p.arenas.PushStmt(p.file, stmtID)
	}
	p.arenas.Files.Get(p.file).Span = startSpan.Cover(p.lx.Peek().Span)
	return true
}

// parseIdent expects an Ident, interns it, and returns its StringID.
func (p *Parser) parseIdent() (source.StringID, source.Span, bool) {
	if p.at(token.Ident) {
		tok := p.advance()
		id := p.arenas.StringsInterner.Intern(tok.Text)
		return id, tok.Span, true
	}
	p.err(diag.SynExpectIdentifier, "expected identifier, got \""+p.lx.Peek().Text+"\"")
	return source.NoStringID, p.getDiagnosticSpan(), false
}
