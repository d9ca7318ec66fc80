package lexer

import (
	"venti/internal/diag"
	"venti/internal/source"
)

type Options struct {
	// Reporter may be nil; lex errors are then dropped, but the lexer still
	// emits Invalid tokens so the parser aborts the compile.
	Reporter diag.Reporter
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
