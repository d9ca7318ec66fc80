package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"venti/internal/ast"
	"venti/internal/source"
)

// FormatASTPretty writes an indented tree of the parsed file. Every node
// line carries its resolved span so output lines map back to source.
func FormatASTPretty(w io.Writer, b *ast.Builder, fileID ast.FileID, fs *source.FileSet) error {
	file := b.Files.Get(fileID)
	if file == nil {
		return fmt.Errorf("file %d not found in builder", fileID)
	}

	path := ""
	if fs != nil {
		path = fs.Get(file.Span.File).Path
	}
	fmt.Fprintf(w, "File %s (%d statements)\n", path, len(file.Stmts))

	p := &astPrinter{w: w, b: b, fs: fs}
	for _, stmtID := range file.Stmts {
		p.stmt(stmtID, 1)
	}
	return nil
}

type astPrinter struct {
	w  io.Writer
	b  *ast.Builder
	fs *source.FileSet
}

func (p *astPrinter) line(depth int, format string, args ...any) {
	fmt.Fprintf(p.w, "%s%s\n", strings.Repeat("  ", depth), fmt.Sprintf(format, args...))
}

func (p *astPrinter) at(sp source.Span) string {
	if p.fs == nil {
		return sp.String()
	}
	start, end := p.fs.Resolve(sp)
	return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
}

func (p *astPrinter) name(id source.StringID) string {
	return p.b.StringsInterner.MustLookup(id)
}

func (p *astPrinter) stmt(id ast.StmtID, depth int) {
	stmt := p.b.Stmts.Get(id)
	switch stmt.Kind {
	case ast.StmtDeclare:
		data, _ := p.b.Stmts.Declare(id)
		p.line(depth, "Declare '%s' @%s", p.name(data.Name), p.at(stmt.Span))
		p.expr(data.Value, depth+1)
	case ast.StmtAssign:
		data, _ := p.b.Stmts.Assign(id)
		p.line(depth, "Assign '%s' @%s", p.name(data.Name), p.at(stmt.Span))
		p.expr(data.Value, depth+1)
	case ast.StmtPrint:
		data, _ := p.b.Stmts.Print(id)
		p.line(depth, "Print @%s", p.at(stmt.Span))
		p.expr(data.Value, depth+1)
	case ast.StmtCall:
		data, _ := p.b.Stmts.Call(id)
		p.line(depth, "Call '%s' (%d args) @%s", p.name(data.Name), len(data.Args), p.at(stmt.Span))
		for _, arg := range data.Args {
			p.expr(arg, depth+1)
		}
	case ast.StmtAsyncFn:
		data, _ := p.b.Stmts.AsyncFn(id)
		p.line(depth, "AsyncFn '%s' (%d statements) @%s", p.name(data.Name), len(data.Body), p.at(stmt.Span))
		for _, s := range data.Body {
			p.stmt(s, depth+1)
		}
	default:
		p.line(depth, "Unknown @%s", p.at(stmt.Span))
	}
}

func (p *astPrinter) expr(id ast.ExprID, depth int) {
	expr := p.b.Exprs.Get(id)
	switch expr.Kind {
	case ast.ExprLit:
		data, _ := p.b.Exprs.Literal(id)
		switch data.Kind {
		case ast.LitInt:
			p.line(depth, "Literal int %d @%s", data.Int, p.at(expr.Span))
		case ast.LitFloat:
			p.line(depth, "Literal float %g @%s", data.Float, p.at(expr.Span))
		case ast.LitBool:
			p.line(depth, "Literal bool %t @%s", data.Bool, p.at(expr.Span))
		case ast.LitString:
			p.line(depth, "Literal string %q @%s", p.name(data.Str), p.at(expr.Span))
		}
	case ast.ExprIdent:
		data, _ := p.b.Exprs.Ident(id)
		p.line(depth, "Ident '%s' @%s", p.name(data.Name), p.at(expr.Span))
	case ast.ExprBinary:
		data, _ := p.b.Exprs.Binary(id)
		p.line(depth, "Binary '%s' @%s", data.Op, p.at(expr.Span))
		p.expr(data.Left, depth+1)
		p.expr(data.Right, depth+1)
	case ast.ExprArray:
		data, _ := p.b.Exprs.Array(id)
		p.line(depth, "Array (%d elements) @%s", len(data.Elems), p.at(expr.Span))
		for _, elem := range data.Elems {
			p.expr(elem, depth+1)
		}
	case ast.ExprAwait:
		data, _ := p.b.Exprs.Await(id)
		p.line(depth, "Await @%s", p.at(expr.Span))
		p.expr(data.Inner, depth+1)
	case ast.ExprAsync:
		data, _ := p.b.Exprs.Async(id)
		p.line(depth, "Async @%s", p.at(expr.Span))
		p.expr(data.Inner, depth+1)
	default:
		p.line(depth, "Unknown @%s", p.at(expr.Span))
	}
}

// StmtJSON is one statement node in the JSON AST.
type StmtJSON struct {
	Kind  string      `json:"kind"`
	Name  string      `json:"name,omitempty"`
	Span  source.Span `json:"span"`
	Value *ExprJSON   `json:"value,omitempty"`
	Args  []ExprJSON  `json:"args,omitempty"`
	Body  []StmtJSON  `json:"body,omitempty"`
}

// ExprJSON is one expression node in the JSON AST.
type ExprJSON struct {
	Kind     string      `json:"kind"`
	Span     source.Span `json:"span"`
	LitKind  string      `json:"lit_kind,omitempty"`
	Value    string      `json:"value,omitempty"`
	Name     string      `json:"name,omitempty"`
	Op       string      `json:"op,omitempty"`
	Left     *ExprJSON   `json:"left,omitempty"`
	Right    *ExprJSON   `json:"right,omitempty"`
	Elements []ExprJSON  `json:"elements,omitempty"`
	Inner    *ExprJSON   `json:"inner,omitempty"`
}

// FileJSON is the root of the JSON AST.
type FileJSON struct {
	Path       string      `json:"path,omitempty"`
	Span       source.Span `json:"span"`
	Statements []StmtJSON  `json:"statements"`
}

// FormatASTJSON writes the parsed file as an indented JSON tree.
func FormatASTJSON(w io.Writer, b *ast.Builder, fileID ast.FileID, fs *source.FileSet) error {
	file := b.Files.Get(fileID)
	if file == nil {
		return fmt.Errorf("file %d not found in builder", fileID)
	}

	out := FileJSON{Span: file.Span}
	if fs != nil {
		out.Path = fs.Get(file.Span.File).Path
	}
	for _, stmtID := range file.Stmts {
		out.Statements = append(out.Statements, buildStmtJSON(b, stmtID))
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

func buildStmtJSON(b *ast.Builder, id ast.StmtID) StmtJSON {
	stmt := b.Stmts.Get(id)
	out := StmtJSON{Span: stmt.Span}
	lookup := b.StringsInterner.MustLookup

	switch stmt.Kind {
	case ast.StmtDeclare:
		data, _ := b.Stmts.Declare(id)
		out.Kind = "declare"
		out.Name = lookup(data.Name)
		v := buildExprJSON(b, data.Value)
		out.Value = &v
	case ast.StmtAssign:
		data, _ := b.Stmts.Assign(id)
		out.Kind = "assign"
		out.Name = lookup(data.Name)
		v := buildExprJSON(b, data.Value)
		out.Value = &v
	case ast.StmtPrint:
		data, _ := b.Stmts.Print(id)
		out.Kind = "print"
		v := buildExprJSON(b, data.Value)
		out.Value = &v
	case ast.StmtCall:
		data, _ := b.Stmts.Call(id)
		out.Kind = "call"
		out.Name = lookup(data.Name)
		for _, arg := range data.Args {
			out.Args = append(out.Args, buildExprJSON(b, arg))
		}
	case ast.StmtAsyncFn:
		data, _ := b.Stmts.AsyncFn(id)
		out.Kind = "async_fn"
		out.Name = lookup(data.Name)
		for _, s := range data.Body {
			out.Body = append(out.Body, buildStmtJSON(b, s))
		}
	default:
		out.Kind = "unknown"
	}
	return out
}

func buildExprJSON(b *ast.Builder, id ast.ExprID) ExprJSON {
	expr := b.Exprs.Get(id)
	out := ExprJSON{Span: expr.Span}

	switch expr.Kind {
	case ast.ExprLit:
		data, _ := b.Exprs.Literal(id)
		out.Kind = "literal"
		switch data.Kind {
		case ast.LitInt:
			out.LitKind = "int"
			out.Value = fmt.Sprintf("%d", data.Int)
		case ast.LitFloat:
			out.LitKind = "float"
			out.Value = fmt.Sprintf("%g", data.Float)
		case ast.LitBool:
			out.LitKind = "bool"
			out.Value = fmt.Sprintf("%t", data.Bool)
		case ast.LitString:
			out.LitKind = "string"
			out.Value = b.StringsInterner.MustLookup(data.Str)
		}
	case ast.ExprIdent:
		data, _ := b.Exprs.Ident(id)
		out.Kind = "ident"
		out.Name = b.StringsInterner.MustLookup(data.Name)
	case ast.ExprBinary:
		data, _ := b.Exprs.Binary(id)
		out.Kind = "binary"
		out.Op = data.Op.String()
		left := buildExprJSON(b, data.Left)
		right := buildExprJSON(b, data.Right)
		out.Left = &left
		out.Right = &right
	case ast.ExprArray:
		data, _ := b.Exprs.Array(id)
		out.Kind = "array"
		for _, elem := range data.Elems {
			out.Elements = append(out.Elements, buildExprJSON(b, elem))
		}
	case ast.ExprAwait:
		data, _ := b.Exprs.Await(id)
		out.Kind = "await"
		inner := buildExprJSON(b, data.Inner)
		out.Inner = &inner
	case ast.ExprAsync:
		data, _ := b.Exprs.Async(id)
		out.Kind = "async"
		inner := buildExprJSON(b, data.Inner)
		out.Inner = &inner
	default:
		out.Kind = "unknown"
	}
	return out
}
