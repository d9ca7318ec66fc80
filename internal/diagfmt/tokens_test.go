package diagfmt_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"venti/internal/ast"
	"venti/internal/diag"
	"venti/internal/diagfmt"
	"venti/internal/lexer"
	"venti/internal/parser"
	"venti/internal/source"
	"venti/internal/token"
)

func lexAll(t *testing.T, input string) ([]token.Token, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.vt", []byte(input))
	lx := lexer.New(fs.Get(fileID), lexer.Options{})

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens, fs
}

func TestFormatTokensPretty(t *testing.T) {
	tokens, fs := lexAll(t, "venti x = 1;")

	var buf bytes.Buffer
	if err := diagfmt.FormatTokensPretty(&buf, tokens, fs); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{"KwDeclare", "Ident", `"x"`, "Assign", "IntLit", "Semicolon", "EOF"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "at 1:1-1:6") {
		t.Errorf("output missing keyword position:\n%s", out)
	}
}

func TestFormatTokensJSON(t *testing.T) {
	tokens, _ := lexAll(t, "printventi 2;")

	var buf bytes.Buffer
	if err := diagfmt.FormatTokensJSON(&buf, tokens); err != nil {
		t.Fatal(err)
	}

	var decoded []diagfmt.TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	if len(decoded) != 4 {
		t.Fatalf("got %d tokens, want 4", len(decoded))
	}
	if decoded[0].Kind != "KwPrint" {
		t.Errorf("first token is %q", decoded[0].Kind)
	}
	if decoded[len(decoded)-1].Kind != "EOF" {
		t.Errorf("last token is %q", decoded[len(decoded)-1].Kind)
	}
}

func parseForDump(t *testing.T, input string) (*ast.Builder, ast.FileID, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.vt", []byte(input))
	bag := diag.NewBag(16)
	lx := lexer.New(fs.Get(fileID), lexer.Options{})
	builder := ast.NewBuilder(ast.Hints{}, nil)
	result := parser.ParseFile(fs, lx, builder, parser.Options{Reporter: &diag.BagReporter{Bag: bag}})
	if !result.Ok {
		t.Fatalf("parse failed: %v", bag.Items())
	}
	return builder, result.File, fs
}

func TestFormatASTPretty(t *testing.T) {
	b, fileID, fs := parseForDump(t, "venti x = 1 + 2;\nasync f { printventi x; }\n")

	var buf bytes.Buffer
	if err := diagfmt.FormatASTPretty(&buf, b, fileID, fs); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{
		"File test.vt (2 statements)",
		"Declare 'x'",
		"Binary '+'",
		"Literal int 1",
		"AsyncFn 'f' (1 statements)",
		"Print",
		"Ident 'x'",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatASTJSON(t *testing.T) {
	b, fileID, fs := parseForDump(t, "venti a = [1, 2];\n")

	var buf bytes.Buffer
	if err := diagfmt.FormatASTJSON(&buf, b, fileID, fs); err != nil {
		t.Fatal(err)
	}

	var decoded diagfmt.FileJSON
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	if len(decoded.Statements) != 1 {
		t.Fatalf("got %d statements, want 1", len(decoded.Statements))
	}
	stmt := decoded.Statements[0]
	if stmt.Kind != "declare" || stmt.Name != "a" {
		t.Errorf("statement: %+v", stmt)
	}
	if stmt.Value == nil || stmt.Value.Kind != "array" || len(stmt.Value.Elements) != 2 {
		t.Errorf("value: %+v", stmt.Value)
	}
}
