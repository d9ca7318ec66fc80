package lexer_test

import (
	"testing"

	"venti/internal/diag"
	"venti/internal/lexer"
	"venti/internal/source"
	"venti/internal/token"
)

// testReporter collects every diagnostic the lexer reports.
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

func (r *testReporter) HasErrors() bool {
	for _, d := range r.diagnostics {
		if d.Severity == diag.SevError {
			return true
		}
	}
	return false
}

func makeTestLexer(input string) (*lexer.Lexer, *source.File, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.vt", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	return lx, file, reporter
}

func collectAllTokens(lx *lexer.Lexer) []token.Token {
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

func expectTokens(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	lx, _, reporter := makeTestLexer(input)
	tokens := collectAllTokens(lx)

	if reporter.HasErrors() {
		t.Fatalf("unexpected lex errors for %q: %v", input, reporter.diagnostics)
	}
	if len(tokens) != len(expected) {
		t.Fatalf("token count mismatch for %q: got %d, want %d", input, len(tokens), len(expected))
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("token %d of %q: got %s, want %s", i, input, tok.Kind, expected[i])
		}
	}
}

func TestKeywordsAndIdents(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []token.Kind
	}{
		{
			name:     "declare statement",
			input:    "venti x = 42;",
			expected: []token.Kind{token.KwDeclare, token.Ident, token.Assign, token.IntLit, token.Semicolon, token.EOF},
		},
		{
			name:     "print statement",
			input:    "printventi x;",
			expected: []token.Kind{token.KwPrint, token.Ident, token.Semicolon, token.EOF},
		},
		{
			name:     "async and await",
			input:    "async f await g",
			expected: []token.Kind{token.KwAsync, token.Ident, token.KwAwait, token.Ident, token.EOF},
		},
		{
			name:     "keyword as prefix stays ident",
			input:    "ventix printventiy",
			expected: []token.Kind{token.Ident, token.Ident, token.EOF},
		},
		{
			name:     "underscored idents",
			input:    "_x x_1 __",
			expected: []token.Kind{token.Ident, token.Ident, token.Ident, token.EOF},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectTokens(t, tt.input, tt.expected)
		})
	}
}

func TestReservedKeywords(t *testing.T) {
	lx, _, _ := makeTestLexer("if_venti else_venti for_venti while_venti int float bool")
	tokens := collectAllTokens(lx)

	want := []token.Kind{
		token.KwIf, token.KwElse, token.KwFor, token.KwWhile,
		token.KwInt, token.KwFloat, token.KwBool, token.EOF,
	}
	for i, k := range want {
		if tokens[i].Kind != k {
			t.Errorf("token %d: got %s, want %s", i, tokens[i].Kind, k)
		}
	}
	for _, tok := range tokens[:7] {
		if !tok.IsReserved() {
			t.Errorf("%s should be reserved", tok.Kind)
		}
	}
}

func TestBoolLiterals(t *testing.T) {
	lx, _, _ := makeTestLexer("true false")
	tokens := collectAllTokens(lx)
	if tokens[0].Kind != token.BoolLit || tokens[0].Text != "true" {
		t.Errorf("got %s %q, want BoolLit \"true\"", tokens[0].Kind, tokens[0].Text)
	}
	if tokens[1].Kind != token.BoolLit || tokens[1].Text != "false" {
		t.Errorf("got %s %q, want BoolLit \"false\"", tokens[1].Kind, tokens[1].Text)
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"0", token.IntLit},
		{"42", token.IntLit},
		{"007", token.IntLit},
		{"3.14", token.FloatLit},
		{"0.5", token.FloatLit},
		{".5", token.FloatLit},
		{"1e9", token.FloatLit},
		{"2.5e-3", token.FloatLit},
		{"1E+6", token.FloatLit},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lx, _, reporter := makeTestLexer(tt.input)
			tok := lx.Next()
			if reporter.HasErrors() {
				t.Fatalf("unexpected errors: %v", reporter.diagnostics)
			}
			if tok.Kind != tt.kind {
				t.Errorf("got %s, want %s", tok.Kind, tt.kind)
			}
			if tok.Text != tt.input {
				t.Errorf("got text %q, want %q", tok.Text, tt.input)
			}
		})
	}
}

func TestNumberExponentBacktrack(t *testing.T) {
	// "1e" has no exponent digits, so the token is the int and "e" is an
	// identifier.
	lx, _, reporter := makeTestLexer("1e")
	tokens := collectAllTokens(lx)
	if reporter.HasErrors() {
		t.Fatalf("unexpected errors: %v", reporter.diagnostics)
	}
	if tokens[0].Kind != token.IntLit || tokens[0].Text != "1" {
		t.Errorf("got %s %q, want IntLit \"1\"", tokens[0].Kind, tokens[0].Text)
	}
	if tokens[1].Kind != token.Ident || tokens[1].Text != "e" {
		t.Errorf("got %s %q, want Ident \"e\"", tokens[1].Kind, tokens[1].Text)
	}
}

func TestStrings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		text  string
	}{
		{"plain", `"hello"`, `"hello"`},
		{"empty", `""`, `""`},
		{"escaped quote", `"a\"b"`, `"a\"b"`},
		{"escaped backslash", `"a\\b"`, `"a\\b"`},
		{"newline escape kept raw", `"a\nb"`, `"a\nb"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lx, _, reporter := makeTestLexer(tt.input)
			tok := lx.Next()
			if reporter.HasErrors() {
				t.Fatalf("unexpected errors: %v", reporter.diagnostics)
			}
			if tok.Kind != token.StringLit {
				t.Fatalf("got %s, want StringLit", tok.Kind)
			}
			if tok.Text != tt.text {
				t.Errorf("got text %q, want %q", tok.Text, tt.text)
			}
		})
	}
}

func TestUnterminatedString(t *testing.T) {
	tests := []string{
		`"abc`,
		"\"abc\nxyz\"",
	}
	for _, input := range tests {
		lx, _, reporter := makeTestLexer(input)
		tok := lx.Next()
		if tok.Kind != token.Invalid {
			t.Errorf("%q: got %s, want Invalid", input, tok.Kind)
		}
		if !reporter.HasErrors() {
			t.Errorf("%q: expected a diagnostic", input)
		}
		if len(reporter.diagnostics) > 0 && reporter.diagnostics[0].Code != diag.LexUnterminatedString {
			t.Errorf("%q: got code %s, want %s", input, reporter.diagnostics[0].Code, diag.LexUnterminatedString)
		}
	}
}

func TestUnknownChar(t *testing.T) {
	lx, _, reporter := makeTestLexer("venti x = 1 @ 2;")
	tokens := collectAllTokens(lx)

	if !reporter.HasErrors() {
		t.Fatal("expected a diagnostic for '@'")
	}
	if reporter.diagnostics[0].Code != diag.LexUnknownChar {
		t.Errorf("got code %s, want %s", reporter.diagnostics[0].Code, diag.LexUnknownChar)
	}

	found := false
	for _, tok := range tokens {
		if tok.Kind == token.Invalid && tok.Text == "@" {
			found = true
		}
	}
	if !found {
		t.Error("expected an Invalid token carrying \"@\"")
	}
}

func TestOperatorsAndPunct(t *testing.T) {
	expectTokens(t, "+ - * / = ( ) [ ] { } , ;", []token.Kind{
		token.Plus, token.Minus, token.Star, token.Slash, token.Assign,
		token.LParen, token.RParen, token.LBracket, token.RBracket,
		token.LBrace, token.RBrace, token.Comma, token.Semicolon, token.EOF,
	})
}

func TestLeadingTrivia(t *testing.T) {
	lx, _, _ := makeTestLexer("  \n\n  x")
	tok := lx.Next()
	if tok.Kind != token.Ident {
		t.Fatalf("got %s, want Ident", tok.Kind)
	}
	// Runs coalesce: spaces, then newlines, then spaces again.
	want := []token.TriviaKind{token.TriviaSpace, token.TriviaNewline, token.TriviaSpace}
	if len(tok.Leading) != len(want) {
		t.Fatalf("got %d trivia, want %d", len(tok.Leading), len(want))
	}
	for i, tr := range tok.Leading {
		if tr.Kind != want[i] {
			t.Errorf("trivia %d: got %s, want %s", i, tr.Kind, want[i])
		}
	}
}

// TestSpanReconstruction checks that every token's span slices back to
// exactly its text.
func TestSpanReconstruction(t *testing.T) {
	input := "venti x = 1 + 2.5;\nprintventi \"ok\";\nasync f { x 3; }\n"
	lx, file, reporter := makeTestLexer(input)
	tokens := collectAllTokens(lx)

	if reporter.HasErrors() {
		t.Fatalf("unexpected errors: %v", reporter.diagnostics)
	}
	for _, tok := range tokens {
		if tok.Kind == token.EOF {
			continue
		}
		got := string(file.Content[tok.Span.Start:tok.Span.End])
		if got != tok.Text {
			t.Errorf("span %s reconstructs %q, token text is %q", tok.Span, got, tok.Text)
		}
	}
}

func TestEOFIsSticky(t *testing.T) {
	lx, _, _ := makeTestLexer("x")
	collectAllTokens(lx)
	for range 3 {
		if tok := lx.Next(); tok.Kind != token.EOF {
			t.Fatalf("got %s after EOF, want EOF", tok.Kind)
		}
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx, _, _ := makeTestLexer("venti x")
	p1 := lx.Peek()
	p2 := lx.Peek()
	if p1.Kind != p2.Kind || p1.Span != p2.Span {
		t.Error("consecutive Peeks disagree")
	}
	n := lx.Next()
	if n.Kind != p1.Kind || n.Span != p1.Span {
		t.Error("Next disagrees with Peek")
	}
}
