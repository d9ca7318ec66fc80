package source_test

import (
	"os"
	"path/filepath"
	"testing"

	"venti/internal/source"
)

func TestResolveLineCol(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("abc\ndef\n\nxyz")
	fileID := fs.AddVirtual("test.vt", content)

	tests := []struct {
		offset    uint32
		line, col uint32
	}{
		{0, 1, 1},
		{2, 1, 3},
		{3, 1, 4},  // the newline itself
		{4, 2, 1},  // start of "def"
		{8, 3, 1},  // the empty line
		{9, 4, 1},  // start of "xyz"
		{12, 4, 4}, // one past the end
	}
	for _, tt := range tests {
		start, _ := fs.Resolve(source.Span{File: fileID, Start: tt.offset, End: tt.offset})
		if start.Line != tt.line || start.Col != tt.col {
			t.Errorf("offset %d: got %d:%d, want %d:%d", tt.offset, start.Line, start.Col, tt.line, tt.col)
		}
	}
}

func TestGetLine(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.vt", []byte("first\nsecond\nthird"))
	file := fs.Get(fileID)

	tests := []struct {
		line uint32
		want string
	}{
		{1, "first"},
		{2, "second"},
		{3, "third"},
		{4, ""},
		{0, ""},
	}
	for _, tt := range tests {
		if got := file.GetLine(tt.line); got != tt.want {
			t.Errorf("line %d: got %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestLoadNormalizesCRLFAndBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.vt")
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("a\r\nb\r\n")...)
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatal(err)
	}

	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	file := fs.Get(fileID)

	if string(file.Content) != "a\nb\n" {
		t.Errorf("content not normalized: %q", file.Content)
	}
	if file.Flags&source.FileHadBOM == 0 {
		t.Error("FileHadBOM flag not set")
	}
	if file.Flags&source.FileNormalizedCRLF == 0 {
		t.Error("FileNormalizedCRLF flag not set")
	}
}

func TestSpanCoverAndText(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.vt", []byte("hello world"))
	file := fs.Get(fileID)

	a := source.Span{File: fileID, Start: 0, End: 5}
	b := source.Span{File: fileID, Start: 6, End: 11}
	c := a.Cover(b)
	if c.Start != 0 || c.End != 11 {
		t.Errorf("Cover: got %s", c)
	}
	if got := c.Text(file); got != "hello world" {
		t.Errorf("Text: got %q", got)
	}
	if got := b.Text(file); got != "world" {
		t.Errorf("Text: got %q", got)
	}

	other := source.Span{File: fileID + 1, Start: 0, End: 3}
	if got := a.Cover(other); got != a {
		t.Errorf("Cover across files must be a no-op, got %s", got)
	}
}

func TestInterner(t *testing.T) {
	in := source.NewInterner()

	x := in.Intern("x")
	y := in.Intern("y")
	if x == y {
		t.Error("distinct strings share an ID")
	}
	if in.Intern("x") != x {
		t.Error("re-interning changed the ID")
	}
	if got := in.MustLookup(x); got != "x" {
		t.Errorf("got %q, want %q", got, "x")
	}
	if _, ok := in.Lookup(source.StringID(999)); ok {
		t.Error("lookup of an unknown ID succeeded")
	}
	if in.MustLookup(source.NoStringID) != "" {
		t.Error("NoStringID must resolve to the empty string")
	}
}
