package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"venti/internal/driver"
	"venti/internal/token"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTokenize(t *testing.T) {
	path := writeFile(t, t.TempDir(), "main.vt", "venti x = 1;\n")
	result, err := driver.Tokenize(path, 16)
	if err != nil {
		t.Fatal(err)
	}
	if result.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", result.Bag.Items())
	}
	if last := result.Tokens[len(result.Tokens)-1]; last.Kind != token.EOF {
		t.Errorf("token stream does not end with EOF: %s", last.Kind)
	}
}

func TestParseSource(t *testing.T) {
	result := driver.ParseSource("virtual.vt", []byte("printventi 1;\n"), 16)
	if !result.Ok || result.Bag.HasErrors() {
		t.Fatalf("parse failed: %v", result.Bag.Items())
	}
	file := result.Builder.Files.Get(result.FileID)
	if len(file.Stmts) != 1 {
		t.Errorf("got %d statements, want 1", len(file.Stmts))
	}
}

func TestCompileWritesArtifact(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "main.vt", "venti x = 41 + 1;\nprintventi x;\n")
	out := filepath.Join(dir, "main.ll")

	result, err := driver.Compile(src, driver.CompileOptions{OutPath: out})
	if err != nil {
		t.Fatal(err)
	}
	if !result.Ok {
		t.Fatalf("compile failed: %v", result.Bag.Items())
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != result.IR {
		t.Error("artifact differs from in-memory IR")
	}
	if !strings.Contains(result.IR, "@x = global i64 42") {
		t.Errorf("IR missing folded global:\n%s", result.IR)
	}
	if !strings.Contains(result.IR, "; ModuleID = 'main'") {
		t.Errorf("module name not derived from source name:\n%s", result.IR)
	}
}

func TestCompileFailureWritesNothing(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "bad.vt", "printventi missing;\n")
	out := filepath.Join(dir, "bad.ll")

	result, err := driver.Compile(src, driver.CompileOptions{OutPath: out})
	if err != nil {
		t.Fatal(err)
	}
	if result.Ok {
		t.Fatal("compile of an erroneous file succeeded")
	}
	if !result.Bag.HasErrors() {
		t.Error("no diagnostics recorded")
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("artifact written despite failure")
	}
}

func TestCompileCache(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "main.vt", "printventi \"cached\";\n")
	cache, err := driver.OpenDiskCacheAt(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatal(err)
	}

	first, err := driver.Compile(src, driver.CompileOptions{Cache: cache})
	if err != nil {
		t.Fatal(err)
	}
	if first.Cached {
		t.Error("first compile reported a cache hit")
	}

	second, err := driver.Compile(src, driver.CompileOptions{Cache: cache})
	if err != nil {
		t.Fatal(err)
	}
	if !second.Cached {
		t.Error("second compile missed the cache")
	}
	if second.IR != first.IR {
		t.Error("cached IR differs from the original")
	}

	// Changing the source invalidates the entry: the key is the content
	// hash.
	writeFile(t, dir, "main.vt", "printventi \"changed\";\n")
	third, err := driver.Compile(src, driver.CompileOptions{Cache: cache})
	if err != nil {
		t.Fatal(err)
	}
	if third.Cached {
		t.Error("stale cache hit after source change")
	}

	if err := cache.DropAll(); err != nil {
		t.Fatal(err)
	}
	fourth, err := driver.Compile(src, driver.CompileOptions{Cache: cache})
	if err != nil {
		t.Fatal(err)
	}
	if fourth.Cached {
		t.Error("cache hit after DropAll")
	}
}

func TestCompileCacheMissesOnRename(t *testing.T) {
	// The IR embeds the module name and source path, so a byte-identical
	// copy under a new name must re-lower instead of reusing the entry.
	dir := t.TempDir()
	content := "printventi 1;\n"
	first := writeFile(t, dir, "first.vt", content)
	second := writeFile(t, dir, "second.vt", content)
	cache, err := driver.OpenDiskCacheAt(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatal(err)
	}

	a, err := driver.Compile(first, driver.CompileOptions{Cache: cache})
	if err != nil {
		t.Fatal(err)
	}
	again, err := driver.Compile(first, driver.CompileOptions{Cache: cache})
	if err != nil {
		t.Fatal(err)
	}
	if !again.Cached {
		t.Error("recompiling the original file missed the cache")
	}

	b, err := driver.Compile(second, driver.CompileOptions{Cache: cache})
	if err != nil {
		t.Fatal(err)
	}
	if b.Cached {
		t.Error("copy under a new name hit the first file's cache entry")
	}
	if !strings.Contains(a.IR, "; ModuleID = 'first'") {
		t.Errorf("first IR has wrong module id:\n%s", a.IR)
	}
	if !strings.Contains(b.IR, "; ModuleID = 'second'") {
		t.Errorf("second IR has wrong module id:\n%s", b.IR)
	}
}

func TestCheckDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.vt", "venti x = 1;\n")
	writeFile(t, dir, "bad.vt", "venti x = y;\n")
	writeFile(t, dir, "ignored.txt", "not a source file")

	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, sub, "nested.vt", "printventi 1;\n")

	results, err := driver.CheckDir(context.Background(), dir, 16)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}

	// Sorted by path: bad.vt, good.vt, sub/nested.vt.
	if filepath.Base(results[0].Path) != "bad.vt" || results[0].Ok {
		t.Errorf("bad.vt: %+v", results[0])
	}
	if filepath.Base(results[1].Path) != "good.vt" || !results[1].Ok {
		t.Errorf("good.vt: %+v", results[1])
	}
	if filepath.Base(results[2].Path) != "nested.vt" || !results[2].Ok {
		t.Errorf("nested.vt: %+v", results[2])
	}
}
