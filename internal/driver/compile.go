package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"venti/internal/codegen"
	"venti/internal/diag"
	"venti/internal/source"
)

type CompileOptions struct {
	MaxDiagnostics int
	// ModuleName defaults to the source basename without its extension.
	ModuleName string
	// OutPath receives the emitted IR; empty keeps it in memory only.
	OutPath string
	// Cache short-circuits the pipeline on a source-hash hit. Optional.
	Cache *DiskCache
}

type CompileResult struct {
	FileSet *source.FileSet
	File    *source.File
	Bag     *diag.Bag
	IR      string
	Cached  bool
	// Ok is false when any stage reported an error; IR is then empty and no
	// artifact was written.
	Ok bool
}

// Compile runs the full pipeline on path: tokenize, parse, lower, emit.
// A failing stage stops the pipeline; nothing is written on failure.
func Compile(path string, opts CompileOptions) (*CompileResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return compileFile(fs, fileID, opts)
}

// CompileSource compiles in-memory content under a virtual path.
func CompileSource(name string, content []byte, opts CompileOptions) (*CompileResult, error) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return compileFile(fs, fileID, opts)
}

func compileFile(fs *source.FileSet, fileID source.FileID, opts CompileOptions) (*CompileResult, error) {
	file := fs.Get(fileID)
	if opts.MaxDiagnostics <= 0 {
		opts.MaxDiagnostics = 64
	}
	if opts.ModuleName == "" {
		opts.ModuleName = moduleNameFor(file.Path)
	}

	res := &CompileResult{
		FileSet: fs,
		File:    file,
		Bag:     diag.NewBag(opts.MaxDiagnostics),
	}

	// The IR embeds the module name and source path, so a content-hash hit
	// for a renamed or copied file must re-lower under the new identity.
	var payload DiskPayload
	if hit, err := opts.Cache.Get(file.Hash, &payload); err == nil && hit &&
		payload.ModuleName == opts.ModuleName && payload.SourcePath == file.Path {
		res.IR = payload.IR
		res.Cached = true
		res.Ok = true
		if opts.OutPath != "" {
			if err := writeArtifact(opts.OutPath, res.IR); err != nil {
				return res, err
			}
		}
		return res, nil
	}

	parsed := parseFile(fs, fileID, opts.MaxDiagnostics)
	res.Bag = parsed.Bag
	if !parsed.Ok || parsed.Bag.HasErrors() {
		return res, nil
	}

	mod, ok := codegen.Lower(parsed.Builder, fs, parsed.FileID, codegen.Options{
		ModuleName: opts.ModuleName,
		Reporter:   &diag.BagReporter{Bag: res.Bag},
	})
	if !ok {
		return res, nil
	}

	res.IR = mod.Emit()
	res.Ok = true

	// Best effort: a cache write failure never fails the build.
	_ = opts.Cache.Put(file.Hash, &DiskPayload{
		ModuleName: opts.ModuleName,
		SourcePath: file.Path,
		IR:         res.IR,
	})

	if opts.OutPath != "" {
		if err := writeArtifact(opts.OutPath, res.IR); err != nil {
			return res, err
		}
	}
	return res, nil
}

// writeArtifact writes the IR through a temp file in the target directory and
// renames it into place, so a crash never leaves a truncated artifact.
func writeArtifact(path, ir string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	f, err := os.CreateTemp(dir, ".venti-*")
	if err != nil {
		return fmt.Errorf("failed to create temp artifact: %w", err)
	}
	defer os.Remove(f.Name())

	if _, err := f.WriteString(ir); err != nil {
		f.Close()
		return fmt.Errorf("failed to write artifact: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close artifact: %w", err)
	}
	if err := os.Rename(f.Name(), path); err != nil {
		return fmt.Errorf("failed to move artifact into place: %w", err)
	}
	return nil
}

func moduleNameFor(path string) string {
	base := filepath.Base(path)
	if name := strings.TrimSuffix(base, filepath.Ext(base)); name != "" {
		return name
	}
	return "venti"
}
