package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"venti/internal/diag"
	"venti/internal/source"
)

// CheckFileResult is the outcome of checking one source file.
type CheckFileResult struct {
	Path    string
	FileSet *source.FileSet
	Bag     *diag.Bag
	// Ok is true when the file compiled without errors. Err carries I/O
	// failures only; language errors land in Bag.
	Ok  bool
	Err error
}

// CheckDir compiles every .vt file under dir in parallel, without writing
// artifacts. Results come back sorted by path regardless of completion
// order.
func CheckDir(ctx context.Context, dir string, maxDiagnostics int) ([]CheckFileResult, error) {
	paths, err := collectSourceFiles(dir)
	if err != nil {
		return nil, err
	}

	results := make([]CheckFileResult, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := Compile(path, CompileOptions{MaxDiagnostics: maxDiagnostics})
			out := CheckFileResult{Path: path, Err: err}
			if res != nil {
				out.FileSet = res.FileSet
				out.Bag = res.Bag
				out.Ok = res.Ok && err == nil
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Path < results[j].Path
	})
	return results, nil
}

// collectSourceFiles lists the .vt files under dir, recursively.
func collectSourceFiles(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ".vt" {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}
