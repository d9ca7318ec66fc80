package driver

import (
	"venti/internal/ast"
	"venti/internal/diag"
	"venti/internal/lexer"
	"venti/internal/parser"
	"venti/internal/source"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Builder *ast.Builder
	FileID  ast.FileID
	Bag     *diag.Bag
	Ok      bool
}

// Parse loads path and parses it to an AST.
func Parse(path string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return parseFile(fs, fileID, maxDiagnostics), nil
}

// ParseSource parses in-memory content under a virtual path.
func ParseSource(name string, content []byte, maxDiagnostics int) *ParseResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return parseFile(fs, fileID, maxDiagnostics)
}

func parseFile(fs *source.FileSet, fileID source.FileID, maxDiagnostics int) *ParseResult {
	file := fs.Get(fileID)
	bag := diag.NewBag(maxDiagnostics)

	adapter := &lexer.ReporterAdapter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: adapter.Reporter()})
	builder := ast.NewBuilder(ast.Hints{}, nil)

	result := parser.ParseFile(fs, lx, builder, parser.Options{
		Reporter: &diag.BagReporter{Bag: bag},
	})

	return &ParseResult{
		FileSet: fs,
		File:    file,
		Builder: builder,
		FileID:  result.File,
		Bag:     bag,
		Ok:      result.Ok,
	}
}
