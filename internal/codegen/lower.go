package codegen

import (
	"fmt"

	"venti/internal/ast"
	"venti/internal/diag"
	"venti/internal/source"
)

type Options struct {
	// ModuleName lands in the emitted header; defaults to "venti".
	ModuleName string
	Reporter   diag.Reporter
}

// Lowerer walks one parsed file exactly once, folding every expression to a
// constant and mutating an initially-empty Module. Any error makes the pass
// fail as a whole; a failed pass never emits.
type Lowerer struct {
	arenas *ast.Builder
	fs     *source.FileSet
	mod    *Module
	opts   Options
	errors uint
}

// Lower builds a Module from the file's statement list. Returns the module
// and true on success; on failure the module must be discarded.
func Lower(arenas *ast.Builder, fs *source.FileSet, fileID ast.FileID, opts Options) (*Module, bool) {
	if opts.ModuleName == "" {
		opts.ModuleName = "venti"
	}

	file := arenas.Files.Get(fileID)
	sourcePath := ""
	if fs != nil && file != nil {
		sourcePath = fs.Get(file.Span.File).Path
	}

	lw := &Lowerer{
		arenas: arenas,
		fs:     fs,
		mod:    NewModule(opts.ModuleName, sourcePath),
		opts:   opts,
	}

	if file != nil {
		for _, stmtID := range file.Stmts {
			if !lw.lowerStmt(lw.mod.Main(), stmtID) {
				return nil, false
			}
		}
	}
	return lw.mod, true
}

func (lw *Lowerer) report(code diag.Code, sp source.Span, msg string) {
	lw.errors++
	if lw.opts.Reporter != nil {
		lw.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}

func (lw *Lowerer) name(id source.StringID) string {
	return lw.arenas.StringsInterner.MustLookup(id)
}

// lowerStmt lowers one statement. fn is the function body that receives
// instructions: the synthesized main for top-level statements, or the
// enclosing declared function inside an async body.
func (lw *Lowerer) lowerStmt(fn *Func, id ast.StmtID) bool {
	stmt := lw.arenas.Stmts.Get(id)
	switch stmt.Kind {
	case ast.StmtDeclare:
		data, _ := lw.arenas.Stmts.Declare(id)
		v, ok := lw.evalExpr(data.Value)
		if !ok {
			return false
		}
		// Redeclaration silently replaces the binding: last write wins.
		lw.mod.SetGlobal(lw.name(data.Name), v)
		return true

	case ast.StmtAssign:
		data, _ := lw.arenas.Stmts.Assign(id)
		name := lw.name(data.Name)
		if !lw.mod.HasGlobal(name) {
			lw.report(diag.GenUndefinedVariable, data.NameSpan,
				fmt.Sprintf("undefined variable %q", name))
			return false
		}
		v, ok := lw.evalExpr(data.Value)
		if !ok {
			return false
		}
		lw.mod.SetGlobal(name, v)
		return true

	case ast.StmtPrint:
		data, _ := lw.arenas.Stmts.Print(id)
		v, ok := lw.evalExpr(data.Value)
		if !ok {
			return false
		}
		return lw.emitPrint(fn, v)

	case ast.StmtCall:
		data, _ := lw.arenas.Stmts.Call(id)
		name := lw.name(data.Name)
		callee, found := lw.mod.Func(name)
		if !found {
			lw.report(diag.GenUndefinedFunction, data.NameSpan,
				fmt.Sprintf("undefined function %q", name))
			return false
		}
		// Arguments fold left to right before the call is emitted.
		for _, arg := range data.Args {
			if _, ok := lw.evalExpr(arg); !ok {
				return false
			}
		}
		if len(data.Args) > 0 {
			lw.report(diag.GenBadArity, data.NameSpan,
				fmt.Sprintf("function %q takes no arguments, got %d", name, len(data.Args)))
			return false
		}
		fn.push("call void @%s()", callee.Name)
		return true

	case ast.StmtAsyncFn:
		data, _ := lw.arenas.Stmts.AsyncFn(id)
		// The async marker is purely syntactic here: the body becomes an
		// ordinary zero-argument procedure with an implicit return.
		body := lw.mod.NewFunc(lw.name(data.Name))
		for _, s := range data.Body {
			if !lw.lowerStmt(body, s) {
				return false
			}
		}
		return true
	}

	lw.report(diag.GenUnsupportedExpr, stmt.Span, "unsupported statement kind")
	return false
}

// emitPrint lowers a print of v into a call against the module's single
// external symbol. Strings pass a pointer to interned constant text; scalars
// pass their value; arrays are materialized and pass their base pointer.
func (lw *Lowerer) emitPrint(fn *Func, v Value) bool {
	switch v.Kind {
	case ValInt:
		fmtName := lw.mod.InternString("%ld\n")
		t := fn.nextTmp()
		fn.push("%s = call i32 (ptr, ...) @printf(ptr @%s, i64 %s)", t, fmtName, v.scalarConst())
	case ValFloat:
		fmtName := lw.mod.InternString("%f\n")
		t := fn.nextTmp()
		fn.push("%s = call i32 (ptr, ...) @printf(ptr @%s, double %s)", t, fmtName, v.scalarConst())
	case ValBool:
		fmtName := lw.mod.InternString("%d\n")
		t := fn.nextTmp()
		fn.push("%s = call i32 (ptr, ...) @printf(ptr @%s, i1 %s)", t, fmtName, v.scalarConst())
	case ValString:
		fmtName := lw.mod.InternString("%s\n")
		strName := lw.mod.InternString(v.Str)
		t := fn.nextTmp()
		fn.push("%s = call i32 (ptr, ...) @printf(ptr @%s, ptr @%s)", t, fmtName, strName)
	case ValArray:
		base := lw.materializeArray(fn, v)
		fmtName := lw.mod.InternString("%p\n")
		t := fn.nextTmp()
		fn.push("%s = call i32 (ptr, ...) @printf(ptr @%s, ptr %s)", t, fmtName, base)
	}
	return true
}

// materializeArray allocates a fixed-length block sized to the element
// count, stores each element at its positional offset, and returns the base
// register. The length is fixed at lowering time.
func (lw *Lowerer) materializeArray(fn *Func, v Value) string {
	arrTy := lw.mod.llvmType(v)
	base := fn.nextTmp()
	fn.push("%s = alloca %s", base, arrTy)
	for i, elem := range v.Elems {
		slot := fn.nextTmp()
		fn.push("%s = getelementptr inbounds %s, ptr %s, i64 0, i64 %d", slot, arrTy, base, i)
		fn.push("store %s %s, ptr %s", lw.mod.llvmType(elem), lw.mod.llvmConst(elem), slot)
	}
	return base
}
