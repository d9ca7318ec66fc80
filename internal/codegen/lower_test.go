package codegen_test

import (
	"strings"
	"testing"

	"venti/internal/ast"
	"venti/internal/codegen"
	"venti/internal/diag"
	"venti/internal/lexer"
	"venti/internal/parser"
	"venti/internal/source"
)

func lowerSource(t *testing.T, input string) (*codegen.Module, *diag.Bag, bool) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.vt", []byte(input))
	file := fs.Get(fileID)

	bag := diag.NewBag(16)
	adapter := &lexer.ReporterAdapter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: adapter.Reporter()})
	builder := ast.NewBuilder(ast.Hints{}, nil)

	result := parser.ParseFile(fs, lx, builder, parser.Options{
		Reporter: &diag.BagReporter{Bag: bag},
	})
	if !result.Ok {
		t.Fatalf("parse of %q failed: %v", input, bag.Items())
	}

	mod, ok := codegen.Lower(builder, fs, result.File, codegen.Options{
		ModuleName: "test",
		Reporter:   &diag.BagReporter{Bag: bag},
	})
	return mod, bag, ok
}

func mustLower(t *testing.T, input string) *codegen.Module {
	t.Helper()
	mod, bag, ok := lowerSource(t, input)
	if !ok || bag.HasErrors() {
		t.Fatalf("lowering of %q failed: %v", input, bag.Items())
	}
	return mod
}

func expectLowerError(t *testing.T, input string, code diag.Code) {
	t.Helper()
	mod, bag, ok := lowerSource(t, input)
	if ok {
		t.Fatalf("lowering of %q succeeded, expected %s; IR:\n%s", input, code, mod.Emit())
	}
	items := bag.Items()
	if len(items) == 0 {
		t.Fatalf("lowering of %q failed without a diagnostic", input)
	}
	if items[0].Code != code {
		t.Errorf("lowering of %q: got %s, want %s", input, items[0].Code, code)
	}
}

func TestDeclareGlobal(t *testing.T) {
	mod := mustLower(t, `venti x = 42;`)
	v, ok := mod.Global("x")
	if !ok {
		t.Fatal("x not bound")
	}
	if v.Kind != codegen.ValInt || v.Int != 42 {
		t.Errorf("x = %s, want 42", v)
	}
	if !strings.Contains(mod.Emit(), "@x = global i64 42") {
		t.Errorf("IR missing global:\n%s", mod.Emit())
	}
}

func TestConstantFolding(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{`venti x = 1 + 2 * 3;`, 7},
		{`venti x = (1 + 2) * 3;`, 9},
		{`venti x = 10 - 2 - 3;`, 5},
		{`venti x = 7 / 2;`, 3},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			mod := mustLower(t, tt.input)
			v, _ := mod.Global("x")
			if v.Kind != codegen.ValInt || v.Int != tt.want {
				t.Errorf("x = %s, want %d", v, tt.want)
			}
		})
	}
}

func TestFloatFolding(t *testing.T) {
	mod := mustLower(t, `venti x = 1.5 + 2.25;`)
	v, _ := mod.Global("x")
	if v.Kind != codegen.ValFloat || v.Float != 3.75 {
		t.Errorf("x = %s, want 3.75", v)
	}
	// Floats emit in bit-exact hex so re-emission round-trips.
	if !strings.Contains(mod.Emit(), "@x = global double 0x") {
		t.Errorf("IR missing hex float:\n%s", mod.Emit())
	}
}

func TestIdentifierResolution(t *testing.T) {
	mod := mustLower(t, "venti x = 2;\nventi y = x * x;")
	v, _ := mod.Global("y")
	if v.Kind != codegen.ValInt || v.Int != 4 {
		t.Errorf("y = %s, want 4", v)
	}
}

func TestLastWriteWins(t *testing.T) {
	mod := mustLower(t, "venti x = 1;\nventi y = x;\nventi x = 2;")
	x, _ := mod.Global("x")
	if x.Int != 2 {
		t.Errorf("x = %s, want 2", x)
	}
	// y captured the value x had at its declaration.
	y, _ := mod.Global("y")
	if y.Int != 1 {
		t.Errorf("y = %s, want 1", y)
	}
	// One global per name, at its first declaration position.
	globals := mod.Globals()
	if len(globals) != 2 || globals[0].Name != "x" || globals[1].Name != "y" {
		t.Errorf("unexpected global layout: %+v", globals)
	}
}

func TestAssignment(t *testing.T) {
	mod := mustLower(t, "venti x = 1;\nx 2 + 3;")
	v, _ := mod.Global("x")
	if v.Int != 5 {
		t.Errorf("x = %s, want 5", v)
	}
}

func TestAssignmentContinuesFromBinding(t *testing.T) {
	// `x * 2;` folds with the identifier's current value as the left operand.
	mod := mustLower(t, "venti x = 3;\nx * 2;")
	v, _ := mod.Global("x")
	if v.Int != 6 {
		t.Errorf("x = %s, want 6", v)
	}
}

func TestAssignmentRequiresBinding(t *testing.T) {
	// Every no-'=' assignment form needs an existing binding, including the
	// bare self-assignment.
	tests := []string{
		`x 1;`,
		`x;`,
		`x "text";`,
	}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			expectLowerError(t, input, diag.GenUndefinedVariable)
		})
	}
}

func TestUndefinedVariableInExpr(t *testing.T) {
	expectLowerError(t, `venti x = y + 1;`, diag.GenUndefinedVariable)
}

func TestUseBeforeDeclare(t *testing.T) {
	// Bindings are visible only after their declaration in the single pass.
	expectLowerError(t, "venti x = y;\nventi y = 1;", diag.GenUndefinedVariable)
}

func TestTypeMismatch(t *testing.T) {
	expectLowerError(t, `venti x = 1 + 2.5;`, diag.GenTypeMismatch)
	expectLowerError(t, `venti x = true + false;`, diag.GenTypeMismatch)
	expectLowerError(t, `venti x = "a" + "b";`, diag.GenTypeMismatch)
}

func TestDivideByZero(t *testing.T) {
	expectLowerError(t, `venti x = 1 / 0;`, diag.GenDivideByZero)

	// Float division by zero folds to an infinity, not an error.
	mod := mustLower(t, `venti x = 1.0 / 0.0;`)
	v, _ := mod.Global("x")
	if v.Kind != codegen.ValFloat {
		t.Errorf("x = %s, want +Inf float", v)
	}
}

func TestPrintInt(t *testing.T) {
	ir := mustLower(t, `printventi 1 + 2;`).Emit()
	if !strings.Contains(ir, "declare i32 @printf(ptr, ...)") {
		t.Errorf("IR missing printf declaration:\n%s", ir)
	}
	if !strings.Contains(ir, "@printf(ptr @.str.0, i64 3)") {
		t.Errorf("IR missing folded print call:\n%s", ir)
	}
	if !strings.Contains(ir, `c"%ld\0A\00"`) {
		t.Errorf("IR missing int format string:\n%s", ir)
	}
}

func TestPrintString(t *testing.T) {
	ir := mustLower(t, `printventi "hi";`).Emit()
	if !strings.Contains(ir, `c"%s\0A\00"`) {
		t.Errorf("IR missing string format:\n%s", ir)
	}
	if !strings.Contains(ir, `c"hi\00"`) {
		t.Errorf("IR missing string constant:\n%s", ir)
	}
}

func TestStringConstantsDedup(t *testing.T) {
	ir := mustLower(t, "printventi \"a\";\nprintventi \"a\";").Emit()
	if strings.Count(ir, `c"a\00"`) != 1 {
		t.Errorf("string constant not interned once:\n%s", ir)
	}
	if strings.Count(ir, "@printf(ptr @.str.") != 2 {
		t.Errorf("expected two print calls:\n%s", ir)
	}
}

func TestAsyncFnAndCall(t *testing.T) {
	ir := mustLower(t, "async f { printventi 1; }\nf();").Emit()
	if !strings.Contains(ir, "define void @f() {") {
		t.Errorf("IR missing function definition:\n%s", ir)
	}
	if !strings.Contains(ir, "call void @f()") {
		t.Errorf("IR missing call from main:\n%s", ir)
	}
	// Functions precede main.
	if strings.Index(ir, "define void @f()") > strings.Index(ir, "define i32 @main()") {
		t.Errorf("function not emitted before main:\n%s", ir)
	}
}

func TestCallUndefinedFunction(t *testing.T) {
	expectLowerError(t, `f();`, diag.GenUndefinedFunction)
	// Declaration order matters: calling before the definition fails too.
	expectLowerError(t, "f();\nasync f { printventi 1; }", diag.GenUndefinedFunction)
}

func TestCallArity(t *testing.T) {
	expectLowerError(t, "async f { printventi 1; }\nf(1);", diag.GenBadArity)
}

func TestFnRedeclareReplacesBody(t *testing.T) {
	ir := mustLower(t, "async f { printventi 1; }\nasync f { printventi 2; }\nf();").Emit()
	if strings.Count(ir, "define void @f()") != 1 {
		t.Errorf("redeclared function emitted twice:\n%s", ir)
	}
}

func TestArrayGlobal(t *testing.T) {
	ir := mustLower(t, `venti a = [1, 2, 3];`).Emit()
	if !strings.Contains(ir, "@a = global [3 x i64] [i64 1, i64 2, i64 3]") {
		t.Errorf("IR missing array global:\n%s", ir)
	}
}

func TestArrayPrint(t *testing.T) {
	ir := mustLower(t, `printventi [1, 2];`).Emit()
	if !strings.Contains(ir, "alloca [2 x i64]") {
		t.Errorf("IR missing array materialization:\n%s", ir)
	}
	if !strings.Contains(ir, `c"%p\0A\00"`) {
		t.Errorf("IR missing pointer format:\n%s", ir)
	}
}

func TestArrayElementsMustMatch(t *testing.T) {
	expectLowerError(t, `venti a = [1, 2.5];`, diag.GenTypeMismatch)
}

func TestAwaitIsTransparent(t *testing.T) {
	mod := mustLower(t, "venti x = await 1 + 2;\nventi y = async 5;")
	x, _ := mod.Global("x")
	if x.Int != 3 {
		t.Errorf("x = %s, want 3", x)
	}
	y, _ := mod.Global("y")
	if y.Int != 5 {
		t.Errorf("y = %s, want 5", y)
	}
}

func TestEmitIdempotent(t *testing.T) {
	mod := mustLower(t, "venti x = 1;\nprintventi \"a\";\nasync f { printventi x; }\nf();")
	first := mod.Emit()
	second := mod.Emit()
	if first != second {
		t.Error("Emit is not idempotent")
	}
}

func TestEmitDeterministic(t *testing.T) {
	input := "venti s = \"str\";\nventi n = 3.5;\nprintventi s;\nasync f { printventi n; }\nf();"
	a := mustLower(t, input).Emit()
	b := mustLower(t, input).Emit()
	if a != b {
		t.Errorf("two lowerings of the same source differ:\n%s\n---\n%s", a, b)
	}
}

func TestEmptyProgram(t *testing.T) {
	ir := mustLower(t, "").Emit()
	if !strings.Contains(ir, "define i32 @main() {") {
		t.Errorf("IR missing main:\n%s", ir)
	}
	if !strings.Contains(ir, "ret i32 0") {
		t.Errorf("IR missing main return:\n%s", ir)
	}
	if strings.Contains(ir, "@.str.") {
		t.Errorf("empty program emitted string constants:\n%s", ir)
	}
}

func TestBoolPrint(t *testing.T) {
	ir := mustLower(t, `printventi true;`).Emit()
	if !strings.Contains(ir, "i1 true") {
		t.Errorf("IR missing bool argument:\n%s", ir)
	}
	if !strings.Contains(ir, `c"%d\0A\00"`) {
		t.Errorf("IR missing bool format:\n%s", ir)
	}
}

func TestStringGlobalReferencesConstant(t *testing.T) {
	ir := mustLower(t, `venti s = "text";`).Emit()
	if !strings.Contains(ir, "@s = global ptr @.str.0") {
		t.Errorf("IR missing string global:\n%s", ir)
	}
	if !strings.Contains(ir, `c"text\00"`) {
		t.Errorf("IR missing string constant:\n%s", ir)
	}
}
