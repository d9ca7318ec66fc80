package codegen

import (
	"fmt"
	"strings"
)

// Emit serializes the module to textual IR. The layout is fixed: header,
// the printf declaration, string constants, globals, declared functions in
// declaration order, and the synthesized main last. Emitting the same module
// twice yields byte-identical output.
func (m *Module) Emit() string {
	var b strings.Builder

	// Globals render first because a string-valued global interns its
	// constant on render, and the string table must be complete before it
	// is printed.
	globalLines := make([]string, 0, len(m.globals))
	for _, g := range m.globals {
		globalLines = append(globalLines,
			fmt.Sprintf("@%s = global %s %s", g.Name, m.llvmType(g.Value), m.llvmConst(g.Value)))
	}

	fmt.Fprintf(&b, "; ModuleID = '%s'\n", m.Name)
	if m.SourcePath != "" {
		fmt.Fprintf(&b, "source_filename = %q\n", m.SourcePath)
	}
	b.WriteString("\n")
	b.WriteString("declare i32 @printf(ptr, ...)\n")

	if len(m.strings) > 0 {
		b.WriteString("\n")
		for _, sc := range m.strings {
			fmt.Fprintf(&b, "@%s = private unnamed_addr constant [%d x i8] c\"%s\"\n",
				sc.name, len(sc.data)+1, escapeIRString(sc.data))
		}
	}

	if len(globalLines) > 0 {
		b.WriteString("\n")
		for _, line := range globalLines {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	for _, f := range m.funcs {
		b.WriteString("\n")
		writeFunc(&b, f, "void", "ret void")
	}

	b.WriteString("\n")
	writeFunc(&b, m.main, "i32", "ret i32 0")

	return b.String()
}

func writeFunc(b *strings.Builder, f *Func, retTy, ret string) {
	fmt.Fprintf(b, "define %s @%s() {\n", retTy, f.Name)
	b.WriteString("entry:\n")
	for _, instr := range f.Instrs {
		b.WriteString("  ")
		b.WriteString(instr)
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(ret)
	b.WriteString("\n}\n")
}

// escapeIRString renders constant bytes in IR string syntax, appending the
// NUL terminator. Printable ASCII passes through; everything else, plus the
// quote and backslash, becomes \XX.
func escapeIRString(data []byte) string {
	var b strings.Builder
	b.Grow(len(data) + 3)
	for _, c := range data {
		if c >= 0x20 && c < 0x7F && c != '"' && c != '\\' {
			b.WriteByte(c)
			continue
		}
		fmt.Fprintf(&b, "\\%02X", c)
	}
	b.WriteString("\\00")
	return b.String()
}
