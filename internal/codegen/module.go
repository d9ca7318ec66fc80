package codegen

import (
	"fmt"
)

// Module is the lowering output: global bindings, functions, and interned
// string constants. It is built by exactly one Lower pass and is write-once;
// after Emit it is discarded.
type Module struct {
	Name       string
	SourcePath string

	globals     []*Global
	globalIndex map[string]int

	funcs     []*Func
	funcIndex map[string]int

	strings     []*stringConst
	stringIndex map[string]int

	// main accumulates lowered top-level print and call statements.
	main *Func
}

// Global is one module-level binding. Rebinding replaces Value in place
// (last-write-wins); the declaration order of first bindings is preserved
// for deterministic emission.
type Global struct {
	Name  string
	Value Value
}

// Func is one lowered function body: a flat instruction list and a counter
// for unique virtual register names.
type Func struct {
	Name   string
	Instrs []string
	tmp    int
}

type stringConst struct {
	name string // e.g. ".str.0"
	data []byte // without the trailing NUL
}

func NewModule(name, sourcePath string) *Module {
	m := &Module{
		Name:        name,
		SourcePath:  sourcePath,
		globalIndex: make(map[string]int),
		funcIndex:   make(map[string]int),
		stringIndex: make(map[string]int),
	}
	m.main = &Func{Name: "main"}
	return m
}

// SetGlobal installs or replaces the binding for name.
func (m *Module) SetGlobal(name string, v Value) {
	if i, ok := m.globalIndex[name]; ok {
		m.globals[i].Value = v
		return
	}
	m.globalIndex[name] = len(m.globals)
	m.globals = append(m.globals, &Global{Name: name, Value: v})
}

// Global returns the current binding for name.
func (m *Module) Global(name string) (Value, bool) {
	if i, ok := m.globalIndex[name]; ok {
		return m.globals[i].Value, true
	}
	return Value{}, false
}

// HasGlobal reports whether name is bound.
func (m *Module) HasGlobal(name string) bool {
	_, ok := m.globalIndex[name]
	return ok
}

// Globals returns the bindings in first-declaration order. READONLY.
func (m *Module) Globals() []*Global {
	return m.globals
}

// NewFunc registers a function and returns its body builder. Declaring a
// name again replaces the previous body, mirroring global rebinding.
func (m *Module) NewFunc(name string) *Func {
	if i, ok := m.funcIndex[name]; ok {
		f := &Func{Name: name}
		m.funcs[i] = f
		return f
	}
	f := &Func{Name: name}
	m.funcIndex[name] = len(m.funcs)
	m.funcs = append(m.funcs, f)
	return f
}

// Func returns the function declared under name, if any.
func (m *Module) Func(name string) (*Func, bool) {
	if i, ok := m.funcIndex[name]; ok {
		return m.funcs[i], true
	}
	return nil, false
}

// Funcs returns declared functions in declaration order. READONLY.
func (m *Module) Funcs() []*Func {
	return m.funcs
}

// Main returns the synthesized entry function.
func (m *Module) Main() *Func {
	return m.main
}

// InternString returns the module-level constant name for data, creating the
// constant on first use.
func (m *Module) InternString(data string) string {
	if i, ok := m.stringIndex[data]; ok {
		return m.strings[i].name
	}
	sc := &stringConst{
		name: fmt.Sprintf(".str.%d", len(m.strings)),
		data: []byte(data),
	}
	m.stringIndex[data] = len(m.strings)
	m.strings = append(m.strings, sc)
	return sc.name
}

// push appends a formatted instruction to the function body.
func (f *Func) push(format string, args ...any) {
	f.Instrs = append(f.Instrs, fmt.Sprintf(format, args...))
}

// nextTmp hands out a fresh virtual register name.
func (f *Func) nextTmp() string {
	name := fmt.Sprintf("%%t%d", f.tmp)
	f.tmp++
	return name
}
