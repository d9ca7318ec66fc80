package codegen

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ValueKind classifies a constant-folded value.
type ValueKind uint8

const (
	ValInt ValueKind = iota
	ValFloat
	ValBool
	ValString
	ValArray
)

func (k ValueKind) String() string {
	switch k {
	case ValInt:
		return "int"
	case ValFloat:
		return "float"
	case ValBool:
		return "bool"
	case ValString:
		return "string"
	case ValArray:
		return "array"
	}
	return "unknown"
}

// Value is a fully resolved constant. Every venti expression either folds to
// one of these at lowering time or the lowering fails; there is no deferred
// computation.
type Value struct {
	Kind  ValueKind
	Int   int64
	Float float64
	Bool  bool
	Str   string
	Elems []Value
}

func IntValue(v int64) Value     { return Value{Kind: ValInt, Int: v} }
func FloatValue(v float64) Value { return Value{Kind: ValFloat, Float: v} }
func BoolValue(v bool) Value     { return Value{Kind: ValBool, Bool: v} }
func StringValue(v string) Value { return Value{Kind: ValString, Str: v} }
func ArrayValue(elems []Value) Value {
	return Value{Kind: ValArray, Elems: elems}
}

// IsNumeric reports whether the value participates in arithmetic.
func (v Value) IsNumeric() bool {
	return v.Kind == ValInt || v.Kind == ValFloat
}

// scalarType returns the LLVM type of a scalar value.
func (v Value) scalarType() string {
	switch v.Kind {
	case ValInt:
		return "i64"
	case ValFloat:
		return "double"
	case ValBool:
		return "i1"
	case ValString:
		return "ptr"
	}
	return "ptr"
}

// scalarConst renders a scalar value as an LLVM constant. Floats use the
// bit-exact hex form so emission round-trips.
func (v Value) scalarConst() string {
	switch v.Kind {
	case ValInt:
		return strconv.FormatInt(v.Int, 10)
	case ValFloat:
		return fmt.Sprintf("0x%016X", math.Float64bits(v.Float))
	case ValBool:
		if v.Bool {
			return "true"
		}
		return "false"
	}
	return "null"
}

func (v Value) String() string {
	switch v.Kind {
	case ValInt:
		return strconv.FormatInt(v.Int, 10)
	case ValFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case ValBool:
		return strconv.FormatBool(v.Bool)
	case ValString:
		return strconv.Quote(v.Str)
	case ValArray:
		parts := make([]string, 0, len(v.Elems))
		for _, e := range v.Elems {
			parts = append(parts, e.String())
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	return "<invalid>"
}
