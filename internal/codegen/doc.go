// Package codegen lowers a parsed file to textual IR.
//
// Lowering is a single pass over the statement list. Every expression folds
// to a constant against the bindings seen so far; declarations and
// assignments update a last-write-wins global table, prints and calls append
// instructions to the enclosing function body, and async declarations open a
// new zero-argument function. Emit then serializes the finished Module in a
// fixed layout, so identical input always produces identical IR text.
package codegen
