// Package ast holds the arena-allocated syntax tree for venti programs.
//
// Nodes are referenced by 1-based IDs into per-kind arenas; ID 0 is the
// invalid ID everywhere. The tree is strict: children are owned by their
// parent and nothing points back up, so a whole parse can be dropped by
// dropping its Builder.
package ast
