// Package operator implements the function algebra's combinators
// (spec.md §4.1 "Combinators" table): Sum, Product, Scalar, Concatenate,
// Selection, Split, Bind and Chain. Each combinator is itself a
// function.Function whose declared regularity is the auto-promoted
// minimum regularity of its operands (function.Promote) and whose
// storage Kind must agree across operands (each constructor compares the
// Kinds and panics on a mismatch) — a combinator never silently narrows
// a sparse operand to dense.
package operator
