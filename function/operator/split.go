package operator

import "github.com/roboptim/core-go/function"

// Split extracts a single output row f[i] as a scalar (m=1) function
// (spec.md §4.1 table, row "Split"). It is a thin Selection(f, i, 1).
type Split struct {
	*Selection
}

// NewSplit builds the scalar function x ↦ f(x)[row].
func NewSplit(f function.Function, row int, name string) *Split {
	return &Split{Selection: NewSelection(f, row, 1, name)}
}
