package solver

import (
	"fmt"
	"strings"
)

// Result is a solve's final output (spec.md §3 "Result"): the argument,
// the cost value, the constraint value vector, the lagrange-multiplier
// vector, and optional warnings. |X| = n; |Lambda| = n (argument
// bounds) + total constraint output size + 1 (cost row).
type Result struct {
	X          []float64
	Value      float64
	Constraint []float64
	Lambda     []float64
	Warnings   []string
}

// NewResult allocates a Result sized for an n-dimensional argument and
// totalConstraintOutputSize constraint rows; Lambda is sized
// n + totalConstraintOutputSize + 1 per spec.md §3.
func NewResult(n, totalConstraintOutputSize int) *Result {
	return &Result{
		X:      make([]float64, n),
		Lambda: make([]float64, n+totalConstraintOutputSize+1),
	}
}

// String renders the Result textual form of spec.md §6: header
// "Result", x, value, optional constraint vector, optional λ, and a
// warnings block when present.
func (r *Result) String() string {
	var b strings.Builder
	b.WriteString("Result\n")
	fmt.Fprintf(&b, "  X: %v\n", r.X)
	fmt.Fprintf(&b, "  Value: %g\n", r.Value)
	if r.Constraint != nil {
		fmt.Fprintf(&b, "  Constraint: %v\n", r.Constraint)
	}
	if r.Lambda != nil {
		fmt.Fprintf(&b, "  Lambda: %v\n", r.Lambda)
	}
	if len(r.Warnings) > 0 {
		b.WriteString("  Warnings:\n")
		for _, w := range r.Warnings {
			fmt.Fprintf(&b, "    - %s\n", w)
		}
	}
	return b.String()
}

// SolverError is the error variant of a solve's terminal state (spec.md
// §4.4 "error (SolverError optionally carrying a last-known Result)").
// It is always a value return from Solve, never a panic, per spec.md
// §7's "never an exception unless the solver contract so specifies".
type SolverError struct {
	Message   string
	LastState *Result
}

func (e *SolverError) Error() string {
	if e.LastState != nil {
		return fmt.Sprintf("solver: %s (last known x=%v, value=%g)", e.Message, e.LastState.X, e.LastState.Value)
	}
	return "solver: " + e.Message
}
