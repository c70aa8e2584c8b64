// Package finitediff implements the function algebra's finite-difference
// derivative policies (spec.md §4.2): forward-difference and the GSL
// adaptive five-point rule, a column-wise Jacobian assembly on top of
// either, and the derivative checker used to validate an analytical
// gradient/Jacobian against its numerical approximation.
package finitediff

import "github.com/roboptim/core-go/function"

// DefaultEpsilon is the step size used when a caller doesn't override
// it: the square root of float64 machine epsilon, the standard choice
// balancing truncation and rounding error for a first derivative.
const DefaultEpsilon = 1.4901161193847656e-08

// Rule approximates the gradient of output row `row` of f at x by
// evaluating f at perturbed arguments, writing the result into dst
// (length f.InputSize()). Concrete rules never touch x or dst outside
// of what they write.
type Rule interface {
	Gradient(f function.Function, epsilon float64, dst function.MutableVector, x function.Vector, row int) error
}

// perturbed returns a copy of x with component j replaced by v.
func perturbed(x function.Vector, j int, v float64) []float64 {
	out := x.Slice()
	out[j] = v
	return out
}
