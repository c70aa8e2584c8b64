package finitediff

import (
	"github.com/roboptim/core-go/function"
	"github.com/roboptim/core-go/matrix"
)

// Forward is the one-evaluation-per-dimension forward-difference rule
// (spec.md §4.2, "forward-difference (one evaluation per input
// dimension, O(h) error)"), the Go analogue of the original's `Simple`
// policy.
type Forward struct{}

func (Forward) Gradient(f function.Function, epsilon float64, dst function.MutableVector, x function.Vector, row int) error {
	n := f.InputSize()
	base := matrix.NewVector(f.Kind(), f.OutputSize())
	if err := f.Eval(base, x); err != nil {
		return err
	}
	baseVal := base.At(row)

	out := matrix.NewVector(f.Kind(), f.OutputSize())
	for j := 0; j < n; j++ {
		xEps := matrix.NewDenseVectorFromSlice(perturbed(x, j, x.At(j)+epsilon))
		if err := f.Eval(out, xEps); err != nil {
			return err
		}
		dst.Set(j, (out.At(row)-baseVal)/epsilon)
	}
	return nil
}
