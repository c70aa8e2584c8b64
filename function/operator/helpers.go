package operator

import (
	"github.com/pkg/errors"

	"github.com/roboptim/core-go/function"
	"github.com/roboptim/core-go/matrix"
)

// newScratch allocates a throwaway output vector matching kind and
// size, used by combinators that must evaluate an operand in full to
// read back a subset of its rows.
func newScratch(kind matrix.Kind, size int) function.MutableVector {
	return matrix.NewVector(kind, size)
}

// requireCompatible panics if f and g disagree on shape or storage Kind.
// Combinator constructors call this so a mismatch fails fast at
// construction time rather than producing a function with inconsistent
// declared sizes.
func requireCompatible(f, g function.Function) {
	if f.InputSize() != g.InputSize() {
		panic("operator: input sizes differ")
	}
	if f.OutputSize() != g.OutputSize() {
		panic("operator: output sizes differ")
	}
	if f.Kind() != g.Kind() {
		panic("operator: storage trait mismatch: " + f.Kind().String() + " vs " + g.Kind().String())
	}
}

var errHessianUnsupported = errors.New("operator: operand is not twice-differentiable")

func errNotTwiceDifferentiable(f function.Function) error {
	return errors.Wrapf(errHessianUnsupported, "%s", f.Name())
}
