package finitediff

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/roboptim/core-go/function"
	"github.com/roboptim/core-go/matrix"
)

// GradientMismatch is the diagnostic error object for a failed gradient
// check (spec.md §4.2, "Derivative checking"): it carries the argument,
// both gradients, the worst component, its delta, the threshold, and
// (as a convenience beyond spec.md) the mean absolute delta across all
// components.
type GradientMismatch struct {
	X, Analytical, Numerical []float64
	Component                int
	Delta, MeanDelta         float64
	Threshold                float64
}

func (e *GradientMismatch) Error() string {
	return fmt.Sprintf("finitediff: bad gradient at x=%v: component %d differs by %g (threshold %g)",
		e.X, e.Component, e.Delta, e.Threshold)
}

// BadJacobian is the diagnostic error object for a failed Jacobian
// check, reporting the worst (row, col) entry.
type BadJacobian struct {
	X                            []float64
	Analytical, FiniteDifference matrix.Matrix
	Row, Col                     int
	Delta, Threshold             float64
}

func (e *BadJacobian) Error() string {
	return fmt.Sprintf("finitediff: bad jacobian at x=%v: entry (%d,%d) differs by %g (threshold %g)",
		e.X, e.Row, e.Col, e.Delta, e.Threshold)
}

// CheckGradient reports whether f's analytical gradient of output row
// agrees with its five-point finite-difference approximation to within
// threshold, componentwise (spec.md §4.2, "boolean predicate" mode).
func CheckGradient(f function.Differentiable, row int, x function.Vector, threshold float64) bool {
	analytical, numerical, err := computeGradients(f, row, x)
	if err != nil {
		return false
	}
	for i := range analytical {
		if !floats.EqualWithinAbs(analytical[i], numerical[i], threshold) {
			return false
		}
	}
	return true
}

// CheckGradientAndThrow is CheckGradient's "exception-like error
// object" mode: it returns nil on success and a *GradientMismatch
// (usable directly as a test assertion failure) otherwise.
func CheckGradientAndThrow(f function.Differentiable, row int, x function.Vector, threshold float64) error {
	analytical, numerical, err := computeGradients(f, row, x)
	if err != nil {
		return err
	}
	deltas := make([]float64, len(analytical))
	for i := range analytical {
		deltas[i] = math.Abs(analytical[i] - numerical[i])
	}
	component := floats.MaxIdx(deltas)
	maxDelta := deltas[component]
	if maxDelta <= threshold {
		return nil
	}
	return &GradientMismatch{
		X: x.Slice(), Analytical: analytical, Numerical: numerical,
		Component: component, Delta: maxDelta, MeanDelta: stat.Mean(deltas, nil),
		Threshold: threshold,
	}
}

func computeGradients(f function.Differentiable, row int, x function.Vector) (analytical, numerical []float64, err error) {
	n := f.InputSize()
	a := matrix.NewDenseVector(n)
	if err = f.Gradient(a, x, row); err != nil {
		return nil, nil, err
	}
	num := matrix.NewDenseVector(n)
	fd := New(f, FivePoint{}, DefaultEpsilon)
	if err = fd.Gradient(num, x, row); err != nil {
		return nil, nil, err
	}
	return a.Slice(), num.Slice(), nil
}

// CheckJacobian reports whether f's analytical Jacobian agrees with its
// finite-difference approximation to within threshold (spec.md §4.2,
// spec.md §8 testable scenarios 3-4).
func CheckJacobian(f function.Differentiable, x function.Vector, threshold float64) bool {
	_, err := checkJacobianDetail(f, x, threshold)
	return err == nil
}

// CheckJacobianAndThrow mirrors CheckGradientAndThrow for the full
// Jacobian.
func CheckJacobianAndThrow(f function.Differentiable, x function.Vector, threshold float64) error {
	_, err := checkJacobianDetail(f, x, threshold)
	return err
}

func checkJacobianDetail(f function.Differentiable, x function.Vector, threshold float64) (*BadJacobian, error) {
	m, n := f.OutputSize(), f.InputSize()
	analytical := matrix.NewBuilder(f.Kind(), m, n)
	if err := f.Jacobian(analytical, x); err != nil {
		return nil, err
	}
	numerical := matrix.NewBuilder(f.Kind(), m, n)
	fd := New(f, FivePoint{}, DefaultEpsilon)
	if err := fd.Jacobian(numerical, x); err != nil {
		return nil, err
	}
	am, nm := analytical.Build(), numerical.Build()

	maxDelta := -math.MaxFloat64
	maxRow, maxCol := 0, 0
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			delta := math.Abs(am.At(i, j) - nm.At(i, j))
			if delta > maxDelta {
				maxDelta, maxRow, maxCol = delta, i, j
			}
		}
	}
	if maxDelta <= threshold {
		return nil, nil
	}
	bad := &BadJacobian{
		X: x.Slice(), Analytical: am, FiniteDifference: nm,
		Row: maxRow, Col: maxCol, Delta: maxDelta, Threshold: threshold,
	}
	return bad, bad
}
