package problem_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/roboptim/core-go/function"
	"github.com/roboptim/core-go/function/operator"
	"github.com/roboptim/core-go/matrix"
	"github.com/roboptim/core-go/problem"
)

// identityCost returns the scalar cost x ↦ x[0] over n inputs (row 0 of
// the n-dimensional identity), since problem.New requires m = 1.
func identityCost(n int) *operator.Split {
	return operator.NewSplit(function.NewIdentityFunction(n, "cost"), 0, "cost")
}

func linearConstraint(n int, name string) *function.NumericLinearFunction {
	a := matrix.NewDenseMatrix(1, n)
	for j := 0; j < n; j++ {
		a.Set(0, j, 1)
	}
	return function.NewNumericLinearFunction(a, []float64{0}, name)
}

func TestNewProblemDefaultsUnboundedAndUnitScaling(t *testing.T) {
	cost := function.NewNumericLinearFunction(matrix.NewDenseMatrix(1, 3), []float64{0}, "cost")
	p := problem.New(cost)
	require.Equal(t, 3, p.InputSize())
	for _, iv := range p.ArgumentBounds() {
		require.True(t, math.IsInf(iv.Lower, -1))
		require.True(t, math.IsInf(iv.Upper, 1))
	}
	for _, s := range p.ArgumentScaling() {
		require.Equal(t, 1.0, s)
	}
}

func TestNewProblemPanicsOnNonScalarCost(t *testing.T) {
	nonScalar := function.NewNumericLinearFunction(matrix.NewDenseMatrix(2, 3), []float64{0, 0}, "bad-cost")
	require.Panics(t, func() { problem.New(nonScalar) })
}

func TestAddConstraintChecksShapesAndFamily(t *testing.T) {
	cost := function.NewNumericLinearFunction(matrix.NewDenseMatrix(1, 2), []float64{0}, "cost")
	p := problem.New(cost)

	good := linearConstraint(2, "c1")
	require.NoError(t, p.AddConstraint(good, []problem.Interval{problem.NewInterval(-1, 1)}, []float64{1}))
	require.Len(t, p.Constraints(), 1)
	_, ok := p.Constraints()[0].(problem.LinearConstraint)
	require.True(t, ok)

	wrongInput := linearConstraint(3, "wrong-n")
	err := p.AddConstraint(wrongInput, []problem.Interval{problem.NewInterval(-1, 1)}, []float64{1})
	require.ErrorIs(t, err, problem.ErrInputSizeMismatch)

	wrongBoundsLen := linearConstraint(2, "wrong-bounds")
	err = p.AddConstraint(wrongBoundsLen, []problem.Interval{}, []float64{1})
	require.ErrorIs(t, err, problem.ErrBoundsSizeMismatch)

	badScale := linearConstraint(2, "bad-scale")
	err = p.AddConstraint(badScale, []problem.Interval{problem.NewInterval(-1, 1)}, []float64{0})
	require.ErrorIs(t, err, problem.ErrInvalidScaling)
}

func TestSetArgumentBoundValidatesOrderingAndIndex(t *testing.T) {
	p := problem.New(identityCost(2))
	require.NoError(t, p.SetArgumentBound(0, problem.NewInterval(-5, 5)))
	require.ErrorIs(t, p.SetArgumentBound(0, problem.Interval{Lower: 1, Upper: 0}), problem.ErrInvalidInterval)
	require.ErrorIs(t, p.SetArgumentBound(5, problem.NewInterval(0, 1)), problem.ErrIndexOutOfRange)
}

func TestStartingPointLengthInvariant(t *testing.T) {
	p := problem.New(identityCost(3))
	require.ErrorIs(t, p.SetStartingPoint([]float64{1, 2}), problem.ErrStartingPointSize)
	require.NoError(t, p.SetStartingPoint([]float64{1, 2, 3}))
	x, ok := p.StartingPoint()
	require.True(t, ok)
	require.Equal(t, []float64{1, 2, 3}, x)
}

func TestValidateReportsEveryViolationNotJustTheFirst(t *testing.T) {
	p := problem.New(identityCost(2))
	c := linearConstraint(2, "sum")
	require.NoError(t, p.AddConstraint(c, []problem.Interval{problem.NewInterval(0, 1)}, []float64{1}))

	require.NoError(t, p.Validate())

	require.NoError(t, p.SetArgumentScaling(0, 2))
	p.ArgumentScaling()[0] = 0 // force an invalid scale past the setter's own guard
	p.ArgumentScaling()[1] = math.NaN()

	err := p.Validate()
	require.Error(t, err)
	errs := multierr.Errors(err)
	require.Len(t, errs, 2)
	for _, e := range errs {
		require.ErrorIs(t, e, problem.ErrInvalidScaling)
	}
}

func TestStringAnnotatesUnsatisfiedConstraint(t *testing.T) {
	cost := identityCost(2)
	p := problem.New(cost)
	c := linearConstraint(2, "sum")
	require.NoError(t, p.AddConstraint(c, []problem.Interval{problem.NewInterval(10, 20)}, []float64{1}))
	require.NoError(t, p.SetStartingPoint([]float64{0, 0}))

	s := p.String()
	require.Contains(t, s, "Problem:")
	require.Contains(t, s, "Number of constraints: 1")
	require.Contains(t, s, "(not satisfied)")
}
