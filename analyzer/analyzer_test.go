package analyzer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roboptim/core-go/analyzer"
	"github.com/roboptim/core-go/function"
	"github.com/roboptim/core-go/matrix"
	"github.com/roboptim/core-go/problem"
	"github.com/roboptim/core-go/solver"
)

// boundedQuadratic builds f(x,y) = (x-3)^2 + (y-7)^2, whose unconstrained
// minimum is (3,7); bounding x <= 1 pins the constrained minimum to
// x=1, the LICQ/KKT scenario this test exercises.
func boundedQuadratic(t *testing.T) (*problem.Problem, *function.NumericQuadraticFunction) {
	t.Helper()
	a := matrix.NewDenseMatrix(2, 2)
	a.Set(0, 0, 2)
	a.Set(1, 1, 2)
	cost := function.NewNumericQuadraticFunction(a, []float64{-6, -14}, 0, "cost")
	p := problem.New(cost)
	require.NoError(t, p.SetArgumentBound(0, problem.NewInterval(-10, 1)))
	return p, cost
}

func TestLICQAtUnconstrainedMinimumHasNoActiveRows(t *testing.T) {
	p, _ := boundedQuadratic(t)
	res := solver.NewResult(2, 0)
	res.X = []float64{3, 7} // x=3 is not within eps of either end of [-10,1], so the bound is not active
	an := analyzer.New(p, res, 1e-9)
	licq := an.CheckLICQ()
	require.Equal(t, 0, licq.MaxRank)
	require.True(t, licq.Valid())
}

func TestLICQAtActiveBoundHasRankOne(t *testing.T) {
	p, _ := boundedQuadratic(t)
	res := solver.NewResult(2, 0)
	res.X = []float64{1, 7} // x is pinned at its upper bound
	res.Lambda = make([]float64, 3)
	res.Lambda[0] = 4 // dL/dx = 2*(1-3) + lambda = -4 + lambda = 0 => lambda = 4
	an := analyzer.New(p, res, 1e-9)

	licq := an.CheckLICQ()
	require.Equal(t, 1, licq.MaxRank)
	require.Equal(t, 1, licq.Rank)
	require.True(t, licq.Valid())
}

func TestKKTSatisfiedAtBoundOptimum(t *testing.T) {
	p, _ := boundedQuadratic(t)
	res := solver.NewResult(2, 0)
	res.X = []float64{1, 7}
	res.Lambda = make([]float64, 3)
	res.Lambda[0] = 4
	an := analyzer.New(p, res, 1e-6)

	kkt := an.CheckKKT()
	require.Less(t, kkt.GradNorm, 1e-9)
	require.True(t, kkt.DualFeasible)
	require.True(t, kkt.Valid())
}

func TestKKTFlagsWrongSignedDual(t *testing.T) {
	p, _ := boundedQuadratic(t)
	res := solver.NewResult(2, 0)
	res.X = []float64{1, 7}
	res.Lambda = make([]float64, 3)
	res.Lambda[0] = -4 // wrong sign for an active upper bound
	an := analyzer.New(p, res, 1e-6)

	kkt := an.CheckKKT()
	require.False(t, kkt.DualFeasible)
}

func TestNullGradientSkipsBoundRows(t *testing.T) {
	p, _ := boundedQuadratic(t)
	res := solver.NewResult(2, 0)
	res.X = []float64{1, 7}
	res.Lambda = make([]float64, 3)
	res.Lambda[0] = 4
	an := analyzer.New(p, res, 1e-6)
	ng := an.CheckNullGradient()
	require.Empty(t, ng.Rows)
}
