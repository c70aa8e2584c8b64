// Package analyzer implements the purely diagnostic result analyzer of
// spec.md §4.5: LICQ, KKT and null-gradient checks over a converged
// solver.Result and its originating problem.Problem. Nothing here
// mutates the Result.
package analyzer

import (
	"github.com/roboptim/core-go/function"
	"github.com/roboptim/core-go/matrix"
	"github.com/roboptim/core-go/problem"
	"github.com/roboptim/core-go/solver"
)

// defaultEpsilon mirrors the original's ResultAnalyzer default
// constructor epsilon (1e-12), used for zero/activity checking.
const defaultEpsilon = 1e-12

// activeRow identifies one row of the active-constraint Jacobian: every
// saturated argument bound contributes an identity row, and every
// active constraint row contributes that constraint's gradient row.
type activeRow struct {
	isBound       bool
	argumentIndex int // valid when isBound

	constraintIndex int // index into problem.Constraints(), valid when !isBound
	row             int // row within that constraint, valid when !isBound

	lambdaIndex int // index into result.Lambda
}

// Analyzer computes diagnostics for res, a converged result of solving
// pb, without mutating res.
type Analyzer struct {
	problem *problem.Problem
	result  *solver.Result
	eps     float64
}

// New constructs an Analyzer with the given zero-checking epsilon. A
// non-positive eps falls back to defaultEpsilon.
func New(pb *problem.Problem, res *solver.Result, eps float64) *Analyzer {
	if eps <= 0 {
		eps = defaultEpsilon
	}
	return &Analyzer{problem: pb, result: res, eps: eps}
}

// constraintLambdaOffset returns the index into result.Lambda at which
// constraint i's row 0 multiplier begins (argument-bound multipliers
// occupy Lambda[0:n], per spec.md §3).
func (a *Analyzer) constraintLambdaOffset(i int) int {
	offset := a.problem.InputSize()
	for k := 0; k < i; k++ {
		offset += a.problem.Constraints()[k].Function().OutputSize()
	}
	return offset
}

// activeRows finds every saturated argument bound and every active
// constraint row (value within eps of an interval endpoint, or a
// non-zero reported multiplier), per spec.md §4.5 "LICQ".
func (a *Analyzer) activeRows() []activeRow {
	var rows []activeRow
	n := a.problem.InputSize()

	for i := 0; i < n; i++ {
		if i >= len(a.result.X) {
			break
		}
		x := a.result.X[i]
		b := a.problem.ArgumentBounds()[i]
		saturated := closeTo(x, b.Lower, a.eps) || closeTo(x, b.Upper, a.eps)
		if saturated {
			rows = append(rows, activeRow{isBound: true, argumentIndex: i, lambdaIndex: i})
		}
	}

	arg := matrix.NewDenseVectorFromSlice(a.result.X)
	for ci, c := range a.problem.Constraints() {
		fn := c.Function()
		bounds := a.problem.ConstraintBounds(ci)
		val := matrix.NewVector(fn.Kind(), fn.OutputSize())
		if err := fn.Eval(val, arg); err != nil {
			continue
		}
		offset := a.constraintLambdaOffset(ci)
		for j := 0; j < fn.OutputSize(); j++ {
			v := val.At(j)
			atBound := closeTo(v, bounds[j].Lower, a.eps) || closeTo(v, bounds[j].Upper, a.eps)
			lambdaIdx := offset + j
			nonZeroDual := lambdaIdx < len(a.result.Lambda) && a.result.Lambda[lambdaIdx] != 0
			if atBound || nonZeroDual {
				rows = append(rows, activeRow{
					isBound: false, constraintIndex: ci, row: j, lambdaIndex: lambdaIdx,
				})
			}
		}
	}
	return rows
}

// activeJacobian assembles the dense active-constraint Jacobian: one
// row per entry of rows, InputSize() columns.
func (a *Analyzer) activeJacobian(rows []activeRow) [][]float64 {
	n := a.problem.InputSize()
	out := make([][]float64, len(rows))
	arg := matrix.NewDenseVectorFromSlice(a.result.X)

	for i, r := range rows {
		out[i] = make([]float64, n)
		if r.isBound {
			out[i][r.argumentIndex] = 1
			continue
		}
		fn := function.MustDifferentiable(a.problem.Constraints()[r.constraintIndex].Function())
		grad := matrix.NewDenseVector(n)
		if err := fn.Gradient(grad, arg, r.row); err == nil {
			copy(out[i], grad.Slice())
		}
	}
	return out
}

func closeTo(v, bound, eps float64) bool {
	if isInf(bound) {
		return false
	}
	d := v - bound
	if d < 0 {
		d = -d
	}
	return d <= eps
}

func isInf(v float64) bool {
	return v > 1e300 || v < -1e300
}
