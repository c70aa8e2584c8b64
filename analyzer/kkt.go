package analyzer

import (
	"math"

	"github.com/roboptim/core-go/function"
	"github.com/roboptim/core-go/matrix"
)

// KKTResult reports the first-order optimality diagnostic of spec.md
// §4.5: the Lagrangian gradient, its norm, the constraint violation,
// the complementary-slackness residual, and dual sign consistency.
type KKTResult struct {
	GradLagrangian     []float64
	GradNorm           float64
	Violation          float64
	Complementarity    float64
	DualFeasible       bool
	Eps                float64
}

// Valid reports whether KKT is satisfied: Lagrangian gradient norm,
// violation, and complementarity are all below Eps, and duals have the
// expected sign.
func (r KKTResult) Valid() bool {
	return r.GradNorm < r.Eps && r.Violation < r.Eps && r.Complementarity < r.Eps && r.DualFeasible
}

// CheckKKT computes the KKT diagnostic: ∇f(x*) + Σ λᵢ∇gᵢ(x*) + λ_bounds,
// its norm, total constraint violation, complementary-slackness
// residual, and dual-sign consistency.
func (a *Analyzer) CheckKKT() KKTResult {
	n := a.problem.InputSize()
	gradL := make([]float64, n)

	cost := function.MustDifferentiable(a.problem.Cost())
	arg := matrix.NewDenseVectorFromSlice(a.result.X)
	costGrad := matrix.NewDenseVector(n)
	if err := cost.Gradient(costGrad, arg, 0); err == nil {
		copy(gradL, costGrad.Slice())
	}

	for i := 0; i < n && i < len(a.result.Lambda); i++ {
		gradL[i] += a.result.Lambda[i]
	}

	violation := 0.0
	for i := 0; i < n && i < len(a.result.X); i++ {
		b := a.problem.ArgumentBounds()[i]
		violation += outOfBounds(a.result.X[i], b.Lower, b.Upper)
	}

	complementarity := 0.0
	for ci, c := range a.problem.Constraints() {
		fn := function.MustDifferentiable(c.Function())
		bounds := a.problem.ConstraintBounds(ci)
		val := matrix.NewVector(fn.Kind(), fn.OutputSize())
		if err := fn.Eval(val, arg); err != nil {
			continue
		}
		offset := a.constraintLambdaOffset(ci)
		for j := 0; j < fn.OutputSize(); j++ {
			v := val.At(j)
			violation += outOfBounds(v, bounds[j].Lower, bounds[j].Upper)

			lambdaIdx := offset + j
			if lambdaIdx >= len(a.result.Lambda) {
				continue
			}
			lambda := a.result.Lambda[lambdaIdx]
			if lambda == 0 {
				continue
			}
			closest := closestBound(v, bounds[j].Lower, bounds[j].Upper)
			complementarity += math.Abs(lambda * (v - closest))

			grad := matrix.NewDenseVector(n)
			if err := fn.Gradient(grad, arg, j); err == nil {
				for k := 0; k < n; k++ {
					gradL[k] += lambda * grad.At(k)
				}
			}
		}
	}

	return KKTResult{
		GradLagrangian:  gradL,
		GradNorm:        norm2(gradL),
		Violation:        violation,
		Complementarity: complementarity,
		DualFeasible:    a.dualFeasible(),
		Eps:             a.eps,
	}
}

// dualFeasible checks, for every active row, that the reported
// multiplier has the sign expected of the saturated side (upper-bound
// activity expects a non-negative multiplier, lower-bound a non-
// positive one, the standard inequality-constraint convention).
func (a *Analyzer) dualFeasible() bool {
	for _, r := range a.activeRows() {
		if r.lambdaIndex >= len(a.result.Lambda) {
			continue
		}
		lambda := a.result.Lambda[r.lambdaIndex]
		var v, lower, upper float64
		if r.isBound {
			if r.argumentIndex >= len(a.result.X) {
				continue
			}
			v = a.result.X[r.argumentIndex]
			b := a.problem.ArgumentBounds()[r.argumentIndex]
			lower, upper = b.Lower, b.Upper
		} else {
			fn := a.problem.Constraints()[r.constraintIndex].Function()
			arg := matrix.NewDenseVectorFromSlice(a.result.X)
			val := matrix.NewVector(fn.Kind(), fn.OutputSize())
			if err := fn.Eval(val, arg); err != nil {
				continue
			}
			v = val.At(r.row)
			b := a.problem.ConstraintBounds(r.constraintIndex)[r.row]
			lower, upper = b.Lower, b.Upper
		}
		if closeTo(v, upper, a.eps) && lambda < -a.eps {
			return false
		}
		if closeTo(v, lower, a.eps) && lambda > a.eps {
			return false
		}
	}
	return true
}

func outOfBounds(v, lower, upper float64) float64 {
	if v < lower {
		return lower - v
	}
	if v > upper {
		return v - upper
	}
	return 0
}

func closestBound(v, lower, upper float64) float64 {
	if isInf(lower) {
		return upper
	}
	if isInf(upper) {
		return lower
	}
	if math.Abs(v-lower) < math.Abs(v-upper) {
		return lower
	}
	return upper
}

func norm2(v []float64) float64 {
	sum := 0.0
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}
