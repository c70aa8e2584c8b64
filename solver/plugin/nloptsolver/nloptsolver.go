// Package nloptsolver is a minimal concrete backend wired to
// github.com/go-nlopt/nlopt (the teacher's NLopt binding). It is
// explicitly not part of the core's specified surface (spec.md §1 lists
// concrete backends as out of scope) but gives the plugin loader's
// tests a real artifact to load instead of a stub, matching spec.md §8
// scenarios 6-7's "stub plugin".
package nloptsolver

import (
	"fmt"

	"github.com/go-nlopt/nlopt"
	"github.com/pkg/errors"

	"github.com/roboptim/core-go/function"
	"github.com/roboptim/core-go/matrix"
	"github.com/roboptim/core-go/problem"
	"github.com/roboptim/core-go/solver"
)

// FamilyID is the constraint-family identifier this backend reports;
// the plugin-loader round-trip compares it against the caller's exact
// string (spec.md §4.4 "identity is established by exact-string match
// on the constraint-family identifier").
const FamilyID = "roboptim.differentiable-or-linear/v1"

// Solver minimizes an unconstrained or bound-constrained differentiable
// cost function with NLopt's SLSQP algorithm. It supports neither
// general constraints nor an iteration callback; both are explicitly
// unsupported to keep this example backend small.
type Solver struct {
	problem    *problem.Problem
	parameters solver.Parameters
}

// New binds a Solver to p. p's cost must be at least differentiable.
func New(p *problem.Problem) (*Solver, error) {
	if !p.Cost().Tags().Has(function.TagDifferentiable) {
		return nil, errors.New("nloptsolver: cost function must be differentiable")
	}
	return &Solver{problem: p, parameters: make(solver.Parameters)}, nil
}

func (s *Solver) Problem() *problem.Problem     { return s.problem }
func (s *Solver) Parameters() solver.Parameters { return s.parameters }
func (s *Solver) PluginName() string            { return "nlopt-slsqp" }

// SetIterationCallback always fails: this backend does not support
// callbacks (spec.md §4.4, "a backend that doesn't must signal this by
// raising an error when a callback is attached").
func (s *Solver) SetIterationCallback(solver.IterationCallback) error {
	return solver.ErrCallbackUnsupported
}

// Solve runs NLopt's LD_SLSQP from the problem's starting point (or the
// origin if none is set), respecting argument bounds. The max-iterations
// parameter caps the number of objective evaluations (NLopt's maxeval).
func (s *Solver) Solve() (*solver.Result, error) {
	n := s.problem.InputSize()
	cost := function.MustDifferentiable(s.problem.Cost())

	opt, err := nlopt.NewNLopt(nlopt.LD_SLSQP, uint(n))
	if err != nil {
		return nil, &solver.SolverError{Message: fmt.Sprintf("nlopt: create optimizer: %v", err)}
	}
	defer opt.Destroy()

	lower := make([]float64, n)
	upper := make([]float64, n)
	for i, iv := range s.problem.ArgumentBounds() {
		lower[i], upper[i] = iv.Lower, iv.Upper
	}
	if err := opt.SetLowerBounds(lower); err != nil {
		return nil, &solver.SolverError{Message: fmt.Sprintf("nlopt: lower bounds: %v", err)}
	}
	if err := opt.SetUpperBounds(upper); err != nil {
		return nil, &solver.SolverError{Message: fmt.Sprintf("nlopt: upper bounds: %v", err)}
	}

	if err := opt.SetMinObjective(func(x, gradient []float64) float64 {
		arg := matrix.NewDenseVectorFromSlice(x)
		val := matrix.NewDenseVector(1)
		_ = cost.Eval(val, arg)
		if len(gradient) > 0 {
			grad := matrix.NewDenseVector(n)
			if err := cost.Gradient(grad, arg, 0); err == nil {
				copy(gradient, grad.Slice())
			}
		}
		return val.At(0)
	}); err != nil {
		return nil, &solver.SolverError{Message: fmt.Sprintf("nlopt: set objective: %v", err)}
	}

	maxIter := solver.MaxIterations(s.parameters, 200)
	_ = opt.SetMaxEval(maxIter)
	_ = opt.SetXtolRel(1e-8)

	x0 := make([]float64, n)
	if start, ok := s.problem.StartingPoint(); ok {
		copy(x0, start)
	}

	xOpt, minf, err := opt.Optimize(x0)
	if err != nil {
		return nil, &solver.SolverError{
			Message:   fmt.Sprintf("nlopt: optimize: %v", err),
			LastState: resultFrom(xOpt, minf, n, len(s.problem.Constraints())),
		}
	}

	return resultFrom(xOpt, minf, n, len(s.problem.Constraints())), nil
}

func resultFrom(x []float64, value float64, n, numConstraints int) *solver.Result {
	r := solver.NewResult(n, numConstraints)
	copy(r.X, x)
	r.Value = value
	return r
}
