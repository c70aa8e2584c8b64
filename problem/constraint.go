package problem

import "github.com/roboptim/core-go/function"

// Constraint is the tagged union over the declared constraint family
// {LinearFunction, DifferentiableFunction} (spec.md §3 "a vector of
// constraints typed as a tagged union over a statically declared
// constraint family"). The two concrete alternatives below are the only
// implementers. The walks in this module (the problem's textual form
// and fingerprint, the analyzer, the solver callback) go through
// Function() uniformly; none of them dispatches with a type switch.
type Constraint interface {
	// Function returns the underlying differentiable function, usable
	// uniformly regardless of which alternative holds it.
	Function() function.Differentiable

	constraintMarker()
}

// LinearConstraint is the constraint-family alternative holding a
// function tagged TagLinear (or a super-set).
type LinearConstraint struct {
	F function.Linear
}

func (c LinearConstraint) Function() function.Differentiable { return c.F }
func (LinearConstraint) constraintMarker()                   {}

// DifferentiableConstraint is the constraint-family alternative holding
// any other function tagged at least TagDifferentiable.
type DifferentiableConstraint struct {
	F function.Differentiable
}

func (c DifferentiableConstraint) Function() function.Differentiable { return c.F }
func (DifferentiableConstraint) constraintMarker()                   {}

// wrapConstraint classifies fn into the constraint family: a function
// tagged TagLinear becomes a LinearConstraint, otherwise (if it is at
// least TagDifferentiable) a DifferentiableConstraint. ok is false if fn
// matches neither alternative (spec.md §4.3, "type-compatibility check
// against the declared constraint family").
func wrapConstraint(fn function.Differentiable) (Constraint, bool) {
	if lin, isLinear := function.AsLinear(fn); isLinear {
		return LinearConstraint{F: lin}, true
	}
	if fn.Tags().Has(function.TagDifferentiable) {
		return DifferentiableConstraint{F: fn}, true
	}
	return nil, false
}
