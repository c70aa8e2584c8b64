package solver

import (
	"github.com/pkg/errors"

	"github.com/roboptim/core-go/problem"
)

// ErrCallbackUnsupported is returned by SetIterationCallback when a
// backend does not support iteration callbacks at all (spec.md §4.4
// "a backend that doesn't must signal this by raising an error when a
// callback is attached").
var ErrCallbackUnsupported = errors.New("solver: iteration callback not supported by this backend")

// IterationCallback observes one iteration of an in-progress solve. A
// backend invokes it synchronously, in iteration order, passing the
// problem being solved and the solver's mutable per-iteration state
// (spec.md §4.4 "Iteration callback").
type IterationCallback func(p *problem.Problem, state *SolverState) error

// Solver is the base contract of spec.md §4.4 "Solver base":
// parameterized by storage trait and constraint family (both carried in
// the concrete backend's problem type, not in this interface), it holds
// the problem, a typed parameter map, and a plugin-name label. Solve is
// the single abstract operation.
type Solver interface {
	// Problem returns the problem this solver was constructed with.
	Problem() *problem.Problem

	// Parameters returns the solver's typed parameter map, mutable in
	// place before Solve is called.
	Parameters() Parameters

	// PluginName is the backend's display label.
	PluginName() string

	// SetIterationCallback attaches cb as the per-iteration observer.
	// Returns ErrCallbackUnsupported if this backend never supports
	// callbacks.
	SetIterationCallback(cb IterationCallback) error

	// Solve transitions the solver from "no solution" to one of three
	// terminal states: success (Result, nil error), success with
	// warnings (Result with Warnings set, nil error), or error
	// (nil Result, a non-nil *SolverError optionally carrying a
	// last-known Result).
	Solve() (*Result, error)
}
