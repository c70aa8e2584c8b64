package solver

import (
	"github.com/google/uuid"

	"github.com/roboptim/core-go/problem"
)

// SolverState is the mutable per-iteration view of an in-progress solve
// (spec.md §3 "SolverState"): the current argument, optional cost and
// constraint-violation scalars, and a free-form parameter map. A solver
// creates one, mutates it in place each iteration, and passes it to the
// iteration callback.
type SolverState struct {
	// ID correlates every log line emitted for a single solve; a random
	// per-solve identifier is legitimate here, unlike the content-hash
	// fingerprint used to key the cached-decorator.
	ID uuid.UUID

	x                   []float64
	hasCost             bool
	cost                float64
	hasViolation        bool
	constraintViolation float64
	parameters          Parameters
}

// NewState allocates a SolverState sized to p, with x initialized to
// zero and no cost/violation/parameters yet recorded.
func NewState(p *problem.Problem) *SolverState {
	return &SolverState{
		ID:         uuid.New(),
		x:          make([]float64, p.InputSize()),
		parameters: make(Parameters),
	}
}

// X returns the current argument.
func (s *SolverState) X() []float64 { return s.x }

// SetX replaces the current argument; len(x) must equal the original
// problem's input size, a caller invariant this method does not itself
// enforce (the solver backend owns that check).
func (s *SolverState) SetX(x []float64) { s.x = x }

// Cost returns the current cost and whether one has been recorded.
func (s *SolverState) Cost() (float64, bool) { return s.cost, s.hasCost }

// SetCost records the current cost.
func (s *SolverState) SetCost(v float64) { s.cost, s.hasCost = v, true }

// ConstraintViolation returns the current constraint violation and
// whether one has been recorded.
func (s *SolverState) ConstraintViolation() (float64, bool) {
	return s.constraintViolation, s.hasViolation
}

// SetConstraintViolation records the current constraint violation.
func (s *SolverState) SetConstraintViolation(v float64) { s.constraintViolation, s.hasViolation = v, true }

// Parameters returns the free-form parameter map, mutable in place.
func (s *SolverState) Parameters() Parameters { return s.parameters }

// Stop reports whether a callback has requested that optimization halt
// (spec.md §5, the StopKey state-map entry).
func (s *SolverState) Stop() bool {
	v, ok := s.parameters[StopKey]
	if !ok {
		return false
	}
	b, ok := v.Bool()
	return ok && b
}
