package solver

import (
	"github.com/roboptim/core-go/logging"
	"github.com/roboptim/core-go/problem"
)

// InvokeCallback runs cb at an iteration boundary, tolerating observer
// failure: a returned error or a recovered panic is reported to log
// rather than aborting the solve (spec.md §7 "Observer failure ...
// caught at the iteration boundary, reported to a diagnostic sink,
// optimization continues"). It returns whether the callback (or a prior
// callback via state.Parameters()) has requested a stop.
func InvokeCallback(cb IterationCallback, p *problem.Problem, state *SolverState, log logging.Logger) (stop bool) {
	func() {
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("iteration callback panicked", "panic", r, "solveID", state.ID.String())
			}
		}()
		if err := cb(p, state); err != nil {
			log.Errorw("iteration callback failed", "error", err, "solveID", state.ID.String())
		}
	}()
	return state.Stop()
}
