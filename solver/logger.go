package solver

import (
	"time"

	"github.com/roboptim/core-go/logging"
	"github.com/roboptim/core-go/matrix"
	"github.com/roboptim/core-go/problem"
)

// IterationRecord is one materialized iteration, the unit the
// optimization logger hands to its Sink. The logger's Callback fills in
// the argument, cost, the concatenated constraint values, the constraint
// violation and the elapsed time; it leaves ConstraintJacobian nil.
type IterationRecord struct {
	SolveID             string
	Index               int
	Argument            []float64
	Cost                *float64
	ConstraintValue     []float64
	ConstraintJacobian  matrix.Matrix
	ConstraintViolation *float64
	Elapsed             time.Duration
}

// Sink is the user-chosen destination an OptimizationLogger materializes
// records to (spec.md §4.4).
type Sink interface {
	Record(r IterationRecord)
}

// LogSink is the default Sink, writing each record as a structured log
// line.
type LogSink struct {
	log logging.Logger
}

// NewLogSink wraps log as a Sink.
func NewLogSink(log logging.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Record(r IterationRecord) {
	s.log.Infow("optimization iteration",
		"solveID", r.SolveID,
		"index", r.Index,
		"x", r.Argument,
		"cost", derefOrNil(r.Cost),
		"constraintValue", r.ConstraintValue,
		"constraintViolation", derefOrNil(r.ConstraintViolation),
		"elapsed", r.Elapsed,
	)
}

func derefOrNil(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

// OptimizationLogger is the external collaborator of spec.md §4.4: it
// attaches itself as an iteration callback, materializes each
// iteration's state to its Sink, and restores its internal state on
// Close (teardown), ready for reuse across a subsequent solve.
type OptimizationLogger struct {
	sink Sink
	last time.Time
	n    int
}

// NewOptimizationLogger constructs an OptimizationLogger writing to
// sink.
func NewOptimizationLogger(sink Sink) *OptimizationLogger {
	return &OptimizationLogger{sink: sink}
}

// Callback is the IterationCallback an OptimizationLogger attaches to a
// solver (spec.md §4.4 "attaches itself as an iteration callback").
func (l *OptimizationLogger) Callback(p *problem.Problem, state *SolverState) error {
	now := time.Now()
	var elapsed time.Duration
	if !l.last.IsZero() {
		elapsed = now.Sub(l.last)
	}
	l.last = now

	rec := IterationRecord{
		SolveID:  state.ID.String(),
		Index:    l.n,
		Argument: append([]float64(nil), state.X()...),
		Elapsed:  elapsed,
	}
	if c, ok := state.Cost(); ok {
		rec.Cost = &c
	}
	if v, ok := state.ConstraintViolation(); ok {
		rec.ConstraintViolation = &v
	}
	if len(p.Constraints()) > 0 {
		x := matrix.NewDenseVectorFromSlice(state.X())
		var values []float64
		for _, c := range p.Constraints() {
			fn := c.Function()
			out := matrix.NewVector(fn.Kind(), fn.OutputSize())
			if err := fn.Eval(out, x); err == nil {
				for i := 0; i < fn.OutputSize(); i++ {
					values = append(values, out.At(i))
				}
			}
		}
		rec.ConstraintValue = values
	}

	l.n++
	l.sink.Record(rec)
	return nil
}

// Close restores the logger's internal state, ready for a subsequent
// solve to reuse it (spec.md §4.4 "restores state on teardown").
func (l *OptimizationLogger) Close() error {
	l.last = time.Time{}
	l.n = 0
	return nil
}
