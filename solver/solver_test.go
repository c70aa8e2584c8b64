package solver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roboptim/core-go/function"
	"github.com/roboptim/core-go/logging"
	"github.com/roboptim/core-go/matrix"
	"github.com/roboptim/core-go/problem"
	"github.com/roboptim/core-go/solver"
)

func newProblem(t *testing.T) *problem.Problem {
	t.Helper()
	a := matrix.NewDenseMatrix(2, 2)
	a.Set(0, 0, 2)
	a.Set(1, 1, 2)
	cost := function.NewNumericQuadraticFunction(a, []float64{-6, -14}, 0, "cost")
	p := problem.New(cost)
	require.NoError(t, p.SetStartingPoint([]float64{0, 0}))
	return p
}

func TestParameterAccessorsRejectWrongKind(t *testing.T) {
	p := solver.IntParameter(42, "iterations")
	_, ok := p.Float64()
	require.False(t, ok)
	v, ok := p.Int()
	require.True(t, ok)
	require.Equal(t, 42, v)
}

func TestMaxIterationsFallsBackOnMissingOrWrongType(t *testing.T) {
	params := solver.Parameters{}
	require.Equal(t, 100, solver.MaxIterations(params, 100))

	params[solver.MaxIterationsKey] = solver.StringParameter("oops", "")
	require.Equal(t, 100, solver.MaxIterations(params, 100))

	params[solver.MaxIterationsKey] = solver.IntParameter(50, "")
	require.Equal(t, 50, solver.MaxIterations(params, 100))
}

func TestStateStopSignal(t *testing.T) {
	p := newProblem(t)
	st := solver.NewState(p)
	require.False(t, st.Stop())
	st.Parameters()[solver.StopKey] = solver.BoolParameter(true, "halt")
	require.True(t, st.Stop())
}

func TestResultStringIncludesWarnings(t *testing.T) {
	r := solver.NewResult(2, 1)
	r.Value = 3.5
	r.Warnings = []string{"maximum iterations reached"}
	s := r.String()
	require.Contains(t, s, "Result")
	require.Contains(t, s, "maximum iterations reached")
}

func TestInvokeCallbackToleratesPanicAndError(t *testing.T) {
	p := newProblem(t)
	st := solver.NewState(p)
	log := logging.NewNop()

	stop := solver.InvokeCallback(func(*problem.Problem, *solver.SolverState) error {
		panic("boom")
	}, p, st, log)
	require.False(t, stop)

	stop = solver.InvokeCallback(func(*problem.Problem, *solver.SolverState) error {
		return assertError{}
	}, p, st, log)
	require.False(t, stop)

	stop = solver.InvokeCallback(func(_ *problem.Problem, s *solver.SolverState) error {
		s.Parameters()[solver.StopKey] = solver.BoolParameter(true, "")
		return nil
	}, p, st, log)
	require.True(t, stop)
}

type assertError struct{}

func (assertError) Error() string { return "observer failure" }

func TestOptimizationLoggerRecordsIterationsAndResets(t *testing.T) {
	p := newProblem(t)
	var records []solver.IterationRecord
	sink := recordingSink{records: &records}
	opt := solver.NewOptimizationLogger(sink)

	st := solver.NewState(p)
	st.SetX([]float64{1, 2})
	st.SetCost(7)
	require.NoError(t, opt.Callback(p, st))
	require.NoError(t, opt.Callback(p, st))
	require.Len(t, records, 2)
	require.Equal(t, 0, records[0].Index)
	require.Equal(t, 1, records[1].Index)

	require.NoError(t, opt.Close())
	require.NoError(t, opt.Callback(p, st))
	require.Equal(t, 0, records[2].Index)
}

type recordingSink struct {
	records *[]solver.IterationRecord
}

func (s recordingSink) Record(r solver.IterationRecord) {
	*s.records = append(*s.records, r)
}
