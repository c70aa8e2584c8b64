package decorator_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roboptim/core-go/function"
	"github.com/roboptim/core-go/function/decorator"
	"github.com/roboptim/core-go/matrix"
)

// countingFunction wraps a NumericQuadraticFunction and counts calls to
// Eval/Gradient/Hessian, so tests can assert the decorator never
// reaches the inner function on a cache hit.
type countingFunction struct {
	*function.NumericQuadraticFunction
	evalCalls, gradCalls, hessCalls int
}

func (c *countingFunction) Eval(dst function.MutableVector, x function.Vector) error {
	c.evalCalls++
	return c.NumericQuadraticFunction.Eval(dst, x)
}

func (c *countingFunction) Gradient(dst function.MutableVector, x function.Vector, row int) error {
	c.gradCalls++
	return c.NumericQuadraticFunction.Gradient(dst, x, row)
}

func (c *countingFunction) Hessian(dst function.Builder, x function.Vector, row int) error {
	c.hessCalls++
	return c.NumericQuadraticFunction.Hessian(dst, x, row)
}

func newCounting() *countingFunction {
	a := matrix.NewDenseMatrix(2, 2)
	a.Set(0, 0, 2)
	a.Set(1, 1, 2)
	return &countingFunction{NumericQuadraticFunction: function.NewNumericQuadraticFunction(a, []float64{-6, -14}, 0, "quad")}
}

func TestCachedEvalIsCacheOnlyOnSecondHit(t *testing.T) {
	inner := newCounting()
	c := decorator.New(inner, decorator.WithCapacity(3))

	x := matrix.NewDenseVectorFromSlice([]float64{1, 2})
	out := matrix.NewDenseVector(1)
	require.NoError(t, c.Eval(out, x))
	require.Equal(t, 1, inner.evalCalls)

	require.NoError(t, c.Eval(out, x))
	require.Equal(t, 1, inner.evalCalls, "second evaluation at the same argument must be cache-only")
}

func TestCachedEvictsAfterCapacityExceeded(t *testing.T) {
	inner := newCounting()
	c := decorator.New(inner, decorator.WithCapacity(3))
	out := matrix.NewDenseVector(1)

	args := [][]float64{{0, 0}, {1, 0}, {0, 1}, {2, 2}} // 4 distinct args, capacity 3
	for _, a := range args {
		require.NoError(t, c.Eval(out, matrix.NewDenseVectorFromSlice(a)))
	}
	require.Equal(t, 4, inner.evalCalls)

	// {0,0} was evicted (capacity 3, inserted first): re-evaluating it
	// must invoke the inner function again.
	require.NoError(t, c.Eval(out, matrix.NewDenseVectorFromSlice([]float64{0, 0})))
	require.Equal(t, 5, inner.evalCalls)

	// {2,2} is still retained: no further inner call.
	require.NoError(t, c.Eval(out, matrix.NewDenseVectorFromSlice([]float64{2, 2})))
	require.Equal(t, 5, inner.evalCalls)
}

func TestCachedGradientAndHessianAreCacheOnly(t *testing.T) {
	inner := newCounting()
	c := decorator.New(inner)

	x := matrix.NewDenseVectorFromSlice([]float64{3, 4})
	grad := matrix.NewDenseVector(2)
	require.NoError(t, c.Gradient(grad, x, 0))
	require.NoError(t, c.Gradient(grad, x, 0))
	require.Equal(t, 1, inner.gradCalls)

	hess := matrix.NewDenseBuilder(2, 2)
	require.NoError(t, c.Hessian(hess, x, 0))
	require.NoError(t, c.Hessian(hess, x, 0))
	require.Equal(t, 1, inner.hessCalls)
}

func TestCachedPassesThroughTags(t *testing.T) {
	inner := newCounting()
	c := decorator.New(inner)
	require.Equal(t, inner.Tags(), c.Tags())

	q, ok := function.AsQuadratic(c)
	require.True(t, ok)
	require.NotNil(t, q)
}

func TestCachedResetClearsSubCaches(t *testing.T) {
	inner := newCounting()
	c := decorator.New(inner)
	x := matrix.NewDenseVectorFromSlice([]float64{5, 6})
	out := matrix.NewDenseVector(1)

	require.NoError(t, c.Eval(out, x))
	c.Reset()
	require.NoError(t, c.Eval(out, x))
	require.Equal(t, 2, inner.evalCalls, "reset must force the next evaluation to recompute")
}
