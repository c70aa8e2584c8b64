package function_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roboptim/core-go/function"
	"github.com/roboptim/core-go/matrix"
)

func identityPlusB(b []float64) *function.NumericLinearFunction {
	n := len(b)
	a := matrix.NewDenseMatrix(n, n)
	for i := 0; i < n; i++ {
		a.Set(i, i, 1)
	}
	return function.NewNumericLinearFunction(a, b, "identity-plus-b")
}

func TestIdentityPlusBScenario(t *testing.T) {
	b := []float64{12, 46, 2, -9}
	f := identityPlusB(b)

	x := matrix.NewDenseVectorFromSlice([]float64{0, 0, 0, 0})
	out := matrix.NewDenseVector(4)
	require.NoError(t, f.Eval(out, x))
	require.Equal(t, b, out.Slice())

	jac := matrix.NewDenseBuilder(4, 4)
	require.NoError(t, f.Jacobian(jac, x))
	built := jac.Build()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			require.Equal(t, want, built.At(i, j))
		}
	}

	grad := matrix.NewDenseVector(4)
	require.NoError(t, f.Gradient(grad, x, 0))
	require.Equal(t, []float64{1, 0, 0, 0}, grad.Slice())
}

func quadraticExample() *function.NumericQuadraticFunction {
	a := matrix.NewDenseMatrix(2, 2)
	a.Set(0, 0, 2)
	a.Set(1, 1, 2)
	b := []float64{-6, -14}
	return function.NewNumericQuadraticFunction(a, b, 0, "quad")
}

func TestQuadraticScenario(t *testing.T) {
	f := quadraticExample()

	x0 := matrix.NewDenseVectorFromSlice([]float64{0, 0})
	val := matrix.NewDenseVector(1)
	require.NoError(t, f.Eval(val, x0))
	require.Equal(t, 0.0, val.At(0))

	grad0 := matrix.NewDenseVector(2)
	require.NoError(t, f.Gradient(grad0, x0, 0))
	require.Equal(t, []float64{-6, -14}, grad0.Slice())

	xmin := matrix.NewDenseVectorFromSlice([]float64{3, 7})
	gradMin := matrix.NewDenseVector(2)
	require.NoError(t, f.Gradient(gradMin, xmin, 0))
	require.Equal(t, []float64{0, 0}, gradMin.Slice())
}

func TestShapeMismatchErrors(t *testing.T) {
	f := quadraticExample()
	badX := matrix.NewDenseVectorFromSlice([]float64{1})
	val := matrix.NewDenseVector(1)
	err := f.Eval(val, badX)
	require.ErrorIs(t, err, function.ErrArgumentSize)

	badOut := matrix.NewDenseVector(2)
	goodX := matrix.NewDenseVectorFromSlice([]float64{1, 2})
	err = f.Eval(badOut, goodX)
	require.ErrorIs(t, err, function.ErrOutputSize)
}

func TestPolymorphicCast(t *testing.T) {
	f := quadraticExample()
	q, ok := function.AsQuadratic(f)
	require.True(t, ok)
	require.NotNil(t, q)

	lin := identityPlusB([]float64{1, 2})
	_, ok = function.AsQuadratic(lin)
	require.False(t, ok)
	l, ok := function.AsLinear(lin)
	require.True(t, ok)
	require.NotNil(t, l)
}

func TestPromotionTable(t *testing.T) {
	diff := function.TagContinuous | function.TagDifferentiable
	quad := function.TagContinuous | function.TagDifferentiable | function.TagTwiceDifferentiable | function.TagQuadratic
	lin := function.TagContinuous | function.TagDifferentiable | function.TagTwiceDifferentiable | function.TagLinear

	// A product of two differentiable functions is differentiable.
	require.True(t, function.Promote(diff, diff).Has(function.TagDifferentiable))
	require.False(t, function.Promote(diff, diff).Has(function.TagTwiceDifferentiable))

	// A sum involving a linear and a quadratic is quadratic (the weaker
	// capability wins: quadratic's rank 3 < linear's rank 4).
	promoted := function.Promote(lin, quad)
	require.True(t, promoted.Has(function.TagQuadratic))
	require.False(t, promoted.Has(function.TagLinear))
}

func TestPolynomialDegrees(t *testing.T) {
	constant := function.NewPolynomial([]float64{5}, "c")
	require.True(t, constant.Tags().Has(function.TagConstant))

	linear := function.NewPolynomial([]float64{1, 2}, "l") // 1 + 2x
	require.True(t, linear.Tags().Has(function.TagLinear))
	require.False(t, linear.Tags().Has(function.TagQuadratic))

	quad := function.NewPolynomial([]float64{0, 0, 3}, "q") // 3x^2
	require.True(t, quad.Tags().Has(function.TagQuadratic))

	x := matrix.NewDenseVectorFromSlice([]float64{2})
	val := matrix.NewDenseVector(1)
	require.NoError(t, quad.Eval(val, x))
	require.Equal(t, 12.0, val.At(0)) // 3 * 4

	grad := matrix.NewDenseVector(1)
	require.NoError(t, quad.Gradient(grad, x, 0))
	require.Equal(t, 12.0, grad.At(0)) // 6x at x=2

	hess := matrix.NewDenseBuilder(1, 1)
	require.NoError(t, quad.Hessian(hess, x, 0))
	require.Equal(t, 6.0, hess.Build().At(0, 0))
}
