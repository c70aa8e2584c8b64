package function

import "github.com/roboptim/core-go/matrix"

// NumericQuadraticFunction realizes the scalar f(x) = 1/2 x^T A x + b^T
// x + c for a stored symmetric n x n matrix A, length-n vector b and
// scalar c (spec.md §3 "NumericQuadraticFunction"). Implementers may
// store either triangle of A; Eval/Gradient/Hessian always read both
// indices so an upper- or lower-triangular-only input still behaves as
// if A were symmetric.
type NumericQuadraticFunction struct {
	Base
	a matrix.Matrix
	b []float64
	c float64
}

// NewNumericQuadraticFunction builds f(x) = 1/2 x^T a x + b^T x + c. a
// must be square with side len(b).
func NewNumericQuadraticFunction(a matrix.Matrix, b []float64, c float64, name string) *NumericQuadraticFunction {
	rows, cols := a.Dims()
	if rows != cols || rows != len(b) {
		panic("function: NumericQuadraticFunction: A must be square with side len(b)")
	}
	return &NumericQuadraticFunction{
		Base: NewBase(len(b), 1, name,
			TagContinuous|TagDifferentiable|TagTwiceDifferentiable|TagQuadratic, a.Kind()),
		a: a,
		b: append([]float64(nil), b...),
		c: c,
	}
}

func (f *NumericQuadraticFunction) symAt(i, j int) float64 {
	if v := f.a.At(i, j); v != 0 {
		return v
	}
	return f.a.At(j, i)
}

func (f *NumericQuadraticFunction) Eval(dst MutableVector, x Vector) error {
	if err := CheckEval(f, dst, x); err != nil {
		return err
	}
	n := f.InputSize()
	quad := 0.0
	lin := 0.0
	for i := 0; i < n; i++ {
		lin += f.b[i] * x.At(i)
		for j := 0; j < n; j++ {
			quad += x.At(i) * f.symAt(i, j) * x.At(j)
		}
	}
	dst.Set(0, 0.5*quad+lin+f.c)
	return nil
}

func (f *NumericQuadraticFunction) Gradient(dst MutableVector, x Vector, row int) error {
	if err := CheckGradient(f, dst, x, row); err != nil {
		return err
	}
	n := f.InputSize()
	for i := 0; i < n; i++ {
		sum := f.b[i]
		for j := 0; j < n; j++ {
			sum += f.symAt(i, j) * x.At(j)
		}
		dst.Set(i, sum)
	}
	return nil
}

func (f *NumericQuadraticFunction) Jacobian(dst Builder, x Vector) error {
	return DefaultJacobian(f, dst, x)
}

func (f *NumericQuadraticFunction) Hessian(dst Builder, x Vector, row int) error {
	if err := CheckHessian(f, dst, x, row); err != nil {
		return err
	}
	n := f.InputSize()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := f.symAt(i, j)
			if v != 0 {
				dst.Set(i, j, v)
			}
		}
	}
	return nil
}
