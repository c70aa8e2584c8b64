package function

import "github.com/roboptim/core-go/matrix"

// NumericLinearFunction realizes f(x) = A*x + b for a stored m x n
// matrix A and length-m vector b (spec.md §3 "NumericLinearFunction").
type NumericLinearFunction struct {
	Base
	a matrix.Matrix
	b []float64
}

// NewNumericLinearFunction builds f(x) = a*x + b. a must have shape
// (len(b), n) for some n > 0.
func NewNumericLinearFunction(a matrix.Matrix, b []float64, name string) *NumericLinearFunction {
	rows, cols := a.Dims()
	if rows != len(b) {
		panic("function: NumericLinearFunction: A rows must equal len(b)")
	}
	return &NumericLinearFunction{
		Base: NewBase(cols, rows, name,
			TagContinuous|TagDifferentiable|TagTwiceDifferentiable|TagLinear, a.Kind()),
		a: a,
		b: append([]float64(nil), b...),
	}
}

// A returns the stored matrix.
func (f *NumericLinearFunction) A() matrix.Matrix { return f.a }

// B returns the stored offset vector.
func (f *NumericLinearFunction) B() []float64 { return f.b }

func (f *NumericLinearFunction) Eval(dst MutableVector, x Vector) error {
	if err := CheckEval(f, dst, x); err != nil {
		return err
	}
	for i := 0; i < f.OutputSize(); i++ {
		sum := f.b[i]
		row := f.a.Row(i)
		for j := 0; j < f.InputSize(); j++ {
			sum += row.At(j) * x.At(j)
		}
		dst.Set(i, sum)
	}
	return nil
}

func (f *NumericLinearFunction) Gradient(dst MutableVector, x Vector, row int) error {
	if err := CheckGradient(f, dst, x, row); err != nil {
		return err
	}
	r := f.a.Row(row)
	for j := 0; j < f.InputSize(); j++ {
		dst.Set(j, r.At(j))
	}
	return nil
}

func (f *NumericLinearFunction) Jacobian(dst Builder, x Vector) error {
	if err := CheckJacobian(f, dst, x); err != nil {
		return err
	}
	for i := 0; i < f.OutputSize(); i++ {
		for j := 0; j < f.InputSize(); j++ {
			v := f.a.At(i, j)
			if v != 0 {
				dst.Set(i, j, v)
			}
		}
	}
	return nil
}

func (f *NumericLinearFunction) Hessian(dst Builder, x Vector, row int) error {
	return CheckHessian(f, dst, x, row)
}
