package function

import "github.com/roboptim/core-go/matrix"

// IdentityFunction is f(x) = x (spec.md §3 "IdentityFunction"). It
// auto-promotes to Linear.
type IdentityFunction struct {
	Base
}

// NewIdentityFunction builds the n-dimensional identity map.
func NewIdentityFunction(n int, name string) *IdentityFunction {
	return &IdentityFunction{
		Base: NewBase(n, n, name, TagContinuous|TagDifferentiable|TagTwiceDifferentiable|TagLinear|TagIdentity, matrix.Dense),
	}
}

func (f *IdentityFunction) Eval(dst MutableVector, x Vector) error {
	if err := CheckEval(f, dst, x); err != nil {
		return err
	}
	for i := 0; i < x.Len(); i++ {
		dst.Set(i, x.At(i))
	}
	return nil
}

func (f *IdentityFunction) Gradient(dst MutableVector, x Vector, row int) error {
	if err := CheckGradient(f, dst, x, row); err != nil {
		return err
	}
	for i := 0; i < f.InputSize(); i++ {
		v := 0.0
		if i == row {
			v = 1
		}
		dst.Set(i, v)
	}
	return nil
}

func (f *IdentityFunction) Jacobian(dst Builder, x Vector) error {
	if err := CheckJacobian(f, dst, x); err != nil {
		return err
	}
	for i := 0; i < f.InputSize(); i++ {
		dst.Set(i, i, 1)
	}
	return nil
}

func (f *IdentityFunction) Hessian(dst Builder, x Vector, row int) error {
	if err := CheckHessian(f, dst, x, row); err != nil {
		return err
	}
	return nil
}
