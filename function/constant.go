package function

import "github.com/roboptim/core-go/matrix"

// ConstantFunction is f(x) = c for a fixed vector c, independent of x
// (spec.md §3 "ConstantFunction"). It auto-promotes to Linear (zero
// Jacobian, zero Hessian), per the original's autopromote table.
type ConstantFunction struct {
	Base
	value []float64
}

// NewConstantFunction builds f(x) = value, with n the declared input
// size (the argument is ignored but its length is still validated).
func NewConstantFunction(n int, value []float64, name string) *ConstantFunction {
	return &ConstantFunction{
		Base:  NewBase(n, len(value), name, TagContinuous|TagDifferentiable|TagTwiceDifferentiable|TagLinear|TagConstant, matrix.Dense),
		value: append([]float64(nil), value...),
	}
}

func (c *ConstantFunction) Eval(dst MutableVector, x Vector) error {
	if err := CheckEval(c, dst, x); err != nil {
		return err
	}
	for i, v := range c.value {
		dst.Set(i, v)
	}
	return nil
}

func (c *ConstantFunction) Gradient(dst MutableVector, x Vector, row int) error {
	if err := CheckGradient(c, dst, x, row); err != nil {
		return err
	}
	for i := 0; i < c.InputSize(); i++ {
		dst.Set(i, 0)
	}
	return nil
}

func (c *ConstantFunction) Jacobian(dst Builder, x Vector) error {
	return DefaultJacobian(c, dst, x)
}

func (c *ConstantFunction) Hessian(dst Builder, x Vector, row int) error {
	if err := CheckHessian(c, dst, x, row); err != nil {
		return err
	}
	// Identically zero: nothing to set on a freshly built Builder.
	return nil
}
