package operator

import (
	"github.com/roboptim/core-go/function"
	"github.com/roboptim/core-go/matrix"
)

// Scalar is α·f: a function scaled by a constant factor. Scaling
// preserves every regularity tag of the operand (spec.md §4.1 table,
// row "Scalar").
type Scalar struct {
	function.Base
	f     function.Function
	alpha float64
}

// NewScalar builds alpha * f.
func NewScalar(f function.Function, alpha float64, name string) *Scalar {
	return &Scalar{
		Base:  function.NewBase(f.InputSize(), f.OutputSize(), name, f.Tags(), f.Kind()),
		f:     f,
		alpha: alpha,
	}
}

func (s *Scalar) Eval(dst function.MutableVector, x function.Vector) error {
	if err := function.CheckEval(s, dst, x); err != nil {
		return err
	}
	fv := matrix.NewVector(s.f.Kind(), s.f.OutputSize())
	if err := s.f.Eval(fv, x); err != nil {
		return err
	}
	for i := 0; i < s.OutputSize(); i++ {
		dst.Set(i, s.alpha*fv.At(i))
	}
	return nil
}

func (s *Scalar) fDiff() function.Differentiable { return function.MustDifferentiable(s.f) }

func (s *Scalar) Gradient(dst function.MutableVector, x function.Vector, row int) error {
	if err := function.CheckGradient(s, dst, x, row); err != nil {
		return err
	}
	g := matrix.NewVector(s.Kind(), s.InputSize())
	if err := s.fDiff().Gradient(g, x, row); err != nil {
		return err
	}
	for i := 0; i < s.InputSize(); i++ {
		dst.Set(i, s.alpha*g.At(i))
	}
	return nil
}

func (s *Scalar) Jacobian(dst function.Builder, x function.Vector) error {
	return function.DefaultJacobian(s, dst, x)
}

func (s *Scalar) Hessian(dst function.Builder, x function.Vector, row int) error {
	if err := function.CheckHessian(s, dst, x, row); err != nil {
		return err
	}
	fTD, ok := function.AsTwiceDifferentiable(s.f)
	if !ok {
		return errNotTwiceDifferentiable(s.f)
	}
	n := s.InputSize()
	h := matrix.NewBuilder(s.Kind(), n, n)
	if err := fTD.Hessian(h, x, row); err != nil {
		return err
	}
	hm := h.Build()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := s.alpha * hm.At(i, j)
			if v != 0 {
				dst.Set(i, j, v)
			}
		}
	}
	return nil
}
