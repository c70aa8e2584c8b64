package operator

import (
	"github.com/roboptim/core-go/function"
	"github.com/roboptim/core-go/matrix"
)

// Sum is f + g: same shape, value f(x)+g(x), derivative ∇f+∇g
// (spec.md §4.1 table, row "Sum").
type Sum struct {
	function.Base
	f, g function.Function
}

// NewSum builds f + g. f and g must share input and output size and
// storage Kind.
func NewSum(f, g function.Function, name string) *Sum {
	requireCompatible(f, g)
	return &Sum{
		Base: function.NewBase(f.InputSize(), f.OutputSize(), name,
			function.Promote(f.Tags(), g.Tags()), f.Kind()),
		f: f, g: g,
	}
}

func (s *Sum) Eval(dst function.MutableVector, x function.Vector) error {
	if err := function.CheckEval(s, dst, x); err != nil {
		return err
	}
	fv := matrix.NewVector(s.f.Kind(), s.f.OutputSize())
	gv := matrix.NewVector(s.g.Kind(), s.g.OutputSize())
	if err := s.f.Eval(fv, x); err != nil {
		return err
	}
	if err := s.g.Eval(gv, x); err != nil {
		return err
	}
	for i := 0; i < s.OutputSize(); i++ {
		dst.Set(i, fv.At(i)+gv.At(i))
	}
	return nil
}

func (s *Sum) fDiff() function.Differentiable { return function.MustDifferentiable(s.f) }
func (s *Sum) gDiff() function.Differentiable { return function.MustDifferentiable(s.g) }

func (s *Sum) Gradient(dst function.MutableVector, x function.Vector, row int) error {
	if err := function.CheckGradient(s, dst, x, row); err != nil {
		return err
	}
	fg := matrix.NewVector(s.Kind(), s.InputSize())
	gg := matrix.NewVector(s.Kind(), s.InputSize())
	if err := s.fDiff().Gradient(fg, x, row); err != nil {
		return err
	}
	if err := s.gDiff().Gradient(gg, x, row); err != nil {
		return err
	}
	for i := 0; i < s.InputSize(); i++ {
		dst.Set(i, fg.At(i)+gg.At(i))
	}
	return nil
}

func (s *Sum) Jacobian(dst function.Builder, x function.Vector) error {
	return function.DefaultJacobian(s, dst, x)
}

func (s *Sum) Hessian(dst function.Builder, x function.Vector, row int) error {
	if err := function.CheckHessian(s, dst, x, row); err != nil {
		return err
	}
	fTD, ok := function.AsTwiceDifferentiable(s.f)
	if !ok {
		return errNotTwiceDifferentiable(s.f)
	}
	gTD, ok := function.AsTwiceDifferentiable(s.g)
	if !ok {
		return errNotTwiceDifferentiable(s.g)
	}
	n := s.InputSize()
	fh := matrix.NewBuilder(s.Kind(), n, n)
	gh := matrix.NewBuilder(s.Kind(), n, n)
	if err := fTD.Hessian(fh, x, row); err != nil {
		return err
	}
	if err := gTD.Hessian(gh, x, row); err != nil {
		return err
	}
	fhm, ghm := fh.Build(), gh.Build()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := fhm.At(i, j) + ghm.At(i, j)
			if v != 0 {
				dst.Set(i, j, v)
			}
		}
	}
	return nil
}
