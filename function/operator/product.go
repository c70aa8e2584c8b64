package operator

import (
	"github.com/roboptim/core-go/function"
	"github.com/roboptim/core-go/matrix"
)

// Product is the elementwise product f ⊙ g: same shape, value f(x) ⊙
// g(x), per-row derivative f⊙∇g + g⊙∇f (spec.md §4.1 table, row
// "Product").
type Product struct {
	function.Base
	f, g function.Function
}

// NewProduct builds the elementwise product of f and g.
func NewProduct(f, g function.Function, name string) *Product {
	requireCompatible(f, g)
	return &Product{
		Base: function.NewBase(f.InputSize(), f.OutputSize(), name,
			function.Promote(f.Tags(), g.Tags()), f.Kind()),
		f: f, g: g,
	}
}

func (p *Product) evalBoth(x function.Vector) (fv, gv function.Vector, err error) {
	fvec := matrix.NewVector(p.f.Kind(), p.f.OutputSize())
	gvec := matrix.NewVector(p.g.Kind(), p.g.OutputSize())
	if err = p.f.Eval(fvec, x); err != nil {
		return nil, nil, err
	}
	if err = p.g.Eval(gvec, x); err != nil {
		return nil, nil, err
	}
	return fvec, gvec, nil
}

func (p *Product) Eval(dst function.MutableVector, x function.Vector) error {
	if err := function.CheckEval(p, dst, x); err != nil {
		return err
	}
	fv, gv, err := p.evalBoth(x)
	if err != nil {
		return err
	}
	for i := 0; i < p.OutputSize(); i++ {
		dst.Set(i, fv.At(i)*gv.At(i))
	}
	return nil
}

func (p *Product) fDiff() function.Differentiable { return function.MustDifferentiable(p.f) }
func (p *Product) gDiff() function.Differentiable { return function.MustDifferentiable(p.g) }

func (p *Product) Gradient(dst function.MutableVector, x function.Vector, row int) error {
	if err := function.CheckGradient(p, dst, x, row); err != nil {
		return err
	}
	fOut := matrix.NewVector(p.f.Kind(), p.f.OutputSize())
	if err := p.f.Eval(fOut, x); err != nil {
		return err
	}
	gOut := matrix.NewVector(p.g.Kind(), p.g.OutputSize())
	if err := p.g.Eval(gOut, x); err != nil {
		return err
	}
	fVal, gVal := fOut.At(row), gOut.At(row)

	n := p.InputSize()
	gradF := matrix.NewVector(p.Kind(), n)
	gradG := matrix.NewVector(p.Kind(), n)
	if err := p.fDiff().Gradient(gradF, x, row); err != nil {
		return err
	}
	if err := p.gDiff().Gradient(gradG, x, row); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		dst.Set(i, fVal*gradG.At(i)+gVal*gradF.At(i))
	}
	return nil
}

func (p *Product) Jacobian(dst function.Builder, x function.Vector) error {
	return function.DefaultJacobian(p, dst, x)
}

// Hessian implements the product rule's second derivative:
// H(f*g)_row = f_row * Hg_row + g_row * Hf_row + ∇f_row ∇g_row^T + ∇g_row ∇f_row^T.
func (p *Product) Hessian(dst function.Builder, x function.Vector, row int) error {
	if err := function.CheckHessian(p, dst, x, row); err != nil {
		return err
	}
	fTD, ok := function.AsTwiceDifferentiable(p.f)
	if !ok {
		return errNotTwiceDifferentiable(p.f)
	}
	gTD, ok := function.AsTwiceDifferentiable(p.g)
	if !ok {
		return errNotTwiceDifferentiable(p.g)
	}
	n := p.InputSize()

	fOut := matrix.NewVector(p.f.Kind(), p.f.OutputSize())
	if err := p.f.Eval(fOut, x); err != nil {
		return err
	}
	gOut := matrix.NewVector(p.g.Kind(), p.g.OutputSize())
	if err := p.g.Eval(gOut, x); err != nil {
		return err
	}
	fVal, gVal := fOut.At(row), gOut.At(row)

	gradF := matrix.NewVector(p.Kind(), n)
	gradG := matrix.NewVector(p.Kind(), n)
	if err := fTD.Gradient(gradF, x, row); err != nil {
		return err
	}
	if err := gTD.Gradient(gradG, x, row); err != nil {
		return err
	}

	hf := matrix.NewBuilder(p.Kind(), n, n)
	hg := matrix.NewBuilder(p.Kind(), n, n)
	if err := fTD.Hessian(hf, x, row); err != nil {
		return err
	}
	if err := gTD.Hessian(hg, x, row); err != nil {
		return err
	}
	hfm, hgm := hf.Build(), hg.Build()

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := fVal*hgm.At(i, j) + gVal*hfm.At(i, j) +
				gradF.At(i)*gradG.At(j) + gradG.At(i)*gradF.At(j)
			if v != 0 {
				dst.Set(i, j, v)
			}
		}
	}
	return nil
}
