package operator

import (
	"github.com/roboptim/core-go/function"
	"github.com/roboptim/core-go/matrix"
)

// Chain is the composition f∘g: h(x) = f(g(x)). Input size is
// g.InputSize(), output size is f.OutputSize() (spec.md §4.1 table,
// row "Chain"). f and g must agree on storage Kind; g's output size
// must equal f's input size.
type Chain struct {
	function.Base
	f, g function.Function
}

// NewChain builds f∘g.
func NewChain(f, g function.Function, name string) *Chain {
	if g.OutputSize() != f.InputSize() {
		panic("operator: chain shape mismatch: g output size must equal f input size")
	}
	if f.Kind() != g.Kind() {
		panic("operator: storage trait mismatch: " + f.Kind().String() + " vs " + g.Kind().String())
	}
	return &Chain{
		Base: function.NewBase(g.InputSize(), f.OutputSize(), name,
			function.Promote(f.Tags(), g.Tags()), f.Kind()),
		f: f, g: g,
	}
}

func (c *Chain) evalG(x function.Vector) (function.Vector, error) {
	y := matrix.NewVector(c.g.Kind(), c.g.OutputSize())
	if err := c.g.Eval(y, x); err != nil {
		return nil, err
	}
	return y, nil
}

func (c *Chain) Eval(dst function.MutableVector, x function.Vector) error {
	if err := function.CheckEval(c, dst, x); err != nil {
		return err
	}
	y, err := c.evalG(x)
	if err != nil {
		return err
	}
	return c.f.Eval(dst, y)
}

func (c *Chain) fDiff() function.Differentiable { return function.MustDifferentiable(c.f) }
func (c *Chain) gDiff() function.Differentiable { return function.MustDifferentiable(c.g) }

// Gradient computes ∇h_row = Jg^T · ∇f_row(g(x)) (the chain rule).
func (c *Chain) Gradient(dst function.MutableVector, x function.Vector, row int) error {
	if err := function.CheckGradient(c, dst, x, row); err != nil {
		return err
	}
	y, err := c.evalG(x)
	if err != nil {
		return err
	}
	m := c.g.OutputSize()
	n := c.InputSize()

	gradF := matrix.NewVector(c.f.Kind(), m)
	if err := c.fDiff().Gradient(gradF, y, row); err != nil {
		return err
	}
	jg := matrix.NewBuilder(c.g.Kind(), m, n)
	if err := c.gDiff().Jacobian(jg, x); err != nil {
		return err
	}
	jgm := jg.Build()

	for j := 0; j < n; j++ {
		var sum float64
		for k := 0; k < m; k++ {
			sum += gradF.At(k) * jgm.At(k, j)
		}
		dst.Set(j, sum)
	}
	return nil
}

func (c *Chain) Jacobian(dst function.Builder, x function.Vector) error {
	return function.DefaultJacobian(c, dst, x)
}

// Hessian implements the full second-derivative chain rule:
//
//	H(h)_row = Jg^T · Hf_row · Jg + Σ_k ∂f_row/∂y_k · Hg_k
func (c *Chain) Hessian(dst function.Builder, x function.Vector, row int) error {
	if err := function.CheckHessian(c, dst, x, row); err != nil {
		return err
	}
	fTD, ok := function.AsTwiceDifferentiable(c.f)
	if !ok {
		return errNotTwiceDifferentiable(c.f)
	}
	gTD, ok := function.AsTwiceDifferentiable(c.g)
	if !ok {
		return errNotTwiceDifferentiable(c.g)
	}
	y, err := c.evalG(x)
	if err != nil {
		return err
	}
	m := c.g.OutputSize()
	n := c.InputSize()

	gradF := matrix.NewVector(c.f.Kind(), m)
	if err := c.fDiff().Gradient(gradF, y, row); err != nil {
		return err
	}
	jg := matrix.NewBuilder(c.g.Kind(), m, n)
	if err := c.gDiff().Jacobian(jg, x); err != nil {
		return err
	}
	jgm := jg.Build()

	hf := matrix.NewBuilder(c.f.Kind(), m, m)
	if err := fTD.Hessian(hf, y, row); err != nil {
		return err
	}
	hfm := hf.Build()

	// accumulator[i][j] = Jg^T * Hf * Jg, plus Σ_k gradF[k] * Hg_k
	acc := make([][]float64, n)
	for i := range acc {
		acc[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var sum float64
			for k := 0; k < m; k++ {
				for l := 0; l < m; l++ {
					sum += jgm.At(k, i) * hfm.At(k, l) * jgm.At(l, j)
				}
			}
			acc[i][j] = sum
		}
	}
	for k := 0; k < m; k++ {
		coeff := gradF.At(k)
		if coeff == 0 {
			continue
		}
		hgk := matrix.NewBuilder(c.g.Kind(), n, n)
		if err := gTD.Hessian(hgk, x, k); err != nil {
			return err
		}
		hgkm := hgk.Build()
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				acc[i][j] += coeff * hgkm.At(i, j)
			}
		}
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if acc[i][j] != 0 {
				dst.Set(i, j, acc[i][j])
			}
		}
	}
	return nil
}
