package operator

import (
	"github.com/roboptim/core-go/function"
	"github.com/roboptim/core-go/matrix"
)

// Concatenate stacks f and g into [f; g]: same input size, output
// size f.OutputSize()+g.OutputSize(), each row routed to whichever
// operand owns it (spec.md §4.1 table, row "Concatenate").
type Concatenate struct {
	function.Base
	f, g function.Function
}

// NewConcatenate builds [f; g]. f and g must share input size and
// storage Kind; their output sizes need not match.
func NewConcatenate(f, g function.Function, name string) *Concatenate {
	if f.InputSize() != g.InputSize() {
		panic("operator: input sizes differ")
	}
	if f.Kind() != g.Kind() {
		panic("operator: storage trait mismatch: " + f.Kind().String() + " vs " + g.Kind().String())
	}
	return &Concatenate{
		Base: function.NewBase(f.InputSize(), f.OutputSize()+g.OutputSize(), name,
			function.Promote(f.Tags(), g.Tags()), f.Kind()),
		f: f, g: g,
	}
}

// split reports which operand owns a given output row, and the row
// index within that operand.
func (c *Concatenate) split(row int) (function.Function, int) {
	if row < c.f.OutputSize() {
		return c.f, row
	}
	return c.g, row - c.f.OutputSize()
}

func (c *Concatenate) Eval(dst function.MutableVector, x function.Vector) error {
	if err := function.CheckEval(c, dst, x); err != nil {
		return err
	}
	fv := matrix.NewVector(c.f.Kind(), c.f.OutputSize())
	if err := c.f.Eval(fv, x); err != nil {
		return err
	}
	gv := matrix.NewVector(c.g.Kind(), c.g.OutputSize())
	if err := c.g.Eval(gv, x); err != nil {
		return err
	}
	for i := 0; i < c.f.OutputSize(); i++ {
		dst.Set(i, fv.At(i))
	}
	off := c.f.OutputSize()
	for i := 0; i < c.g.OutputSize(); i++ {
		dst.Set(off+i, gv.At(i))
	}
	return nil
}

func (c *Concatenate) Gradient(dst function.MutableVector, x function.Vector, row int) error {
	if err := function.CheckGradient(c, dst, x, row); err != nil {
		return err
	}
	owner, localRow := c.split(row)
	d := function.MustDifferentiable(owner)
	return d.Gradient(dst, x, localRow)
}

func (c *Concatenate) Jacobian(dst function.Builder, x function.Vector) error {
	return function.DefaultJacobian(c, dst, x)
}

func (c *Concatenate) Hessian(dst function.Builder, x function.Vector, row int) error {
	if err := function.CheckHessian(c, dst, x, row); err != nil {
		return err
	}
	owner, localRow := c.split(row)
	td, ok := function.AsTwiceDifferentiable(owner)
	if !ok {
		return errNotTwiceDifferentiable(owner)
	}
	return td.Hessian(dst, x, localRow)
}
