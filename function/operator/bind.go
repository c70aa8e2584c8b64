package operator

import (
	"fmt"
	"sort"

	"github.com/roboptim/core-go/function"
	"github.com/roboptim/core-go/matrix"
)

// Bind fixes a subset of f's input variables to constant values,
// producing a function over the remaining free variables with the
// corresponding Jacobian columns dropped (spec.md §4.1 table, row
// "Bind").
type Bind struct {
	function.Base
	f           function.Function
	fixed       map[int]float64
	freeIndices []int
}

// NewBind fixes the variables named by fixed (original input index →
// value) and returns a function over the remaining free variables, in
// their original relative order. Panics if any fixed index is out of
// range or every variable is fixed.
func NewBind(f function.Function, fixed map[int]float64, name string) *Bind {
	n := f.InputSize()
	for idx := range fixed {
		if idx < 0 || idx >= n {
			panic(fmt.Sprintf("operator: bind index %d out of range [0,%d)", idx, n))
		}
	}
	free := make([]int, 0, n-len(fixed))
	for i := 0; i < n; i++ {
		if _, ok := fixed[i]; !ok {
			free = append(free, i)
		}
	}
	sort.Ints(free)
	if len(free) == 0 {
		panic("operator: bind leaves no free variables")
	}
	return &Bind{
		Base:        function.NewBase(len(free), f.OutputSize(), name, f.Tags(), f.Kind()),
		f:           f,
		fixed:       fixed,
		freeIndices: free,
	}
}

// expand builds the full-length argument to f by merging the bound
// free-variable vector x with the fixed values.
func (b *Bind) expand(x function.Vector) function.Vector {
	full := matrix.NewVector(b.f.Kind(), b.f.InputSize())
	for idx, v := range b.fixed {
		full.Set(idx, v)
	}
	for i, idx := range b.freeIndices {
		full.Set(idx, x.At(i))
	}
	return full
}

func (b *Bind) Eval(dst function.MutableVector, x function.Vector) error {
	if err := function.CheckEval(b, dst, x); err != nil {
		return err
	}
	return b.f.Eval(dst, b.expand(x))
}

func (b *Bind) Gradient(dst function.MutableVector, x function.Vector, row int) error {
	if err := function.CheckGradient(b, dst, x, row); err != nil {
		return err
	}
	full := matrix.NewVector(b.Kind(), b.f.InputSize())
	if err := function.MustDifferentiable(b.f).Gradient(full, b.expand(x), row); err != nil {
		return err
	}
	for i, idx := range b.freeIndices {
		dst.Set(i, full.At(idx))
	}
	return nil
}

func (b *Bind) Jacobian(dst function.Builder, x function.Vector) error {
	return function.DefaultJacobian(b, dst, x)
}

func (b *Bind) Hessian(dst function.Builder, x function.Vector, row int) error {
	if err := function.CheckHessian(b, dst, x, row); err != nil {
		return err
	}
	td, ok := function.AsTwiceDifferentiable(b.f)
	if !ok {
		return errNotTwiceDifferentiable(b.f)
	}
	full := matrix.NewBuilder(b.Kind(), b.f.InputSize(), b.f.InputSize())
	if err := td.Hessian(full, b.expand(x), row); err != nil {
		return err
	}
	fm := full.Build()
	for i, ii := range b.freeIndices {
		for j, jj := range b.freeIndices {
			v := fm.At(ii, jj)
			if v != 0 {
				dst.Set(i, j, v)
			}
		}
	}
	return nil
}
