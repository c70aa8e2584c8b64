package operator

import (
	"fmt"

	"github.com/roboptim/core-go/function"
)

// Selection restricts f to a contiguous range of output rows
// [start, start+k) (spec.md §4.1 table, row "Selection"). Input size
// and regularity tags pass through unchanged; only the output size
// shrinks.
type Selection struct {
	function.Base
	f     function.Function
	start int
}

// NewSelection builds f[start:start+k). Panics if the range falls
// outside [0, f.OutputSize()).
func NewSelection(f function.Function, start, k int, name string) *Selection {
	if start < 0 || k <= 0 || start+k > f.OutputSize() {
		panic(fmt.Sprintf("operator: selection range [%d,%d) out of bounds for output size %d",
			start, start+k, f.OutputSize()))
	}
	return &Selection{
		Base:  function.NewBase(f.InputSize(), k, name, f.Tags(), f.Kind()),
		f:     f,
		start: start,
	}
}

func (s *Selection) Eval(dst function.MutableVector, x function.Vector) error {
	if err := function.CheckEval(s, dst, x); err != nil {
		return err
	}
	full := newScratch(s.f.Kind(), s.f.OutputSize())
	if err := s.f.Eval(full, x); err != nil {
		return err
	}
	for i := 0; i < s.OutputSize(); i++ {
		dst.Set(i, full.At(s.start+i))
	}
	return nil
}

func (s *Selection) Gradient(dst function.MutableVector, x function.Vector, row int) error {
	if err := function.CheckGradient(s, dst, x, row); err != nil {
		return err
	}
	return function.MustDifferentiable(s.f).Gradient(dst, x, s.start+row)
}

func (s *Selection) Jacobian(dst function.Builder, x function.Vector) error {
	return function.DefaultJacobian(s, dst, x)
}

func (s *Selection) Hessian(dst function.Builder, x function.Vector, row int) error {
	if err := function.CheckHessian(s, dst, x, row); err != nil {
		return err
	}
	td, ok := function.AsTwiceDifferentiable(s.f)
	if !ok {
		return errNotTwiceDifferentiable(s.f)
	}
	return td.Hessian(dst, x, s.start+row)
}
