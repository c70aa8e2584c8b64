// Package function implements the regularity-tagged function algebra of
// spec.md §3–4.1: a minimal Function contract plus the Differentiable,
// TwiceDifferentiable, Linear and Quadratic capability interfaces, their
// numeric concrete realizations, and the public evaluation protocol
// (argument/output shape validation around every call).
//
// Every Function is generic over matrix.Kind (spec.md's "storage
// trait"): a concrete function declares the Kind of vectors and matrices
// it produces, and combinators in function/operator refuse to mix Kinds
// (their constructors panic on a mismatch), so the trait propagates through a pipeline
// without silently narrowing sparse to dense.
package function

import (
	"github.com/pkg/errors"

	"github.com/roboptim/core-go/matrix"
)

// Vector and Matrix are aliased from the matrix package so that function
// algebra signatures read without the matrix. qualifier on every line,
// matching the original's use of bare vector_t/jacobian_t typedefs.
type (
	Vector        = matrix.Vector
	MutableVector = matrix.MutableVector
	Matrix        = matrix.Matrix
	Builder       = matrix.Builder
)

// Function is the minimal contract every concrete function, combinator
// and decorator implements (spec.md §3 "Function").
type Function interface {
	// InputSize is the immutable argument length n > 0.
	InputSize() int
	// OutputSize is the immutable output length m > 0.
	OutputSize() int
	// Name is an optional display name; "" if unset.
	Name() string
	// Tags reports the declared regularity class bitfield.
	Tags() Tag
	// Kind reports the storage trait (dense or sparse) this function's
	// outputs are expressed in.
	Kind() matrix.Kind
	// Eval computes f(x) into dst. Implementations must not retain or
	// mutate x, and must treat dst as borrowed for the duration of the
	// call only (spec.md §5, "Scoped acquisition rules"). Returns
	// ErrArgumentSize/ErrOutputSize on shape mismatch without invoking
	// the concrete implementation.
	Eval(dst MutableVector, x Vector) error
}

// Differentiable is a Function additionally exposing a per-row gradient
// and the Jacobian they assemble into (spec.md §3
// "DifferentiableFunction").
type Differentiable interface {
	Function

	// Gradient computes the gradient of output row `row` (length
	// InputSize()) into dst.
	Gradient(dst MutableVector, x Vector, row int) error

	// Jacobian computes the full OutputSize x InputSize Jacobian into
	// dst. The default behavior (DefaultJacobian) concatenates
	// per-row gradients; a concrete type may override it with a direct
	// computation.
	Jacobian(dst Builder, x Vector) error
}

// TwiceDifferentiable additionally exposes a per-row, symmetric Hessian
// (spec.md §3 "TwiceDifferentiableFunction"). There is no default
// implementation: every concrete type must supply one.
type TwiceDifferentiable interface {
	Differentiable

	// Hessian computes the InputSize x InputSize Hessian of output row
	// `row` into dst. Implementations may compute either triangle but
	// must return a symmetric matrix.
	Hessian(dst Builder, x Vector, row int) error
}

// Linear is a TwiceDifferentiable function whose Hessian is identically
// zero (spec.md §3 "LinearFunction").
type Linear interface {
	TwiceDifferentiable
}

// Quadratic is a scalar-valued (OutputSize() == 1) TwiceDifferentiable
// function whose Hessian is constant (spec.md §3 "QuadraticFunction").
type Quadratic interface {
	TwiceDifferentiable
}

// CheckEval validates that x and dst match f's declared sizes. Concrete
// Eval implementations call this first and return its error unchanged,
// implementing steps 1-2 of the evaluation protocol in spec.md §4.1;
// step 5 (re-validation) is the caller's own invariant since dst's shape
// cannot change during the call.
func CheckEval(f Function, dst Vector, x Vector) error {
	if err := checkArgument(f, x); err != nil {
		return err
	}
	return checkOutput(f, dst)
}

// CheckGradient validates a Gradient call's shapes and row index.
func CheckGradient(f Differentiable, dst Vector, x Vector, row int) error {
	if err := checkArgument(f, x); err != nil {
		return err
	}
	if row < 0 || row >= f.OutputSize() {
		return errors.Errorf("function: %s: gradient row %d out of range [0,%d)", f.Name(), row, f.OutputSize())
	}
	if dst.Len() != f.InputSize() {
		return errors.Wrapf(ErrOutputSize, "%s: gradient length %d, want %d", f.Name(), dst.Len(), f.InputSize())
	}
	return nil
}

// CheckJacobian validates a Jacobian call's shapes.
func CheckJacobian(f Differentiable, dst Builder, x Vector) error {
	if err := checkArgument(f, x); err != nil {
		return err
	}
	rows, cols := dst.Dims()
	if rows != f.OutputSize() || cols != f.InputSize() {
		return errors.Wrapf(ErrOutputSize, "%s: jacobian shape (%d,%d), want (%d,%d)",
			f.Name(), rows, cols, f.OutputSize(), f.InputSize())
	}
	return nil
}

// CheckHessian validates a Hessian call's shapes and row index.
func CheckHessian(f TwiceDifferentiable, dst Builder, x Vector, row int) error {
	if err := checkArgument(f, x); err != nil {
		return err
	}
	if row < 0 || row >= f.OutputSize() {
		return errors.Errorf("function: %s: hessian row %d out of range [0,%d)", f.Name(), row, f.OutputSize())
	}
	rows, cols := dst.Dims()
	if rows != f.InputSize() || cols != f.InputSize() {
		return errors.Wrapf(ErrOutputSize, "%s: hessian shape (%d,%d), want (%d,%d)",
			f.Name(), rows, cols, f.InputSize(), f.InputSize())
	}
	return nil
}

// DefaultJacobian builds the Jacobian of f at x by concatenating its
// per-row gradients, the default spelled out in spec.md §4.1. Concrete
// types whose Jacobian method delegates here must not also call
// CheckJacobian themselves a second time.
func DefaultJacobian(f Differentiable, dst Builder, x Vector) error {
	if err := CheckJacobian(f, dst, x); err != nil {
		return err
	}
	grad := matrix.NewVector(f.Kind(), f.InputSize())
	for row := 0; row < f.OutputSize(); row++ {
		if err := f.Gradient(grad, x, row); err != nil {
			return err
		}
		for col := 0; col < f.InputSize(); col++ {
			dst.Set(row, col, grad.At(col))
		}
	}
	return nil
}
