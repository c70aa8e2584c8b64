package problem

import "github.com/pkg/errors"

// Invariant-violation errors raised at the mutation call site (spec.md
// §7, "Invariant violation on the problem ... raised as a recoverable
// error"), unlike the function package's shape mismatches which are
// assertion-grade.
var (
	// ErrInputSizeMismatch is returned by AddConstraint when the
	// constraint's input size does not match the cost function's.
	ErrInputSizeMismatch = errors.New("problem: constraint input size does not match cost input size")
	// ErrUnsupportedConstraintFamily is returned by AddConstraint when
	// the constraint matches neither alternative of the declared
	// constraint family.
	ErrUnsupportedConstraintFamily = errors.New("problem: constraint does not match the declared constraint family")
	// ErrBoundsSizeMismatch is returned when a bounds or scaling vector
	// attached to a constraint does not match its output size.
	ErrBoundsSizeMismatch = errors.New("problem: bounds/scaling vector size does not match constraint output size")
	// ErrInvalidInterval is returned when an interval has Lower > Upper.
	ErrInvalidInterval = errors.New("problem: interval lower bound exceeds upper bound")
	// ErrInvalidScaling is returned when a constraint scaling entry is not
	// finite and strictly positive, or an argument scaling entry is not
	// finite and non-zero.
	ErrInvalidScaling = errors.New("problem: scaling entry must be finite and non-zero (positive for a constraint)")
	// ErrStartingPointSize is returned when a starting point's length
	// does not match the cost function's input size.
	ErrStartingPointSize = errors.New("problem: starting point length does not match input size")
	// ErrArgumentNamesSize is returned when the argument-names slice's
	// length does not match the cost function's input size.
	ErrArgumentNamesSize = errors.New("problem: argument names length does not match input size")
	// ErrIndexOutOfRange is returned by per-argument bound/scaling
	// setters when the index is outside [0, n).
	ErrIndexOutOfRange = errors.New("problem: argument index out of range")
)
