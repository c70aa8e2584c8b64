package function

import "github.com/pkg/errors"

// Shape-mismatch errors are assertion-grade programming errors per
// spec.md §7: callers are expected to fail fast rather than recover, but
// the core still returns them as values (never panics on a public entry
// point) so that host applications can decide how to fail.
var (
	// ErrArgumentSize is returned when an argument's length does not
	// match a function's declared input size.
	ErrArgumentSize = errors.New("function: argument length does not match input size")
	// ErrOutputSize is returned when an output buffer's shape does not
	// match a function's declared output size.
	ErrOutputSize = errors.New("function: output buffer shape does not match declared output")
	// ErrUnsupportedCapability reports that a requested capability is not
	// declared in a function's tag set. The cast helpers (AsDifferentiable,
	// AsLinear, ...) do not return it; they report that case with
	// ok == false.
	ErrUnsupportedCapability = errors.New("function: capability not declared in tag set")
)

func checkArgument(f Function, x Vector) error {
	if x.Len() != f.InputSize() {
		return errors.Wrapf(ErrArgumentSize, "%s: got %d, want %d", f.Name(), x.Len(), f.InputSize())
	}
	return nil
}

func checkOutput(f Function, dst Vector) error {
	if dst.Len() != f.OutputSize() {
		return errors.Wrapf(ErrOutputSize, "%s: got %d, want %d", f.Name(), dst.Len(), f.OutputSize())
	}
	return nil
}
