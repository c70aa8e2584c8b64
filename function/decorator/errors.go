package decorator

import (
	"github.com/pkg/errors"

	"github.com/roboptim/core-go/function"
)

var errHessianUnsupported = errors.New("decorator: wrapped function is not twice-differentiable")

func errNotTwiceDifferentiable(f function.Function) error {
	return errors.Wrapf(errHessianUnsupported, "%s", f.Name())
}
