package function

import "github.com/roboptim/core-go/matrix"

// Base implements the Function methods common to every concrete type
// and combinator: immutable sizes, an optional display name, a
// regularity tag set, and a storage Kind. Concrete types embed Base and
// add Eval (and, where applicable, Gradient/Jacobian/Hessian).
type Base struct {
	inputSize  int
	outputSize int
	name       string
	tags       Tag
	kind       matrix.Kind
}

// NewBase constructs a Base. inputSize and outputSize must be positive;
// NewBase panics otherwise, since a function with n <= 0 or m <= 0 is a
// construction-time programming error, not a recoverable condition.
func NewBase(inputSize, outputSize int, name string, tags Tag, kind matrix.Kind) Base {
	if inputSize <= 0 {
		panic("function: input size must be positive")
	}
	if outputSize <= 0 {
		panic("function: output size must be positive")
	}
	return Base{inputSize: inputSize, outputSize: outputSize, name: name, tags: tags, kind: kind}
}

func (b Base) InputSize() int     { return b.inputSize }
func (b Base) OutputSize() int    { return b.outputSize }
func (b Base) Name() string       { return b.name }
func (b Base) Tags() Tag          { return b.tags }
func (b Base) Kind() matrix.Kind  { return b.kind }
