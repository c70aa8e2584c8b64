package problem

import (
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/roboptim/core-go/function"
	"github.com/roboptim/core-go/matrix"
)

// Problem is the data aggregate of spec.md §3 "Problem": a reference to
// a scalar-valued cost function, a tagged-union list of constraints with
// their per-constraint bounds/scaling, an argument-bounds/scaling pair
// and an optional starting point and argument names. Problems are
// monotonically grown (spec.md §4.3, "removal is not supported") then
// frozen at solve time; Problem itself enforces no solve-time freeze,
// that discipline belongs to the caller per spec.md §5.
type Problem struct {
	cost function.Function
	n    int

	constraints       []Constraint
	constraintBounds  [][]Interval
	constraintScaling [][]float64

	argBounds  []Interval
	argScaling []float64

	startingPoint []float64
	argumentNames []string
}

// New constructs a Problem around cost, which must be scalar-valued
// (OutputSize() == 1); New panics otherwise, since a non-scalar cost is
// a construction-time programming error (spec.md §3, "a reference-to-
// cost function (scalar-valued: m = 1 for the cost)"). Argument bounds
// default to (−∞, +∞) and argument scaling to 1, one per input
// dimension.
func New(cost function.Function) *Problem {
	if cost.OutputSize() != 1 {
		panic("problem: cost function must be scalar-valued (m = 1)")
	}
	n := cost.InputSize()
	bounds := make([]Interval, n)
	scaling := make([]float64, n)
	for i := range bounds {
		bounds[i] = Unbounded()
		scaling[i] = 1
	}
	return &Problem{
		cost:       cost,
		n:          n,
		argBounds:  bounds,
		argScaling: scaling,
	}
}

// Cost returns the problem's cost function.
func (p *Problem) Cost() function.Function { return p.cost }

// ProblemFingerprint is the Go-idiomatic substitute for the C++ plugin
// ABI's `sizeof(problem_t)` comparison (spec.md §6 "Compatibility
// check"): since Go plugins share no stable struct layout across the
// boundary, the loader instead compares this string, derived from the
// problem's shape (input size and per-constraint output sizes), against
// the value the plugin reports for the problem type it was compiled
// against.
func (p *Problem) ProblemFingerprint() string {
	shape := make([]int, len(p.constraints))
	for i, c := range p.constraints {
		shape[i] = c.Function().OutputSize()
	}
	return fmt.Sprintf("roboptim-problem:n=%d,constraints=%v", p.n, shape)
}

// InputSize is the cost function's input size n, shared by every
// constraint, the argument bounds/scaling, and the starting point.
func (p *Problem) InputSize() int { return p.n }

// Constraints returns the constraint list in addition order. The
// package's own walkers (String, ProblemFingerprint) use each entry's
// Function() accessor and do not switch on the concrete alternative.
func (p *Problem) Constraints() []Constraint { return p.constraints }

// ConstraintBounds returns the bounds vector attached to constraint i.
func (p *Problem) ConstraintBounds(i int) []Interval { return p.constraintBounds[i] }

// ConstraintScaling returns the scaling vector attached to constraint i.
func (p *Problem) ConstraintScaling(i int) []float64 { return p.constraintScaling[i] }

// AddConstraint appends fn to the constraint list with the given per-
// row bounds and scaling, an O(1) operation performing: type-
// compatibility check against the declared constraint family, shape
// checks against fn's output size, and bound/scale validity checks
// (spec.md §4.3). Removal is never offered.
func (p *Problem) AddConstraint(fn function.Differentiable, bounds []Interval, scaling []float64) error {
	if fn.InputSize() != p.n {
		return errors.Wrapf(ErrInputSizeMismatch, "got %d, want %d", fn.InputSize(), p.n)
	}
	m := fn.OutputSize()
	if len(bounds) != m {
		return errors.Wrapf(ErrBoundsSizeMismatch, "bounds length %d, want %d", len(bounds), m)
	}
	if len(scaling) != m {
		return errors.Wrapf(ErrBoundsSizeMismatch, "scaling length %d, want %d", len(scaling), m)
	}
	for i, iv := range bounds {
		if !iv.Valid() {
			return errors.Wrapf(ErrInvalidInterval, "row %d: [%g,%g]", i, iv.Lower, iv.Upper)
		}
	}
	for i, s := range scaling {
		if math.IsNaN(s) || math.IsInf(s, 0) || s <= 0 {
			return errors.Wrapf(ErrInvalidScaling, "row %d: %g", i, s)
		}
	}
	c, ok := wrapConstraint(fn)
	if !ok {
		return errors.Wrapf(ErrUnsupportedConstraintFamily, "%s declares %s", fn.Name(), fn.Tags())
	}

	p.constraints = append(p.constraints, c)
	p.constraintBounds = append(p.constraintBounds, append([]Interval(nil), bounds...))
	p.constraintScaling = append(p.constraintScaling, append([]float64(nil), scaling...))
	return nil
}

// ArgumentBounds returns the argument-bounds vector, length n.
func (p *Problem) ArgumentBounds() []Interval { return p.argBounds }

// SetArgumentBound replaces the interval at index i.
func (p *Problem) SetArgumentBound(i int, iv Interval) error {
	if i < 0 || i >= p.n {
		return errors.Wrapf(ErrIndexOutOfRange, "index %d, size %d", i, p.n)
	}
	if !iv.Valid() {
		return errors.Wrapf(ErrInvalidInterval, "[%g,%g]", iv.Lower, iv.Upper)
	}
	p.argBounds[i] = iv
	return nil
}

// ArgumentScaling returns the argument-scaling vector, length n.
func (p *Problem) ArgumentScaling() []float64 { return p.argScaling }

// SetArgumentScaling replaces the scaling entry at index i; it must be
// finite and non-zero (spec.md §3 invariant).
func (p *Problem) SetArgumentScaling(i int, v float64) error {
	if i < 0 || i >= p.n {
		return errors.Wrapf(ErrIndexOutOfRange, "index %d, size %d", i, p.n)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v == 0 {
		return errors.Wrapf(ErrInvalidScaling, "%g", v)
	}
	p.argScaling[i] = v
	return nil
}

// StartingPoint returns the starting point and whether one is set.
func (p *Problem) StartingPoint() ([]float64, bool) {
	if p.startingPoint == nil {
		return nil, false
	}
	return p.startingPoint, true
}

// SetStartingPoint sets the starting point, which must have length n.
func (p *Problem) SetStartingPoint(x []float64) error {
	if len(x) != p.n {
		return errors.Wrapf(ErrStartingPointSize, "got %d, want %d", len(x), p.n)
	}
	p.startingPoint = append([]float64(nil), x...)
	return nil
}

// ArgumentNames returns the argument names and whether they are set.
func (p *Problem) ArgumentNames() ([]string, bool) {
	if p.argumentNames == nil {
		return nil, false
	}
	return p.argumentNames, true
}

// SetArgumentNames sets the optional per-argument display names, which
// must have length n.
func (p *Problem) SetArgumentNames(names []string) error {
	if len(names) != p.n {
		return errors.Wrapf(ErrArgumentNamesSize, "got %d, want %d", len(names), p.n)
	}
	p.argumentNames = append([]string(nil), names...)
	return nil
}

// String renders the problem's textual form (spec.md §6 "Problem
// textual form"): header, cost, argument bounds/scaling, constraint
// count, a block per constraint, starting point/value if present, and
// the infinity sentinel.
func (p *Problem) String() string {
	var b strings.Builder
	b.WriteString("Problem:\n")
	fmt.Fprintf(&b, "  %s\n", describeFunction(p.cost))
	fmt.Fprintf(&b, "  Argument's bounds: %s\n", formatIntervals(p.argBounds))
	fmt.Fprintf(&b, "  Argument's scales: %v\n", p.argScaling)

	if len(p.constraints) == 0 {
		b.WriteString("  No constraints.\n")
	} else {
		fmt.Fprintf(&b, "  Number of constraints: %d\n", len(p.constraints))
	}

	start, hasStart := p.StartingPoint()
	for i, c := range p.constraints {
		fn := c.Function()
		fmt.Fprintf(&b, "  Constraint %d:\n", i)
		fmt.Fprintf(&b, "    %s\n", describeFunction(fn))
		fmt.Fprintf(&b, "    Bounds: %s\n", formatIntervals(p.constraintBounds[i]))
		fmt.Fprintf(&b, "    Scales: %v\n", p.constraintScaling[i])
		if hasStart {
			val := matrix.NewVector(fn.Kind(), fn.OutputSize())
			arg := matrix.NewDenseVectorFromSlice(start)
			if err := fn.Eval(val, arg); err == nil {
				satisfied := true
				for j := 0; j < fn.OutputSize(); j++ {
					if !p.constraintBounds[i][j].Contains(val.At(j)) {
						satisfied = false
						break
					}
				}
				note := ""
				if !satisfied {
					note = " (not satisfied)"
				}
				fmt.Fprintf(&b, "    Initial value: %s%s\n", formatVector(val), note)
			}
		}
	}

	if hasStart {
		costVal := matrix.NewVector(p.cost.Kind(), 1)
		arg := matrix.NewDenseVectorFromSlice(start)
		fmt.Fprintf(&b, "  Starting point: %v\n", start)
		if err := p.cost.Eval(costVal, arg); err == nil {
			fmt.Fprintf(&b, "  Starting value: %g\n", costVal.At(0))
		}
	} else {
		b.WriteString("  No starting point.\n")
	}

	fmt.Fprintf(&b, "  Infinity value (for all functions): %g\n", Infinity)
	return b.String()
}

// Validate walks every invariant Problem otherwise enforces piecemeal at
// mutation time — argument bounds/scaling, per-constraint bounds/
// scaling, and the starting point, if set — and returns every violation
// found rather than only the first, since a caller preparing to hand a
// Problem to a solver plugin wants the full defect list in one pass, not
// a fix-one-rerun-discover-the-next loop.
func (p *Problem) Validate() error {
	var errs error
	for i, iv := range p.argBounds {
		if !iv.Valid() {
			errs = multierr.Append(errs, errors.Wrapf(ErrInvalidInterval, "argument %d: [%g,%g]", i, iv.Lower, iv.Upper))
		}
	}
	for i, s := range p.argScaling {
		if math.IsNaN(s) || math.IsInf(s, 0) || s == 0 {
			errs = multierr.Append(errs, errors.Wrapf(ErrInvalidScaling, "argument %d: %g", i, s))
		}
	}
	for ci, bounds := range p.constraintBounds {
		for i, iv := range bounds {
			if !iv.Valid() {
				errs = multierr.Append(errs, errors.Wrapf(ErrInvalidInterval, "constraint %d row %d: [%g,%g]", ci, i, iv.Lower, iv.Upper))
			}
		}
	}
	for ci, scaling := range p.constraintScaling {
		for i, s := range scaling {
			if math.IsNaN(s) || math.IsInf(s, 0) || s <= 0 {
				errs = multierr.Append(errs, errors.Wrapf(ErrInvalidScaling, "constraint %d row %d: %g", ci, i, s))
			}
		}
	}
	if p.startingPoint != nil && len(p.startingPoint) != p.n {
		errs = multierr.Append(errs, errors.Wrapf(ErrStartingPointSize, "got %d, want %d", len(p.startingPoint), p.n))
	}
	return errs
}

func describeFunction(f function.Function) string {
	name := f.Name()
	if name == "" {
		name = "<unnamed>"
	}
	return fmt.Sprintf("%s (n=%d, m=%d, tags=%s)", name, f.InputSize(), f.OutputSize(), f.Tags())
}

func formatIntervals(ivs []Interval) string {
	parts := make([]string, len(ivs))
	for i, iv := range ivs {
		parts[i] = fmt.Sprintf("[%s,%s]", formatBound(iv.Lower), formatBound(iv.Upper))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func formatBound(v float64) string {
	switch {
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsInf(v, 1):
		return "+inf"
	default:
		return fmt.Sprintf("%g", v)
	}
}

func formatVector(v matrix.Vector) string {
	out := make([]string, v.Len())
	for i := range out {
		out[i] = fmt.Sprintf("%g", v.At(i))
	}
	return "(" + strings.Join(out, ", ") + ")"
}
