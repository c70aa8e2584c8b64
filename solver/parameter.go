// Package solver implements the solver dispatch layer of spec.md §4.4:
// SolverState, Result, the Solver interface, the closed Parameter value
// union, and the optimization logger collaborator.
package solver

import "fmt"

// paramKind discriminates the closed value union a Parameter may hold
// (spec.md §3 "free-form key→value parameter map", §4.4 "typed
// parameter map (string → value where value ∈ {double, vector, int,
// string, bool})").
type paramKind int

const (
	kindFloat64 paramKind = iota
	kindVector
	kindInt
	kindString
	kindBool
)

// Parameter is a single entry of the solver/state parameter map: a
// human description plus a value drawn from the closed union
// {float64, []float64, int, string, bool}, mirroring the original's
// boost::variant.
type Parameter struct {
	Description string

	kind paramKind
	f    float64
	vec  []float64
	i    int
	s    string
	b    bool
}

// Float64Parameter constructs a float64-valued Parameter.
func Float64Parameter(v float64, description string) Parameter {
	return Parameter{Description: description, kind: kindFloat64, f: v}
}

// VectorParameter constructs a []float64-valued Parameter.
func VectorParameter(v []float64, description string) Parameter {
	return Parameter{Description: description, kind: kindVector, vec: append([]float64(nil), v...)}
}

// IntParameter constructs an int-valued Parameter.
func IntParameter(v int, description string) Parameter {
	return Parameter{Description: description, kind: kindInt, i: v}
}

// StringParameter constructs a string-valued Parameter.
func StringParameter(v string, description string) Parameter {
	return Parameter{Description: description, kind: kindString, s: v}
}

// BoolParameter constructs a bool-valued Parameter.
func BoolParameter(v bool, description string) Parameter {
	return Parameter{Description: description, kind: kindBool, b: v}
}

// Float64 returns the parameter's value if it holds a float64.
func (p Parameter) Float64() (float64, bool) { return p.f, p.kind == kindFloat64 }

// Vector returns the parameter's value if it holds a []float64.
func (p Parameter) Vector() ([]float64, bool) { return p.vec, p.kind == kindVector }

// Int returns the parameter's value if it holds an int.
func (p Parameter) Int() (int, bool) { return p.i, p.kind == kindInt }

// StringValue returns the parameter's value if it holds a string.
func (p Parameter) StringValue() (string, bool) { return p.s, p.kind == kindString }

// Bool returns the parameter's value if it holds a bool.
func (p Parameter) Bool() (bool, bool) { return p.b, p.kind == kindBool }

// String renders the parameter's concrete value for diagnostics.
func (p Parameter) String() string {
	switch p.kind {
	case kindFloat64:
		return fmt.Sprintf("%g", p.f)
	case kindVector:
		return fmt.Sprintf("%v", p.vec)
	case kindInt:
		return fmt.Sprintf("%d", p.i)
	case kindString:
		return p.s
	case kindBool:
		return fmt.Sprintf("%t", p.b)
	default:
		return "<unset>"
	}
}

// Parameters is the solver's typed parameter map (spec.md §4.4). A
// solver reads parameters it understands on entry to Solve and must not
// require unknown keys.
type Parameters map[string]Parameter

// MaxIterationsKey is the single well-known shared key (spec.md §4.4,
// §6), an int, default per backend.
const MaxIterationsKey = "max-iterations"

// MaxIterations reads MaxIterationsKey from params, returning def if
// absent or of the wrong type.
func MaxIterations(params Parameters, def int) int {
	p, ok := params[MaxIterationsKey]
	if !ok {
		return def
	}
	v, ok := p.Int()
	if !ok {
		return def
	}
	return v
}

// StopKey is the boolean state-map entry a callback may set to request
// that the backend halt at the next iteration boundary (spec.md §5
// "Cancellation and timeouts"). Honoring it is a backend property, not
// a core guarantee.
const StopKey = "stop"
