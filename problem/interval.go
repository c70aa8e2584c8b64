// Package problem implements the data aggregate of spec.md §3 "Problem"
// and §4.3: a cost function, a tagged-union list of constraints, their
// bounds/scaling, argument bounds/scaling, an optional starting point
// and argument names, plus the invariants enforced on every mutation
// and the human-readable textual form of spec.md §6.
package problem

import "math"

// Infinity is the sentinel value printed on the last line of
// Problem.String (spec.md §6, "the sentinel infinity value"). Unbounded
// interval sides are ±Inf and print as -inf/+inf.
const Infinity = math.MaxFloat64

// Interval is an ordered pair (Lower, Upper) with Lower <= Upper; ±Inf
// disables a side (spec.md §3 "Interval and bounds").
type Interval struct {
	Lower, Upper float64
}

// NewInterval constructs an Interval, panicking if lower > upper: an
// inverted interval can never be satisfied and is a construction-time
// programming error, not a recoverable condition.
func NewInterval(lower, upper float64) Interval {
	if lower > upper {
		panic("problem: inverted interval (lower > upper)")
	}
	return Interval{Lower: lower, Upper: upper}
}

// Unbounded is the default argument interval (−∞, +∞).
func Unbounded() Interval {
	return Interval{Lower: math.Inf(-1), Upper: math.Inf(1)}
}

// Valid reports whether i.Lower <= i.Upper.
func (i Interval) Valid() bool {
	return i.Lower <= i.Upper
}

// Contains reports whether v lies within [i.Lower, i.Upper].
func (i Interval) Contains(v float64) bool {
	return v >= i.Lower && v <= i.Upper
}

// DiscreteInterval is an Interval additionally constrained to a grid of
// the given positive Step (spec.md §3 "A discrete interval is (ℓ, u,
// step) with step > 0").
type DiscreteInterval struct {
	Interval
	Step float64
}

// NewDiscreteInterval constructs a DiscreteInterval, panicking if the
// bounds are inverted or step is not strictly positive.
func NewDiscreteInterval(lower, upper, step float64) DiscreteInterval {
	if step <= 0 {
		panic("problem: discrete interval step must be positive")
	}
	return DiscreteInterval{Interval: NewInterval(lower, upper), Step: step}
}
