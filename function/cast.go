package function

// Polymorphic access: spec.md §4.1 "Polymorphic access" replaces the
// conventional downcast-by-type pattern with a typed cast that checks
// the tag set before asserting the concrete interface, so a caller can
// never observe a capability the function didn't declare even if the
// underlying Go type happens to implement the narrower interface.

// AsDifferentiable returns f viewed as Differentiable if it declares
// TagDifferentiable (or a super-set), and ok == true. Otherwise it
// returns (nil, false) rather than panicking, matching the "fails by
// sentinel" option in spec.md §4.1.
func AsDifferentiable(f Function) (Differentiable, bool) {
	if !f.Tags().Has(TagDifferentiable) {
		return nil, false
	}
	d, ok := f.(Differentiable)
	return d, ok
}

// AsTwiceDifferentiable returns f viewed as TwiceDifferentiable if it
// declares TagTwiceDifferentiable.
func AsTwiceDifferentiable(f Function) (TwiceDifferentiable, bool) {
	if !f.Tags().Has(TagTwiceDifferentiable) {
		return nil, false
	}
	td, ok := f.(TwiceDifferentiable)
	return td, ok
}

// AsLinear returns f viewed as Linear if it declares TagLinear.
func AsLinear(f Function) (Linear, bool) {
	if !f.Tags().Has(TagLinear) {
		return nil, false
	}
	l, ok := f.(Linear)
	return l, ok
}

// AsQuadratic returns f viewed as Quadratic if it declares TagQuadratic.
func AsQuadratic(f Function) (Quadratic, bool) {
	if !f.Tags().Has(TagQuadratic) {
		return nil, false
	}
	q, ok := f.(Quadratic)
	return q, ok
}

// MustDifferentiable is AsDifferentiable but panics (the "explicit
// exception" option of spec.md §4.1) instead of returning ok == false;
// intended for call sites where the capability is a precondition
// already checked by the caller (e.g. a problem invariant).
func MustDifferentiable(f Function) Differentiable {
	d, ok := AsDifferentiable(f)
	if !ok {
		panic("function: " + f.Name() + " does not declare " + TagDifferentiable.String())
	}
	return d
}
