package function

// precisionRank assigns each regularity class an integer rank following
// the original's PrecisionTrait
// (_examples/original_source/include/roboptim/core/detail/autopromote.hh):
// plain Function = 1, Differentiable = 2, {TwiceDifferentiable,
// Quadratic} = 3, Linear = 4. A combinator's promoted tag is the
// operand with the LOWER rank — the weaker, more general capability —
// not the higher one; spec.md §4.1 calls this "the auto-promoted
// minimum regularity of its operands".
//
// Before ranking, a few concrete types auto-promote to their parent
// class: NumericLinearFunction/ConstantFunction/IdentityFunction rank as
// Linear, and NumericQuadraticFunction ranks as Quadratic, matching the
// original's ROBOPTIM_CORE_DECLARE_AUTOPROMOTE table.
func precisionRank(t Tag) int {
	switch {
	case t.Has(TagLinear):
		return 4
	case t.Has(TagQuadratic), t.Has(TagTwiceDifferentiable):
		return 3
	case t.Has(TagDifferentiable):
		return 2
	default:
		return 1
	}
}

// Promote returns the regularity tag a combinator over operands tagged a
// and b should declare: the capability bits of whichever operand has the
// lower precision rank, with TagConstant/TagIdentity/TagPolynomial
// stripped (a combinator of two constants is not itself marked constant).
func Promote(a, b Tag) Tag {
	ra, rb := precisionRank(a), precisionRank(b)
	weaker, minRank := a, ra
	if rb < ra {
		weaker, minRank = b, rb
	}
	return (rankToCapabilityMask(minRank) & weaker &^ (TagConstant | TagIdentity | TagPolynomial)) | TagContinuous
}

// rankToCapabilityMask returns the capability bits implied by a
// precision rank, used to mask out any stray higher-capability bits a
// caller's tag set might still carry after a promotion.
func rankToCapabilityMask(rank int) Tag {
	switch rank {
	case 4:
		return TagContinuous | TagDifferentiable | TagTwiceDifferentiable | TagLinear | TagQuadratic | TagConstant | TagPolynomial | TagIdentity
	case 3:
		return TagContinuous | TagDifferentiable | TagTwiceDifferentiable | TagQuadratic
	case 2:
		return TagContinuous | TagDifferentiable
	default:
		return TagContinuous
	}
}
