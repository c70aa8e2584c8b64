package analyzer

// NullGradientRow identifies one active constraint row whose gradient
// norm is below epsilon.
type NullGradientRow struct {
	ConstraintIndex int
	Row             int
}

// NullGradientResult reports the rows of the active Jacobian whose norm
// falls below epsilon (spec.md §4.5 "Null-gradient"). Argument-bound
// rows are never reported: their Jacobian row is always the unit vector
// e_i, which never has zero norm.
type NullGradientResult struct {
	Rows []NullGradientRow
}

// CheckNullGradient finds active constraint rows with near-zero
// gradient norm.
func (a *Analyzer) CheckNullGradient() NullGradientResult {
	rows := a.activeRows()
	jac := a.activeJacobian(rows)

	var out NullGradientResult
	for i, r := range rows {
		if r.isBound {
			continue
		}
		if norm2(jac[i]) < a.eps {
			out.Rows = append(out.Rows, NullGradientRow{ConstraintIndex: r.constraintIndex, Row: r.row})
		}
	}
	return out
}
