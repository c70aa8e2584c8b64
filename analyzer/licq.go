package analyzer

// LICQResult reports the Linear Independence Constraint Qualification
// check of spec.md §4.5: LICQ holds iff the rank of the active-
// constraint Jacobian equals the number of active rows.
type LICQResult struct {
	Rank    int
	MaxRank int
}

// Valid reports whether LICQ holds.
func (r LICQResult) Valid() bool { return r.Rank == r.MaxRank }

// CheckLICQ computes the LICQ diagnostic.
func (a *Analyzer) CheckLICQ() LICQResult {
	rows := a.activeRows()
	jac := a.activeJacobian(rows)
	return LICQResult{Rank: rank(jac), MaxRank: len(rows)}
}
