package analyzer

import "gonum.org/v1/gonum/mat"

// rankTolerance is the rcond passed to gonum's SVD.Rank: singular values
// below rankTolerance times the largest one count as zero.
const rankTolerance = 1e-10

// rank computes the rank of the dense m x n matrix rows via a
// pivoted, rank-revealing decomposition. spec.md §4.5 calls for a
// "pivoted decomposition (dense: full-pivoted LU; sparse: sparse QR)";
// gonum's mat package exposes no rank accessor on LU or QR, only on
// SVD, so SVD (itself pivoted/rank-revealing, and the textbook way to
// compute numerical rank) is used for both dense and (after
// densification) sparse input — see DESIGN.md.
func rank(rows [][]float64) int {
	m := len(rows)
	if m == 0 {
		return 0
	}
	n := len(rows[0])
	flat := make([]float64, 0, m*n)
	for _, row := range rows {
		flat = append(flat, row...)
	}
	a := mat.NewDense(m, n, flat)

	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDNone) {
		return 0
	}
	return svd.Rank(rankTolerance)
}
