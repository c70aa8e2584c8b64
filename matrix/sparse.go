package matrix

import "sort"

// SparseVector stores only its explicitly-set entries.
type SparseVector struct {
	n       int
	entries map[int]float64
}

// NewSparseVector allocates an all-zero sparse vector of length n.
func NewSparseVector(n int) *SparseVector {
	return &SparseVector{n: n, entries: make(map[int]float64)}
}

// NewSparseVectorFromSlice builds a sparse vector from dense data,
// storing only the nonzero entries.
func NewSparseVectorFromSlice(data []float64) *SparseVector {
	v := NewSparseVector(len(data))
	for i, val := range data {
		v.Set(i, val)
	}
	return v
}

func (v *SparseVector) Len() int   { return v.n }
func (v *SparseVector) Kind() Kind { return Sparse }

func (v *SparseVector) At(i int) float64 {
	return v.entries[i]
}

// Set stores val at i. Setting exactly zero removes the entry, keeping
// the triplet set minimal.
func (v *SparseVector) Set(i int, val float64) {
	if val == 0 {
		delete(v.entries, i)
		return
	}
	v.entries[i] = val
}

func (v *SparseVector) Slice() []float64 {
	out := make([]float64, v.n)
	for i, val := range v.entries {
		out[i] = val
	}
	return out
}

// NNZ returns the number of explicitly-stored nonzero entries.
func (v *SparseVector) NNZ() int { return len(v.entries) }

// Triplet is a single (row, col, value) sparse matrix entry.
type Triplet struct {
	Row, Col int
	Value    float64
}

// SparseMatrix is a triplet (COO) backed matrix. Entries are
// deduplicated by (row, col) on Set; iteration order from Triplets is
// row-major for determinism.
type SparseMatrix struct {
	rows, cols int
	entries    map[[2]int]float64
}

// NewSparseMatrix allocates an all-zero sparse matrix of the given
// shape.
func NewSparseMatrix(rows, cols int) *SparseMatrix {
	return &SparseMatrix{rows: rows, cols: cols, entries: make(map[[2]int]float64)}
}

func (m *SparseMatrix) Dims() (int, int) { return m.rows, m.cols }
func (m *SparseMatrix) Kind() Kind       { return Sparse }

func (m *SparseMatrix) At(i, j int) float64 {
	return m.entries[[2]int{i, j}]
}

// Set stores v at (i, j); storing exactly zero removes the triplet.
func (m *SparseMatrix) Set(i, j int, v float64) {
	key := [2]int{i, j}
	if v == 0 {
		delete(m.entries, key)
		return
	}
	m.entries[key] = v
}

// NNZ returns the number of stored nonzero triplets.
func (m *SparseMatrix) NNZ() int { return len(m.entries) }

// Triplets returns the stored entries in row-major, then column-major
// order, for deterministic iteration (e.g. when printing or hashing).
func (m *SparseMatrix) Triplets() []Triplet {
	out := make([]Triplet, 0, len(m.entries))
	for k, v := range m.entries {
		out = append(out, Triplet{Row: k[0], Col: k[1], Value: v})
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Row != out[b].Row {
			return out[a].Row < out[b].Row
		}
		return out[a].Col < out[b].Col
	})
	return out
}

func (m *SparseMatrix) Row(i int) Vector {
	row := NewSparseVector(m.cols)
	for k, v := range m.entries {
		if k[0] == i {
			row.Set(k[1], v)
		}
	}
	return row
}

// ToDense densifies the matrix into a new DenseMatrix.
func (m *SparseMatrix) ToDense() *DenseMatrix {
	d := NewDenseMatrix(m.rows, m.cols)
	for k, v := range m.entries {
		d.Set(k[0], k[1], v)
	}
	return d
}

// sparseBuilder accumulates Set calls as triplets.
type sparseBuilder struct {
	m *SparseMatrix
}

// NewSparseBuilder allocates a sparse Builder of the given shape.
func NewSparseBuilder(rows, cols int) Builder {
	return &sparseBuilder{m: NewSparseMatrix(rows, cols)}
}

func (b *sparseBuilder) Set(i, j int, v float64) { b.m.Set(i, j, v) }
func (b *sparseBuilder) Dims() (int, int)        { return b.m.Dims() }
func (b *sparseBuilder) Build() Matrix           { return b.m }
