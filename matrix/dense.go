package matrix

import "gonum.org/v1/gonum/mat"

// DenseVector is a contiguous float64 vector, backed by gonum's
// mat.VecDense.
type DenseVector struct {
	vec *mat.VecDense
}

// NewDenseVector allocates a zero vector of length n.
func NewDenseVector(n int) *DenseVector {
	return &DenseVector{vec: mat.NewVecDense(n, nil)}
}

// NewDenseVectorFromSlice wraps data directly; data is not copied.
func NewDenseVectorFromSlice(data []float64) *DenseVector {
	return &DenseVector{vec: mat.NewVecDense(len(data), data)}
}

func (v *DenseVector) Len() int        { return v.vec.Len() }
func (v *DenseVector) Kind() Kind      { return Dense }
func (v *DenseVector) At(i int) float64 { return v.vec.AtVec(i) }
func (v *DenseVector) Set(i int, val float64) { v.vec.SetVec(i, val) }

// Slice returns a freshly allocated copy of the vector's elements;
// writing to it does not change v.
func (v *DenseVector) Slice() []float64 {
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = v.vec.AtVec(i)
	}
	return out
}

// Raw exposes the underlying gonum vector for callers that need to pass
// it to gonum routines directly.
func (v *DenseVector) Raw() *mat.VecDense { return v.vec }

// DenseMatrix is a contiguous row-major matrix, backed by gonum's
// mat.Dense.
type DenseMatrix struct {
	m *mat.Dense
}

// NewDenseMatrix allocates a zero rows-by-cols matrix.
func NewDenseMatrix(rows, cols int) *DenseMatrix {
	return &DenseMatrix{m: mat.NewDense(rows, cols, nil)}
}

// NewDenseMatrixFromRowMajor wraps data (row-major, len == rows*cols)
// directly.
func NewDenseMatrixFromRowMajor(rows, cols int, data []float64) *DenseMatrix {
	return &DenseMatrix{m: mat.NewDense(rows, cols, data)}
}

func (m *DenseMatrix) Dims() (int, int)     { return m.m.Dims() }
func (m *DenseMatrix) Kind() Kind           { return Dense }
func (m *DenseMatrix) At(i, j int) float64  { return m.m.At(i, j) }
func (m *DenseMatrix) Set(i, j int, v float64) { m.m.Set(i, j, v) }
func (m *DenseMatrix) ToDense() *DenseMatrix { return m }

func (m *DenseMatrix) Row(i int) Vector {
	_, cols := m.m.Dims()
	row := make([]float64, cols)
	mat.Row(row, i, m.m)
	return NewDenseVectorFromSlice(row)
}

// Raw exposes the underlying gonum matrix.
func (m *DenseMatrix) Raw() *mat.Dense { return m.m }

// denseBuilder accumulates Set calls directly into a DenseMatrix.
type denseBuilder struct {
	m *DenseMatrix
}

// NewDenseBuilder allocates a dense Builder of the given shape.
func NewDenseBuilder(rows, cols int) Builder {
	return &denseBuilder{m: NewDenseMatrix(rows, cols)}
}

func (b *denseBuilder) Set(i, j int, v float64) { b.m.Set(i, j, v) }
func (b *denseBuilder) Dims() (int, int)        { return b.m.Dims() }
func (b *denseBuilder) Build() Matrix           { return b.m }
