package matrix

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDenseVectorBasic(t *testing.T) {
	v := NewDenseVectorFromSlice([]float64{1, 2, 3})
	require.Equal(t, 3, v.Len())
	require.Equal(t, Dense, v.Kind())
	require.Equal(t, 2.0, v.At(1))
	v.Set(1, 9)
	require.Equal(t, 9.0, v.At(1))
	require.Equal(t, []float64{1, 9, 3}, v.Slice())
}

func TestSparseVectorOmitsZero(t *testing.T) {
	v := NewSparseVector(5)
	v.Set(2, 4)
	v.Set(4, 0) // no-op, but exercises the "store zero removes" path
	require.Equal(t, 1, v.NNZ())
	require.Equal(t, 4.0, v.At(2))
	require.Equal(t, 0.0, v.At(0))
	v.Set(2, 0)
	require.Equal(t, 0, v.NNZ())
}

func TestDenseMatrixRow(t *testing.T) {
	b := NewDenseBuilder(2, 3)
	b.Set(0, 0, 1)
	b.Set(0, 1, 2)
	b.Set(1, 2, 5)
	m := b.Build()
	rows, cols := m.Dims()
	require.Equal(t, 2, rows)
	require.Equal(t, 3, cols)
	require.Equal(t, []float64{1, 2, 0}, m.Row(0).Slice())
	require.Equal(t, []float64{0, 0, 5}, m.Row(1).Slice())
}

func TestSparseMatrixTripletsSortedAndDeduped(t *testing.T) {
	b := NewSparseBuilder(3, 3)
	b.Set(2, 1, 7)
	b.Set(0, 0, 1)
	b.Set(2, 1, 9) // overwrite
	sm := b.Build().(*SparseMatrix)
	require.Equal(t, 2, sm.NNZ())
	trips := sm.Triplets()
	require.Len(t, trips, 2)
	require.Equal(t, Triplet{Row: 0, Col: 0, Value: 1}, trips[0])
	require.Equal(t, Triplet{Row: 2, Col: 1, Value: 9}, trips[1])
}

func TestSparseToDense(t *testing.T) {
	sm := NewSparseMatrix(2, 2)
	sm.Set(0, 1, 3)
	sm.Set(1, 0, -2)
	d := sm.ToDense()
	require.Equal(t, 3.0, d.At(0, 1))
	require.Equal(t, -2.0, d.At(1, 0))
	require.Equal(t, 0.0, d.At(0, 0))
}

func TestRequireSameKindPanics(t *testing.T) {
	require.Panics(t, func() { RequireSameKind(Dense, Sparse) })
	require.NotPanics(t, func() { RequireSameKind(Dense, Dense) })
}
