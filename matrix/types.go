// Package matrix supplies the two storage representations ("traits" in
// spec.md §3) that the function algebra, problem model, and solver
// dispatch layer are built on top of: dense (backed by
// gonum.org/v1/gonum/mat) and sparse (triplet/COO-backed). Both satisfy
// the same Vector/Matrix/Builder interfaces, mirroring the way gonum's
// own mat.Matrix unifies Dense, Triangular, Symmetric and so on behind
// one interface rather than behind a compile-time trait parameter.
//
// A function, combinator or problem built with one Kind never silently
// narrows to the other: builders and combinators carry their Kind and
// panic (a contract violation, not a recoverable error) if operands of
// mismatched Kind are combined.
package matrix

// Kind identifies which storage representation a Vector, Matrix or
// Builder uses.
type Kind int

const (
	// Dense stores every element contiguously.
	Dense Kind = iota
	// Sparse stores only explicitly-set entries as (row, col, value)
	// triplets.
	Sparse
)

func (k Kind) String() string {
	switch k {
	case Dense:
		return "dense"
	case Sparse:
		return "sparse"
	default:
		return "unknown"
	}
}

// Vector is a read-only view over a fixed-length float64 sequence.
type Vector interface {
	Len() int
	At(i int) float64
	Kind() Kind
	// Slice materializes the vector as a dense []float64. Both Dense and
	// Sparse vectors return a newly allocated copy.
	Slice() []float64
}

// MutableVector is a Vector that can be written to in place.
type MutableVector interface {
	Vector
	Set(i int, v float64)
}

// Matrix is a read-only view over a fixed-shape float64 matrix.
type Matrix interface {
	Dims() (rows, cols int)
	At(i, j int) float64
	Kind() Kind
	// Row returns row i as a Vector without copying when the underlying
	// storage allows it.
	Row(i int) Vector
	// ToDense materializes the matrix as a *DenseMatrix, densifying a
	// sparse matrix if necessary.
	ToDense() *DenseMatrix
}

// Builder accumulates entries into a Matrix. For a sparse builder, Set
// emits a (row, col, value) triplet rather than touching a dense array,
// preserving sparsity per spec.md §4.1 ("Sparse combinators must
// preserve sparsity").
type Builder interface {
	Set(i, j int, v float64)
	Dims() (rows, cols int)
	Build() Matrix
}

// NewVector allocates a zero-valued, mutable vector of the given Kind
// and length.
func NewVector(kind Kind, n int) MutableVector {
	switch kind {
	case Dense:
		return NewDenseVector(n)
	case Sparse:
		return NewSparseVector(n)
	default:
		panic("matrix: unknown kind")
	}
}

// NewBuilder allocates a Builder of the given Kind and shape.
func NewBuilder(kind Kind, rows, cols int) Builder {
	switch kind {
	case Dense:
		return NewDenseBuilder(rows, cols)
	case Sparse:
		return NewSparseBuilder(rows, cols)
	default:
		panic("matrix: unknown kind")
	}
}

// RequireSameKind panics if a and b differ in Kind. The combinators in
// function/operator do not call it; they compare Kinds in their own
// constructors and panic there.
func RequireSameKind(a, b Kind) {
	if a != b {
		panic("matrix: storage trait mismatch: cannot combine " + a.String() + " and " + b.String())
	}
}
