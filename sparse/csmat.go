// Package sparse: the CsMat container. Validated construction, dimension
// accessors and point lookup. Iteration lives in iterator.go.
package sparse

import (
	"sort"

	"github.com/pjoshi1/sprs/permute"
)

// Panic messages for programmer errors (no magic strings inline).
const (
	panicRowOutOfRange   = "sparse: At: row index out of range"
	panicColOutOfRange   = "sparse: At: column index out of range"
	panicOuterOutOfRange = "sparse: outer index out of range"
)

// CsMat is a compressed sparse matrix over scalar type N, stored row-major
// (CSR) or column-major (CSC). It is immutable after construction: every
// instance returned by a constructor satisfies the structural invariants
// listed in the package documentation, and nothing rechecks them afterwards.
//
// Concurrent read-only use from multiple goroutines is safe.
type CsMat[N any] struct {
	storage CompressedStorage
	nrows   int
	ncols   int
	nnz     int
	indptr  []int
	indices []int
	data    []N
}

// NewCsMatFromSlices builds a CsMat that borrows the given slices without
// copying. The caller retains ownership and must not mutate them while the
// matrix is alive. Construction validates the compressed structure and
// returns a StructuralError (wrapping the violated-invariant sentinel) on
// malformed input; no partially-built matrix escapes.
func NewCsMatFromSlices[N any](storage CompressedStorage, rows, cols int, indptr, indices []int, data []N) (*CsMat[N], error) {
	nnz, err := CheckCompressedStructure(storage, rows, cols, indptr, indices, len(data))
	if err != nil {
		return nil, err
	}

	return &CsMat[N]{
		storage: storage,
		nrows:   rows,
		ncols:   cols,
		nnz:     nnz,
		indptr:  indptr,
		indices: indices,
		data:    data,
	}, nil
}

// NewCsMat builds a CsMat that takes exclusive ownership of the given
// slices: the caller hands them over and must not use them afterwards.
// Identical validation contract to NewCsMatFromSlices.
func NewCsMat[N any](storage CompressedStorage, rows, cols int, indptr, indices []int, data []N) (*CsMat[N], error) {
	return NewCsMatFromSlices(storage, rows, cols, indptr, indices, data)
}

// NewCsMatCopied builds a CsMat over private copies of the given slices,
// leaving the caller free to reuse its buffers. Identical validation
// contract to NewCsMatFromSlices; costs O(nnz) extra space.
func NewCsMatCopied[N any](storage CompressedStorage, rows, cols int, indptr, indices []int, data []N) (*CsMat[N], error) {
	indptrC := make([]int, len(indptr))
	copy(indptrC, indptr)
	indicesC := make([]int, len(indices))
	copy(indicesC, indices)
	dataC := make([]N, len(data))
	copy(dataC, data)

	return NewCsMatFromSlices(storage, rows, cols, indptrC, indicesC, dataC)
}

// StorageType reports whether the matrix is stored CSR or CSC. O(1).
func (m *CsMat[N]) StorageType() CompressedStorage {
	return m.storage
}

// Rows returns the number of rows. O(1).
func (m *CsMat[N]) Rows() int {
	return m.nrows
}

// Cols returns the number of columns. O(1).
func (m *CsMat[N]) Cols() int {
	return m.ncols
}

// Nnz returns the number of explicitly stored entries. O(1).
func (m *CsMat[N]) Nnz() int {
	return m.nnz
}

// OuterDim returns the size of the dimension indptr partitions
// (rows for CSR, columns for CSC). O(1).
func (m *CsMat[N]) OuterDim() int {
	outer, _ := outerInnerDims(m.storage, m.nrows, m.ncols)
	return outer
}

// InnerDim returns the size of the dimension addressed by indices
// (columns for CSR, rows for CSC). O(1).
func (m *CsMat[N]) InnerDim() int {
	_, inner := outerInnerDims(m.storage, m.nrows, m.ncols)
	return inner
}

// At returns the value stored at (i, j), or (zero, false) when the entry is
// absent from the sparse structure (semantically zero).
//
// i and j must lie inside the matrix dimensions; violating this is a
// programmer error, not a data error, and panics. Internal consistency is
// already guaranteed at construction, so an out-of-range argument here can
// only mean caller misuse. O(log nnz_row).
func (m *CsMat[N]) At(i, j int) (N, bool) {
	if i < 0 || i >= m.nrows {
		panic(panicRowOutOfRange)
	}
	if j < 0 || j >= m.ncols {
		panic(panicColOutOfRange)
	}
	if m.storage == CSR {
		return m.AtOuterInner(i, j)
	}

	return m.AtOuterInner(j, i)
}

// AtOuterInner looks up the entry at (outer, inner) in storage coordinates:
// (row, column) for CSR, (column, row) for CSC. Same contract as At; the
// outer index must address a valid window.
//
// Binary search over the window's sorted indices; correctness depends on
// the per-window sortedness enforced at construction.
func (m *CsMat[N]) AtOuterInner(outer, inner int) (N, bool) {
	if outer < 0 || outer+1 >= len(m.indptr) {
		panic(panicOuterOutOfRange)
	}
	var zero N
	begin, end := m.indptr[outer], m.indptr[outer+1]
	if begin >= end {
		// Empty window: the whole row/column is implicit zeros.
		return zero, false
	}
	window := m.indices[begin:end]
	pos := sort.SearchInts(window, inner)
	if pos == len(window) || window[pos] != inner {
		return zero, false
	}

	return m.data[begin+pos], true
}

// OuterView returns the CsVec view of outer window k under the identity
// permutation. The view borrows into the matrix's backing arrays; no data
// is copied. k must lie in [0, OuterDim()) or OuterView panics.
func (m *CsMat[N]) OuterView(k int) CsVec[N] {
	if k < 0 || k+1 >= len(m.indptr) {
		panic(panicOuterOutOfRange)
	}

	return m.windowView(k, permute.Identity())
}

// windowView slices the backing arrays for outer window k into a CsVec
// carrying perm. Shared by OuterView and the outer iterator.
func (m *CsMat[N]) windowView(k int, perm permute.Permutation) CsVec[N] {
	begin, end := m.indptr[k], m.indptr[k+1]

	return NewCsVecBorrowed(m.indices[begin:end], m.data[begin:end], perm)
}
