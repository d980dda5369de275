// Package sparse: CsVec, the compressed vector view yielded by outer
// iteration. A CsVec borrows into a matrix's backing arrays; it owns
// nothing and stays valid for the lifetime of the matrix it came from.
package sparse

import (
	"iter"
	"sort"

	"github.com/pjoshi1/sprs/permute"
)

// CsVec is one compressed row or column: parallel (indices, data) slices
// plus the permutation that was active when the view was produced. Indices
// are expected strictly increasing; views handed out by a validated CsMat
// always satisfy this.
type CsVec[N any] struct {
	indices []int
	data    []N
	perm    permute.Permutation
}

// NewCsVecBorrowed wraps existing slices as a CsVec without copying or
// validating. The caller must not mutate the slices while the view is in
// use; call CheckStructure to verify sortedness when the data is untrusted.
func NewCsVecBorrowed[N any](indices []int, data []N, perm permute.Permutation) CsVec[N] {
	return CsVec[N]{indices: indices, data: data, perm: perm}
}

// Nnz returns the number of stored entries.
func (v CsVec[N]) Nnz() int {
	return len(v.indices)
}

// Indices returns the borrowed coordinate slice. Read-only: mutating it
// breaks the sortedness the owning matrix relies on.
func (v CsVec[N]) Indices() []int {
	return v.indices
}

// Data returns the borrowed value slice, positionally aligned with Indices.
func (v CsVec[N]) Data() []N {
	return v.data
}

// Perm returns the permutation that was active when this view was produced.
func (v CsVec[N]) Perm() permute.Permutation {
	return v.perm
}

// At returns the value stored at inner coordinate ind, or (zero, false)
// when the coordinate is absent (semantically zero). Binary search over the
// sorted indices; O(log nnz).
func (v CsVec[N]) At(ind int) (N, bool) {
	pos := sort.SearchInts(v.indices, ind)
	if pos == len(v.indices) || v.indices[pos] != ind {
		var zero N
		return zero, false
	}

	return v.data[pos], true
}

// CheckStructure reports whether the indices are strictly increasing,
// the structural precondition every other CsVec operation assumes.
// O(nnz).
func (v CsVec[N]) CheckStructure() bool {
	return ascendingIndices(v.indices)
}

// Items returns an iterator over the stored (inner index, value) pairs in
// ascending index order.
func (v CsVec[N]) Items() iter.Seq2[int, N] {
	return func(yield func(int, N) bool) {
		for p, ind := range v.indices {
			if !yield(ind, v.data[p]) {
				return
			}
		}
	}
}
