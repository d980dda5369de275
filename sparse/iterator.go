// Package sparse: outer-dimension iteration. The iterator is a double-ended
// cursor over the indptr windows; each step slices directly into the
// matrix's backing arrays, so no allocation happens per step.
package sparse

import (
	"iter"

	"github.com/pjoshi1/sprs/permute"
)

// OuterIterator traverses a matrix's outer dimension, yielding for each
// window the permuted outer index and the zero-copy CsVec view of that
// window. It supports consumption from both ends and knows its exact
// remaining length. Exhaustion is terminal: once the cursors meet, neither
// end produces further items.
//
// An iterator borrows the matrix and the permutation; both must outlive it.
// It is restarted by requesting a fresh one, not by rewinding.
type OuterIterator[N any] struct {
	mat   *CsMat[N]
	perm  permute.Permutation
	front int // next window consumed by Next
	back  int // one past the next window consumed by NextBack
}

// OuterIterator returns an iterator over the matrix's outer dimension in
// natural order (identity permutation).
func (m *CsMat[N]) OuterIterator() *OuterIterator[N] {
	return m.OuterIteratorPAPT(permute.Identity())
}

// OuterIteratorPAPT returns an iterator traversing the outer dimension of
// P·A·Pᵗ, the matrix with rows and columns reindexed under perm, without
// materializing the permuted matrix.
//
// Orientation rule: for CSR storage the permutation applies directly (rows
// of A map to rows of P·A·Pᵗ under perm); for CSC the inverse permutation
// must be applied instead, because permuting columns under Pᵗ corresponds
// to perm⁻¹ on the outer index in column-major order. Getting this backward
// would silently transpose the effective permutation.
func (m *CsMat[N]) OuterIteratorPAPT(perm permute.Permutation) *OuterIterator[N] {
	oriented := perm
	if m.storage == CSC {
		oriented = perm.Inverse()
	}

	return &OuterIterator[N]{
		mat:   m,
		perm:  oriented,
		front: 0,
		back:  m.OuterDim(),
	}
}

// Next consumes the frontmost remaining window and returns its permuted
// outer index and view. ok is false once the iterator is exhausted. O(1),
// no allocation.
func (it *OuterIterator[N]) Next() (outer int, v CsVec[N], ok bool) {
	if it.front >= it.back {
		return 0, CsVec[N]{}, false
	}
	k := it.front
	it.front++

	return it.perm.At(k), it.mat.windowView(k, it.perm), true
}

// NextBack consumes the backmost remaining window, the symmetric
// counterpart of Next. Only the outer traversal order is reversed: entries
// inside the yielded view keep their ascending inner-index order; reversing
// those is the caller's business on the view itself. O(1), no allocation.
func (it *OuterIterator[N]) NextBack() (outer int, v CsVec[N], ok bool) {
	if it.front >= it.back {
		return 0, CsVec[N]{}, false
	}
	it.back--
	k := it.back

	return it.perm.At(k), it.mat.windowView(k, it.perm), true
}

// Len reports the exact number of windows not yet consumed from either end.
// O(1), no re-scan.
func (it *OuterIterator[N]) Len() int {
	return it.back - it.front
}

// Items adapts the iterator to a range-over-func sequence of
// (permuted outer index, view) pairs, draining it from the front.
func (it *OuterIterator[N]) Items() iter.Seq2[int, CsVec[N]] {
	return func(yield func(int, CsVec[N]) bool) {
		for {
			outer, v, ok := it.Next()
			if !ok {
				return
			}
			if !yield(outer, v) {
				return
			}
		}
	}
}

// ItemsBack is Items in reverse outer order, draining the iterator from the
// back.
func (it *OuterIterator[N]) ItemsBack() iter.Seq2[int, CsVec[N]] {
	return func(yield func(int, CsVec[N]) bool) {
		for {
			outer, v, ok := it.NextBack()
			if !ok {
				return
			}
			if !yield(outer, v) {
				return
			}
		}
	}
}
