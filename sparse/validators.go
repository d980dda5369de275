// SPDX-License-Identifier: MIT
// Package sparse: canonical structural validation for compressed triples.
//
// Purpose:
//   - Provide a single source of truth for the compressed-structure checks.
//   - Keep constructors minimal by delegating every invariant here.
//   - Return StructuralError values wrapping plain sentinels; call sites and
//     tests match via errors.Is. No diagnostics are printed; presentation
//     belongs to the caller.
//
// Determinism & Performance:
//   - Checks run in a fixed order (cheapest first) and short-circuit on the
//     first violation: shape → lengths → nnz coherence → bounds → orderings.
//   - Overall O(nnz), dominated by the per-window sortedness scan.
//     No allocation.
package sparse

// CheckCompressedStructure validates that (indptr, indices) plus a data
// array of length nData form a well-formed compressed structure for a
// rows×cols matrix under the given storage orientation. On success it
// returns the confirmed nonzero count; on failure, a StructuralError
// identifying the violated invariant.
//
// The indptr tail is required to equal nnz exactly; a merely in-bounds tail
// with a shorter extent is rejected as ErrNnzMismatch.
func CheckCompressedStructure(storage CompressedStorage, rows, cols int, indptr, indices []int, nData int) (int, error) {
	// (0) dimensions must be sane before any outer/inner arithmetic: a
	// negative outer dimension would otherwise line up with len(indptr)-1
	// and send the tail check indexing below zero.
	if rows < 0 || cols < 0 {
		return 0, structuralErrorf(ErrBadShape, "rows=%d, cols=%d", rows, cols)
	}
	outer, inner := outerInnerDims(storage, rows, cols)

	// (1) indptr partitions the outer dimension into outer windows.
	if len(indptr) != outer+1 {
		return 0, structuralErrorf(ErrBadIndptrLength, "len(indptr)=%d, outer=%d", len(indptr), outer)
	}
	// (2) indices and data are positionally aligned.
	if len(indices) != nData {
		return 0, structuralErrorf(ErrBadIndicesDataLength, "len(indices)=%d, len(data)=%d", len(indices), nData)
	}
	nnz := nData

	// (3) every offset stays within the nonzero region...
	for k, off := range indptr {
		if off < 0 || off > nnz {
			return 0, structuralErrorf(ErrIndptrOutOfRange, "indptr[%d]=%d, nnz=%d", k, off, nnz)
		}
	}
	// ...and the tail closes the last window exactly at nnz.
	if indptr[outer] != nnz {
		return 0, structuralErrorf(ErrNnzMismatch, "indptr[%d]=%d, nnz=%d", outer, indptr[outer], nnz)
	}

	// (4) every stored coordinate addresses the inner dimension.
	for p, idx := range indices {
		if idx < 0 || idx >= inner {
			return 0, structuralErrorf(ErrIndicesOutOfRange, "indices[%d]=%d, inner=%d", p, idx, inner)
		}
	}

	// (5) windows never overlap: adjacent offsets are non-decreasing.
	for k := 0; k+1 < len(indptr); k++ {
		if indptr[k] > indptr[k+1] {
			return 0, structuralErrorf(ErrIndptrNotSorted, "indptr[%d]=%d > indptr[%d]=%d", k, indptr[k], k+1, indptr[k+1])
		}
	}

	// (6) each window's coordinates are strictly increasing. Binary search in
	// At relies on this, which is why it is enforced here rather than per
	// lookup. The check itself is the vector view's own sortedness test.
	for k := 0; k+1 < len(indptr); k++ {
		if !ascendingIndices(indices[indptr[k]:indptr[k+1]]) {
			return 0, structuralErrorf(ErrIndicesNotSortedPerRow, "outer window %d", k)
		}
	}

	return nnz, nil
}

// ascendingIndices reports whether indices are strictly increasing.
// Shared by the validator above and CsVec.CheckStructure.
func ascendingIndices(indices []int) bool {
	for i := 0; i+1 < len(indices); i++ {
		if indices[i] >= indices[i+1] {
			return false
		}
	}

	return true
}
