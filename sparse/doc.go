// Package sparse implements compressed sparse matrix containers (CSR/CSC)
// with validated construction, point lookup and permutation-aware
// bidirectional iteration.
//
// The sparse package provides:
//
//   - CsMat, a read-only compressed matrix generic over its scalar type,
//     stored row-major (CSR) or column-major (CSC).
//   - CsVec, the zero-copy view of one compressed row or column, yielded by
//     outer iteration.
//   - OuterIterator, a double-ended, length-known traversal of the outer
//     dimension, optionally reindexed by a similarity permutation P·A·Pᵗ.
//   - Pattern, a roaring-bitmap view of a slice's nonzero structure for
//     set-style structural queries.
//
// # Structural invariants
//
// A CsMat over an outer dimension of size n (rows for CSR, columns for CSC)
// holds three backing arrays tied by the invariants below. They are checked
// once, at construction, and never rechecked:
//
//  1. len(indptr) == n+1
//  2. len(indices) == len(data) == nnz
//  3. indptr values never exceed nnz, and indptr[n] == nnz exactly
//  4. every index is < the inner dimension
//  5. indptr is non-decreasing
//  6. indices are strictly increasing within each outer window
//
// Construction either yields a fully valid matrix or a StructuralError
// identifying the violated invariant; no partially-built matrix escapes.
// Because sortedness (6) is enforced up front, At can binary-search each
// window in O(log nnz_row) without per-lookup checks.
//
// Matrices are immutable after construction, so concurrent read-only use
// from multiple goroutines requires no locking.
//
// See the examples in this package and permute for usage patterns.
package sparse
