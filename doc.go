// Package sprs is an in-memory toolkit for compressed sparse matrices —
// storage-efficient CSR/CSC containers with validated construction,
// point lookups and permutation-aware traversal.
//
// 🚀 What is sprs?
//
//	A small, deterministic library that brings together:
//		• Compressed containers: CSR and CSC matrices over any scalar type
//		• Structural validation: every matrix is checked once, at construction
//		• Outer iteration: double-ended, length-known, zero-copy row/column views
//		• Similarity permutations: iterate P·A·Pᵗ without materializing it
//		• Sparsity patterns: roaring-bitmap views of the nonzero structure
//
// ✨ Why choose sprs?
//
//   - Safe by construction – a matrix either satisfies every structural
//     invariant or it is never built; no partial state escapes
//   - Precise failures – each violated invariant maps to its own sentinel
//     error, matched with errors.Is
//   - Zero-copy – iteration and lookup borrow directly into the backing
//     arrays; no allocation on the hot path
//   - Pure Go – no cgo, immutable values, safe for concurrent readers
//
// Everything is organized under two subpackages:
//
//	permute/ — bijective index permutations: identity, inverse, apply helpers
//	sparse/  — CsMat container, CsVec views, outer iterators, patterns
//
// Quick ASCII example:
//
//	    ⎡1 . .⎤      indptr  = [0, 1, 2, 3]
//	    ⎢. 1 .⎥  ⇒   indices = [0, 1, 2]
//	    ⎣. . 1⎦      data    = [1, 1, 1]
//
//	the 3×3 identity stored row-major: three nonzeros, three row windows.
//
// Dive into the sparse package docs for the structural invariants and the
// permutation orientation rules.
//
//	go get github.com/pjoshi1/sprs
package sprs
