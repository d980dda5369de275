// Package permute provides bijective index permutations and their
// application to slices.
//
// The permute package provides:
//
//   - Permutation, a validated bijection on [0, n) with O(1) application
//     and O(n) inversion.
//   - Identity, a zero-cost permutation that applies to any length and is
//     shared by callers that request unpermuted behavior.
//   - Apply / ApplyInv helpers for producing the permuted copy of a slice.
//
// Construction validates bijectivity up front: every target must fall in
// [0, n) and no target may repeat. After New succeeds, At never fails for
// in-range arguments, so hot loops (matrix iteration, reordering kernels)
// apply permutations without per-step checks.
//
// See the examples in this package and in sparse for usage patterns.
package permute
