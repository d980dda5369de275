package permute

import "fmt"

// Apply returns a fresh slice dst with dst[p.At(i)] = src[i]: element i of
// src moves to its permuted position. The identity permutation yields a
// plain copy of src regardless of length; a sized permutation requires
// len(src) == p.Len() and returns ErrLengthMismatch otherwise.
// Complexity: O(n) time and space.
func Apply[T any](p Permutation, src []T) ([]T, error) {
	if p.perm == nil {
		dst := make([]T, len(src))
		copy(dst, src)
		return dst, nil
	}
	if len(src) != len(p.perm) {
		return nil, fmt.Errorf("Apply: len(src)=%d, perm size=%d: %w", len(src), len(p.perm), ErrLengthMismatch)
	}
	dst := make([]T, len(src))
	for i, v := range src {
		dst[p.perm[i]] = v
	}

	return dst, nil
}

// ApplyInv returns a fresh slice dst with dst[i] = src[p.At(i)]: the effect
// of applying the inverse permutation, without materializing it.
// Same length contract and complexity as Apply.
func ApplyInv[T any](p Permutation, src []T) ([]T, error) {
	if p.perm == nil {
		dst := make([]T, len(src))
		copy(dst, src)
		return dst, nil
	}
	if len(src) != len(p.perm) {
		return nil, fmt.Errorf("ApplyInv: len(src)=%d, perm size=%d: %w", len(src), len(p.perm), ErrLengthMismatch)
	}
	dst := make([]T, len(src))
	for i := range src {
		dst[i] = src[p.perm[i]]
	}

	return dst, nil
}
