package permute

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// panic message for programmer errors (no magic strings inline).
const panicIndexOutOfRange = "permute: At: index out of range"

// Permutation is a bijective reindexing of [0, n). It is immutable once
// built. The zero value is the identity permutation, which applies to any
// index; Identity returns it explicitly.
//
// A Permutation maps an original index i to its new index At(i).
type Permutation struct {
	perm []int // nil ⇒ identity
}

// Identity returns the identity permutation. It has no fixed size and maps
// every index to itself. Complexity: O(1), no allocation.
func Identity() Permutation {
	return Permutation{}
}

// New builds a Permutation from perm, where perm[i] is the new index of
// element i. The slice must be a bijection on [0, len(perm)): every target
// in range, none repeated.
//
// New takes ownership of perm; the caller must not mutate it afterwards.
// Returns ErrOutOfRange or ErrDuplicated on invalid input.
// Complexity: O(n) time, O(n/64) words for the seen-set.
func New(perm []int) (Permutation, error) {
	n := len(perm)
	// Track already-used targets in a bitset: duplicates break bijectivity.
	seen := bitset.New(uint(n))
	for i, target := range perm {
		if target < 0 || target >= n {
			return Permutation{}, fmt.Errorf("New: perm[%d]=%d with n=%d: %w", i, target, n, ErrOutOfRange)
		}
		if seen.Test(uint(target)) {
			return Permutation{}, fmt.Errorf("New: perm[%d]=%d repeats: %w", i, target, ErrDuplicated)
		}
		seen.Set(uint(target))
	}

	return Permutation{perm: perm}, nil
}

// At applies the permutation to index i.
//
// The identity permutation returns i unchanged for any non-negative i.
// For a sized permutation, i must lie in [0, Len()); violating this is a
// programmer error and panics. Complexity: O(1).
func (p Permutation) At(i int) int {
	if p.perm == nil {
		if i < 0 {
			panic(panicIndexOutOfRange)
		}
		return i
	}
	if i < 0 || i >= len(p.perm) {
		panic(panicIndexOutOfRange)
	}

	return p.perm[i]
}

// Inverse returns the inverse permutation q such that q.At(p.At(i)) == i
// for every i in the domain. The identity inverts to itself.
// Complexity: O(n) time and space; O(1) for the identity.
func (p Permutation) Inverse() Permutation {
	if p.perm == nil {
		return Permutation{}
	}
	inv := make([]int, len(p.perm))
	for i, target := range p.perm {
		inv[target] = i
	}

	return Permutation{perm: inv}
}

// Len reports the domain size of the permutation. The identity reports 0
// while still applying to any index; use IsIdentity to distinguish it.
func (p Permutation) Len() int {
	return len(p.perm)
}

// IsIdentity reports whether p is the (unsized) identity permutation.
func (p Permutation) IsIdentity() bool {
	return p.perm == nil
}
