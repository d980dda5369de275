package permute

import "errors"

// Sentinel errors for permutation construction and application.
// Callers match them via errors.Is; user-triggered conditions never panic.
var (
	// ErrOutOfRange indicates a permutation target outside [0, n).
	ErrOutOfRange = errors.New("permute: target index out of range")
	// ErrDuplicated indicates a repeated permutation target (not a bijection).
	ErrDuplicated = errors.New("permute: duplicated target index")
	// ErrLengthMismatch indicates a slice whose length differs from the
	// permutation's domain size.
	ErrLengthMismatch = errors.New("permute: slice length does not match permutation size")
)
