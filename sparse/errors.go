// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set (unified, consistent).
// This file defines ONLY the package-level sentinel errors and the
// StructuralError detail type. Construction MUST return these sentinels and
// tests MUST check them via errors.Is. Panics are reserved for programmer
// errors (out-of-range indices passed to At and friends).
package sparse

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "sparse: ..." for consistency and to allow
// easy grepping across logs. One sentinel exists per structural invariant so
// rejection tests can pin down exactly which check fired.
var (
	// ErrBadShape is returned when a requested dimension is negative.
	// Dimension sanity precedes every structural invariant: the outer/inner
	// arithmetic below is meaningless on a negative shape.
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrBadIndptrLength is returned when len(indptr) != outerDim+1.
	ErrBadIndptrLength = errors.New("sparse: indptr length must be outer dimension + 1")

	// ErrBadIndicesDataLength is returned when len(indices) != len(data).
	ErrBadIndicesDataLength = errors.New("sparse: indices and data lengths differ")

	// ErrNnzMismatch is returned when indptr[outerDim] does not equal the
	// nonzero count exactly.
	ErrNnzMismatch = errors.New("sparse: indptr tail does not equal nnz")

	// ErrIndptrOutOfRange is returned when an indptr value exceeds nnz.
	ErrIndptrOutOfRange = errors.New("sparse: indptr value exceeds nnz")

	// ErrIndicesOutOfRange is returned when an index value falls outside the
	// inner dimension.
	ErrIndicesOutOfRange = errors.New("sparse: index value outside inner dimension")

	// ErrIndptrNotSorted is returned when indptr has a decreasing adjacent pair.
	ErrIndptrNotSorted = errors.New("sparse: indptr is not non-decreasing")

	// ErrIndicesNotSortedPerRow is returned when an outer window's indices are
	// not strictly increasing (unsorted or duplicated).
	ErrIndicesNotSortedPerRow = errors.New("sparse: indices not strictly sorted within an outer window")
)

// StructuralError reports which structural invariant a candidate
// (indptr, indices, data) triple violated and where. It wraps the matching
// sentinel, so errors.Is(err, ErrX) works on it directly.
type StructuralError struct {
	Kind   error  // one of the sentinel errors above
	Detail string // offending lengths/positions for diagnostics
}

// Error formats the sentinel message followed by the violation specifics.
func (e *StructuralError) Error() string {
	return fmt.Sprintf("%v (%s)", e.Kind, e.Detail)
}

// Unwrap exposes the violated-invariant sentinel to errors.Is/errors.As.
func (e *StructuralError) Unwrap() error { return e.Kind }

// structuralErrorf builds a StructuralError around kind with formatted detail.
func structuralErrorf(kind error, format string, args ...any) error {
	return &StructuralError{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}
