// Package sparse: storage orientation and shared type definitions.
// Errors live in errors.go and structural checks in validators.go per the
// package conventions.
package sparse

// CompressedStorage selects which dimension indptr partitions: rows (CSR)
// or columns (CSC).
type CompressedStorage int

const (
	// CSR stores the matrix row-major: indptr delimits rows, indices hold
	// column coordinates.
	CSR CompressedStorage = iota
	// CSC stores the matrix column-major: indptr delimits columns, indices
	// hold row coordinates.
	CSC
)

// String returns the conventional name of the storage orientation.
func (s CompressedStorage) String() string {
	switch s {
	case CSR:
		return "CSR"
	case CSC:
		return "CSC"
	default:
		return "unknown"
	}
}

// outerInnerDims maps (storage, rows, cols) to the compressed layout's
// outer and inner dimension sizes.
func outerInnerDims(storage CompressedStorage, rows, cols int) (outer, inner int) {
	if storage == CSR {
		return rows, cols
	}

	return cols, rows
}
