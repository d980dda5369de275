package sparse_test

import (
	"fmt"

	"github.com/pjoshi1/sprs/permute"
	"github.com/pjoshi1/sprs/sparse"
)

////////////////////////////////////////////////////////////////////////////////
// Example: construction and point lookup
////////////////////////////////////////////////////////////////////////////////

// ExampleNewCsMatFromSlices demonstrates building the 3×3 identity matrix
// in CSR form and looking entries up.
// Scenario:
//
//   - indptr  = [0,1,2,3]: one stored entry per row
//   - indices = [0,1,2]:   the diagonal coordinates
//   - At returns (value, true) for stored entries and (0, false) for
//     structurally absent ones
//
// Complexity: construction O(nnz), lookup O(log nnz_row)
func ExampleNewCsMatFromSlices() {
	m, err := sparse.NewCsMatFromSlices(sparse.CSR, 3, 3,
		[]int{0, 1, 2, 3}, []int{0, 1, 2}, []float64{1, 1, 1})
	if err != nil {
		fmt.Println("construction failed:", err)
		return
	}

	v, ok := m.At(1, 1)
	fmt.Println("at(1,1):", v, ok)
	v, ok = m.At(0, 1)
	fmt.Println("at(0,1):", v, ok)

	// Output:
	// at(1,1): 1 true
	// at(0,1): 0 false
}

////////////////////////////////////////////////////////////////////////////////
// Example: rejection diagnostics
////////////////////////////////////////////////////////////////////////////////

// ExampleNewCsMat_rejection demonstrates the structured failure mode: row 0
// stores indices [3,2], which are not strictly ascending, so construction
// yields no matrix and the error names the violated invariant.
func ExampleNewCsMat_rejection() {
	_, err := sparse.NewCsMat(sparse.CSR, 5, 5,
		[]int{0, 2, 4, 5, 6, 7},
		[]int{3, 2, 3, 4, 2, 1, 3},
		[]float64{1, 2, 3, 4, 5, 6, 7})

	fmt.Println(err)

	// Output:
	// sparse: indices not strictly sorted within an outer window (outer window 0)
}

////////////////////////////////////////////////////////////////////////////////
// Example: permuted outer iteration
////////////////////////////////////////////////////////////////////////////////

// ExampleCsMat_OuterIteratorPAPT demonstrates traversing P·A·Pᵗ of a CSR
// matrix without materializing it: window k is yielded under the outer
// index perm(k), and each view stays in ascending inner order.
// Complexity: O(1) per step, no allocation.
func ExampleCsMat_OuterIteratorPAPT() {
	m, _ := sparse.NewCsMat(sparse.CSR, 3, 4,
		[]int{0, 2, 5, 6}, []int{2, 3, 1, 2, 3, 3}, []float64{1, 2, 3, 4, 5, 6})
	p, _ := permute.New([]int{1, 2, 0})

	for outer, v := range m.OuterIteratorPAPT(p).Items() {
		fmt.Printf("outer %d: indices %v\n", outer, v.Indices())
	}

	// Output:
	// outer 1: indices [2 3]
	// outer 2: indices [1 2 3]
	// outer 0: indices [3]
}

////////////////////////////////////////////////////////////////////////////////
// Example: reverse iteration
////////////////////////////////////////////////////////////////////////////////

// ExampleOuterIterator_NextBack demonstrates double-ended consumption: the
// outer order reverses while each view keeps its inner order.
func ExampleOuterIterator_NextBack() {
	m, _ := sparse.NewCsMat(sparse.CSR, 3, 3,
		[]int{0, 1, 2, 3}, []int{0, 1, 2}, []float64{10, 20, 30})

	it := m.OuterIterator()
	for {
		outer, v, ok := it.NextBack()
		if !ok {
			break
		}
		fmt.Println("outer", outer, "data", v.Data())
	}

	// Output:
	// outer 2 data [30]
	// outer 1 data [20]
	// outer 0 data [10]
}
