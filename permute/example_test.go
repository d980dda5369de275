package permute_test

import (
	"fmt"

	"github.com/pjoshi1/sprs/permute"
)

// ExampleNew demonstrates building a permutation on [0, 3) and applying it
// together with its inverse.
//
// Scenario:
//
//   - perm[i] is the new index of element i: 0→2, 1→0, 2→1
//   - the inverse undoes the mapping exactly
//
// Complexity: New O(n), At O(1), Inverse O(n)
func ExampleNew() {
	p, _ := permute.New([]int{2, 0, 1})

	fmt.Println("forward:", p.At(0), p.At(1), p.At(2))
	inv := p.Inverse()
	fmt.Println("inverse:", inv.At(0), inv.At(1), inv.At(2))

	// Output:
	// forward: 2 0 1
	// inverse: 1 2 0
}

// ExampleApply demonstrates reordering a slice under a permutation:
// element i moves to position p.At(i).
func ExampleApply() {
	p, _ := permute.New([]int{2, 0, 1})

	dst, _ := permute.Apply(p, []string{"a", "b", "c"})
	fmt.Println(dst)

	// Output:
	// [b c a]
}
