// Package sparse: Pattern, a bitmap view of a compressed slice's nonzero
// structure. Patterns answer set-style structural questions (occupancy,
// overlap, equality) without touching the stored values; they never perform
// arithmetic.
package sparse

import (
	"iter"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// panic message for programmer errors (no magic strings inline).
const panicPatternIndexRange = "sparse: Pattern: inner coordinate outside uint32 range"

// Pattern is the set of nonzero inner coordinates of one compressed row or
// column. It wraps a 32-bit roaring bitmap, so inner dimensions are limited
// to what fits in uint32, far beyond any indexable slice length here.
type Pattern struct {
	rb *roaring.Bitmap
}

// NewPattern returns an empty pattern.
func NewPattern() *Pattern {
	return &Pattern{rb: roaring.New()}
}

// Pattern returns the occupancy set of the vector's stored coordinates.
// Every coordinate must fit in uint32; one that does not (only reachable
// through a hand-built CsVec, since validated matrices bound their indices
// by the inner dimension) is a programmer error and panics rather than
// silently truncating into the bitmap. O(nnz).
func (v CsVec[N]) Pattern() *Pattern {
	p := NewPattern()
	for _, ind := range v.indices {
		if ind < 0 || uint64(ind) > math.MaxUint32 {
			panic(panicPatternIndexRange)
		}
		p.rb.Add(uint32(ind))
	}

	return p
}

// OuterPattern returns the occupancy set of outer window k. Same index
// contract as OuterView; coordinates obey the uint32 bound of Pattern by
// construction. O(nnz_window).
func (m *CsMat[N]) OuterPattern(k int) *Pattern {
	return m.OuterView(k).Pattern()
}

// Contains reports whether inner coordinate ind is occupied.
func (p *Pattern) Contains(ind int) bool {
	return p.rb.Contains(uint32(ind))
}

// Cardinality returns the number of occupied coordinates.
func (p *Pattern) Cardinality() int {
	return int(p.rb.GetCardinality())
}

// And intersects p with other in place.
func (p *Pattern) And(other *Pattern) {
	p.rb.And(other.rb)
}

// Or unions other into p in place.
func (p *Pattern) Or(other *Pattern) {
	p.rb.Or(other.rb)
}

// Equal reports whether two patterns occupy exactly the same coordinates.
func (p *Pattern) Equal(other *Pattern) bool {
	return p.rb.Equals(other.rb)
}

// Clone returns a deep copy of the pattern.
func (p *Pattern) Clone() *Pattern {
	return &Pattern{rb: p.rb.Clone()}
}

// Iterator returns the occupied coordinates in ascending order.
func (p *Pattern) Iterator() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := p.rb.Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}
}
