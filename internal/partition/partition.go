// Package partition splits half-open integer ranges into contiguous,
// near-equal pieces.
package partition

import "fmt"

// Range is the half-open interval [Low, High). Low >= High denotes an empty range.
type Range struct {
	Low  int
	High int
}

// Len returns the number of indices in the range, or 0 if it is empty.
// The result is only meaningful when it fits in an int.
func (r Range) Len() int {
	if r.Empty() {
		return 0
	}
	return int(uint64(r.High) - uint64(r.Low))
}

// Empty reports whether the range contains no indices.
func (r Range) Empty() bool {
	return r.Low >= r.High
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Low, r.High)
}

// Split divides [low, high) into n contiguous pieces ordered by start index.
// The first total%n pieces receive one extra element, so piece sizes differ
// by at most one and the layout depends only on the inputs.
//
// When low >= high it returns n empty pieces anchored at low. When n < 1 it
// returns nil; callers clamp the thread count before splitting.
//
// Sizes are computed in uint64, so ranges wider than math.MaxInt (for example
// [math.MinInt, math.MaxInt)) split without overflow.
func Split(low, high, n int) []Range {
	if n < 1 {
		return nil
	}

	parts := make([]Range, n)
	if low >= high {
		for i := range parts {
			parts[i] = Range{Low: low, High: low}
		}
		return parts
	}

	total := uint64(high) - uint64(low)
	pieces := uint64(n)
	base := total / pieces
	rem := total % pieces

	cursor := uint64(low)
	for i := range parts {
		size := base
		if uint64(i) < rem {
			size++
		}
		parts[i] = Range{Low: int(cursor), High: int(cursor + size)}
		cursor += size
	}

	return parts
}
