package parfor

import (
	"fmt"
	"time"

	"github.com/utkarsh5026/simplemt/internal/partition"
)

// Op1D is the operation invoked once per index by For.
// It is shared by every worker and must be safe for concurrent use with
// distinct indices.
type Op1D func(i int)

// Op2D is the operation invoked once per (row, col) pair by For2D.
type Op2D func(row, col int)

// Range is a half-open index interval [Low, High).
type Range = partition.Range

// WorkItem is one chunk of a parallel_for call, assigned to exactly one
// thread.
//
// For 1D calls Range holds the real indices and ColWidth is zero. For 2D
// calls Range is a slice of the flattened space [0, rows*cols) and RowLow,
// ColLow and ColWidth map a flat index back to its (row, col) pair.
type WorkItem struct {
	Index    int // position in the partition, 0-based
	Range    Range
	RowLow   int
	ColLow   int
	ColWidth int
}

// Coords un-flattens a 2D index.
func (w WorkItem) Coords(flat int) (row, col int) {
	return flat/w.ColWidth + w.RowLow, flat%w.ColWidth + w.ColLow
}

// Is2D reports whether the item belongs to a For2D call.
func (w WorkItem) Is2D() bool {
	return w.ColWidth > 0
}

// Dimension identifies the call shape that produced a Report.
type Dimension int

const (
	Dim1D Dimension = iota + 1
	Dim2D
)

func (d Dimension) String() string {
	switch d {
	case Dim1D:
		return "1D"
	case Dim2D:
		return "2D"
	default:
		return fmt.Sprintf("Dimension(%d)", int(d))
	}
}

// Report describes one completed parallel_for call.
//
// Fields:
//   - Dimension: Dim1D or Dim2D
//   - Threads: number of chunks, including the caller's own
//   - Spawned: worker threads created and joined
//   - Size: number of indices (or pairs) in the domain
//   - Elapsed: wall time from partitioning through the final join
type Report struct {
	Dimension Dimension
	Threads   int
	Spawned   int
	Size      uint64
	Elapsed   time.Duration
}

// String renders the timing line written by the default reporter.
func (r Report) String() string {
	return fmt.Sprintf("[SimpleMultithreader] parallel_for(%s) time = %d ms", r.Dimension, r.Elapsed.Milliseconds())
}

// Fault is a panic recovered from the operation.
type Fault struct {
	Item  WorkItem
	Index int // index inside Item.Range that panicked; flat for 2D items
	Value any
	Stack []byte
}

// Coords returns the (row, col) pair of a 2D fault.
func (f Fault) Coords() (row, col int) {
	return f.Item.Coords(f.Index)
}

func (f Fault) Error() string {
	if f.Item.Is2D() {
		row, col := f.Coords()
		return fmt.Sprintf("parfor: operation panic at (%d, %d): %v", row, col, f.Value)
	}
	return fmt.Sprintf("parfor: operation panic at %d: %v", f.Index, f.Value)
}
