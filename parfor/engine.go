package parfor

import (
	"fmt"
	"math"
	"math/bits"
	"time"

	"github.com/utkarsh5026/simplemt/internal/partition"
)

// Multithreader runs parallel_for calls with a fixed set of options.
// It holds no per-call state and is safe for concurrent use.
type Multithreader struct {
	conf *config
}

// NewMultithreader creates a Multithreader with the given options.
//
// Default configuration:
//   - reports: timing line on os.Stdout
//   - thread budget: none
//   - workers: plain goroutines, not locked to OS threads
//   - faults: discarded
//
// Example:
//
//	mt := parfor.NewMultithreader(
//	    parfor.WithSilentReport(),
//	    parfor.WithOSThreads(),
//	)
//	rep, err := mt.For(0, len(data), func(i int) { data[i] *= 2 }, 8)
func NewMultithreader(opts ...Option) *Multithreader {
	return &Multithreader{conf: newConfig(opts...)}
}

var defaultMultithreader = NewMultithreader()

// For runs op(i) for every i in [low, high) on threadCount threads using the
// default Multithreader.
func For(low, high int, op Op1D, threadCount int) (Report, error) {
	return defaultMultithreader.For(low, high, op, threadCount)
}

// For2D runs op(i, j) for every pair in [rowLow, rowHigh) x [colLow, colHigh)
// on threadCount threads using the default Multithreader.
func For2D(rowLow, rowHigh, colLow, colHigh int, op Op2D, threadCount int) (Report, error) {
	return defaultMultithreader.For2D(rowLow, rowHigh, colLow, colHigh, op, threadCount)
}

// For runs op(i) once for every i in [low, high) and returns after all
// chunks finished.
//
// threadCount values below 1 are treated as 1, in which case no worker is
// created. An empty range returns immediately without calling op or
// emitting a report.
//
// Returns:
//   - Report: timing and shape of the call (also sent to the Reporter)
//   - error: ErrThreadCreation if a worker could not be started
func (m *Multithreader) For(low, high int, op Op1D, threadCount int) (Report, error) {
	threadCount = max(threadCount, 1)
	if low >= high {
		return Report{Dimension: Dim1D, Threads: threadCount}, nil
	}
	if op == nil {
		return Report{}, ErrNilOperation
	}

	start := time.Now()

	parts := split(low, high, threadCount)
	items := make([]WorkItem, len(parts))
	for i, p := range parts {
		items[i] = WorkItem{Index: i, Range: p}
	}

	spawned, err := m.dispatch(items, func(item WorkItem) {
		runChunk(m.conf, item, op)
	})
	if err != nil {
		return Report{}, err
	}

	rep := Report{
		Dimension: Dim1D,
		Threads:   len(items),
		Spawned:   spawned,
		Size:      uint64(high) - uint64(low),
		Elapsed:   time.Since(start),
	}
	m.conf.reporter.Report(rep)
	return rep, nil
}

// For2D runs op(i, j) once for every i in [rowLow, rowHigh) and j in
// [colLow, colHigh). The rectangle is flattened row-major, split like For
// and every chunk visits its pairs in row-major order.
//
// Returns:
//   - Report: timing and shape of the call (also sent to the Reporter)
//   - error: ErrRangeOverflow if rows*cols does not fit in an int (nothing
//     ran), or ErrThreadCreation if a worker could not be started
func (m *Multithreader) For2D(rowLow, rowHigh, colLow, colHigh int, op Op2D, threadCount int) (Report, error) {
	threadCount = max(threadCount, 1)
	if rowLow >= rowHigh || colLow >= colHigh {
		return Report{Dimension: Dim2D, Threads: threadCount}, nil
	}

	total, err := flatSize(rowLow, rowHigh, colLow, colHigh)
	if err != nil {
		return Report{}, err
	}
	if op == nil {
		return Report{}, ErrNilOperation
	}

	start := time.Now()

	cols := int(uint64(colHigh) - uint64(colLow))
	parts := split(0, total, threadCount)
	items := make([]WorkItem, len(parts))
	for i, p := range parts {
		items[i] = WorkItem{
			Index:    i,
			Range:    p,
			RowLow:   rowLow,
			ColLow:   colLow,
			ColWidth: cols,
		}
	}

	spawned, err := m.dispatch(items, func(item WorkItem) {
		runChunk(m.conf, item, func(flat int) {
			op(flat/item.ColWidth+item.RowLow, flat%item.ColWidth+item.ColLow)
		})
	})
	if err != nil {
		return Report{}, err
	}

	rep := Report{
		Dimension: Dim2D,
		Threads:   len(items),
		Spawned:   spawned,
		Size:      uint64(total),
		Elapsed:   time.Since(start),
	}
	m.conf.reporter.Report(rep)
	return rep, nil
}

// dispatch runs every item but the last on a new worker and the last one
// on the calling goroutine, then joins. If a worker cannot be created the
// workers already running are joined and nothing else runs.
func (m *Multithreader) dispatch(items []WorkItem, run func(WorkItem)) (int, error) {
	last := len(items) - 1
	group := newWorkerGroup(m.conf)
	defer group.joinAll()

	for _, item := range items[:last] {
		if err := group.spawn(item, run); err != nil {
			joined := group.joinAll()
			debugLog("spawn of worker %d failed after %d workers: %v", item.Index, joined, err)
			return joined, err
		}
	}

	run(items[last])
	return group.joinAll(), nil
}

// split partitions [low, high) into n pieces, falling back to a single
// piece if the partitioner cannot honour n.
func split(low, high, n int) []partition.Range {
	parts := partition.Split(low, high, n)
	if len(parts) != n {
		debugLog("partition of [%d,%d) into %d pieces returned %d, running single-threaded", low, high, n, len(parts))
		parts = partition.Split(low, high, 1)
	}
	return parts
}

// flatSize returns rows*cols for a non-empty rectangle, computed on 128 bits
// so that neither the extents nor the product can wrap.
func flatSize(rowLow, rowHigh, colLow, colHigh int) (int, error) {
	rows := uint64(rowHigh) - uint64(rowLow)
	cols := uint64(colHigh) - uint64(colLow)

	hi, lo := bits.Mul64(rows, cols)
	if hi != 0 || lo > math.MaxInt {
		return 0, fmt.Errorf("%w: %d rows x %d cols exceeds %d", ErrRangeOverflow, rows, cols, math.MaxInt)
	}
	return int(lo), nil
}
