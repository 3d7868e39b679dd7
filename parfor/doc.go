// Package parfor provides a small, synchronous parallel_for over 1D and 2D
// integer ranges.
//
// A call splits the index domain into threadCount contiguous chunks whose
// sizes differ by at most one, runs the first threadCount-1 chunks on fresh
// worker goroutines and the last chunk on the calling goroutine, and returns
// only after every worker has been joined. Nothing is pooled or reused
// between calls.
//
// # Basic Usage
//
//	a := make([]float64, n)
//	b := make([]float64, n)
//	c := make([]float64, n)
//	_, err := parfor.For(0, n, func(i int) {
//	    c[i] = a[i] + b[i]
//	}, 4)
//
// # Two Dimensions
//
// For2D flattens the rectangle [rowLow,rowHigh) x [colLow,colHigh) into a
// single index space, partitions it like For and hands every (row, col)
// pair to the operation exactly once, row-major within a chunk:
//
//	_, err := parfor.For2D(0, n, 0, n, func(i, j int) {
//	    for k := 0; k < n; k++ {
//	        C[i][j] += A[i][k] * B[k][j]
//	    }
//	}, 8)
//
// If rows*cols does not fit in an int, For2D returns ErrRangeOverflow before
// any worker is started.
//
// # Configuration Options
//
// A Multithreader carries the options; the package-level For and For2D use
// one with defaults.
//
//   - WithReporter(r) / WithSilentReport(): where the per-call timing line goes
//   - WithThreadBudget(b): cap the worker threads that may exist at once
//   - WithOSThreads(): lock every worker to its own OS thread
//   - WithCPUAffinity(): additionally pin worker k to CPU k mod NumCPU
//   - WithOnWorkerStart(fn), WithOnWorkerExit(fn), WithOnFault(fn): hooks
//
// # Error Handling
//
// ErrRangeOverflow and ErrThreadCreation are returned to the caller. When a
// worker cannot be created, every worker already started for that call is
// joined first and no further chunk runs, including the caller's own chunk.
//
// A panic raised by the operation is recovered where it happened, passed to
// the WithOnFault hook if one is set, and otherwise discarded. The chunk
// continues with the next index and sibling chunks are not affected.
//
// The operation must be safe to call concurrently for different indices;
// parfor adds no synchronisation around it.
package parfor
