package benchmarks

import (
	"fmt"
	"testing"

	"github.com/utkarsh5026/simplemt/parfor"
)

// =============================================================================
// 1D Scaling
// =============================================================================

func BenchmarkFor_VectorAdd(b *testing.B) {
	const n = 1 << 20
	a := make([]float64, n)
	v := make([]float64, n)
	c := make([]float64, n)
	for i := range n {
		a[i] = float64(i)
		v[i] = 1
	}

	for _, cfg := range getThreadConfigs() {
		b.Run(cfg.name, func(b *testing.B) {
			mt := parfor.NewMultithreader(cfg.opts...)
			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				if _, err := mt.For(0, n, func(i int) { c[i] = a[i] + v[i] }, cfg.threads); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkFor_CPUBound(b *testing.B) {
	const n = 4096
	out := make([]int, n)

	for _, cfg := range getThreadConfigs() {
		b.Run(cfg.name, func(b *testing.B) {
			mt := parfor.NewMultithreader(cfg.opts...)
			op := cpuBoundWork(2000, out)
			for b.Loop() {
				if _, err := mt.For(0, n, op, cfg.threads); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkFor_UnevenCost(b *testing.B) {
	const n = 8192
	out := make([]int, n)

	for _, cfg := range getThreadConfigs() {
		b.Run(cfg.name, func(b *testing.B) {
			mt := parfor.NewMultithreader(cfg.opts...)
			op := unevenWork(out)
			for b.Loop() {
				if _, err := mt.For(0, n, op, cfg.threads); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// =============================================================================
// 2D Scaling
// =============================================================================

func BenchmarkFor2D_MatrixMultiply(b *testing.B) {
	for _, size := range []int{64, 256} {
		A := make([]float64, size*size)
		B := make([]float64, size*size)
		C := make([]float64, size*size)
		for i := range A {
			A[i] = float64(i % 7)
			B[i] = float64(i % 5)
		}

		for _, cfg := range getThreadConfigs() {
			b.Run(fmt.Sprintf("N_%d/%s", size, cfg.name), func(b *testing.B) {
				mt := parfor.NewMultithreader(cfg.opts...)
				for b.Loop() {
					_, err := mt.For2D(0, size, 0, size, func(i, j int) {
						sum := 0.0
						for k := 0; k < size; k++ {
							sum += A[i*size+k] * B[k*size+j]
						}
						C[i*size+j] = sum
					}, cfg.threads)
					if err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

// =============================================================================
// Thread Binding and Dispatch Overhead
// =============================================================================

func BenchmarkFor_ThreadBinding(b *testing.B) {
	const n = 4096
	out := make([]int, n)

	for _, cfg := range getBindingConfigs() {
		b.Run(cfg.name, func(b *testing.B) {
			mt := parfor.NewMultithreader(cfg.opts...)
			op := cpuBoundWork(500, out)
			for b.Loop() {
				if _, err := mt.For(0, n, op, cfg.threads); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkFor_DispatchOverhead measures spawn + join cost with almost no work.
func BenchmarkFor_DispatchOverhead(b *testing.B) {
	for _, threads := range []int{1, 2, 4, 8, 16} {
		b.Run(fmt.Sprintf("Threads_%d", threads), func(b *testing.B) {
			mt := parfor.NewMultithreader(parfor.WithSilentReport())
			sink := make([]int, threads)
			b.ReportAllocs()
			for b.Loop() {
				if _, err := mt.For(0, threads, func(i int) { sink[i]++ }, threads); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkFor_WithThreadBudget(b *testing.B) {
	budget := parfor.NewThreadBudget(64)
	mt := parfor.NewMultithreader(parfor.WithSilentReport(), parfor.WithThreadBudget(budget))
	b.RunParallel(func(pb *testing.PB) {
		out := make([]int, 1024)
		op := cpuBoundWork(100, out)
		for pb.Next() {
			// concurrent callers may run out of slots; only the fast path is measured
			_, _ = mt.For(0, len(out), op, 2)
		}
	})
}
