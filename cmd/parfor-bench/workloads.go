package main

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/time/rate"

	"github.com/utkarsh5026/simplemt/parfor"
)

// workload is one benchmark scenario. Inputs are allocated once by its
// constructor; run is called for every thread count and leaves a result
// that verify checks.
type workload interface {
	Name() string
	Size() string
	run(mt *parfor.Multithreader, threads int) (parfor.Report, error)
	verify() error
}

// vectorAdd computes C = A + B with For.
type vectorAdd struct {
	a, b, c []float64
}

func newVectorAdd(n int) *vectorAdd {
	v := &vectorAdd{
		a: make([]float64, n),
		b: make([]float64, n),
		c: make([]float64, n),
	}
	for i := range n {
		v.a[i] = float64(i)
		v.b[i] = float64(n - i)
	}
	return v
}

func (v *vectorAdd) Name() string { return "vector add (1D)" }
func (v *vectorAdd) Size() string { return fmt.Sprintf("%s elements", formatNumber(len(v.a))) }

func (v *vectorAdd) run(mt *parfor.Multithreader, threads int) (parfor.Report, error) {
	clear(v.c)
	return mt.For(0, len(v.a), func(i int) {
		v.c[i] = v.a[i] + v.b[i]
	}, threads)
}

func (v *vectorAdd) verify() error {
	want := float64(len(v.a))
	for i, x := range v.c {
		if x != want {
			return fmt.Errorf("vector add: c[%d] = %v, want %v", i, x, want)
		}
	}
	return nil
}

// matrixMultiply computes C = A x B for square matrices with For2D.
type matrixMultiply struct {
	n       int
	a, b, c []float64
}

func newMatrixMultiply(n int) *matrixMultiply {
	m := &matrixMultiply{
		n: n,
		a: make([]float64, n*n),
		b: make([]float64, n*n),
		c: make([]float64, n*n),
	}
	for i := range n {
		for j := range n {
			m.a[i*n+j] = 1
			if i == j {
				m.b[i*n+j] = 2
			}
		}
	}
	return m
}

func (m *matrixMultiply) Name() string { return "matrix multiply (2D)" }
func (m *matrixMultiply) Size() string { return fmt.Sprintf("%dx%d", m.n, m.n) }

func (m *matrixMultiply) run(mt *parfor.Multithreader, threads int) (parfor.Report, error) {
	n := m.n
	return mt.For2D(0, n, 0, n, func(i, j int) {
		sum := 0.0
		for k := 0; k < n; k++ {
			sum += m.a[i*n+k] * m.b[k*n+j]
		}
		m.c[i*n+j] = sum
	}, threads)
}

func (m *matrixMultiply) verify() error {
	// A is all ones and B is 2*I, so every cell of C is 2.
	for idx, x := range m.c {
		if x != 2 {
			return fmt.Errorf("matrix multiply: C[%d][%d] = %v, want 2", idx/m.n, idx%m.n, x)
		}
	}
	return nil
}

// throttledCalls models an index space where each index calls a rate limited
// service. Wall time is bounded by the limiter, not by the thread count.
type throttledCalls struct {
	n       int
	perSec  float64
	results []float64
}

func newThrottledCalls(n int, perSec float64) *throttledCalls {
	return &throttledCalls{
		n:       n,
		perSec:  perSec,
		results: make([]float64, n),
	}
}

func (t *throttledCalls) Name() string { return "throttled calls (1D)" }
func (t *throttledCalls) Size() string {
	return fmt.Sprintf("%s calls @ %.0f/s", formatNumber(t.n), t.perSec)
}

func (t *throttledCalls) run(mt *parfor.Multithreader, threads int) (parfor.Report, error) {
	limiter := rate.NewLimiter(rate.Limit(t.perSec), max(threads, 1))
	ctx := context.Background()
	clear(t.results)

	return mt.For(0, t.n, func(i int) {
		if err := limiter.Wait(ctx); err != nil {
			panic(err)
		}
		t.results[i] = math.Sqrt(float64(i))
	}, threads)
}

func (t *throttledCalls) verify() error {
	for i, x := range t.results {
		if x != math.Sqrt(float64(i)) {
			return fmt.Errorf("throttled calls: result[%d] = %v", i, x)
		}
	}
	return nil
}
