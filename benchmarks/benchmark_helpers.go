package benchmarks

import (
	"fmt"
	"runtime"

	"github.com/utkarsh5026/simplemt/parfor"
)

// threadConfig defines a benchmark configuration for one thread setup
type threadConfig struct {
	name    string
	threads int
	opts    []parfor.Option
}

// getThreadConfigs returns plain goroutine workers for 1..NumCPU threads,
// doubling each step
func getThreadConfigs() []threadConfig {
	var out []threadConfig
	for n := 1; n <= runtime.NumCPU(); n *= 2 {
		out = append(out, threadConfig{
			name:    fmt.Sprintf("Threads_%d", n),
			threads: n,
			opts:    []parfor.Option{parfor.WithSilentReport()},
		})
	}
	return out
}

// getBindingConfigs compares goroutine, locked and pinned workers at NumCPU threads
func getBindingConfigs() []threadConfig {
	n := runtime.NumCPU()
	return []threadConfig{
		{
			name:    "Goroutines",
			threads: n,
			opts:    []parfor.Option{parfor.WithSilentReport()},
		},
		{
			name:    "OSThreads",
			threads: n,
			opts:    []parfor.Option{parfor.WithSilentReport(), parfor.WithOSThreads()},
		},
		{
			name:    "Pinned",
			threads: n,
			opts:    []parfor.Option{parfor.WithSilentReport(), parfor.WithCPUAffinity()},
		},
	}
}

// cpuBoundWork simulates a CPU-intensive operation on one index
func cpuBoundWork(iterations int, out []int) parfor.Op1D {
	return func(i int) {
		result := 0
		for k := 0; k < iterations; k++ {
			result += k * i
		}
		out[i] = result
	}
}

// unevenWork makes the cost grow with the index so static chunks are imbalanced
func unevenWork(out []int) parfor.Op1D {
	return func(i int) {
		result := 0
		for k := 0; k < i; k++ {
			result += k
		}
		out[i] = result
	}
}
