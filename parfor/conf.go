package parfor

import "os"

// Option is a functional option for configuring a Multithreader.
type Option func(*config)

type config struct {
	reporter  Reporter
	budget    *ThreadBudget
	osThreads bool
	pinCPU    bool

	onWorkerStart func(WorkItem)
	onWorkerExit  func(WorkItem)
	onFault       func(Fault)
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		reporter: NewWriterReporter(os.Stdout),
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithReporter sets where per-call reports are sent.
// If not specified, the timing line is written to os.Stdout.
func WithReporter(r Reporter) Option {
	return func(cfg *config) {
		if r != nil {
			cfg.reporter = r
		}
	}
}

// WithSilentReport discards per-call reports.
func WithSilentReport() Option {
	return func(cfg *config) {
		cfg.reporter = nopReporter{}
	}
}

// WithThreadBudget limits how many worker threads may be alive at once
// across every call sharing the budget. A worker that cannot get a slot
// fails the call with ErrThreadCreation.
func WithThreadBudget(b *ThreadBudget) Option {
	return func(cfg *config) {
		cfg.budget = b
	}
}

// WithOSThreads locks each worker goroutine to its own OS thread for the
// duration of its chunk.
func WithOSThreads() Option {
	return func(cfg *config) {
		cfg.osThreads = true
	}
}

// WithCPUAffinity locks each worker to an OS thread and pins worker k to
// CPU k mod NumCPU where the platform supports it. Pinned threads are
// discarded when the worker exits.
func WithCPUAffinity() Option {
	return func(cfg *config) {
		cfg.osThreads = true
		cfg.pinCPU = true
	}
}

// WithOnWorkerStart registers a hook that runs on each spawned worker
// before it visits its chunk. The caller's own chunk does not trigger it.
// Hooks run concurrently and must be safe for concurrent use.
func WithOnWorkerStart(fn func(WorkItem)) Option {
	return func(cfg *config) {
		cfg.onWorkerStart = fn
	}
}

// WithOnWorkerExit registers a hook that runs on each spawned worker after
// its chunk is done, just before the worker is joined.
func WithOnWorkerExit(fn func(WorkItem)) Option {
	return func(cfg *config) {
		cfg.onWorkerExit = fn
	}
}

// WithOnFault registers a hook that receives every panic recovered from the
// operation, including panics in the caller's own chunk. Without it faults
// are discarded.
func WithOnFault(fn func(Fault)) Option {
	return func(cfg *config) {
		cfg.onFault = fn
	}
}
