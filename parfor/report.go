package parfor

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// Reporter receives one Report per completed call.
type Reporter interface {
	Report(Report)
}

// WriterReporter writes each report as a single timing line.
type WriterReporter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterReporter returns a Reporter writing to w.
func NewWriterReporter(w io.Writer) *WriterReporter {
	return &WriterReporter{w: w}
}

// Report implements Reporter.
func (r *WriterReporter) Report(rep Report) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = fmt.Fprintln(r.w, rep.String())
}

// SlogReporter emits reports as structured log records.
type SlogReporter struct {
	logger *slog.Logger
}

// NewSlogReporter wraps logger. A nil logger falls back to slog.Default().
//
// Example:
//
//	handler := slog.NewJSONHandler(os.Stderr, nil)
//	mt := parfor.NewMultithreader(parfor.WithReporter(parfor.NewSlogReporter(slog.New(handler))))
func NewSlogReporter(logger *slog.Logger) *SlogReporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogReporter{logger: logger}
}

// Report implements Reporter.
func (r *SlogReporter) Report(rep Report) {
	r.logger.Info("parallel_for complete",
		"dimension", rep.Dimension.String(),
		"threads", rep.Threads,
		"spawned", rep.Spawned,
		"size", rep.Size,
		"elapsed_ms", rep.Elapsed.Milliseconds(),
	)
}

type nopReporter struct{}

func (nopReporter) Report(Report) {}
