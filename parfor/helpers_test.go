package parfor

import (
	"sync"
	"testing"
)

// recordingReporter keeps every report it receives.
type recordingReporter struct {
	mu      sync.Mutex
	reports []Report
}

func (r *recordingReporter) Report(rep Report) {
	r.mu.Lock()
	r.reports = append(r.reports, rep)
	r.mu.Unlock()
}

func (r *recordingReporter) all() []Report {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Report(nil), r.reports...)
}

// itemRecorder collects WorkItems passed to worker hooks.
type itemRecorder struct {
	mu    sync.Mutex
	items []WorkItem
}

func (r *itemRecorder) record(item WorkItem) {
	r.mu.Lock()
	r.items = append(r.items, item)
	r.mu.Unlock()
}

func (r *itemRecorder) byIndex() map[int]WorkItem {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[int]WorkItem, len(r.items))
	for _, it := range r.items {
		out[it.Index] = it
	}
	return out
}

func (r *itemRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

// threadCounts are the thread counts every engine test runs with.
var threadCounts = []int{-3, 0, 1, 2, 3, 4, 7, 16, 64}

// assertVisitedOnce fails unless every slot was hit exactly once.
func assertVisitedOnce(t *testing.T, counts []int, offset int) {
	t.Helper()
	for i, c := range counts {
		if c != 1 {
			t.Errorf("index %d visited %d times, expected 1", i+offset, c)
		}
	}
}
