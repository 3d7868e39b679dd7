package parfor

import "golang.org/x/sync/semaphore"

// ThreadBudget is a shared cap on live worker threads.
//
// A worker takes one slot when it is created and gives it back only when it
// is joined, the way a joinable thread keeps its resources until join. A nil
// budget never refuses a worker.
type ThreadBudget struct {
	sem  *semaphore.Weighted
	size int64
}

// NewThreadBudget returns a budget allowing at most n live workers.
// Negative values are treated as zero.
func NewThreadBudget(n int64) *ThreadBudget {
	n = max(n, 0)
	return &ThreadBudget{
		sem:  semaphore.NewWeighted(n),
		size: n,
	}
}

// Size returns the total number of slots.
func (b *ThreadBudget) Size() int64 {
	if b == nil {
		return 0
	}
	return b.size
}

func (b *ThreadBudget) tryAcquire() bool {
	if b == nil {
		return true
	}
	return b.sem.TryAcquire(1)
}

func (b *ThreadBudget) release(n int) {
	if b == nil || n <= 0 {
		return
	}
	b.sem.Release(int64(n))
}
