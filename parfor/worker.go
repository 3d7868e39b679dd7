package parfor

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/utkarsh5026/simplemt/internal/cpu"
)

// workerGroup owns the workers of a single call. It is used only by the
// calling goroutine.
type workerGroup struct {
	conf    *config
	g       errgroup.Group
	spawned int
	joined  bool
}

func newWorkerGroup(conf *config) *workerGroup {
	return &workerGroup{conf: conf}
}

// spawn starts a worker that runs item. It fails with ErrThreadCreation when
// the thread budget has no free slot; the group is left intact so the caller
// can join what was already started.
func (wg *workerGroup) spawn(item WorkItem, run func(WorkItem)) error {
	if !wg.conf.budget.tryAcquire() {
		return fmt.Errorf("%w: worker %d (chunk %v), %d already running",
			ErrThreadCreation, item.Index, item.Range, wg.spawned)
	}

	wg.spawned++
	conf := wg.conf
	wg.g.Go(func() error {
		if conf.osThreads {
			release, err := cpu.LockThread(item.Index, conf.pinCPU)
			defer release()
			if err != nil {
				debugLog("worker %d: pin failed: %v", item.Index, err)
			}
		}

		if conf.onWorkerStart != nil {
			conf.onWorkerStart(item)
		}
		run(item)
		if conf.onWorkerExit != nil {
			conf.onWorkerExit(item)
		}
		return nil
	})

	return nil
}

// joinAll waits for every spawned worker and returns their budget slots.
// It is idempotent and returns the number of workers joined.
func (wg *workerGroup) joinAll() int {
	if wg.joined {
		return wg.spawned
	}
	wg.joined = true

	_ = wg.g.Wait()
	wg.conf.budget.release(wg.spawned)
	debugLog("joined %d workers", wg.spawned)
	return wg.spawned
}

// runChunk invokes visit for every index of item.Range in increasing order.
// A panicking index is handed to the fault hook and skipped; the chunk
// carries on with the next one.
func runChunk(conf *config, item WorkItem, visit func(int)) {
	next := item.Range.Low
	for next < item.Range.High {
		next = runSegment(conf, item, next, visit)
	}
}

// runSegment visits [from, item.Range.High) until the end or the first panic
// and returns the index to resume from.
func runSegment(conf *config, item WorkItem, from int, visit func(int)) (next int) {
	i := from
	defer func() {
		if r := recover(); r != nil {
			recordFault(conf, item, i, r)
			next = i + 1
		}
	}()

	for ; i < item.Range.High; i++ {
		visit(i)
	}
	return i
}

func recordFault(conf *config, item WorkItem, index int, value any) {
	debugLog("worker %d: operation panic at %d: %v", item.Index, index, value)
	if conf.onFault == nil {
		return
	}

	buf := make([]byte, 4096)
	n := runtime.Stack(buf, false)
	conf.onFault(Fault{
		Item:  item,
		Index: index,
		Value: value,
		Stack: buf[:n],
	})
}
