// Package cpu binds parallel_for worker goroutines to dedicated OS threads
// and, where the platform allows it, to individual CPU cores.
package cpu

import "runtime"

// NumCPU returns the number of logical CPUs available.
func NumCPU() int {
	return runtime.NumCPU()
}

// coreFor maps a worker number onto [0, NumCPU).
func coreFor(workerID int) int {
	n := runtime.NumCPU()
	id := workerID % n
	if id < 0 {
		id += n
	}
	return id
}

// LockThread wires the calling goroutine to its current OS thread for the
// lifetime of a worker. If pin is set the thread is also restricted to the
// core chosen for workerID. The returned release function must be deferred
// by a goroutine that exits right after it runs.
//
// A pinned thread keeps its modified mask, so release leaves it locked and
// the runtime destroys the thread when the worker goroutine exits.
func LockThread(workerID int, pin bool) (release func(), err error) {
	runtime.LockOSThread()

	if !pin {
		return runtime.UnlockOSThread, nil
	}

	release = func() {}
	if _, err = pinToCore(coreFor(workerID)); err != nil {
		return release, err
	}
	return release, nil
}
