//go:build darwin

package cpu

import "errors"

var errPinUnsupported = errors.New("cpu: thread pinning is not available on macOS")

// macOS only offers affinity hints through thread_policy_set, so workers are
// locked to their thread but never pinned.
func pinToCore(int) (uintptr, error) {
	return 0, errPinUnsupported
}
