//go:build !linux && !darwin && !windows

package cpu

import "errors"

func pinToCore(int) (uintptr, error) {
	return 0, errors.New("cpu: thread pinning is not supported on this platform")
}
