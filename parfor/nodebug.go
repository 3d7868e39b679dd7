//go:build !debug

package parfor

func debugLog(string, ...interface{}) {}
