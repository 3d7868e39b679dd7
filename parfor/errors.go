package parfor

import "errors"

var (
	// ErrRangeOverflow is returned by For2D when the flattened size of the
	// domain does not fit in an int. No index is visited.
	ErrRangeOverflow = errors.New("parfor: 2D range too large to flatten")

	// ErrThreadCreation is returned when a worker thread could not be
	// created. All workers started by the same call have been joined.
	ErrThreadCreation = errors.New("parfor: worker thread creation failed")

	// ErrNilOperation is returned when a non-empty range is given a nil operation.
	ErrNilOperation = errors.New("parfor: nil operation")
)
