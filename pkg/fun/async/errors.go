package async

import (
	"context"
	"errors"
)

var (
	// ErrPanicked wraps the value recovered from a panicking computation.
	ErrPanicked = errors.New("async: computation panicked")
	// ErrRejected is the reason used when a handle is rejected with a nil error.
	ErrRejected = errors.New("async: rejected")
	// ErrAborted rejects a computation that exited without returning.
	ErrAborted = errors.New("async: computation aborted")
	// ErrInvalidHandle is returned for nil or zero handles.
	ErrInvalidHandle = errors.New("async: invalid handle")
)

// IsCancellationError reports whether err comes from an expired or
// cancelled context rather than from a rejected handle.
func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
