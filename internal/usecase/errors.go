package usecase

import (
	"errors"
	"fmt"
)

// ErrBackend marks failures of the authoritative store or the payment provider.
// They are never retried here; callers decide whether to offer a retry.
var ErrBackend = errors.New("backend unavailable")

var ErrConcurrentModification = errors.New("resource was modified by another request")

// BackendError wraps a repository or gateway failure with the operation that hit it.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *BackendError) Is(target error) bool {
	return target == ErrBackend
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

func backendError(op string, err error) error {
	var be *BackendError
	if errors.As(err, &be) {
		return err
	}
	return &BackendError{Op: op, Err: err}
}
