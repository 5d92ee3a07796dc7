package listener

import (
	"errors"
	"fmt"
)

var (
	// ErrBindFailed matches any *BindError via errors.Is.
	ErrBindFailed = errors.New("failed to bind listener")

	ErrAlreadyBound = errors.New("listener already bound")
	ErrStopped      = errors.New("listener stopped")
	ErrInvalidState = errors.New("listener cannot bind from its current state")
	ErrServeFailed  = errors.New("http server failed")
)

// BindError reports a failed attempt to open the listening socket.
type BindError struct {
	Addr string
	Err  error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("%s on %s: %v", ErrBindFailed, e.Addr, e.Err)
}

func (e *BindError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrBindFailed.
func (e *BindError) Is(target error) bool {
	return target == ErrBindFailed
}
