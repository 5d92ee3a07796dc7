package routing

import "errors"

var (
	ErrEmptyPath      = errors.New("route path is empty")
	ErrInvalidPath    = errors.New("route path must start with /")
	ErrEmptyMethod    = errors.New("route method is empty")
	ErrNilHandler     = errors.New("route handler is nil")
	ErrDuplicateRoute = errors.New("duplicate route")
)
