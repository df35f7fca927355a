// internal/models/errors.go
package models

import (
	"errors"
	"fmt"
)

// Error kinds. Every failure returned by this package matches exactly one of
// the four base kinds with errors.Is.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrInvalidState    = errors.New("invalid state")
)

// Refined conflicts. Each wraps ErrConflict.
var (
	ErrDuplicateProduct  = fmt.Errorf("%w: duplicate product", ErrConflict)
	ErrOutOfStock        = fmt.Errorf("%w: insufficient stock", ErrConflict)
	ErrInconsistentState = fmt.Errorf("%w: inconsistent state", ErrConflict)
)

// Error is a domain failure carrying its kind and a human readable message.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func invalidArgument(format string, args ...interface{}) error {
	return newError(ErrInvalidArgument, format, args...)
}

func notFound(format string, args ...interface{}) error {
	return newError(ErrNotFound, format, args...)
}

func invalidState(format string, args ...interface{}) error {
	return newError(ErrInvalidState, format, args...)
}

// KindOf reports which base kind err belongs to, or nil for foreign errors.
func KindOf(err error) error {
	for _, kind := range []error{ErrInvalidArgument, ErrNotFound, ErrConflict, ErrInvalidState} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
