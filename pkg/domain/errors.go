package domain

import (
	"errors"
	"fmt"
)

// ErrDuplicateFallback is returned when a second fallback handler is registered.
// A menu may carry at most one; hitting this at construction means the menu
// value is never produced.
var ErrDuplicateFallback = errors.New("only one fallback handler may be registered")

// ErrNilHandler is returned when a handler function is nil.
var ErrNilHandler = errors.New("handler function is nil")

// ErrNotFunc is returned when a registered handler is not a function.
var ErrNotFunc = errors.New("handler is not a function")

// ErrInvalidReturn is returned when a handler returns anything other than
// nothing or a single bool.
var ErrInvalidReturn = errors.New("handler must return nothing or a single bool")

// ErrConflictingSignature is returned when a handler both returns bool and
// takes a *RunFlag parameter. The two stop channels are mutually exclusive.
var ErrConflictingSignature = errors.New("handler cannot both return bool and take a *RunFlag")

// ErrEmptyName is returned when an option's display name is empty.
var ErrEmptyName = errors.New("option display name must not be empty")

// ErrEmptyPattern is returned when an option's trigger pattern is empty.
var ErrEmptyPattern = errors.New("option trigger pattern must not be empty")

// ErrInvalidTag is returned when a menu struct tag does not parse.
var ErrInvalidTag = errors.New("malformed menu tag")

// ErrNotStruct is returned when the discovery target is not a pointer to a struct.
var ErrNotStruct = errors.New("menu target must be a non-nil pointer to a struct")

// ErrUnsupportedParam is returned (wrapped in an *InvocationError) when a
// handler declares a parameter type the engine cannot provide.
var ErrUnsupportedParam = errors.New("unsupported handler parameter type")

// InvocationError reports a failure while invoking a handler: the handler
// panicked, or its parameter list requested something the engine cannot
// resolve. It is caught at the loop boundary; the loop continues.
type InvocationError struct {
	// Option is the display name of the invoked option, empty for the fallback.
	Option  string
	Pattern string
	Err     error
}

func (e *InvocationError) Error() string {
	if e.Option == "" {
		return fmt.Sprintf("invoking fallback handler: %v", e.Err)
	}
	return fmt.Sprintf("invoking option %q (%s): %v", e.Option, e.Pattern, e.Err)
}

func (e *InvocationError) Unwrap() error {
	return e.Err
}
