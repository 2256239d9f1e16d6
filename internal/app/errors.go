package app

import (
	"errors"
	"fmt"
)

// ErrQuit signals a clean shutdown request from the event loop.
var ErrQuit = errors.New("quit requested")

// InitError wraps a component initialization failure.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("initializing %s: %v", e.Component, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}
