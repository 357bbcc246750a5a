package helper

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownOperation classifies calls that no capability group recognizes.
	ErrUnknownOperation = errors.New("unknown operation")
	// ErrNotWired is returned by every operation of a registry that was not built.
	ErrNotWired = errors.New("helper registry is not wired")
	// ErrBootstrap classifies discovery failures. They are fatal at startup.
	ErrBootstrap = errors.New("bootstrap failure")
)

// UnknownOperationError names the operation that could not be resolved.
type UnknownOperationError struct {
	Name string
}

func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("%v: %s", ErrUnknownOperation, e.Name)
}

func (e *UnknownOperationError) Unwrap() error {
	return ErrUnknownOperation
}

// BootstrapError reports a discovery file that does not resolve to a loadable definition.
type BootstrapError struct {
	File       string
	Identifier string
	Err        error
}

func (e *BootstrapError) Error() string {
	msg := ErrBootstrap.Error()
	if e.File != "" {
		msg += " (file=" + e.File + ")"
	}
	if e.Identifier != "" {
		msg += " (type=" + e.Identifier + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is lets errors.Is match ErrBootstrap while Unwrap exposes the cause.
func (e *BootstrapError) Is(target error) bool {
	return target == ErrBootstrap
}

func (e *BootstrapError) Unwrap() error {
	return e.Err
}
