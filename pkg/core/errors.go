package core

import "errors"

// Common errors.
var (
	ErrNotFound  = errors.New("document not found")
	ErrInvalidID = errors.New("document ID cannot be empty")
	ErrReadOnly  = errors.New("repository is read-only")
)

var errWatchUnsupported = errors.New("repository does not support watching")
