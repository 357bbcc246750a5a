package performer

import (
	"errors"

	"github.com/aretw0/performer/pkg/helper"
)

var (
	// ErrEmptyAuthor is returned by AuthorFirstName when the author has no tokens.
	ErrEmptyAuthor = errors.New("author is empty")

	// ErrNotWired is returned when a performer is used before bootstrap completed.
	ErrNotWired = helper.ErrNotWired
)
