package core

import "context"

// Repository defines the contract for storing and retrieving documents.
// Adhering to this interface keeps records independent of the underlying
// storage engine (filesystem, SQLite).
type Repository interface {
	// Save persists a document. It creates if not exists, or updates if it does.
	Save(ctx context.Context, doc Document) error

	// Get retrieves a document by its ID. Missing documents yield ErrNotFound.
	Get(ctx context.Context, id string) (Document, error)

	// List returns all available documents ordered by ID.
	List(ctx context.Context) ([]Document, error)

	// Delete removes a document by its ID. Missing documents yield ErrNotFound.
	Delete(ctx context.Context, id string) error

	// Initialize ensures the underlying storage is ready (directories, schema).
	Initialize(ctx context.Context) error
}

// Watchable is implemented by repositories that can report changes as they happen.
type Watchable interface {
	// Watch emits events for documents whose ID matches pattern (doublestar syntax).
	// The channel is closed when ctx is done.
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}

// Closer is implemented by repositories holding resources (e.g. a database handle).
type Closer interface {
	Close() error
}
