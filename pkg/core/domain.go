// Package core holds the storage-agnostic document model used to persist records.
package core

import "fmt"

// Metadata represents the flexible key-value pairs associated with a document.
type Metadata map[string]any

// Document is the unit of persistence.
// Records are mapped onto a Document by the typed layer: their fields live in
// Metadata and any free-form body lives in Content.
type Document struct {
	ID       string
	Content  string
	Metadata Metadata
}

// EventType represents the type of change in the store.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change in the store.
type Event struct {
	Type      EventType
	ID        string
	Timestamp int64 // Unix timestamp
}

func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.ID)
}
