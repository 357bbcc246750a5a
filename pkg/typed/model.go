// Package typed converts between core.Document and caller-defined structs.
package typed

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aretw0/performer/pkg/core"
)

// DocumentModel wraps the raw core.Document with a typed Data field.
// It acts as a typed view of a document.
type DocumentModel[T any] struct {
	ID      string
	Content string
	Data    T        // the typed metadata
	Saver   Saver[T] // Active Record reference
}

// Saver avoids tight coupling between models and the service that loaded them.
type Saver[T any] interface {
	Save(ctx context.Context, doc *DocumentModel[T]) error
}

// Save persists the document using the attached saver.
func (d *DocumentModel[T]) Save(ctx context.Context) error {
	if d.Saver == nil {
		return fmt.Errorf("document is detached (missing Saver)")
	}
	return d.Saver.Save(ctx, d)
}

// toMetadata round-trips data through JSON so struct tags decide the keys.
func toMetadata[T any](data T) (core.Metadata, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal typed data: %w", err)
	}
	var metadata core.Metadata
	if err := json.Unmarshal(raw, &metadata); err != nil {
		return nil, fmt.Errorf("failed to convert typed data to map: %w", err)
	}
	return metadata, nil
}

func fromCore[T any](doc core.Document, saver Saver[T]) (*DocumentModel[T], error) {
	raw, err := json.Marshal(doc.Metadata)
	if err != nil {
		return nil, fmt.Errorf("metadata marshal failed: %w", err)
	}

	var data T
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("unmarshal to target type failed: %w", err)
	}

	return &DocumentModel[T]{
		ID:      doc.ID,
		Content: doc.Content,
		Data:    data,
		Saver:   saver,
	}, nil
}
