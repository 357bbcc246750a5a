package core

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// Service handles the business rules shared by every document, regardless of record type.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new Service. A nil logger discards output.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{repo: repo, logger: logger}
}

// SaveDocument saves a document with ID validation.
func (s *Service) SaveDocument(ctx context.Context, id string, content string, metadata Metadata) error {
	if id == "" {
		return ErrInvalidID
	}

	doc := Document{
		ID:       id,
		Content:  content,
		Metadata: metadata,
	}

	if err := s.repo.Save(ctx, doc); err != nil {
		return fmt.Errorf("save %s: %w", id, err)
	}
	s.logger.Debug("document saved", "id", id)
	return nil
}

// GetDocument retrieves a document.
func (s *Service) GetDocument(ctx context.Context, id string) (Document, error) {
	if id == "" {
		return Document{}, ErrInvalidID
	}
	return s.repo.Get(ctx, id)
}

// ListDocuments retrieves all documents.
func (s *Service) ListDocuments(ctx context.Context) ([]Document, error) {
	return s.repo.List(ctx)
}

// DeleteDocument removes a document.
func (s *Service) DeleteDocument(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidID
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Debug("document deleted", "id", id)
	return nil
}

// Watch observes changes in the repository if supported.
func (s *Service) Watch(ctx context.Context, pattern string) (<-chan Event, error) {
	w, ok := s.repo.(Watchable)
	if !ok {
		return nil, errWatchUnsupported
	}
	return w.Watch(ctx, pattern)
}

// Close releases the repository resources if it holds any.
func (s *Service) Close() error {
	if c, ok := s.repo.(Closer); ok {
		return c.Close()
	}
	return nil
}
