package article

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aretw0/performer/pkg/core"
	"github.com/aretw0/performer/pkg/typed"
)

// IDPrefix namespaces article documents inside a shared store.
const IDPrefix = "articles/"

// Store persists articles as documents.
type Store struct {
	docs  *typed.Service[Article]
	now   func() time.Time
	newID func() string
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides how IDs are minted for new articles.
func WithIDGenerator(fn func() string) StoreOption {
	return func(s *Store) { s.newID = fn }
}

// NewStore creates a Store on top of a core.Service.
func NewStore(svc *core.Service, opts ...StoreOption) *Store {
	s := &Store{
		docs:  typed.NewService[Article](svc),
		now:   time.Now,
		newID: func() string { return IDPrefix + uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create validates and inserts a new article, assigning its ID and timestamps.
// A caller-supplied ID is placed under IDPrefix. An invalid article is
// rejected with a *ValidationError and nothing is written. The article is
// only updated once the write succeeds.
func (s *Store) Create(ctx context.Context, a *Article) error {
	if err := a.Validate(); err != nil {
		return err
	}
	stored := *a
	if stored.ID == "" {
		stored.ID = s.newID()
	}
	stored.ID = IDFromParam(stored.ID)
	now := s.now().UTC()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	if err := s.write(ctx, &stored); err != nil {
		return err
	}
	*a = stored
	return nil
}

// Save validates and updates an article. Unsaved articles are created.
func (s *Store) Save(ctx context.Context, a *Article) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if a.ID == "" || a.CreatedAt.IsZero() {
		return s.Create(ctx, a)
	}
	stored := *a
	stored.ID = IDFromParam(stored.ID)
	stored.UpdatedAt = s.now().UTC()
	if err := s.write(ctx, &stored); err != nil {
		return err
	}
	*a = stored
	return nil
}

// Get loads one article.
func (s *Store) Get(ctx context.Context, id string) (*Article, error) {
	model, err := s.docs.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return fromModel(model), nil
}

// List returns every article in the store, ordered by ID.
func (s *Store) List(ctx context.Context) ([]*Article, error) {
	models, err := s.docs.List(ctx)
	if err != nil {
		return nil, err
	}

	articles := make([]*Article, 0, len(models))
	for _, m := range models {
		if !strings.HasPrefix(m.ID, IDPrefix) {
			continue
		}
		articles = append(articles, fromModel(m))
	}
	return articles, nil
}

// Delete removes an article.
func (s *Store) Delete(ctx context.Context, id string) error {
	return s.docs.Delete(ctx, id)
}

// Watch reports changes to article documents.
func (s *Store) Watch(ctx context.Context) (<-chan core.Event, error) {
	return s.docs.Watch(ctx, IDPrefix+"**")
}

func (s *Store) write(ctx context.Context, a *Article) error {
	model := &typed.DocumentModel[Article]{ID: a.ID, Data: *a}
	if err := s.docs.Save(ctx, model); err != nil {
		return fmt.Errorf("save article %s: %w", a.ID, err)
	}
	return nil
}

func fromModel(m *typed.DocumentModel[Article]) *Article {
	a := m.Data
	a.ID = m.ID
	return &a
}
