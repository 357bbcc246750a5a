package core

import "context"

// ReadOnly wraps repo so that writes fail with ErrReadOnly. Initialize is
// passed to repo, which must be configured not to write while opening.
// Watch and Close are passed through when supported.
func ReadOnly(repo Repository) Repository {
	return &readOnly{repo: repo}
}

type readOnly struct {
	repo Repository
}

func (r *readOnly) Save(ctx context.Context, doc Document) error { return ErrReadOnly }

func (r *readOnly) Delete(ctx context.Context, id string) error { return ErrReadOnly }

func (r *readOnly) Initialize(ctx context.Context) error {
	return r.repo.Initialize(ctx)
}

func (r *readOnly) Get(ctx context.Context, id string) (Document, error) {
	return r.repo.Get(ctx, id)
}

func (r *readOnly) List(ctx context.Context) ([]Document, error) {
	return r.repo.List(ctx)
}

func (r *readOnly) Watch(ctx context.Context, pattern string) (<-chan Event, error) {
	w, ok := r.repo.(Watchable)
	if !ok {
		return nil, errWatchUnsupported
	}
	return w.Watch(ctx, pattern)
}

func (r *readOnly) Close() error {
	if c, ok := r.repo.(Closer); ok {
		return c.Close()
	}
	return nil
}

// ComponentType reports the wrapped repository type, prefixed.
func (r *readOnly) ComponentType() string {
	if c, ok := r.repo.(interface{ ComponentType() string }); ok {
		return "read-only " + c.ComponentType()
	}
	return "read-only"
}

// State reports the wrapped repository state, if it exposes one.
func (r *readOnly) State() any {
	if s, ok := r.repo.(interface{ State() any }); ok {
		return s.State()
	}
	return nil
}
