// Package lifecycle feeds article changes into github.com/aretw0/lifecycle.
package lifecycle

import (
	"context"
	"fmt"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/performer/pkg/core"
)

// Change is one article change as seen by a lifecycle consumer.
type Change struct {
	Type  core.EventType
	ID    string
	Param string // the ID without its collection prefix, as used in routes
}

func (c Change) String() string {
	switch c.Type {
	case core.EventCreate:
		return fmt.Sprintf("created %s", c.ID)
	case core.EventModify:
		return fmt.Sprintf("updated %s", c.ID)
	case core.EventDelete:
		return fmt.Sprintf("deleted %s", c.ID)
	}
	return fmt.Sprintf("%s %s", c.Type, c.ID)
}

// ChangeSource turns repository events for one collection into Changes.
// A write usually surfaces as a create followed by a modify of the same
// document within the same second; those repeats are reported once.
type ChangeSource struct {
	prefix string
	events <-chan core.Event
	out    chan lifecycle.Event
}

// NewSource creates a ChangeSource for the documents under prefix.
// Events outside prefix are dropped. The output channel closes when events
// closes or the context passed to Start ends.
func NewSource(prefix string, events <-chan core.Event) *ChangeSource {
	return &ChangeSource{
		prefix: prefix,
		events: events,
		out:    make(chan lifecycle.Event),
	}
}

// Events implements lifecycle.Source.
func (s *ChangeSource) Events() <-chan lifecycle.Event {
	return s.out
}

// Start forwards changes in the background until ctx ends.
func (s *ChangeSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)

		var last core.Event
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				if !s.owns(e.ID) || repeats(last, e) {
					continue
				}
				last = e

				select {
				case s.out <- Change{Type: e.Type, ID: e.ID, Param: e.ID[len(s.prefix):]}:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}

func (s *ChangeSource) owns(id string) bool {
	return len(id) > len(s.prefix) && id[:len(s.prefix)] == s.prefix
}

// repeats reports whether e adds nothing to prev: the same document, in the
// same second, with no deletion in between.
func repeats(prev, e core.Event) bool {
	if prev.ID != e.ID || prev.Timestamp != e.Timestamp {
		return false
	}
	if e.Type == core.EventDelete {
		return prev.Type == core.EventDelete
	}
	return prev.Type != core.EventDelete
}
