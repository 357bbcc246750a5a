package fs_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/performer/pkg/core"
)

func nextEvent(t *testing.T, events <-chan core.Event, id string) core.Event {
	t.Helper()
	timeout := time.After(3 * time.Second)
	for {
		select {
		case e, ok := <-events:
			require.True(t, ok, "events channel closed early")
			if e.ID == id {
				return e
			}
		case <-timeout:
			t.Fatalf("timed out waiting for event on %s", id)
		}
	}
}

func TestWatch(t *testing.T) {
	repo, _ := setupRepo(t)

	// Seed the directory so it is watched from the start.
	require.NoError(t, repo.Save(context.Background(), core.Document{ID: "articles/seed", Content: "x"}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := repo.Watch(ctx, "articles/**")
	require.NoError(t, err)

	require.NoError(t, repo.Save(context.Background(), core.Document{ID: "ignored", Content: "x"}))
	require.NoError(t, repo.Save(context.Background(), core.Document{ID: "articles/one", Content: "x"}))

	e := nextEvent(t, events, "articles/one")
	assert.Contains(t, []core.EventType{core.EventCreate, core.EventModify}, e.Type)

	require.NoError(t, repo.Delete(context.Background(), "articles/one"))
	for {
		e = nextEvent(t, events, "articles/one")
		if e.Type == core.EventDelete {
			break
		}
	}

	cancel()
	require.Eventually(t, func() bool {
		select {
		case _, ok := <-events:
			return !ok
		default:
			return false
		}
	}, 3*time.Second, 10*time.Millisecond)
}

func TestWatch_InvalidPattern(t *testing.T) {
	repo, _ := setupRepo(t)

	_, err := repo.Watch(context.Background(), "[")
	assert.Error(t, err)
}

func TestWatch_NewDirectory(t *testing.T) {
	for i := 0; i < 10; i++ {
		repo, _ := setupRepo(t)

		ctx, cancel := context.WithCancel(context.Background())
		events, err := repo.Watch(ctx, "articles/**")
		require.NoError(t, err)

		// articles/ does not exist yet: the save creates it and the file together.
		require.NoError(t, repo.Save(context.Background(), core.Document{ID: "articles/first", Content: "x"}))

		e := nextEvent(t, events, "articles/first")
		assert.Contains(t, []core.EventType{core.EventCreate, core.EventModify}, e.Type)
		cancel()
	}
}
