package omdb

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeFetcher resolves every title unless it is listed in failing.
type fakeFetcher struct {
	mu      sync.Mutex
	failing map[string]bool
	calls   int
}

func (f *fakeFetcher) DetailByTitle(ctx context.Context, title string) (*MovieDetail, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	if f.failing[title] {
		return nil, &NotFoundError{Message: "Movie not found!"}
	}
	return &MovieDetail{Title: title, Response: "True"}, nil
}

func TestRecommender_Recommend(t *testing.T) {
	logger := slog.Default()

	t.Run("ResolvesRequestedCount", func(t *testing.T) {
		fetcher := &fakeFetcher{}
		r := NewRecommender(fetcher, 3, logger)

		results, err := r.Recommend(context.Background(), 10)

		assert.NoError(t, err)
		assert.Len(t, results, 10)
		assert.Equal(t, 10, fetcher.calls)
	})

	t.Run("LimitCappedToCuratedPool", func(t *testing.T) {
		fetcher := &fakeFetcher{}
		r := NewRecommender(fetcher, 4, logger)

		results, err := r.Recommend(context.Background(), 10_000)

		assert.NoError(t, err)
		assert.Len(t, results, len(curatedTitles))
	})

	t.Run("DefaultLimit", func(t *testing.T) {
		fetcher := &fakeFetcher{}
		r := NewRecommender(fetcher, 4, logger)

		results, err := r.Recommend(context.Background(), 0)

		assert.NoError(t, err)
		assert.Len(t, results, DefaultRecommendLimit)
	})

	t.Run("FailuresAreDropped", func(t *testing.T) {
		failing := map[string]bool{}
		for _, title := range curatedTitles[:5] {
			failing[title] = true
		}
		fetcher := &fakeFetcher{failing: failing}
		r := NewRecommender(fetcher, 3, logger)

		results, err := r.Recommend(context.Background(), len(curatedTitles))

		assert.NoError(t, err)
		assert.Len(t, results, len(curatedTitles)-5)
	})

	t.Run("NothingResolves", func(t *testing.T) {
		failing := map[string]bool{}
		for _, title := range curatedTitles {
			failing[title] = true
		}
		fetcher := &fakeFetcher{failing: failing}
		r := NewRecommender(fetcher, 2, logger)

		_, err := r.Recommend(context.Background(), 10)

		assert.ErrorIs(t, err, ErrNoRecommendations)
	})

	t.Run("CancelledContext", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		fetcher := &fakeFetcher{}
		r := NewRecommender(fetcher, 2, logger)

		_, err := r.Recommend(ctx, 5)

		assert.ErrorIs(t, err, context.Canceled)
	})
}
