package omdb

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"sync"
)

// DefaultRecommendLimit matches the upstream default page of curated titles.
const DefaultRecommendLimit = 50

// ErrNoRecommendations means not a single curated title could be resolved.
var ErrNoRecommendations = errors.New("no recommendations could be resolved")

// curatedTitles is the fixed pool the recommender samples from.
var curatedTitles = []string{
	"The Shawshank Redemption", "The Godfather", "The Dark Knight", "Pulp Fiction",
	"Fight Club", "Forrest Gump", "Inception", "The Matrix", "Goodfellas",
	"The Lord of the Rings", "Star Wars", "The Avengers", "Interstellar",
	"Parasite", "Joker", "1917", "The Green Mile", "Gladiator",
	"Whiplash", "The Departed", "The Prestige", "Eternal Sunshine of the Spotless Mind",
	"Memento", "The Social Network", "Mad Max: Fury Road", "Inglourious Basterds",
	"Saving Private Ryan", "Back to the Future", "The Silence of the Lambs",
	"The Lion King", "Titanic", "Jurassic Park", "Terminator 2", "The Sixth Sense",
	"The Truman Show", "The Grand Budapest Hotel", "The Big Lebowski", "No Country for Old Men",
	"There Will Be Blood", "Black Swan", "The Revenant", "Django Unchained",
	"The Wolf of Wall Street", "La La Land", "The Shape of Water", "Get Out",
	"Her", "Gone Girl", "Blade Runner 2049", "Arrival", "Nomadland",
}

// detailFetcher is the slice of the client the recommender needs.
type detailFetcher interface {
	DetailByTitle(ctx context.Context, title string) (*MovieDetail, error)
}

// Recommender resolves a random subset of the curated titles through the
// metadata provider. Fetches fan out over a bounded worker pool; the shared
// client rate limiter bounds the request rate. Per-title failures are dropped.
type Recommender struct {
	client  detailFetcher
	workers int
	logger  *slog.Logger
}

func NewRecommender(client detailFetcher, workers int, logger *slog.Logger) *Recommender {
	if workers < 1 {
		workers = 1
	}
	return &Recommender{client: client, workers: workers, logger: logger}
}

// Recommend returns up to limit resolved titles in no particular order.
func (r *Recommender) Recommend(ctx context.Context, limit int) ([]MovieDetail, error) {
	if limit <= 0 {
		limit = DefaultRecommendLimit
	}
	if limit > len(curatedTitles) {
		limit = len(curatedTitles)
	}

	titles := make([]string, len(curatedTitles))
	copy(titles, curatedTitles)
	rand.Shuffle(len(titles), func(i, j int) {
		titles[i], titles[j] = titles[j], titles[i]
	})
	titles = titles[:limit]

	pool := NewWorkerPool(ctx, r.workers, r.logger)
	pool.Start()

	var mu sync.Mutex
	results := make([]MovieDetail, 0, limit)

	for _, title := range titles {
		title := title
		pool.Submit(func(taskCtx context.Context) error {
			detail, err := r.client.DetailByTitle(taskCtx, title)
			if err != nil {
				// dropped from the result set, the batch carries on
				return err
			}
			mu.Lock()
			results = append(results, *detail)
			mu.Unlock()
			return nil
		})
	}

	pool.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, ErrNoRecommendations
	}
	return results, nil
}
