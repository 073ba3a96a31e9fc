package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"filmoteka/internal/http-api/dto"
	"filmoteka/internal/http-api/models"
	"filmoteka/internal/http-api/repository"

	"gorm.io/gorm"
)

// searchResultLimit caps free-text search results; the endpoint returns no
// pagination metadata.
const searchResultLimit = 20

type MovieService interface {
	List(ctx context.Context, opts dto.MovieQueryOptions) ([]models.Movie, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Movie, error)
	Create(ctx context.Context, m *models.Movie) error
	Update(ctx context.Context, id int64, in dto.UpdateMovieDTO) (*models.Movie, error)
	Delete(ctx context.Context, id int64) error
	SearchByText(ctx context.Context, query string) ([]models.Movie, error)
}

type movieService struct {
	repo repository.MovieRepository
}

func NewMovieService(r repository.MovieRepository) MovieService {
	return &movieService{repo: r}
}

func (s *movieService) List(ctx context.Context, opts dto.MovieQueryOptions) ([]models.Movie, int64, error) {
	return s.repo.List(ctx, opts)
}

func (s *movieService) GetByID(ctx context.Context, id int64) (*models.Movie, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

func (s *movieService) Create(ctx context.Context, m *models.Movie) error {
	m.ImdbID = strings.TrimSpace(m.ImdbID)
	m.Title = strings.TrimSpace(m.Title)
	if m.ImdbID == "" {
		return NewValidationError("imdb_id is required")
	}
	if m.Title == "" {
		return NewValidationError("title is required")
	}
	if err := validateUserRating(m.UserRating); err != nil {
		return err
	}

	// never persist a nil array
	if m.Actors == nil {
		m.Actors = []string{}
	}
	if m.Genres == nil {
		m.Genres = []string{}
	}

	applyRatingRules(m, m.UserRating != nil)

	// Fast-path duplicate check. The unique index still decides under
	// concurrent creates, so ErrDuplicateKey is handled below as well.
	if _, err := s.repo.GetByImdbID(ctx, m.ImdbID); err == nil {
		return ErrDuplicate
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if err := s.repo.Create(ctx, m); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (s *movieService) Update(ctx context.Context, id int64, in dto.UpdateMovieDTO) (*models.Movie, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return nil, NewValidationError("title must not be empty")
	}
	if err := validateUserRating(in.UserRating); err != nil {
		return nil, err
	}

	in.ApplyTo(existing)
	applyRatingRules(existing, in.UserRating != nil)

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *movieService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *movieService) SearchByText(ctx context.Context, query string) ([]models.Movie, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, NewValidationError("search query is required")
	}
	return s.repo.SearchByText(ctx, query, searchResultLimit)
}

// validateUserRating rejects out-of-range ratings outright; values are never
// clamped.
func validateUserRating(rating *float64) error {
	if rating == nil {
		return nil
	}
	if *rating < 0 || *rating > 10 {
		return NewValidationError("user_rating must be between 0 and 10")
	}
	return nil
}

// applyRatingRules marks a movie watched whenever a rating was submitted.
// The watch date defaults to now on that transition.
func applyRatingRules(m *models.Movie, ratingSubmitted bool) {
	if !ratingSubmitted {
		return
	}
	m.Watched = true
	if m.WatchDate == nil {
		now := time.Now()
		m.WatchDate = &now
	}
}
