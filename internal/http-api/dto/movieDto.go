package dto

import (
	"time"

	"filmoteka/internal/http-api/models"
)

// CreateMovieDTO used for POST /api/movies
type CreateMovieDTO struct {
	ImdbID     string     `json:"imdb_id" binding:"required"`
	Title      string     `json:"title" binding:"required"`
	Year       *int       `json:"year,omitempty"`
	Plot       *string    `json:"plot,omitempty"`
	Director   *string    `json:"director,omitempty"`
	Actors     []string   `json:"actors,omitempty"`
	Genres     []string   `json:"genres,omitempty"`
	PosterURL  *string    `json:"poster_url,omitempty"`
	ImdbRating *float64   `json:"imdb_rating,omitempty"`
	UserRating *float64   `json:"user_rating,omitempty"`
	Watched    *bool      `json:"watched,omitempty"`
	WatchDate  *time.Time `json:"watch_date,omitempty"`
	Notes      *string    `json:"notes,omitempty"`
	Favorite   *bool      `json:"favorite,omitempty"`
}

// UpdateMovieDTO used for PUT /api/movies/:id (partial updates allowed)
type UpdateMovieDTO struct {
	Title      *string    `json:"title,omitempty"`
	Year       *int       `json:"year,omitempty"`
	Plot       *string    `json:"plot,omitempty"`
	Director   *string    `json:"director,omitempty"`
	Actors     *[]string  `json:"actors,omitempty"`
	Genres     *[]string  `json:"genres,omitempty"`
	PosterURL  *string    `json:"poster_url,omitempty"`
	ImdbRating *float64   `json:"imdb_rating,omitempty"`
	UserRating *float64   `json:"user_rating,omitempty"`
	Watched    *bool      `json:"watched,omitempty"`
	WatchDate  *time.Time `json:"watch_date,omitempty"`
	Notes      *string    `json:"notes,omitempty"`
	Favorite   *bool      `json:"favorite,omitempty"`
}

// MovieResponse DTO for responses
type MovieResponse struct {
	ID         int64      `json:"id"`
	ImdbID     string     `json:"imdb_id"`
	Title      string     `json:"title"`
	Year       *int       `json:"year,omitempty"`
	Plot       *string    `json:"plot,omitempty"`
	Director   *string    `json:"director,omitempty"`
	Actors     []string   `json:"actors"`
	Genres     []string   `json:"genres"`
	PosterURL  *string    `json:"poster_url,omitempty"`
	ImdbRating *float64   `json:"imdb_rating,omitempty"`
	UserRating *float64   `json:"user_rating,omitempty"`
	Watched    bool       `json:"watched"`
	WatchDate  *time.Time `json:"watch_date,omitempty"`
	Notes      *string    `json:"notes,omitempty"`
	Favorite   bool       `json:"favorite"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// PaginatedMovieResponse wraps a page of the collection.
type PaginatedMovieResponse struct {
	Page   int             `json:"page"`
	Pages  int64           `json:"pages"`
	Total  int64           `json:"total"`
	Movies []MovieResponse `json:"movies"`
}

// Converters
func (d CreateMovieDTO) ToModel() models.Movie {
	m := models.Movie{
		ImdbID:     d.ImdbID,
		Title:      d.Title,
		Year:       d.Year,
		Plot:       d.Plot,
		Director:   d.Director,
		Actors:     normalizeStrings(d.Actors),
		Genres:     normalizeStrings(d.Genres),
		PosterURL:  d.PosterURL,
		ImdbRating: d.ImdbRating,
		UserRating: d.UserRating,
		WatchDate:  d.WatchDate,
		Notes:      d.Notes,
	}
	if d.Watched != nil {
		m.Watched = *d.Watched
	}
	if d.Favorite != nil {
		m.Favorite = *d.Favorite
	}
	return m
}

func (d UpdateMovieDTO) ApplyTo(m *models.Movie) {
	if d.Title != nil {
		m.Title = *d.Title
	}
	if d.Year != nil {
		m.Year = d.Year
	}
	if d.Plot != nil {
		m.Plot = d.Plot
	}
	if d.Director != nil {
		m.Director = d.Director
	}
	if d.Actors != nil {
		m.Actors = normalizeStrings(*d.Actors)
	}
	if d.Genres != nil {
		m.Genres = normalizeStrings(*d.Genres)
	}
	if d.PosterURL != nil {
		m.PosterURL = d.PosterURL
	}
	if d.ImdbRating != nil {
		m.ImdbRating = d.ImdbRating
	}
	if d.UserRating != nil {
		m.UserRating = d.UserRating
	}
	if d.Watched != nil {
		m.Watched = *d.Watched
	}
	if d.WatchDate != nil {
		m.WatchDate = d.WatchDate
	}
	if d.Notes != nil {
		m.Notes = d.Notes
	}
	if d.Favorite != nil {
		m.Favorite = *d.Favorite
	}
}

func FromModelToResponse(m models.Movie) MovieResponse {
	return MovieResponse{
		ID:         m.ID,
		ImdbID:     m.ImdbID,
		Title:      m.Title,
		Year:       m.Year,
		Plot:       m.Plot,
		Director:   m.Director,
		Actors:     normalizeStrings(m.Actors),
		Genres:     normalizeStrings(m.Genres),
		PosterURL:  m.PosterURL,
		ImdbRating: m.ImdbRating,
		UserRating: m.UserRating,
		Watched:    m.Watched,
		WatchDate:  m.WatchDate,
		Notes:      m.Notes,
		Favorite:   m.Favorite,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// normalizeStrings guarantees a non-nil slice so that arrays are never
// persisted or serialized as null.
func normalizeStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
