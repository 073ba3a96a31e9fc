package dto

import (
	"time"

	"filmoteka/internal/http-api/models"
)

// CreateListDTO used for POST /api/lists
type CreateListDTO struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description,omitempty"`
}

// UpdateListDTO used for PUT /api/lists/:id (partial updates allowed)
type UpdateListDTO struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ListMoviesDTO carries movie ids for membership changes.
type ListMoviesDTO struct {
	MovieIDs []int64 `json:"movie_ids" binding:"required"`
}

// ListResponse DTO for responses
type ListResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	Movies      []MovieResponse `json:"movies,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (d CreateListDTO) ToModel() models.List {
	return models.List{
		Name:        d.Name,
		Description: d.Description,
	}
}

func (d UpdateListDTO) ApplyTo(l *models.List) {
	if d.Name != nil {
		l.Name = *d.Name
	}
	if d.Description != nil {
		l.Description = d.Description
	}
}

func ListFromModel(l models.List) ListResponse {
	resp := ListResponse{
		ID:          l.ID,
		Name:        l.Name,
		Description: l.Description,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
	for _, m := range l.Movies {
		resp.Movies = append(resp.Movies, FromModelToResponse(m))
	}
	return resp
}
