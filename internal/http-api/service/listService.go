package service

import (
	"context"
	"errors"
	"strings"

	"filmoteka/internal/http-api/dto"
	"filmoteka/internal/http-api/models"
	"filmoteka/internal/http-api/repository"

	"gorm.io/gorm"
)

type ListService interface {
	GetAll(ctx context.Context) ([]models.List, error)
	GetByID(ctx context.Context, id int64) (*models.List, error)
	Create(ctx context.Context, l *models.List) error
	Update(ctx context.Context, id int64, in dto.UpdateListDTO) (*models.List, error)
	Delete(ctx context.Context, id int64) error
	AddMovies(ctx context.Context, listID int64, movieIDs []int64) error
	RemoveMovies(ctx context.Context, listID int64, movieIDs []int64) error
}

type listService struct {
	repo repository.ListRepository
}

func NewListService(r repository.ListRepository) ListService {
	return &listService{repo: r}
}

func (s *listService) GetAll(ctx context.Context) ([]models.List, error) {
	return s.repo.GetAll(ctx)
}

func (s *listService) GetByID(ctx context.Context, id int64) (*models.List, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return l, nil
}

func (s *listService) Create(ctx context.Context, l *models.List) error {
	l.Name = strings.TrimSpace(l.Name)
	if l.Name == "" {
		return NewValidationError("name is required")
	}
	return s.repo.Create(ctx, l)
}

func (s *listService) Update(ctx context.Context, id int64, in dto.UpdateListDTO) (*models.List, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, NewValidationError("name must not be empty")
	}

	in.ApplyTo(existing)
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *listService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *listService) AddMovies(ctx context.Context, listID int64, movieIDs []int64) error {
	if err := validateMovieIDs(movieIDs); err != nil {
		return err
	}
	if err := s.repo.AddMovies(ctx, listID, movieIDs); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *listService) RemoveMovies(ctx context.Context, listID int64, movieIDs []int64) error {
	if err := validateMovieIDs(movieIDs); err != nil {
		return err
	}
	if err := s.repo.RemoveMovies(ctx, listID, movieIDs); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func validateMovieIDs(ids []int64) error {
	if len(ids) == 0 {
		return NewValidationError("movie_ids must not be empty")
	}
	for _, id := range ids {
		if id <= 0 {
			return NewValidationError("invalid movie id: %d", id)
		}
	}
	return nil
}
