package repository

import (
	"context"
	"fmt"

	"filmoteka/internal/http-api/models"

	"gorm.io/gorm"
)

type ListRepository interface {
	GetAll(ctx context.Context) ([]models.List, error)
	GetByID(ctx context.Context, id int64) (*models.List, error)
	Create(ctx context.Context, l *models.List) error
	Update(ctx context.Context, l *models.List) error
	Delete(ctx context.Context, id int64) error
	AddMovies(ctx context.Context, listID int64, movieIDs []int64) error
	RemoveMovies(ctx context.Context, listID int64, movieIDs []int64) error
}

type ListRepo struct {
	db *gorm.DB
}

func NewListRepo(db *gorm.DB) *ListRepo {
	return &ListRepo{db: db}
}

func (r *ListRepo) GetAll(ctx context.Context) ([]models.List, error) {
	var list []models.List
	if err := r.db.WithContext(ctx).Order("name asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get lists: %w", err)
	}
	return list, nil
}

func (r *ListRepo) GetByID(ctx context.Context, id int64) (*models.List, error) {
	var l models.List
	if err := r.db.WithContext(ctx).Preload("Movies").First(&l, id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *ListRepo) Create(ctx context.Context, l *models.List) error {
	if err := r.db.WithContext(ctx).Create(l).Error; err != nil {
		return fmt.Errorf("create list: %w", err)
	}
	return nil
}

func (r *ListRepo) Update(ctx context.Context, l *models.List) error {
	if err := r.db.WithContext(ctx).Save(l).Error; err != nil {
		return fmt.Errorf("update list: %w", err)
	}
	return nil
}

func (r *ListRepo) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Select("Movies").Delete(&models.List{ID: id}).Error; err != nil {
		return fmt.Errorf("delete list: %w", err)
	}
	return nil
}

func (r *ListRepo) AddMovies(ctx context.Context, listID int64, movieIDs []int64) error {
	if len(movieIDs) == 0 {
		return nil
	}
	tx := r.db.WithContext(ctx).Begin()
	var l models.List
	if err := tx.First(&l, listID).Error; err != nil {
		tx.Rollback()
		return err
	}
	movies := make([]models.Movie, 0, len(movieIDs))
	for _, id := range movieIDs {
		movies = append(movies, models.Movie{ID: id})
	}
	if err := tx.Model(&l).Association("Movies").Append(&movies); err != nil {
		tx.Rollback()
		return fmt.Errorf("append movies: %w", err)
	}
	return tx.Commit().Error
}

func (r *ListRepo) RemoveMovies(ctx context.Context, listID int64, movieIDs []int64) error {
	if len(movieIDs) == 0 {
		return nil
	}
	tx := r.db.WithContext(ctx).Begin()
	var l models.List
	if err := tx.First(&l, listID).Error; err != nil {
		tx.Rollback()
		return err
	}
	movies := make([]models.Movie, 0, len(movieIDs))
	for _, id := range movieIDs {
		movies = append(movies, models.Movie{ID: id})
	}
	if err := tx.Model(&l).Association("Movies").Delete(&movies); err != nil {
		tx.Rollback()
		return fmt.Errorf("remove movies: %w", err)
	}
	return tx.Commit().Error
}
