package repository

import (
	"context"
	"errors"
	"fmt"

	"filmoteka/internal/http-api/dto"
	"filmoteka/internal/http-api/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrDuplicateKey is returned when an insert violates the imdb_id unique
// index. The index is the source of truth for duplicate detection; callers
// may pre-check but must handle this error regardless.
var ErrDuplicateKey = errors.New("duplicate key")

const uniqueViolationCode = "23505"

type MovieRepository interface {
	List(ctx context.Context, opts dto.MovieQueryOptions) ([]models.Movie, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Movie, error)
	GetByImdbID(ctx context.Context, imdbID string) (*models.Movie, error)
	Create(ctx context.Context, m *models.Movie) error
	Update(ctx context.Context, m *models.Movie) error
	Delete(ctx context.Context, id int64) error
	SearchByText(ctx context.Context, query string, limit int) ([]models.Movie, error)
}

type MovieRepo struct {
	db *gorm.DB
}

func NewMovieRepo(db *gorm.DB) *MovieRepo {
	return &MovieRepo{db: db}
}

// List applies the supplied filters conjunctively and returns one page plus
// the total matching count.
func (r *MovieRepo) List(ctx context.Context, opts dto.MovieQueryOptions) ([]models.Movie, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Movie{})

	if opts.Watched != nil {
		q = q.Where("watched = ?", *opts.Watched)
	}
	if opts.Favorite != nil {
		q = q.Where("favorite = ?", *opts.Favorite)
	}
	if opts.Title != "" {
		q = q.Where("title ILIKE ?", "%"+opts.Title+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count movies: %w", err)
	}

	var list []models.Movie
	if err := q.
		Order(opts.OrderClause()).
		Limit(opts.Limit).
		Offset(opts.Offset()).
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("list movies: %w", err)
	}

	return list, total, nil
}

func (r *MovieRepo) GetByID(ctx context.Context, id int64) (*models.Movie, error) {
	var m models.Movie
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MovieRepo) GetByImdbID(ctx context.Context, imdbID string) (*models.Movie, error) {
	var m models.Movie
	if err := r.db.WithContext(ctx).Where("imdb_id = ?", imdbID).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MovieRepo) Create(ctx context.Context, m *models.Movie) error {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return ErrDuplicateKey
		}
		return fmt.Errorf("create movie: %w", err)
	}
	// GORM will populate m.ID and the timestamps
	return nil
}

func (r *MovieRepo) Update(ctx context.Context, m *models.Movie) error {
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return fmt.Errorf("update movie: %w", err)
	}
	return nil
}

func (r *MovieRepo) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&models.Movie{}, id).Error; err != nil {
		return fmt.Errorf("delete movie: %w", err)
	}
	return nil
}

// SearchByText performs a case-insensitive partial match on title or director.
// Director may be NULL, so it goes through COALESCE.
func (r *MovieRepo) SearchByText(ctx context.Context, query string, limit int) ([]models.Movie, error) {
	var list []models.Movie
	p := "%" + query + "%"
	if err := r.db.WithContext(ctx).
		Where("title ILIKE ? OR COALESCE(director,'') ILIKE ?", p, p).
		Order("created_at desc").
		Limit(limit).
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("search movies: %w", err)
	}
	return list, nil
}
