package service_test

import (
	"context"
	"testing"

	"filmoteka/internal/http-api/dto"
	"filmoteka/internal/http-api/models"
	"filmoteka/internal/http-api/repository"
	"filmoteka/internal/http-api/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }

// --- MOCK REPOSITORY ---

type MockMovieRepo struct {
	mock.Mock
}

func (m *MockMovieRepo) List(ctx context.Context, opts dto.MovieQueryOptions) ([]models.Movie, int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).([]models.Movie), args.Get(1).(int64), args.Error(2)
}

func (m *MockMovieRepo) GetByID(ctx context.Context, id int64) (*models.Movie, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Movie), args.Error(1)
}

func (m *MockMovieRepo) GetByImdbID(ctx context.Context, imdbID string) (*models.Movie, error) {
	args := m.Called(ctx, imdbID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Movie), args.Error(1)
}

func (m *MockMovieRepo) Create(ctx context.Context, movie *models.Movie) error {
	args := m.Called(ctx, movie)
	return args.Error(0)
}

func (m *MockMovieRepo) Update(ctx context.Context, movie *models.Movie) error {
	args := m.Called(ctx, movie)
	return args.Error(0)
}

func (m *MockMovieRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMovieRepo) SearchByText(ctx context.Context, query string, limit int) ([]models.Movie, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Movie), args.Error(1)
}

// --- TESTS ---

func TestMovieService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockMovieRepo)
		svc := service.NewMovieService(repo)

		repo.On("GetByImdbID", mock.Anything, "tt0468569").Return(nil, gorm.ErrRecordNotFound).Once()
		repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Movie")).Return(nil).Once()

		m := &models.Movie{ImdbID: "tt0468569", Title: "The Dark Knight"}
		err := svc.Create(ctx, m)

		assert.NoError(t, err)
		assert.NotNil(t, m.Actors)
		assert.NotNil(t, m.Genres)
		repo.AssertExpectations(t)
	})

	t.Run("MissingImdbID", func(t *testing.T) {
		repo := new(MockMovieRepo)
		svc := service.NewMovieService(repo)

		err := svc.Create(ctx, &models.Movie{Title: "The Dark Knight"})

		assert.True(t, service.IsValidation(err))
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("MissingTitle", func(t *testing.T) {
		repo := new(MockMovieRepo)
		svc := service.NewMovieService(repo)

		err := svc.Create(ctx, &models.Movie{ImdbID: "tt0468569", Title: "   "})

		assert.True(t, service.IsValidation(err))
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("RatingOutOfRange", func(t *testing.T) {
		repo := new(MockMovieRepo)
		svc := service.NewMovieService(repo)

		err := svc.Create(ctx, &models.Movie{ImdbID: "tt0468569", Title: "The Dark Knight", UserRating: floatPtr(10.5)})

		assert.True(t, service.IsValidation(err))
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("RatingMarksWatched", func(t *testing.T) {
		repo := new(MockMovieRepo)
		svc := service.NewMovieService(repo)

		repo.On("GetByImdbID", mock.Anything, "tt0468569").Return(nil, gorm.ErrRecordNotFound).Once()
		repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Movie")).Return(nil).Once()

		m := &models.Movie{ImdbID: "tt0468569", Title: "The Dark Knight", UserRating: floatPtr(9)}
		err := svc.Create(ctx, m)

		assert.NoError(t, err)
		assert.True(t, m.Watched)
		assert.NotNil(t, m.WatchDate)
		repo.AssertExpectations(t)
	})

	t.Run("DuplicatePreCheck", func(t *testing.T) {
		repo := new(MockMovieRepo)
		svc := service.NewMovieService(repo)

		existing := &models.Movie{ID: 1, ImdbID: "tt0468569", Title: "The Dark Knight"}
		repo.On("GetByImdbID", mock.Anything, "tt0468569").Return(existing, nil).Once()

		err := svc.Create(ctx, &models.Movie{ImdbID: "tt0468569", Title: "The Dark Knight"})

		assert.ErrorIs(t, err, service.ErrDuplicate)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("DuplicateAtStore", func(t *testing.T) {
		// pre-check passed but a concurrent create won the race;
		// the unique index decides
		repo := new(MockMovieRepo)
		svc := service.NewMovieService(repo)

		repo.On("GetByImdbID", mock.Anything, "tt0468569").Return(nil, gorm.ErrRecordNotFound).Once()
		repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Movie")).
			Return(repository.ErrDuplicateKey).Once()

		err := svc.Create(ctx, &models.Movie{ImdbID: "tt0468569", Title: "The Dark Knight"})

		assert.ErrorIs(t, err, service.ErrDuplicate)
		repo.AssertExpectations(t)
	})
}

func TestMovieService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("NotFound", func(t *testing.T) {
		repo := new(MockMovieRepo)
		svc := service.NewMovieService(repo)

		repo.On("GetByID", mock.Anything, int64(999)).Return(nil, gorm.ErrRecordNotFound).Once()

		_, err := svc.Update(ctx, 999, dto.UpdateMovieDTO{Watched: boolPtr(true)})

		assert.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("PartialUpdateKeepsOtherFields", func(t *testing.T) {
		repo := new(MockMovieRepo)
		svc := service.NewMovieService(repo)

		existing := &models.Movie{ID: 5, ImdbID: "tt0468569", Title: "The Dark Knight", Favorite: true}
		repo.On("GetByID", mock.Anything, int64(5)).Return(existing, nil).Once()
		repo.On("Update", mock.Anything, mock.AnythingOfType("*models.Movie")).Return(nil).Once()

		updated, err := svc.Update(ctx, 5, dto.UpdateMovieDTO{Watched: boolPtr(true)})

		assert.NoError(t, err)
		assert.True(t, updated.Watched)
		assert.True(t, updated.Favorite)
		assert.Equal(t, "The Dark Knight", updated.Title)
		repo.AssertExpectations(t)
	})

	t.Run("RatingMarksWatched", func(t *testing.T) {
		repo := new(MockMovieRepo)
		svc := service.NewMovieService(repo)

		existing := &models.Movie{ID: 5, ImdbID: "tt0468569", Title: "The Dark Knight"}
		repo.On("GetByID", mock.Anything, int64(5)).Return(existing, nil).Once()
		repo.On("Update", mock.Anything, mock.AnythingOfType("*models.Movie")).Return(nil).Once()

		updated, err := svc.Update(ctx, 5, dto.UpdateMovieDTO{UserRating: floatPtr(7)})

		assert.NoError(t, err)
		assert.True(t, updated.Watched)
		assert.Equal(t, 7.0, *updated.UserRating)
		assert.NotNil(t, updated.WatchDate)
		repo.AssertExpectations(t)
	})

	t.Run("RatingOutOfRange", func(t *testing.T) {
		repo := new(MockMovieRepo)
		svc := service.NewMovieService(repo)

		existing := &models.Movie{ID: 5, ImdbID: "tt0468569", Title: "The Dark Knight"}
		repo.On("GetByID", mock.Anything, int64(5)).Return(existing, nil).Once()

		_, err := svc.Update(ctx, 5, dto.UpdateMovieDTO{UserRating: floatPtr(-1)})

		assert.True(t, service.IsValidation(err))
		repo.AssertNotCalled(t, "Update")
	})
}

func TestMovieService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockMovieRepo)
		svc := service.NewMovieService(repo)

		existing := &models.Movie{ID: 5, ImdbID: "tt0468569", Title: "The Dark Knight"}
		repo.On("GetByID", mock.Anything, int64(5)).Return(existing, nil).Once()
		repo.On("Delete", mock.Anything, int64(5)).Return(nil).Once()

		assert.NoError(t, svc.Delete(ctx, 5))
		repo.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := new(MockMovieRepo)
		svc := service.NewMovieService(repo)

		repo.On("GetByID", mock.Anything, int64(999)).Return(nil, gorm.ErrRecordNotFound).Once()

		assert.ErrorIs(t, svc.Delete(ctx, 999), service.ErrNotFound)
		repo.AssertNotCalled(t, "Delete")
	})
}

func TestMovieService_SearchByText(t *testing.T) {
	ctx := context.Background()

	t.Run("EmptyQuery", func(t *testing.T) {
		repo := new(MockMovieRepo)
		svc := service.NewMovieService(repo)

		_, err := svc.SearchByText(ctx, "  ")

		assert.True(t, service.IsValidation(err))
		repo.AssertNotCalled(t, "SearchByText")
	})

	t.Run("CapsResults", func(t *testing.T) {
		repo := new(MockMovieRepo)
		svc := service.NewMovieService(repo)

		repo.On("SearchByText", mock.Anything, "Batman", 20).
			Return([]models.Movie{{ID: 1, Title: "Batman Begins"}}, nil).Once()

		list, err := svc.SearchByText(ctx, "Batman")

		assert.NoError(t, err)
		assert.Len(t, list, 1)
		repo.AssertExpectations(t)
	})
}
