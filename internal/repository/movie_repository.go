package repository

import (
	"context"
	"errors"
	"math"

	"movie-catalog/internal/database"
	"movie-catalog/internal/models"

	"gorm.io/gorm"
)

type MovieRepository interface {
	Create(ctx context.Context, movie *models.Movie) error
	// FindByName returns nil, nil when no movie has that name.
	FindByName(ctx context.Context, name string) (*models.Movie, error)
	Search(ctx context.Context, term string, page, limit int) ([]models.Movie, int64, error)
	DeleteByName(ctx context.Context, name string) (int64, error)
}

type movieRepository struct {
	db *database.Database
	queryTimeout
}

func NewMovieRepository(db *database.Database) MovieRepository {
	return &movieRepository{
		db:           db,
		queryTimeout: queryTimeout(db.GetQueryTimeout()),
	}
}

func (r *movieRepository) Create(ctx context.Context, movie *models.Movie) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(movie).Error
}

func (r *movieRepository) FindByName(ctx context.Context, name string) (*models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movie models.Movie
	err := r.db.WithContext(ctx).Where("movie_name = ?", name).Take(&movie).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &movie, nil
}

// Search matches term case-insensitively anywhere in the movie name. Results
// are ordered by name, then year, so that pages are stable.
func (r *movieRepository) Search(ctx context.Context, term string, page, limit int) ([]models.Movie, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	pattern := containsPattern(term)
	matching := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&models.Movie{}).Where("movie_name ILIKE ?", pattern)
	}

	var total int64
	if err := matching().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// a page whose offset does not fit in an int is past any real result set
	if page-1 > math.MaxInt/limit {
		return []models.Movie{}, total, nil
	}

	var movies []models.Movie
	offset := (page - 1) * limit
	if err := matching().Order("movie_name ASC, movie_year ASC").Offset(offset).Limit(limit).Find(&movies).Error; err != nil {
		return nil, 0, err
	}

	return movies, total, nil
}

func (r *movieRepository) DeleteByName(ctx context.Context, name string) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result := r.db.WithContext(ctx).Where("movie_name = ?", name).Delete(&models.Movie{})
	return result.RowsAffected, result.Error
}
