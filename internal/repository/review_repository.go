package repository

import (
	"context"

	"movie-catalog/internal/database"
	"movie-catalog/internal/models"
)

type ReviewRepository interface {
	// Create inserts the review and sets its store-assigned ID.
	Create(ctx context.Context, review *models.Review) error
	DeleteByMovie(ctx context.Context, movieName string) (int64, error)
}

type reviewRepository struct {
	db *database.Database
	queryTimeout
}

func NewReviewRepository(db *database.Database) ReviewRepository {
	return &reviewRepository{
		db:           db,
		queryTimeout: queryTimeout(db.GetQueryTimeout()),
	}
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) DeleteByMovie(ctx context.Context, movieName string) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result := r.db.WithContext(ctx).Where("movie_name = ?", movieName).Delete(&models.Review{})
	return result.RowsAffected, result.Error
}
