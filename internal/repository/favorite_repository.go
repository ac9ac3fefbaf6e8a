package repository

import (
	"context"

	"movie-catalog/internal/database"
	"movie-catalog/internal/models"
)

type FavoriteRepository interface {
	Create(ctx context.Context, favorite *models.Favorite) error
	Exists(ctx context.Context, username, movieName string) (bool, error)
	FindByUsername(ctx context.Context, username string) ([]models.Favorite, error)
	DeleteByMovie(ctx context.Context, movieName string) (int64, error)
}

type favoriteRepository struct {
	db *database.Database
	queryTimeout
}

func NewFavoriteRepository(db *database.Database) FavoriteRepository {
	return &favoriteRepository{
		db:           db,
		queryTimeout: queryTimeout(db.GetQueryTimeout()),
	}
}

func (r *favoriteRepository) Create(ctx context.Context, favorite *models.Favorite) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(favorite).Error
}

func (r *favoriteRepository) Exists(ctx context.Context, username, movieName string) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var count int64
	err := r.db.WithContext(ctx).Model(&models.Favorite{}).
		Where("username = ? AND movie_name = ?", username, movieName).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *favoriteRepository) FindByUsername(ctx context.Context, username string) ([]models.Favorite, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var favorites []models.Favorite
	err := r.db.WithContext(ctx).Where("username = ?", username).Order("movie_name ASC").Find(&favorites).Error
	return favorites, err
}

func (r *favoriteRepository) DeleteByMovie(ctx context.Context, movieName string) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result := r.db.WithContext(ctx).Where("movie_name = ?", movieName).Delete(&models.Favorite{})
	return result.RowsAffected, result.Error
}
