package repository

import (
	"context"

	"movie-catalog/internal/database"
	"movie-catalog/internal/models"
)

type GenreRepository interface {
	Create(ctx context.Context, genre *models.Genre) error
}

type genreRepository struct {
	db *database.Database
	queryTimeout
}

func NewGenreRepository(db *database.Database) GenreRepository {
	return &genreRepository{
		db:           db,
		queryTimeout: queryTimeout(db.GetQueryTimeout()),
	}
}

func (r *genreRepository) Create(ctx context.Context, genre *models.Genre) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(genre).Error
}
