package repository

import (
	"context"
	"errors"

	"movie-catalog/internal/database"
	"movie-catalog/internal/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	// FindByUsername returns nil, nil when the username is unknown.
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

type userRepository struct {
	db *database.Database
	queryTimeout
}

func NewUserRepository(db *database.Database) UserRepository {
	return &userRepository{
		db:           db,
		queryTimeout: queryTimeout(db.GetQueryTimeout()),
	}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var user models.User
	err := r.db.WithContext(ctx).Where("username = ?", username).Take(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
