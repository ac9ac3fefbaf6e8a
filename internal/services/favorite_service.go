package services

import (
	"context"

	"movie-catalog/internal/database"
	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"

	"github.com/sirupsen/logrus"
)

type FavoriteService interface {
	AddFavorite(ctx context.Context, username, movieName string) error
	// ListFavorites returns ErrNoFavorites when the user has none, which
	// includes usernames that do not exist.
	ListFavorites(ctx context.Context, username string) ([]models.Favorite, error)
}

type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	movieRepo    repository.MovieRepository
	userRepo     repository.UserRepository
	logger       *logrus.Logger
}

func NewFavoriteService(
	favoriteRepo repository.FavoriteRepository,
	movieRepo repository.MovieRepository,
	userRepo repository.UserRepository,
	logger *logrus.Logger,
) FavoriteService {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		movieRepo:    movieRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

func (s *favoriteService) AddFavorite(ctx context.Context, username, movieName string) error {
	movie, err := s.movieRepo.FindByName(ctx, movieName)
	if err != nil {
		return err
	}
	if movie == nil {
		return ErrMovieNotFound
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	exists, err := s.favoriteRepo.Exists(ctx, username, movieName)
	if err != nil {
		return err
	}
	if exists {
		return ErrFavoriteExists
	}

	// the primary key catches a concurrent insert that passed the check above
	if err := s.favoriteRepo.Create(ctx, &models.Favorite{Username: username, MovieName: movieName}); err != nil {
		if database.IsUniqueViolation(err) {
			return ErrFavoriteExists
		}
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"movie_name": movieName,
		"username":   username,
	}).Debug("Favorite added")
	return nil
}

func (s *favoriteService) ListFavorites(ctx context.Context, username string) ([]models.Favorite, error) {
	favorites, err := s.favoriteRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if len(favorites) == 0 {
		return nil, ErrNoFavorites
	}
	return favorites, nil
}
