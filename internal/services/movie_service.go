package services

import (
	"context"
	"fmt"

	"movie-catalog/internal/database"
	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"

	"github.com/sirupsen/logrus"
)

// SearchPageSize is the fixed number of movies per search page.
const SearchPageSize = 10

type MovieService interface {
	CreateGenre(ctx context.Context, name string) error
	CreateMovie(ctx context.Context, movie *models.Movie) error
	SearchMovies(ctx context.Context, name string, page int) (*models.MovieSearchResult, error)
	DeleteMovie(ctx context.Context, name string) error
}

type movieService struct {
	movieRepo    repository.MovieRepository
	genreRepo    repository.GenreRepository
	reviewRepo   repository.ReviewRepository
	favoriteRepo repository.FavoriteRepository
	logger       *logrus.Logger
}

func NewMovieService(
	movieRepo repository.MovieRepository,
	genreRepo repository.GenreRepository,
	reviewRepo repository.ReviewRepository,
	favoriteRepo repository.FavoriteRepository,
	logger *logrus.Logger,
) MovieService {
	return &movieService{
		movieRepo:    movieRepo,
		genreRepo:    genreRepo,
		reviewRepo:   reviewRepo,
		favoriteRepo: favoriteRepo,
		logger:       logger,
	}
}

func (s *movieService) CreateGenre(ctx context.Context, name string) error {
	if err := s.genreRepo.Create(ctx, &models.Genre{Name: name}); err != nil {
		if database.IsUniqueViolation(err) {
			return ErrGenreAlreadyExists
		}
		return err
	}
	return nil
}

// CreateMovie does not check that the genre exists.
func (s *movieService) CreateMovie(ctx context.Context, movie *models.Movie) error {
	return s.movieRepo.Create(ctx, movie)
}

func (s *movieService) SearchMovies(ctx context.Context, name string, page int) (*models.MovieSearchResult, error) {
	if page < 1 {
		return nil, ErrInvalidPage
	}

	movies, total, err := s.movieRepo.Search(ctx, name, page, SearchPageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to search movies: %w", err)
	}
	if movies == nil {
		movies = []models.Movie{}
	}

	return &models.MovieSearchResult{
		CurrentPage:  page,
		TotalPages:   int((total + SearchPageSize - 1) / SearchPageSize),
		TotalResults: total,
		Movies:       movies,
	}, nil
}

// DeleteMovie removes the movie's reviews and favorites before the movie
// itself. The steps are independent statements: dependents stay deleted
// when the movie turns out not to exist or a later step fails.
func (s *movieService) DeleteMovie(ctx context.Context, name string) error {
	reviews, err := s.reviewRepo.DeleteByMovie(ctx, name)
	if err != nil {
		return err
	}

	favorites, err := s.favoriteRepo.DeleteByMovie(ctx, name)
	if err != nil {
		return err
	}

	deleted, err := s.movieRepo.DeleteByName(ctx, name)
	if err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"movie_name": name,
		"reviews":    reviews,
		"favorites":  favorites,
		"movies":     deleted,
	}).Debug("Movie delete cascade finished")

	if deleted == 0 {
		return ErrMovieNotFound
	}
	return nil
}
