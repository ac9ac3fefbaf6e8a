package services

import (
	"context"

	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"

	"github.com/sirupsen/logrus"
)

type ReviewService interface {
	AddReview(ctx context.Context, review *models.Review) error
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
	movieRepo  repository.MovieRepository
	userRepo   repository.UserRepository
	logger     *logrus.Logger
}

func NewReviewService(
	reviewRepo repository.ReviewRepository,
	movieRepo repository.MovieRepository,
	userRepo repository.UserRepository,
	logger *logrus.Logger,
) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		movieRepo:  movieRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// AddReview checks the movie, then the user, then inserts. The checks and
// the insert are separate statements.
func (s *reviewService) AddReview(ctx context.Context, review *models.Review) error {
	movie, err := s.movieRepo.FindByName(ctx, review.MovieName)
	if err != nil {
		return err
	}
	if movie == nil {
		return ErrMovieNotFound
	}

	user, err := s.userRepo.FindByUsername(ctx, review.Username)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"review_id":  review.ID,
		"movie_name": review.MovieName,
		"username":   review.Username,
	}).Debug("Review added")
	return nil
}
