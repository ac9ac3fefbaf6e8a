package services

import (
	"context"
	"errors"
	"fmt"

	"movie-catalog/internal/database"
	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"

	"github.com/sirupsen/logrus"
)

// AuthService registers users and checks credentials. Login is stateless:
// no token or session is issued.
type AuthService interface {
	Register(ctx context.Context, user *models.User, password string) error
	Login(ctx context.Context, username, password string) (*models.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	hasher   PasswordHasher
	logger   *logrus.Logger
	// dummyDigest is compared against for unknown usernames so that both
	// failed login paths cost one hash comparison.
	dummyDigest string
}

func NewAuthService(userRepo repository.UserRepository, hasher PasswordHasher, logger *logrus.Logger) AuthService {
	dummyDigest, err := hasher.Hash("movie-catalog-dummy-password")
	if err != nil {
		logger.WithError(err).Warn("Failed to prepare dummy password digest")
	}

	return &authService{
		userRepo:    userRepo,
		hasher:      hasher,
		logger:      logger,
		dummyDigest: dummyDigest,
	}
}

func (s *authService) Register(ctx context.Context, user *models.User, password string) error {
	existing, err := s.userRepo.FindByUsername(ctx, user.Username)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrUsernameTaken
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, ErrPasswordTooLong) {
			return err
		}
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = digest

	if err := s.userRepo.Create(ctx, user); err != nil {
		if database.IsUniqueViolation(err) {
			return ErrUsernameTaken
		}
		return err
	}

	s.logger.WithField("username", user.Username).Info("User registered")
	return nil
}

func (s *authService) Login(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		s.hasher.Verify(password, s.dummyDigest)
		s.logger.WithField("username", username).Debug("Login for unknown username")
		return nil, ErrInvalidCredentials
	}

	if !s.hasher.Verify(password, user.Password) {
		s.logger.WithField("username", username).Debug("Login with wrong password")
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
