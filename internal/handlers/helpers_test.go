package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"movie-catalog/internal/config"
	"movie-catalog/internal/handlers"
	"movie-catalog/internal/models"
	"movie-catalog/internal/routes"
	"movie-catalog/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// stub services: each method delegates to its function field when set.

type stubMovieService struct {
	createGenreFn  func(ctx context.Context, name string) error
	createMovieFn  func(ctx context.Context, movie *models.Movie) error
	searchMoviesFn func(ctx context.Context, name string, page int) (*models.MovieSearchResult, error)
	deleteMovieFn  func(ctx context.Context, name string) error
}

func (s *stubMovieService) CreateGenre(ctx context.Context, name string) error {
	if s.createGenreFn == nil {
		return nil
	}
	return s.createGenreFn(ctx, name)
}

func (s *stubMovieService) CreateMovie(ctx context.Context, movie *models.Movie) error {
	if s.createMovieFn == nil {
		return nil
	}
	return s.createMovieFn(ctx, movie)
}

func (s *stubMovieService) SearchMovies(ctx context.Context, name string, page int) (*models.MovieSearchResult, error) {
	if s.searchMoviesFn == nil {
		return &models.MovieSearchResult{CurrentPage: page, Movies: []models.Movie{}}, nil
	}
	return s.searchMoviesFn(ctx, name, page)
}

func (s *stubMovieService) DeleteMovie(ctx context.Context, name string) error {
	if s.deleteMovieFn == nil {
		return nil
	}
	return s.deleteMovieFn(ctx, name)
}

type stubReviewService struct {
	addReviewFn func(ctx context.Context, review *models.Review) error
}

func (s *stubReviewService) AddReview(ctx context.Context, review *models.Review) error {
	if s.addReviewFn == nil {
		return nil
	}
	return s.addReviewFn(ctx, review)
}

type stubFavoriteService struct {
	addFavoriteFn   func(ctx context.Context, username, movieName string) error
	listFavoritesFn func(ctx context.Context, username string) ([]models.Favorite, error)
}

func (s *stubFavoriteService) AddFavorite(ctx context.Context, username, movieName string) error {
	if s.addFavoriteFn == nil {
		return nil
	}
	return s.addFavoriteFn(ctx, username, movieName)
}

func (s *stubFavoriteService) ListFavorites(ctx context.Context, username string) ([]models.Favorite, error) {
	if s.listFavoritesFn == nil {
		return nil, services.ErrNoFavorites
	}
	return s.listFavoritesFn(ctx, username)
}

type stubAuthService struct {
	registerFn func(ctx context.Context, user *models.User, password string) error
	loginFn    func(ctx context.Context, username, password string) (*models.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, user *models.User, password string) error {
	if s.registerFn == nil {
		return nil
	}
	return s.registerFn(ctx, user, password)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (*models.User, error) {
	if s.loginFn == nil {
		return &models.User{Username: username}, nil
	}
	return s.loginFn(ctx, username, password)
}

type stubUploadService struct {
	presignFn func(ctx context.Context, filename, contentType string) (*services.PosterUpload, error)
}

func (s *stubUploadService) PresignPosterUpload(ctx context.Context, filename, contentType string) (*services.PosterUpload, error) {
	return s.presignFn(ctx, filename, contentType)
}

type stubs struct {
	movies    *stubMovieService
	reviews   *stubReviewService
	favorites *stubFavoriteService
	auth      *stubAuthService
	upload    *stubUploadService
}

func newStubs() *stubs {
	return &stubs{
		movies:    &stubMovieService{},
		reviews:   &stubReviewService{},
		favorites: &stubFavoriteService{},
		auth:      &stubAuthService{},
	}
}

// app wires the stubs through the production routing table and middleware.
func (s *stubs) app(t *testing.T) *fiber.App {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	h := routes.Handlers{
		Movie:    handlers.NewMovieHandler(s.movies, log),
		Review:   handlers.NewReviewHandler(s.reviews, log),
		Favorite: handlers.NewFavoriteHandler(s.favorites, log),
		Auth:     handlers.NewAuthHandler(s.auth, log),
	}
	if s.upload != nil {
		h.Upload = handlers.NewUploadHandler(s.upload, log)
	}

	app := routes.NewApp(config.ServerConfig{}, log, nil)
	routes.Setup(app, h)
	return app
}

type envelope struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// send issues a request. A string body is sent verbatim, anything else is
// encoded as JSON.
func send(t *testing.T, app *fiber.App, method, target string, body interface{}) (int, envelope) {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	return resp.StatusCode, env
}
