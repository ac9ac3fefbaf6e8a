package services

import (
	"context"
	"io"
	"sort"
	"strings"

	"movie-catalog/internal/models"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func uniqueViolation() error {
	return &pgconn.PgError{Code: pgerrcode.UniqueViolation}
}

// memoryStore backs the fake repositories with plain slices and maps. An
// entry in failures makes the named operation return that error.
type memoryStore struct {
	genres       map[string]bool
	movies       []models.Movie
	users        map[string]models.User
	reviews      []models.Review
	favorites    []models.Favorite
	nextReviewID uint
	failures     map[string]error
	calls        []string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		genres:   map[string]bool{},
		users:    map[string]models.User{},
		failures: map[string]error{},
	}
}

func (s *memoryStore) call(op string) error {
	s.calls = append(s.calls, op)
	return s.failures[op]
}

type fakeGenreRepo struct{ *memoryStore }

func (r fakeGenreRepo) Create(_ context.Context, genre *models.Genre) error {
	if err := r.call("genres.create"); err != nil {
		return err
	}
	if r.genres[genre.Name] {
		return uniqueViolation()
	}
	r.genres[genre.Name] = true
	return nil
}

type fakeMovieRepo struct{ *memoryStore }

func (r fakeMovieRepo) Create(_ context.Context, movie *models.Movie) error {
	if err := r.call("movies.create"); err != nil {
		return err
	}
	r.movies = append(r.movies, *movie)
	return nil
}

func (r fakeMovieRepo) FindByName(_ context.Context, name string) (*models.Movie, error) {
	if err := r.call("movies.find"); err != nil {
		return nil, err
	}
	for _, m := range r.movies {
		if m.Name == name {
			movie := m
			return &movie, nil
		}
	}
	return nil, nil
}

func (r fakeMovieRepo) Search(_ context.Context, term string, page, limit int) ([]models.Movie, int64, error) {
	if err := r.call("movies.search"); err != nil {
		return nil, 0, err
	}
	var matched []models.Movie
	for _, m := range r.movies {
		if strings.Contains(strings.ToLower(m.Name), strings.ToLower(term)) {
			matched = append(matched, m)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Name != matched[j].Name {
			return matched[i].Name < matched[j].Name
		}
		return matched[i].Year < matched[j].Year
	})

	offset := (page - 1) * limit
	if offset >= len(matched) {
		return nil, int64(len(matched)), nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], int64(len(matched)), nil
}

func (r fakeMovieRepo) DeleteByName(_ context.Context, name string) (int64, error) {
	if err := r.call("movies.delete"); err != nil {
		return 0, err
	}
	kept := r.movies[:0]
	var deleted int64
	for _, m := range r.movies {
		if m.Name == name {
			deleted++
			continue
		}
		kept = append(kept, m)
	}
	r.movies = kept
	return deleted, nil
}

type fakeUserRepo struct{ *memoryStore }

func (r fakeUserRepo) Create(_ context.Context, user *models.User) error {
	if err := r.call("users.create"); err != nil {
		return err
	}
	if _, ok := r.users[user.Username]; ok {
		return uniqueViolation()
	}
	r.users[user.Username] = *user
	return nil
}

func (r fakeUserRepo) FindByUsername(_ context.Context, username string) (*models.User, error) {
	if err := r.call("users.find"); err != nil {
		return nil, err
	}
	user, ok := r.users[username]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

type fakeReviewRepo struct{ *memoryStore }

func (r fakeReviewRepo) Create(_ context.Context, review *models.Review) error {
	if err := r.call("reviews.create"); err != nil {
		return err
	}
	r.nextReviewID++
	review.ID = r.nextReviewID
	r.reviews = append(r.reviews, *review)
	return nil
}

func (r fakeReviewRepo) DeleteByMovie(_ context.Context, movieName string) (int64, error) {
	if err := r.call("reviews.delete"); err != nil {
		return 0, err
	}
	kept := r.reviews[:0]
	var deleted int64
	for _, rv := range r.reviews {
		if rv.MovieName == movieName {
			deleted++
			continue
		}
		kept = append(kept, rv)
	}
	r.reviews = kept
	return deleted, nil
}

type fakeFavoriteRepo struct{ *memoryStore }

func (r fakeFavoriteRepo) Create(_ context.Context, favorite *models.Favorite) error {
	if err := r.call("favorites.create"); err != nil {
		return err
	}
	r.favorites = append(r.favorites, *favorite)
	return nil
}

func (r fakeFavoriteRepo) Exists(_ context.Context, username, movieName string) (bool, error) {
	if err := r.call("favorites.exists"); err != nil {
		return false, err
	}
	for _, f := range r.favorites {
		if f.Username == username && f.MovieName == movieName {
			return true, nil
		}
	}
	return false, nil
}

func (r fakeFavoriteRepo) FindByUsername(_ context.Context, username string) ([]models.Favorite, error) {
	if err := r.call("favorites.find"); err != nil {
		return nil, err
	}
	var found []models.Favorite
	for _, f := range r.favorites {
		if f.Username == username {
			found = append(found, f)
		}
	}
	return found, nil
}

func (r fakeFavoriteRepo) DeleteByMovie(_ context.Context, movieName string) (int64, error) {
	if err := r.call("favorites.delete"); err != nil {
		return 0, err
	}
	kept := r.favorites[:0]
	var deleted int64
	for _, f := range r.favorites {
		if f.MovieName == movieName {
			deleted++
			continue
		}
		kept = append(kept, f)
	}
	r.favorites = kept
	return deleted, nil
}
