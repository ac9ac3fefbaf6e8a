package services

import "errors"

var (
	ErrGenreAlreadyExists = errors.New("genre already exists")
	ErrMovieNotFound      = errors.New("movie not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrFavoriteExists     = errors.New("movie is already a favorite")
	ErrNoFavorites        = errors.New("no favorite movies found")
	ErrInvalidPage        = errors.New("page must be a positive integer")

	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password so that callers cannot tell them apart.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrPasswordTooLong    = errors.New("password is too long")
)
