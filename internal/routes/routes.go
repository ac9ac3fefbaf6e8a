package routes

import (
	"movie-catalog/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

// Handlers groups the endpoint handlers. Upload is optional and its routes
// are only registered when poster storage is configured.
type Handlers struct {
	Movie    *handlers.MovieHandler
	Review   *handlers.ReviewHandler
	Favorite *handlers.FavoriteHandler
	Auth     *handlers.AuthHandler
	Upload   *handlers.UploadHandler
}

func Setup(app *fiber.App, h Handlers) {
	app.Post("/genres", h.Movie.CreateGenre)

	// Movie routes
	app.Post("/movies", h.Movie.CreateMovie)
	app.Get("/search", h.Movie.SearchMovies)
	app.Delete("/movies/:name", h.Movie.DeleteMovie)

	app.Post("/reviews", h.Review.CreateReview)

	app.Post("/favorites", h.Favorite.AddFavorite)
	app.Get("/favorites/:username", h.Favorite.GetFavorites)

	// Auth routes
	app.Post("/login", h.Auth.Login)
	app.Post("/register", h.Auth.Register)

	if h.Upload != nil {
		upload := app.Group("/upload")
		upload.Get("/presign", h.Upload.GetPresignedURL)
	}
}
