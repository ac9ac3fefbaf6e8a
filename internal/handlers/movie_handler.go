package handlers

import (
	"errors"
	"strconv"

	"movie-catalog/internal/models"
	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type MovieHandler struct {
	service services.MovieService
	logger  *logrus.Logger
}

func NewMovieHandler(service services.MovieService, logger *logrus.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		logger:  logger,
	}
}

// CreateGenre godoc
// @Summary Create a genre
// @Description Register a new genre. Genre names are unique.
// @Tags genres
// @Accept json
// @Produce json
// @Param genre body GenreRequest true "Genre"
// @Success 201 {object} utils.StandardResponse "Genre added successfully"
// @Failure 400 {object} utils.StandardResponse "Missing genre name or genre already exists"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /genres [post]
func (h *MovieHandler) CreateGenre(c *fiber.Ctx) error {
	var req GenreRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.GenreName == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Genre name is required.")
	}

	if err := h.service.CreateGenre(c.Context(), req.GenreName); err != nil {
		if errors.Is(err, services.ErrGenreAlreadyExists) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Genre already exists.")
		}
		h.logger.WithError(err).WithField("genre_name", req.GenreName).Error("Failed to create genre")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Genre added successfully.", nil)
}

// CreateMovie godoc
// @Summary Create a movie
// @Description Register a new movie. The genre is not checked against the registered genres.
// @Tags movies
// @Accept json
// @Produce json
// @Param movie body MovieRequest true "Movie"
// @Success 201 {object} utils.StandardResponse "Movie added successfully"
// @Failure 400 {object} utils.StandardResponse "Missing fields"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /movies [post]
func (h *MovieHandler) CreateMovie(c *fiber.Ctx) error {
	var req MovieRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.MovieName == "" || req.MovieYear == 0 || req.GenreName == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Movie name, year, and genre are required.")
	}

	movie := &models.Movie{
		Name:      req.MovieName,
		Year:      req.MovieYear,
		GenreName: req.GenreName,
	}
	if err := h.service.CreateMovie(c.Context(), movie); err != nil {
		h.logger.WithError(err).WithField("movie_name", req.MovieName).Error("Failed to create movie")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Movie added successfully.", nil)
}

// SearchMovies godoc
// @Summary Search movies by name
// @Description Case-insensitive substring search, ten movies per page
// @Tags movies
// @Produce json
// @Param movie_name query string true "Part of the movie name"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} utils.StandardResponse{data=models.MovieSearchResult} "Search results"
// @Failure 400 {object} utils.StandardResponse "Missing movie name or invalid page"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /search [get]
func (h *MovieHandler) SearchMovies(c *fiber.Ctx) error {
	name := c.Query("movie_name")
	if name == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Please provide a movie name to search for.")
	}

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Page must be a positive integer.")
	}

	result, err := h.service.SearchMovies(c.Context(), name, page)
	if err != nil {
		// the store message stays in the log on this path
		h.logger.WithError(err).WithFields(logrus.Fields{
			"movie_name": name,
			"page":       page,
		}).Error("Failed to search movies")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "An error occurred while searching for movies.")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movies retrieved successfully", result)
}

// DeleteMovie godoc
// @Summary Delete a movie
// @Description Delete a movie by name together with its reviews and favorites
// @Tags movies
// @Produce json
// @Param name path string true "Movie name"
// @Success 200 {object} utils.StandardResponse "Movie deleted successfully"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /movies/{name} [delete]
func (h *MovieHandler) DeleteMovie(c *fiber.Ctx) error {
	name := c.Params("name")

	if err := h.service.DeleteMovie(c.Context(), name); err != nil {
		if errors.Is(err, services.ErrMovieNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found.")
		}
		h.logger.WithError(err).WithField("movie_name", name).Error("Failed to delete movie")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Something went wrong while deleting the movie: "+err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie deleted successfully.", nil)
}
