package handlers

import (
	"errors"

	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type FavoriteHandler struct {
	service services.FavoriteService
	logger  *logrus.Logger
}

func NewFavoriteHandler(service services.FavoriteService, logger *logrus.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		service: service,
		logger:  logger,
	}
}

// AddFavorite godoc
// @Summary Add a favorite movie
// @Description Mark an existing movie as a favorite of an existing user
// @Tags favorites
// @Accept json
// @Produce json
// @Param favorite body FavoriteRequest true "Favorite"
// @Success 201 {object} utils.StandardResponse "Favorite movie added successfully"
// @Failure 400 {object} utils.StandardResponse "Missing fields or already a favorite"
// @Failure 404 {object} utils.StandardResponse "Movie or user not found"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /favorites [post]
func (h *FavoriteHandler) AddFavorite(c *fiber.Ctx) error {
	var req FavoriteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Username == "" || req.MovieName == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Username and movie name are required.")
	}

	if err := h.service.AddFavorite(c.Context(), req.Username, req.MovieName); err != nil {
		switch {
		case errors.Is(err, services.ErrMovieNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found.")
		case errors.Is(err, services.ErrUserNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, "User not found.")
		case errors.Is(err, services.ErrFavoriteExists):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Movie is already in the user's favorites.")
		}
		h.logger.WithError(err).WithFields(logrus.Fields{
			"movie_name": req.MovieName,
			"username":   req.Username,
		}).Error("Failed to add favorite")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Favorite movie added successfully.", nil)
}

// GetFavorites godoc
// @Summary List favorite movies
// @Description List a user's favorites. An empty list is reported as 404.
// @Tags favorites
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} utils.StandardResponse{data=[]models.Favorite} "Favorites"
// @Failure 404 {object} utils.StandardResponse "No favorite movies found"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /favorites/{username} [get]
func (h *FavoriteHandler) GetFavorites(c *fiber.Ctx) error {
	username := c.Params("username")

	favorites, err := h.service.ListFavorites(c.Context(), username)
	if err != nil {
		if errors.Is(err, services.ErrNoFavorites) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "No favorite movies found for this user.")
		}
		h.logger.WithError(err).WithField("username", username).Error("Failed to list favorites")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Favorite movies retrieved successfully", favorites)
}
