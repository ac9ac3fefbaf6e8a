package handlers

import (
	"errors"
	"fmt"

	"movie-catalog/internal/models"
	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ReviewHandler struct {
	service services.ReviewService
	logger  *logrus.Logger
}

func NewReviewHandler(service services.ReviewService, logger *logrus.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		logger:  logger,
	}
}

// CreateReview godoc
// @Summary Post a review
// @Description Review an existing movie as an existing user. A stars value of 0 counts as missing.
// @Tags reviews
// @Accept json
// @Produce json
// @Param review body ReviewRequest true "Review"
// @Success 201 {object} utils.StandardResponse "Review added successfully"
// @Failure 400 {object} utils.StandardResponse "Missing fields"
// @Failure 404 {object} utils.StandardResponse "Movie or user does not exist"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /reviews [post]
func (h *ReviewHandler) CreateReview(c *fiber.Ctx) error {
	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Username == "" || req.MovieName == "" || req.Stars == 0 || req.ReviewText == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Username, movie name, stars, and review text are required.")
	}

	review := &models.Review{
		Stars:      req.Stars,
		MovieName:  req.MovieName,
		Username:   req.Username,
		ReviewText: req.ReviewText,
	}
	if err := h.service.AddReview(c.Context(), review); err != nil {
		switch {
		case errors.Is(err, services.ErrMovieNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, fmt.Sprintf("Movie '%s' does not exist.", req.MovieName))
		case errors.Is(err, services.ErrUserNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, fmt.Sprintf("User '%s' does not exist.", req.Username))
		}
		h.logger.WithError(err).WithFields(logrus.Fields{
			"movie_name": req.MovieName,
			"username":   req.Username,
		}).Error("Failed to add review")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Review added successfully.", nil)
}
