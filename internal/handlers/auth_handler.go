package handlers

import (
	"errors"

	"movie-catalog/internal/models"
	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	service services.AuthService
	logger  *logrus.Logger
}

func NewAuthHandler(service services.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger,
	}
}

// Login godoc
// @Summary Log in
// @Description Check a username and password. No token or session is issued.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} utils.StandardResponse{data=LoginResponse} "Login successful"
// @Failure 400 {object} utils.StandardResponse "Missing fields"
// @Failure 401 {object} utils.StandardResponse "Invalid username or password"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Username == "" || req.Password == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Username and password are required.")
	}

	user, err := h.service.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid username or password.")
		}
		h.logger.WithError(err).Error("Failed to log in")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Login successful", LoginResponse{Username: user.Username})
}

// Register godoc
// @Summary Register a user
// @Description Create a user account. The password is stored as a bcrypt digest.
// @Tags auth
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "User"
// @Success 201 {object} utils.StandardResponse "User created successfully"
// @Failure 400 {object} utils.StandardResponse "Missing fields or password too long"
// @Failure 409 {object} utils.StandardResponse "Username already exists"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Name == "" || req.Username == "" || req.Password == "" || req.BirthYear == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Name, username, password, and birth year are required.")
	}

	user := &models.User{
		Username:  req.Username,
		Name:      req.Name,
		BirthYear: req.BirthYear,
	}
	if err := h.service.Register(c.Context(), user, req.Password); err != nil {
		switch {
		case errors.Is(err, services.ErrUsernameTaken):
			return utils.ErrorResponse(c, fiber.StatusConflict, "Username already exists.")
		case errors.Is(err, services.ErrPasswordTooLong):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Password must be at most 72 bytes.")
		}
		h.logger.WithError(err).WithField("username", req.Username).Error("Failed to register user")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "User created successfully.", nil)
}
