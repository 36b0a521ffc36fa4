package handlers

import (
	"net/http"

	"github.com/janedoe/codestream/internal/apperror"
	"github.com/janedoe/codestream/internal/models"
	"github.com/janedoe/codestream/internal/services"
	"github.com/labstack/echo/v4"
)

// UserHandler handles HTTP requests related to user profiles
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterUserRoutes registers profile and leaderboard routes
func (h *UserHandler) RegisterUserRoutes(g *echo.Group) {
	g.GET("/users", h.ListUsers)
	g.PUT("/users/me", h.UpdateMe)
	g.GET("/leaderboard", h.Leaderboard)
}

// ListUsers returns all user profiles.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userService.ListUsers(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, users)
}

// UpdateMe applies a partial update to the caller's profile.
func (h *UserHandler) UpdateMe(c echo.Context) error {
	var req models.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperror.Validation("invalid request payload"))
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, apperror.Validation("User ID and updates are required"))
	}

	user, err := h.userService.UpdateUser(c.Request().Context(), req.UserID, req.Updates)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, user)
}

// Leaderboard returns users ranked by skills and ideas ranked by upvotes.
func (h *UserHandler) Leaderboard(c echo.Context) error {
	data, err := h.userService.Leaderboard(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, data)
}
