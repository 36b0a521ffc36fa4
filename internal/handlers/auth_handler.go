package handlers

import (
	"net/http"

	"github.com/janedoe/codestream/internal/apperror"
	"github.com/janedoe/codestream/internal/models"
	"github.com/janedoe/codestream/internal/services"
	"github.com/labstack/echo/v4"
)

// AuthHandler handles the magic-link sign-in flow. The link itself is a
// demo stub; the session token it produces is a real signed JWT.
type AuthHandler struct {
	userService *services.UserService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userService *services.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// RegisterAuthRoutes registers the unprotected auth routes
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group) {
	g.POST("/magic-link", h.SendMagicLink)
	g.POST("/verify", h.Verify)
}

// RegisterSessionRoutes registers routes that require a session token
func (h *AuthHandler) RegisterSessionRoutes(g *echo.Group) {
	g.GET("/me", h.Me)
}

// SendMagicLink issues a sign-in token for an email address.
func (h *AuthHandler) SendMagicLink(c echo.Context) error {
	var req models.MagicLinkRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperror.Validation("invalid request payload"))
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, apperror.Validation("a valid email is required"))
	}

	token := h.userService.SendMagicLink(c.Request().Context(), req.Email)
	return respond(c, http.StatusOK, map[string]string{"token": token})
}

// Verify exchanges a magic-link token for the user and a session JWT.
func (h *AuthHandler) Verify(c echo.Context) error {
	var req models.VerifyTokenRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperror.Validation("invalid request payload"))
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, apperror.Validation("token is required"))
	}

	user, sessionToken, err := h.userService.VerifyMagicToken(c.Request().Context(), req.Token)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, map[string]interface{}{
		"user":         user,
		"sessionToken": sessionToken,
	})
}

// Me returns the profile behind the session token.
func (h *AuthHandler) Me(c echo.Context) error {
	claims, ok := c.Get("session").(*models.SessionClaims)
	if !ok {
		return respondError(c, apperror.Validation("missing session"))
	}
	user, err := h.userService.GetUser(c.Request().Context(), claims.UserID)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, user)
}
