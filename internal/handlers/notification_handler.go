package handlers

import (
	"net/http"

	"github.com/janedoe/codestream/internal/apperror"
	"github.com/janedoe/codestream/internal/models"
	"github.com/janedoe/codestream/internal/services"
	"github.com/labstack/echo/v4"
)

// NotificationHandler handles HTTP requests related to notifications
type NotificationHandler struct {
	notifier *services.Notifier
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notifier *services.Notifier) *NotificationHandler {
	return &NotificationHandler{notifier: notifier}
}

// RegisterNotificationRoutes registers notification routes
func (h *NotificationHandler) RegisterNotificationRoutes(g *echo.Group) {
	g.GET("/notifications/:userId", h.ListForUser)
	g.PUT("/notifications/read", h.MarkAsRead)
}

// ListForUser returns a user's notifications, newest first. Clients poll
// this endpoint; there is no push channel.
func (h *NotificationHandler) ListForUser(c echo.Context) error {
	notifications, err := h.notifier.ListForUser(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, notifications)
}

// MarkAsRead flips read=true on the caller's listed notifications.
func (h *NotificationHandler) MarkAsRead(c echo.Context) error {
	var req models.MarkNotificationsReadRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperror.Validation("invalid request payload"))
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, apperror.Validation("User ID and notification IDs are required"))
	}

	if err := h.notifier.MarkAsRead(c.Request().Context(), req.UserID, req.NotificationIDs); err != nil {
		return respondError(c, err)
	}
	return respondOK(c)
}
