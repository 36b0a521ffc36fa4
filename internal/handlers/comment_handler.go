package handlers

import (
	"net/http"

	"github.com/janedoe/codestream/internal/apperror"
	"github.com/janedoe/codestream/internal/models"
	"github.com/janedoe/codestream/internal/services"
	"github.com/labstack/echo/v4"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	ideaService *services.IdeaService
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(ideaService *services.IdeaService) *CommentHandler {
	return &CommentHandler{ideaService: ideaService}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.GET("/ideas/:id/comments", h.ListComments)
	g.POST("/ideas/:id/comments", h.CreateComment)
}

// ListComments retrieves all comments on an idea, oldest first.
func (h *CommentHandler) ListComments(c echo.Context) error {
	comments, err := h.ideaService.ListComments(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, comments)
}

// CreateComment posts a new comment on an idea
func (h *CommentHandler) CreateComment(c echo.Context) error {
	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperror.Validation("invalid request payload"))
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, apperror.Validation(err.Error()))
	}

	comment, err := h.ideaService.AddComment(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusCreated, comment)
}
