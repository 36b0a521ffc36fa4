package handlers

import (
	"net/http"

	"github.com/janedoe/codestream/internal/apperror"
	"github.com/janedoe/codestream/internal/models"
	"github.com/janedoe/codestream/internal/services"
	"github.com/labstack/echo/v4"
)

// IdeaHandler handles HTTP requests related to ideas
type IdeaHandler struct {
	ideaService *services.IdeaService
}

// NewIdeaHandler creates a new IdeaHandler
func NewIdeaHandler(ideaService *services.IdeaService) *IdeaHandler {
	return &IdeaHandler{ideaService: ideaService}
}

// RegisterIdeaRoutes registers idea-related routes
func (h *IdeaHandler) RegisterIdeaRoutes(g *echo.Group) {
	g.GET("/ideas", h.ListIdeas)
	g.GET("/ideas/:id", h.GetIdea)
	g.POST("/ideas", h.CreateIdea)
	g.PUT("/ideas/:id", h.UpdateIdea)
	g.DELETE("/ideas/:id", h.DeleteIdea)
	g.PUT("/ideas/:id/upvote", h.Upvote)
}

// ListIdeas returns all ideas, newest first.
func (h *IdeaHandler) ListIdeas(c echo.Context) error {
	ideas, err := h.ideaService.ListIdeas(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, ideas)
}

// GetIdea returns one idea with its author, team, members and requesters.
func (h *IdeaHandler) GetIdea(c echo.Context) error {
	detail, err := h.ideaService.GetIdeaDetail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, detail)
}

// CreateIdea creates a new idea
func (h *IdeaHandler) CreateIdea(c echo.Context) error {
	var req models.CreateIdeaRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperror.Validation("invalid request payload"))
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, apperror.Validation(err.Error()))
	}

	idea, err := h.ideaService.AddIdea(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusCreated, idea)
}

// UpdateIdea applies a partial update to an idea
func (h *IdeaHandler) UpdateIdea(c echo.Context) error {
	var patch models.IdeaPatch
	if err := c.Bind(&patch); err != nil {
		return respondError(c, apperror.Validation("invalid request payload"))
	}
	if err := c.Validate(&patch); err != nil {
		return respondError(c, apperror.Validation(err.Error()))
	}

	idea, err := h.ideaService.UpdateIdea(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, idea)
}

// DeleteIdea removes an idea and everything attached to it.
func (h *IdeaHandler) DeleteIdea(c echo.Context) error {
	if err := h.ideaService.DeleteIdea(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return respondOK(c)
}

// Upvote increments an idea's upvote counter. The body may carry the
// acting user's id; without it the upvote is anonymous.
func (h *IdeaHandler) Upvote(c echo.Context) error {
	var body struct {
		UserID string `json:"userId"`
	}
	if err := c.Bind(&body); err != nil {
		return respondError(c, apperror.Validation("invalid request payload"))
	}

	idea, err := h.ideaService.Upvote(c.Request().Context(), c.Param("id"), body.UserID)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, idea)
}
