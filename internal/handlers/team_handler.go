package handlers

import (
	"net/http"

	"github.com/janedoe/codestream/internal/apperror"
	"github.com/janedoe/codestream/internal/models"
	"github.com/janedoe/codestream/internal/services"
	"github.com/labstack/echo/v4"
)

// TeamHandler handles HTTP requests for the team join-request workflow
type TeamHandler struct {
	workflow *services.TeamWorkflow
}

// NewTeamHandler creates a new TeamHandler
func NewTeamHandler(workflow *services.TeamWorkflow) *TeamHandler {
	return &TeamHandler{workflow: workflow}
}

// RegisterTeamRoutes registers team and join-request routes
func (h *TeamHandler) RegisterTeamRoutes(g *echo.Group) {
	g.GET("/teams", h.ListTeams)
	g.PUT("/ideas/:id/join", h.RequestToJoin)
	g.POST("/ideas/:ideaId/requests/accept", h.AcceptJoinRequest)
	g.POST("/ideas/:ideaId/requests/decline", h.DeclineJoinRequest)
}

// ListTeams returns all teams.
func (h *TeamHandler) ListTeams(c echo.Context) error {
	teams, err := h.workflow.ListTeams(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, teams)
}

// RequestToJoin records a user's request to join an idea's team.
func (h *TeamHandler) RequestToJoin(c echo.Context) error {
	var req models.JoinTeamRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperror.Validation("invalid request payload"))
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, apperror.Validation("User ID is required"))
	}

	team, err := h.workflow.RequestToJoin(c.Request().Context(), c.Param("id"), req.UserID)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, team)
}

// AcceptJoinRequest moves a pending requester into the team.
func (h *TeamHandler) AcceptJoinRequest(c echo.Context) error {
	var req models.JoinTeamRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperror.Validation("invalid request payload"))
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, apperror.Validation("User ID is required"))
	}

	team, err := h.workflow.AcceptJoinRequest(c.Request().Context(), c.Param("ideaId"), req.UserID)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, team)
}

// DeclineJoinRequest drops a pending join request.
func (h *TeamHandler) DeclineJoinRequest(c echo.Context) error {
	var req models.JoinTeamRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperror.Validation("invalid request payload"))
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, apperror.Validation("User ID is required"))
	}

	team, err := h.workflow.DeclineJoinRequest(c.Request().Context(), c.Param("ideaId"), req.UserID)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, team)
}
