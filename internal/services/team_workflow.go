package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/janedoe/codestream/internal/apperror"
	"github.com/janedoe/codestream/internal/models"
	"github.com/janedoe/codestream/internal/repositories"
)

// TeamWorkflow enforces the join-request lifecycle of the one team
// attached to each idea. Per (idea, user) the states are
// none -> requested -> member or back to none; there is no direct path
// from none to member.
type TeamWorkflow struct {
	teams    repositories.TeamRepository
	ideas    repositories.IdeaRepository
	users    repositories.UserRepository
	notifier *Notifier
}

// NewTeamWorkflow creates a new TeamWorkflow
func NewTeamWorkflow(teams repositories.TeamRepository, ideas repositories.IdeaRepository, users repositories.UserRepository, notifier *Notifier) *TeamWorkflow {
	return &TeamWorkflow{teams: teams, ideas: ideas, users: users, notifier: notifier}
}

// ListTeams returns every team.
func (w *TeamWorkflow) ListTeams(ctx context.Context) ([]models.Team, error) {
	teams, err := w.teams.GetTeams(ctx)
	if err != nil {
		return nil, err
	}
	if teams == nil {
		teams = []models.Team{}
	}
	return teams, nil
}

// RequestToJoin records userID's request to join the team for ideaID,
// creating the team on the first request. Repeating the call while the
// request is pending, or after the user became a member, is a no-op.
// The idea's author is notified unless the requester is the author.
func (w *TeamWorkflow) RequestToJoin(ctx context.Context, ideaID, userID string) (*models.Team, error) {
	idea, err := w.ideas.GetIdeaByID(ctx, ideaID)
	if err != nil {
		return nil, fmt.Errorf("requesting to join: %w", err)
	}

	team, err := w.teams.GetTeamByIdeaID(ctx, ideaID)
	switch {
	case err == nil:
		if team.HasMember(userID) || team.HasJoinRequest(userID) {
			return team, nil
		}
		team.JoinRequests = append(team.JoinRequests, userID)
		if err := w.teams.SaveTeam(ctx, team); err != nil {
			return nil, fmt.Errorf("requesting to join: %w", err)
		}
	case errors.Is(err, apperror.ErrNotFound):
		team = &models.Team{
			Name:         idea.Title + " Team",
			Mission:      "To build " + idea.Title,
			IdeaID:       ideaID,
			Members:      []string{},
			JoinRequests: []string{userID},
		}
		if err := w.teams.CreateTeam(ctx, team); err != nil {
			return nil, fmt.Errorf("requesting to join: %w", err)
		}
	default:
		return nil, fmt.Errorf("requesting to join: %w", err)
	}

	if idea.AuthorID != userID {
		if requester, err := w.users.GetUserByID(ctx, userID); err == nil {
			w.notifier.Emit(ctx, idea.AuthorID, models.NotificationJoinRequest,
				fmt.Sprintf("%s requested to join your team for %q.", requester.Name, idea.Title),
				"/idea/"+idea.ID)
		}
	}
	return team, nil
}

// AcceptJoinRequest moves userID from the team's join requests to its
// members and notifies the requester. A missing team or a userID without
// a pending request is NotFound: it signals the caller acted on a stale
// view.
func (w *TeamWorkflow) AcceptJoinRequest(ctx context.Context, ideaID, userID string) (*models.Team, error) {
	team, err := w.teams.GetTeamByIdeaID(ctx, ideaID)
	if err != nil {
		return nil, fmt.Errorf("accepting join request: %w", err)
	}
	if !team.HasJoinRequest(userID) {
		return nil, fmt.Errorf("accepting join request: %w", apperror.NotFound("join request", userID))
	}

	team.JoinRequests = removeID(team.JoinRequests, userID)
	if !team.HasMember(userID) {
		team.Members = append(team.Members, userID)
	}
	if err := w.teams.SaveTeam(ctx, team); err != nil {
		return nil, fmt.Errorf("accepting join request: %w", err)
	}

	if idea, err := w.ideas.GetIdeaByID(ctx, ideaID); err == nil {
		w.notifier.Emit(ctx, userID, models.NotificationJoinRequestAccepted,
			fmt.Sprintf("Your request to join the team for %q has been accepted!", idea.Title),
			"/idea/"+idea.ID)
	}
	return team, nil
}

// DeclineJoinRequest drops userID's pending request without a membership
// change and notifies the requester. Preconditions match
// AcceptJoinRequest.
func (w *TeamWorkflow) DeclineJoinRequest(ctx context.Context, ideaID, userID string) (*models.Team, error) {
	team, err := w.teams.GetTeamByIdeaID(ctx, ideaID)
	if err != nil {
		return nil, fmt.Errorf("declining join request: %w", err)
	}
	if !team.HasJoinRequest(userID) {
		return nil, fmt.Errorf("declining join request: %w", apperror.NotFound("join request", userID))
	}

	team.JoinRequests = removeID(team.JoinRequests, userID)
	if err := w.teams.SaveTeam(ctx, team); err != nil {
		return nil, fmt.Errorf("declining join request: %w", err)
	}

	if idea, err := w.ideas.GetIdeaByID(ctx, ideaID); err == nil {
		w.notifier.Emit(ctx, userID, models.NotificationJoinRequestDeclined,
			fmt.Sprintf("Your request to join the team for %q has been declined.", idea.Title),
			"/idea/"+idea.ID)
	}
	return team, nil
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
