package services

import (
	"context"
	"fmt"
	"log"

	"github.com/janedoe/codestream/internal/apperror"
	"github.com/janedoe/codestream/internal/models"
	"github.com/janedoe/codestream/internal/repositories"
)

const maxCommentLength = 500

// IdeaService covers idea CRUD, upvotes and comments, including the
// notification side effects and the cascade on idea deletion.
type IdeaService struct {
	ideas    repositories.IdeaRepository
	users    repositories.UserRepository
	teams    repositories.TeamRepository
	comments repositories.CommentRepository
	notifier *Notifier
}

// NewIdeaService creates a new IdeaService
func NewIdeaService(ideas repositories.IdeaRepository, users repositories.UserRepository, teams repositories.TeamRepository, comments repositories.CommentRepository, notifier *Notifier) *IdeaService {
	return &IdeaService{ideas: ideas, users: users, teams: teams, comments: comments, notifier: notifier}
}

// ListIdeas returns every idea, newest first.
func (s *IdeaService) ListIdeas(ctx context.Context) ([]models.Idea, error) {
	ideas, err := s.ideas.GetIdeas(ctx)
	if err != nil {
		return nil, err
	}
	if ideas == nil {
		ideas = []models.Idea{}
	}
	return ideas, nil
}

// GetIdeaDetail resolves an idea together with its author, team and the
// users behind the team's member and join-request lists.
func (s *IdeaService) GetIdeaDetail(ctx context.Context, id string) (*models.IdeaDetail, error) {
	idea, err := s.ideas.GetIdeaByID(ctx, id)
	if err != nil {
		return nil, err
	}
	author, err := s.users.GetUserByID(ctx, idea.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("resolving idea author: %w", err)
	}

	detail := &models.IdeaDetail{
		Idea:           *idea,
		Author:         *author,
		TeamMembers:    []models.User{},
		JoinRequesters: []models.User{},
	}

	team, err := s.teams.GetTeamByIdeaID(ctx, id)
	if err != nil {
		// An idea without a team is a normal state.
		return detail, nil
	}
	detail.Team = team
	for _, memberID := range team.Members {
		if u, err := s.users.GetUserByID(ctx, memberID); err == nil {
			detail.TeamMembers = append(detail.TeamMembers, *u)
		}
	}
	for _, requesterID := range team.JoinRequests {
		if u, err := s.users.GetUserByID(ctx, requesterID); err == nil {
			detail.JoinRequesters = append(detail.JoinRequesters, *u)
		}
	}
	return detail, nil
}

// AddIdea creates an idea with zero upvotes and a fresh three-column
// project board.
func (s *IdeaService) AddIdea(ctx context.Context, req models.CreateIdeaRequest) (*models.Idea, error) {
	idea := &models.Idea{
		Title:        req.Title,
		Description:  req.Description,
		Tags:         req.Tags,
		AuthorID:     req.AuthorID,
		Upvotes:      0,
		SkillsNeeded: req.SkillsNeeded,
		RepoURL:      req.RepoURL,
		ProjectBoard: newProjectBoard(),
	}
	if err := s.ideas.CreateIdea(ctx, idea); err != nil {
		return nil, err
	}
	return idea, nil
}

// UpdateIdea applies a partial update and returns the updated idea.
func (s *IdeaService) UpdateIdea(ctx context.Context, id string, patch models.IdeaPatch) (*models.Idea, error) {
	return s.ideas.PatchIdea(ctx, id, patch)
}

// DeleteIdea removes an idea and cascades to its comments, its team and
// the notifications linking to it. The cascade is best-effort and
// sequential: a failed step is logged and the rest still runs, so a
// partial failure can leave orphans but never a missing idea record.
func (s *IdeaService) DeleteIdea(ctx context.Context, id string) error {
	if _, err := s.ideas.GetIdeaByID(ctx, id); err != nil {
		return err
	}
	if err := s.comments.DeleteCommentsByIdeaID(ctx, id); err != nil {
		log.Printf("delete idea %s: cascading comments: %v", id, err)
	}
	if err := s.teams.DeleteTeamByIdeaID(ctx, id); err != nil {
		log.Printf("delete idea %s: cascading team: %v", id, err)
	}
	if err := s.notifier.notifications.DeleteNotificationsByLink(ctx, "/idea/"+id); err != nil {
		log.Printf("delete idea %s: cascading notifications: %v", id, err)
	}
	return s.ideas.DeleteIdea(ctx, id)
}

// Upvote increments the idea's counter by exactly one. Repeat calls from
// the same user keep incrementing; there is no per-user dedup. actorID
// may be empty when the caller is unknown; the author is notified unless
// the actor is the author.
func (s *IdeaService) Upvote(ctx context.Context, ideaID, actorID string) (*models.Idea, error) {
	idea, err := s.ideas.IncrementUpvotes(ctx, ideaID)
	if err != nil {
		return nil, err
	}

	if actorID == idea.AuthorID {
		return idea, nil
	}
	actorName := "Someone"
	if actorID != "" {
		if actor, err := s.users.GetUserByID(ctx, actorID); err == nil {
			actorName = actor.Name
		}
	}
	s.notifier.Emit(ctx, idea.AuthorID, models.NotificationIdeaUpvote,
		fmt.Sprintf("%s upvoted your idea %q.", actorName, idea.Title),
		"/idea/"+idea.ID)
	return idea, nil
}

// ListComments returns the comments on an idea, oldest first.
func (s *IdeaService) ListComments(ctx context.Context, ideaID string) ([]models.Comment, error) {
	if _, err := s.ideas.GetIdeaByID(ctx, ideaID); err != nil {
		return nil, err
	}
	comments, err := s.comments.GetCommentsByIdeaID(ctx, ideaID)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	return comments, nil
}

// AddComment posts a comment on an idea and notifies the idea's author
// unless they commented on their own idea.
func (s *IdeaService) AddComment(ctx context.Context, ideaID string, req models.CreateCommentRequest) (*models.Comment, error) {
	if req.Content == "" {
		return nil, apperror.Validation("comment content is required")
	}
	if len(req.Content) > maxCommentLength {
		return nil, apperror.Validation(fmt.Sprintf("comment content exceeds %d characters", maxCommentLength))
	}

	idea, err := s.ideas.GetIdeaByID(ctx, ideaID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		IdeaID:   ideaID,
		AuthorID: req.AuthorID,
		Content:  req.Content,
	}
	if err := s.comments.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	if idea.AuthorID != req.AuthorID {
		if author, err := s.users.GetUserByID(ctx, req.AuthorID); err == nil {
			s.notifier.Emit(ctx, idea.AuthorID, models.NotificationNewComment,
				fmt.Sprintf("%s commented on your idea %q.", author.Name, idea.Title),
				"/idea/"+idea.ID)
		}
	}
	return comment, nil
}

func newProjectBoard() *models.ProjectBoard {
	return &models.ProjectBoard{
		Columns: []models.BoardColumn{
			{ID: "todo", Title: "To Do", Tasks: []models.BoardTask{}},
			{ID: "inProgress", Title: "In Progress", Tasks: []models.BoardTask{}},
			{ID: "done", Title: "Done", Tasks: []models.BoardTask{}},
		},
	}
}
