package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/janedoe/codestream/internal/apperror"
	"github.com/janedoe/codestream/internal/models"
)

// Memory is the in-process fallback store. It implements every entity
// repository over mutex-guarded slices and mirrors the Mongo backend's
// ordering guarantees, so the two are interchangeable behind Store.
type Memory struct {
	mu            sync.RWMutex
	users         []models.User
	ideas         []models.Idea
	teams         []models.Team
	comments      []models.Comment
	notifications []models.Notification
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// --- UserRepository ---

func (m *Memory) CreateUser(_ context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users = append(m.users, *user)
	return nil
}

func (m *Memory) GetUsers(_ context.Context) ([]models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.User, len(m.users))
	copy(out, m.users)
	return out, nil
}

func (m *Memory) GetUserByID(_ context.Context, id string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, apperror.NotFound("user", id)
}

func (m *Memory) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, apperror.NotFound("user", email)
}

func (m *Memory) PatchUser(_ context.Context, id string, patch models.UserPatch) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.users {
		if m.users[i].ID == id {
			patch.Apply(&m.users[i])
			user := m.users[i]
			return &user, nil
		}
	}
	return nil, apperror.NotFound("user", id)
}

func (m *Memory) DeleteUser(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.users {
		if m.users[i].ID == id {
			m.users = append(m.users[:i], m.users[i+1:]...)
			return nil
		}
	}
	return apperror.NotFound("user", id)
}

// --- IdeaRepository ---

// cloneIdea detaches an idea record from the store's backing arrays so
// callers can't mutate stored state through the returned value.
func cloneIdea(i models.Idea) models.Idea {
	out := i
	out.Tags = append([]string(nil), i.Tags...)
	out.SkillsNeeded = append([]string(nil), i.SkillsNeeded...)
	if i.ProjectBoard != nil {
		board := models.ProjectBoard{Columns: make([]models.BoardColumn, len(i.ProjectBoard.Columns))}
		for idx, col := range i.ProjectBoard.Columns {
			col.Tasks = append([]models.BoardTask(nil), col.Tasks...)
			board.Columns[idx] = col
		}
		out.ProjectBoard = &board
	}
	return out
}

func (m *Memory) CreateIdea(_ context.Context, idea *models.Idea) error {
	if idea.ID == "" {
		idea.ID = uuid.NewString()
	}
	if idea.CreatedAt.IsZero() {
		idea.CreatedAt = time.Now().UTC()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ideas = append(m.ideas, *idea)
	return nil
}

func (m *Memory) GetIdeas(_ context.Context) ([]models.Idea, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Idea, len(m.ideas))
	for i, idea := range m.ideas {
		out[i] = cloneIdea(idea)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *Memory) GetIdeaByID(_ context.Context, id string) (*models.Idea, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, i := range m.ideas {
		if i.ID == id {
			idea := cloneIdea(i)
			return &idea, nil
		}
	}
	return nil, apperror.NotFound("idea", id)
}

func (m *Memory) PatchIdea(_ context.Context, id string, patch models.IdeaPatch) (*models.Idea, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.ideas {
		if m.ideas[i].ID == id {
			patch.Apply(&m.ideas[i])
			idea := cloneIdea(m.ideas[i])
			return &idea, nil
		}
	}
	return nil, apperror.NotFound("idea", id)
}

func (m *Memory) DeleteIdea(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.ideas {
		if m.ideas[i].ID == id {
			m.ideas = append(m.ideas[:i], m.ideas[i+1:]...)
			return nil
		}
	}
	return apperror.NotFound("idea", id)
}

func (m *Memory) IncrementUpvotes(_ context.Context, id string) (*models.Idea, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.ideas {
		if m.ideas[i].ID == id {
			m.ideas[i].Upvotes++
			idea := cloneIdea(m.ideas[i])
			return &idea, nil
		}
	}
	return nil, apperror.NotFound("idea", id)
}

// --- TeamRepository ---

func (m *Memory) CreateTeam(_ context.Context, team *models.Team) error {
	if team.ID == "" {
		team.ID = uuid.NewString()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.teams = append(m.teams, *team)
	return nil
}

func (m *Memory) GetTeams(_ context.Context) ([]models.Team, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Team, len(m.teams))
	copy(out, m.teams)
	return out, nil
}

func (m *Memory) GetTeamByIdeaID(_ context.Context, ideaID string) (*models.Team, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, t := range m.teams {
		if t.IdeaID == ideaID {
			team := t
			team.Members = append([]string(nil), t.Members...)
			team.JoinRequests = append([]string(nil), t.JoinRequests...)
			return &team, nil
		}
	}
	return nil, apperror.NotFound("team", ideaID)
}

func (m *Memory) SaveTeam(_ context.Context, team *models.Team) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.teams {
		if m.teams[i].ID == team.ID {
			m.teams[i] = *team
			return nil
		}
	}
	return apperror.NotFound("team", team.ID)
}

func (m *Memory) DeleteTeamByIdeaID(_ context.Context, ideaID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.teams[:0]
	for _, t := range m.teams {
		if t.IdeaID != ideaID {
			kept = append(kept, t)
		}
	}
	m.teams = kept
	return nil
}

// --- CommentRepository ---

func (m *Memory) CreateComment(_ context.Context, comment *models.Comment) error {
	if comment.ID == "" {
		comment.ID = uuid.NewString()
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now().UTC()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.comments = append(m.comments, *comment)
	return nil
}

func (m *Memory) GetCommentsByIdeaID(_ context.Context, ideaID string) ([]models.Comment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []models.Comment
	for _, c := range m.comments {
		if c.IdeaID == ideaID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (m *Memory) DeleteCommentsByIdeaID(_ context.Context, ideaID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.comments[:0]
	for _, c := range m.comments {
		if c.IdeaID != ideaID {
			kept = append(kept, c)
		}
	}
	m.comments = kept
	return nil
}

// --- NotificationRepository ---

func (m *Memory) CreateNotification(_ context.Context, notification *models.Notification) error {
	if notification.ID == "" {
		notification.ID = uuid.NewString()
	}
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now().UTC()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifications = append(m.notifications, *notification)
	return nil
}

func (m *Memory) GetNotificationsForUser(_ context.Context, userID string) ([]models.Notification, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []models.Notification
	for _, n := range m.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *Memory) MarkNotificationsRead(_ context.Context, userID string, ids []string) error {
	idSet := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		idSet[id] = struct{}{}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.notifications {
		if m.notifications[i].UserID != userID {
			continue
		}
		if _, ok := idSet[m.notifications[i].ID]; ok {
			m.notifications[i].Read = true
		}
	}
	return nil
}

func (m *Memory) DeleteNotificationsByLink(_ context.Context, link string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.notifications[:0]
	for _, n := range m.notifications {
		if n.Link != link {
			kept = append(kept, n)
		}
	}
	m.notifications = kept
	return nil
}
