package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/janedoe/codestream/internal/apperror"
	"github.com/janedoe/codestream/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryAssignsIDsAndTimestamps(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	user := models.User{Name: "Elena Voyager"}
	require.NoError(t, m.CreateUser(ctx, &user))
	assert.NotEmpty(t, user.ID)

	idea := models.Idea{Title: "Synapse", AuthorID: user.ID}
	require.NoError(t, m.CreateIdea(ctx, &idea))
	assert.NotEmpty(t, idea.ID)
	assert.False(t, idea.CreatedAt.IsZero())

	// Caller-supplied ids and timestamps are preserved.
	at := time.Date(2026, time.January, 5, 9, 0, 0, 0, time.UTC)
	fixed := models.Idea{ID: "idea-fixed", Title: "EcoTrack", AuthorID: user.ID, CreatedAt: at}
	require.NoError(t, m.CreateIdea(ctx, &fixed))
	got, err := m.GetIdeaByID(ctx, "idea-fixed")
	require.NoError(t, err)
	assert.True(t, got.CreatedAt.Equal(at))
}

func TestMemoryIdeasNewestFirst(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	base := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"idea-old", "idea-mid", "idea-new"} {
		require.NoError(t, m.CreateIdea(ctx, &models.Idea{
			ID: id, Title: id, AuthorID: "user-1", CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	ideas, err := m.GetIdeas(ctx)
	require.NoError(t, err)
	require.Len(t, ideas, 3)
	assert.Equal(t, "idea-new", ideas[0].ID)
	assert.Equal(t, "idea-old", ideas[2].ID)
}

func TestMemoryPatchUserLeavesOtherFields(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.CreateUser(ctx, &models.User{
		ID: "user-1", Name: "Elena Voyager", Email: "elena@example.com", Bio: "dev",
	}))

	bio := "staff engineer"
	updated, err := m.PatchUser(ctx, "user-1", models.UserPatch{Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, "staff engineer", updated.Bio)
	assert.Equal(t, "Elena Voyager", updated.Name)

	_, err = m.PatchUser(ctx, "user-99", models.UserPatch{Bio: &bio})
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestMemoryIncrementUpvotes(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.CreateIdea(ctx, &models.Idea{ID: "idea-1", Title: "Synapse", AuthorID: "user-1"}))

	idea, err := m.IncrementUpvotes(ctx, "idea-1")
	require.NoError(t, err)
	assert.Equal(t, 1, idea.Upvotes)

	idea, err = m.IncrementUpvotes(ctx, "idea-1")
	require.NoError(t, err)
	assert.Equal(t, 2, idea.Upvotes)

	_, err = m.IncrementUpvotes(ctx, "idea-99")
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestMemorySaveTeamReplacesWholeRecord(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	team := models.Team{IdeaID: "idea-1", Name: "Synapse Team", JoinRequests: []string{"user-2"}}
	require.NoError(t, m.CreateTeam(ctx, &team))
	require.NotEmpty(t, team.ID)

	team.Members = []string{"user-2"}
	team.JoinRequests = []string{}
	require.NoError(t, m.SaveTeam(ctx, &team))

	got, err := m.GetTeamByIdeaID(ctx, "idea-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"user-2"}, got.Members)
	assert.Empty(t, got.JoinRequests)

	err = m.SaveTeam(ctx, &models.Team{ID: "team-ghost", IdeaID: "idea-9"})
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestMemoryDeleteTeamByIdeaIDMissingIsNoError(t *testing.T) {
	m := NewMemory()
	assert.NoError(t, m.DeleteTeamByIdeaID(context.Background(), "idea-none"))
}

func TestMemoryReturnsCopies(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.CreateUser(ctx, &models.User{ID: "user-1", Name: "Elena Voyager"}))

	got, err := m.GetUserByID(ctx, "user-1")
	require.NoError(t, err)
	got.Name = "mutated"

	again, err := m.GetUserByID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Elena Voyager", again.Name)
}

func TestMemoryIdeaBoardAndSlicesAreDetached(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.CreateIdea(ctx, &models.Idea{
		ID:       "idea-1",
		Title:    "Synapse",
		AuthorID: "user-1",
		Tags:     []string{"ai"},
		ProjectBoard: &models.ProjectBoard{
			Columns: []models.BoardColumn{
				{ID: "todo", Title: "To Do", Tasks: []models.BoardTask{{ID: "task-1", Content: "wire the model"}}},
			},
		},
	}))

	got, err := m.GetIdeaByID(ctx, "idea-1")
	require.NoError(t, err)
	got.Tags[0] = "mutated"
	got.ProjectBoard.Columns[0].Title = "mutated"
	got.ProjectBoard.Columns[0].Tasks[0].Content = "mutated"

	again, err := m.GetIdeaByID(ctx, "idea-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"ai"}, again.Tags)
	assert.Equal(t, "To Do", again.ProjectBoard.Columns[0].Title)
	assert.Equal(t, "wire the model", again.ProjectBoard.Columns[0].Tasks[0].Content)

	// List reads are detached the same way.
	ideas, err := m.GetIdeas(ctx)
	require.NoError(t, err)
	require.Len(t, ideas, 1)
	ideas[0].ProjectBoard.Columns[0].Title = "mutated"
	again, err = m.GetIdeaByID(ctx, "idea-1")
	require.NoError(t, err)
	assert.Equal(t, "To Do", again.ProjectBoard.Columns[0].Title)
}

func TestSeededMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	users, err := store.Users.GetUsers(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, users)

	ideas, err := store.Ideas.GetIdeas(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, ideas)

	// The demo sign-in account exists.
	elena, err := store.Users.GetUserByEmail(ctx, "elena@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Elena Voyager", elena.Name)

	// Seeded ideas reference seeded authors.
	for _, idea := range ideas {
		_, err := store.Users.GetUserByID(ctx, idea.AuthorID)
		assert.NoError(t, err, "idea %s has unknown author %s", idea.ID, idea.AuthorID)
	}

	// Seeding an already populated store is a no-op.
	memory, ok := store.Users.(*Memory)
	require.True(t, ok)
	memory.Seed()
	usersAgain, err := store.Users.GetUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, usersAgain, len(users))
}
