package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/janedoe/codestream/internal/apperror"
	"github.com/janedoe/codestream/internal/models"
	"github.com/janedoe/codestream/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIdeaFixture(t *testing.T) (*IdeaService, *repositories.Store) {
	t.Helper()
	store := repositories.NewEmptyMemoryStore()
	ctx := context.Background()

	users := []models.User{
		{ID: "user-1", Name: "Elena Voyager", Email: "elena@example.com"},
		{ID: "user-2", Name: "Marcus Rune", Email: "marcus@example.com"},
	}
	for i := range users {
		require.NoError(t, store.Users.CreateUser(ctx, &users[i]))
	}
	require.NoError(t, store.Ideas.CreateIdea(ctx, &models.Idea{
		ID:       "idea-1",
		Title:    "Synapse",
		AuthorID: "user-1",
	}))

	notifier := NewNotifier(store.Notifications)
	return NewIdeaService(store.Ideas, store.Users, store.Teams, store.Comments, notifier), store
}

func TestAddIdeaDefaults(t *testing.T) {
	service, _ := newIdeaFixture(t)

	idea, err := service.AddIdea(context.Background(), models.CreateIdeaRequest{
		Title:       "EcoTrack",
		Description: "Track your carbon footprint",
		AuthorID:    "user-2",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, idea.ID)
	assert.Zero(t, idea.Upvotes)
	assert.False(t, idea.CreatedAt.IsZero())
	require.NotNil(t, idea.ProjectBoard)
	require.Len(t, idea.ProjectBoard.Columns, 3)
	assert.Equal(t, "todo", idea.ProjectBoard.Columns[0].ID)
	assert.Equal(t, "inProgress", idea.ProjectBoard.Columns[1].ID)
	assert.Equal(t, "done", idea.ProjectBoard.Columns[2].ID)
	for _, column := range idea.ProjectBoard.Columns {
		assert.Empty(t, column.Tasks)
	}
}

func TestGetIdeaDetailWithoutTeam(t *testing.T) {
	service, _ := newIdeaFixture(t)

	detail, err := service.GetIdeaDetail(context.Background(), "idea-1")
	require.NoError(t, err)

	assert.Equal(t, "Synapse", detail.Idea.Title)
	assert.Equal(t, "Elena Voyager", detail.Author.Name)
	assert.Nil(t, detail.Team)
	assert.Empty(t, detail.TeamMembers)
	assert.Empty(t, detail.JoinRequesters)
}

func TestGetIdeaDetailResolvesTeamUsers(t *testing.T) {
	service, store := newIdeaFixture(t)
	ctx := context.Background()

	require.NoError(t, store.Teams.CreateTeam(ctx, &models.Team{
		IdeaID:       "idea-1",
		Name:         "Synapse Team",
		Members:      []string{"user-1"},
		JoinRequests: []string{"user-2"},
	}))

	detail, err := service.GetIdeaDetail(ctx, "idea-1")
	require.NoError(t, err)

	require.NotNil(t, detail.Team)
	require.Len(t, detail.TeamMembers, 1)
	assert.Equal(t, "Elena Voyager", detail.TeamMembers[0].Name)
	require.Len(t, detail.JoinRequesters, 1)
	assert.Equal(t, "Marcus Rune", detail.JoinRequesters[0].Name)
}

func TestUpvoteIncrementsByOneEachCall(t *testing.T) {
	service, _ := newIdeaFixture(t)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		idea, err := service.Upvote(ctx, "idea-1", "user-2")
		require.NoError(t, err)
		assert.Equal(t, i, idea.Upvotes)
	}
}

func TestUpvoteNotifiesAuthor(t *testing.T) {
	service, store := newIdeaFixture(t)
	ctx := context.Background()

	_, err := service.Upvote(ctx, "idea-1", "user-2")
	require.NoError(t, err)

	notifications, err := store.Notifications.GetNotificationsForUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, models.NotificationIdeaUpvote, notifications[0].Type)
	assert.Equal(t, `Marcus Rune upvoted your idea "Synapse".`, notifications[0].Message)
	assert.Equal(t, "/idea/idea-1", notifications[0].Link)
}

func TestUpvoteByUnknownActorUsesFallbackName(t *testing.T) {
	service, store := newIdeaFixture(t)
	ctx := context.Background()

	_, err := service.Upvote(ctx, "idea-1", "")
	require.NoError(t, err)

	notifications, err := store.Notifications.GetNotificationsForUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, `Someone upvoted your idea "Synapse".`, notifications[0].Message)
}

func TestUpvoteByAuthorSkipsNotification(t *testing.T) {
	service, store := newIdeaFixture(t)
	ctx := context.Background()

	idea, err := service.Upvote(ctx, "idea-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, idea.Upvotes)

	notifications, err := store.Notifications.GetNotificationsForUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, notifications)
}

func TestUpvoteUnknownIdea(t *testing.T) {
	service, _ := newIdeaFixture(t)

	_, err := service.Upvote(context.Background(), "idea-99", "user-2")
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestAddCommentNotifiesAuthor(t *testing.T) {
	service, store := newIdeaFixture(t)
	ctx := context.Background()

	comment, err := service.AddComment(ctx, "idea-1", models.CreateCommentRequest{
		AuthorID: "user-2",
		Content:  "Love this concept.",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, comment.ID)
	assert.Equal(t, "idea-1", comment.IdeaID)

	notifications, err := store.Notifications.GetNotificationsForUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, models.NotificationNewComment, notifications[0].Type)
	assert.Equal(t, `Marcus Rune commented on your idea "Synapse".`, notifications[0].Message)
}

func TestAddCommentOnOwnIdeaSkipsNotification(t *testing.T) {
	service, store := newIdeaFixture(t)
	ctx := context.Background()

	_, err := service.AddComment(ctx, "idea-1", models.CreateCommentRequest{
		AuthorID: "user-1",
		Content:  "Replying to my reviewers.",
	})
	require.NoError(t, err)

	notifications, err := store.Notifications.GetNotificationsForUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, notifications)
}

func TestAddCommentValidation(t *testing.T) {
	service, _ := newIdeaFixture(t)
	ctx := context.Background()

	_, err := service.AddComment(ctx, "idea-1", models.CreateCommentRequest{AuthorID: "user-2"})
	assert.True(t, errors.Is(err, apperror.ErrValidation))

	_, err = service.AddComment(ctx, "idea-1", models.CreateCommentRequest{
		AuthorID: "user-2",
		Content:  strings.Repeat("x", maxCommentLength+1),
	})
	assert.True(t, errors.Is(err, apperror.ErrValidation))
}

func TestListCommentsOldestFirst(t *testing.T) {
	service, _ := newIdeaFixture(t)
	ctx := context.Background()

	first, err := service.AddComment(ctx, "idea-1", models.CreateCommentRequest{AuthorID: "user-1", Content: "first"})
	require.NoError(t, err)
	second, err := service.AddComment(ctx, "idea-1", models.CreateCommentRequest{AuthorID: "user-2", Content: "second"})
	require.NoError(t, err)

	comments, err := service.ListComments(ctx, "idea-1")
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, first.ID, comments[0].ID)
	assert.Equal(t, second.ID, comments[1].ID)
}

func TestListCommentsUnknownIdea(t *testing.T) {
	service, _ := newIdeaFixture(t)

	_, err := service.ListComments(context.Background(), "idea-99")
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestDeleteIdeaCascades(t *testing.T) {
	service, store := newIdeaFixture(t)
	ctx := context.Background()

	_, err := service.AddComment(ctx, "idea-1", models.CreateCommentRequest{AuthorID: "user-2", Content: "nice"})
	require.NoError(t, err)
	require.NoError(t, store.Teams.CreateTeam(ctx, &models.Team{IdeaID: "idea-1", Name: "Synapse Team"}))

	require.NoError(t, service.DeleteIdea(ctx, "idea-1"))

	_, err = store.Ideas.GetIdeaByID(ctx, "idea-1")
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
	_, err = store.Teams.GetTeamByIdeaID(ctx, "idea-1")
	assert.True(t, errors.Is(err, apperror.ErrNotFound))

	comments, err := store.Comments.GetCommentsByIdeaID(ctx, "idea-1")
	require.NoError(t, err)
	assert.Empty(t, comments)

	// The new_comment notification linked to the idea is swept away too.
	notifications, err := store.Notifications.GetNotificationsForUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, notifications)
}

func TestDeleteIdeaUnknownID(t *testing.T) {
	service, _ := newIdeaFixture(t)

	err := service.DeleteIdea(context.Background(), "idea-99")
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestUpdateIdeaPatchesOnlyGivenFields(t *testing.T) {
	service, _ := newIdeaFixture(t)
	ctx := context.Background()

	title := "Synapse 2.0"
	updated, err := service.UpdateIdea(ctx, "idea-1", models.IdeaPatch{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "Synapse 2.0", updated.Title)
	assert.Equal(t, "user-1", updated.AuthorID)
}
