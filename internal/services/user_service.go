package services

import (
	"context"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/janedoe/codestream/internal/apperror"
	"github.com/janedoe/codestream/internal/models"
	"github.com/janedoe/codestream/internal/repositories"
)

// magicTokenPrefix is the demo stand-in for a real signed magic link.
const magicTokenPrefix = "demo-token-for-"

const sessionTTL = 72 * time.Hour

// UserService covers profile reads and updates, the leaderboard and the
// stubbed magic-link sign-in flow.
type UserService struct {
	users     repositories.UserRepository
	ideas     repositories.IdeaRepository
	jwtSecret []byte
}

// NewUserService creates a new UserService
func NewUserService(users repositories.UserRepository, ideas repositories.IdeaRepository, jwtSecret []byte) *UserService {
	return &UserService{users: users, ideas: ideas, jwtSecret: jwtSecret}
}

// ListUsers returns every user profile.
func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.users.GetUsers(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// GetUser returns one profile by id.
func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	return s.users.GetUserByID(ctx, id)
}

// UpdateUser applies a partial profile update and returns the updated
// record. The id itself is immutable.
func (s *UserService) UpdateUser(ctx context.Context, userID string, patch models.UserPatch) (*models.User, error) {
	return s.users.PatchUser(ctx, userID, patch)
}

// Leaderboard ranks users by breadth of skills and ideas by upvotes.
func (s *UserService) Leaderboard(ctx context.Context) (*models.LeaderboardData, error) {
	users, err := s.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	ideas, err := s.ideas.GetIdeas(ctx)
	if err != nil {
		return nil, err
	}
	if ideas == nil {
		ideas = []models.Idea{}
	}

	sort.SliceStable(users, func(i, j int) bool {
		return len(users[i].Skills) > len(users[j].Skills)
	})
	sort.SliceStable(ideas, func(i, j int) bool {
		return ideas[i].Upvotes > ideas[j].Upvotes
	})
	return &models.LeaderboardData{Users: users, Ideas: ideas}, nil
}

// SendMagicLink "sends" a sign-in link for the address and returns the
// token a real deployment would email out. Deliberately a stub.
func (s *UserService) SendMagicLink(_ context.Context, email string) string {
	log.Printf("simulating magic link for %s", email)
	return magicTokenPrefix + email
}

// VerifyMagicToken resolves a magic-link token to its user and issues a
// signed session token.
func (s *UserService) VerifyMagicToken(ctx context.Context, token string) (*models.User, string, error) {
	email, ok := strings.CutPrefix(token, magicTokenPrefix)
	if !ok {
		return nil, "", apperror.Validation("invalid magic link token")
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}

	claims := &models.SessionClaims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return nil, "", apperror.Store("signing session token", err)
	}
	return user, signed, nil
}
