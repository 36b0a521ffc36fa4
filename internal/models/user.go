package models

import "github.com/golang-jwt/jwt/v4"

// GithubStats holds the public GitHub counters attached to a profile.
type GithubStats struct {
	Repos     int `json:"repos" bson:"repos"`
	Followers int `json:"followers" bson:"followers"`
	Following int `json:"following" bson:"following"`
}

// User represents a member profile.
type User struct {
	ID             string       `json:"id" bson:"_id"`
	Name           string       `json:"name" bson:"name"`
	Username       string       `json:"username" bson:"username"`
	Email          string       `json:"email,omitempty" bson:"email,omitempty"`
	AvatarURL      string       `json:"avatarUrl" bson:"avatarUrl"`
	Bio            string       `json:"bio" bson:"bio"`
	Skills         []string     `json:"skills" bson:"skills"`
	Interests      []string     `json:"interests" bson:"interests"`
	GithubUsername string       `json:"githubUsername,omitempty" bson:"githubUsername,omitempty"`
	GithubStats    *GithubStats `json:"githubStats,omitempty" bson:"githubStats,omitempty"`
}

// UserPatch is a partial profile update. Nil fields are left untouched.
type UserPatch struct {
	Name           *string      `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Username       *string      `json:"username,omitempty" validate:"omitempty,min=1,max=50"`
	AvatarURL      *string      `json:"avatarUrl,omitempty" validate:"omitempty,url"`
	Bio            *string      `json:"bio,omitempty" validate:"omitempty,max=500"`
	Skills         *[]string    `json:"skills,omitempty"`
	Interests      *[]string    `json:"interests,omitempty"`
	GithubUsername *string      `json:"githubUsername,omitempty"`
	GithubStats    *GithubStats `json:"githubStats,omitempty"`
}

// Apply copies the non-nil patch fields onto u. The id is never touched.
func (p UserPatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.AvatarURL != nil {
		u.AvatarURL = *p.AvatarURL
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
	if p.Skills != nil {
		u.Skills = *p.Skills
	}
	if p.Interests != nil {
		u.Interests = *p.Interests
	}
	if p.GithubUsername != nil {
		u.GithubUsername = *p.GithubUsername
	}
	if p.GithubStats != nil {
		u.GithubStats = p.GithubStats
	}
}

// UpdateUserRequest defines the request body for PUT /api/users/me.
type UpdateUserRequest struct {
	UserID  string    `json:"userId" validate:"required"`
	Updates UserPatch `json:"updates"`
}

// MagicLinkRequest asks for a sign-in link for an email address.
type MagicLinkRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// VerifyTokenRequest exchanges a magic-link token for a session.
type VerifyTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

// SessionClaims are custom claims extending standard jwt.RegisteredClaims
type SessionClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
