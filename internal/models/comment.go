package models

import "time"

// Comment represents a comment on an idea. Comments are immutable once posted.
type Comment struct {
	ID        string    `json:"id" bson:"_id"`
	IdeaID    string    `json:"ideaId" bson:"ideaId"`
	AuthorID  string    `json:"authorId" bson:"authorId"`
	Content   string    `json:"content" bson:"content"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// CreateCommentRequest defines the request body for posting a comment
type CreateCommentRequest struct {
	AuthorID string `json:"authorId" validate:"required"`
	Content  string `json:"content" validate:"required,min=1,max=500"`
}
