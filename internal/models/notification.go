package models

import "time"

// NotificationType enumerates the events that fan out a notification.
type NotificationType string

const (
	NotificationNewComment          NotificationType = "new_comment"
	NotificationIdeaUpvote          NotificationType = "idea_upvote"
	NotificationJoinRequest         NotificationType = "join_request"
	NotificationJoinRequestAccepted NotificationType = "join_request_accepted"
	NotificationJoinRequestDeclined NotificationType = "join_request_declined"
)

// Notification is a system-generated message addressed to one user.
// Notifications are only created by event side effects, never by a
// direct client write.
type Notification struct {
	ID        string           `json:"id" bson:"_id"`
	UserID    string           `json:"userId" bson:"userId"`
	Type      NotificationType `json:"type" bson:"type"`
	Message   string           `json:"message" bson:"message"`
	Link      string           `json:"link" bson:"link"`
	CreatedAt time.Time        `json:"createdAt" bson:"createdAt"`
	Read      bool             `json:"read" bson:"read"`
}

// MarkNotificationsReadRequest defines the request body for
// PUT /api/notifications/read.
type MarkNotificationsReadRequest struct {
	UserID          string   `json:"userId" validate:"required"`
	NotificationIDs []string `json:"notificationIds" validate:"required"`
}
