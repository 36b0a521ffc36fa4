package services

import (
	"context"
	"log"

	"github.com/janedoe/codestream/internal/models"
	"github.com/janedoe/codestream/internal/repositories"
)

// Notifier owns append-only creation of notification records and the
// per-user read/list operations.
type Notifier struct {
	notifications repositories.NotificationRepository
}

// NewNotifier creates a new Notifier
func NewNotifier(notifications repositories.NotificationRepository) *Notifier {
	return &Notifier{notifications: notifications}
}

// Emit appends an unread notification for the target user. The target is
// not checked against the user collection, and a store failure is logged
// rather than returned so the triggering operation still succeeds.
func (n *Notifier) Emit(ctx context.Context, userID string, typ models.NotificationType, message, link string) {
	notification := &models.Notification{
		UserID:  userID,
		Type:    typ,
		Message: message,
		Link:    link,
		Read:    false,
	}
	if err := n.notifications.CreateNotification(ctx, notification); err != nil {
		log.Printf("emit %s notification for user %s: %v", typ, userID, err)
	}
}

// ListForUser returns the user's notifications newest first, ordered by
// createdAt descending with id descending as the tie-break.
func (n *Notifier) ListForUser(ctx context.Context, userID string) ([]models.Notification, error) {
	notifications, err := n.notifications.GetNotificationsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if notifications == nil {
		notifications = []models.Notification{}
	}
	return notifications, nil
}

// MarkAsRead flips read=true on the given ids. Only notifications owned
// by userID are touched; ids belonging to other users, or unknown ids,
// are silently skipped.
func (n *Notifier) MarkAsRead(ctx context.Context, userID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return n.notifications.MarkNotificationsRead(ctx, userID, ids)
}
