package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/janedoe/codestream/internal/apperror"
	"github.com/janedoe/codestream/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NotificationRepository defines the interface for notification operations
type NotificationRepository interface {
	CreateNotification(ctx context.Context, notification *models.Notification) error
	GetNotificationsForUser(ctx context.Context, userID string) ([]models.Notification, error)
	MarkNotificationsRead(ctx context.Context, userID string, ids []string) error
	DeleteNotificationsByLink(ctx context.Context, link string) error
}

// MongoNotificationRepository implements NotificationRepository for MongoDB
type MongoNotificationRepository struct {
	collection *mongo.Collection
}

// NewMongoNotificationRepository creates a new MongoNotificationRepository
func NewMongoNotificationRepository(db *mongo.Database) *MongoNotificationRepository {
	return &MongoNotificationRepository{collection: db.Collection("notifications")}
}

// CreateNotification inserts a new notification, assigning id and
// createdAt when unset.
func (r *MongoNotificationRepository) CreateNotification(ctx context.Context, notification *models.Notification) error {
	if notification.ID == "" {
		notification.ID = uuid.NewString()
	}
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now().UTC()
	}
	if _, err := r.collection.InsertOne(ctx, notification); err != nil {
		return apperror.Store("inserting notification", err)
	}
	return nil
}

// GetNotificationsForUser retrieves a user's notifications, newest first
// (createdAt descending, id descending on ties).
func (r *MongoNotificationRepository) GetNotificationsForUser(ctx context.Context, userID string) ([]models.Notification, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, findOptions)
	if err != nil {
		return nil, apperror.Store("listing notifications", err)
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	if err = cursor.All(ctx, &notifications); err != nil {
		return nil, apperror.Store("decoding notifications", err)
	}
	return notifications, nil
}

// MarkNotificationsRead flips read=true on the given ids, restricted to
// notifications owned by userID. Unknown ids are skipped.
func (r *MongoNotificationRepository) MarkNotificationsRead(ctx context.Context, userID string, ids []string) error {
	filter := bson.M{"userId": userID, "_id": bson.M{"$in": ids}}
	if _, err := r.collection.UpdateMany(ctx, filter, bson.M{"$set": bson.M{"read": true}}); err != nil {
		return apperror.Store("marking notifications read", err)
	}
	return nil
}

// DeleteNotificationsByLink removes every notification pointing at a link.
func (r *MongoNotificationRepository) DeleteNotificationsByLink(ctx context.Context, link string) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{"link": link}); err != nil {
		return apperror.Store("deleting notifications", err)
	}
	return nil
}
