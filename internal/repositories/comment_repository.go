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

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	CreateComment(ctx context.Context, comment *models.Comment) error
	GetCommentsByIdeaID(ctx context.Context, ideaID string) ([]models.Comment, error)
	DeleteCommentsByIdeaID(ctx context.Context, ideaID string) error
}

// MongoCommentRepository implements CommentRepository for MongoDB
type MongoCommentRepository struct {
	collection *mongo.Collection
}

// NewMongoCommentRepository creates a new MongoCommentRepository
func NewMongoCommentRepository(db *mongo.Database) *MongoCommentRepository {
	return &MongoCommentRepository{collection: db.Collection("comments")}
}

// CreateComment inserts a new comment, assigning id and createdAt when unset.
func (r *MongoCommentRepository) CreateComment(ctx context.Context, comment *models.Comment) error {
	if comment.ID == "" {
		comment.ID = uuid.NewString()
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now().UTC()
	}
	if _, err := r.collection.InsertOne(ctx, comment); err != nil {
		return apperror.Store("inserting comment", err)
	}
	return nil
}

// GetCommentsByIdeaID retrieves the comments on an idea, oldest first
// (createdAt ascending, id ascending on ties).
func (r *MongoCommentRepository) GetCommentsByIdeaID(ctx context.Context, ideaID string) ([]models.Comment, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"ideaId": ideaID}, findOptions)
	if err != nil {
		return nil, apperror.Store("listing comments", err)
	}
	defer cursor.Close(ctx)

	var comments []models.Comment
	if err = cursor.All(ctx, &comments); err != nil {
		return nil, apperror.Store("decoding comments", err)
	}
	return comments, nil
}

// DeleteCommentsByIdeaID removes every comment on an idea.
func (r *MongoCommentRepository) DeleteCommentsByIdeaID(ctx context.Context, ideaID string) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{"ideaId": ideaID}); err != nil {
		return apperror.Store("deleting comments", err)
	}
	return nil
}
