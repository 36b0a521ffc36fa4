package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/janedoe/codestream/internal/apperror"
	"github.com/janedoe/codestream/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// IdeaRepository defines the interface for idea data operations
type IdeaRepository interface {
	CreateIdea(ctx context.Context, idea *models.Idea) error
	GetIdeas(ctx context.Context) ([]models.Idea, error)
	GetIdeaByID(ctx context.Context, id string) (*models.Idea, error)
	PatchIdea(ctx context.Context, id string, patch models.IdeaPatch) (*models.Idea, error)
	DeleteIdea(ctx context.Context, id string) error
	IncrementUpvotes(ctx context.Context, id string) (*models.Idea, error)
}

// MongoIdeaRepository implements IdeaRepository for MongoDB
type MongoIdeaRepository struct {
	collection *mongo.Collection
}

// NewMongoIdeaRepository creates a new MongoIdeaRepository
func NewMongoIdeaRepository(db *mongo.Database) *MongoIdeaRepository {
	return &MongoIdeaRepository{collection: db.Collection("ideas")}
}

// CreateIdea inserts a new idea, assigning id and createdAt when unset.
func (r *MongoIdeaRepository) CreateIdea(ctx context.Context, idea *models.Idea) error {
	if idea.ID == "" {
		idea.ID = uuid.NewString()
	}
	if idea.CreatedAt.IsZero() {
		idea.CreatedAt = time.Now().UTC()
	}
	if _, err := r.collection.InsertOne(ctx, idea); err != nil {
		return apperror.Store("inserting idea", err)
	}
	return nil
}

// GetIdeas retrieves all ideas, newest first.
func (r *MongoIdeaRepository) GetIdeas(ctx context.Context) ([]models.Idea, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.D{}, findOptions)
	if err != nil {
		return nil, apperror.Store("listing ideas", err)
	}
	defer cursor.Close(ctx)

	var ideas []models.Idea
	if err = cursor.All(ctx, &ideas); err != nil {
		return nil, apperror.Store("decoding ideas", err)
	}
	return ideas, nil
}

// GetIdeaByID retrieves an idea by id.
func (r *MongoIdeaRepository) GetIdeaByID(ctx context.Context, id string) (*models.Idea, error) {
	var idea models.Idea
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&idea)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound("idea", id)
		}
		return nil, apperror.Store("fetching idea", err)
	}
	return &idea, nil
}

// PatchIdea applies a partial update and returns the post-mutation record.
func (r *MongoIdeaRepository) PatchIdea(ctx context.Context, id string, patch models.IdeaPatch) (*models.Idea, error) {
	set := bson.M{}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Tags != nil {
		set["tags"] = *patch.Tags
	}
	if patch.SkillsNeeded != nil {
		set["skillsNeeded"] = *patch.SkillsNeeded
	}
	if patch.RepoURL != nil {
		set["repoUrl"] = *patch.RepoURL
	}
	if patch.ProjectBoard != nil {
		set["projectBoard"] = patch.ProjectBoard
	}
	if len(set) == 0 {
		return r.GetIdeaByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var idea models.Idea
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&idea)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound("idea", id)
		}
		return nil, apperror.Store("updating idea", err)
	}
	return &idea, nil
}

// DeleteIdea deletes an idea by id.
func (r *MongoIdeaRepository) DeleteIdea(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return apperror.Store("deleting idea", err)
	}
	if res.DeletedCount == 0 {
		return apperror.NotFound("idea", id)
	}
	return nil
}

// IncrementUpvotes bumps the upvote counter by one and returns the
// updated idea.
func (r *MongoIdeaRepository) IncrementUpvotes(ctx context.Context, id string) (*models.Idea, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var idea models.Idea
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"upvotes": 1}}, opts).Decode(&idea)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound("idea", id)
		}
		return nil, apperror.Store("upvoting idea", err)
	}
	return &idea, nil
}
