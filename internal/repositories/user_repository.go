package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/janedoe/codestream/internal/apperror"
	"github.com/janedoe/codestream/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUsers(ctx context.Context) ([]models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	PatchUser(ctx context.Context, id string, patch models.UserPatch) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// MongoUserRepository implements UserRepository for MongoDB
type MongoUserRepository struct {
	collection *mongo.Collection
}

// NewMongoUserRepository creates a new MongoUserRepository
func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{collection: db.Collection("users")}
}

// CreateUser inserts a new user, assigning an id when none is set.
func (r *MongoUserRepository) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if _, err := r.collection.InsertOne(ctx, user); err != nil {
		return apperror.Store("inserting user", err)
	}
	return nil
}

// GetUsers retrieves all users.
func (r *MongoUserRepository) GetUsers(ctx context.Context) ([]models.User, error) {
	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, apperror.Store("listing users", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err = cursor.All(ctx, &users); err != nil {
		return nil, apperror.Store("decoding users", err)
	}
	return users, nil
}

// GetUserByID retrieves a user by id.
func (r *MongoUserRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound("user", id)
		}
		return nil, apperror.Store("fetching user", err)
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by email address.
func (r *MongoUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound("user", email)
		}
		return nil, apperror.Store("fetching user by email", err)
	}
	return &user, nil
}

// PatchUser applies a partial update and returns the post-mutation record.
func (r *MongoUserRepository) PatchUser(ctx context.Context, id string, patch models.UserPatch) (*models.User, error) {
	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Username != nil {
		set["username"] = *patch.Username
	}
	if patch.AvatarURL != nil {
		set["avatarUrl"] = *patch.AvatarURL
	}
	if patch.Bio != nil {
		set["bio"] = *patch.Bio
	}
	if patch.Skills != nil {
		set["skills"] = *patch.Skills
	}
	if patch.Interests != nil {
		set["interests"] = *patch.Interests
	}
	if patch.GithubUsername != nil {
		set["githubUsername"] = *patch.GithubUsername
	}
	if patch.GithubStats != nil {
		set["githubStats"] = patch.GithubStats
	}
	if len(set) == 0 {
		return r.GetUserByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var user models.User
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound("user", id)
		}
		return nil, apperror.Store("updating user", err)
	}
	return &user, nil
}

// DeleteUser deletes a user by id.
func (r *MongoUserRepository) DeleteUser(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return apperror.Store("deleting user", err)
	}
	if res.DeletedCount == 0 {
		return apperror.NotFound("user", id)
	}
	return nil
}
