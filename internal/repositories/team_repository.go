package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/janedoe/codestream/internal/apperror"
	"github.com/janedoe/codestream/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// TeamRepository defines the interface for team data operations.
// Teams are written back as whole records: the workflow engine reads a
// team, mutates its member/request lists and saves it (last write wins).
type TeamRepository interface {
	CreateTeam(ctx context.Context, team *models.Team) error
	GetTeams(ctx context.Context) ([]models.Team, error)
	GetTeamByIdeaID(ctx context.Context, ideaID string) (*models.Team, error)
	SaveTeam(ctx context.Context, team *models.Team) error
	DeleteTeamByIdeaID(ctx context.Context, ideaID string) error
}

// MongoTeamRepository implements TeamRepository for MongoDB
type MongoTeamRepository struct {
	collection *mongo.Collection
}

// NewMongoTeamRepository creates a new MongoTeamRepository
func NewMongoTeamRepository(db *mongo.Database) *MongoTeamRepository {
	return &MongoTeamRepository{collection: db.Collection("teams")}
}

// CreateTeam inserts a new team, assigning an id when none is set.
func (r *MongoTeamRepository) CreateTeam(ctx context.Context, team *models.Team) error {
	if team.ID == "" {
		team.ID = uuid.NewString()
	}
	if _, err := r.collection.InsertOne(ctx, team); err != nil {
		return apperror.Store("inserting team", err)
	}
	return nil
}

// GetTeams retrieves all teams.
func (r *MongoTeamRepository) GetTeams(ctx context.Context) ([]models.Team, error) {
	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, apperror.Store("listing teams", err)
	}
	defer cursor.Close(ctx)

	var teams []models.Team
	if err = cursor.All(ctx, &teams); err != nil {
		return nil, apperror.Store("decoding teams", err)
	}
	return teams, nil
}

// GetTeamByIdeaID retrieves the team attached to an idea.
func (r *MongoTeamRepository) GetTeamByIdeaID(ctx context.Context, ideaID string) (*models.Team, error) {
	var team models.Team
	err := r.collection.FindOne(ctx, bson.M{"ideaId": ideaID}).Decode(&team)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound("team", ideaID)
		}
		return nil, apperror.Store("fetching team", err)
	}
	return &team, nil
}

// SaveTeam replaces the stored record with the given team.
func (r *MongoTeamRepository) SaveTeam(ctx context.Context, team *models.Team) error {
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": team.ID}, team)
	if err != nil {
		return apperror.Store("saving team", err)
	}
	if res.MatchedCount == 0 {
		return apperror.NotFound("team", team.ID)
	}
	return nil
}

// DeleteTeamByIdeaID removes the team attached to an idea. Removing a
// team that does not exist is not an error.
func (r *MongoTeamRepository) DeleteTeamByIdeaID(ctx context.Context, ideaID string) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{"ideaId": ideaID}); err != nil {
		return apperror.Store("deleting team", err)
	}
	return nil
}
