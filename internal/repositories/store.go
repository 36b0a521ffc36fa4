package repositories

import "go.mongodb.org/mongo-driver/mongo"

// Store bundles one repository per entity type. The backend is chosen
// once at process start; services only ever see these interfaces.
type Store struct {
	Users         UserRepository
	Ideas         IdeaRepository
	Teams         TeamRepository
	Comments      CommentRepository
	Notifications NotificationRepository
}

// NewMongoStore wires every repository against a MongoDB database.
func NewMongoStore(db *mongo.Database) *Store {
	return &Store{
		Users:         NewMongoUserRepository(db),
		Ideas:         NewMongoIdeaRepository(db),
		Teams:         NewMongoTeamRepository(db),
		Comments:      NewMongoCommentRepository(db),
		Notifications: NewMongoNotificationRepository(db),
	}
}

// NewMemoryStore wires every repository against a fresh in-memory
// collection set, pre-populated with demo data.
func NewMemoryStore() *Store {
	m := NewMemory()
	m.Seed()
	return &Store{
		Users:         m,
		Ideas:         m,
		Teams:         m,
		Comments:      m,
		Notifications: m,
	}
}

// NewEmptyMemoryStore is NewMemoryStore without the demo data. Tests use
// it to start from a known-blank state.
func NewEmptyMemoryStore() *Store {
	m := NewMemory()
	return &Store{
		Users:         m,
		Ideas:         m,
		Teams:         m,
		Comments:      m,
		Notifications: m,
	}
}
