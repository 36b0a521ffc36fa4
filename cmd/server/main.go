package main

import (
	"log"

	"github.com/janedoe/codestream/internal/repositories"
	"github.com/janedoe/codestream/internal/router"
	"github.com/janedoe/codestream/pkg/config"
	"github.com/janedoe/codestream/validators"
	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize the entity store
	var store *repositories.Store
	switch cfg.StoreBackend {
	case config.BackendMongo:
		client, err := config.InitMongo(cfg.MongoURI)
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		defer config.CloseMongo(client)
		store = repositories.NewMongoStore(client.Database(cfg.MongoDB))
	default:
		store = repositories.NewMemoryStore()
		log.Println("Using seeded in-memory store.")
	}

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, store, []byte(cfg.JWTSecret))

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
