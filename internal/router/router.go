package router

import (
	"log"

	"github.com/janedoe/codestream/internal/handlers"
	"github.com/janedoe/codestream/internal/middleware"
	"github.com/janedoe/codestream/internal/repositories"
	"github.com/janedoe/codestream/internal/services"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	e.HTTPErrorHandler = handlers.HTTPErrorHandler
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, store *repositories.Store, jwtSecret []byte) {
	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Services ---
	notifier := services.NewNotifier(store.Notifications)
	workflow := services.NewTeamWorkflow(store.Teams, store.Ideas, store.Users, notifier)
	ideaService := services.NewIdeaService(store.Ideas, store.Users, store.Teams, store.Comments, notifier)
	userService := services.NewUserService(store.Users, store.Ideas, jwtSecret)

	// --- Auth routes (no session required) ---
	authHandler := handlers.NewAuthHandler(userService)
	authGroup := e.Group("/api/auth")
	authHandler.RegisterAuthRoutes(authGroup)
	sessionGroup := e.Group("/api/auth")
	sessionGroup.Use(middleware.SessionAuth(jwtSecret))
	authHandler.RegisterSessionRoutes(sessionGroup)
	log.Println("Auth routes configured.")

	// --- API routes ---
	api := e.Group("/api")

	ideaHandler := handlers.NewIdeaHandler(ideaService)
	ideaHandler.RegisterIdeaRoutes(api)
	log.Println("Idea routes configured.")

	commentHandler := handlers.NewCommentHandler(ideaService)
	commentHandler.RegisterCommentRoutes(api)
	log.Println("Comment routes configured.")

	teamHandler := handlers.NewTeamHandler(workflow)
	teamHandler.RegisterTeamRoutes(api)
	log.Println("Team routes configured.")

	userHandler := handlers.NewUserHandler(userService)
	userHandler.RegisterUserRoutes(api)
	log.Println("User routes configured.")

	notificationHandler := handlers.NewNotificationHandler(notifier)
	notificationHandler.RegisterNotificationRoutes(api)
	log.Println("Notification routes configured.")

	log.Println("All routes configured.")
}
