package routes

import (
	"log"

	"oneonone-backend/internal/api/handlers"
	"oneonone-backend/internal/api/middleware"
	"oneonone-backend/internal/auth"
	"oneonone-backend/internal/config"
	"oneonone-backend/internal/notify"
	"oneonone-backend/internal/repository"
	"oneonone-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	relationshipRepo := repository.NewRelationshipRepository(db)
	meetingRepo := repository.NewMeetingRepository(db)
	topicRepo := repository.NewTopicRepository(db)
	meetingTopicRepo := repository.NewMeetingTopicRepository(db)
	meetingNoteRepo := repository.NewMeetingNoteRepository(db)
	positionTypeRepo := repository.NewPositionTypeRepository(db)

	// Initialize notifier
	var notifier notify.Notifier
	if cfg.NotifyEnabled && cfg.SlackToken != "" {
		notifier = notify.NewSlackNotifier(cfg.SlackToken, cfg.SlackChannel)
	} else {
		notifier = notify.NewLogNotifier()
	}

	// Initialize services
	relationshipService := service.NewRelationshipService(relationshipRepo, userRepo, validator)
	meetingService := service.NewMeetingService(meetingRepo, relationshipRepo, meetingTopicRepo, notifier, validator)
	topicService := service.NewTopicService(topicRepo, validator)
	meetingTopicService := service.NewMeetingTopicService(meetingTopicRepo, meetingRepo, topicRepo, notifier, validator)
	meetingNoteService := service.NewMeetingNoteService(meetingNoteRepo, meetingRepo, validator)
	boardService := service.NewBoardService(positionTypeRepo, relationshipRepo, userRepo, validator)

	// Initialize auth configuration and middleware
	authConfig, err := auth.LoadAuthConfig("config/auth.yaml")
	if err != nil {
		log.Printf("Warning: Failed to load auth config: %v", err)
		authConfig = nil
	}
	if authConfig != nil && authConfig.JWTSecret == "" {
		authConfig.JWTSecret = cfg.JWTSecret
	}

	var authMiddleware *auth.AuthMiddleware
	if authConfig != nil {
		authService, err := auth.NewAuthService(authConfig)
		if err != nil {
			log.Printf("Warning: Failed to initialize auth service: %v", err)
		} else {
			authMiddleware = auth.NewAuthMiddleware(authService)
		}
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	meetingHandler := handlers.NewMeetingHandler(meetingService)
	meetingTopicHandler := handlers.NewMeetingTopicHandler(meetingTopicService)
	meetingNoteHandler := handlers.NewMeetingNoteHandler(meetingNoteService)
	topicHandler := handlers.NewTopicHandler(topicService)
	relationshipHandler := handlers.NewRelationshipHandler(relationshipService)
	boardHandler := handlers.NewBoardHandler(boardService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")

	if authMiddleware != nil {
		v1.Use(authMiddleware.RequireAuth())
	}

	{
		// Meeting routes
		meetings := v1.Group("/meetings")
		{
			meetings.GET("", meetingHandler.ListMeetings)
			meetings.POST("", meetingHandler.CreateMeeting)
			meetings.POST("/series", meetingHandler.GenerateSeries)
			meetings.GET("/:id", meetingHandler.GetMeeting)
			meetings.PATCH("/:id", meetingHandler.UpdateMeeting)
			meetings.DELETE("/:id", meetingHandler.DeleteMeeting)
			meetings.POST("/:id/complete", meetingHandler.CompleteMeeting)

			// Agenda routes
			meetings.GET("/:id/topics", meetingTopicHandler.ListAgenda)
			meetings.POST("/:id/topics", meetingTopicHandler.AttachTopic)
			meetings.PATCH("/:id/topics/:topicId", meetingTopicHandler.UpdateMeetingTopic)
			meetings.DELETE("/:id/topics/:topicId", meetingTopicHandler.DetachTopic)

			// Shared note routes
			meetings.GET("/:id/note", meetingNoteHandler.GetNote)
			meetings.PUT("/:id/note", meetingNoteHandler.UpsertNote)
		}

		// Topic routes
		topics := v1.Group("/topics")
		{
			topics.GET("", topicHandler.ListTopics)
			topics.POST("", topicHandler.CreateTopic)
			topics.GET("/:id", topicHandler.GetTopic)
			topics.PATCH("/:id", topicHandler.UpdateTopic)
			topics.DELETE("/:id", topicHandler.DeleteTopic)
			topics.POST("/:id/archive", topicHandler.ArchiveTopic)
		}

		// Relationship routes
		relationships := v1.Group("/relationships")
		{
			relationships.GET("", relationshipHandler.ListRelationships)
			relationships.POST("", relationshipHandler.CreateRelationship)
			relationships.DELETE("/:id", relationshipHandler.DeleteRelationship)
		}

		// Team board routes
		board := v1.Group("/board")
		{
			board.GET("", boardHandler.GetBoard)
			board.POST("/columns", boardHandler.CreateColumn)
			board.PUT("/columns/order", boardHandler.ReorderColumns)
			board.DELETE("/columns/:id", boardHandler.DeleteColumn)
			board.PUT("/ics/:id/order", boardHandler.ReorderIC)
		}
	}

	return router
}
