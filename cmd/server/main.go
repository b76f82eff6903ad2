package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/unseenapp/unseen-users/internal/config"
	"github.com/unseenapp/unseen-users/internal/database"
	"github.com/unseenapp/unseen-users/internal/handlers"
	"github.com/unseenapp/unseen-users/internal/middleware"
	"github.com/unseenapp/unseen-users/internal/repository"
	"github.com/unseenapp/unseen-users/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if err := database.AddIndexes(database.GetDB()); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	// Initialize repositories and services
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	iterationRepo := repository.NewIterationRepository(db)
	pairRepo := repository.NewPairRepository(db)
	userService := services.NewUserService(userRepo, groupRepo, iterationRepo, pairRepo)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService)

	// Initialize Gin router
	r := gin.Default()
	r.Use(middleware.RequestID())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Unseen users API is running",
		})
	})

	// API routes
	v1 := r.Group("/v1")
	{
		users := v1.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.GET("/me", userHandler.GetUserByEmail)
			users.POST("/register", userHandler.Register)
			users.GET("/:id", userHandler.GetUser)
			users.PATCH("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
