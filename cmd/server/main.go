package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"patient-record-service/internal/config"
	"patient-record-service/internal/database"
	"patient-record-service/internal/handler"
	"patient-record-service/internal/middleware"
	"patient-record-service/internal/repository"
	"patient-record-service/internal/service"
	"patient-record-service/pkg/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log.Println("Configuration loaded successfully")

	// 2. Initialize JWT utilities with config
	utils.InitJWT(
		cfg.JWT.AccessSecret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)

	// 3. Initialize database connection
	db := database.Connect(cfg)

	// 4. Initialize repositories
	patientRepo := repository.NewPatientRepo(db)
	userRepo := repository.NewUserRepo(db)

	// 5. Initialize services
	patientService := service.NewPatientService(patientRepo)
	authService := service.NewAuthService(userRepo, service.NewGoogleVerifier(cfg.Google.TokenInfoURL))

	// 6. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// 7. Setup Gin router
	r := gin.Default()

	// Apply CORS middleware
	r.Use(middleware.CORS(cfg))

	// 8. Register handlers
	patientHandler := handler.NewPatientHandler(patientService)
	authHandler := handler.NewAuthHandler(authService)

	// 9. Define routes
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "patient-record-service",
		})
	})

	// Auth routes (public)
	auth := r.Group("/auth")
	{
		auth.POST("/google", authHandler.GoogleLogin)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/logout", authHandler.Logout)
	}

	api := r.Group("/api")
	{
		// Patient record CRUD (public, matching the original surface)
		api.POST("/patients", patientHandler.CreatePatient)
		api.GET("/patients", patientHandler.GetPatients)
		api.PUT("/patients/:id", patientHandler.UpdatePatient)
		api.DELETE("/patients/:id", patientHandler.DeletePatient)

		// User detail (bearer token required)
		api.GET("/user", middleware.AuthMiddleware(), authHandler.GetCurrentUser)
	}

	// 10. Start server with graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")
	log.Println("Server exited")
}
