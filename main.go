package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"venue-feedback-server/config"
	"venue-feedback-server/database"
	"venue-feedback-server/jobs"
	"venue-feedback-server/middleware"
	"venue-feedback-server/routes"
	ws "venue-feedback-server/websocket"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Load configuration
	config.Load()

	// Initialize database
	if err := database.Initialize(); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}

	// Set Gin mode
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Disable automatic redirects for trailing slashes
	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false

	// Security headers (must be first)
	router.Use(middleware.SecurityHeadersMiddleware())

	// Input validation
	router.Use(middleware.InputValidationMiddleware())

	// Rate limiting
	router.Use(middleware.RateLimitMiddleware())

	// Secure CORS
	router.Use(middleware.CORSMiddleware())

	// Audit logging
	router.Use(middleware.AuditLogMiddleware())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Venue Feedback Server is running",
			"time":    time.Now().UTC(),
		})
	})

	// Initialize the live feed hub
	feedHub := ws.NewHub()
	go feedHub.Run()
	routes.InitFeedHub(feedHub)
	feedHandler := ws.NewFeedHandler(feedHub)

	// API routes
	api := router.Group("/api/v1")
	{
		// Auth routes (no authentication required) - with strict rate limiting
		authRoutes := api.Group("/auth")
		authRoutes.Use(middleware.AuthRateLimitMiddleware())
		routes.RegisterAuthRoutes(authRoutes)

		// Guest-facing routes (public, reached from QR codes)
		routes.RegisterPublicFeedbackRoutes(api)
		routes.RegisterPublicNPSRoutes(api)
		routes.RegisterPublicQuestionRoutes(api)

		// Billing routes (public; webhook is signature-verified)
		routes.RegisterBillingRoutes(api)

		// Protected dashboard routes
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/auth/me", routes.GetCurrentUser)

			// Live feedback feed over WebSocket
			protected.GET("/ws/feed", feedHandler.HandleFeed)

			// Session triage
			routes.RegisterFeedbackRoutes(protected)

			// Dashboard stats
			routes.RegisterDashboardRoutes(protected)

			// Heatmap layout
			routes.RegisterLayoutRoutes(protected)

			// Staff leaderboard
			routes.RegisterLeaderboardRoutes(protected)

			// NPS tracking
			routes.RegisterNPSRoutes(protected)

			// Question management
			routes.RegisterQuestionRoutes(protected)

			// Staff management
			routes.RegisterStaffRoutes(protected)

			// Venue settings
			routes.RegisterVenueRoutes(protected)
		}
	}

	// Get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Start background jobs
	cleanupJob := jobs.NewCleanupJob()
	cleanupJob.Start()
	defer cleanupJob.Stop()

	log.Printf("Server starting on port %s", port)
	if err := router.Run("0.0.0.0:" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
