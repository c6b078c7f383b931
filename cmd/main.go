package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"netpoleon-site/internal/auth"
	"netpoleon-site/internal/cache"
	"netpoleon-site/internal/config"
	"netpoleon-site/internal/database"
	"netpoleon-site/internal/handlers"
	"netpoleon-site/internal/jobs"
	"netpoleon-site/internal/notify"
	"netpoleon-site/internal/repository"
	"netpoleon-site/internal/services"
	"netpoleon-site/internal/storage"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize JWT
	auth.InitJWT(cfg.App.JWTSecret)

	// Connect to database
	if err := database.Connect(cfg.GetDSN()); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.AutoMigrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Connect to redis; the site works uncached without it
	contentCache, err := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Warnf("Redis unavailable, serving uncached: %v", err)
		contentCache = nil
	}

	// Initialize the upload bucket client
	uploader, err := storage.NewUploader(cfg.Storage.Region, cfg.Storage.Bucket, cfg.Storage.PublicURL)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	// Notification sink for service-level success/failure messages
	sink := notify.NewLogSink()

	// Initialize repository and services
	repo := repository.NewRepository(database.GetDB())
	authService := services.NewAuthService(database.GetDB())
	siteService := services.NewSiteService(repo, contentCache, sink)
	eventService := services.NewEventService(repo, sink, siteService)
	resourceService := services.NewResourceService(repo, sink, siteService)
	vendorService := services.NewVendorService(repo, sink)
	featuredService := services.NewFeaturedService(repo, sink, siteService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	eventHandler := handlers.NewEventHandler(eventService, featuredService)
	resourceHandler := handlers.NewResourceHandler(resourceService, featuredService)
	vendorHandler := handlers.NewVendorHandler(vendorService)
	siteHandler := handlers.NewSiteHandler(siteService)
	uploadHandler := handlers.NewUploadHandler(uploader)

	// Keep the home payload warm
	cacheJob := jobs.NewHomeCacheJob(siteService, eventService, sink)
	cacheJob.Start(5 * time.Minute)
	log.Println("Home cache job started")

	// Set up Gin router
	router := gin.Default()

	// CORS middleware
	allowedOrigins := []string{
		"http://localhost:3000",
		"http://localhost:5173", // Vite dev server
		"http://127.0.0.1:3000",
		"http://127.0.0.1:5173",
	}
	if cfg.App.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.App.FrontendURL)
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Authentication routes (public)
	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/login", authHandler.Login)
	}

	// Authenticated /auth/me route
	authProtected := router.Group("/auth")
	authProtected.Use(auth.AuthMiddleware())
	{
		authProtected.GET("/me", authHandler.GetMe)
	}

	// Public content routes
	api := router.Group("/api")
	{
		api.GET("/home", siteHandler.GetHome)

		api.GET("/events", eventHandler.GetEvents)
		api.GET("/events/featured", eventHandler.GetFeaturedEvent)
		api.GET("/events/:id", eventHandler.GetEventByID)

		api.GET("/resources", resourceHandler.GetResources)
		api.GET("/resources/types", resourceHandler.GetResourceTypes)
		api.GET("/resources/featured", resourceHandler.GetFeaturedResource)
		api.GET("/resources/:id", resourceHandler.GetResourceByID)

		api.GET("/vendors", vendorHandler.GetVendors)
		api.GET("/vendors/:id", vendorHandler.GetVendorByID)

		api.GET("/team", siteHandler.GetTeamMembers)
		api.GET("/slides", siteHandler.GetSlides)
		api.GET("/announcement", siteHandler.GetAnnouncement)
	}

	// Admin routes (protected)
	admin := router.Group("/api/admin")
	admin.Use(auth.AuthMiddleware())
	{
		admin.GET("/resources", resourceHandler.GetAllResources)

		admin.POST("/events", eventHandler.CreateEvent)
		admin.PUT("/events/:id", eventHandler.UpdateEvent)
		admin.DELETE("/events/:id", eventHandler.DeleteEvent)
		admin.POST("/events/:id/featured", eventHandler.ToggleFeaturedEvent)

		admin.POST("/resources", resourceHandler.CreateResource)
		admin.PUT("/resources/:id", resourceHandler.UpdateResource)
		admin.DELETE("/resources/:id", resourceHandler.DeleteResource)
		admin.POST("/resources/:id/featured", resourceHandler.ToggleFeaturedResource)

		admin.POST("/vendors", vendorHandler.CreateVendor)
		admin.PUT("/vendors/:id", vendorHandler.UpdateVendor)
		admin.DELETE("/vendors/:id", vendorHandler.DeleteVendor)

		admin.POST("/team", siteHandler.CreateTeamMember)
		admin.PUT("/team/:id", siteHandler.UpdateTeamMember)
		admin.DELETE("/team/:id", siteHandler.DeleteTeamMember)

		admin.POST("/slides", siteHandler.CreateSlide)
		admin.PUT("/slides/:id", siteHandler.UpdateSlide)
		admin.DELETE("/slides/:id", siteHandler.DeleteSlide)

		admin.PUT("/announcement", siteHandler.SaveAnnouncement)

		admin.POST("/uploads", uploadHandler.Upload)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		log.Printf("Health check: http://localhost:%s/health", cfg.Server.Port)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with 5 second timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
