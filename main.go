package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"spleux/api/config"
	"spleux/api/handlers"
	"spleux/api/logger"
	"spleux/api/middleware"
	"spleux/api/store"
)

func main() {
	// Load .env file at the very start
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found or error loading .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog := logger.New(cfg.Env)
	defer func() { _ = zlog.Sync() }()

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// --- Initialize Stores ---
	var githubStore *store.GitHubStore
	var remote store.DocumentStore
	if cfg.GitHubConfigured() {
		githubStore = store.NewGitHubStore(cfg)
		remote = githubStore
	} else {
		zlog.Warn("GitHub storage not configured, content served from local file only")
	}

	contentStore := store.NewContentStore(remote, cfg.ContentFilePath, zlog)
	analyticsStore := store.NewAnalyticsStore(cfg.AnalyticsFilePath, zlog)

	// --- Initialize Handlers ---
	authHandlers := handlers.NewAuthHandlers(cfg, zlog)
	contentHandlers := handlers.NewContentHandlers(contentStore, githubStore, cfg, zlog)
	analyticsHandlers := handlers.NewAnalyticsHandlers(analyticsStore, zlog)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware(cfg.FrontendOrigin))

	api := r.Group("/api")
	{
		// Public endpoints (no authentication required)
		api.POST("/auth/login", authHandlers.Login)
		api.GET("/content/get", contentHandlers.GetContent)
		api.POST("/content/refresh", contentHandlers.RefreshContent)
		api.POST("/analytics/track", analyticsHandlers.TrackEvent)

		// Protected routes (require a valid JWT token)
		protected := api.Group("/")
		protected.Use(middleware.AuthRequired([]byte(cfg.JWTSecret), zlog))
		{
			protected.POST("/auth/verify", authHandlers.Verify)
			protected.POST("/content/update", contentHandlers.UpdateContent)
			protected.GET("/content/github-health", contentHandlers.GitHubHealth)
			protected.GET("/analytics/stats", analyticsHandlers.GetStats)
		}
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		zlog.Info("API server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("API server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zlog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Fatal("Server forced to shutdown", zap.Error(err))
	}

	zlog.Info("Server exiting.")
}
