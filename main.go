package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"services-marketplace-server/config"
	"services-marketplace-server/database"
	"services-marketplace-server/jobs"
	"services-marketplace-server/middleware"
	"services-marketplace-server/models"
	"services-marketplace-server/routes"
	"services-marketplace-server/services"
	"services-marketplace-server/store"
	ws "services-marketplace-server/websocket"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := config.Load()

	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	if err := database.Migrate(db, models.NewRegistry()); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	st := store.New(db)
	jwtService := services.NewJWTService(cfg.JWT)
	authService := services.NewAuthService(st, jwtService)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	hub := ws.NewHub()
	go hub.Run(ctx)

	limiter := middleware.NewRateLimiter(cfg.Server.RateLimitPerMinute)
	cleanup := jobs.NewCleanupJob(limiter, 5*time.Minute, 10*time.Minute)
	cleanup.Start()
	defer cleanup.Stop()

	if cfg.Server.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false

	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(middleware.InputValidationMiddleware())
	router.Use(middleware.RateLimitMiddleware(limiter))
	router.Use(middleware.AuditLogMiddleware())

	handler := routes.NewHandler(st, authService, hub)
	routes.RegisterRoutes(router, handler, middleware.AuthMiddleware(jwtService, st.Users), hub.ServeWS)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Printf("🚀 Server starting on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server:", err)
		}
	}()

	<-ctx.Done()
	log.Println("🛑 Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("❌ Server shutdown failed: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}
