package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/isdelr/venture-manager-be/internal/api"
	"github.com/isdelr/venture-manager-be/internal/auth"
	"github.com/isdelr/venture-manager-be/internal/config"
	"github.com/isdelr/venture-manager-be/internal/database"
	"github.com/isdelr/venture-manager-be/internal/logger"
	"github.com/isdelr/venture-manager-be/internal/services"
	"github.com/isdelr/venture-manager-be/internal/storage"
)

func main() {
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	// Set up database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to apply database migrations: %v", err)
	}

	// Set up blob store client
	blobs, err := storage.NewS3Store(context.Background(), storage.S3Options{
		Endpoint:      cfg.S3Endpoint,
		Region:        cfg.S3Region,
		AccessKey:     cfg.S3AccessKey,
		SecretKey:     cfg.S3SecretKey,
		Bucket:        cfg.S3Bucket,
		PublicBaseURL: cfg.S3PublicBaseURL,
	})
	if err != nil {
		log.Fatalf("Failed to initialize blob store: %v", err)
	}

	// Set up token manager and services
	tokens := auth.NewManager([]byte(cfg.JWTSecret), cfg.TokenTTL)
	userService := services.NewUserService(db)
	ventureService := services.NewVentureService(db, blobs)
	imageService := services.NewImageService(db, blobs)
	webhookService := services.NewWebhookService(db, userService)

	// Set up router
	router := api.NewRouter(tokens, userService, ventureService, imageService, webhookService)

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on port %d\n", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
