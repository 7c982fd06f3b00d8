package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	api "github.com/PrinceEeppakayal/Autohub-Car-Selling-Website/cmd/api"
	authRepo "github.com/PrinceEeppakayal/Autohub-Car-Selling-Website/internal/auth/repository"
	authUsecase "github.com/PrinceEeppakayal/Autohub-Car-Selling-Website/internal/auth/usecase"
	submissionRepo "github.com/PrinceEeppakayal/Autohub-Car-Selling-Website/internal/submission/repository"
	submissionUsecase "github.com/PrinceEeppakayal/Autohub-Car-Selling-Website/internal/submission/usecase"
	"github.com/PrinceEeppakayal/Autohub-Car-Selling-Website/pkg/config"
	"github.com/PrinceEeppakayal/Autohub-Car-Selling-Website/pkg/database"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	// Initialize database
	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("[Database] [ERROR] close: %v", err)
		}
	}()

	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	// Initialize repositories (dependency injection)
	userRepo := authRepo.NewUserRepository(db)
	submissionRepository := submissionRepo.NewGormSubmissionRepository(db)

	// Initialize use cases
	hasher := authRepo.NewPasswordHasher(cfg.BcryptCost)
	tokens := authUsecase.NewTokenService(cfg.JWTSecret)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepo, hasher, tokens)
	submissionUsecaseInstance := submissionUsecase.NewSubmissionUsecase(submissionRepository)

	handler := api.NewHandler(authUsecaseInstance, submissionUsecaseInstance, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("Server starting on port %s (bcrypt cost %d)", cfg.Port, hasher.Cost())
	if err := handler.Run(ctx, ":"+cfg.Port); err != nil {
		log.Printf("[Server] [ERROR] %v", err)
	}
	log.Printf("[Server] Stopped")
}
