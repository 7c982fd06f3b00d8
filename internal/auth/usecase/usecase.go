package usecase

import (
	"context"

	authdomain "github.com/PrinceEeppakayal/Autohub-Car-Selling-Website/internal/auth/domain"
	authdto "github.com/PrinceEeppakayal/Autohub-Car-Selling-Website/internal/auth/dto"
)

// AuthUsecase defines the interface for authentication business logic
type AuthUsecase interface {
	// Register creates a user with a hashed password
	Register(ctx context.Context, req *authdto.RegisterRequest) (*authdomain.User, error)

	// Login checks credentials and issues a one hour bearer token
	Login(ctx context.Context, req *authdto.LoginRequest) (*authdto.LoginResponse, error)

	// ValidateToken verifies a bearer token without touching the store
	ValidateToken(token string) (*authdomain.Claims, error)
}
