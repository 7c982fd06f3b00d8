package repository

import (
	"context"

	authdomain "github.com/PrinceEeppakayal/Autohub-Car-Selling-Website/internal/auth/domain"
)

// UserRepository is the credential store.
type UserRepository interface {
	// Create inserts the user and fills in ID and CreatedAt.
	// Returns apperror.ErrConflict when the email is taken.
	Create(ctx context.Context, user *authdomain.User) error

	// FindByEmail returns nil, nil when no user has that email
	FindByEmail(ctx context.Context, email string) (*authdomain.User, error)

	FindByID(ctx context.Context, id uint) (*authdomain.User, error)
}
