package usecase

import (
	"context"
	"log"
	"strings"

	authdomain "github.com/PrinceEeppakayal/Autohub-Car-Selling-Website/internal/auth/domain"
	authdto "github.com/PrinceEeppakayal/Autohub-Car-Selling-Website/internal/auth/dto"
	"github.com/PrinceEeppakayal/Autohub-Car-Selling-Website/internal/auth/repository"
	"github.com/PrinceEeppakayal/Autohub-Car-Selling-Website/pkg/apperror"
	"github.com/PrinceEeppakayal/Autohub-Car-Selling-Website/pkg/fields"
)

var (
	registerFields = []string{"firstName", "lastName", "email", "phone", "password"}
	loginFields    = []string{"email", "password"}
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	hasher   *repository.PasswordHasher
	tokens   *TokenService
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, hasher *repository.PasswordHasher, tokens *TokenService) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

func (u *authUsecase) Register(ctx context.Context, req *authdto.RegisterRequest) (*authdomain.User, error) {
	payload := map[string]any{
		"firstName": req.FirstName,
		"lastName":  req.LastName,
		"email":     req.Email,
		"phone":     req.Phone,
		"password":  req.Password,
	}
	if err := fields.Require(payload, registerFields); err != nil {
		return nil, err
	}

	email := normalizeEmail(req.Email)
	existing, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.ErrConflict
	}

	hashedPassword, err := u.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &authdomain.User{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     email,
		Phone:     strings.TrimSpace(req.Phone),
		Password:  hashedPassword,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	log.Printf("[Auth] User registered with ID: %d", user.ID)
	return user, nil
}

func (u *authUsecase) Login(ctx context.Context, req *authdto.LoginRequest) (*authdto.LoginResponse, error) {
	payload := map[string]any{"email": req.Email, "password": req.Password}
	if err := fields.Require(payload, loginFields); err != nil {
		return nil, err
	}

	user, err := u.userRepo.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidCredentials
	}

	if !u.hasher.Verify(req.Password, user.Password) {
		return nil, apperror.ErrInvalidCredentials
	}

	profile := user.Profile()
	token, _, err := u.tokens.Issue(profile)
	if err != nil {
		return nil, err
	}

	return &authdto.LoginResponse{
		Message: "Login successful",
		Token:   token,
		User:    profile,
	}, nil
}

func (u *authUsecase) ValidateToken(token string) (*authdomain.Claims, error) {
	return u.tokens.Verify(token)
}

// Emails are compared case-insensitively; stored lowercased.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
