package dto

import authdomain "github.com/PrinceEeppakayal/Autohub-Car-Selling-Website/internal/auth/domain"

// Field names match the JSON keys so validation errors name what the client sent.
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type LoginResponse struct {
	Message string             `json:"message"`
	Token   string             `json:"token"`
	User    authdomain.Profile `json:"user"`
}
