package delivery

import (
	"log"
	"net/http"

	authdto "github.com/PrinceEeppakayal/Autohub-Car-Selling-Website/internal/auth/dto"
	"github.com/PrinceEeppakayal/Autohub-Car-Selling-Website/internal/auth/usecase"
	"github.com/PrinceEeppakayal/Autohub-Car-Selling-Website/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration and login
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

// Register creates an account
// POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	if _, err := h.authUsecase.Register(c.Request.Context(), &req); err != nil {
		respondError(c, "registration", err)
		return
	}

	c.JSON(http.StatusCreated, authdto.MessageResponse{Message: "User registered successfully"})
}

// Login exchanges credentials for a bearer token
// POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	resp, err := h.authUsecase.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, "login", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func respondError(c *gin.Context, op string, err error) {
	status := apperror.StatusCode(err)
	if status >= http.StatusInternalServerError {
		log.Printf("[Auth] [ERROR] %s failed (request %s): %v", op, c.GetString("requestID"), err)
	}
	c.JSON(status, gin.H{"message": apperror.PublicMessage(err)})
}
