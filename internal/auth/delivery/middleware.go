package delivery

import (
	"log"
	"strings"

	authdomain "github.com/PrinceEeppakayal/Autohub-Car-Selling-Website/internal/auth/domain"
	"github.com/PrinceEeppakayal/Autohub-Car-Selling-Website/internal/auth/usecase"
	"github.com/PrinceEeppakayal/Autohub-Car-Selling-Website/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// Context keys set by AuthMiddleware.
const (
	ClaimsKey = "claims"
	UserIDKey = "userID"
)

// AuthMiddleware admits requests carrying a valid "Authorization: Bearer <token>"
// header. A missing token answers 401, a token that fails verification 403.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			abortWithError(c, apperror.ErrMissingToken)
			return
		}

		claims, err := authUsecase.ValidateToken(token)
		if err != nil {
			log.Printf("[Auth] Token verification failed: %v", err)
			abortWithError(c, err)
			return
		}

		c.Set(ClaimsKey, claims)
		c.Set(UserIDKey, claims.ID)
		c.Next()
	}
}

// CurrentClaims returns the identity attached by AuthMiddleware.
func CurrentClaims(c *gin.Context) (*authdomain.Claims, bool) {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*authdomain.Claims)
	return claims, ok
}

func bearerToken(header string) string {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func abortWithError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(apperror.StatusCode(err), gin.H{"message": apperror.PublicMessage(err)})
}
