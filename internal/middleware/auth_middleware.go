package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wmad/library-backend/internal/app/models/dto"
	"github.com/wmad/library-backend/internal/pkg/auth"
	"github.com/wmad/library-backend/internal/pkg/logger"
)

// ContextUserIDKey is the gin context key holding the authenticated user id (int64)
const ContextUserIDKey = "userID"

// TokenValidator verifies a bearer token
type TokenValidator interface {
	ValidateToken(token string) (*auth.Claims, error)
}

// AuthGate rejects requests without a valid "<scheme> <token>" Authorization
// header. The scheme is not checked and the user record is never loaded.
func AuthGate(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			AbortWithError(c, http.StatusUnauthorized, dto.ErrorCodeUnauthorized, "Unauthorized")
			return
		}

		claims, err := tokens.ValidateToken(tokenString)
		if err != nil {
			logger.Debug().Err(err).Str("path", c.Request.URL.Path).Msg("Token rejected")
			AbortWithError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Unauthorized")
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Next()
	}
}

// UserIDFromContext returns the id stored by AuthGate
func UserIDFromContext(c *gin.Context) (int64, bool) {
	v, ok := c.Get(ContextUserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
