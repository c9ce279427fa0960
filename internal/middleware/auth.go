package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/gobarber/internal/httperr"
)

const ContextUserID = "userID"

// TokenParser resolves a bearer token to the authenticated user id.
type TokenParser interface {
	Parse(raw string) (uuid.UUID, error)
}

func AuthMiddleware(tokens TokenParser, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Abort(c, log, httperr.Unauthorized("missing_authorization_header", "JWT token is missing."))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Abort(c, log, httperr.Unauthorized("invalid_authorization_header", "Authorization header must be Bearer <token>."))
			return
		}

		userID, err := tokens.Parse(parts[1])
		if err != nil {
			httperr.Abort(c, log, httperr.Unauthorized("invalid_token", "Invalid JWT token."))
			return
		}

		c.Set(ContextUserID, userID)

		c.Next()
	}
}

// UserID returns the id set by AuthMiddleware.
func UserID(c *gin.Context) uuid.UUID {
	return c.MustGet(ContextUserID).(uuid.UUID)
}
