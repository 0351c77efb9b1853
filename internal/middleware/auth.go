package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/auth"
	"portfolio-backend/pkg/response"
)

const ContextToken = "auth_token"

// TokenRequired checks the Authorization header against the token store.
// A missing header, a malformed header, or an unknown token all fail the
// same way, before the handler runs.
func TokenRequired(tokens auth.TokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" || !tokens.Check(token) {
			response.Error(c, response.ErrAuthRequired)
			c.Abort()
			return
		}

		c.Set(ContextToken, token)
		c.Next()
	}
}

// GetToken returns the verified bearer token for the current request, or ""
// outside protected routes.
func GetToken(c *gin.Context) string {
	if token, exists := c.Get(ContextToken); exists {
		return token.(string)
	}
	return ""
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
