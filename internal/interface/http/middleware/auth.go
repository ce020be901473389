package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/luismlg/casfid-technical-test/pkg/errors"
	"github.com/luismlg/casfid-technical-test/pkg/jwt"
	"github.com/luismlg/casfid-technical-test/pkg/response"
)

// AuthMiddleware is the optional bearer-token gate. It only checks that
// the request carries a valid HS256 token; there is no user store or
// role model behind it.
type AuthMiddleware struct {
	jwtManager *jwt.Manager
}

func NewAuthMiddleware(jwtManager *jwt.Manager) *AuthMiddleware {
	return &AuthMiddleware{jwtManager: jwtManager}
}

// RequireAuth rejects requests without a valid "Authorization: Bearer
// <token>" header.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, apperrors.ErrUnauthorized)
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Error(c, apperrors.ErrInvalidToken)
			c.Abort()
			return
		}

		if _, err := m.jwtManager.Verify(parts[1]); err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Next()
	}
}
