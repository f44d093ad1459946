package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

const HeaderControlToken = "X-Monitor-Token"

type AuthMiddleware interface {
	RequireToken() gin.HandlerFunc
}

type authMiddleware struct {
	token string
}

// RequireToken rejects requests whose X-Monitor-Token does not match. An empty token disables the check.
func (a *authMiddleware) RequireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		if a.token == "" {
			c.Next()
			return
		}
		provided := c.Request.Header.Get(HeaderControlToken)
		if len(provided) == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "X-Monitor-Token header is empty",
			})
			return
		}
		if subtle.ConstantTimeCompare([]byte(provided), []byte(a.token)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Permission denied",
			})
			return
		}
		c.Next()
	}
}

func NewAuthMiddleware(token string) AuthMiddleware {
	return &authMiddleware{
		token: token,
	}
}
