package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"meetpoll/pkg/response"
)

// SessionTokenKey is the gin context key holding the raw bearer token.
const SessionTokenKey = "session_token"

// Auth extracts the Authorization bearer token, verifies the session
// signature, and stores the raw token for use cases that need the
// underlying provider credentials. Requests without a valid session are
// rejected up front.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if _, err := m.session.Verify(token); err != nil {
			m.l.Warnf(c.Request.Context(), "Auth: rejected session token: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(SessionTokenKey, token)
		c.Next()
	}
}

// SessionToken returns the bearer token stashed by Auth, or empty.
func SessionToken(c *gin.Context) string {
	token, _ := c.Get(SessionTokenKey)
	s, _ := token.(string)
	return s
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
