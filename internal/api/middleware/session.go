package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionCookie     = "shop_session"
	SessionContextKey = "session_id"
)

// SessionMiddleware assigns every visitor an opaque session identifier used
// as the cart key. The cookie lifetime matches the cart TTL so the cookie and
// the stored cart expire together.
func SessionMiddleware(ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookie)
		if err != nil || sessionID == "" {
			sessionID = uuid.New().String()
			c.SetCookie(SessionCookie, sessionID, int(ttl.Seconds()), "/", "", false, true)
		}
		c.Set(SessionContextKey, sessionID)
		c.Next()
	}
}

// GetSessionID retrieves the visitor's session identifier from the Gin context
func GetSessionID(c *gin.Context) string {
	return c.GetString(SessionContextKey)
}
