package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/osidou/osidou-web/internal/config"
	"github.com/osidou/osidou-web/internal/upstream"
)

const sessionIDKey = "session_id"

// Session identifies the browser by a UUID cookie, issuing one on first
// contact, and carries it in the request context for the token lookup.
func Session(cfg config.SessionConfig) gin.HandlerFunc {
	name := cfg.CookieName
	if name == "" {
		name = "osidou_session"
	}
	return func(c *gin.Context) {
		id, err := c.Cookie(name)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.NewString()
		}
		// refresh expiry on every request
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(name, id, cfg.MaxAge, "/", "", cfg.Secure, true)

		c.Set(sessionIDKey, id)
		c.Request = c.Request.WithContext(upstream.WithSession(c.Request.Context(), id))
		c.Next()
	}
}

// GetSessionID returns the browser session ID set by Session
func GetSessionID(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}
