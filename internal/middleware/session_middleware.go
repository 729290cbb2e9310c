package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopflow/shopflow-backend/config"
)

// SessionIDKey is the gin context key holding the resolved guest cart
// session id for the current request.
const SessionIDKey = "session_id"

// CartSessionMiddleware resolves the guest cart session for every request.
// Resolution order: explicit sessionId query parameter (the storefront
// client keeps its own id in local storage), then the session cookie. When
// neither is present a fresh UUID is minted and set as a cookie, so plain
// HTTP clients get a stable guest cart too.
func CartSessionMiddleware(cfg config.SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := GetLoggerFromContext(c)

		sessionID := c.Query("sessionId")
		if sessionID == "" {
			sessionID, _ = c.Cookie(cfg.CookieName)
		}
		if sessionID == "" {
			sessionID = uuid.NewString()
			c.SetCookie(cfg.CookieName, sessionID, int(cfg.MaxAge.Seconds()), "/", "", false, true)
			log.Debug("Issued new cart session", map[string]interface{}{
				"session_id": sessionID,
			})
		}

		c.Set(SessionIDKey, sessionID)
		c.Next()
	}
}

// GetSessionID extracts the guest cart session id from the gin context.
func GetSessionID(c *gin.Context) (string, bool) {
	sessionID := c.GetString(SessionIDKey)
	return sessionID, sessionID != ""
}
