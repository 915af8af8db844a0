package middleware

import (
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

const flashKey = "_flash"

// Flash is one user-visible status message carried across a redirect.
// Level matches the alert style rendered on the dashboard ("success"
// or "danger").
type Flash struct {
	Level   string
	Message string
}

// Sessions returns the session middleware backed by a cookie store
// signed with the configured secret key.
func Sessions(secret string) gin.HandlerFunc {
	store := cookie.NewStore([]byte(secret))
	return sessions.Sessions("resto_session", store)
}

// AddFlash queues a status message for the next dashboard render.
func AddFlash(c *gin.Context, level, message string) {
	session := sessions.Default(c)
	session.AddFlash(level+"|"+message, flashKey)
	// The message is cosmetic; a failed save only loses the banner.
	_ = session.Save()
}

// TakeFlashes returns and clears all queued status messages.
func TakeFlashes(c *gin.Context) []Flash {
	session := sessions.Default(c)
	raw := session.Flashes(flashKey)
	if len(raw) > 0 {
		// Reading flashes removes them; persist the cleared session.
		_ = session.Save()
	}

	flashes := make([]Flash, 0, len(raw))
	for _, v := range raw {
		s, ok := v.(string)
		if !ok {
			continue
		}
		level, message, found := strings.Cut(s, "|")
		if !found {
			flashes = append(flashes, Flash{Level: "info", Message: s})
			continue
		}
		flashes = append(flashes, Flash{Level: level, Message: message})
	}
	return flashes
}
