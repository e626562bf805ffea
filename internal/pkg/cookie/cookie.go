package cookie

import (
	"github.com/gin-gonic/gin"
)

const SessionCookieName = "np_session"

// Anonymous carts hang off a browser session id carried in a long-lived
// HttpOnly cookie. Thirty days matches the stale cart sweep horizon.
const sessionMaxAgeSeconds = 30 * 24 * 60 * 60

func SetSessionID(c *gin.Context, sessionID string, domain string, secure bool) {
	c.SetCookie(
		SessionCookieName,
		sessionID,
		sessionMaxAgeSeconds,
		"/",
		domain,
		secure,
		true, // HttpOnly
	)
}

func GetSessionID(c *gin.Context) string {
	v, _ := c.Cookie(SessionCookieName)
	return v
}
