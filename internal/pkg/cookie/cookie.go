package cookie

import (
	"net/http"
	"time"

	"webnebula-api/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const CSRFCookieName = "csrf"

// SetCSRFCookie sets the anti-forgery cookie the way the forms expect it:
// HttpOnly, SameSite=Strict, Secure, scoped to the whole site.
func SetCSRFCookie(c *gin.Context, cfg config.SecurityConfig, token string, ttl time.Duration) {
	c.SetSameSite(http.SameSiteStrictMode)

	c.SetCookie(
		CSRFCookieName,
		token,
		int(ttl.Seconds()),
		"/",
		cfg.CookieDomain,
		cfg.CookieSecure,
		true, // HttpOnly
	)
}

func ClearCSRFCookie(c *gin.Context, cfg config.SecurityConfig) {
	c.SetSameSite(http.SameSiteStrictMode)

	c.SetCookie(
		CSRFCookieName,
		"",
		-1,
		"/",
		cfg.CookieDomain,
		cfg.CookieSecure,
		true,
	)
}

func GetCSRFToken(c *gin.Context) string {
	token, _ := c.Cookie(CSRFCookieName)
	return token
}
