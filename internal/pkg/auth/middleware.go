package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	// CookieName is where web clients carry the credential.
	CookieName = "jwt-token"
	// PlatformHeader selects the token extraction path; defaults to web.
	PlatformHeader = "X-Platform"

	contextUserIDKey = "auth.user_id"

	cookieMaxAge = int(TokenTTL / time.Second)
)

// Middleware resolves the bearer credential to a user id before the handler
// runs. Web clients present the jwt-token cookie, mobile clients the
// Authorization: Bearer header. Handlers must trust only the resolved
// identity, never client-supplied ids.
func Middleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized - no token provided"})
			return
		}

		userID, err := VerifyToken(secret, token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized - invalid token"})
			return
		}

		c.Set(contextUserIDKey, userID)
		c.Next()
	}
}

// UserID returns the authenticated identity stored by the middleware.
func UserID(c *gin.Context) (string, bool) {
	v, ok := c.Get(contextUserIDKey)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

// SetWebCookie stores the credential for web clients.
func SetWebCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(CookieName, token, cookieMaxAge, "/", "", false, true)
}

// ClearWebCookie removes the credential cookie on logout.
func ClearWebCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
}

func extractToken(c *gin.Context) string {
	platform := c.GetHeader(PlatformHeader)
	if platform == "" {
		platform = "web"
	}

	switch platform {
	case "mobile":
		header := c.GetHeader("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			return strings.TrimPrefix(header, "Bearer ")
		}
		return ""
	default:
		token, err := c.Cookie(CookieName)
		if err != nil {
			return ""
		}
		return token
	}
}
