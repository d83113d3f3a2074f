package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie the signed session token travels in.
const SessionCookieName = "parkpost_session"

const identityKey = "auth.identity"

// SessionMiddleware decodes the inbound session cookie once per request.
// Every decode failure (missing cookie, malformed, forged or expired
// token) resolves to anonymous; the error never reaches handler logic.
func SessionMiddleware(codec *TokenCodec) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cookie, err := c.Cookie(SessionCookieName); err == nil {
			if identity, err := codec.Verify(cookie); err == nil {
				c.Set(identityKey, identity)
			}
		}
		c.Next()
	}
}

// CurrentUser returns the identity attached by SessionMiddleware, or nil
// for anonymous requests.
func CurrentUser(c *gin.Context) *Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	identity, _ := v.(*Identity)
	return identity
}

// RequireAuth guards owner-scoped routes. Anonymous callers are
// redirected to the entry page; the protected view is never rendered and
// every protected route answers the same way.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// SetSessionCookie attaches a freshly minted token to the response,
// scoped to the token lifetime.
func SetSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(SessionCookieName, token, int(TokenLifetime.Seconds()), "/", "", true, true)
}

// ClearSessionCookie discards the session client-side. There is no
// server-side revocation; the token itself stays valid until it expires.
func ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", true, true)
}
