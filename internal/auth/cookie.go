package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CookieName is the cookie the credential travels in.
const CookieName = "token"

// SetTokenCookie attaches the credential cookie. Production deployments serve
// a cross-site frontend, so the cookie needs Secure + SameSite=None there;
// local development relaxes both.
func SetTokenCookie(c *gin.Context, token string, production bool) {
	if production {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteStrictMode)
	}
	c.SetCookie(CookieName, token, int(TokenTTL.Seconds()), "/", "", production, true)
}

// ClearTokenCookie tells the caller's agent to discard the credential.
func ClearTokenCookie(c *gin.Context, production bool) {
	if production {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteStrictMode)
	}
	c.SetCookie(CookieName, "", -1, "/", "", production, true)
}
