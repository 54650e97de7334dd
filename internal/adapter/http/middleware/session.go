package middleware

import (
	"log"
	"net/http"

	"wheelworks/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	// SessionCookieName holds the signed dashboard session token.
	SessionCookieName = "ww_session"

	// LoginPath and DashboardPath are the frontend entry points the guard
	// redirects between.
	LoginPath     = "/login"
	DashboardPath = "/dashboard"
)

// RequireSession gates the dashboard routes.
//
// No cookie redirects to the login page. An invalid cookie (expired,
// malformed, wrong signature) does the same but clears the cookie first, so a
// stale token cannot cause a redirect loop; from the outside the two cases
// are indistinguishable.
func RequireSession(sessions usecase.ISessionUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}

		if err := sessions.Verify(token); err != nil {
			log.Printf("[auth][middleware] session rejected path=%s", c.Request.URL.Path)
			ClearSessionCookie(c)
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}

		c.Next()
	}
}

// RedirectIfAuthenticated sends an already-authenticated visitor of the login
// entry point straight to the dashboard.
func RedirectIfAuthenticated(sessions usecase.ISessionUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err == nil && token != "" && sessions.Verify(token) == nil {
			c.Redirect(http.StatusFound, DashboardPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// SetSessionCookie installs the httpOnly session cookie for the token's full
// lifetime.
func SetSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, int(usecase.SessionTTL.Seconds()), "/", "", false, true)
}

// ClearSessionCookie expires the session cookie immediately.
func ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
}
