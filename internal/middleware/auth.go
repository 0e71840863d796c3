package middleware

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"groeipaden_app/internal/services"
)

const (
	userUIDKey   = "userUID"
	userEmailKey = "userEmail"
	userNameKey  = "userName"

	// SessionCookie holds the Firebase session cookie
	SessionCookie = "session"
)

// RequireAuth returns a middleware that verifies Firebase session cookies
func RequireAuth(verifier services.SessionVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Check if Firebase is initialized
			if verifier == nil {
				return c.Redirect(http.StatusTemporaryRedirect, "/login?error=auth_not_configured")
			}

			loginURL := "/login?next=" + url.QueryEscape(c.Request().URL.RequestURI())

			// Get the session cookie
			cookie, err := c.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				return c.Redirect(http.StatusTemporaryRedirect, loginURL)
			}

			// Verify the session cookie
			decodedToken, err := verifier.VerifySessionCookie(c.Request().Context(), cookie.Value)
			if err != nil {
				// Invalid session, clear cookie and redirect
				c.SetCookie(&http.Cookie{
					Name:     SessionCookie,
					Value:    "",
					MaxAge:   -1,
					HttpOnly: true,
					Path:     "/",
				})
				return c.Redirect(http.StatusTemporaryRedirect, loginURL)
			}

			// Set user info in context for downstream handlers
			c.Set(userUIDKey, decodedToken.UID)
			if email, ok := decodedToken.Claims["email"].(string); ok {
				c.Set(userEmailKey, email)
			}
			if name, ok := decodedToken.Claims["name"].(string); ok {
				c.Set(userNameKey, name)
			}

			return next(c)
		}
	}
}
