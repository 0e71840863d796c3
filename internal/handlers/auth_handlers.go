package handlers

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"groeipaden_app/internal/middleware"
	"groeipaden_app/internal/services"
	"groeipaden_app/web/templates/pages"
)

const sessionExpiry = time.Hour * 24 * 5

// FirebaseWebConfig is the public part of the Firebase project config
type FirebaseWebConfig struct {
	APIKey     string
	AuthDomain string
	ProjectID  string
}

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	verifier     services.SessionVerifier
	web          FirebaseWebConfig
	secureCookie bool
}

// NewAuthHandler creates a new AuthHandler. verifier may be nil when
// Firebase could not be initialized.
func NewAuthHandler(verifier services.SessionVerifier, web FirebaseWebConfig, secureCookie bool) *AuthHandler {
	return &AuthHandler{verifier: verifier, web: web, secureCookie: secureCookie}
}

// LoginPage renders the login page
func (h *AuthHandler) LoginPage(c echo.Context) error {
	loc := middleware.Localizer(c)

	props := pages.LoginPageProps{
		Layout:             middleware.LayoutFor(c, loc.T("login_title"), "login", nil),
		Configured:         h.verifier != nil && h.web.APIKey != "",
		FirebaseAPIKey:     h.web.APIKey,
		FirebaseAuthDomain: h.web.AuthDomain,
		FirebaseProjectID:  h.web.ProjectID,
		Next:               localRedirect(c.QueryParam("next")),
	}
	return c.Render(http.StatusOK, "login", pages.LoginPage(props))
}

// localRedirect returns next when it is a path on this site, "/" otherwise.
// Browsers read a backslash as a slash, so "/\host" counts as "//host".
func localRedirect(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.Contains(next, "\\") {
		return "/"
	}
	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" || u.Opaque != "" {
		return "/"
	}
	return next
}

// HandleLogin verifies the Firebase ID token and creates a session cookie
func (h *AuthHandler) HandleLogin(c echo.Context) error {
	if h.verifier == nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Firebase not initialized",
		})
	}

	// Get ID Token from Authorization Header
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "Missing authorization header",
		})
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "Invalid authorization format",
		})
	}

	// Verify ID Token
	if _, err := h.verifier.VerifyIDToken(c.Request().Context(), tokenString); err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "Invalid token",
		})
	}

	cookieValue, err := h.verifier.SessionCookie(c.Request().Context(), tokenString, sessionExpiry)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to create session",
		})
	}

	// Set HTTP-Only Cookie
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    cookieValue,
		MaxAge:   int(sessionExpiry.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookie,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, map[string]string{
		"status": "success",
	})
}

// HandleLogout clears the session cookie
func (h *AuthHandler) HandleLogout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
		Path:     "/",
	})

	return c.JSON(http.StatusOK, map[string]string{
		"status": "logged out",
	})
}
