package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"groeipaden_app/internal/catalog"
	"groeipaden_app/internal/viewer"
	"groeipaden_app/web/templates/pages"
	"groeipaden_app/web/templates/shared"
)

type errorText struct {
	title   string
	message string
}

var errorTexts = map[int]errorText{
	http.StatusNotFound:     {"error_not_found_title", "error_not_found_text"},
	http.StatusForbidden:    {"error_forbidden_title", "error_forbidden_text"},
	http.StatusUnauthorized: {"error_unauthorized_title", "error_unauthorized_text"},
	http.StatusBadRequest:   {"error_bad_request_title", "error_bad_request_text"},
}

// CustomErrorHandler creates a custom error handler for Echo. Unknown routes
// get a 404 page that suggests the closest known route.
func CustomErrorHandler(cat *catalog.Catalog, logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		errorMessage := ""

		// Check if it's an Echo HTTPError
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if msg, ok := he.Message.(string); ok && msg != http.StatusText(code) {
				errorMessage = msg
			}
		}

		loc := Localizer(c)
		text, ok := errorTexts[code]
		if !ok {
			text = errorText{"error_generic_title", "error_generic_text"}
		}
		errorTitle := loc.T(text.title)
		if errorMessage == "" || code >= http.StatusInternalServerError {
			errorMessage = loc.T(text.message)
		}

		fields := []zap.Field{
			zap.Int("status", code),
			zap.String("method", c.Request().Method),
			zap.String("path", c.Request().URL.Path),
			zap.Error(err),
		}
		if code >= http.StatusInternalServerError {
			logger.Error("request failed", fields...)
		} else {
			logger.Debug("request rejected", fields...)
		}

		if c.Request().Method == http.MethodHead {
			if err := c.NoContent(code); err != nil {
				logger.Error("write error response", zap.Error(err))
			}
			return
		}

		props := pages.ErrorPageProps{
			Layout: LayoutFor(c, errorTitle, "", []shared.Breadcrumb{
				{Title: loc.T("nav_home"), URL: "/"},
				{Title: errorTitle},
			}),
			ErrorTitle:   errorTitle,
			ErrorMessage: errorMessage,
		}
		if code == http.StatusNotFound && cat != nil {
			path := c.Request().URL.Path
			if route, ok := cat.Route(routeIDOf(path)); ok {
				// Unknown step of a known route
				props.BackLink = viewer.RoutePath(route.ID)
				props.BackText = loc.Tf("back_to_route", "Route", route.Name)
			} else {
				props.Suggestion = suggestRoute(cat, path)
			}
		}

		if renderErr := c.Render(code, "error", pages.ErrorPage(props)); renderErr != nil {
			// Fallback to plain text if template fails
			logger.Error("render error page", zap.Error(fmt.Errorf("failed to render error page: %w", renderErr)))
			if err := c.String(code, errorMessage); err != nil {
				logger.Error("write error response", zap.Error(err))
			}
		}
	}
}

// routeIDOf returns the route id of a /route/<id>[/...] path, or ""
func routeIDOf(path string) string {
	rest, ok := strings.CutPrefix(path, "/route/")
	if !ok {
		return ""
	}
	id, _, _ := strings.Cut(rest, "/")
	return id
}

func suggestRoute(cat *catalog.Catalog, path string) *pages.SuggestionLink {
	id := routeIDOf(path)
	if id == "" {
		return nil
	}
	route, ok := cat.Suggest(id)
	if !ok {
		return nil
	}
	return &pages.SuggestionLink{Route: route, Href: viewer.RoutePath(route.ID)}
}
