package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"groeipaden_app/internal/catalog"
	"groeipaden_app/internal/models"
	"groeipaden_app/web/templates"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, issues := catalog.New([]models.Route{
		{ID: models.RouteIDService, Name: "Service & Onderhoud", Meta: models.RouteMeta{Color: "#10B981"}, Steps: []models.Step{{ID: "s", Title: "Monteur"}}},
	})
	require.Empty(t, issues)
	return c
}

func serveError(e *echo.Echo, method, target string, err error) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(method, target, nil), rec)
	e.HTTPErrorHandler(err, c)
	return rec
}

func TestCustomErrorHandlerNotFound(t *testing.T) {
	e := echo.New()
	e.Renderer = templates.EchoRenderer{}
	e.HTTPErrorHandler = CustomErrorHandler(testCatalog(t), zap.NewNop())

	rec := serveError(e, http.MethodGet, "/route/servic", echo.ErrNotFound)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Pagina niet gevonden")
	assert.Contains(t, rec.Body.String(), `data-suggestion="service"`)
	assert.Contains(t, rec.Body.String(), `href="/route/service"`)

	rec = serveError(e, http.MethodGet, "/other/servic", echo.ErrNotFound)
	assert.NotContains(t, rec.Body.String(), "data-suggestion", "only route paths get suggestions")
}

func TestCustomErrorHandlerUnknownStepLinksBackToRoute(t *testing.T) {
	e := echo.New()
	e.Renderer = templates.EchoRenderer{}
	e.HTTPErrorHandler = CustomErrorHandler(testCatalog(t), zap.NewNop())

	rec := serveError(e, http.MethodGet, "/route/service/steps/nope", echo.ErrNotFound)
	require.Equal(t, http.StatusNotFound, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `<a class="btn" href="/route/service">Terug naar Service &amp; Onderhoud</a>`)
	assert.NotContains(t, body, "data-suggestion")

	rec = serveError(e, http.MethodGet, "/route/servic", echo.ErrNotFound)
	assert.Contains(t, rec.Body.String(), `<a class="btn" href="/">Terug naar overzicht</a>`)
}

func TestCustomErrorHandlerInternalError(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	e := echo.New()
	e.Renderer = templates.EchoRenderer{}
	e.HTTPErrorHandler = CustomErrorHandler(nil, zap.New(core))

	rec := serveError(e, http.MethodGet, "/", errors.New("database exploded"))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Er ging iets mis")
	assert.NotContains(t, rec.Body.String(), "database exploded")
	assert.Equal(t, 1, logs.FilterMessage("request failed").Len())
}

func TestCustomErrorHandlerPlainTextFallback(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = CustomErrorHandler(nil, zap.NewNop())

	rec := serveError(e, http.MethodGet, "/route/x", echo.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "De pagina die je zoekt bestaat niet.", rec.Body.String())
}

func TestCustomErrorHandlerHead(t *testing.T) {
	e := echo.New()
	e.Renderer = templates.EchoRenderer{}
	e.HTTPErrorHandler = CustomErrorHandler(nil, zap.NewNop())

	rec := serveError(e, http.MethodHead, "/route/x", echo.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestCustomErrorHandlerCustomMessage(t *testing.T) {
	e := echo.New()
	e.Renderer = templates.EchoRenderer{}
	e.HTTPErrorHandler = CustomErrorHandler(nil, zap.NewNop())

	rec := serveError(e, http.MethodGet, "/", echo.NewHTTPError(http.StatusBadRequest, "Onbekende taal"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ongeldig verzoek")
	assert.Contains(t, rec.Body.String(), "Onbekende taal")
}
