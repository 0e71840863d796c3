package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"groeipaden_app/internal/middleware"
	"groeipaden_app/internal/models"
	"groeipaden_app/internal/viewer"
	"groeipaden_app/web/templates/pages"
	"groeipaden_app/web/templates/shared"
)

// RouteHandler serves the overview, the route timelines and the step dialog
type RouteHandler struct {
	site Site
}

// NewRouteHandler creates a new RouteHandler
func NewRouteHandler(site Site) *RouteHandler {
	return &RouteHandler{site: site}
}

// ListRoutes renders the overview of all routes
func (h *RouteHandler) ListRoutes(c echo.Context) error {
	loc := middleware.Localizer(c)

	routes := h.site.Catalog.Routes()
	cards := make([]pages.RouteCard, 0, len(routes))
	for _, r := range routes {
		cards = append(cards, pages.RouteCard{
			Route:     r,
			Href:      viewer.RoutePath(r.ID),
			StepCount: loc.Count("route_step_count", len(r.Steps)),
		})
	}

	props := pages.RoutesListProps{
		Layout: middleware.LayoutFor(c, loc.T("nav_home"), "home", nil),
		Routes: cards,
	}
	return c.Render(http.StatusOK, "index", pages.RoutesList(props))
}

// ShowRoute renders the timeline of a route. ?step=<id> renders the page
// with that step's dialog open; an unknown step leaves the dialog closed.
func (h *RouteHandler) ShowRoute(c echo.Context) error {
	route, err := h.route(c)
	if err != nil {
		return err
	}
	loc := middleware.Localizer(c)

	sel := viewer.Closed()
	if stepID := c.QueryParam("step"); stepID != "" {
		sel = sel.Select(route, stepID)
	}

	consultation := h.site.consultationText(loc)
	props := pages.RouteDetailProps{
		Layout: middleware.LayoutFor(c, route.Name, "route", []shared.Breadcrumb{
			{Title: loc.T("nav_home"), URL: "/"},
			{Title: route.Name},
		}),
		Route:        route,
		Markers:      pages.NewMarkers(route, sel),
		StepCount:    loc.Count("route_step_count", len(route.Steps)),
		Consultation: consultation,
		RoutePath:    viewer.RoutePath(route.ID),
		DialogPath:   viewer.DialogPath(route.ID),
	}
	if overlay, ok := viewer.NewOverlay(route, sel, h.site.Links); ok {
		props.Dialog = &pages.DialogProps{Loc: loc, Overlay: overlay, Consultation: consultation}
	}

	return c.Render(http.StatusOK, "route", pages.RouteDetail(props))
}

// ShowStep renders only the dialog of one step
func (h *RouteHandler) ShowStep(c echo.Context) error {
	route, err := h.route(c)
	if err != nil {
		return err
	}

	sel := viewer.Closed().Select(route, c.Param("stepId"))
	overlay, ok := viewer.NewOverlay(route, sel, h.site.Links)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	return h.renderDialog(c, overlay)
}

// ShowDialog resolves a location fragment (?fragment=#step-<id>) to the step
// dialog. The timeline script calls it on load, on back/forward and for every
// marker click. A fragment that names no step of the route answers 204.
func (h *RouteHandler) ShowDialog(c echo.Context) error {
	route, err := h.route(c)
	if err != nil {
		return err
	}

	sel := viewer.Restore(route, c.QueryParam("fragment"))
	overlay, ok := viewer.NewOverlay(route, sel, h.site.Links)
	if !ok {
		return c.NoContent(http.StatusNoContent)
	}
	return h.renderDialog(c, overlay)
}

func (h *RouteHandler) renderDialog(c echo.Context, overlay viewer.Overlay) error {
	loc := middleware.Localizer(c)
	props := pages.DialogProps{
		Loc:          loc,
		Overlay:      overlay,
		Consultation: h.site.consultationText(loc),
	}
	return c.Render(http.StatusOK, "step_dialog", pages.StepDialog(props))
}

// HealthResponse is the body of /healthz
type HealthResponse struct {
	Status string `json:"status"`
	Routes int    `json:"routes"`
}

// Health reports how many routes the site serves
func (h *RouteHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok", Routes: h.site.Catalog.Len()})
}

func (h *RouteHandler) route(c echo.Context) (models.Route, error) {
	route, ok := h.site.Catalog.Route(c.Param("routeId"))
	if !ok {
		return models.Route{}, echo.NewHTTPError(http.StatusNotFound)
	}
	return route, nil
}
