// Package catalog holds the read-only set of career routes served by the site.
// A Catalog is built once at startup from a Source and shared between requests.
package catalog

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"groeipaden_app/internal/models"
)

// Catalog is an immutable, ordered collection of routes
type Catalog struct {
	routes []models.Route
	byID   map[models.RouteID]int
}

// New builds a Catalog from routes. Routes with an unknown or duplicate id are
// dropped; every problem found is returned as an Issue.
func New(routes []models.Route) (*Catalog, []Issue) {
	issues := Validate(routes)

	c := &Catalog{byID: make(map[models.RouteID]int, len(routes))}
	for _, r := range routes {
		if _, known := models.ParseRouteID(string(r.ID)); !known {
			continue
		}
		if _, dup := c.byID[r.ID]; dup {
			continue
		}
		c.byID[r.ID] = len(c.routes)
		c.routes = append(c.routes, r)
	}
	return c, issues
}

// Empty returns a catalog without routes
func Empty() *Catalog {
	c, _ := New(nil)
	return c
}

// Routes returns the routes in dataset order
func (c *Catalog) Routes() []models.Route {
	out := make([]models.Route, len(c.routes))
	copy(out, c.routes)
	return out
}

// Len returns the number of routes
func (c *Catalog) Len() int {
	return len(c.routes)
}

// Route looks up a route by its identifier
func (c *Catalog) Route(id string) (models.Route, bool) {
	i, ok := c.byID[models.RouteID(id)]
	if !ok {
		return models.Route{}, false
	}
	return c.routes[i], true
}

// Suggest returns the route whose id or name is closest to query, for
// "did you mean" hints on unknown route requests.
func (c *Catalog) Suggest(query string) (models.Route, bool) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return models.Route{}, false
	}

	best, bestDist := -1, 0
	for i, r := range c.routes {
		for _, candidate := range []string{string(r.ID), strings.ToLower(r.Name)} {
			d := levenshtein.ComputeDistance(query, candidate)
			if best == -1 || d < bestDist {
				best, bestDist = i, d
			}
		}
	}
	if best == -1 || bestDist > maxSuggestDistance(query) {
		return models.Route{}, false
	}
	return c.routes[best], true
}

func maxSuggestDistance(query string) int {
	if n := len(query) / 3; n > 2 {
		return n
	}
	return 2
}
