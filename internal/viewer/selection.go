// Package viewer models the route timeline and its step overlay.
//
// The open step is a single Selection value: either Closed or Open on one
// step of one route. Transitions are pure functions returning a new value, so
// the overlay visibility and the selected step can never disagree. The
// location fragment (#step-<id>) is derived from the Selection, never stored.
package viewer

import (
	"net/url"
	"strings"

	"groeipaden_app/internal/models"
)

// Selection is the overlay state for one route page
type Selection struct {
	open    bool
	routeID models.RouteID
	stepID  string
}

// Closed is the selection with no overlay
func Closed() Selection {
	return Selection{}
}

// IsOpen reports whether the overlay is shown
func (s Selection) IsOpen() bool { return s.open }

// RouteID returns the route of an open selection
func (s Selection) RouteID() models.RouteID { return s.routeID }

// StepID returns the selected step, or "" when closed
func (s Selection) StepID() string { return s.stepID }

// Select opens the overlay on stepID. Unknown steps leave the selection unchanged.
func (s Selection) Select(route models.Route, stepID string) Selection {
	if route.StepIndex(stepID) < 0 {
		return s
	}
	return Selection{open: true, routeID: route.ID, stepID: stepID}
}

// Advance moves an open selection to the step named by its nextStepId. It is a
// no-op when closed, on the last step or when nextStepId does not resolve.
func (s Selection) Advance(route models.Route) Selection {
	next, ok := s.next(route)
	if !ok {
		return s
	}
	return Selection{open: true, routeID: route.ID, stepID: next.ID}
}

// CanAdvance reports whether Advance would change the selection
func (s Selection) CanAdvance(route models.Route) bool {
	_, ok := s.next(route)
	return ok
}

func (s Selection) next(route models.Route) (models.Step, bool) {
	step, ok := s.Step(route)
	if !ok {
		return models.Step{}, false
	}
	return route.Next(step)
}

// Close hides the overlay. Closing a closed selection is a no-op.
func (s Selection) Close() Selection {
	return Closed()
}

// Step resolves the selected step within route
func (s Selection) Step(route models.Route) (models.Step, bool) {
	if !s.open || s.routeID != route.ID {
		return models.Step{}, false
	}
	return route.Step(s.stepID)
}

// Fragment is the location fragment for the selection, without '#'
func (s Selection) Fragment() string {
	if !s.open {
		return ""
	}
	return StepFragment(s.stepID)
}

// Location is the page address for the selection: /route/<id> when closed,
// /route/<id>#step-<step> when open.
func (s Selection) Location(route models.Route) string {
	if _, ok := s.Step(route); !ok {
		return RoutePath(route.ID)
	}
	return StepPath(route.ID, s.stepID)
}

// Restore opens the selection named by a location fragment ("#step-<id>" or
// "step-<id>"). Anything that does not name a step of route yields Closed.
func Restore(route models.Route, fragment string) Selection {
	stepID, ok := ParseStepFragment(fragment)
	if !ok {
		return Closed()
	}
	return Closed().Select(route, stepID)
}

// ParseStepFragment extracts the step id from "#step-<id>"
func ParseStepFragment(fragment string) (string, bool) {
	fragment = strings.TrimPrefix(fragment, "#")
	escaped, ok := strings.CutPrefix(fragment, stepFragmentPrefix)
	if !ok {
		return "", false
	}
	stepID, err := url.PathUnescape(escaped)
	if err != nil || stepID == "" {
		return "", false
	}
	return stepID, true
}
