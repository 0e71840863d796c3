package catalog

import (
	"fmt"
	"regexp"

	"groeipaden_app/internal/models"
)

var colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Issue describes a problem found in a dataset
type Issue struct {
	RouteID string
	StepID  string
	Message string
}

func (i Issue) Error() string {
	switch {
	case i.StepID != "":
		return fmt.Sprintf("route %q step %q: %s", i.RouteID, i.StepID, i.Message)
	case i.RouteID != "":
		return fmt.Sprintf("route %q: %s", i.RouteID, i.Message)
	default:
		return i.Message
	}
}

// Validate checks routes for unknown or duplicate identifiers, dangling step
// references and malformed display metadata.
func Validate(routes []models.Route) []Issue {
	var issues []Issue
	seenRoutes := make(map[models.RouteID]bool, len(routes))

	for _, r := range routes {
		rid := string(r.ID)
		if _, ok := models.ParseRouteID(rid); !ok {
			issues = append(issues, Issue{RouteID: rid, Message: "unknown route id, route dropped"})
			continue
		}
		if seenRoutes[r.ID] {
			issues = append(issues, Issue{RouteID: rid, Message: "duplicate route id, route dropped"})
			continue
		}
		seenRoutes[r.ID] = true

		if r.Name == "" {
			issues = append(issues, Issue{RouteID: rid, Message: "missing name"})
		}
		if !colorPattern.MatchString(r.Meta.Color) {
			issues = append(issues, Issue{RouteID: rid, Message: fmt.Sprintf("color %q is not #RRGGBB", r.Meta.Color)})
		}
		if len(r.Steps) == 0 {
			issues = append(issues, Issue{RouteID: rid, Message: "route has no steps"})
		}

		stepIDs := make(map[string]bool, len(r.Steps))
		for _, s := range r.Steps {
			if s.ID == "" {
				issues = append(issues, Issue{RouteID: rid, Message: fmt.Sprintf("step %q has no id", s.Title)})
				continue
			}
			if stepIDs[s.ID] {
				issues = append(issues, Issue{RouteID: rid, StepID: s.ID, Message: "duplicate step id"})
			}
			stepIDs[s.ID] = true
		}

		for _, s := range r.Steps {
			if s.ID == "" {
				continue
			}
			if s.Title == "" {
				issues = append(issues, Issue{RouteID: rid, StepID: s.ID, Message: "missing title"})
			}
			if !s.IsTerminal() {
				switch {
				case s.NextStepID == s.ID:
					issues = append(issues, Issue{RouteID: rid, StepID: s.ID, Message: "nextStepId points to itself"})
				case !stepIDs[s.NextStepID]:
					issues = append(issues, Issue{RouteID: rid, StepID: s.ID, Message: fmt.Sprintf("nextStepId %q not found in route", s.NextStepID)})
				}
			}
			for _, alt := range s.AltNext {
				if !stepIDs[alt] {
					issues = append(issues, Issue{RouteID: rid, StepID: s.ID, Message: fmt.Sprintf("altNext %q not found in route", alt)})
				}
			}
		}
	}
	return issues
}
