package models

// RouteID identifies one of the fixed career paths
type RouteID string

const (
	RouteIDElectrical RouteID = "e"
	RouteIDMechanical RouteID = "w"
	RouteIDService    RouteID = "service"
	RouteIDOffice     RouteID = "office"
)

// KnownRouteIDs lists every route identifier the site can serve, in display order
var KnownRouteIDs = []RouteID{
	RouteIDElectrical,
	RouteIDMechanical,
	RouteIDService,
	RouteIDOffice,
}

// ParseRouteID returns the RouteID for s if it is one of the known identifiers
func ParseRouteID(s string) (RouteID, bool) {
	for _, id := range KnownRouteIDs {
		if string(id) == s {
			return id, true
		}
	}
	return "", false
}

// Training is a recommended course for a step
type Training struct {
	Label    string `json:"label" yaml:"label"`
	Provider string `json:"provider" yaml:"provider"`
	Link     string `json:"link" yaml:"link"`
}

// Step is one position on a career path
type Step struct {
	ID                  string     `json:"id" yaml:"id"`
	Title               string     `json:"title" yaml:"title"`
	Level               string     `json:"level" yaml:"level"`
	Description         string     `json:"description" yaml:"description"`
	Requirements        []string   `json:"requirements" yaml:"requirements"`
	RecommendedTraining []Training `json:"recommendedTraining" yaml:"recommendedTraining"`
	Notes               string     `json:"notes,omitempty" yaml:"notes,omitempty"`

	// NextStepID is empty for the last step of a route
	NextStepID string `json:"nextStepId" yaml:"nextStepId"`

	// AltNext holds alternative follow-up steps. Navigation never consults it.
	AltNext []string `json:"altNext,omitempty" yaml:"altNext,omitempty"`
}

// IsTerminal reports whether the step has no follow-up
func (s Step) IsTerminal() bool {
	return s.NextStepID == ""
}

// RouteMeta holds display metadata for a route
type RouteMeta struct {
	Icon  Icon   `json:"icon" yaml:"icon"`
	Color string `json:"color" yaml:"color"`
}

// Route is an ordered career path
type Route struct {
	ID      RouteID   `json:"id" yaml:"id"`
	Name    string    `json:"name" yaml:"name"`
	Summary string    `json:"summary" yaml:"summary"`
	Steps   []Step    `json:"steps" yaml:"steps"`
	Meta    RouteMeta `json:"meta" yaml:"meta"`
}

// StepIndex returns the 0-based position of the step with the given id, or -1
func (r Route) StepIndex(stepID string) int {
	for i, s := range r.Steps {
		if s.ID == stepID {
			return i
		}
	}
	return -1
}

// Step looks up a step by id
func (r Route) Step(stepID string) (Step, bool) {
	if i := r.StepIndex(stepID); i >= 0 {
		return r.Steps[i], true
	}
	return Step{}, false
}

// Next resolves the step that follows s. It returns false when s is the last
// step or when its NextStepID does not match any step of the route.
func (r Route) Next(s Step) (Step, bool) {
	if s.IsTerminal() {
		return Step{}, false
	}
	return r.Step(s.NextStepID)
}

// RoutesData is the document shape of a dataset file
type RoutesData struct {
	Routes []Route `json:"routes" yaml:"routes"`
}
