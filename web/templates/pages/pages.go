// Package pages binds typed props to the embedded page templates.
package pages

import (
	"github.com/a-h/templ"

	"groeipaden_app/internal/locale"
	"groeipaden_app/internal/models"
	"groeipaden_app/internal/viewer"
	"groeipaden_app/web/templates"
	"groeipaden_app/web/templates/shared"
)

// RouteCard is one entry of the overview
type RouteCard struct {
	Route     models.Route
	Href      string
	StepCount string
}

// RoutesListProps is the data of the overview page
type RoutesListProps struct {
	shared.Layout
	Routes []RouteCard
}

// RoutesList renders the overview of all routes
func RoutesList(props RoutesListProps) templ.Component {
	return templates.Page("index.html", props)
}

// Marker is one step on the timeline
type Marker struct {
	Step     models.Step
	Position int // 1-based
	Href     string
	Fragment string
	Selected bool
}

// NewMarkers lists the steps of route in order, flagging the selected one
func NewMarkers(route models.Route, sel viewer.Selection) []Marker {
	markers := make([]Marker, 0, len(route.Steps))
	for i, step := range route.Steps {
		markers = append(markers, Marker{
			Step:     step,
			Position: i + 1,
			Href:     viewer.StepPagePath(route.ID, step.ID),
			Fragment: viewer.StepFragment(step.ID),
			Selected: sel.IsOpen() && sel.StepID() == step.ID,
		})
	}
	return markers
}

// RouteDetailProps is the data of a route page
type RouteDetailProps struct {
	shared.Layout
	Route        models.Route
	Markers      []Marker
	StepCount    string
	Consultation string
	RoutePath    string
	DialogPath   string

	// Dialog is set when the page is rendered with the overlay open
	Dialog *DialogProps
}

// RouteDetail renders the timeline of one route
func RouteDetail(props RouteDetailProps) templ.Component {
	return templates.Page("route.html", props)
}

// DialogProps is the data of the step overlay
type DialogProps struct {
	Loc          *locale.Localizer
	Overlay      viewer.Overlay
	Consultation string
}

// StepDialog renders the overlay on its own, for the timeline script
func StepDialog(props DialogProps) templ.Component {
	return templates.Partial("step_dialog", props)
}

// SuggestionLink points at the route an unknown address probably meant
type SuggestionLink struct {
	Route models.Route
	Href  string
}

// ErrorPageProps is the data of the error page
type ErrorPageProps struct {
	shared.Layout
	ErrorTitle   string
	ErrorMessage string
	Suggestion   *SuggestionLink
	BackLink     string
	BackText     string
}

// ErrorPage renders an error inside the site layout
func ErrorPage(props ErrorPageProps) templ.Component {
	return templates.Page("error.html", props)
}

// LoginPageProps is the data of the login page
type LoginPageProps struct {
	shared.Layout
	Configured         bool
	FirebaseAPIKey     string
	FirebaseAuthDomain string
	FirebaseProjectID  string
	Next               string
}

// LoginPage renders the sign-in page shown when access is restricted
func LoginPage(props LoginPageProps) templ.Component {
	return templates.Page("login.html", props)
}
