package viewer

import "groeipaden_app/internal/models"

// Links carries the site settings needed to build outbound links
type Links struct {
	BaseURL string
	HREmail string
}

// Overlay is everything the step dialog shows for an open selection
type Overlay struct {
	Route    models.Route
	Step     models.Step
	Position int // 1-based
	Total    int

	Next     *models.Step
	NextHref string

	// Fragment addresses the open step, without '#'
	Fragment    string
	CloseHref   string
	ShareLink   string
	ContactHref string
}

// HasNext reports whether the advance control is shown
func (o Overlay) HasNext() bool {
	return o.Next != nil
}

// NewOverlay resolves the dialog content for sel. It returns false when the
// selection is closed or does not belong to route.
func NewOverlay(route models.Route, sel Selection, links Links) (Overlay, bool) {
	step, ok := sel.Step(route)
	if !ok {
		return Overlay{}, false
	}

	share := ShareLink(links.BaseURL, route.ID, step.ID)
	o := Overlay{
		Route:       route,
		Step:        step,
		Position:    route.StepIndex(step.ID) + 1,
		Total:       len(route.Steps),
		Fragment:    sel.Fragment(),
		CloseHref:   sel.Close().Location(route),
		ShareLink:   share,
		ContactHref: ContactMail(links.HREmail, route, step, share),
	}

	if sel.CanAdvance(route) {
		nextSel := sel.Advance(route)
		next, _ := nextSel.Step(route)
		o.Next = &next
		o.NextHref = StepPagePath(route.ID, next.ID)
	}
	return o, true
}
