package pages

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"groeipaden_app/internal/locale"
	"groeipaden_app/internal/models"
	"groeipaden_app/internal/viewer"
	"groeipaden_app/web/templates/shared"
)

func testRoute() models.Route {
	return models.Route{
		ID:      models.RouteIDElectrical,
		Name:    "Elektrotechniek",
		Summary: "Van leerling tot teamleider",
		Meta:    models.RouteMeta{Icon: models.IconBolt, Color: "#F59E0B"},
		Steps: []models.Step{
			{
				ID:           "e-leerling",
				Title:        "Leerling monteur",
				Description:  "Je leert het vak **in de praktijk**.",
				Requirements: []string{"VCA Basis"},
				RecommendedTraining: []models.Training{
					{Label: "VCA Basis", Provider: "SOG", Link: "https://example.nl/vca"},
				},
				NextStepID: "e-monteur",
			},
			{ID: "e-monteur", Title: "Monteur", Notes: "Rijbewijs B gewenst"},
		},
	}
}

func testLayout(t *testing.T) shared.Layout {
	t.Helper()
	bundle, err := locale.NewBundle("nl")
	require.NoError(t, err)
	return shared.Layout{Title: "Test", Loc: bundle.Localizer(), HREmail: "hr@lokinstallaties.nl"}
}

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func TestNewMarkers(t *testing.T) {
	route := testRoute()
	markers := NewMarkers(route, viewer.Closed().Select(route, "e-monteur"))

	require.Len(t, markers, 2)
	assert.Equal(t, 1, markers[0].Position)
	assert.Equal(t, "step-e-leerling", markers[0].Fragment)
	assert.Equal(t, "/route/e?step=e-leerling#step-e-leerling", markers[0].Href)
	assert.False(t, markers[0].Selected)
	assert.True(t, markers[1].Selected)
}

func TestRouteDetailWithoutDialog(t *testing.T) {
	route := testRoute()
	layout := testLayout(t)

	html := renderString(t, RouteDetail(RouteDetailProps{
		Layout:    layout,
		Route:     route,
		Markers:   NewMarkers(route, viewer.Closed()),
		StepCount: layout.Loc.Count("route_step_count", len(route.Steps)),
		RoutePath: "/route/e",
	}))

	assert.Contains(t, html, `<html lang="nl">`)
	assert.Contains(t, html, "2 stappen")
	assert.Less(t, strings.Index(html, `id="step-e-leerling"`), strings.Index(html, `id="step-e-monteur"`))
	assert.NotContains(t, html, "data-dialog-root")
	assert.Contains(t, html, `mailto:hr@lokinstallaties.nl`)
}

func TestStepDialog(t *testing.T) {
	route := testRoute()
	layout := testLayout(t)
	links := viewer.Links{BaseURL: "https://groei.example.nl", HREmail: "hr@lokinstallaties.nl"}

	first, ok := viewer.NewOverlay(route, viewer.Closed().Select(route, "e-leerling"), links)
	require.True(t, ok)
	html := renderString(t, StepDialog(DialogProps{Loc: layout.Loc, Overlay: first}))

	assert.Contains(t, html, `role="dialog"`)
	assert.Contains(t, html, "Stap 1 van 2")
	assert.Contains(t, html, "<strong>in de praktijk</strong>")
	assert.Contains(t, html, `target="_blank" rel="noopener noreferrer"`)
	assert.Contains(t, html, `data-copy-link="https://groei.example.nl/route/e#step-e-leerling"`)
	assert.Contains(t, html, `href="mailto:hr@lokinstallaties.nl?subject=Groeipad%20Elektrotechniek`)
	assert.Contains(t, html, `data-next`)
	assert.Contains(t, html, `data-step-link="e-monteur"`)

	last, ok := viewer.NewOverlay(route, viewer.Closed().Select(route, "e-monteur"), links)
	require.True(t, ok)
	html = renderString(t, StepDialog(DialogProps{Loc: layout.Loc, Overlay: last}))

	assert.Contains(t, html, "Rijbewijs B gewenst")
	assert.NotContains(t, html, "data-next", "no advance control on the last step")
}

func TestRoutesListEmpty(t *testing.T) {
	html := renderString(t, RoutesList(RoutesListProps{Layout: testLayout(t)}))
	assert.Contains(t, html, "Er zijn op dit moment geen groeipaden beschikbaar.")
}

func TestErrorPageSuggestion(t *testing.T) {
	route := testRoute()
	html := renderString(t, ErrorPage(ErrorPageProps{
		Layout:       testLayout(t),
		ErrorTitle:   "Pagina niet gevonden",
		ErrorMessage: "De pagina die je zoekt bestaat niet.",
		Suggestion:   &SuggestionLink{Route: route, Href: "/route/e"},
	}))

	assert.Contains(t, html, "Pagina niet gevonden")
	assert.Contains(t, html, `data-suggestion="e"`)
	assert.Contains(t, html, "Bedoelde je Elektrotechniek?")
}
