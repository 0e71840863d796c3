package viewer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"groeipaden_app/internal/models"
)

// routeE is a three step chain A -> B -> C
func routeE() models.Route {
	return models.Route{
		ID:   models.RouteIDElectrical,
		Name: "Elektrotechniek",
		Meta: models.RouteMeta{Icon: models.IconBolt, Color: "#F59E0B"},
		Steps: []models.Step{
			{ID: "A", Title: "Leerling", NextStepID: "B"},
			{ID: "B", Title: "Monteur", NextStepID: "C"},
			{ID: "C", Title: "Eerste monteur"},
		},
	}
}

func TestSelectAdvanceClose(t *testing.T) {
	route := routeE()

	sel := Closed().Select(route, "A")
	require.True(t, sel.IsOpen())
	assert.Equal(t, "step-A", sel.Fragment())
	assert.Equal(t, "/route/e#step-A", sel.Location(route))

	sel = sel.Advance(route)
	assert.Equal(t, "B", sel.StepID())
	assert.Equal(t, "step-B", sel.Fragment())

	sel = sel.Advance(route)
	assert.Equal(t, "C", sel.StepID())
	assert.Equal(t, "step-C", sel.Fragment())
	assert.False(t, sel.CanAdvance(route), "C is the last step")
	assert.Equal(t, sel, sel.Advance(route), "advancing past the last step is a no-op")

	sel = sel.Close()
	assert.False(t, sel.IsOpen())
	assert.Equal(t, "", sel.Fragment())
	assert.Equal(t, "/route/e", sel.Location(route))
}

func TestCloseIsIdempotent(t *testing.T) {
	closed := Closed()
	assert.Equal(t, closed, closed.Close())
	assert.Equal(t, closed, closed.Close().Close())
	assert.Equal(t, closed, closed.Advance(routeE()))
}

func TestSelectSameStepTwice(t *testing.T) {
	route := routeE()
	once := Closed().Select(route, "B")
	twice := once.Select(route, "B")
	assert.Equal(t, once, twice)
}

func TestSelectUnknownStep(t *testing.T) {
	route := routeE()

	assert.Equal(t, Closed(), Closed().Select(route, "Z"))

	open := Closed().Select(route, "A")
	assert.Equal(t, open, open.Select(route, "Z"), "unknown step keeps the current selection")
}

func TestAdvanceUnresolvedNext(t *testing.T) {
	route := routeE()
	route.Steps[0].NextStepID = "missing"

	sel := Closed().Select(route, "A")
	assert.False(t, sel.CanAdvance(route))
	assert.Equal(t, sel, sel.Advance(route))
}

func TestSelectionBelongsToRoute(t *testing.T) {
	route := routeE()
	other := models.Route{ID: models.RouteIDMechanical, Steps: []models.Step{{ID: "A", Title: "Leerling"}}}

	sel := Closed().Select(route, "A")
	_, ok := sel.Step(other)
	assert.False(t, ok)
	assert.Equal(t, "/route/w", sel.Location(other))
}

func TestRestore(t *testing.T) {
	route := routeE()

	tests := []struct {
		fragment string
		want     string
		open     bool
	}{
		{"#step-C", "C", true},
		{"step-B", "B", true},
		{"#step-Z", "", false},
		{"#step-", "", false},
		{"#C", "", false},
		{"#step-%zz", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.fragment, func(t *testing.T) {
			sel := Restore(route, tt.fragment)
			assert.Equal(t, tt.open, sel.IsOpen())
			assert.Equal(t, tt.want, sel.StepID())
		})
	}
}

func TestDeepLinkRoundTrip(t *testing.T) {
	route := routeE()

	for _, step := range route.Steps {
		sel := Closed().Select(route, step.ID)
		loc := sel.Location(route)
		assert.Equal(t, "/route/e#step-"+step.ID, loc)

		_, fragment, found := strings.Cut(loc, "#")
		require.True(t, found)
		restored := Restore(route, fragment)
		assert.Equal(t, sel, restored)
		assert.Equal(t, "/route/e", restored.Close().Location(route))
	}
}

func TestDeepLinkRoundTripEscapedID(t *testing.T) {
	route := models.Route{
		ID:    models.RouteIDElectrical,
		Name:  "Elektrotechniek",
		Steps: []models.Step{{ID: "a b%zz", Title: "Vreemd"}, {ID: "x/y?z", Title: "Pad"}},
	}

	for _, step := range route.Steps {
		sel := Closed().Select(route, step.ID)
		_, fragment, found := strings.Cut(sel.Location(route), "#")
		require.True(t, found)
		assert.Equal(t, sel.Fragment(), fragment)
		assert.Equal(t, sel, Restore(route, "#"+fragment))
	}
}
