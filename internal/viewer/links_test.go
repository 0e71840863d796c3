package viewer

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"groeipaden_app/internal/models"
)

func TestPaths(t *testing.T) {
	assert.Equal(t, "/route/service", RoutePath(models.RouteIDService))
	assert.Equal(t, "/route/service#step-service-monteur", StepPath(models.RouteIDService, "service-monteur"))
	assert.Equal(t, "/route/e?step=e-monteur#step-e-monteur", StepPagePath(models.RouteIDElectrical, "e-monteur"))
	assert.Equal(t, "/route/w/dialog", DialogPath(models.RouteIDMechanical))
}

func TestStepFragmentEscapesIDs(t *testing.T) {
	assert.Equal(t, "step-e-monteur", StepFragment("e-monteur"))
	assert.Equal(t, "step-a%20b%25zz", StepFragment("a b%zz"))
	assert.Equal(t, "https://h/route/e#step-a%20b%25zz", ShareLink("https://h", models.RouteIDElectrical, "a b%zz"))

	u, err := url.Parse(ShareLink("https://h", models.RouteIDElectrical, "a b%zz"))
	require.NoError(t, err)
	assert.Equal(t, "step-a b%zz", u.Fragment)
}

func TestShareLink(t *testing.T) {
	tests := []struct {
		base string
		want string
	}{
		{"https://groei.example.nl", "https://groei.example.nl/route/e#step-B"},
		{"https://groei.example.nl/", "https://groei.example.nl/route/e#step-B"},
		{"", "/route/e#step-B"},
	}

	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			assert.Equal(t, tt.want, ShareLink(tt.base, models.RouteIDElectrical, "B"))
		})
	}
}

func TestContactMail(t *testing.T) {
	route := routeE()
	step := route.Steps[1]
	share := "https://groei.example.nl/route/e#step-B"

	mail := ContactMail("hr@lokinstallaties.nl", route, step, share)

	u, err := url.Parse(mail)
	require.NoError(t, err)
	assert.Equal(t, "mailto", u.Scheme)
	assert.Equal(t, "hr@lokinstallaties.nl", u.Opaque)
	assert.NotContains(t, u.RawQuery, "+", "spaces are encoded as %20")
	assert.Contains(t, u.RawQuery, "subject=Groeipad%20Elektrotechniek%20%E2%80%93%20Monteur&")

	q, err := url.ParseQuery(u.RawQuery)
	require.NoError(t, err)
	assert.Equal(t, "Groeipad Elektrotechniek – Monteur", q.Get("subject"))

	body := q.Get("body")
	assert.True(t, strings.HasPrefix(body, "Beste HR team,\n\n"))
	assert.Contains(t, body, "het groeipad voor Monteur binnen Elektrotechniek.")
	assert.Contains(t, body, "Link naar de functie: "+share+"\n")
}

func TestContactMailEscapesSpecialCharacters(t *testing.T) {
	route := models.Route{ID: models.RouteIDService, Name: "Service & Onderhoud"}
	step := models.Step{ID: "x", Title: "Monteur A+B?"}

	mail := ContactMail("hr@lokinstallaties.nl", route, step, "https://x.nl/route/service#step-x")

	u, err := url.Parse(mail)
	require.NoError(t, err)
	q, err := url.ParseQuery(u.RawQuery)
	require.NoError(t, err)
	assert.Equal(t, "Groeipad Service & Onderhoud – Monteur A+B?", q.Get("subject"))
	assert.Contains(t, q.Get("body"), "#step-x")
}
