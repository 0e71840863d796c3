package viewer

import (
	"net/url"
	"strings"

	"groeipaden_app/internal/models"
)

const stepFragmentPrefix = "step-"

// RoutePath is the detail page of a route
func RoutePath(id models.RouteID) string {
	return "/route/" + url.PathEscape(string(id))
}

// StepFragment is the fragment addressing a step, without '#'. The step id
// is path-escaped so any id yields a well-formed address.
func StepFragment(stepID string) string {
	return stepFragmentPrefix + url.PathEscape(stepID)
}

// StepPath addresses a step on its route page through the fragment
func StepPath(routeID models.RouteID, stepID string) string {
	return RoutePath(routeID) + "#" + StepFragment(stepID)
}

// StepPagePath opens a step with the overlay rendered by the server, for
// clients that do not run the timeline script.
func StepPagePath(routeID models.RouteID, stepID string) string {
	return RoutePath(routeID) + "?step=" + url.QueryEscape(stepID) + "#" + StepFragment(stepID)
}

// DialogPath resolves a location fragment to the overlay markup of a route
func DialogPath(routeID models.RouteID) string {
	return RoutePath(routeID) + "/dialog"
}

// ShareLink is the absolute address of a step
func ShareLink(baseURL string, routeID models.RouteID, stepID string) string {
	return strings.TrimRight(baseURL, "/") + StepPath(routeID, stepID)
}

// ContactMail builds the mailto: address that asks HR about a step
func ContactMail(recipient string, route models.Route, step models.Step, shareLink string) string {
	subject := "Groeipad " + route.Name + " – " + step.Title
	body := "Beste HR team,\n\n" +
		"Ik ben geïnteresseerd in het groeipad voor " + step.Title + " binnen " + route.Name + ".\n\n" +
		"Link naar de functie: " + shareLink + "\n\n" +
		"Met vriendelijke groet"

	return "mailto:" + recipient +
		"?subject=" + componentEscape(subject) +
		"&body=" + componentEscape(body)
}

// componentEscape percent-encodes s for a mailto header value, with spaces as %20
func componentEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
