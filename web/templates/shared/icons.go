package shared

import (
	"html/template"
	"regexp"

	"groeipaden_app/internal/models"
)

const fallbackColor = "#6B7280"

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

var iconPaths = map[models.Icon]string{
	models.IconBolt:    `<path fill-rule="evenodd" clip-rule="evenodd" d="M11.3 1.046A1 1 0 0112 2v5h4a1 1 0 01.82 1.573l-7 10A1 1 0 018 18v-5H4a1 1 0 01-.82-1.573l7-10a1 1 0 011.12-.38z"/>`,
	models.IconWrench:  `<path fill-rule="evenodd" clip-rule="evenodd" d="M19 5.5a4.5 4.5 0 01-4.791 4.49c-.873-.055-1.808.128-2.368.8l-6.024 7.23a2.724 2.724 0 11-3.837-3.837L9.21 8.16c.672-.56.855-1.495.8-2.368a4.5 4.5 0 015.873-4.575c.324.105.39.51.15.752L13.34 4.66a.455.455 0 00-.11.494 3.01 3.01 0 001.617 1.617c.17.07.363.02.493-.111l2.692-2.692c.241-.241.647-.174.752.15.14.435.216.9.216 1.382zM4 17a1 1 0 100-2 1 1 0 000 2z"/>`,
	models.IconTool:    `<path fill-rule="evenodd" clip-rule="evenodd" d="M11.49 3.17c-.38-1.56-2.6-1.56-2.98 0a1.532 1.532 0 01-2.286.948c-1.372-.836-2.942.734-2.106 2.106.54.886.061 2.042-.947 2.287-1.561.379-1.561 2.6 0 2.978a1.532 1.532 0 01.947 2.287c-.836 1.372.734 2.942 2.106 2.106a1.532 1.532 0 012.287.947c.379 1.561 2.6 1.561 2.978 0a1.533 1.533 0 012.287-.947c1.372.836 2.942-.734 2.106-2.106a1.533 1.533 0 01.947-2.287c1.561-.379 1.561-2.6 0-2.978a1.532 1.532 0 01-.947-2.287c.836-1.372-.734-2.942-2.106-2.106a1.532 1.532 0 01-2.287-.947zM10 13a3 3 0 100-6 3 3 0 000 6z"/>`,
	models.IconMonitor: `<path fill-rule="evenodd" clip-rule="evenodd" d="M3 4a1 1 0 011-1h12a1 1 0 011 1v8a1 1 0 01-1 1H4a1 1 0 01-1-1V4zm2 1v6h10V5H5z"/><path d="M7 15h6v2H7z"/>`,
}

// IconSVG renders a route icon. IconNone renders nothing.
func IconSVG(icon models.Icon, class, color string) template.HTML {
	paths, ok := iconPaths[icon]
	if !ok {
		return ""
	}
	return template.HTML(`<svg class="` + template.HTMLEscapeString(class) +
		`" style="color: ` + string(Color(color)) +
		`" viewBox="0 0 20 20" fill="currentColor" aria-hidden="true">` + paths + `</svg>`)
}

// Color returns c when it is a #RRGGBB color and a neutral grey otherwise
func Color(c string) template.CSS {
	if !hexColor.MatchString(c) {
		return fallbackColor
	}
	return template.CSS(c)
}

// Tint is Color at 12% opacity, for icon backgrounds
func Tint(c string) template.CSS {
	return Color(c) + "20"
}
