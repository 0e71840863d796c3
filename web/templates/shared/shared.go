package shared

import "groeipaden_app/internal/locale"

// Breadcrumb represents a navigation trail
type Breadcrumb struct {
	Title string
	URL   string
}

// Layout is the data every page passes to the base layout
type Layout struct {
	Title       string
	ActiveNav   string
	Breadcrumbs []Breadcrumb
	UserEmail   string

	Loc            *locale.Localizer
	HREmail        string
	LangSwitchHref string
	ShowLogout     bool
}
