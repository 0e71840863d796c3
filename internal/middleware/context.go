package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"groeipaden_app/internal/locale"
	"groeipaden_app/web/templates/shared"
)

const (
	localizerKey = "localizer"
	siteKey      = "site"

	langCookie = "lang"
)

// Site carries the settings every page layout needs
type Site struct {
	HREmail     string
	AuthEnabled bool
}

// SiteContext stores the site settings and the request's localizer in the
// echo context. The language comes from ?lang=, then the lang cookie, then
// Accept-Language. An explicit ?lang= is remembered in the cookie.
func SiteContext(site Site, bundle *locale.Bundle) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			query := c.QueryParam("lang")
			cookieLang := ""
			if cookie, err := c.Cookie(langCookie); err == nil {
				cookieLang = cookie.Value
			}

			loc := bundle.Localizer(query, cookieLang, c.Request().Header.Get("Accept-Language"))
			if query != "" && query == loc.Lang {
				c.SetCookie(&http.Cookie{
					Name:     langCookie,
					Value:    loc.Lang,
					Path:     "/",
					MaxAge:   int((365 * 24 * time.Hour).Seconds()),
					SameSite: http.SameSiteLaxMode,
				})
			}

			c.Response().Header().Set("Content-Language", loc.Lang)
			c.Set(localizerKey, loc)
			c.Set(siteKey, site)
			return next(c)
		}
	}
}

var (
	fallbackOnce      sync.Once
	fallbackLocalizer *locale.Localizer
)

// Localizer returns the request's localizer, or a Dutch one when
// SiteContext did not run for this request.
func Localizer(c echo.Context) *locale.Localizer {
	if loc, ok := c.Get(localizerKey).(*locale.Localizer); ok && loc != nil {
		return loc
	}
	fallbackOnce.Do(func() {
		bundle, err := locale.NewBundle("nl")
		if err != nil {
			panic(err)
		}
		fallbackLocalizer = bundle.Localizer()
	})
	return fallbackLocalizer
}

// SiteFrom returns the site settings stored by SiteContext
func SiteFrom(c echo.Context) Site {
	site, _ := c.Get(siteKey).(Site)
	return site
}

// LayoutFor assembles the base layout data for a page
func LayoutFor(c echo.Context, title, activeNav string, breadcrumbs []shared.Breadcrumb) shared.Layout {
	site := SiteFrom(c)
	loc := Localizer(c)

	otherLang := "en"
	if loc.Lang == "en" {
		otherLang = "nl"
	}

	return shared.Layout{
		Title:          title,
		ActiveNav:      activeNav,
		Breadcrumbs:    breadcrumbs,
		UserEmail:      getString(c, userEmailKey),
		Loc:            loc,
		HREmail:        site.HREmail,
		LangSwitchHref: c.Request().URL.Path + "?lang=" + otherLang,
		ShowLogout:     site.AuthEnabled && getString(c, userUIDKey) != "",
	}
}

func getString(c echo.Context, key string) string {
	s, _ := c.Get(key).(string)
	return s
}
