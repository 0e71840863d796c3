package main

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"groeipaden_app/internal/handlers"
	"groeipaden_app/internal/locale"
	siteMiddleware "groeipaden_app/internal/middleware"
	"groeipaden_app/internal/services"
	"groeipaden_app/web/static"
	"groeipaden_app/web/templates"
)

// serverDeps is everything newServer wires together
type serverDeps struct {
	Site   handlers.Site
	Bundle *locale.Bundle
	Logger *zap.Logger

	HREmail string

	// Auth is nil when the site is open to everyone
	Auth *authDeps
}

type authDeps struct {
	Verifier     services.SessionVerifier
	Web          handlers.FirebaseWebConfig
	SecureCookie bool
}

func newServer(deps serverDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middleware
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(siteMiddleware.SiteContext(siteMiddleware.Site{
		HREmail:     deps.HREmail,
		AuthEnabled: deps.Auth != nil,
	}, deps.Bundle))

	e.Renderer = templates.EchoRenderer{}
	e.HTTPErrorHandler = siteMiddleware.CustomErrorHandler(deps.Site.Catalog, deps.Logger)

	// Static file serving
	e.StaticFS("/static", static.Files)

	routeHandler := handlers.NewRouteHandler(deps.Site)
	e.GET("/healthz", routeHandler.Health)

	pagesGroup := e.Group("")
	if deps.Auth != nil {
		authHandler := handlers.NewAuthHandler(deps.Auth.Verifier, deps.Auth.Web, deps.Auth.SecureCookie)
		e.GET("/login", authHandler.LoginPage)
		e.POST("/auth/login", authHandler.HandleLogin)
		e.POST("/auth/logout", authHandler.HandleLogout)

		pagesGroup.Use(siteMiddleware.RequireAuth(deps.Auth.Verifier))
	}

	pagesGroup.GET("/", routeHandler.ListRoutes)
	pagesGroup.GET("/route/:routeId", routeHandler.ShowRoute)
	pagesGroup.GET("/route/:routeId/steps/:stepId", routeHandler.ShowStep)
	pagesGroup.GET("/route/:routeId/dialog", routeHandler.ShowDialog)
	pagesGroup.GET("/route", func(c echo.Context) error {
		return c.Redirect(http.StatusMovedPermanently, "/")
	})

	return e
}
