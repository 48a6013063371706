package api

import (
	"fmt"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/fruito/storefront/internal/api/handler"
	"github.com/fruito/storefront/internal/api/middleware"
	"github.com/fruito/storefront/internal/core/ports"
	"github.com/fruito/storefront/internal/infrastructure/config"
	"github.com/fruito/storefront/internal/infrastructure/http/handlers"
)

// NewRouter builds the Echo instance with all storefront routes registered.
func NewRouter(cfg *config.Config, svc ports.StorefrontService, sessions handlers.Pinger, gateway ports.Gateway, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	renderer, err := handler.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("build renderer: %w", err)
	}
	e.Renderer = renderer
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("fruito"))
	e.Use(middleware.Session(cfg.CookieSecret, cfg.Session.TTL))

	// --- Handlers ---
	shopHandler := handler.NewShopHandler(svc)
	authHandler := handler.NewAuthHandler(svc)
	adminHandler := handler.NewAdminHandler(svc)

	// --- Public routes ---
	e.GET("/", shopHandler.Home)
	e.GET("/shop", shopHandler.Shop)
	e.GET("/login", authHandler.LoginPage)
	e.POST("/login", authHandler.Login)
	e.GET("/signup", authHandler.SignupPage)
	e.POST("/signup", authHandler.Signup)
	e.POST("/logout", authHandler.Logout)
	e.GET("/admin", adminHandler.Gate)
	e.GET("/admin/login", authHandler.AdminLoginPage)
	e.POST("/admin/login", authHandler.AdminLogin)

	// --- Gated routes (advisory only; the backend re-verifies credentials) ---
	gate := middleware.AdminGate(svc)
	e.GET("/admin/dashboard", adminHandler.Dashboard, gate)
	e.POST("/admin/products", adminHandler.CreateProduct, gate)

	// --- Health probes and metrics (no session required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(sessions, gateway)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, nil
}
