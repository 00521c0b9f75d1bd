package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/bloodchain/portal/internal/api/docs"
	"github.com/bloodchain/portal/internal/api/handler"
	"github.com/bloodchain/portal/internal/api/middleware"
	"github.com/bloodchain/portal/internal/api/view"
	"github.com/bloodchain/portal/internal/core/domain"
	"github.com/bloodchain/portal/internal/core/ports"
	"github.com/bloodchain/portal/internal/core/service"
	"github.com/bloodchain/portal/internal/infrastructure/memory"
)

// Options are the router's dependencies.
type Options struct {
	Log         zerolog.Logger
	Sessions    ports.SessionStore
	Fixtures    ports.FixtureSource
	DefaultRole domain.Role
	Cookie      middleware.CookieConfig
	CSRF        bool
	// Checks are pinged by /health/ready, keyed by dependency name.
	Checks map[string]handler.Pinger
	// Registry receives the HTTP request metrics. A fresh one is created when nil.
	Registry *prometheus.Registry
	// Now overrides the clock used for request ids and expiry countdowns.
	Now func() time.Time
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(opts Options) (*echo.Echo, error) {
	log := opts.Log
	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("templates: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(log))
	e.Use(echomiddleware.Secure())
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "bloodchain",
		Registerer: reg,
		Skipper:    func(c echo.Context) bool { return c.Path() == "/metrics" },
	}))
	if opts.CSRF {
		e.Use(echomiddleware.CSRFWithConfig(echomiddleware.CSRFConfig{
			TokenLookup:    "form:_csrf",
			ContextKey:     handler.CSRFContextKey,
			CookieName:     "_csrf",
			CookiePath:     "/",
			CookieHTTPOnly: true,
			CookieSecure:   opts.Cookie.Secure,
			CookieSameSite: http.SameSiteLaxMode,
			Skipper:        skipCSRF,
		}))
	}

	// --- Dependencies ---
	workspaces := memory.NewWorkspaceStore(opts.Fixtures).WithTTL(opts.Cookie.TTL)
	sessions := service.NewSessionService(opts.Sessions, opts.DefaultRole, component(log, "session"))
	gate := service.NewGate(domain.DefaultRouteTable())

	pageLog := component(log, "pages")
	requests := service.NewRequestService(workspaces, pageLog)
	inventory := service.NewInventoryService(workspaces, pageLog)
	if opts.Now != nil {
		workspaces = workspaces.WithClock(opts.Now)
		requests = requests.WithClock(opts.Now)
		inventory = inventory.WithClock(opts.Now)
	}
	tracking := service.NewTrackingService(workspaces, pageLog)
	pages := handler.NewPages(
		service.NewDonorService(workspaces, pageLog),
		requests,
		inventory,
		tracking,
		service.NewUserService(workspaces, pageLog),
	)

	httpLog := component(log, "http")
	layout := handler.NewLayout(gate, service.NewFlashService(workspaces), httpLog)
	authHandler := handler.NewAuthHandler(sessions, workspaces, layout, httpLog)
	portalHandler := handler.NewPortalHandler(gate, authHandler, pages, layout, httpLog)
	apiHandler := handler.NewAPIHandler(gate, inventory, tracking)
	healthHandler := handler.NewHealthHandler(opts.Checks)

	withSession := []echo.MiddlewareFunc{
		middleware.SessionCookie(opts.Cookie),
		middleware.LoadSession(sessions, httpLog),
	}

	// --- Operational routes (no session) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: prometheus.Gatherers{reg, prometheus.DefaultGatherer},
	}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- JSON API ---
	v1 := e.Group("/api/v1", withSession...)
	v1.GET("/session", apiHandler.Session)
	v1.GET("/routes", apiHandler.Routes, middleware.RequireLogin())
	v1.GET("/donations/:id", apiHandler.Donation, middleware.RequireLogin())
	v1.GET("/inventory", apiHandler.Inventory, middleware.RequireLogin(),
		middleware.RBAC(domain.RoleHospital, domain.RoleAdmin))

	// --- Session actions ---
	e.POST("/logout", authHandler.Logout, withSession...)
	e.POST("/session/role", authHandler.SwitchRole, withSession...)

	// --- Portal pages, routed by the navigation gate ---
	for _, path := range []string{"/", "/*"} {
		e.GET(path, portalHandler.Dispatch, withSession...)
		e.POST(path, portalHandler.Dispatch, withSession...)
	}

	return e, nil
}

func component(log zerolog.Logger, name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

func skipCSRF(c echo.Context) bool {
	p := c.Request().URL.Path
	for _, prefix := range []string{"/api/", "/metrics", "/health", "/swagger/"} {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	return false
}

// requestLogger writes one zerolog event per request: warn on 4xx, error on 5xx.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			switch {
			case v.Status >= http.StatusInternalServerError:
				ev = log.Error().Err(v.Error)
			case v.Status >= http.StatusBadRequest:
				ev = log.Warn()
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
