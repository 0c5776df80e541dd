package http

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/project-blog/internal/adapters/http/handlers"
	"github.com/jsamuelsen/project-blog/internal/adapters/http/middleware"
	"github.com/jsamuelsen/project-blog/internal/adapters/http/views"
	"github.com/jsamuelsen/project-blog/internal/platform/config"
	"github.com/jsamuelsen/project-blog/internal/platform/telemetry"
)

// RouterConfig contains everything SetupRouter wires together.
type RouterConfig struct {
	Logger *slog.Logger

	// ServiceName names the server spans.
	ServiceName string

	// RequestTimeout bounds JSON API requests. Zero disables it.
	RequestTimeout time.Duration

	CORS config.CORSConfig

	Blog     *handlers.BlogHandler
	Projects *handlers.ProjectsHandler

	// Health is optional; without it the /-/ endpoints are not served.
	Health *handlers.HealthHandler
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Context logger - base logger on the request context
//  2. Recovery - catch panics
//  3. Request ID and correlation ID
//  4. OpenTelemetry - tracing, metrics and X-Trace-ID
//  5. Logging - skips probes and static assets
//
// Route groups:
//   - / and /project/:id: HTML pages
//   - /static/: embedded assets
//   - /api/v1/: read-only JSON API with CORS and a request timeout
//   - /-/: probes, build info and Prometheus metrics
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.ContextLogger(cfg.Logger),
		middleware.Recovery(cfg.Logger, panicResponse(cfg.Blog)),
		middleware.RequestID(),
		middleware.CorrelationID(),
	)
	engine.Use(telemetry.Middleware(cfg.ServiceName)...)
	engine.Use(middleware.Logging(cfg.Logger))

	if cfg.Health != nil {
		cfg.Health.RegisterHealthRoutes(engine.Group("/-"))
	}

	engine.StaticFS("/static", http.FS(views.Static()))

	cfg.Blog.RegisterBlogRoutes(engine)

	apiV1 := engine.Group("/api/v1")
	apiV1.Use(
		cors.New(corsConfig(cfg.CORS)),
		middleware.Timeout(cfg.RequestTimeout),
	)
	cfg.Projects.RegisterProjectRoutes(apiV1)

	// Preflight requests are answered by the CORS middleware; the route
	// only exists so they reach it.
	apiV1.OPTIONS("/*path", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	engine.NoRoute(noRoute(cfg.Blog))
}

func corsConfig(cfg config.CORSConfig) cors.Config {
	c := cors.DefaultConfig()
	c.AllowMethods = []string{http.MethodGet, http.MethodHead, http.MethodOptions}
	c.ExposeHeaders = []string{middleware.HeaderRequestID, middleware.HeaderCorrelationID, telemetry.TraceIDHeader}
	c.MaxAge = cfg.MaxAge

	if len(cfg.AllowedOrigins) == 0 || slices.Contains(cfg.AllowedOrigins, "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.AllowedOrigins
	}

	return c
}
