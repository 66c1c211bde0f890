package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/uplift-labs/cheer-gateway/internal/adapters/http/dto"
	"github.com/uplift-labs/cheer-gateway/internal/adapters/http/handlers"
	"github.com/uplift-labs/cheer-gateway/internal/adapters/http/middleware"
	"github.com/uplift-labs/cheer-gateway/internal/platform/config"
	"github.com/uplift-labs/cheer-gateway/internal/platform/telemetry"
)

// DefaultRequestTimeout caps one inbound request. It must exceed the sum of
// the slowest provider chain (two quote providers back to back) so the
// fallback logic, not this deadline, decides the outcome.
const DefaultRequestTimeout = 15 * time.Second

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the structured logger for request logging.
	Logger *slog.Logger

	// AppConfig contains application configuration.
	AppConfig *config.AppConfig

	// CheerHandler serves the public content endpoints.
	CheerHandler *handlers.CheerHandler

	// HealthHandler serves the public health contract and the /-/ probes.
	HealthHandler *handlers.HealthHandler

	// Timeout is the per-request deadline.
	Timeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first, map them to the generic upstream error
//  2. CORS - response contract headers, answers OPTIONS directly
//  3. Context logger - seed the request context with the configured logger
//  4. Request ID - generate/extract request ID
//  5. Correlation ID - handle distributed tracing correlation
//  6. OpenTelemetry - otelgin tracing, then request metrics
//  7. Logging - request logging (skips /-/ endpoints)
//  8. Timeout - request deadline on the content routes
//
// Route groups:
//   - / and /health: public health contract
//   - /quote, /quote/list, /verse, /song, /joke: content endpoints
//   - /-/ (internal): probes, build info, Prometheus metrics
//
// Paths are matched with trailing slashes stripped (no 301 redirect).
// Unknown paths answer 404 {"error": "Not found"}; known paths with a
// non-GET method answer 405 {"error": "Method not allowed"}.
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(),
		middleware.CORS(),
		middleware.ContextLogger(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.TracingMiddleware(cfg.AppConfig.Name),
		telemetry.Middleware(cfg.AppConfig.Name),
		middleware.Logging(),
	)

	engine.HandleMethodNotAllowed = true

	// Trailing slashes are stripped, not redirected: /quote/ and /quote///
	// serve the same content and headers as /quote. Routing happens before
	// middleware, so the trim re-dispatches from NoRoute instead.
	engine.RedirectTrailingSlash = false

	engine.NoRoute(func(c *gin.Context) {
		if trimmed := strings.TrimRight(c.Request.URL.Path, "/"); trimmed != c.Request.URL.Path {
			if trimmed == "" {
				trimmed = "/"
			}

			c.Request.URL.Path = trimmed
			engine.HandleContext(c)

			return
		}

		c.JSON(http.StatusNotFound, dto.NewErrorResponse(dto.MsgNotFound))
	})

	engine.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, dto.NewErrorResponse(dto.MsgMethodNotAllowed))
	})

	// Ops endpoints carry no timeout so slow provider checks still report.
	if cfg.HealthHandler != nil {
		ops := engine.Group("/-")
		cfg.HealthHandler.RegisterOpsRoutes(ops)

		engine.GET("/", cfg.HealthHandler.Ok)
		engine.GET("/health", cfg.HealthHandler.Ok)
	}

	content := engine.Group("")
	if cfg.Timeout > 0 {
		content.Use(middleware.SimpleTimeout(cfg.Timeout))
	}

	if cfg.CheerHandler != nil {
		cfg.CheerHandler.RegisterCheerRoutes(content)
	}
}

// NewDefaultRouterConfig creates a RouterConfig with sensible defaults.
func NewDefaultRouterConfig(
	logger *slog.Logger,
	appCfg *config.AppConfig,
	cheerHandler *handlers.CheerHandler,
	healthHandler *handlers.HealthHandler,
) RouterConfig {
	return RouterConfig{
		Logger:        logger,
		AppConfig:     appCfg,
		CheerHandler:  cheerHandler,
		HealthHandler: healthHandler,
		Timeout:       DefaultRequestTimeout,
	}
}
