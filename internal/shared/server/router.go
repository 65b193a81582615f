package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-importer/internal/shared/config"
	"resume-importer/internal/shared/metrics"
	"resume-importer/internal/shared/server/middleware"
	"resume-importer/internal/shared/server/respond"
)

// RouteRegistrar is implemented by feature handlers.
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// RouterDeps carries the handlers mounted behind identity and rate limiting.
type RouterDeps struct {
	Config   config.Config
	Handlers []RouteRegistrar
	Limiter  *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	authed := api.Group("",
		middleware.Identity(),
		middleware.RateLimit(rateLimitConfig(deps.Config, deps.Limiter)),
	)
	for _, h := range deps.Handlers {
		if h != nil {
			h.RegisterRoutes(authed)
		}
	}

	return r
}

const (
	rateGroupImport = "IMPORT"
	rateGroupRead   = "DEFAULT"
)

// rateLimitConfig gives uploads the configured budget and every other
// authenticated route five times as much.
func rateLimitConfig(cfg config.Config, limiter *middleware.RateLimiter) middleware.RateLimitConfig {
	rps := cfg.RateLimitRPS
	burst := cfg.RateLimitBurst
	return middleware.RateLimitConfig{
		DefaultGroup: rateGroupRead,
		Limiter:      limiter,
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodPost && c.FullPath() == "/api/v1/imports" {
				return rateGroupImport
			}
			return rateGroupRead
		},
		Rules: map[string]middleware.RateLimitRule{
			rateGroupImport: {Rate: rps, Burst: burst},
			rateGroupRead:   {Rate: rps * 5, Burst: burst * 5},
		},
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
