package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"resume-importer/internal/shared/metrics"
	"resume-importer/internal/shared/telemetry"
)

// Context keys handlers may set to enrich the request log line.
const (
	ImportFilesKey = "importFiles"
	DraftIDKey     = "draftId"
)

// Logging emits a structured log per request and counts it in metrics.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.EqualFold(c.Request.Method, "OPTIONS") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()
		route := c.FullPath()

		metrics.ObserveHTTPRequest(c.Request.Method, route, status)

		fields := map[string]any{
			"request_id":  RequestIDFromContext(c),
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"route":       route,
			"status":      status,
			"duration_ms": float64(latency.Microseconds()) / 1000.0,
			"user_id":     UserIDFromContext(c),
			"client_ip":   c.ClientIP(),
			"user_agent":  c.Request.UserAgent(),
		}
		if v, ok := c.Get(ImportFilesKey); ok {
			fields["import_files"] = v
		}
		if v, ok := c.Get(DraftIDKey); ok {
			fields["draft_id"] = v
		}
		telemetry.Info("request.complete", fields)
	}
}
