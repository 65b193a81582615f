package metrics

import (
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds every collector exported by this process.
	Registry = prometheus.NewRegistry()

	importsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "resume",
			Name:      "imports_total",
			Help:      "Imported files by detected format and outcome.",
		},
		[]string{"format", "status"},
	)
	importDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "resume",
			Name:      "import_duration_seconds",
			Help:      "Time spent importing one file, by detected format.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"format"},
	)
	ocrEnginesActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "resume",
			Name:      "ocr_engines_active",
			Help:      "OCR engines currently acquired.",
		},
	)
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "resume",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status.",
		},
		[]string{"method", "route", "status"},
	)
)

func init() {
	Registry.MustRegister(importsTotal, importDuration, ocrEnginesActive, httpRequestsTotal)
}

// ObserveImport records one finished file import.
func ObserveImport(format, status string, d time.Duration) {
	importsTotal.WithLabelValues(format, status).Inc()
	importDuration.WithLabelValues(format).Observe(d.Seconds())
}

// OCREngineAcquired increments the active engine gauge.
func OCREngineAcquired() {
	ocrEnginesActive.Inc()
}

// OCREngineReleased decrements the active engine gauge.
func OCREngineReleased() {
	ocrEnginesActive.Dec()
}

// ObserveHTTPRequest counts a served request.
func ObserveHTTPRequest(method, route string, status int) {
	if route == "" {
		route = "unmatched"
	}
	httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

// RegisterDB exports pool statistics for db. Only the first pool of the
// process is tracked; later calls are no-ops.
func RegisterDB(db *sql.DB) error {
	err := Registry.Register(collectors.NewDBStatsCollector(db, "resume"))
	var already prometheus.AlreadyRegisteredError
	if errors.As(err, &already) {
		return nil
	}
	return err
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
