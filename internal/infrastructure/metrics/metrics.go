package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Thumbnail-API Metrics
var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "xeonz",
			Subsystem: "thumbnail_api",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// Request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "xeonz",
			Subsystem: "thumbnail_api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"method", "endpoint"},
	)

	// Generation counters
	GenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "xeonz",
			Subsystem: "thumbnail_api",
			Name:      "generations_total",
			Help:      "Total thumbnail generation requests",
		},
		[]string{"model", "style", "status"},
	)

	// Generation duration histogram
	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "xeonz",
			Subsystem: "thumbnail_api",
			Name:      "generation_duration_seconds",
			Help:      "Thumbnail batch composition duration in seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 5},
		},
		[]string{"model"},
	)

	// Composed image counter
	ImagesComposedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "xeonz",
			Subsystem: "thumbnail_api",
			Name:      "images_composed_total",
			Help:      "Total image URLs composed",
		},
		[]string{"model"},
	)

	// Daily usage increments
	UsageIncrementsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "xeonz",
			Subsystem: "thumbnail_api",
			Name:      "usage_increments_total",
			Help:      "Total per-IP daily usage counter increments",
		},
	)
)

// RecordRequest records an HTTP request
func RecordRequest(method, endpoint, status string, durationSec float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint).Observe(durationSec)
}

// RecordGeneration records a thumbnail generation
func RecordGeneration(model, style, status string, images int, durationSec float64) {
	GenerationsTotal.WithLabelValues(model, style, status).Inc()
	if status == "success" {
		GenerationDuration.WithLabelValues(model).Observe(durationSec)
		ImagesComposedTotal.WithLabelValues(model).Add(float64(images))
	}
}

// RecordUsageIncrement records a daily usage counter bump
func RecordUsageIncrement() {
	UsageIncrementsTotal.Inc()
}
