package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry for the service.
	Registry = prometheus.NewRegistry()
	// HTTPRequests counts requests by method, path, and status.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)
	// HTTPDuration records request durations in seconds.
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path", "status"},
	)
	// Optimizations counts recommendations by container type code ("LCL", "20GP", ...).
	Optimizations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "optimizations_total", Help: "Container recommendations by container type."},
		[]string{"container_type"},
	)
	// NearWeightLimit counts recommendations that carried a near weight limit warning.
	NearWeightLimit = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "optimizations_near_weight_limit_total", Help: "Recommendations close to the per-unit weight limit."},
	)
)

var regOnce sync.Once

// Register adds the service collectors to Registry. Safe to call more than once.
func Register() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(Optimizations)
		Registry.MustRegister(NearWeightLimit)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

// ObserveOptimization records the outcome of a single recommendation.
func ObserveOptimization(containerType string, nearWeightLimit bool) {
	Optimizations.WithLabelValues(containerType).Inc()
	if nearWeightLimit {
		NearWeightLimit.Inc()
	}
}
