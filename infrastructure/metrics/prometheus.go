// ABOUTME: Prometheus metrics for dork query execution
// ABOUTME: Records per-scope query counts and latency and exposes them over /metrics

package metrics

import (
	"net/http"
	"time"

	"email-shield-api/core/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder implements interfaces.MetricsRecorder on a dedicated registry
type Recorder struct {
	registry      *prometheus.Registry
	queriesTotal  *prometheus.CounterVec
	queryDuration *prometheus.HistogramVec
}

// NewRecorder creates a recorder with its own registry, including Go runtime collectors
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		queriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "email_shield_dork_queries_total",
				Help: "Total number of dork queries executed",
			},
			[]string{"scope", "status"},
		),
		queryDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "email_shield_dork_query_duration_seconds",
				Help:    "Duration of dork queries in seconds",
				Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30},
			},
			[]string{"scope"},
		),
	}
}

// ObserveQuery records one executed query
func (r *Recorder) ObserveQuery(scope domain.Scope, status string, duration time.Duration) {
	r.queriesTotal.WithLabelValues(string(scope), status).Inc()
	r.queryDuration.WithLabelValues(string(scope)).Observe(duration.Seconds())
}

// Handler serves the registry in the Prometheus exposition format
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
