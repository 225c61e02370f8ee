// Package metrics
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"net/http"
	"time"
)

// Exporter GraphQL 请求与批量加载指标, 使用独立的注册表
type Exporter struct {
	registry         *prometheus.Registry
	requests         *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	errors           *prometheus.CounterVec
	loaderBatchSize  *prometheus.HistogramVec
	loaderBatchTotal *prometheus.CounterVec
}

func NewExporter(namespace string) *Exporter {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)
	return &Exporter{
		registry: registry,
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "graphql_requests_total",
				Help:      "Total number of GraphQL requests",
			},
			[]string{"operation", "status"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "graphql_request_duration_seconds",
				Help:      "Duration of GraphQL requests in seconds",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
			},
			[]string{"operation"},
		),
		errors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "graphql_errors_total",
				Help:      "Total number of GraphQL errors by code",
			},
			[]string{"code"},
		),
		loaderBatchSize: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "loader_batch_size",
				Help:      "Number of keys served by one batched load",
				Buckets:   []float64{1, 2, 5, 10, 25, 50, 100},
			},
			[]string{"loader"},
		),
		loaderBatchTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "loader_batches_total",
				Help:      "Total number of batched loads",
			},
			[]string{"loader"},
		),
	}
}

// RecordRequest status 为 ok 或 error
func (e *Exporter) RecordRequest(operation, status string, duration time.Duration) {
	e.requests.WithLabelValues(operation, status).Inc()
	e.requestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

func (e *Exporter) RecordError(code string) {
	if code == "" {
		code = "UNKNOWN"
	}
	e.errors.WithLabelValues(code).Inc()
}

func (e *Exporter) ObserveBatch(loader string, size int) {
	e.loaderBatchTotal.WithLabelValues(loader).Inc()
	e.loaderBatchSize.WithLabelValues(loader).Observe(float64(size))
}

func (e *Exporter) Handler() http.Handler {
	return promhttp.HandlerFor(e.registry, promhttp.HandlerOpts{Registry: e.registry})
}
