package ztelemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Counter = prometheus.Counter
type CounterVec = prometheus.CounterVec
type Histogram = prometheus.Histogram

var httpBuckets = prometheus.ExponentialBuckets(0.005, 2, 10)

// Registry is a set of metrics served together on a /metrics handler
type Registry struct {
	Namespace string
	reg       *prometheus.Registry
}

// NewRegistry makes a registry, adding go runtime and process collectors if withRuntime.
func NewRegistry(namespace string, withRuntime bool) *Registry {
	r := &Registry{Namespace: namespace}
	r.reg = prometheus.NewRegistry()
	if withRuntime {
		r.reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	return r
}

func (r *Registry) NewCounter(name, help string) Counter {
	return promauto.With(r.reg).NewCounter(prometheus.CounterOpts{
		Namespace: r.Namespace,
		Name:      name,
		Help:      help,
	})
}

func (r *Registry) NewCounterVec(name, help string, labelNames ...string) *CounterVec {
	return promauto.With(r.reg).NewCounterVec(prometheus.CounterOpts{
		Namespace: r.Namespace,
		Name:      name,
		Help:      help,
	}, labelNames)
}

func (r *Registry) NewHistogram(name, help string, buckets []float64) Histogram {
	return promauto.With(r.reg).NewHistogram(prometheus.HistogramOpts{
		Namespace: r.Namespace,
		Name:      name,
		Buckets:   buckets,
		Help:      help,
	})
}

// Handler serves the registry's metrics in the prometheus text format
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}

// WrapHandler counts requests to handlerFunc, and observes their duration and response size, labeled by handlerName.
func (r *Registry) WrapHandler(handlerName string, handlerFunc http.HandlerFunc) http.HandlerFunc {
	reg := prometheus.WrapRegistererWith(prometheus.Labels{"handler": handlerName}, r.reg)
	requestsTotal := promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Tracks the number of HTTP requests.",
		}, []string{"method", "code"},
	)
	requestDuration := promauto.With(reg).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Tracks the latencies for HTTP requests.",
			Buckets: httpBuckets,
		},
		[]string{"method", "code"},
	)
	responseSize := promauto.With(reg).NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "http_response_size_bytes",
			Help: "Tracks the size of HTTP responses.",
		},
		[]string{"method", "code"},
	)
	base := promhttp.InstrumentHandlerCounter(
		requestsTotal,
		promhttp.InstrumentHandlerDuration(
			requestDuration,
			promhttp.InstrumentHandlerResponseSize(responseSize, handlerFunc),
		),
	)
	return base.ServeHTTP
}
