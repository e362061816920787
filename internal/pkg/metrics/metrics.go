package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "exchange"

// Metrics groups every collector the service exports.
type Metrics struct {
	registry *prometheus.Registry

	ProxyRequests    *prometheus.CounterVec
	ProxyDuration    *prometheus.HistogramVec
	ProxyRateLimited *prometheus.CounterVec
	PriceLookups     *prometheus.CounterVec
}

// New creates the collectors on a private registry, together with the
// standard process and Go runtime collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		ProxyRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reservoir_proxy",
			Name:      "requests_total",
			Help:      "Requests forwarded to the Reservoir API by chain and upstream status code.",
		}, []string{"chain", "status"}),
		ProxyDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "reservoir_proxy",
			Name:      "request_duration_seconds",
			Help:      "Upstream round trip time of proxied requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"chain"}),
		ProxyRateLimited: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reservoir_proxy",
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the per-chain rate limiter.",
		}, []string{"chain"}),
		PriceLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "coingecko",
			Name:      "price_lookups_total",
			Help:      "Price lookups by result (hit, miss, error).",
		}, []string{"result"}),
	}

	m.registry.MustRegister(
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
		m.ProxyRequests,
		m.ProxyDuration,
		m.ProxyRateLimited,
		m.PriceLookups,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
