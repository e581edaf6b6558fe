package server

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dkrasnow/m2scope/pkg/observability"
)

// metrics holds the server's Prometheus collectors on a private registry
// so multiple Server instances (tests included) never collide.
type metrics struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec

	resolveTotal    *prometheus.CounterVec
	resolveDuration prometheus.Histogram
	scanTotal       *prometheus.CounterVec
	cacheOps        *prometheus.CounterVec
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "m2scope_http_requests_total",
			Help: "HTTP requests by route pattern, method and status code.",
		}, []string{"route", "method", "code"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "m2scope_http_request_duration_seconds",
			Help:    "HTTP request latency by route pattern.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		resolveTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "m2scope_resolve_total",
			Help: "Resolution analyses by outcome.",
		}, []string{"outcome"}),
		resolveDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "m2scope_resolve_duration_seconds",
			Help:    "Resolution analysis latency.",
			Buckets: prometheus.DefBuckets,
		}),
		scanTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "m2scope_scan_total",
			Help: "Repository-wide scans by kind and outcome.",
		}, []string{"kind", "outcome"}),
		cacheOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "m2scope_cache_operations_total",
			Help: "Response cache operations by type and key prefix.",
		}, []string{"op", "key_type"}),
	}

	m.registry.MustRegister(
		m.requestsTotal,
		m.requestDuration,
		m.resolveTotal,
		m.resolveDuration,
		m.scanTotal,
		m.cacheOps,
	)
	return m
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// hooks adapts the metrics collectors to the observability hook
// interfaces. Registered by the serve command at startup.
type hooks struct {
	m *metrics
}

// Hooks returns observability hook implementations backed by this
// server's collectors.
func (s *Server) Hooks() (observability.ResolveHooks, observability.CacheHooks) {
	h := &hooks{m: s.metrics}
	return h, h
}

func (h *hooks) OnResolveStart(context.Context, string) {}

func (h *hooks) OnResolveComplete(_ context.Context, _ string, _, _ int, duration time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	h.m.resolveTotal.WithLabelValues(outcome).Inc()
	h.m.resolveDuration.Observe(duration.Seconds())
}

func (h *hooks) OnScanComplete(_ context.Context, kind string, _ int, _ time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	h.m.scanTotal.WithLabelValues(kind, outcome).Inc()
}

func (h *hooks) OnCacheHit(_ context.Context, keyType string) {
	h.m.cacheOps.WithLabelValues("hit", keyType).Inc()
}

func (h *hooks) OnCacheMiss(_ context.Context, keyType string) {
	h.m.cacheOps.WithLabelValues("miss", keyType).Inc()
}

func (h *hooks) OnCacheSet(_ context.Context, keyType string, _ int) {
	h.m.cacheOps.WithLabelValues("set", keyType).Inc()
}
