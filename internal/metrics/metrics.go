// Package metrics defines Prometheus metrics for the portal.
//
// Metrics are registered on a dedicated registry served at /metrics, so
// tests can construct isolated instances.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcomes of logins and permission lookups.
const (
	OutcomeSuccess            = "success"
	OutcomeBadRequest         = "bad_request"
	OutcomeInvalidCredentials = "invalid_credentials"
	OutcomeUnauthorized       = "unauthorized"
	OutcomeError              = "error"
)

// Session guard decisions.
const (
	GuardAllowed = "allowed"
	GuardMissing = "missing"
	GuardInvalid = "invalid"
)

// Metrics holds the portal collectors.
type Metrics struct {
	registry *prometheus.Registry

	LoginsTotal            *prometheus.CounterVec
	GuardDecisionsTotal    *prometheus.CounterVec
	PermissionLookupsTotal *prometheus.CounterVec
	PermissionsReturned    prometheus.Histogram
	HTTPRequestDuration    *prometheus.HistogramVec
}

// New creates Metrics registered on a fresh registry together with the Go
// runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		LoginsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portal_logins_total",
				Help: "Total number of login attempts by outcome.",
			},
			[]string{"outcome"},
		),
		GuardDecisionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portal_session_guard_decisions_total",
				Help: "Total number of protected route checks by decision.",
			},
			[]string{"decision"},
		),
		PermissionLookupsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portal_permission_lookups_total",
				Help: "Total number of permission lookups by outcome.",
			},
			[]string{"outcome"},
		),
		PermissionsReturned: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "portal_permissions_returned",
				Help:    "Number of application links returned per lookup.",
				Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
			},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "portal_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "method", "status"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.LoginsTotal,
		m.GuardDecisionsTotal,
		m.PermissionLookupsTotal,
		m.PermissionsReturned,
		m.HTTPRequestDuration,
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RecordLogin counts a login attempt.
func (m *Metrics) RecordLogin(outcome string) {
	if m == nil {
		return
	}
	m.LoginsTotal.WithLabelValues(outcome).Inc()
}

// RecordGuardDecision counts a session guard decision.
func (m *Metrics) RecordGuardDecision(decision string) {
	if m == nil {
		return
	}
	m.GuardDecisionsTotal.WithLabelValues(decision).Inc()
}

// RecordPermissionLookup counts a permission lookup and, on success, the
// number of links returned.
func (m *Metrics) RecordPermissionLookup(outcome string, returned int) {
	if m == nil {
		return
	}
	m.PermissionLookupsTotal.WithLabelValues(outcome).Inc()
	if outcome == OutcomeSuccess {
		m.PermissionsReturned.Observe(float64(returned))
	}
}

// ObserveHTTPRequest records the duration of a served request.
func (m *Metrics) ObserveHTTPRequest(route, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestDuration.WithLabelValues(route, method, strconv.Itoa(status)).Observe(duration.Seconds())
}
