package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// UpstreamCallsTotal tracks decorated upstream call attempts per service and outcome
	UpstreamCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "productinfo_upstream_calls_total",
			Help: "Total number of upstream call attempts",
		},
		[]string{"service", "outcome"},
	)

	// UpstreamLatency tracks upstream attempt latency per service
	UpstreamLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "productinfo_upstream_latency_seconds",
			Help:    "Upstream call latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service"},
	)

	// CircuitBreakerState exposes the breaker state per service (0=closed, 1=open, 2=half-open)
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "productinfo_circuit_breaker_state",
			Help: "Circuit breaker state per service (0=closed, 1=open, 2=half-open)",
		},
		[]string{"service"},
	)

	// CircuitOpenRejections tracks attempts rejected without reaching the upstream
	CircuitOpenRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "productinfo_circuit_open_rejections_total",
			Help: "Total number of attempts rejected by an open circuit",
		},
		[]string{"service"},
	)

	// AggregationsTotal tracks aggregation results
	AggregationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "productinfo_aggregations_total",
			Help: "Total number of aggregation requests",
		},
		[]string{"result"},
	)

	// DegradedFacetsTotal tracks fallback substitutions per optional service
	DegradedFacetsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "productinfo_degraded_facets_total",
			Help: "Total number of optional facets resolved to a fallback value",
		},
		[]string{"service"},
	)
)
