// Package metrics exposes the engine's Prometheus instrumentation.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// AgentCalls counts agent runtime executions by task and terminal status
	// (success, failure, cache_hit, failover).
	AgentCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "undertow_agent_calls_total",
			Help: "Total agent executions by task and status.",
		},
		[]string{"task", "status"},
	)

	// CacheEvents counts response cache lookups by cache kind and result.
	CacheEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "undertow_cache_events_total",
			Help: "Response cache hits and misses by cache kind.",
		},
		[]string{"kind", "result"},
	)

	// GatewayCalls counts gateway completions by provider and outcome.
	GatewayCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "undertow_gateway_calls_total",
			Help: "Gateway completion calls by provider and outcome.",
		},
		[]string{"provider", "outcome"},
	)

	// GatewayLatency observes end-to-end completion latency per provider.
	GatewayLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "undertow_gateway_latency_seconds",
			Help:    "Gateway completion latency.",
			Buckets: []float64{0.5, 1, 2, 5, 10, 30, 60, 120},
		},
		[]string{"provider"},
	)

	// CircuitBreakerOpened counts breaker trips by provider and purpose.
	CircuitBreakerOpened = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "undertow_circuit_breaker_opened_total",
			Help: "Circuit breaker transitions to open.",
		},
		[]string{"provider", "purpose"},
	)

	// BudgetReservations counts budget admission decisions.
	BudgetReservations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "undertow_budget_reservations_total",
			Help: "Budget reservations by decision (reserved, denied).",
		},
		[]string{"decision"},
	)

	// BudgetSpent reports committed spend per window (day, month).
	BudgetSpent = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "undertow_budget_spent_usd",
			Help: "Committed spend per budget window.",
		},
		[]string{"window"},
	)

	// EscalationsCreated counts escalation items by severity.
	EscalationsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "undertow_escalations_created_total",
			Help: "Escalation items created by severity.",
		},
		[]string{"severity"},
	)

	// StoriesCompleted counts stories reaching a terminal status.
	StoriesCompleted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "undertow_stories_completed_total",
			Help: "Stories reaching a terminal status.",
		},
		[]string{"status"},
	)

	// PipelineDuration observes wall time per story through the pipeline.
	PipelineDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "undertow_pipeline_duration_seconds",
			Help:    "Per-story pipeline duration.",
			Buckets: []float64{30, 60, 120, 300, 600, 1200, 1800, 3600},
		},
	)

	// GateResults counts gate evaluations by pass and outcome.
	GateResults = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "undertow_gate_results_total",
			Help: "Quality gate outcomes by pass.",
		},
		[]string{"pass", "outcome"},
	)

	// RateDrift counts observed token-rate mismatches against configured rates.
	RateDrift = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "undertow_rate_drift_total",
			Help: "Completions whose usage implies a cost-rate mismatch.",
		},
		[]string{"provider", "model"},
	)
)

var (
	initOnce sync.Once
	registry *prometheus.Registry
)

// Init registers all engine metrics plus Go runtime collectors and returns
// the registry. Safe to call more than once.
func Init() *prometheus.Registry {
	initOnce.Do(func() {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			AgentCalls,
			CacheEvents,
			GatewayCalls,
			GatewayLatency,
			CircuitBreakerOpened,
			BudgetReservations,
			BudgetSpent,
			EscalationsCreated,
			StoriesCompleted,
			PipelineDuration,
			GateResults,
			RateDrift,
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	})
	return registry
}

// Handler returns an http.Handler serving the metrics registry.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
