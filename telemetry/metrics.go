package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var Metrics = struct {
	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	TokensUsed       *prometheus.CounterVec
	ToolExecutions   *prometheus.CounterVec
	ToolDuration     *prometheus.HistogramVec
	LLMRequestsTotal *prometheus.CounterVec
	LLMLatency       *prometheus.HistogramVec
	DelegationsTotal *prometheus.CounterVec
	TasksTotal       *prometheus.CounterVec
	ErrorsTotal      *prometheus.CounterVec
}{
	RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "shopmesh",
		Name:      "requests_total",
		Help:      "Total number of requests by type and status.",
	}, []string{"type", "status"}),

	RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "shopmesh",
		Name:      "request_duration_seconds",
		Help:      "Request duration in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"type"}),

	TokensUsed: promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "shopmesh",
		Name:      "tokens_used_total",
		Help:      "Total tokens consumed by direction (input/output) and model.",
	}, []string{"direction", "model"}),

	ToolExecutions: promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "shopmesh",
		Name:      "tool_executions_total",
		Help:      "Total tool executions by tool name and status.",
	}, []string{"tool", "status"}),

	ToolDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "shopmesh",
		Name:      "tool_duration_seconds",
		Help:      "Tool execution duration in seconds.",
		Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 15, 30},
	}, []string{"tool"}),

	LLMRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "shopmesh",
		Name:      "llm_requests_total",
		Help:      "Total language model requests by provider and model.",
	}, []string{"provider", "model"}),

	LLMLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "shopmesh",
		Name:      "llm_latency_seconds",
		Help:      "Language model request latency in seconds.",
		Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
	}, []string{"provider", "model"}),

	DelegationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "shopmesh",
		Name:      "delegations_total",
		Help:      "Total downstream agent delegations by target and status.",
	}, []string{"agent", "status"}),

	TasksTotal: promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "shopmesh",
		Name:      "tasks_total",
		Help:      "Total tasks reaching a terminal state, by state.",
	}, []string{"state"}),

	ErrorsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "shopmesh",
		Name:      "errors_total",
		Help:      "Total errors by component.",
	}, []string{"component"}),
}
