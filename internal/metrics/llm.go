package metrics

import "github.com/prometheus/client_golang/prometheus"

// LLM and pipeline Prometheus metrics.
var (
	LLMRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "foodeats",
			Name:      "llm_requests_total",
			Help:      "Total number of chat-completion requests",
		},
		[]string{"model", "stage", "status"},
	)

	LLMRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "foodeats",
			Name:      "llm_request_duration_seconds",
			Help:      "Chat-completion request duration in seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20},
		},
		[]string{"model", "stage"},
	)

	LLMTokensTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "foodeats",
			Name:      "llm_tokens_total",
			Help:      "Total chat-completion tokens consumed",
		},
		[]string{"model", "stage", "type"}, // type: "prompt" / "completion"
	)

	SearchFallbacksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "foodeats",
			Name:      "search_fallbacks_total",
			Help:      "Pipeline stages that fell back to their degrade path",
		},
		[]string{"stage"}, // "extraction" / "rerank"
	)

	CriteriaCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "foodeats",
			Name:      "criteria_cache_total",
			Help:      "Criteria extraction cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)
)

var llmMetricsRegistered bool

// RegisterLLMMetrics registers LLM and pipeline metrics. Must be called once from main.
func RegisterLLMMetrics() {
	if llmMetricsRegistered {
		return
	}
	prometheus.MustRegister(LLMRequestsTotal)
	prometheus.MustRegister(LLMRequestDuration)
	prometheus.MustRegister(LLMTokensTotal)
	prometheus.MustRegister(SearchFallbacksTotal)
	prometheus.MustRegister(CriteriaCacheTotal)
	llmMetricsRegistered = true
}
