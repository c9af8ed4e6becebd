// Package metrics holds the process-wide Prometheus collectors.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "talent_align"

type collectors struct {
	rulesFired         *prometheus.CounterVec
	unresolvedTargets  prometheus.Counter
	actionMutations    *prometheus.CounterVec
	payloadCache       *prometheus.CounterVec
	httpRequests       *prometheus.CounterVec
	httpRequestLatency *prometheus.HistogramVec
	wsClients          prometheus.Gauge
}

var singleton = sync.OnceValue(func() *collectors {
	return &collectors{
		rulesFired: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recommendation_rules_fired_total",
			Help:      "Suggestions emitted by the recommendation engine, per rule.",
		}, []string{"rule"}),
		unresolvedTargets: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recommendation_unresolved_targets_total",
			Help:      "Weakest-individual suggestions whose employee name had no id mapping.",
		}),
		actionMutations: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "action_mutations_total",
			Help:      "Action store writes by operation and result.",
		}, []string{"op", "result"}),
		payloadCache: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "jobfit_payload_cache_total",
			Help:      "Job-fit payload cache lookups by result (hit, miss, bypass).",
		}, []string{"result"}),
		httpRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpRequestLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets: []float64{
				0.001, 0.005,
				0.01, 0.05,
				0.1, 0.5,
				1, 5,
			},
		}, []string{"method", "route"}),
		wsClients: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ws_clients",
			Help:      "Connected action event subscribers.",
		}),
	}
})

func RuleFired(rule string) {
	singleton().rulesFired.WithLabelValues(rule).Inc()
}

func UnresolvedTarget() {
	singleton().unresolvedTargets.Inc()
}

// ActionMutation records a create or update; err decides the result label.
func ActionMutation(op string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	singleton().actionMutations.WithLabelValues(op, result).Inc()
}

func PayloadCache(result string) {
	singleton().payloadCache.WithLabelValues(result).Inc()
}

func HTTPRequest(method, route string, status int, seconds float64) {
	c := singleton()
	c.httpRequests.WithLabelValues(method, route, statusLabel(status)).Inc()
	c.httpRequestLatency.WithLabelValues(method, route).Observe(seconds)
}

func WSClients(n int) {
	singleton().wsClients.Set(float64(n))
}

func statusLabel(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
