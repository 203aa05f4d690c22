package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels shared by the counters below.
const (
	OutcomeOK           = "ok"
	OutcomeInvalidInput = "invalid_input"
	OutcomeError        = "error"
)

var (
	plannerQueries = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lawncare",
		Subsystem: "planner",
		Name:      "queries_total",
		Help:      "Timing engine queries by operation and outcome.",
	}, []string{"operation", "outcome"})
	scheduleCacheLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lawncare",
		Subsystem: "planner",
		Name:      "schedule_cache_lookups_total",
		Help:      "Monthly schedule cache lookups by result.",
	}, []string{"result"})
	digestsPublished = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lawncare",
		Subsystem: "digest",
		Name:      "published_total",
		Help:      "Monthly digests published by region and outcome.",
	}, []string{"region", "outcome"})
	rateLimited = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "lawncare",
		Subsystem: "http",
		Name:      "rate_limited_total",
		Help:      "Requests rejected by the per-client rate limiter.",
	})
)

func init() {
	prometheus.MustRegister(plannerQueries, scheduleCacheLookups, digestsPublished, rateLimited)
}

// RecordQuery counts a planner operation.
func RecordQuery(operation, outcome string) {
	plannerQueries.WithLabelValues(operation, outcome).Inc()
}

// RecordScheduleCache counts a schedule cache hit or miss.
func RecordScheduleCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	scheduleCacheLookups.WithLabelValues(result).Inc()
}

// RecordDigest counts a digest publication attempt.
func RecordDigest(region, outcome string) {
	digestsPublished.WithLabelValues(region, outcome).Inc()
}

// RecordRateLimited counts a rejected request.
func RecordRateLimited() {
	rateLimited.Inc()
}
