// Package metrics declares prometheus collectors of the recommendation engine.
// Collectors are registered with the default registry and exposed on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RecommendationsTotal counts served recommendations by the cascade step that produced them
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipescope_recommendations_total",
			Help: "Total number of served recommendations by cascade step",
		},
		[]string{"step"},
	)

	// RequestDuration tracks GetPersonalizedItem latency by outcome
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recipescope_recommendation_duration_seconds",
			Help:    "Duration of personalized recommendation requests in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"outcome"},
	)

	// QuotaRejectionsTotal counts requests denied by the daily quota
	QuotaRejectionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recipescope_quota_rejections_total",
			Help: "Total number of requests rejected by the daily quota",
		},
	)

	// ExclusionResetsTotal counts exclusion window resets caused by catalog exhaustion
	ExclusionResetsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recipescope_exclusion_resets_total",
			Help: "Total number of exclusion window resets",
		},
	)

	// FavoriteLookupFailuresTotal counts favorite lookups degraded to not-favorited
	FavoriteLookupFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recipescope_favorite_lookup_failures_total",
			Help: "Total number of favorite lookups that failed and were degraded",
		},
	)

	// UpstreamFailuresTotal counts failed calls to cache and catalog by operation and reason
	UpstreamFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipescope_upstream_failures_total",
			Help: "Total number of failed upstream calls",
		},
		[]string{"op", "reason"},
	)

	// BreakerState reports circuit breaker state, 0 closed, 1 half-open, 2 open
	BreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "recipescope_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)
)

// RecordRecommendation records a recommendation produced by the given cascade step
func RecordRecommendation(step int) {
	RecommendationsTotal.WithLabelValues(strconv.Itoa(step)).Inc()
}

// RecordRequest observes request duration for the outcome
func RecordRequest(outcome string, d time.Duration) {
	RequestDuration.WithLabelValues(outcome).Observe(d.Seconds())
}

// RecordQuotaRejection increments quota rejections
func RecordQuotaRejection() {
	QuotaRejectionsTotal.Inc()
}

// RecordExclusionReset increments exclusion resets
func RecordExclusionReset() {
	ExclusionResetsTotal.Inc()
}

// RecordFavoriteLookupFailure increments degraded favorite lookups
func RecordFavoriteLookupFailure() {
	FavoriteLookupFailuresTotal.Inc()
}

// RecordUpstreamFailure increments failed upstream calls
func RecordUpstreamFailure(op, reason string) {
	UpstreamFailuresTotal.WithLabelValues(op, reason).Inc()
}

// SetBreakerState sets breaker gauge, 0 closed, 1 half-open, 2 open
func SetBreakerState(name string, state float64) {
	BreakerState.WithLabelValues(name).Set(state)
}
