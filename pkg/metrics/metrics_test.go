package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordRecommendation(t *testing.T) {
	before := testutil.ToFloat64(RecommendationsTotal.WithLabelValues("3"))
	RecordRecommendation(3)
	RecordRecommendation(3)
	assert.InDelta(t, before+2, testutil.ToFloat64(RecommendationsTotal.WithLabelValues("3")), 0.001)
}

func TestCounters(t *testing.T) {
	tbl := []struct {
		name   string
		record func()
		read   func() float64
	}{
		{"quota rejection", RecordQuotaRejection, func() float64 { return testutil.ToFloat64(QuotaRejectionsTotal) }},
		{"exclusion reset", RecordExclusionReset, func() float64 { return testutil.ToFloat64(ExclusionResetsTotal) }},
		{"favorite lookup failure", RecordFavoriteLookupFailure,
			func() float64 { return testutil.ToFloat64(FavoriteLookupFailuresTotal) }},
		{"upstream failure", func() { RecordUpstreamFailure("catalog", "timeout") },
			func() float64 { return testutil.ToFloat64(UpstreamFailuresTotal.WithLabelValues("catalog", "timeout")) }},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.read()
			tt.record()
			assert.InDelta(t, before+1, tt.read(), 0.001)
		})
	}
}

func TestSetBreakerState(t *testing.T) {
	SetBreakerState("catalog", 2)
	assert.InDelta(t, 2.0, testutil.ToFloat64(BreakerState.WithLabelValues("catalog")), 0.001)
	SetBreakerState("catalog", 0)
	assert.InDelta(t, 0.0, testutil.ToFloat64(BreakerState.WithLabelValues("catalog")), 0.001)
}

func TestRecordRequest(t *testing.T) {
	before := testutil.CollectAndCount(RequestDuration)
	RecordRequest("ok-metrics-test", 15*time.Millisecond)
	assert.Equal(t, before+1, testutil.CollectAndCount(RequestDuration))
}
