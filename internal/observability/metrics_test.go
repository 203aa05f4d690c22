package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordQuery(t *testing.T) {
	before := testutil.ToFloat64(plannerQueries.WithLabelValues("timing_window", OutcomeOK))
	RecordQuery("timing_window", OutcomeOK)
	RecordQuery("timing_window", OutcomeOK)
	assert.Equal(t, before+2, testutil.ToFloat64(plannerQueries.WithLabelValues("timing_window", OutcomeOK)))
}

func TestRecordScheduleCache(t *testing.T) {
	hits := testutil.ToFloat64(scheduleCacheLookups.WithLabelValues("hit"))
	misses := testutil.ToFloat64(scheduleCacheLookups.WithLabelValues("miss"))

	RecordScheduleCache(true)
	RecordScheduleCache(false)
	RecordScheduleCache(false)

	assert.Equal(t, hits+1, testutil.ToFloat64(scheduleCacheLookups.WithLabelValues("hit")))
	assert.Equal(t, misses+2, testutil.ToFloat64(scheduleCacheLookups.WithLabelValues("miss")))
}

func TestRecordDigestAndRateLimited(t *testing.T) {
	before := testutil.ToFloat64(digestsPublished.WithLabelValues("central", OutcomeError))
	RecordDigest("central", OutcomeError)
	assert.Equal(t, before+1, testutil.ToFloat64(digestsPublished.WithLabelValues("central", OutcomeError)))

	limited := testutil.ToFloat64(rateLimited)
	RecordRateLimited()
	assert.Equal(t, limited+1, testutil.ToFloat64(rateLimited))
}
