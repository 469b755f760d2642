package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/celiogix/backend/internal/domain"
)

func TestRecorder_RecordAnalysis(t *testing.T) {
	r := NewRecorder()

	unsafeBefore := testutil.ToFloat64(analysesTotal.WithLabelValues(string(domain.RiskUnsafe)))
	hitsBefore := testutil.ToFloat64(analysisCacheHits)
	missesBefore := testutil.ToFloat64(analysisCacheMisses)

	r.RecordAnalysis(domain.RiskUnsafe, false)
	r.RecordAnalysis(domain.RiskUnsafe, true)

	assert.Equal(t, unsafeBefore+2, testutil.ToFloat64(analysesTotal.WithLabelValues(string(domain.RiskUnsafe))))
	assert.Equal(t, hitsBefore+1, testutil.ToFloat64(analysisCacheHits))
	assert.Equal(t, missesBefore+1, testutil.ToFloat64(analysisCacheMisses))
}

func TestRecorder_RecordConversion(t *testing.T) {
	r := NewRecorder()

	okBefore := testutil.ToFloat64(unitConversions.WithLabelValues("converted"))
	failBefore := testutil.ToFloat64(unitConversions.WithLabelValues("unconvertible"))

	r.RecordConversion(true)
	r.RecordConversion(false)
	r.RecordConversion(false)

	assert.Equal(t, okBefore+1, testutil.ToFloat64(unitConversions.WithLabelValues("converted")))
	assert.Equal(t, failBefore+2, testutil.ToFloat64(unitConversions.WithLabelValues("unconvertible")))
}

func TestRecorder_RecordRequest(t *testing.T) {
	r := NewRecorder()

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/health", "200"))

	r.RecordRequest("GET", "/health", "200", 0.01)

	assert.Equal(t, before+1, testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/health", "200")))
	assert.GreaterOrEqual(t, testutil.CollectAndCount(httpRequestDuration, "celiogix_http_request_duration_seconds"), 1)
}

func TestRecorder_Counters(t *testing.T) {
	r := NewRecorder()

	scalesBefore := testutil.ToFloat64(recipeScales)
	rejectsBefore := testutil.ToFloat64(rateLimitRejects)

	r.RecordScale()
	r.RecordRateLimitReject()

	assert.Equal(t, scalesBefore+1, testutil.ToFloat64(recipeScales))
	assert.Equal(t, rejectsBefore+1, testutil.ToFloat64(rateLimitRejects))
}

func TestNewRecorder_InitialisesRiskLevels(t *testing.T) {
	NewRecorder()

	assert.Equal(t, len(domain.RiskLevels), testutil.CollectAndCount(analysesTotal, "celiogix_analyses_total"))
}
