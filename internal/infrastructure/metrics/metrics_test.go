package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkflowCounters(t *testing.T) {
	m := New()

	m.JobCreated("CLAIM")
	m.JobCreated("CLAIM")
	m.StepTransitioned("pending", "completed")
	m.StageAdvanced("claim", false)
	m.StageAdvanced("billing", true)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.JobsCreated.WithLabelValues("CLAIM")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StepTransitions.WithLabelValues("pending", "completed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StagesAdvanced.WithLabelValues("billing")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.JobsFinished))
}

func TestHandler_ExposesMetrics(t *testing.T) {
	m := New()
	m.RecordHTTPRequest(http.MethodGet, "/v1/jobs", http.StatusOK, 20*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `oficina_http_requests_total{method="GET",path="/v1/jobs",status="200"} 1`), body)
	assert.Contains(t, body, "go_goroutines")
}
