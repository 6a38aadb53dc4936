package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRecordsObservations(t *testing.T) {
	m := New()

	m.ObserveLLM("gpt-4o-mini", "chat", "ok", 2*time.Second)
	m.ObserveLLM("gpt-4o-mini", "chat", "ok", time.Second)
	m.CountDrafts("structured", "template", 3)
	m.CountDrafts("structured", "template", 0)
	m.ObserveTrendsLookup("VN", "error")
	m.ObserveHTTP(http.MethodGet, "/api/dimensions", http.StatusOK, 10*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.llmRequests.WithLabelValues("gpt-4o-mini", "chat", "ok")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.drafts.WithLabelValues("structured", "template")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.trendsLookups.WithLabelValues("VN", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/dimensions", "200")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveLLM("m", "chat", "ok", time.Second)
		m.CountDrafts("simple", "ai", 1)
		m.ObserveTrendsLookup("TH", "ok")
		m.ObserveHTTP("GET", "/", 200, time.Millisecond)
	})
}

func TestHandlerExposesCollectors(t *testing.T) {
	m := New()
	m.CountDrafts("simple", "synthetic", 2)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), `creative_factory_generator_drafts_total{mode="simple",origin="synthetic"} 2`))
}
