package infra_metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.SearchFinished("complete")
	m.SearchFinished("complete")
	m.SearchFinished("exhausted")
	m.SearchPolled()
	m.TokenFallback(true)
	m.Recommendation("committed")
	m.RoomCreated()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.searchSessions.WithLabelValues("complete")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.searchSessions.WithLabelValues("exhausted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.searchPolls))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.tokenFallbacks.WithLabelValues("succeeded")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.recommendations.WithLabelValues("committed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.roomsCreated))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.SearchFinished("failed")
		m.SearchPolled()
		m.TokenFallback(false)
		m.Recommendation("no_matches")
		m.RoomCreated()
	})
}

func TestHandlerExposesCollectors(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.RoomCreated()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "wenomadus_rooms_created_total 1")
}
