package infra_metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "wenomadus"

// Metrics holds every collector of the service.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	gatherer prometheus.Gatherer

	searchSessions  *prometheus.CounterVec
	searchPolls     prometheus.Counter
	tokenFallbacks  *prometheus.CounterVec
	recommendations *prometheus.CounterVec
	roomsCreated    prometheus.Counter
}

func New(reg *prometheus.Registry) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		gatherer: reg,
		searchSessions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "flights",
			Name:      "search_sessions_total",
			Help:      "Live flight searches by final session state.",
		}, []string{"state"}),
		searchPolls: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "flights",
			Name:      "search_polls_total",
			Help:      "Poll requests sent to the flight search API.",
		}),
		tokenFallbacks: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "flights",
			Name:      "token_fallbacks_total",
			Help:      "Polls retried with the suffixed session token, by outcome.",
		}, []string{"outcome"}),
		recommendations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rooms",
			Name:      "recommendations_total",
			Help:      "Recommendation attempts by outcome.",
		}, []string{"outcome"}),
		roomsCreated: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rooms",
			Name:      "created_total",
			Help:      "Rooms created.",
		}),
	}
}

func (m *Metrics) SearchFinished(state string) {
	if m == nil {
		return
	}
	m.searchSessions.WithLabelValues(state).Inc()
}

func (m *Metrics) SearchPolled() {
	if m == nil {
		return
	}
	m.searchPolls.Inc()
}

func (m *Metrics) TokenFallback(succeeded bool) {
	if m == nil {
		return
	}
	outcome := "failed"
	if succeeded {
		outcome = "succeeded"
	}
	m.tokenFallbacks.WithLabelValues(outcome).Inc()
}

func (m *Metrics) Recommendation(outcome string) {
	if m == nil {
		return
	}
	m.recommendations.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RoomCreated() {
	if m == nil {
		return
	}
	m.roomsCreated.Inc()
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
