package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"requestdesk/internal/request"
)

const namespace = "requestdesk"

const (
	OutcomeSubmitted = "submitted"
	OutcomeInvalid   = "invalid"
)

// Metrics counts desk activity. It satisfies desk.Observer.
type Metrics struct {
	registry *prometheus.Registry

	submissions     *prometheus.CounterVec
	drafts          *prometheus.CounterVec
	navigations     *prometheus.CounterVec
	sessionsCreated prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "form_submissions_total",
			Help:      "Form submit attempts by category and outcome.",
		}, []string{"category", "outcome"}),
		drafts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "drafts_saved_total",
			Help:      "Draft saves by category.",
		}, []string{"category"}),
		navigations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "navigations_total",
			Help:      "View changes by target view.",
		}, []string{"view"}),
		sessionsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_created_total",
			Help:      "Sessions issued.",
		}),
	}
	m.registry.MustRegister(
		m.submissions,
		m.drafts,
		m.navigations,
		m.sessionsCreated,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) Navigated(v request.View) {
	m.navigations.WithLabelValues(string(v)).Inc()
}

func (m *Metrics) DraftSaved(c request.Category) {
	m.drafts.WithLabelValues(string(c)).Inc()
}

func (m *Metrics) Submitted(c request.Category, ok bool) {
	outcome := OutcomeInvalid
	if ok {
		outcome = OutcomeSubmitted
	}
	m.submissions.WithLabelValues(string(c), outcome).Inc()
}

func (m *Metrics) SessionCreated() {
	m.sessionsCreated.Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
