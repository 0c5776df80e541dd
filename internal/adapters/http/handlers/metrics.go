package handlers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// View labels used by the page metrics.
const (
	ViewHome            = "home"
	ViewProject         = "project"
	ViewProjectNotFound = "project_not_found"
	ViewNotFound        = "not_found"
	ViewError           = "error"
)

// Metrics are the blog's Prometheus collectors.
type Metrics struct {
	pageViews      *prometheus.CounterVec
	projectViews   *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
	renderErrors   *prometheus.CounterVec
}

// NewMetrics registers the blog collectors on reg. Passing nil uses the
// default registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	factory := promauto.With(reg)

	return &Metrics{
		pageViews: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "blog",
			Name:      "page_views_total",
			Help:      "HTML pages served, by view.",
		}, []string{"view"}),
		// The id set is fixed at start-up, so the label stays bounded.
		projectViews: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "blog",
			Name:      "project_views_total",
			Help:      "Detail pages served, by project id.",
		}, []string{"id"}),
		renderDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "blog",
			Name:      "render_duration_seconds",
			Help:      "Time spent executing page templates.",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1},
		}, []string{"view"}),
		renderErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "blog",
			Name:      "render_errors_total",
			Help:      "Template executions that failed, by view.",
		}, []string{"view"}),
	}
}

func (m *Metrics) observeView(view string, seconds float64) {
	if m == nil {
		return
	}

	m.pageViews.WithLabelValues(view).Inc()
	m.renderDuration.WithLabelValues(view).Observe(seconds)
}

func (m *Metrics) observeProject(id string) {
	if m == nil {
		return
	}

	m.projectViews.WithLabelValues(id).Inc()
}

func (m *Metrics) observeRenderError(view string) {
	if m == nil {
		return
	}

	m.renderErrors.WithLabelValues(view).Inc()
}
