package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus metrics of the viewer service.
type Metrics struct {
	PreviewsRendered *prometheus.CounterVec
	DownloadRequests *prometheus.CounterVec
	ModalCloses      prometheus.Counter
	RenderFailures   prometheus.Counter

	gatherer prometheus.Gatherer
}

// NewMetrics creates the metrics on reg. A nil reg uses a fresh registry so
// repeated calls never collide.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)

	return &Metrics{
		PreviewsRendered: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "file_viewer_previews_rendered_total",
				Help: "Preview modals rendered, by preview kind",
			},
			[]string{"kind"},
		),
		DownloadRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "file_viewer_download_requests_total",
				Help: "Stubbed download actions triggered, by action",
			},
			[]string{"action"},
		),
		ModalCloses: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "file_viewer_modal_closes_total",
				Help: "Preview modals closed",
			},
		),
		RenderFailures: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "file_viewer_render_failures_total",
				Help: "Template executions that failed",
			},
		),
		gatherer: reg,
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
