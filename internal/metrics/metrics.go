package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics is safe to use through a nil pointer; every recorder becomes a no-op.
type Metrics struct {
	reg       *prometheus.Registry
	submitted prometheus.Counter
	rejected  *prometheus.CounterVec
	deleted   prometheus.Counter
	dropped   prometheus.Counter
}

// New registers the catalog collectors. liveRefs, when set, backs a gauge of
// object references currently held by the intake registry.
func New(liveRefs func() int) *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		reg: reg,
		submitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "farmlink_products_submitted_total",
			Help: "Submissions accepted into the catalog.",
		}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "farmlink_submission_rejections_total",
			Help: "Failed submission rules, by field and code.",
		}, []string{"field", "code"}),
		deleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "farmlink_products_deleted_total",
			Help: "Products removed from the catalog.",
		}),
		dropped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "farmlink_intake_files_dropped_total",
			Help: "Uploaded files silently dropped by image intake.",
		}),
	}
	reg.MustRegister(m.submitted, m.rejected, m.deleted, m.dropped,
		collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	if liveRefs != nil {
		reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "farmlink_intake_live_refs",
			Help: "Image object references not yet released.",
		}, func() float64 { return float64(liveRefs()) }))
	}
	return m
}

func (m *Metrics) Submitted() {
	if m == nil {
		return
	}
	m.submitted.Inc()
}

func (m *Metrics) Rejected(field, code string) {
	if m == nil {
		return
	}
	m.rejected.WithLabelValues(field, code).Inc()
}

func (m *Metrics) Deleted() {
	if m == nil {
		return
	}
	m.deleted.Inc()
}

func (m *Metrics) Dropped(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.dropped.Add(float64(n))
}

// Gatherer exposes the private registry, mainly for tests.
func (m *Metrics) Gatherer() prometheus.Gatherer { return m.reg }

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}
