package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics on a
// caller-supplied registry.
type PrometheusRecorder struct {
	registry         *prom.Registry
	stageDuration    *prom.HistogramVec
	assemblyDuration prom.Histogram
	viewResults      *prom.CounterVec
	filesWritten     prom.Counter
	namespaceSize    *prom.GaugeVec
}

// NewPrometheusRecorder constructs and registers the assembly metrics.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{registry: reg}
	pr.stageDuration = prom.NewHistogramVec(prom.HistogramOpts{
		Namespace: "assemble",
		Name:      "stage_duration_seconds",
		Help:      "Duration of individual assembly stages",
		Buckets:   prom.DefBuckets,
	}, []string{"stage"})
	pr.assemblyDuration = prom.NewHistogram(prom.HistogramOpts{
		Namespace: "assemble",
		Name:      "assembly_duration_seconds",
		Help:      "Total assembly run duration",
		Buckets:   prom.DefBuckets,
	})
	pr.viewResults = prom.NewCounterVec(prom.CounterOpts{
		Namespace: "assemble",
		Name:      "view_results_total",
		Help:      "Per-view render outcomes",
	}, []string{"result"})
	pr.filesWritten = prom.NewCounter(prom.CounterOpts{
		Namespace: "assemble",
		Name:      "files_written_total",
		Help:      "Output files written, duplicate copies included",
	})
	pr.namespaceSize = prom.NewGaugeVec(prom.GaugeOpts{
		Namespace: "assemble",
		Name:      "namespace_size",
		Help:      "Entries per store namespace after the scan phase",
	}, []string{"namespace"})

	reg.MustRegister(pr.stageDuration, pr.assemblyDuration, pr.viewResults, pr.filesWritten, pr.namespaceSize)
	return pr
}

// Registry returns the registry the recorder registered on, for
// end-of-run gathering.
func (pr *PrometheusRecorder) Registry() *prom.Registry { return pr.registry }

func (pr *PrometheusRecorder) ObserveStageDuration(stage string, d time.Duration) {
	pr.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

func (pr *PrometheusRecorder) ObserveAssemblyDuration(d time.Duration) {
	pr.assemblyDuration.Observe(d.Seconds())
}

func (pr *PrometheusRecorder) IncViewResult(result ResultLabel) {
	pr.viewResults.WithLabelValues(string(result)).Inc()
}

func (pr *PrometheusRecorder) IncFilesWritten() {
	pr.filesWritten.Inc()
}

func (pr *PrometheusRecorder) SetNamespaceSize(namespace string, n int) {
	pr.namespaceSize.WithLabelValues(namespace).Set(float64(n))
}
