// Package metrics provides observability hooks for assembly runs.
//
// Components receive a Recorder through dependency injection and the
// NoopRecorder is the default, so metrics impose no overhead unless a
// real implementation is wired in.
package metrics

import "time"

// ResultLabel enumerates per-view render outcomes.
type ResultLabel string

const (
	ResultSuccess     ResultLabel = "success"
	ResultRenderError ResultLabel = "render_error"
)

// Recorder defines observability hooks for assembly runs.
// Implementations may forward to Prometheus or elsewhere.
type Recorder interface {
	ObserveStageDuration(stage string, d time.Duration)
	ObserveAssemblyDuration(d time.Duration)
	IncViewResult(result ResultLabel)
	IncFilesWritten()
	SetNamespaceSize(namespace string, n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics
// are not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveStageDuration(string, time.Duration) {}
func (NoopRecorder) ObserveAssemblyDuration(time.Duration)      {}
func (NoopRecorder) IncViewResult(ResultLabel)                  {}
func (NoopRecorder) IncFilesWritten()                           {}
func (NoopRecorder) SetNamespaceSize(string, int)               {}
