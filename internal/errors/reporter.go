package errors

import (
	"log/slog"
	"os"
)

// Sink receives errors from the Reporter. A true return marks the
// error as handled, suppressing the Reporter's own logging and exit
// behavior for that error.
type Sink interface {
	Report(err *AssembleError) bool
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(err *AssembleError) bool

// Report implements Sink.
func (f SinkFunc) Report(err *AssembleError) bool { return f(err) }

// Reporter is the single top-level error boundary. Behavior, first
// match wins: a configured sink that handles the error; logging when
// LogErrors is set; otherwise log and terminate the process.
type Reporter struct {
	Sink      Sink
	LogErrors bool
	Logger    *slog.Logger

	// exit is swappable for tests.
	exit func(code int)
}

// NewReporter builds a Reporter. sink may be nil.
func NewReporter(sink Sink, logErrors bool, logger *slog.Logger) *Reporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reporter{
		Sink:      sink,
		LogErrors: logErrors,
		Logger:    logger,
		exit:      os.Exit,
	}
}

// Handle normalizes err and applies the reporting policy. It returns
// only if the error was handled.
func (r *Reporter) Handle(err error) {
	ae := Normalize(err)
	if ae == nil {
		return
	}

	if r.Sink != nil && r.Sink.Report(ae) {
		return
	}

	attrs := []any{
		slog.String("category", string(ae.Category)),
		slog.String("severity", string(ae.Severity)),
	}
	for k, v := range ae.Context {
		attrs = append(attrs, slog.Any(k, v))
	}

	if r.LogErrors {
		r.Logger.Error(ae.Error(), attrs...)
		return
	}

	r.Logger.Error(ae.Error(), attrs...)
	r.exit(1)
}
