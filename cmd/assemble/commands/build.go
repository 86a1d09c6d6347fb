package commands

import (
	"context"
	"fmt"
	"log/slog"

	prom "github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"git.home.luguber.info/inful/assemble/internal/assemble"
	"git.home.luguber.info/inful/assemble/internal/config"
	"git.home.luguber.info/inful/assemble/internal/metrics"
	"git.home.luguber.info/inful/assemble/internal/observability"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Dest string `short:"o" help:"Override the configured output root"`
}

func (b *BuildCmd) Run(g *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if b.Dest != "" {
		cfg.Dest = b.Dest
	}

	g.Logger = observability.SetupLogging(cfg.Logging, root.Verbose)

	opts := assemble.Options{Logger: g.Logger}
	var registry *prom.Registry
	if cfg.Metrics.Enabled {
		rec := metrics.NewPrometheusRecorder(nil)
		registry = rec.Registry()
		opts.Recorder = rec
	}

	// The session's reporter owns the error policy, including any
	// process termination; a surviving error here was already handled.
	_ = assemble.New(cfg, opts).Run(context.Background())

	if registry != nil {
		logMetricsSummary(registry, g.Logger)
	}
	return nil
}

// logMetricsSummary logs counter totals gathered from the run's
// registry, the run-and-exit stand-in for a scrape endpoint.
func logMetricsSummary(registry *prom.Registry, logger *slog.Logger) {
	families, err := registry.Gather()
	if err != nil {
		logger.Warn("gathering metrics failed", "error", err)
		return
	}
	for _, mf := range families {
		if mf.GetType() != dto.MetricType_COUNTER {
			continue
		}
		var total float64
		for _, m := range mf.GetMetric() {
			total += m.GetCounter().GetValue()
		}
		logger.Info("metric", "name", mf.GetName(), "total", total)
	}
}
