// Package assemble runs the static-content assembly pipeline: scan the
// source tree into the store, then render every view through the
// templating engine and write the output files.
package assemble

import (
	"context"
	"log/slog"
	"time"

	"git.home.luguber.info/inful/assemble/internal/collect"
	"git.home.luguber.info/inful/assemble/internal/config"
	"git.home.luguber.info/inful/assemble/internal/errors"
	"git.home.luguber.info/inful/assemble/internal/logfields"
	"git.home.luguber.info/inful/assemble/internal/metrics"
	"git.home.luguber.info/inful/assemble/internal/observability"
	"git.home.luguber.info/inful/assemble/internal/render"
	"git.home.luguber.info/inful/assemble/internal/store"
)

// Options are the constructor-time dependencies a Session accepts
// beyond the configuration: the error sink, the module assemble
// callback, templating extensions and the metrics recorder. All are
// optional.
type Options struct {
	ErrorSink  errors.Sink
	Assembler  ModuleAssembler
	Extensions []render.Extension
	Recorder   metrics.Recorder
	Logger     *slog.Logger
}

// Session owns one assembly run's state. The configuration and, once
// the scan stages finish, the store are read-only during rendering.
type Session struct {
	cfg       *config.Config
	store     *store.Store
	collector *collect.Collector
	engine    *render.Engine
	reporter  *errors.Reporter
	recorder  metrics.Recorder
	assembler ModuleAssembler

	written        int
	renderFailures int
}

// New builds a Session from the configuration and options.
func New(cfg *config.Config, opts Options) *Session {
	st := store.New()
	rec := opts.Recorder
	if rec == nil {
		rec = metrics.NoopRecorder{}
	}
	return &Session{
		cfg:       cfg,
		store:     st,
		collector: collect.New(cfg, st),
		engine:    render.NewEngine(cfg.Src, opts.Extensions),
		reporter:  errors.NewReporter(opts.ErrorSink, cfg.LogErrors, opts.Logger),
		recorder:  rec,
		assembler: opts.Assembler,
	}
}

// Store exposes the assembly store, populated after the scan stages.
func (s *Session) Store() *store.Store { return s.store }

// Run executes one full assembly inside the top-level error boundary.
// Scan errors abort the run and go to the reporter; per-view render
// failures are logged inside the render stage and do not surface here.
func (s *Session) Run(ctx context.Context) error {
	ctx = observability.WithRunID(ctx, observability.NewRunID())
	start := time.Now()

	stages := []StageDef{
		{Name: "scan-layouts", Fn: func(context.Context) error { return s.collector.Layouts() }},
		{Name: "scan-data", Fn: func(context.Context) error { return s.collector.Data() }},
		{Name: "scan-materials", Fn: func(context.Context) error { return s.collector.Materials() }},
		{Name: "scan-views", Fn: func(context.Context) error { return s.collector.Views() }},
		{Name: "scan-docs", Fn: func(context.Context) error { return s.collector.Docs() }},
		{Name: "render-views", Fn: s.renderViews},
	}

	err := s.runStages(ctx, stages)

	d := time.Since(start)
	s.recorder.ObserveAssemblyDuration(d)
	s.recorder.SetNamespaceSize("layouts", len(s.store.Layouts))
	s.recorder.SetNamespaceSize("data", len(s.store.Data))
	s.recorder.SetNamespaceSize("materials", len(s.store.Materials))
	s.recorder.SetNamespaceSize("views", len(s.store.Views))
	s.recorder.SetNamespaceSize("docs", len(s.store.Docs))

	if err != nil {
		s.reporter.Handle(err)
		return err
	}

	observability.InfoContext(ctx, "assembly complete",
		slog.Int("written", s.written),
		slog.Int("render_failures", s.renderFailures),
		slog.Duration(logfields.KeyDuration, d))
	return nil
}
