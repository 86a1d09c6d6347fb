package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"git.home.luguber.info/inful/assemble/internal/assemble"
	"git.home.luguber.info/inful/assemble/internal/config"
	"git.home.luguber.info/inful/assemble/internal/observability"
	"git.home.luguber.info/inful/assemble/internal/watch"
)

// WatchCmd implements the 'watch' command: a full re-assembly on every
// change burst under the source roots. No serving, no incremental
// builds.
type WatchCmd struct {
	Debounce time.Duration `help:"Delay before rebuilding after a change burst" default:"300ms"`
}

func (w *WatchCmd) Run(g *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	g.Logger = observability.SetupLogging(cfg.Logging, root.Verbose)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rebuild := func() {
		// Each run gets a fresh session; the store never carries over.
		_ = assemble.New(cfg, assemble.Options{Logger: g.Logger}).Run(ctx)
	}
	rebuild()

	watcher, err := watch.New(cfg.Src, w.Debounce)
	if err != nil {
		return err
	}
	g.Logger.Info("watching for changes", "roots", cfg.Src)
	return watcher.Run(ctx, rebuild)
}
