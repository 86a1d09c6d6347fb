package assemble

import (
	"context"
	"log/slog"
	"time"

	"git.home.luguber.info/inful/assemble/internal/errors"
	"git.home.luguber.info/inful/assemble/internal/logfields"
	"git.home.luguber.info/inful/assemble/internal/observability"
)

// StageFn is one step of an assembly run.
type StageFn func(ctx context.Context) error

// StageDef names a stage for logs and metrics.
type StageDef struct {
	Name string
	Fn   StageFn
}

// runStages executes stages in order, recording timing and stopping on
// the first error. The scan stages all run before render-views, which
// is the barrier that makes the store immutable during rendering.
func (s *Session) runStages(ctx context.Context, stages []StageDef) error {
	for _, st := range stages {
		select {
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), errors.CategoryInternal, errors.SeverityFatal, "run canceled").
				WithContext("stage", st.Name)
		default:
		}

		sctx := observability.WithStage(ctx, st.Name)
		t0 := time.Now()
		err := st.Fn(sctx)
		d := time.Since(t0)

		s.recorder.ObserveStageDuration(st.Name, d)
		observability.DebugContext(sctx, "stage complete", slog.Duration(logfields.KeyDuration, d))

		if err != nil {
			return err
		}
	}
	return nil
}
