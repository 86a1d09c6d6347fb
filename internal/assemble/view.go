package assemble

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"git.home.luguber.info/inful/assemble/internal/collect"
	"git.home.luguber.info/inful/assemble/internal/errors"
	"git.home.luguber.info/inful/assemble/internal/frontmatter"
	"git.home.luguber.info/inful/assemble/internal/logfields"
	"git.home.luguber.info/inful/assemble/internal/metrics"
	"git.home.luguber.info/inful/assemble/internal/naming"
	"git.home.luguber.info/inful/assemble/internal/observability"
)

// Front-matter keys the writer consumes.
const (
	destKey     = "dest"
	destCopyKey = "dest-copy"
	layoutKey   = "layout"
	baseurlKey  = "baseurl"
)

// renderViews renders every view in glob-match order. A render failure
// for one view is logged and skipped; a write failure is fatal.
func (s *Session) renderViews(ctx context.Context) error {
	files, err := collect.ExpandGlobs(s.cfg.Views)
	if err != nil {
		return errors.Wrap(err, errors.CategoryScan, errors.SeverityFatal, "expanding view globs")
	}

	for _, file := range files {
		if err := s.renderView(observability.WithView(ctx, file), file); err != nil {
			return err
		}
	}
	return nil
}

// renderView runs the per-view algorithm: derive placement, parse,
// optionally module-wrap, compose with the layout, render, write.
func (s *Session) renderView(ctx context.Context, file string) error {
	id := naming.Name(file, false)
	collection := collect.Collection(file, s.cfg.ViewsRoot)
	outPath := filepath.Join(s.cfg.Dest, collection, filepath.Base(file))

	content, err := os.ReadFile(file)
	if err != nil {
		return errors.Wrap(err, errors.CategoryScan, errors.SeverityFatal, "reading view").
			WithContext("file", file)
	}
	viewData, body, err := frontmatter.Parse(content)
	if err != nil {
		return errors.Wrap(err, errors.CategoryDecode, errors.SeverityFatal, "decoding view front matter").
			WithContext("file", file)
	}
	pageBody := string(body)

	var extra map[string]any
	var wrapperBody string

	if s.isModuleView(file) {
		meta, inner, err := s.moduleWrap(id, collection, outPath, pageBody, viewData)
		if err != nil {
			return err
		}
		extra = meta.ContextFields()
		wrapperBody = inner
	} else {
		layoutID := s.cfg.Layout
		if l, ok := viewData[layoutKey].(string); ok && l != "" {
			layoutID = l
		}
		wrapperBody = s.store.Layouts[layoutID]
	}

	// Collection members live one directory down; give their links a
	// relative base to climb back out.
	if collection != "" {
		viewData[baseurlKey] = ".."
	}

	source := WrapPage(pageBody, wrapperBody)
	pageCtx := s.BuildContext(viewData, extra)

	rendered, err := s.engine.Render([]byte(source), pageCtx)
	if err != nil {
		// The one place with partial-failure tolerance: skip this view,
		// keep rendering the rest.
		s.renderFailures++
		s.recorder.IncViewResult(metrics.ResultRenderError)
		observability.ErrorContext(ctx, "render failed", logfields.Error(err))
		return nil
	}
	s.recorder.IncViewResult(metrics.ResultSuccess)

	return s.writeView(ctx, file, collection, outPath, viewData, rendered)
}

// writeView resolves the final output path and persists the rendered
// text, plus the optional duplicate copy.
func (s *Session) writeView(ctx context.Context, file, collection, outPath string, viewData map[string]any, rendered string) error {
	// Highest precedence first: explicit dest, then the collection
	// override map, then the computed default.
	if d, ok := viewData[destKey].(string); ok && d != "" {
		outPath = d
	} else if dir, ok := s.cfg.DestMap[collection]; ok && collection != "" {
		outPath = filepath.Join(dir, filepath.Base(file))
	}
	outPath = forceExtension(outPath, s.cfg.Extension)

	if err := writeFile(outPath, rendered); err != nil {
		return errors.Wrap(err, errors.CategoryWrite, errors.SeverityFatal, "writing rendered view "+file).
			WithContext("source", file).
			WithContext("dest", outPath)
	}
	s.written++
	s.recorder.IncFilesWritten()
	observability.DebugContext(ctx, "view written", logfields.Dest(outPath))

	if copyPath, ok := viewData[destCopyKey].(string); ok && copyPath != "" {
		if err := writeFile(copyPath, rendered); err != nil {
			return errors.Wrap(err, errors.CategoryWrite, errors.SeverityFatal, "writing dest-copy for "+file).
				WithContext("source", file).
				WithContext("dest", copyPath)
		}
		s.written++
		s.recorder.IncFilesWritten()
	}
	return nil
}

func (s *Session) isModuleView(file string) bool {
	if s.cfg.AutoModule == "" {
		return false
	}
	ok, err := doublestar.PathMatch(s.cfg.AutoModule, filepath.ToSlash(file))
	return err == nil && ok
}

func writeFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(content), 0o644)
}

// forceExtension swaps the path's extension for the configured one.
func forceExtension(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
