// Package render adapts the scriggo templating engine to the assembly
// pipeline. The engine receives a composed template source and a flat
// context; context keys become template globals.
package render

import (
	"bytes"
	"go/token"
	"io/fs"
	"os"
	"reflect"
	"unicode"

	"github.com/open2b/scriggo"
	"github.com/open2b/scriggo/native"

	"git.home.luguber.info/inful/assemble/internal/markdown"
)

// entryName is the synthetic path the composed view source is mounted
// at inside the engine's file system. The .html extension selects the
// HTML context-aware format.
const entryName = "__view__.html"

// Engine renders composed view sources. Includes, imports and extends
// clauses resolve against the configured source roots.
type Engine struct {
	roots []fs.FS
	base  native.Declarations
}

// NewEngine builds an engine with the given source roots and
// extensions. roots are directory paths; extensions become globals
// available to every template.
func NewEngine(roots []string, exts []Extension) *Engine {
	fsRoots := make([]fs.FS, 0, len(roots))
	for _, r := range roots {
		fsRoots = append(fsRoots, os.DirFS(r))
	}

	base := native.Declarations{}
	for _, ext := range exts {
		base[ext.Name()] = ext.Declaration()
	}

	return &Engine{roots: fsRoots, base: base}
}

// Render compiles source with ctx as globals and returns the rendered
// text. Both build and run failures are returned to the caller; the
// pipeline recovers from them per view.
func (e *Engine) Render(source []byte, ctx map[string]any) (string, error) {
	decls := native.Declarations{}
	for k, v := range e.base {
		decls[k] = v
	}
	for k, v := range ctx {
		// Keys that are not valid identifiers (dest-copy, ordering
		// prefixed ids) cannot be referenced from template syntax;
		// declaring them would fail the build.
		if !validIdent(k) {
			continue
		}
		decls[k] = globalVar(v)
	}

	fsys := &overlayFS{
		entry: scriggo.Files{entryName: source},
		roots: e.roots,
	}

	opts := &scriggo.BuildOptions{
		Globals:           decls,
		MarkdownConverter: markdown.Convert,
	}
	tpl, err := scriggo.BuildTemplate(fsys, entryName, opts)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tpl.Run(&buf, nil, nil); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func validIdent(name string) bool {
	if name == "" || token.IsKeyword(name) {
		return false
	}
	for i, r := range name {
		if unicode.IsLetter(r) || r == '_' || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return false
	}
	return true
}

// globalVar turns a context value into a scriggo global variable
// declaration: a pointer to a variable of the value's concrete type.
func globalVar(v any) any {
	if v == nil {
		return new(any)
	}
	rv := reflect.New(reflect.TypeOf(v))
	rv.Elem().Set(reflect.ValueOf(v))
	return rv.Interface()
}

// overlayFS serves the synthetic entry file first, then falls back to
// the configured source roots in order.
type overlayFS struct {
	entry scriggo.Files
	roots []fs.FS
}

func (o *overlayFS) Open(name string) (fs.File, error) {
	if f, err := o.entry.Open(name); err == nil {
		return f, nil
	}
	for _, r := range o.roots {
		if f, err := r.Open(name); err == nil {
			return f, nil
		}
	}
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
}
