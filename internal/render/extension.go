package render

import "github.com/open2b/scriggo/native"

// Extension contributes one named declaration to the templating
// engine: a render-time tag handler or a global function. Extensions
// are supplied at engine construction; there is no runtime
// registration.
type Extension interface {
	Name() string
	Declaration() any
}

// GlobalFunc exposes Fn to templates under Key.
type GlobalFunc struct {
	Key string
	Fn  any
}

func (g GlobalFunc) Name() string     { return g.Key }
func (g GlobalFunc) Declaration() any { return g.Fn }

// TagFunc exposes a markup-producing handler to templates under Key.
// The handler should return native.HTML so its output is not escaped.
type TagFunc struct {
	Key string
	Fn  any
}

func (t TagFunc) Name() string     { return t.Key }
func (t TagFunc) Declaration() any { return t.Fn }

// HTML re-exports the engine's raw-markup type so extension authors do
// not import the engine package directly.
type HTML = native.HTML
