// Package store holds the in-memory assembly store: the namespaces the
// scanners populate and the render pass reads. The store is rebuilt
// from scratch on every run and never persisted.
package store

// Item is a single view or material inside a collection.
type Item struct {
	Name string         // display title
	Data map[string]any // front matter payload
}

// Collection groups items under a sub-directory name.
type Collection struct {
	Name  string
	Items map[string]Item
}

// Doc is a markdown documentation page rendered to HTML.
type Doc struct {
	Name    string
	Content string
}

// Store is the process-scoped assembly store. All scanners run to
// completion before any view is rendered, so the render pass sees an
// immutable, fully populated store regardless of scan order.
//
// Ids within a namespace are unique; a later scanned file with the
// same id overwrites the earlier one.
type Store struct {
	Layouts      map[string]string
	Data         map[string]any
	Materials    map[string]Collection
	MaterialData map[string]any
	Views        map[string]Collection
	Docs         map[string]Doc
}

// New returns an empty store with all namespaces allocated.
func New() *Store {
	s := &Store{}
	s.ResetLayouts()
	s.ResetData()
	s.ResetMaterials()
	s.ResetViews()
	s.ResetDocs()
	return s
}

// ResetLayouts clears the layouts namespace.
func (s *Store) ResetLayouts() { s.Layouts = map[string]string{} }

// ResetData clears the data namespace.
func (s *Store) ResetData() { s.Data = map[string]any{} }

// ResetMaterials clears the materials and materialData namespaces.
// The two are populated by the same scan and cleared together.
func (s *Store) ResetMaterials() {
	s.Materials = map[string]Collection{}
	s.MaterialData = map[string]any{}
}

// ResetViews clears the views namespace.
func (s *Store) ResetViews() { s.Views = map[string]Collection{} }

// ResetDocs clears the docs namespace.
func (s *Store) ResetDocs() { s.Docs = map[string]Doc{} }

// AddViewItem records a view item under its collection, creating the
// collection on first use. Collection-less views are not recorded.
// collectionName is the display title used when the collection is
// created.
func (s *Store) AddViewItem(collection, collectionName, id string, item Item) {
	if collection == "" {
		return
	}
	c, ok := s.Views[collection]
	if !ok {
		c = Collection{Name: collectionName, Items: map[string]Item{}}
		s.Views[collection] = c
	}
	c.Items[id] = item
}

// AddMaterialItem records a material item under its collection.
func (s *Store) AddMaterialItem(collection, collectionName, id string, item Item) {
	c, ok := s.Materials[collection]
	if !ok {
		c = Collection{Name: collectionName, Items: map[string]Item{}}
		s.Materials[collection] = c
	}
	c.Items[id] = item
}

// MaterialsContext returns the materials namespace as a plain map tree
// for template contexts.
func (s *Store) MaterialsContext() map[string]any { return collectionsContext(s.Materials) }

// ViewsContext returns the views namespace as a plain map tree for
// template contexts.
func (s *Store) ViewsContext() map[string]any { return collectionsContext(s.Views) }

// DocsContext returns the docs namespace as a plain map tree for
// template contexts.
func (s *Store) DocsContext() map[string]any {
	out := make(map[string]any, len(s.Docs))
	for id, d := range s.Docs {
		out[id] = map[string]any{"name": d.Name, "content": d.Content}
	}
	return out
}

func collectionsContext(cols map[string]Collection) map[string]any {
	out := make(map[string]any, len(cols))
	for id, c := range cols {
		items := make(map[string]any, len(c.Items))
		for iid, it := range c.Items {
			items[iid] = map[string]any{"name": it.Name, "data": it.Data}
		}
		out[id] = map[string]any{"name": c.Name, "items": items}
	}
	return out
}
