// Package collect populates the assembly store. Four independent
// scanners (layouts, data, views, docs) plus the materials scan each
// clear their namespace, expand their configured globs and decode every
// matched file. A single decode failure aborts the whole scan; there is
// no per-file recovery.
package collect

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/assemble/internal/config"
	aerr "git.home.luguber.info/inful/assemble/internal/errors"
	"git.home.luguber.info/inful/assemble/internal/frontmatter"
	"git.home.luguber.info/inful/assemble/internal/markdown"
	"git.home.luguber.info/inful/assemble/internal/naming"
	"git.home.luguber.info/inful/assemble/internal/store"
)

// notesKey is stripped from view front matter before storage; notes are
// documentation-only metadata.
const notesKey = "notes"

// Collector scans the source tree into a store.
type Collector struct {
	cfg   *config.Config
	store *store.Store
}

// New returns a Collector bound to cfg and st.
func New(cfg *config.Config, st *store.Store) *Collector {
	return &Collector{cfg: cfg, store: st}
}

// All runs every scanner. The render pass must only start after All
// returns, so each view sees the fully populated store.
func (c *Collector) All() error {
	if err := c.Layouts(); err != nil {
		return err
	}
	if err := c.Data(); err != nil {
		return err
	}
	if err := c.Materials(); err != nil {
		return err
	}
	if err := c.Views(); err != nil {
		return err
	}
	return c.Docs()
}

// Layouts scans layout and layout-include files into the layouts
// namespace as raw template text.
func (c *Collector) Layouts() error {
	c.store.ResetLayouts()

	patterns := append(append([]string{}, c.cfg.Layouts...), c.cfg.LayoutIncludes...)
	files, err := ExpandGlobs(patterns)
	if err != nil {
		return scanErr(err, "expanding layout globs")
	}

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return scanErr(err, "reading layout").WithContext("file", file)
		}
		c.store.Layouts[naming.Name(file, false)] = string(content)
	}
	return nil
}

// Data scans structured data files into the data namespace. YAML and
// JSON both decode through the YAML loader.
func (c *Collector) Data() error {
	c.store.ResetData()

	files, err := ExpandGlobs(c.cfg.Data)
	if err != nil {
		return scanErr(err, "expanding data globs")
	}

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return scanErr(err, "reading data file").WithContext("file", file)
		}
		var value any
		if err := yaml.Unmarshal(content, &value); err != nil {
			return decodeErr(err, "decoding data file").WithContext("file", file)
		}
		c.store.Data[naming.Name(file, false)] = value
	}
	return nil
}

// Materials scans reusable template fragments. Each material's front
// matter lands both on its collection item and, flattened by id, in
// the materialData namespace.
func (c *Collector) Materials() error {
	c.store.ResetMaterials()

	files, err := ExpandGlobs(c.cfg.Materials)
	if err != nil {
		return scanErr(err, "expanding material globs")
	}

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return scanErr(err, "reading material").WithContext("file", file)
		}
		data, _, err := frontmatter.Parse(content)
		if err != nil {
			return decodeErr(err, "decoding material front matter").WithContext("file", file)
		}

		id := naming.Name(file, false)
		collection := naming.Name(filepath.Base(filepath.Dir(file)), false)
		c.store.AddMaterialItem(collection, naming.TitleCase(collection), id, store.Item{
			Name: naming.TitleCase(id),
			Data: data,
		})
		if len(data) > 0 {
			c.store.MaterialData[id] = data
		}
	}
	return nil
}

// Views scans view files. A view belongs to a collection iff its
// immediate parent directory differs from the views root keyword;
// collection-less views are not recorded in the namespace.
func (c *Collector) Views() error {
	c.store.ResetViews()

	files, err := ExpandGlobs(c.cfg.Views)
	if err != nil {
		return scanErr(err, "expanding view globs")
	}

	for _, file := range files {
		collection := Collection(file, c.cfg.ViewsRoot)
		if collection == "" {
			continue
		}

		content, err := os.ReadFile(file)
		if err != nil {
			return scanErr(err, "reading view").WithContext("file", file)
		}
		data, _, err := frontmatter.Parse(content)
		if err != nil {
			return decodeErr(err, "decoding view front matter").WithContext("file", file)
		}
		delete(data, notesKey)

		id := naming.Name(file, true)
		c.store.AddViewItem(collection, naming.TitleCase(collection), id, store.Item{
			Name: naming.TitleCase(id),
			Data: data,
		})
	}
	return nil
}

// Docs scans markdown documentation into the docs namespace, rendered
// to HTML.
func (c *Collector) Docs() error {
	c.store.ResetDocs()

	files, err := ExpandGlobs(c.cfg.Docs)
	if err != nil {
		return scanErr(err, "expanding doc globs")
	}

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return scanErr(err, "reading doc").WithContext("file", file)
		}
		html, err := markdown.ToHTML(content)
		if err != nil {
			return decodeErr(err, "rendering doc markdown").WithContext("file", file)
		}

		id := naming.Name(file, false)
		c.store.Docs[id] = store.Doc{
			Name:    naming.TitleCase(id),
			Content: string(html),
		}
	}
	return nil
}

// Collection derives a view's collection from its immediate parent
// directory, empty when the parent is the views root keyword.
func Collection(file, viewsRoot string) string {
	parent := filepath.Base(filepath.Dir(file))
	if parent == viewsRoot || parent == "." || parent == string(filepath.Separator) {
		return ""
	}
	return parent
}

func scanErr(err error, msg string) *aerr.AssembleError {
	return aerr.Wrap(err, aerr.CategoryScan, aerr.SeverityFatal, msg)
}

func decodeErr(err error, msg string) *aerr.AssembleError {
	return aerr.Wrap(err, aerr.CategoryDecode, aerr.SeverityFatal, msg)
}
