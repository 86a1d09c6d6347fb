package assemble

import (
	"os"
	"regexp"

	"git.home.luguber.info/inful/assemble/internal/errors"
	"git.home.luguber.info/inful/assemble/internal/frontmatter"
	"git.home.luguber.info/inful/assemble/internal/naming"
)

var bodyPlaceholder = regexp.MustCompile(`\{%\s*body\s*%\}`)

// WrapPage substitutes the page body for every body placeholder inside
// the wrapper. Without a wrapper the page body is the template source
// as-is. Substitution is literal text only; deeper nesting is the
// templating engine's own include mechanism.
func WrapPage(pageBody, wrapperBody string) string {
	if wrapperBody == "" {
		return pageBody
	}
	return bodyPlaceholder.ReplaceAllLiteralString(wrapperBody, pageBody)
}

// ModuleAssembler is the optional callback a module-wrapped view's
// assemble context value comes from.
type ModuleAssembler interface {
	Assemble(name, path string) (any, error)
}

// ModuleMetadata is the context a module-wrapped view renders with,
// exposing the view's own source and placement to the wrapper shell.
type ModuleMetadata struct {
	Name       string
	Slug       string
	Path       string
	Source     string
	Collection string
	Data       map[string]any
	Assemble   any
}

// ContextFields flattens the metadata into the front-matter key names
// templates consume.
func (m ModuleMetadata) ContextFields() map[string]any {
	fields := map[string]any{
		"fabricator":    true,
		"module_name":   m.Name,
		"module_slug":   m.Slug,
		"module_path":   m.Path,
		"module_source": m.Source,
		"collection":    m.Collection,
		"module_data":   m.Data,
	}
	if m.Assemble != nil {
		fields["assemble"] = m.Assemble
	}
	return fields
}

// moduleWrap performs the pre-render module step for a view matching
// the auto-module pattern: it loads the wrapper template body and
// synthesizes the module metadata, invoking the configured assembler
// if any.
func (s *Session) moduleWrap(id, collection, outPath, pageBody string, viewData map[string]any) (ModuleMetadata, string, error) {
	content, err := os.ReadFile(s.cfg.ModuleWrapper)
	if err != nil {
		return ModuleMetadata{}, "", errors.Wrap(err, errors.CategoryScan, errors.SeverityFatal, "reading module wrapper").
			WithContext("file", s.cfg.ModuleWrapper)
	}
	_, wrapperBody, err := frontmatter.Parse(content)
	if err != nil {
		return ModuleMetadata{}, "", errors.Wrap(err, errors.CategoryDecode, errors.SeverityFatal, "decoding module wrapper").
			WithContext("file", s.cfg.ModuleWrapper)
	}

	// Snapshot the front matter for introspection inside the wrapper.
	snapshot := make(map[string]any, len(viewData))
	for k, v := range viewData {
		snapshot[k] = v
	}

	meta := ModuleMetadata{
		Name:       id,
		Slug:       naming.Slug(id),
		Path:       outPath,
		Source:     pageBody,
		Collection: collection,
		Data:       snapshot,
	}

	if s.assembler != nil {
		result, err := s.assembler.Assemble(id, outPath)
		if err != nil {
			return ModuleMetadata{}, "", errors.Wrap(err, errors.CategoryInternal, errors.SeverityFatal, "module assemble callback").
				WithContext("module", id)
		}
		meta.Assemble = result
	}

	return meta, string(wrapperBody), nil
}
