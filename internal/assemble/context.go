package assemble

// BuildContext composes the flat render context for one view. Overlay
// order is a deliberate precedence chain: build-wide constants must not
// be shadowed by a page front-matter key colliding with a namespace
// name, while extra (module metadata synthesized for this render) wins
// over everything.
func (s *Session) BuildContext(viewData, extra map[string]any) map[string]any {
	ctx := map[string]any{}

	overlay := func(src map[string]any) {
		for k, v := range src {
			ctx[k] = v
		}
	}

	overlay(viewData)
	overlay(s.store.Data)
	overlay(s.store.MaterialData)
	overlay(s.cfg.BuildData)

	ctx[s.cfg.Keys.Materials] = s.store.MaterialsContext()
	ctx[s.cfg.Keys.Views] = s.store.ViewsContext()
	ctx[s.cfg.Keys.Docs] = s.store.DocsContext()

	overlay(extra)
	return ctx
}
