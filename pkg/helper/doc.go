// Package helper is the capability registry that presenters delegate to.
//
// A Registry aggregates four capability groups behind one lookup:
//
//   - native operations (format_currency, resolve_path, render_link),
//   - the route resolver (one "<name>_path" operation per named route),
//   - the rendering helpers (number_to_currency, link_to, escape_html),
//   - custom modules discovered from a helpers directory.
//
// Call resolves names in that order and fails with *UnknownOperationError on a
// miss. Registries are assembled once through a Builder and are immutable
// afterwards, so concurrent reads need no locking.
//
// Usage:
//
//	modules, err := helper.Discover("app/helpers", helpers.Catalog())
//	b := helper.NewBuilder(helper.WithLocale("en-US"))
//	for _, m := range modules {
//		b.Use(m)
//	}
//	reg, err := b.Build()
//	path, err := reg.ResolvePath("articles")
//	link, err := reg.RenderLink("Articles", path) // <a href="/articles">Articles</a>
package helper
