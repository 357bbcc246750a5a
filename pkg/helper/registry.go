package helper

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
)

// Native operation names.
const (
	OpFormatCurrency = "format_currency"
	OpResolvePath    = "resolve_path"
	OpRenderLink     = "render_link"
)

// Rendering helper names.
const (
	OpNumberToCurrency = "number_to_currency"
	OpLinkTo           = "link_to"
	OpEscapeHTML       = "escape_html"
)

// Registry is the immutable capability facade. Use a Builder to create one.
// The zero value is an unwired registry: every operation returns ErrNotWired.
type Registry struct {
	currency  *CurrencyFormatter
	routes    *RouteTable
	links     LinkRenderer
	native    map[string]Operation
	rendering map[string]Operation
	modules   []moduleOps
	wired     bool
}

type moduleOps struct {
	name string
	ops  map[string]Operation
}

// Wired reports whether the registry was produced by Builder.Build.
func (r *Registry) Wired() bool {
	return r != nil && r.wired
}

// FormatCurrency renders amount in the registry's locale and currency.
func (r *Registry) FormatCurrency(amount float64) (string, error) {
	if !r.Wired() {
		return "", ErrNotWired
	}
	return r.currency.Format(amount)
}

// ResolvePath maps a symbolic route name to a URL path.
func (r *Registry) ResolvePath(route string, params ...any) (string, error) {
	if !r.Wired() {
		return "", ErrNotWired
	}
	return r.routes.Path(route, params...)
}

// RenderLink produces an HTML anchor for label pointing at path.
func (r *Registry) RenderLink(label, path string) (string, error) {
	if !r.Wired() {
		return "", ErrNotWired
	}
	return r.links.RenderLink(label, path)
}

// Routes exposes the route table, e.g. to mount HTTP handlers on the same names.
func (r *Registry) Routes() []Route {
	if !r.Wired() {
		return nil
	}
	return r.routes.Routes()
}

// Call resolves name against, in order: native operations, the route resolver,
// the rendering helpers and the custom modules in discovery order.
func (r *Registry) Call(name string, args ...any) (any, error) {
	op, err := r.resolve(name)
	if err != nil {
		return nil, err
	}
	return op(args...)
}

// Has reports whether Call would find name.
func (r *Registry) Has(name string) bool {
	_, err := r.resolve(name)
	return err == nil
}

// Operations returns every callable name, sorted.
func (r *Registry) Operations() []string {
	if !r.Wired() {
		return nil
	}

	seen := make(map[string]bool)
	add := func(name string) { seen[name] = true }
	for name := range r.native {
		add(name)
	}
	for _, route := range r.routes.Routes() {
		add(route.Name)
		add(route.Name + "_path")
	}
	for name := range r.rendering {
		add(name)
	}
	for _, m := range r.modules {
		for name := range m.ops {
			add(name)
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Route returns the route answering name, with or without the "_path" suffix.
func (r *Registry) Route(name string) (Route, bool) {
	if r == nil {
		return Route{}, false
	}
	return r.routes.Lookup(name)
}

// Modules returns the custom module names in resolution order.
func (r *Registry) Modules() []string {
	if !r.Wired() {
		return nil
	}
	names := make([]string, len(r.modules))
	for i, m := range r.modules {
		names[i] = m.name
	}
	return names
}

// Provider returns the module that would answer name, or a capability group
// label ("native", "routes", "rendering") for built-in operations.
func (r *Registry) Provider(name string) (string, error) {
	if !r.Wired() {
		return "", ErrNotWired
	}
	if _, ok := r.native[name]; ok {
		return "native", nil
	}
	if _, ok := r.routeOperation(name); ok {
		return "routes", nil
	}
	if _, ok := r.rendering[name]; ok {
		return "rendering", nil
	}
	for _, m := range r.modules {
		if _, ok := m.ops[name]; ok {
			return m.name, nil
		}
	}
	return "", &UnknownOperationError{Name: name}
}

func (r *Registry) resolve(name string) (Operation, error) {
	if !r.Wired() {
		return nil, ErrNotWired
	}
	if op, ok := r.native[name]; ok {
		return op, nil
	}
	if op, ok := r.routeOperation(name); ok {
		return op, nil
	}
	if op, ok := r.rendering[name]; ok {
		return op, nil
	}
	for _, m := range r.modules {
		if op, ok := m.ops[name]; ok {
			return op, nil
		}
	}
	return nil, &UnknownOperationError{Name: name}
}

// routeOperation answers both "<route>_path" and the bare "<route>".
func (r *Registry) routeOperation(name string) (Operation, bool) {
	if _, ok := r.routes.Lookup(name); !ok {
		return nil, false
	}
	return func(args ...any) (any, error) {
		return r.routes.Path(name, args...)
	}, true
}

func (r *Registry) installBuiltins() {
	r.native = map[string]Operation{
		OpFormatCurrency: func(args ...any) (any, error) {
			amount, err := FloatArg(args, 0)
			if err != nil {
				return nil, err
			}
			return r.currency.Format(amount)
		},
		OpResolvePath: func(args ...any) (any, error) {
			route, err := StringArg(args, 0)
			if err != nil {
				return nil, err
			}
			return r.routes.Path(route, args[1:]...)
		},
		OpRenderLink: r.linkOperation,
	}

	r.rendering = map[string]Operation{
		OpNumberToCurrency: r.native[OpFormatCurrency],
		OpLinkTo:           r.linkOperation,
		OpEscapeHTML: func(args ...any) (any, error) {
			text, err := StringArg(args, 0)
			if err != nil {
				return nil, err
			}
			return r.links.EscapeHTML(text), nil
		},
	}
}

func (r *Registry) linkOperation(args ...any) (any, error) {
	label, err := StringArg(args, 0)
	if err != nil {
		return nil, err
	}
	path, err := StringArg(args, 1)
	if err != nil {
		return nil, err
	}
	return r.links.RenderLink(label, path)
}

// Builder assembles a Registry. It is the only mutable phase of a registry's life.
type Builder struct {
	locale   string
	currency string
	routes   map[string]string
	modules  []Module
	logger   *slog.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithLocale sets the BCP 47 locale used by currency formatting.
func WithLocale(locale string) Option {
	return func(b *Builder) { b.locale = locale }
}

// WithCurrency sets the ISO 4217 currency code.
func WithCurrency(code string) Option {
	return func(b *Builder) { b.currency = code }
}

// WithRoutes replaces the default route table.
func WithRoutes(routes map[string]string) Option {
	return func(b *Builder) { b.routes = routes }
}

// WithLogger sets the logger used while building.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) { b.logger = logger }
}

// NewBuilder creates a Builder with en-US/USD and DefaultRoutes.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		locale:   DefaultLocale,
		currency: DefaultCurrency,
		routes:   DefaultRoutes(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		b.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return b
}

// Use appends a custom module. Modules are consulted in the order they were added.
func (b *Builder) Use(m Module) *Builder {
	b.modules = append(b.modules, m)
	return b
}

// Build validates the configuration and returns a wired, immutable Registry.
func (b *Builder) Build() (*Registry, error) {
	formatter, err := NewCurrencyFormatter(b.locale, b.currency)
	if err != nil {
		return nil, err
	}
	routes, err := NewRouteTable(b.routes)
	if err != nil {
		return nil, err
	}

	r := &Registry{currency: formatter, routes: routes}
	r.installBuiltins()

	seen := make(map[string]bool, len(b.modules))
	for _, m := range b.modules {
		if m == nil {
			return nil, fmt.Errorf("nil helper module")
		}
		name := m.Name()
		if seen[name] {
			return nil, fmt.Errorf("helper module %s registered twice", name)
		}
		seen[name] = true

		ops := make(map[string]Operation)
		for opName, op := range m.Operations() {
			if op == nil {
				return nil, fmt.Errorf("helper module %s: operation %s is nil", name, opName)
			}
			ops[opName] = op
		}
		r.modules = append(r.modules, moduleOps{name: name, ops: ops})
		b.logger.Debug("helper module merged", "module", name, "operations", len(ops))
	}

	r.wired = true
	return r, nil
}
