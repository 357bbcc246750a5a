// Package bootstrap wires the capability registry and the performers once,
// at startup, before anything is served.
//
// Order matters: performers are discovered first, then custom helper modules
// are merged into the registry, and only then is the wiring marked Wired.
// A failed run leaves nothing wired.
package bootstrap

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/aretw0/performer/pkg/article"
	"github.com/aretw0/performer/pkg/helper"
	"github.com/aretw0/performer/pkg/helpers"
	"github.com/aretw0/performer/pkg/performer"
)

var (
	// ErrAlreadyWired is returned when Run is called on a wired Wiring.
	ErrAlreadyWired = errors.New("already wired")

	// ErrBootstrap classifies every failure reported by Run.
	ErrBootstrap = helper.ErrBootstrap
)

// State is the lifecycle state of a Wiring.
type State int

const (
	Unwired State = iota
	Wired
)

func (s State) String() string {
	switch s {
	case Wired:
		return "wired"
	default:
		return "unwired"
	}
}

// Config selects where definitions are discovered and how the registry is built.
type Config struct {
	// HelpersDir holds custom helper definitions (articles_helper.yaml). Optional.
	HelpersDir string
	// PerformersDir holds performer definitions (article_performer.yaml).
	// When missing every performer in Performers is enabled.
	PerformersDir string

	Locale   string
	Currency string
	Routes   map[string]string

	// Helpers defaults to helpers.Catalog().
	Helpers helper.Catalog
	// Performers defaults to performer.DefaultCatalog().
	Performers performer.Catalog

	Logger *slog.Logger
}

// Binding records a performer and the custom modules merged into it.
type Binding struct {
	performer.Definition
	Modules []string
}

// Wiring is the result of bootstrap. After Run succeeds it is read-only.
type Wiring struct {
	cfg    Config
	logger *slog.Logger

	mu         sync.RWMutex
	state      State
	registry   *helper.Registry
	performers []Binding
}

// New prepares an unwired Wiring.
func New(cfg Config) *Wiring {
	if cfg.Helpers == nil {
		cfg.Helpers = helpers.Catalog()
	}
	if cfg.Performers == nil {
		cfg.Performers = performer.DefaultCatalog()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Wiring{cfg: cfg, logger: logger}
}

// Run creates a Wiring from cfg and wires it.
func Run(ctx context.Context, cfg Config) (*Wiring, error) {
	w := New(cfg)
	if err := w.Run(ctx); err != nil {
		return nil, err
	}
	return w, nil
}

// Run performs the Unwired → Wired transition. It can succeed only once.
func (w *Wiring) Run(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state == Wired {
		return ErrAlreadyWired
	}

	definitions, err := performer.Discover(w.cfg.PerformersDir, w.cfg.Performers)
	if err != nil {
		return err
	}
	for _, def := range definitions {
		w.logger.Debug("performer discovered", "performer", def.Name, "record", def.Record)
	}

	if err := ctx.Err(); err != nil {
		return &helper.BootstrapError{Err: err}
	}

	modules, err := helper.Discover(w.cfg.HelpersDir, w.cfg.Helpers)
	if err != nil {
		return err
	}

	var opts []helper.Option
	if w.cfg.Locale != "" {
		opts = append(opts, helper.WithLocale(w.cfg.Locale))
	}
	if w.cfg.Currency != "" {
		opts = append(opts, helper.WithCurrency(w.cfg.Currency))
	}
	if len(w.cfg.Routes) > 0 {
		opts = append(opts, helper.WithRoutes(w.cfg.Routes))
	}
	opts = append(opts, helper.WithLogger(w.logger))

	builder := helper.NewBuilder(opts...)
	names := make([]string, 0, len(modules))
	for _, m := range modules {
		w.logger.Debug("helper module discovered", "module", m.Name())
		builder.Use(m)
		names = append(names, m.Name())
	}

	registry, err := builder.Build()
	if err != nil {
		return &helper.BootstrapError{Err: err}
	}

	bindings := make([]Binding, 0, len(definitions))
	for _, def := range definitions {
		bindings = append(bindings, Binding{Definition: def, Modules: append([]string(nil), names...)})
	}

	w.registry = registry
	w.performers = bindings
	w.state = Wired

	w.logger.Info("wiring complete",
		"performers", len(bindings),
		"helpers", len(names),
		"operations", len(registry.Operations()),
	)
	return nil
}

// State reports whether Run has succeeded.
func (w *Wiring) State() State {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.state
}

// Registry returns the capability registry, or nil while unwired.
func (w *Wiring) Registry() *helper.Registry {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.registry
}

// Performers returns the enabled performers in discovery order.
func (w *Wiring) Performers() []Binding {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return append([]Binding(nil), w.performers...)
}

// Article binds a to the registry. Used before Run, every accessor of the
// returned performer fails with performer.ErrNotWired.
func (w *Wiring) Article(a *article.Article) *performer.ArticlePerformer {
	return performer.NewArticlePerformer(a, w.Registry())
}

// ArticleClass returns the type-level ArticlePerformer companion.
func (w *Wiring) ArticleClass() performer.Class {
	return performer.NewClass(w.Registry())
}
