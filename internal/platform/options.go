package platform

import (
	"log/slog"

	"github.com/aretw0/performer/pkg/core"
)

// options holds the internal configuration for a performer project.
// Zero values mean "not set": they are filled from performer.yaml, then from defaults.
type options struct {
	repository   core.Repository
	logger       *slog.Logger
	adapter      string
	dsn          string
	systemDir    string
	extension    string
	mustExist    bool
	readOnly     bool
	serializers  map[string]any
	errorHandler func(error)

	configFile    string
	locale        string
	currency      string
	helpersDir    string
	performersDir string
	routes        map[string]string
}

// Option defines a functional option for configuring a project.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		serializers: make(map[string]any),
	}
}

func apply(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets the logger for every component.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRepository injects a storage adapter (e.g. a mock). The adapter option is ignored.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// WithAdapter selects the storage adapter by name: "fs" (default) or "sqlite".
func WithAdapter(name string) Option {
	return func(o *options) {
		o.adapter = name
	}
}

// WithDSN sets the sqlite data source. Defaults to <root>/.performer/performer.db.
func WithDSN(dsn string) Option {
	return func(o *options) {
		o.dsn = dsn
	}
}

// WithSystemDir sets the hidden directory name. Defaults to ".performer".
func WithSystemDir(name string) Option {
	return func(o *options) {
		o.systemDir = name
	}
}

// WithExtension sets the file extension of new fs documents. Defaults to ".md".
func WithExtension(ext string) Option {
	return func(o *options) {
		o.extension = ext
	}
}

// WithMustExist fails initialization when the project directory is missing.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.mustExist = must
	}
}

// WithReadOnly makes every write fail with core.ErrReadOnly.
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.readOnly = enabled
	}
}

// WithSerializer registers a custom fs serializer for an extension.
// s must implement fs.Serializer; this is checked by Init.
func WithSerializer(ext string, s any) Option {
	return func(o *options) {
		o.serializers[ext] = s
	}
}

// WithWatcherErrorHandler receives errors from the watch loop.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.errorHandler = fn
	}
}

// WithConfigFile reads configuration from path instead of <root>/performer.yaml.
func WithConfigFile(path string) Option {
	return func(o *options) {
		o.configFile = path
	}
}

// WithLocale sets the locale of the currency formatter.
func WithLocale(locale string) Option {
	return func(o *options) {
		o.locale = locale
	}
}

// WithCurrency sets the ISO 4217 currency code.
func WithCurrency(code string) Option {
	return func(o *options) {
		o.currency = code
	}
}

// WithHelpersDir sets where custom helper definitions are discovered.
func WithHelpersDir(dir string) Option {
	return func(o *options) {
		o.helpersDir = dir
	}
}

// WithPerformersDir sets where performer definitions are discovered.
func WithPerformersDir(dir string) Option {
	return func(o *options) {
		o.performersDir = dir
	}
}

// WithRoutes replaces the route table.
func WithRoutes(routes map[string]string) Option {
	return func(o *options) {
		o.routes = routes
	}
}
