package performer

import (
	"context"
	"log/slog"

	"github.com/aretw0/performer/internal/platform"
	"github.com/aretw0/performer/pkg/article"
	"github.com/aretw0/performer/pkg/bootstrap"
	"github.com/aretw0/performer/pkg/core"
	"github.com/aretw0/performer/pkg/helper"
	perf "github.com/aretw0/performer/pkg/performer"
)

// --- Types ---

// Project is an opened, wired project: storage, article store and wiring.
type Project = platform.Project

// Article is the persisted record.
type Article = article.Article

// ArticlePerformer exposes the derived accessors of an Article.
type ArticlePerformer = perf.ArticlePerformer

// Registry is the capability registry shared by every performer.
type Registry = helper.Registry

// Wiring is the result of bootstrap.
type Wiring = bootstrap.Wiring

// NewArticle builds an unsaved article.
func NewArticle(name, author string) *Article {
	return article.New(name, author)
}

// --- Configuration ---

// Option defines a functional option for configuring a project.
type Option = platform.Option

// WithLogger sets the logger for every component.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithRepository injects a custom storage adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// WithAdapter selects the storage adapter by name ("fs" or "sqlite").
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithDSN sets the sqlite data source.
func WithDSN(dsn string) Option {
	return platform.WithDSN(dsn)
}

// WithSystemDir sets the hidden directory name (e.g. ".performer").
func WithSystemDir(name string) Option {
	return platform.WithSystemDir(name)
}

// WithMustExist fails when the project directory is missing.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithReadOnly makes every write fail with core.ErrReadOnly.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithConfigFile reads configuration from path instead of <root>/performer.yaml.
func WithConfigFile(path string) Option {
	return platform.WithConfigFile(path)
}

// WithLocale sets the locale of the currency formatter.
func WithLocale(locale string) Option {
	return platform.WithLocale(locale)
}

// WithCurrency sets the ISO 4217 currency code.
func WithCurrency(code string) Option {
	return platform.WithCurrency(code)
}

// WithHelpersDir sets where custom helper definitions are discovered.
func WithHelpersDir(dir string) Option {
	return platform.WithHelpersDir(dir)
}

// WithPerformersDir sets where performer definitions are discovered.
func WithPerformersDir(dir string) Option {
	return platform.WithPerformersDir(dir)
}

// WithRoutes replaces the route table.
func WithRoutes(routes map[string]string) Option {
	return platform.WithRoutes(routes)
}

// --- Factory ---

// Open opens and wires the project at root.
func Open(ctx context.Context, root string, opts ...Option) (*Project, error) {
	return platform.Open(ctx, root, opts...)
}

// New creates the document service of the project at root, without wiring.
func New(root string, opts ...Option) (*core.Service, error) {
	return platform.New(root, opts...)
}

// FindRoot looks upwards for a project root.
func FindRoot(startDir string) (string, error) {
	return platform.FindRoot(startDir)
}
