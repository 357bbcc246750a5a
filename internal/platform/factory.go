package platform

import (
	"context"
	"io"
	"log/slog"

	"github.com/aretw0/performer/pkg/article"
	"github.com/aretw0/performer/pkg/bootstrap"
	"github.com/aretw0/performer/pkg/core"
)

// New opens the document service of the project at uri.
func New(uri string, opts ...Option) (*core.Service, error) {
	o := apply(opts)
	if err := o.resolve(uri); err != nil {
		return nil, err
	}
	repo, err := o.open(uri)
	if err != nil {
		return nil, err
	}
	return core.NewService(repo, o.logger), nil
}

// Project is an opened, wired performer project.
type Project struct {
	Root     string
	Service  *core.Service
	Articles *article.Store
	Wiring   *bootstrap.Wiring
}

// Open opens the project at root: storage first, then the bootstrap wiring.
// Nothing is returned unless both succeed.
func Open(ctx context.Context, root string, opts ...Option) (*Project, error) {
	o := apply(opts)
	if err := o.resolve(root); err != nil {
		return nil, err
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	wiring, err := bootstrap.Run(ctx, o.bootstrapConfig())
	if err != nil {
		return nil, err
	}

	repo, err := o.open(root)
	if err != nil {
		return nil, err
	}
	svc := core.NewService(repo, o.logger)

	o.logger.Debug("project opened", "root", root, "adapter", o.adapter)
	return &Project{
		Root:     root,
		Service:  svc,
		Articles: article.NewStore(svc),
		Wiring:   wiring,
	}, nil
}

// BootstrapConfig returns the wiring configuration the options resolve to for root.
func BootstrapConfig(root string, opts ...Option) (bootstrap.Config, error) {
	o := apply(opts)
	if err := o.resolve(root); err != nil {
		return bootstrap.Config{}, err
	}
	return o.bootstrapConfig(), nil
}

func (o *options) bootstrapConfig() bootstrap.Config {
	return bootstrap.Config{
		HelpersDir:    o.helpersDir,
		PerformersDir: o.performersDir,
		Locale:        o.locale,
		Currency:      o.currency,
		Routes:        o.routes,
		Logger:        o.logger,
	}
}

// Close releases the storage.
func (p *Project) Close() error {
	return p.Service.Close()
}
