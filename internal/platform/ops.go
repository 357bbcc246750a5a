package platform

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/performer/pkg/adapters/fs"
	"github.com/aretw0/performer/pkg/adapters/sqlite"
	"github.com/aretw0/performer/pkg/core"
)

// Init opens the repository selected by the options for the project at uri
// and makes sure its storage is ready.
func Init(uri string, opts ...Option) (core.Repository, error) {
	o := apply(opts)
	if err := o.resolve(uri); err != nil {
		return nil, err
	}
	return o.open(uri)
}

func (o *options) open(root string) (core.Repository, error) {
	repo := o.repository
	if repo == nil {
		var err error
		switch o.adapter {
		case "fs":
			repo, err = o.initFS(root)
		case "sqlite":
			repo, err = o.initSQLite(root)
		default:
			return nil, fmt.Errorf("unknown adapter: %s", o.adapter)
		}
		if err != nil {
			return nil, err
		}
	}

	if o.readOnly {
		repo = core.ReadOnly(repo)
	}
	if err := repo.Initialize(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}

func (o *options) initFS(root string) (core.Repository, error) {
	repo := fs.NewRepository(fs.Config{
		Path:         root,
		MustExist:    o.mustExist || o.readOnly,
		Logger:       o.logger,
		SystemDir:    o.systemDir,
		Extension:    o.extension,
		ErrorHandler: o.errorHandler,
		Ignore:       o.ignorePatterns(root),
	})

	for ext, s := range o.serializers {
		serializer, ok := s.(fs.Serializer)
		if !ok {
			return nil, fmt.Errorf("serializer for %s must implement fs.Serializer", ext)
		}
		repo.RegisterSerializer(ext, serializer)
	}
	return repo, nil
}

func (o *options) initSQLite(root string) (core.Repository, error) {
	if o.mustExist {
		if _, err := os.Stat(root); err != nil {
			return nil, fmt.Errorf("project path does not exist: %s", root)
		}
	}
	if o.dsn != ":memory:" && !strings.HasPrefix(o.dsn, "file:") && !o.readOnly {
		if err := os.MkdirAll(filepath.Dir(o.dsn), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	return sqlite.NewRepository(sqlite.Config{DSN: o.dsn, Logger: o.logger, ReadOnly: o.readOnly}), nil
}

// ignorePatterns keeps configuration files out of the document listing.
func (o *options) ignorePatterns(root string) []string {
	patterns := []string{ConfigFileName}
	for _, dir := range []string{o.helpersDir, o.performersDir} {
		rel, err := filepath.Rel(root, dir)
		if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
			continue
		}
		patterns = append(patterns, filepath.ToSlash(rel)+"/**")
	}
	return patterns
}
