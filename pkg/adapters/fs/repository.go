package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/performer/pkg/core"
)

// DefaultExtension is used for documents whose ID carries no extension.
const DefaultExtension = ".md"

// Repository implements core.Repository on top of a directory tree:
// one file per document, the file path (minus the default extension) is the ID.
type Repository struct {
	Path        string
	config      Config
	serializers map[string]Serializer

	mu            sync.RWMutex
	watcherActive bool
}

// Config holds the configuration for the filesystem repository.
type Config struct {
	Path         string
	MustExist    bool
	Logger       *slog.Logger
	SystemDir    string      // e.g. ".performer", skipped when listing and watching
	Extension    string      // extension for new documents, defaults to ".md"
	ErrorHandler func(error) // receives watcher failures that are otherwise only logged
	Ignore       []string    // doublestar patterns, relative to Path, of files that are not documents
}

// NewRepository creates a new filesystem-backed repository.
func NewRepository(config Config) *Repository {
	if config.Extension == "" {
		config.Extension = DefaultExtension
	}
	if !strings.HasPrefix(config.Extension, ".") {
		config.Extension = "." + config.Extension
	}
	return &Repository{
		Path:        config.Path,
		config:      config,
		serializers: DefaultSerializers(),
	}
}

// RegisterSerializer adds or replaces the serializer for ext.
func (r *Repository) RegisterSerializer(ext string, s Serializer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.serializers[ext] = s
}

// Initialize creates the store directory, or checks it exists when MustExist is set.
func (r *Repository) Initialize(ctx context.Context) error {
	if r.config.MustExist {
		info, err := os.Stat(r.Path)
		if os.IsNotExist(err) {
			return fmt.Errorf("store path does not exist: %s", r.Path)
		}
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return fmt.Errorf("store path is not a directory: %s", r.Path)
		}
		return nil
	}

	if err := os.MkdirAll(r.Path, 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}
	return nil
}

// Save persists a document atomically.
//
// Workflow:
//  1. Resolve the filename (ID extension, "ext" metadata hint, or the default).
//  2. Create parent directories.
//  3. Serialize with the serializer registered for the extension and write atomically.
func (r *Repository) Save(ctx context.Context, doc core.Document) error {
	if doc.ID == "" {
		return core.ErrInvalidID
	}

	ext := filepath.Ext(doc.ID)
	if _, known := r.serializer(ext); !known {
		ext = r.config.Extension
		if val, ok := doc.Metadata["ext"].(string); ok && val != "" {
			ext = "." + strings.TrimPrefix(val, ".")
		}
	}

	filename := doc.ID
	if filepath.Ext(doc.ID) != ext {
		filename = doc.ID + ext
	}
	fullPath := filepath.Join(r.Path, filepath.FromSlash(filename))

	s, ok := r.serializer(ext)
	if !ok {
		return fmt.Errorf("no serializer registered for %s", ext)
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}

	data, err := s.Serialize(doc)
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}

	if err := writeFileAtomic(fullPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	r.logger().Debug("document written", "id", doc.ID, "path", fullPath)
	return nil
}

// Get retrieves a document from the filesystem.
func (r *Repository) Get(ctx context.Context, id string) (core.Document, error) {
	if id == "" {
		return core.Document{}, core.ErrInvalidID
	}

	fullPath, ext := r.locate(id)
	s, ok := r.serializer(ext)
	if !ok {
		return core.Document{}, fmt.Errorf("no serializer registered for %s", ext)
	}

	f, err := os.Open(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return core.Document{}, fmt.Errorf("%s: %w", id, core.ErrNotFound)
		}
		return core.Document{}, err
	}
	defer f.Close()

	doc, err := s.Parse(f)
	if err != nil {
		return core.Document{}, fmt.Errorf("failed to parse document %s: %w", id, err)
	}
	doc.ID = id

	return *doc, nil
}

// List walks the store and returns every parseable document, ordered by ID.
// Files that fail to parse are skipped and logged.
func (r *Repository) List(ctx context.Context) ([]core.Document, error) {
	var docs []core.Document

	err := filepath.WalkDir(r.Path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() {
			if path != r.Path && r.skipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if isTempFile(path) || r.ignored(path) {
			return nil
		}
		if _, ok := r.serializer(filepath.Ext(path)); !ok {
			return nil
		}

		id, err := r.resolveID(path)
		if err != nil {
			return err
		}

		doc, err := r.Get(ctx, id)
		if err != nil {
			r.logger().Warn("skipping unreadable document", "id", id, "error", err)
			return nil
		}
		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs, nil
}

// Delete removes a document from the filesystem.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return core.ErrInvalidID
	}

	fullPath, _ := r.locate(id)
	if err := os.Remove(fullPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %w", id, core.ErrNotFound)
		}
		return fmt.Errorf("failed to remove file: %w", err)
	}
	return nil
}

// locate maps an ID onto its file path and the extension deciding the format.
func (r *Repository) locate(id string) (string, string) {
	filename := id
	ext := filepath.Ext(id)
	if _, ok := r.serializer(ext); !ok {
		ext = r.config.Extension
		filename = id + ext
	}
	return filepath.Join(r.Path, filepath.FromSlash(filename)), ext
}

// resolveID converts an absolute file path back into a document ID.
// The default extension is stripped; any other extension is part of the ID.
func (r *Repository) resolveID(path string) (string, error) {
	rel, err := filepath.Rel(r.Path, path)
	if err != nil {
		return "", err
	}
	rel = filepath.ToSlash(rel)
	if strings.HasPrefix(rel, "../") {
		return "", fmt.Errorf("path %s is outside the store", path)
	}
	if filepath.Ext(rel) == r.config.Extension {
		rel = strings.TrimSuffix(rel, r.config.Extension)
	}
	return rel, nil
}

func (r *Repository) skipDir(name string) bool {
	if name == ".git" {
		return true
	}
	return r.config.SystemDir != "" && name == r.config.SystemDir
}

// ignored reports whether path matches one of the Ignore patterns.
func (r *Repository) ignored(path string) bool {
	rel, err := filepath.Rel(r.Path, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range r.config.Ignore {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

func (r *Repository) serializer(ext string) (Serializer, bool) {
	if ext == "" {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.serializers[ext]
	return s, ok
}

func (r *Repository) logger() *slog.Logger {
	if r.config.Logger != nil {
		return r.config.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
