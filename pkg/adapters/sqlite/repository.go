// Package sqlite implements core.Repository on a single SQLite table using the
// pure-Go modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/introspection"
	_ "modernc.org/sqlite"

	"github.com/aretw0/performer/pkg/core"
)

const schema = `CREATE TABLE IF NOT EXISTS documents (
	id         TEXT PRIMARY KEY,
	content    TEXT NOT NULL DEFAULT '',
	metadata   TEXT NOT NULL DEFAULT '{}',
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
)`

// Config holds the configuration for the SQLite repository.
type Config struct {
	DSN    string // file path or ":memory:"
	Logger *slog.Logger
	Now    func() time.Time

	// ReadOnly opens an existing database with mode=ro and leaves the schema alone.
	ReadOnly bool
}

// Repository stores each document as a row; metadata is kept as a JSON object.
type Repository struct {
	db     *sql.DB
	config Config
}

// NewRepository creates a repository. The database is opened by Initialize.
func NewRepository(config Config) *Repository {
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if config.Now == nil {
		config.Now = time.Now
	}
	return &Repository{config: config}
}

// Initialize opens the database and creates the documents table.
// A read-only repository only checks that the database can be reached.
func (r *Repository) Initialize(ctx context.Context) error {
	readOnly := r.config.ReadOnly && r.config.DSN != ":memory:"
	if r.db == nil {
		dsn := r.config.DSN
		if readOnly {
			dsn = readOnlyDSN(dsn)
		}
		db, err := sql.Open("sqlite", dsn)
		if err != nil {
			return fmt.Errorf("failed to open sqlite database: %w", err)
		}
		// One connection: ":memory:" databases are per-connection.
		db.SetMaxOpenConns(1)
		r.db = db
	}

	if readOnly {
		if err := r.db.PingContext(ctx); err != nil {
			return fmt.Errorf("failed to open sqlite database read-only: %w", err)
		}
		r.config.Logger.Debug("sqlite store ready", "dsn", r.config.DSN, "mode", "ro")
		return nil
	}
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	r.config.Logger.Debug("sqlite store ready", "dsn", r.config.DSN)
	return nil
}

// readOnlyDSN turns a file path or file: URI into a URI carrying mode=ro.
func readOnlyDSN(dsn string) string {
	if !strings.HasPrefix(dsn, "file:") {
		dsn = "file:" + filepath.ToSlash(dsn)
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&mode=ro"
	}
	return dsn + "?mode=ro"
}

// Save inserts or updates a document.
func (r *Repository) Save(ctx context.Context, doc core.Document) error {
	if doc.ID == "" {
		return core.ErrInvalidID
	}
	if r.db == nil {
		return errors.New("sqlite repository is not initialized")
	}

	meta := doc.Metadata
	if meta == nil {
		meta = core.Metadata{}
	}
	data, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("failed to encode metadata: %w", err)
	}

	now := r.config.Now().UTC().Format(time.RFC3339Nano)
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO documents (id, content, metadata, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			content = excluded.content,
			metadata = excluded.metadata,
			updated_at = excluded.updated_at`,
		doc.ID, doc.Content, string(data), now, now)
	if err != nil {
		return fmt.Errorf("failed to save %s: %w", doc.ID, err)
	}
	return nil
}

// Get retrieves a document by ID.
func (r *Repository) Get(ctx context.Context, id string) (core.Document, error) {
	if id == "" {
		return core.Document{}, core.ErrInvalidID
	}
	if r.db == nil {
		return core.Document{}, errors.New("sqlite repository is not initialized")
	}

	row := r.db.QueryRowContext(ctx, `SELECT id, content, metadata FROM documents WHERE id = ?`, id)
	doc, err := scanDocument(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Document{}, fmt.Errorf("%s: %w", id, core.ErrNotFound)
	}
	return doc, err
}

// List returns all documents ordered by ID.
func (r *Repository) List(ctx context.Context) ([]core.Document, error) {
	if r.db == nil {
		return nil, errors.New("sqlite repository is not initialized")
	}

	rows, err := r.db.QueryContext(ctx, `SELECT id, content, metadata FROM documents ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var docs []core.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

// Delete removes a document by ID.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return core.ErrInvalidID
	}
	if r.db == nil {
		return errors.New("sqlite repository is not initialized")
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM documents WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", id, core.ErrNotFound)
	}
	return nil
}

// Close releases the database handle.
func (r *Repository) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDocument(s scanner) (core.Document, error) {
	var (
		doc  core.Document
		meta string
	)
	if err := s.Scan(&doc.ID, &doc.Content, &meta); err != nil {
		return core.Document{}, err
	}
	doc.Metadata = core.Metadata{}
	if err := json.Unmarshal([]byte(meta), &doc.Metadata); err != nil {
		return core.Document{}, fmt.Errorf("failed to decode metadata of %s: %w", doc.ID, err)
	}
	return doc, nil
}

// RepositoryState exposes internal state for observability.
type RepositoryState struct {
	DSN  string `json:"dsn"`
	Open bool   `json:"open"`
}

// State implements introspection.Introspectable.
func (r *Repository) State() any {
	return RepositoryState{DSN: r.config.DSN, Open: r.db != nil}
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "sqlite"
}

var _ core.Repository = (*Repository)(nil)
var _ introspection.Introspectable = (*Repository)(nil)
var _ introspection.Component = (*Repository)(nil)
