package platform_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/performer/internal/platform"
	"github.com/aretw0/performer/pkg/article"
	"github.com/aretw0/performer/pkg/core"
	"github.com/aretw0/performer/pkg/helper"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestOpen_FS(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, platform.ConfigFileName), "currency: USD\n")
	writeFile(t, filepath.Join(root, ".performer", "helpers", "articles_helper.yaml"), "")

	ctx := context.Background()
	project, err := platform.Open(ctx, root)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer project.Close()

	a := article.New("name_1", "first_1 last_1")
	if err := project.Articles.Create(ctx, a); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(a.ID)+".md")); err != nil {
		t.Errorf("expected article file on disk: %v", err)
	}

	list, err := project.Articles.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 article, got %d", len(list))
	}

	p := project.Wiring.Article(list[0])
	custom, err := p.CustomHelperMethod()
	if err != nil {
		t.Fatalf("CustomHelperMethod failed: %v", err)
	}
	if custom != "custom article helper method" {
		t.Errorf("unexpected custom helper result %v", custom)
	}

	docs, err := project.Service.ListDocuments(ctx)
	if err != nil {
		t.Fatal(err)
	}
	for _, d := range docs {
		if d.ID == "performer" {
			t.Error("config file must not be listed as a document")
		}
	}
}

func TestOpen_SQLite(t *testing.T) {
	root := t.TempDir()
	ctx := context.Background()

	project, err := platform.Open(ctx, root, platform.WithAdapter("sqlite"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer project.Close()

	a := article.New("name_1", "first_1 last_1")
	if err := project.Articles.Create(ctx, a); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	got, err := project.Articles.Get(ctx, a.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Name != "name_1" {
		t.Errorf("unexpected article %+v", got)
	}
	if _, err := os.Stat(filepath.Join(root, ".performer", "performer.db")); err != nil {
		t.Errorf("expected database file: %v", err)
	}
}

func TestOpen_UnknownHelperIsFatal(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".performer", "helpers", "ghost_helper.yaml"), "")

	project, err := platform.Open(context.Background(), root)
	if !errors.Is(err, helper.ErrBootstrap) {
		t.Fatalf("expected bootstrap failure, got %v", err)
	}
	if project != nil {
		t.Error("no project must be returned on failure")
	}
}

func TestOpen_ReadOnly(t *testing.T) {
	root := t.TempDir()
	ctx := context.Background()

	project, err := platform.Open(ctx, root, platform.WithReadOnly(true))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	err = project.Articles.Create(ctx, article.New("n", "a"))
	if !errors.Is(err, core.ErrReadOnly) {
		t.Errorf("expected ErrReadOnly, got %v", err)
	}
}

func TestNew_UnknownAdapter(t *testing.T) {
	_, err := platform.New(t.TempDir(), platform.WithAdapter("s3"))
	if err == nil {
		t.Fatal("expected error for unknown adapter")
	}
}

func TestNew_InvalidSerializer(t *testing.T) {
	_, err := platform.New(t.TempDir(), platform.WithSerializer(".txt", "not a serializer"))
	if err == nil {
		t.Fatal("expected error for invalid serializer")
	}
}

func TestBootstrapConfig(t *testing.T) {
	root := t.TempDir()
	cfg, err := platform.BootstrapConfig(root, platform.WithLocale("en-GB"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Locale != "en-GB" {
		t.Errorf("unexpected locale %s", cfg.Locale)
	}
	if cfg.HelpersDir != filepath.Join(root, ".performer", "helpers") {
		t.Errorf("unexpected helpers dir %s", cfg.HelpersDir)
	}
}

func TestOpen_ReadOnlySQLite(t *testing.T) {
	root := t.TempDir()
	ctx := context.Background()

	writer, err := platform.Open(ctx, root, platform.WithAdapter("sqlite"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := writer.Articles.Create(ctx, article.New("name_1", "first_1 last_1")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatal(err)
	}

	project, err := platform.Open(ctx, root, platform.WithAdapter("sqlite"), platform.WithReadOnly(true))
	if err != nil {
		t.Fatalf("read-only Open failed: %v", err)
	}
	defer project.Close()

	list, err := project.Articles.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 1 || list[0].Name != "name_1" {
		t.Fatalf("expected the stored article, got %+v", list)
	}
	err = project.Articles.Create(ctx, article.New("name_2", "first_2 last_2"))
	if !errors.Is(err, core.ErrReadOnly) {
		t.Errorf("expected ErrReadOnly, got %v", err)
	}
}

func TestOpen_ReadOnlyMissingProject(t *testing.T) {
	root := filepath.Join(t.TempDir(), "missing")

	if _, err := platform.Open(context.Background(), root, platform.WithReadOnly(true)); err == nil {
		t.Fatal("expected read-only open of a missing project to fail")
	}
	if _, err := os.Stat(root); !os.IsNotExist(err) {
		t.Errorf("read-only open must not create the project directory: %v", err)
	}
}
