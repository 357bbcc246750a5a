package performer_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/performer/pkg/article"
	"github.com/aretw0/performer/pkg/helper"
	"github.com/aretw0/performer/pkg/helpers"
	"github.com/aretw0/performer/pkg/performer"
)

func wired(t *testing.T, withCustom bool) *helper.Registry {
	t.Helper()
	b := helper.NewBuilder()
	if withCustom {
		m, err := helpers.NewArticlesHelper(helper.Definition{})
		require.NoError(t, err)
		b.Use(m)
	}
	reg, err := b.Build()
	require.NoError(t, err)
	return reg
}

func TestArticlePerformer_Scenario(t *testing.T) {
	reg := wired(t, true)
	a := &article.Article{ID: "articles/1", Name: "name_1", Author: "first_1 last_1"}
	p := performer.NewArticlePerformer(a, reg)

	first, err := p.AuthorFirstName()
	require.NoError(t, err)
	assert.Equal(t, "first_1", first)

	link, err := p.ArticlesLink()
	require.NoError(t, err)
	assert.Equal(t, `<a href="/articles">Articles</a>`, link)

	custom, err := p.CustomHelperMethod()
	require.NoError(t, err)
	assert.Equal(t, helpers.DefaultArticlesMessage, custom)

	path, err := p.Path("article")
	require.NoError(t, err)
	assert.Equal(t, "/articles/1", path)
}

func TestArticlePerformer_PathWithoutPlaceholder(t *testing.T) {
	reg := wired(t, false)
	p := performer.NewArticlePerformer(&article.Article{ID: "articles/1", Name: "name_1", Author: "first_1 last_1"}, reg)

	for route, want := range map[string]string{
		"articles":      "/articles",
		"articles_path": "/articles",
		"new_article":   "/articles/new",
		"edit_article":  "/articles/1/edit",
	} {
		path, err := p.Path(route)
		require.NoError(t, err, route)
		assert.Equal(t, want, path, route)
	}

	_, err := p.Path("nowhere")
	assert.ErrorIs(t, err, helper.ErrUnknownOperation)
}

func TestArticlePerformer_AuthorFirstName(t *testing.T) {
	reg := wired(t, false)

	tests := []struct {
		author string
		want   string
		err    error
	}{
		{author: "first_1 last_1", want: "first_1"},
		{author: "Ada", want: "Ada"},
		{author: "  Grace   Brewster Hopper ", want: "Grace"},
		{author: "", err: performer.ErrEmptyAuthor},
		{author: " \t\n", err: performer.ErrEmptyAuthor},
	}

	for _, tc := range tests {
		t.Run(tc.author, func(t *testing.T) {
			p := performer.NewArticlePerformer(&article.Article{Name: "n", Author: tc.author}, reg)
			got, err := p.AuthorFirstName()
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestArticlePerformer_LinkIndependentOfRecord(t *testing.T) {
	reg := wired(t, false)
	a := performer.NewArticlePerformer(&article.Article{Name: "a", Author: "x y"}, reg)
	b := performer.NewArticlePerformer(&article.Article{Name: "b", Author: "z"}, reg)

	la, err := a.ArticlesLink()
	require.NoError(t, err)
	lb, err := b.ArticlesLink()
	require.NoError(t, err)
	assert.Equal(t, la, lb)

	path, err := reg.ResolvePath("articles")
	require.NoError(t, err)
	expected, err := reg.RenderLink("Articles", path)
	require.NoError(t, err)
	assert.Equal(t, expected, la)
}

func TestArticlePerformer_Idempotent(t *testing.T) {
	reg := wired(t, true)
	a := &article.Article{Name: "name_1", Author: "first_1 last_1"}
	p := performer.NewArticlePerformer(a, reg)

	v1, err := p.View()
	require.NoError(t, err)
	v2, err := p.View()
	require.NoError(t, err)
	assert.Equal(t, v1, v2)
	assert.Equal(t, &article.Article{Name: "name_1", Author: "first_1 last_1"}, a)
}

func TestArticlesPrice(t *testing.T) {
	reg := wired(t, false)

	price, err := performer.ArticlesPrice(reg)
	require.NoError(t, err)
	expected, err := reg.FormatCurrency(9.99)
	require.NoError(t, err)
	assert.Equal(t, expected, price)

	viaClass, err := performer.NewClass(reg).ArticlesPrice()
	require.NoError(t, err)
	assert.Equal(t, price, viaClass)

	viaInstance, err := performer.NewArticlePerformer(nil, reg).Class().ArticlesPrice()
	require.NoError(t, err)
	assert.Equal(t, price, viaInstance)
}

func TestArticlePerformer_CustomHelperOptional(t *testing.T) {
	p := performer.NewArticlePerformer(&article.Article{Name: "n", Author: "a"}, wired(t, false))

	_, err := p.CustomHelperMethod()
	var unknown *helper.UnknownOperationError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "custom_article_helper_method", unknown.Name)

	v, err := p.View()
	require.NoError(t, err)
	assert.Nil(t, v.CustomHelperMethod)
	assert.Len(t, v.Problems, 1)
}

func TestArticlePerformer_Unwired(t *testing.T) {
	a := &article.Article{Name: "name_1", Author: "first_1 last_1"}

	for _, reg := range []*helper.Registry{nil, {}} {
		p := performer.NewArticlePerformer(a, reg)

		_, err := p.AuthorFirstName()
		assert.ErrorIs(t, err, performer.ErrNotWired)
		_, err = p.ArticlesLink()
		assert.ErrorIs(t, err, performer.ErrNotWired)
		_, err = p.CustomHelperMethod()
		assert.ErrorIs(t, err, performer.ErrNotWired)
		_, err = p.Class().ArticlesPrice()
		assert.ErrorIs(t, err, performer.ErrNotWired)
		_, err = p.View()
		assert.ErrorIs(t, err, performer.ErrNotWired)
	}
}

func TestView_JSON(t *testing.T) {
	reg := wired(t, true)
	p := performer.NewArticlePerformer(&article.Article{ID: "articles/7", Name: "Go", Author: ""}, reg)

	v, err := p.View()
	require.NoError(t, err)
	assert.Equal(t, "/articles/7", v.Path)
	assert.Equal(t, []string{performer.ErrEmptyAuthor.Error()}, v.Problems)

	data, err := json.Marshal(v)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, `<a href="/articles">Articles</a>`, decoded["articles_link"])
	assert.Equal(t, helpers.DefaultArticlesMessage, decoded["custom_helper_method"])
	assert.NotContains(t, decoded, "author_first_name")
}

func TestDiscover(t *testing.T) {
	catalog := performer.DefaultCatalog()

	t.Run("MissingDirectoryEnablesCatalog", func(t *testing.T) {
		defs, err := performer.Discover(filepath.Join(t.TempDir(), "none"), catalog)
		require.NoError(t, err)
		require.Len(t, defs, 1)
		assert.Equal(t, performer.ArticlePerformerName, defs[0].Name)
		assert.Equal(t, "Article", defs[0].Record)
	})

	t.Run("KnownFile", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "article_performer.yaml"), nil, 0644))

		defs, err := performer.Discover(dir, catalog)
		require.NoError(t, err)
		require.Len(t, defs, 1)
		assert.Contains(t, defs[0].Operations, "articles_link")
	})

	t.Run("UnknownFileIsFatal", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "comment_performer.yml"), nil, 0644))

		_, err := performer.Discover(dir, catalog)
		var bootErr *helper.BootstrapError
		require.ErrorAs(t, err, &bootErr)
		assert.Equal(t, "CommentPerformer", bootErr.Identifier)
		assert.ErrorIs(t, err, helper.ErrBootstrap)
	})
}
