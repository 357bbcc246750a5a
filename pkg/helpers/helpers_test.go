package helpers_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/performer/pkg/helper"
	"github.com/aretw0/performer/pkg/helpers"
)

func build(t *testing.T, id string, options map[string]any) helper.Module {
	t.Helper()
	factory, ok := helpers.Catalog()[id]
	require.True(t, ok, "catalog is missing %s", id)
	m, err := factory(helper.Definition{Identifier: id, Options: options})
	require.NoError(t, err)
	require.Equal(t, id, m.Name())
	return m
}

func call(t *testing.T, m helper.Module, op string, args ...any) any {
	t.Helper()
	fn, ok := m.Operations()[op]
	require.True(t, ok, "%s does not provide %s", m.Name(), op)
	out, err := fn(args...)
	require.NoError(t, err)
	return out
}

func TestCatalog(t *testing.T) {
	assert.Equal(t,
		[]string{"ArticlesHelper", "MarkdownHelper", "TextHelper"},
		helpers.Catalog().Names())
}

func TestArticlesHelper(t *testing.T) {
	m := build(t, helpers.ArticlesHelperName, nil)
	assert.Equal(t, helpers.DefaultArticlesMessage, call(t, m, helpers.OpCustomArticleHelperMethod))
	// Pure: repeated calls agree.
	assert.Equal(t, call(t, m, helpers.OpCustomArticleHelperMethod), call(t, m, helpers.OpCustomArticleHelperMethod))

	custom := build(t, helpers.ArticlesHelperName, map[string]any{"message": "hello"})
	assert.Equal(t, "hello", call(t, custom, helpers.OpCustomArticleHelperMethod))
}

func TestTextHelper(t *testing.T) {
	m := build(t, helpers.TextHelperName, nil)

	t.Run("NumberWithDelimiter", func(t *testing.T) {
		assert.Equal(t, "1,234,567", call(t, m, helpers.OpNumberWithDelimiter, 1234567))
		assert.Equal(t, "-1,000", call(t, m, helpers.OpNumberWithDelimiter, int64(-1000)))
		assert.Equal(t, "1,234.5", call(t, m, helpers.OpNumberWithDelimiter, 1234.5))

		_, err := m.Operations()[helpers.OpNumberWithDelimiter]("many")
		assert.Error(t, err)
	})

	t.Run("Pluralize", func(t *testing.T) {
		assert.Equal(t, "1 article", call(t, m, helpers.OpPluralize, 1, "article"))
		assert.Equal(t, "2 articles", call(t, m, helpers.OpPluralize, 2, "article"))
		assert.Equal(t, "3 people", call(t, m, helpers.OpPluralize, 3, "person", "people"))
	})

	t.Run("Truncate", func(t *testing.T) {
		assert.Equal(t, "short", call(t, m, helpers.OpTruncate, "short"))
		assert.Equal(t, "Once upon...", call(t, m, helpers.OpTruncate, "Once upon a time in a world", 12))
		long := strings.Repeat("a", 40)
		assert.Equal(t, strings.Repeat("a", 27)+"...", call(t, m, helpers.OpTruncate, long))
	})

	t.Run("TimeAgoInWords", func(t *testing.T) {
		now := time.Date(2017, 7, 3, 12, 0, 0, 0, time.UTC)
		th := m.(*helpers.TextHelper).WithNow(func() time.Time { return now })
		assert.Equal(t, "3 hours ago", call(t, th, helpers.OpTimeAgoInWords, now.Add(-3*time.Hour)))
		assert.Equal(t, "3 hours ago", call(t, th, helpers.OpTimeAgoInWords, now.Add(-3*time.Hour).Format(time.RFC3339)))
	})
}

func TestTextHelper_Options(t *testing.T) {
	m := build(t, helpers.TextHelperName, map[string]any{"length": 5, "omission": "~"})
	assert.Equal(t, "abcd~", call(t, m, helpers.OpTruncate, "abcdefgh"))

	_, err := helpers.NewTextHelper(helper.Definition{Options: map[string]any{"length": 0}})
	assert.Error(t, err)
}

func TestMarkdownHelper(t *testing.T) {
	m := build(t, helpers.MarkdownHelperName, nil)

	out := call(t, m, helpers.OpMarkdownify, "# Title\n\nSome *emphasis*.")
	assert.Contains(t, out, "<h1>Title</h1>")
	assert.Contains(t, out, "<em>emphasis</em>")

	raw := call(t, m, helpers.OpMarkdownify, "<script>alert(1)</script>")
	assert.NotContains(t, raw, "<script>")

	unsafe := build(t, helpers.MarkdownHelperName, map[string]any{"unsafe": true})
	assert.Contains(t, call(t, unsafe, helpers.OpMarkdownify, "<b>bold</b>"), "<b>bold</b>")
}

func TestCatalog_InRegistry(t *testing.T) {
	b := helper.NewBuilder()
	for _, id := range helpers.Catalog().Names() {
		b.Use(build(t, id, nil))
	}
	reg, err := b.Build()
	require.NoError(t, err)

	out, err := reg.Call(helpers.OpCustomArticleHelperMethod)
	require.NoError(t, err)
	assert.Equal(t, helpers.DefaultArticlesMessage, out)

	provider, err := reg.Provider(helpers.OpMarkdownify)
	require.NoError(t, err)
	assert.Equal(t, helpers.MarkdownHelperName, provider)
}
