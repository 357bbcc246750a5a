// Package performer adds presentation accessors to records without putting
// presentation code in the records themselves.
//
// A performer wraps a record and the capability registry produced by
// bootstrap. Every accessor is a pure function of those two values.
package performer

import (
	"strings"

	"github.com/aretw0/performer/pkg/article"
	"github.com/aretw0/performer/pkg/helper"
)

// ArticlesPriceAmount is the list price rendered by ArticlesPrice.
const ArticlesPriceAmount = 9.99

// ArticlesLabel is the text of the link to the articles index.
const ArticlesLabel = "Articles"

// ArticlePerformer exposes derived accessors for an Article.
type ArticlePerformer struct {
	article *article.Article
	helpers *helper.Registry
}

// NewArticlePerformer binds a to reg. reg must be wired before any accessor is used.
func NewArticlePerformer(a *article.Article, reg *helper.Registry) *ArticlePerformer {
	return &ArticlePerformer{article: a, helpers: reg}
}

// Article returns the wrapped record.
func (p *ArticlePerformer) Article() *article.Article {
	return p.article
}

// Class returns the type-level companion of the performer.
func (p *ArticlePerformer) Class() Class {
	return Class{helpers: p.helpers}
}

// AuthorFirstName returns the first whitespace-separated token of the author.
func (p *ArticlePerformer) AuthorFirstName() (string, error) {
	if !p.helpers.Wired() {
		return "", ErrNotWired
	}
	if p.article == nil {
		return "", ErrEmptyAuthor
	}
	fields := strings.Fields(p.article.Author)
	if len(fields) == 0 {
		return "", ErrEmptyAuthor
	}
	return fields[0], nil
}

// ArticlesLink renders the link to the articles index.
// It depends only on the registry, never on the article's fields.
func (p *ArticlePerformer) ArticlesLink() (string, error) {
	return articlesLink(p.helpers)
}

// CustomHelperMethod calls custom_article_helper_method. It fails with an
// *helper.UnknownOperationError when no custom module provides it.
func (p *ArticlePerformer) CustomHelperMethod() (any, error) {
	return p.helpers.Call("custom_article_helper_method")
}

// Call gives the performer the registry's full capability set.
func (p *ArticlePerformer) Call(name string, args ...any) (any, error) {
	return p.helpers.Call(name, args...)
}

// Path resolves a route for the article, e.g. "article" → /articles/<id>.
// The article fills the route's placeholder; routes without one, such as
// "articles", resolve as they are.
func (p *ArticlePerformer) Path(route string) (string, error) {
	r, ok := p.helpers.Route(route)
	if p.article == nil || (ok && len(r.Params()) == 0) {
		return p.helpers.ResolvePath(route)
	}
	return p.helpers.ResolvePath(route, p.article)
}

// Class is the type-level companion of ArticlePerformer.
// Its operations do not depend on any particular article.
type Class struct {
	helpers *helper.Registry
}

// NewClass binds the companion to reg.
func NewClass(reg *helper.Registry) Class {
	return Class{helpers: reg}
}

// ArticlesPrice formats ArticlesPriceAmount.
func (c Class) ArticlesPrice() (string, error) {
	return ArticlesPrice(c.helpers)
}

// Call gives the companion the registry's full capability set.
func (c Class) Call(name string, args ...any) (any, error) {
	return c.helpers.Call(name, args...)
}

// ArticlesPrice formats ArticlesPriceAmount with reg's currency formatter.
func ArticlesPrice(reg *helper.Registry) (string, error) {
	return reg.FormatCurrency(ArticlesPriceAmount)
}

func articlesLink(reg *helper.Registry) (string, error) {
	path, err := reg.ResolvePath("articles")
	if err != nil {
		return "", err
	}
	return reg.RenderLink(ArticlesLabel, path)
}
