package helpers

import (
	"github.com/aretw0/performer/pkg/helper"
)

const (
	ArticlesHelperName = "ArticlesHelper"

	OpCustomArticleHelperMethod = "custom_article_helper_method"

	// DefaultArticlesMessage is returned by custom_article_helper_method unless
	// the definition sets options.message.
	DefaultArticlesMessage = "custom article helper method"
)

// ArticlesHelper is the application-specific helper for article pages.
type ArticlesHelper struct {
	message string
}

// NewArticlesHelper is the catalog factory for ArticlesHelper.
func NewArticlesHelper(def helper.Definition) (helper.Module, error) {
	return &ArticlesHelper{message: optionString(def, "message", DefaultArticlesMessage)}, nil
}

func (h *ArticlesHelper) Name() string { return ArticlesHelperName }

func (h *ArticlesHelper) Operations() map[string]helper.Operation {
	return map[string]helper.Operation{
		OpCustomArticleHelperMethod: func(args ...any) (any, error) {
			return h.message, nil
		},
	}
}
