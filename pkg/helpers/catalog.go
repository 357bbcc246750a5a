// Package helpers holds the custom helper modules that can be enabled by
// dropping a definition file into the helpers directory.
//
// The catalog is static: a file named text_helper.yaml enables TextHelper only
// because TextHelper is listed in Catalog.
package helpers

import (
	"github.com/aretw0/performer/pkg/helper"
)

// Catalog returns every known custom helper module keyed by type identifier.
func Catalog() helper.Catalog {
	return helper.Catalog{
		ArticlesHelperName: NewArticlesHelper,
		TextHelperName:     NewTextHelper,
		MarkdownHelperName: NewMarkdownHelper,
	}
}

func optionString(def helper.Definition, key, fallback string) string {
	if v, ok := def.Options[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

func optionInt(def helper.Definition, key string, fallback int) int {
	switch v := def.Options[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return fallback
}

func optionBool(def helper.Definition, key string, fallback bool) bool {
	if v, ok := def.Options[key].(bool); ok {
		return v
	}
	return fallback
}
