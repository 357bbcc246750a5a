package helper

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Classify converts a definition file path into a type identifier:
// the directory and every extension are stripped, the snake_case (or kebab-case)
// base name becomes CamelCase.
//
//	Classify("app/helpers/articles_helper.yaml") // "ArticlesHelper"
//	Classify("article_performer.yml")            // "ArticlePerformer"
func Classify(path string) (string, error) {
	base := filepath.Base(filepath.ToSlash(path))
	if i := strings.IndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}

	parts := strings.FieldsFunc(base, func(r rune) bool {
		return r == '_' || r == '-' || unicode.IsSpace(r)
	})

	var b strings.Builder
	for _, part := range parts {
		r, size := utf8.DecodeRuneInString(part)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(part[size:])
	}

	if b.Len() == 0 {
		return "", fmt.Errorf("cannot derive a type identifier from %q", path)
	}
	return b.String(), nil
}
