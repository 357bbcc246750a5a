package helper_test

import (
	"testing"

	"github.com/aretw0/performer/pkg/helper"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"articles_helper.yaml", "ArticlesHelper"},
		{"app/helpers/articles_helper.yaml", "ArticlesHelper"},
		{"app/performers/article_performer.yml", "ArticlePerformer"},
		{"text-helper.yaml", "TextHelper"},
		{"markdown_helper.tar.yaml", "MarkdownHelper"},
		{"already_CamelCase.yaml", "AlreadyCamelCase"},
		{"__double__underscore.yaml", "DoubleUnderscore"},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := helper.Classify(tc.in)
			if err != nil {
				t.Fatalf("Classify(%q) failed: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("Classify(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}

	for _, bad := range []string{"", ".yaml", "___.yaml"} {
		if _, err := helper.Classify(bad); err == nil {
			t.Errorf("Classify(%q): expected error", bad)
		}
	}
}
