package article_test

import (
	"errors"
	"testing"

	"github.com/aretw0/performer/pkg/article"
)

func TestArticle_Validate(t *testing.T) {
	tests := []struct {
		name    string
		article *article.Article
		valid   bool
	}{
		{"name present", article.New("name_1", "first_1 last_1"), true},
		{"name without author", article.New("name_1", ""), true},
		{"name empty", article.New("", "first_1 last_1"), false},
		{"name blank", article.New("   ", "first_1 last_1"), false},
		{"nil article", nil, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.article.Validate()
			if tc.valid {
				if err != nil {
					t.Fatalf("expected valid, got %v", err)
				}
				if !tc.article.Valid() {
					t.Error("Valid() disagrees with Validate()")
				}
				return
			}

			var verr *article.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if verr.Field != "name" || verr.Reason != article.ReasonMissing {
				t.Errorf("unexpected error contents: %+v", verr)
			}
			if !errors.Is(err, article.ErrValidation) {
				t.Error("expected errors.Is(err, ErrValidation)")
			}
		})
	}
}

func TestValidationError_Message(t *testing.T) {
	err := &article.ValidationError{Field: "name", Reason: article.ReasonMissing}
	if got, want := err.Error(), "validation failed: name is missing"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestArticle_ToParam(t *testing.T) {
	a := &article.Article{ID: article.IDPrefix + "42"}
	if got := a.ToParam(); got != "42" {
		t.Errorf("expected 42, got %q", got)
	}
	if got := article.IDFromParam("42"); got != a.ID {
		t.Errorf("expected %q, got %q", a.ID, got)
	}
	if got := article.IDFromParam(a.ID); got != a.ID {
		t.Errorf("IDFromParam should keep a full ID, got %q", got)
	}
}
