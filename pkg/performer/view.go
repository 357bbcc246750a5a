package performer

import (
	"errors"
	"time"

	"github.com/aretw0/performer/pkg/helper"
)

// View is a flat snapshot of an article and all of its derived accessors.
type View struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Author             string    `json:"author"`
	AuthorFirstName    string    `json:"author_first_name,omitempty"`
	ArticlesLink       string    `json:"articles_link"`
	ArticlesPrice      string    `json:"articles_price"`
	Path               string    `json:"path,omitempty"`
	CustomHelperMethod any       `json:"custom_helper_method,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
	Problems           []string  `json:"problems,omitempty"`
}

// View evaluates every accessor. An empty author or a missing custom helper
// is recorded in Problems; any other failure is returned.
func (p *ArticlePerformer) View() (View, error) {
	if !p.helpers.Wired() {
		return View{}, ErrNotWired
	}

	var v View
	if a := p.article; a != nil {
		v.ID = a.ID
		v.Name = a.Name
		v.Author = a.Author
		v.CreatedAt = a.CreatedAt
		v.UpdatedAt = a.UpdatedAt
	}

	var err error
	if v.AuthorFirstName, err = p.AuthorFirstName(); err != nil {
		if !errors.Is(err, ErrEmptyAuthor) {
			return View{}, err
		}
		v.Problems = append(v.Problems, err.Error())
	}
	if v.ArticlesLink, err = p.ArticlesLink(); err != nil {
		return View{}, err
	}
	if v.ArticlesPrice, err = p.Class().ArticlesPrice(); err != nil {
		return View{}, err
	}
	if v.ID != "" {
		if v.Path, err = p.Path("article"); err != nil && !errors.Is(err, helper.ErrUnknownOperation) {
			return View{}, err
		}
	}
	if v.CustomHelperMethod, err = p.CustomHelperMethod(); err != nil {
		if !errors.Is(err, helper.ErrUnknownOperation) {
			return View{}, err
		}
		v.Problems = append(v.Problems, err.Error())
	}
	return v, nil
}
