// Package article defines the Article record and its persistence.
//
// An Article only knows its fields and how to validate them. Presentation
// accessors live in package performer.
package article

import (
	"strings"
	"time"
)

// Article is a persisted record. Timestamps are assigned by the Store.
type Article struct {
	ID        string    `json:"-"`
	Name      string    `json:"name"`
	Author    string    `json:"author"` // "First Last"
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// New builds an unsaved article.
func New(name, author string) *Article {
	return &Article{Name: name, Author: author}
}

// Validate reports whether the article may be saved.
// A missing name yields a *ValidationError for field "name".
func (a *Article) Validate() error {
	if a == nil || strings.TrimSpace(a.Name) == "" {
		return &ValidationError{Field: "name", Reason: ReasonMissing}
	}
	return nil
}

// Valid is the boolean form of Validate.
func (a *Article) Valid() bool {
	return a.Validate() == nil
}

// ToParam is the value an article contributes to a route: its ID without IDPrefix.
func (a *Article) ToParam() string {
	return strings.TrimPrefix(a.ID, IDPrefix)
}

// IDFromParam reverses ToParam.
func IDFromParam(param string) string {
	if strings.HasPrefix(param, IDPrefix) {
		return param
	}
	return IDPrefix + param
}
