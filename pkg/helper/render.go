package helper

import (
	"html/template"
	"strings"
)

var linkTemplate = template.Must(template.New("link").Parse(`<a href="{{.Href}}">{{.Label}}</a>`))

// LinkRenderer produces HTML anchors. Labels and hrefs are escaped contextually,
// unsafe URL schemes are neutralized by html/template.
type LinkRenderer struct{}

// RenderLink returns <a href="path">label</a>.
func (LinkRenderer) RenderLink(label, path string) (string, error) {
	var b strings.Builder
	err := linkTemplate.Execute(&b, struct {
		Href  string
		Label string
	}{Href: path, Label: label})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

// EscapeHTML escapes text for inclusion in HTML bodies.
func (LinkRenderer) EscapeHTML(text string) string {
	return template.HTMLEscapeString(text)
}
