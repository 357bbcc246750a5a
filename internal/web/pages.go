package web

import (
	"html/template"

	"github.com/aretw0/performer/pkg/performer"
)

type listItem struct {
	Link template.HTML
	performer.View
}

type listPage struct {
	Items []listItem
	Price string
}

type showPage struct {
	performer.View
	Back template.HTML
}

var pages = template.Must(template.New("pages").Parse(`
{{define "list"}}<!DOCTYPE html>
<html><head><title>Articles</title></head>
<body>
<h1>Articles</h1>
<p>Price: {{.Price}}</p>
<ul>
{{range .Items}}<li>{{.Link}}{{with .AuthorFirstName}} by {{.}}{{end}}</li>
{{end}}</ul>
</body></html>
{{end}}
{{define "show"}}<!DOCTYPE html>
<html><head><title>{{.Name}}</title></head>
<body>
<h1>{{.Name}}</h1>
<p>{{.Author}}</p>
<p>Price: {{.ArticlesPrice}}</p>
{{with .CustomHelperMethod}}<p>{{.}}</p>{{end}}
<nav>{{.Back}}</nav>
</body></html>
{{end}}`))
