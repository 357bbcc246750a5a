// Package performer is the composition root of the performer library.
//
// An Article record stays free of presentation code. Derived values such as
// the author's first name, a link to the articles index or a formatted price
// are computed by an ArticlePerformer, which delegates to a capability
// Registry assembled once at startup.
//
// Bootstrap discovers performer definitions and custom helper modules from
// two directories. File names map to type identifiers by convention
// (articles_helper.yaml → ArticlesHelper) and each identifier must be listed
// in a static catalog; an unknown file stops the process.
//
// Usage:
//
//	project, err := performer.Open(ctx, ".",
//		performer.WithAdapter("sqlite"),
//		performer.WithLogger(logger),
//	)
//
//	a := performer.NewArticle("Hello", "Ada Lovelace")
//	err = project.Articles.Create(ctx, a)
//
//	link, err := project.Wiring.Article(a).ArticlesLink()
package performer
