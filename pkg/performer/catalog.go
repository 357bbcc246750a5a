package performer

import (
	"fmt"
	"sort"

	"github.com/aretw0/performer/pkg/helper"
)

// ArticlePerformerName is the type identifier of ArticlePerformer.
const ArticlePerformerName = "ArticlePerformer"

// Definition describes a performer known at compile time.
type Definition struct {
	Name       string
	Record     string
	Operations []string
}

// Catalog maps type identifiers to performer definitions.
type Catalog map[string]Definition

// DefaultCatalog lists every performer in this module.
func DefaultCatalog() Catalog {
	return Catalog{
		ArticlePerformerName: {
			Name:   ArticlePerformerName,
			Record: "Article",
			Operations: []string{
				"articles_price",
				"author_first_name",
				"articles_link",
				"custom_helper_method",
			},
		},
	}
}

// Names returns the identifiers in the catalog, sorted.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Discover returns the performers enabled in dir, in file name order.
// Files follow the helper naming convention (article_performer.yaml).
// Without a directory every catalog entry is enabled.
func Discover(dir string, catalog Catalog) ([]Definition, error) {
	defs, err := helper.ScanDefinitions(dir)
	if err != nil {
		return nil, err
	}

	if len(defs) == 0 {
		all := make([]Definition, 0, len(catalog))
		for _, name := range catalog.Names() {
			all = append(all, catalog[name])
		}
		return all, nil
	}

	found := make([]Definition, 0, len(defs))
	for _, def := range defs {
		d, ok := catalog[def.Identifier]
		if !ok {
			return nil, &helper.BootstrapError{
				File:       def.File,
				Identifier: def.Identifier,
				Err:        fmt.Errorf("no performer named %s", def.Identifier),
			}
		}
		found = append(found, d)
	}
	return found, nil
}
