package catalog

import (
	"sort"

	"github.com/exdocs-dev/examplegen/internal/domain"
	"github.com/exdocs-dev/examplegen/internal/manifest"
)

// Categories returns the category name to description mapping declared in
// the manifest. When a name is declared twice the last entry wins.
func Categories(m *manifest.Manifest) map[string]string {
	descriptions := make(map[string]string, len(m.Metadata.Categories))
	for _, category := range m.Metadata.Categories {
		descriptions[category.Name] = category.Description
	}
	return descriptions
}

// Aggregate groups examples by category, ordered within each group by the
// (category, name) key. Grouping is independent of input order. Categories
// without a declared description get an empty one.
func Aggregate(examples []domain.Example, descriptions map[string]string) domain.Catalog {
	sorted := make([]domain.Example, len(examples))
	copy(sorted, examples)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Less(sorted[j])
	})

	catalog := make(domain.Catalog)
	for _, example := range sorted {
		entry, ok := catalog[example.Category]
		if !ok {
			entry.Description = descriptions[example.Category]
		}
		entry.Examples = append(entry.Examples, example)
		catalog[example.Category] = entry
	}

	return catalog
}
