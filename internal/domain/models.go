package domain

import "sort"

// Example represents one publishable catalog entry, joined from an example
// declaration and its metadata. Entries are ordered by the composite key
// (Category, Name), byte-wise ascending.
type Example struct {
	TechnicalName string
	Path          string
	Name          string
	Description   string
	Category      string
	Wasm          bool
}

// Less reports whether e orders before other under the catalog sort key
func (e Example) Less(other Example) bool {
	if e.Category != other.Category {
		return e.Category < other.Category
	}
	return e.Name < other.Name
}

// Category groups the visible examples of one category. Description is
// empty when the manifest carries no entry for the category.
type Category struct {
	Description string
	Examples    []Example
}

// Catalog maps category names to their aggregated groups. Key order carries
// no meaning; use Names for deterministic traversal.
type Catalog map[string]Category

// Names returns the category names in ascending order
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Total returns the number of examples across all categories
func (c Catalog) Total() int {
	total := 0
	for _, category := range c {
		total += len(category.Examples)
	}
	return total
}
