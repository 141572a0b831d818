package domain

// CatalogRenderer defines the interface for rendering an aggregated catalog
// into a destination document
type CatalogRenderer interface {
	// Render executes the catalog template and returns the rendered document
	Render(catalog Catalog) ([]byte, error)
	// RenderFile renders the catalog and commits it to the destination path
	RenderFile(catalog Catalog, dest string) error
}
