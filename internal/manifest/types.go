package manifest

// Manifest represents the parsed project manifest: the example declarations
// plus the documentation metadata tables.
type Manifest struct {
	Examples []Declaration `toml:"example" yaml:"example" json:"example"`
	Metadata Metadata      `toml:"metadata" yaml:"metadata" json:"metadata"`
}

// Declaration is one [[example]] entry. DocScrapeExamples is a presence-only
// marker: any declared value counts, including false.
type Declaration struct {
	Name              string `toml:"name" yaml:"name" json:"name" validate:"required"`
	Path              string `toml:"path" yaml:"path" json:"path" validate:"required"`
	DocScrapeExamples *bool  `toml:"doc-scrape-examples" yaml:"doc-scrape-examples" json:"doc-scrape-examples"`
}

// HasDocScrape reports whether the doc-scrape-examples marker is declared
func (d Declaration) HasDocScrape() bool {
	return d.DocScrapeExamples != nil
}

// Metadata groups the documentation tables of the manifest
type Metadata struct {
	Examples   map[string]ExampleMetadata `toml:"example" yaml:"example" json:"example"`
	Categories []CategoryDescription      `toml:"example_category" yaml:"example_category" json:"example_category"`
}

// ExampleMetadata describes one example for the rendered catalog, keyed by
// the example's technical name. Wasm is decoded as a pointer so an absent
// value is distinguishable from an explicit false.
type ExampleMetadata struct {
	Name        string `toml:"name" yaml:"name" json:"name" validate:"required"`
	Description string `toml:"description" yaml:"description" json:"description" validate:"required"`
	Category    string `toml:"category" yaml:"category" json:"category" validate:"required"`
	Wasm        *bool  `toml:"wasm" yaml:"wasm" json:"wasm" validate:"required"`
	Hidden      bool   `toml:"hidden" yaml:"hidden" json:"hidden"`
}

// CategoryDescription is one [[metadata.example_category]] entry
type CategoryDescription struct {
	Name        string `toml:"name" yaml:"name" json:"name" validate:"required"`
	Description string `toml:"description" yaml:"description" json:"description" validate:"required"`
}
