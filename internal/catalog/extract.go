// Package catalog turns manifest declarations into the grouped, ordered
// example catalog that the renderer consumes.
package catalog

import (
	"github.com/exdocs-dev/examplegen/internal/domain"
	"github.com/exdocs-dev/examplegen/internal/manifest"
	"github.com/exdocs-dev/examplegen/internal/utils"
)

// Extractor resolves example declarations against their metadata entries
type Extractor struct {
	logger *utils.Logger
}

// NewExtractor creates a new extractor
func NewExtractor(logger *utils.Logger) *Extractor {
	if logger == nil {
		logger = utils.NewDefaultLogger()
	}
	return &Extractor{
		logger: logger.WithComponent("extractor"),
	}
}

// Extract returns one record per visible, documented declaration, in
// declaration order. In strict mode a declaration without a metadata entry
// or without the doc-scrape-examples marker aborts the run; the strict
// checks apply to hidden examples too. Outside strict mode undocumented
// declarations are skipped silently.
func (e *Extractor) Extract(m *manifest.Manifest, strict bool) ([]domain.Example, error) {
	examples := make([]domain.Example, 0, len(m.Examples))

	for _, decl := range m.Examples {
		meta, ok := m.Metadata.Examples[decl.Name]
		if !ok {
			if strict {
				return nil, domain.NewExampleError(decl.Name, domain.ErrMissingMetadata)
			}
			e.logger.WithExample(decl.Name).Debug().Msg("Skipping declaration without metadata")
			continue
		}

		if strict && !decl.HasDocScrape() {
			return nil, domain.NewExampleError(decl.Name, domain.ErrMissingDocScrape)
		}

		if meta.Hidden {
			e.logger.WithExample(decl.Name).Debug().Msg("Skipping hidden example")
			continue
		}

		examples = append(examples, domain.Example{
			TechnicalName: decl.Name,
			Path:          decl.Path,
			Name:          meta.Name,
			Description:   meta.Description,
			Category:      meta.Category,
			Wasm:          meta.Wasm != nil && *meta.Wasm,
		})
	}

	return examples, nil
}

// Stats summarizes how the declarations of a manifest resolved
type Stats struct {
	Declared     int
	Hidden       int
	Undocumented int
}

// CollectStats counts hidden and undocumented declarations for run summaries
func CollectStats(m *manifest.Manifest) Stats {
	stats := Stats{Declared: len(m.Examples)}
	for _, decl := range m.Examples {
		meta, ok := m.Metadata.Examples[decl.Name]
		switch {
		case !ok:
			stats.Undocumented++
		case meta.Hidden:
			stats.Hidden++
		}
	}
	return stats
}
