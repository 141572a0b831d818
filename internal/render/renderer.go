// Package render executes the catalog template set and commits the rendered
// document to its destination.
package render

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"

	"github.com/exdocs-dev/examplegen/internal/domain"
	"github.com/exdocs-dev/examplegen/internal/utils"
)

// Renderer renders the aggregated catalog through the project's template set
type Renderer struct {
	glob     string
	template string
	dryRun   bool
	logger   *utils.Logger
}

// Options contains options for creating a renderer
type Options struct {
	TemplateDir string
	Pattern     string // glob within TemplateDir, defaults to *.md.tpl
	Template    string // entry template name within the parsed set
	DryRun      bool
	Logger      *utils.Logger
}

// NewRenderer creates a new catalog renderer
func NewRenderer(opts Options) *Renderer {
	if opts.Pattern == "" {
		opts.Pattern = "*.md.tpl"
	}
	logger := opts.Logger
	if logger == nil {
		logger = utils.NewDefaultLogger()
	}

	return &Renderer{
		glob:     filepath.Join(opts.TemplateDir, opts.Pattern),
		template: opts.Template,
		dryRun:   opts.DryRun,
		logger:   logger.WithComponent("renderer"),
	}
}

// Render executes the entry template and returns the rendered document. The
// template context exposes the catalog under the all_examples key; category
// maps range in sorted key order, so output is deterministic.
func (r *Renderer) Render(catalog domain.Catalog) ([]byte, error) {
	set, err := template.ParseGlob(r.glob)
	if err != nil {
		return nil, domain.NewTemplateError(r.glob, fmt.Errorf("%w: %v", domain.ErrRenderFailed, err))
	}

	tmpl := set.Lookup(r.template)
	if tmpl == nil {
		return nil, domain.NewTemplateError(r.template, domain.ErrTemplateNotFound)
	}

	context := map[string]any{
		"all_examples": catalog,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, context); err != nil {
		return nil, domain.NewTemplateError(r.template, fmt.Errorf("%w: %v", domain.ErrRenderFailed, err))
	}

	return buf.Bytes(), nil
}

// RenderFile renders the catalog and atomically replaces dest with the
// result, so a failed render never leaves a truncated file behind. In
// dry-run mode the render still executes but nothing is written.
func (r *Renderer) RenderFile(catalog domain.Catalog, dest string) error {
	data, err := r.Render(catalog)
	if err != nil {
		return err
	}

	if r.dryRun {
		r.logger.Info().Str("output", dest).Int("bytes", len(data)).Msg("Dry run, skipping write")
		return nil
	}

	if err := utils.EnsureDir(dest); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrWriteFailed, err)
	}
	if err := utils.WriteFileAtomic(dest, data, 0644); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrWriteFailed, err)
	}

	r.logger.Debug().Str("output", dest).Int("bytes", len(data)).Msg("Catalog written")
	return nil
}
