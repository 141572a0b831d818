// Package app coordinates the catalog generation pipeline.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/exdocs-dev/examplegen/internal/catalog"
	"github.com/exdocs-dev/examplegen/internal/config"
	"github.com/exdocs-dev/examplegen/internal/domain"
	"github.com/exdocs-dev/examplegen/internal/manifest"
	"github.com/exdocs-dev/examplegen/internal/render"
	"github.com/exdocs-dev/examplegen/internal/utils"
)

// Runner coordinates manifest loading, validation, and catalog rendering
type Runner struct {
	config    *config.Config
	loader    *manifest.Loader
	extractor *catalog.Extractor
	renderer  domain.CatalogRenderer
	logger    *utils.Logger
}

// RunnerOptions contains options for creating and running a runner
type RunnerOptions struct {
	domain.CommonOptions
	Config       *config.Config
	CheckMissing bool
	Update       bool
	Renderer     domain.CatalogRenderer // allows injection for testing
}

// NewRunner creates a new runner with the given configuration
func NewRunner(opts RunnerOptions) (*Runner, error) {
	cfg := opts.Config

	// Validate config
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	// Create logger
	logLevel := "info"
	logFormat := "pretty"
	if cfg.Logging.Level != "" {
		logLevel = cfg.Logging.Level
	}
	if cfg.Logging.Format != "" {
		logFormat = cfg.Logging.Format
	}
	if opts.Verbose {
		logLevel = "debug"
	}

	logger := utils.NewLogger(utils.LoggerOptions{
		Level:   logLevel,
		Format:  logFormat,
		Verbose: opts.Verbose,
	})

	renderer := opts.Renderer
	if renderer == nil {
		renderer = render.NewRenderer(render.Options{
			TemplateDir: cfg.Template.Directory,
			Pattern:     cfg.Template.Pattern,
			Template:    cfg.Template.Name,
			DryRun:      opts.DryRun,
			Logger:      logger,
		})
	}

	return &Runner{
		config:    cfg,
		loader:    manifest.NewLoader(),
		extractor: catalog.NewExtractor(logger),
		renderer:  renderer,
		logger:    logger,
	}, nil
}

// Run loads the manifest, validates it, and regenerates the catalog when
// requested. With CheckMissing set, validation is strict: every declared
// example must carry metadata and the doc-scrape-examples marker. With
// Update set, the rendered catalog replaces the output file. Both intents
// are independent; with neither set the manifest is only parsed and
// validated.
func (r *Runner) Run(ctx context.Context, opts RunnerOptions) error {
	startTime := time.Now()

	r.logger.Info().
		Str("manifest", r.config.Manifest.Path).
		Bool("check_missing", opts.CheckMissing).
		Bool("update", opts.Update).
		Msg("Starting catalog generation")

	if err := ctx.Err(); err != nil {
		return err
	}

	m, err := r.loader.Load(r.config.Manifest.Path)
	if err != nil {
		return err
	}

	stats := catalog.CollectStats(m)
	r.logger.Debug().
		Int("declared", stats.Declared).
		Int("hidden", stats.Hidden).
		Int("undocumented", stats.Undocumented).
		Msg("Manifest loaded")

	if err := ctx.Err(); err != nil {
		return err
	}

	examples, err := r.extractor.Extract(m, opts.CheckMissing)
	if err != nil {
		return err
	}

	r.logger.Info().
		Int("examples", len(examples)).
		Msg("Examples validated")

	categories := 0
	if opts.Update {
		if err := ctx.Err(); err != nil {
			return err
		}

		grouped := catalog.Aggregate(examples, catalog.Categories(m))
		categories = len(grouped)
		r.logger.Debug().
			Int("categories", categories).
			Msg("Catalog aggregated")

		if err := r.renderer.RenderFile(grouped, r.config.Output.Path); err != nil {
			return err
		}
	}

	duration := time.Since(startTime)
	r.logger.Info().
		Dur("duration", duration).
		Int("examples", len(examples)).
		Int("hidden", stats.Hidden).
		Int("undocumented", stats.Undocumented).
		Int("categories", categories).
		Msg("Catalog generation completed")

	return nil
}
