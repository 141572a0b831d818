package config

import (
	"fmt"
	"path/filepath"

	"github.com/exdocs-dev/examplegen/internal/utils"
)

// Config represents the application configuration
type Config struct {
	Manifest ManifestConfig `mapstructure:"manifest" yaml:"manifest"`
	Template TemplateConfig `mapstructure:"template" yaml:"template"`
	Output   OutputConfig   `mapstructure:"output" yaml:"output"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging"`
}

// ManifestConfig contains manifest location settings
type ManifestConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

// TemplateConfig contains template set settings
type TemplateConfig struct {
	Directory string `mapstructure:"directory" yaml:"directory"`
	Pattern   string `mapstructure:"pattern" yaml:"pattern"`
	Name      string `mapstructure:"name" yaml:"name"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Manifest.Path == "" {
		c.Manifest.Path = DefaultManifestPath
	}
	if c.Template.Directory == "" {
		c.Template.Directory = DefaultTemplateDir
	}
	if c.Template.Pattern == "" {
		c.Template.Pattern = DefaultTemplatePattern
	} else {
		if _, err := filepath.Match(c.Template.Pattern, ""); err != nil {
			return fmt.Errorf("invalid template.pattern: %w", err)
		}
	}
	if c.Template.Name == "" {
		c.Template.Name = DefaultTemplateName
	}
	if c.Output.Path == "" {
		c.Output.Path = DefaultOutputPath
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}

	// Configured paths may be home-relative
	c.Manifest.Path = utils.ExpandPath(c.Manifest.Path)
	c.Template.Directory = utils.ExpandPath(c.Template.Directory)
	c.Output.Path = utils.ExpandPath(c.Output.Path)

	return nil
}
