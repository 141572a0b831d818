package config

import (
	"os"
	"path/filepath"
)

// Default values
const (
	// Manifest defaults
	DefaultManifestPath = "Manifest.toml"

	// Template defaults
	DefaultTemplateDir     = "docs-template"
	DefaultTemplatePattern = "*.md.tpl"
	DefaultTemplateName    = "EXAMPLE_README.md.tpl"

	// Output defaults
	DefaultOutputPath = "examples/README.md"

	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"
)

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".examplegen"
	}
	return filepath.Join(home, ".examplegen")
}

// ConfigFilePath returns the config file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Manifest: ManifestConfig{
			Path: DefaultManifestPath,
		},
		Template: TemplateConfig{
			Directory: DefaultTemplateDir,
			Pattern:   DefaultTemplatePattern,
			Name:      DefaultTemplateName,
		},
		Output: OutputConfig{
			Path: DefaultOutputPath,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
