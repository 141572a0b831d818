// Package manifest provides types and utilities for loading and validating
// project manifests. A manifest declares the example programs of a project
// together with the metadata tables that drive the rendered example catalog.
//
// # Manifest Format
//
// Manifests are TOML-first but can also be written in YAML or JSON:
//
//	[[example]]
//	name = "breakout"
//	path = "examples/games/breakout.go"
//	doc-scrape-examples = true
//
//	[metadata.example.breakout]
//	name = "Breakout"
//	description = "An implementation of the classic game Breakout."
//	category = "games"
//	wasm = true
//
//	[[metadata.example_category]]
//	name = "games"
//	description = "Complete games built with the engine."
//
// The doc-scrape-examples key is a presence-only marker: declaring it with
// any value, including false, satisfies the strict-mode check.
//
// # Usage
//
// Load a manifest file:
//
//	loader := manifest.NewLoader()
//	m, err := loader.Load("Manifest.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, decl := range m.Examples {
//	    // Process each declaration
//	}
//
// # Error Handling
//
// Structural failures wrap domain.ErrMalformedManifest; missing required
// fields surface as domain.FieldError values naming the table, entry and
// field. The package adds two sentinels of its own:
//   - ErrFileNotFound: manifest file does not exist
//   - ErrUnsupportedExt: unsupported file extension
package manifest
