package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/exdocs-dev/examplegen/internal/domain"
)

// Loader loads and validates project manifest files
type Loader struct {
	validate *validator.Validate
}

// NewLoader creates a new manifest loader
func NewLoader() *Loader {
	v := validator.New()

	// Report fields by their manifest names rather than Go struct names
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("toml"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})

	return &Loader{validate: v}
}

// Load reads, parses and validates a manifest file from the given path
func (l *Loader) Load(path string) (*Manifest, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest file: %w", err)
	}

	return l.LoadFromBytes(data, filepath.Ext(path))
}

// LoadFromBytes parses a manifest from raw bytes, selecting the codec by
// file extension
func (l *Loader) LoadFromBytes(data []byte, ext string) (*Manifest, error) {
	ext = strings.ToLower(ext)

	var m Manifest
	switch ext {
	case ".toml":
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrMalformedManifest, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrMalformedManifest, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrMalformedManifest, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedExt, ext)
	}

	if err := l.Validate(&m); err != nil {
		return nil, err
	}

	return &m, nil
}

// Validate enforces the required fields of every manifest entry once, at the
// boundary. Hidden examples are validated like any other entry. The first
// failing entry aborts validation.
func (l *Loader) Validate(m *Manifest) error {
	seen := make(map[string]bool, len(m.Examples))
	for i, decl := range m.Examples {
		if err := l.validate.Struct(decl); err != nil {
			return fieldError("example declaration", declKey(decl.Name, i), err)
		}
		if seen[decl.Name] {
			return fmt.Errorf("%w: duplicate example declaration %q", domain.ErrMalformedManifest, decl.Name)
		}
		seen[decl.Name] = true
	}

	names := make([]string, 0, len(m.Metadata.Examples))
	for name := range m.Metadata.Examples {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := l.validate.Struct(m.Metadata.Examples[name]); err != nil {
			return fieldError("example metadata", name, err)
		}
	}

	for i, category := range m.Metadata.Categories {
		if err := l.validate.Struct(category); err != nil {
			return fieldError("example category", declKey(category.Name, i), err)
		}
	}

	return nil
}

func declKey(name string, index int) string {
	if name != "" {
		return name
	}
	return fmt.Sprintf("#%d", index)
}

// fieldError converts the first validator failure into a domain FieldError
func fieldError(table, key string, err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return domain.NewFieldError(table, key, verrs[0].Field())
	}
	return fmt.Errorf("%w: %s %q: %v", domain.ErrMalformedManifest, table, key, err)
}
