package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exdocs-dev/examplegen/internal/domain"
)

const readmeTemplate = `# Examples
{{ range $category, $group := .all_examples }}
## {{ $category }}

{{ $group.Description }}

Example | Description
--- | ---
{{ range $group.Examples }}[{{ .Name }}](../{{ .Path }}) | {{ .Description }}
{{ end }}{{ end }}`

func writeTemplate(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func testCatalog() domain.Catalog {
	return domain.Catalog{
		"2D Rendering": {
			Description: "Drawing sprites and text.",
			Examples: []domain.Example{
				{
					TechnicalName: "sprite",
					Path:          "examples/2d/sprite.go",
					Name:          "Sprite",
					Description:   "Renders a sprite",
					Category:      "2D Rendering",
				},
				{
					TechnicalName: "text2d",
					Path:          "examples/2d/text2d.go",
					Name:          "Text 2D",
					Description:   "Draws text in 2D",
					Category:      "2D Rendering",
					Wasm:          true,
				},
			},
		},
		"Games": {
			Description: "Complete, small games.",
			Examples: []domain.Example{
				{
					TechnicalName: "breakout",
					Path:          "examples/games/breakout.go",
					Name:          "Breakout",
					Description:   "An implementation of the classic game",
					Category:      "Games",
					Wasm:          true,
				},
			},
		},
	}
}

func TestRendererRender(t *testing.T) {
	t.Parallel()

	t.Run("renders markdown catalog", func(t *testing.T) {
		dir := t.TempDir()
		writeTemplate(t, dir, "EXAMPLE_README.md.tpl", readmeTemplate)

		renderer := NewRenderer(Options{
			TemplateDir: dir,
			Template:    "EXAMPLE_README.md.tpl",
		})

		data, err := renderer.Render(testCatalog())
		require.NoError(t, err)

		output := string(data)
		assert.Contains(t, output, "# Examples")
		assert.Contains(t, output, "## 2D Rendering")
		assert.Contains(t, output, "Drawing sprites and text.")
		assert.Contains(t, output, "## Games")
		assert.Contains(t, output, "[Sprite](../examples/2d/sprite.go) | Renders a sprite")
		assert.Contains(t, output, "[Breakout](../examples/games/breakout.go) | An implementation of the classic game")
	})

	t.Run("categories render in sorted order", func(t *testing.T) {
		dir := t.TempDir()
		writeTemplate(t, dir, "EXAMPLE_README.md.tpl", readmeTemplate)

		renderer := NewRenderer(Options{
			TemplateDir: dir,
			Template:    "EXAMPLE_README.md.tpl",
		})

		data, err := renderer.Render(testCatalog())
		require.NoError(t, err)

		output := string(data)
		assert.Less(t, strings.Index(output, "## 2D Rendering"), strings.Index(output, "## Games"))
		assert.Less(t, strings.Index(output, "[Sprite]"), strings.Index(output, "[Text 2D]"))
	})

	t.Run("output is byte deterministic", func(t *testing.T) {
		dir := t.TempDir()
		writeTemplate(t, dir, "EXAMPLE_README.md.tpl",
			`{{ range $c, $g := .all_examples }}{{ $c }}:{{ range $g.Examples }}{{ .TechnicalName }},{{ end }};{{ end }}`)

		renderer := NewRenderer(Options{
			TemplateDir: dir,
			Template:    "EXAMPLE_README.md.tpl",
		})

		catalog := domain.Catalog{
			"games": {Examples: []domain.Example{{TechnicalName: "breakout"}}},
			"2d":    {Examples: []domain.Example{{TechnicalName: "sprite"}, {TechnicalName: "text2d"}}},
		}

		for i := 0; i < 3; i++ {
			data, err := renderer.Render(catalog)
			require.NoError(t, err)
			assert.Equal(t, "2d:sprite,text2d,;games:breakout,;", string(data))
		}
	})

	t.Run("entry template can include partials", func(t *testing.T) {
		dir := t.TempDir()
		writeTemplate(t, dir, "header.md.tpl", `# Examples`)
		writeTemplate(t, dir, "EXAMPLE_README.md.tpl",
			`{{ template "header.md.tpl" }}
total categories: {{ len .all_examples }}`)

		renderer := NewRenderer(Options{
			TemplateDir: dir,
			Template:    "EXAMPLE_README.md.tpl",
		})

		data, err := renderer.Render(testCatalog())
		require.NoError(t, err)
		assert.Contains(t, string(data), "# Examples")
		assert.Contains(t, string(data), "total categories: 2")
	})

	t.Run("default pattern matches md tpl files", func(t *testing.T) {
		dir := t.TempDir()
		writeTemplate(t, dir, "EXAMPLE_README.md.tpl", `ok`)
		// Files outside the pattern must not end up in the set
		writeTemplate(t, dir, "notes.txt", `{{ not a template }}`)

		renderer := NewRenderer(Options{
			TemplateDir: dir,
			Template:    "EXAMPLE_README.md.tpl",
		})

		data, err := renderer.Render(domain.Catalog{})
		require.NoError(t, err)
		assert.Equal(t, "ok", string(data))
	})

	t.Run("empty catalog renders", func(t *testing.T) {
		dir := t.TempDir()
		writeTemplate(t, dir, "EXAMPLE_README.md.tpl", readmeTemplate)

		renderer := NewRenderer(Options{
			TemplateDir: dir,
			Template:    "EXAMPLE_README.md.tpl",
		})

		data, err := renderer.Render(domain.Catalog{})
		require.NoError(t, err)
		assert.Contains(t, string(data), "# Examples")
	})

	t.Run("missing entry template", func(t *testing.T) {
		dir := t.TempDir()
		writeTemplate(t, dir, "other.md.tpl", `irrelevant`)

		renderer := NewRenderer(Options{
			TemplateDir: dir,
			Template:    "EXAMPLE_README.md.tpl",
		})

		_, err := renderer.Render(testCatalog())
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrTemplateNotFound)

		var tmplErr *domain.TemplateError
		require.ErrorAs(t, err, &tmplErr)
		assert.Equal(t, "EXAMPLE_README.md.tpl", tmplErr.Template)
	})

	t.Run("no templates in directory", func(t *testing.T) {
		dir := t.TempDir()

		renderer := NewRenderer(Options{
			TemplateDir: dir,
			Template:    "EXAMPLE_README.md.tpl",
		})

		_, err := renderer.Render(testCatalog())
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrRenderFailed)
	})

	t.Run("execution failure", func(t *testing.T) {
		dir := t.TempDir()
		// Field access on a concrete Category value only fails at execute
		// time, after parse and lookup succeeded
		writeTemplate(t, dir, "EXAMPLE_README.md.tpl", `{{ .all_examples.Games.Missing }}`)

		renderer := NewRenderer(Options{
			TemplateDir: dir,
			Template:    "EXAMPLE_README.md.tpl",
		})

		_, err := renderer.Render(testCatalog())
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrRenderFailed)

		var tmplErr *domain.TemplateError
		require.ErrorAs(t, err, &tmplErr)
		assert.Equal(t, "EXAMPLE_README.md.tpl", tmplErr.Template)
	})
}

func TestRendererRenderFile(t *testing.T) {
	t.Parallel()

	t.Run("writes rendered file", func(t *testing.T) {
		dir := t.TempDir()
		writeTemplate(t, dir, "EXAMPLE_README.md.tpl", readmeTemplate)
		dest := filepath.Join(t.TempDir(), "README.md")

		renderer := NewRenderer(Options{
			TemplateDir: dir,
			Template:    "EXAMPLE_README.md.tpl",
		})

		err := renderer.RenderFile(testCatalog(), dest)
		require.NoError(t, err)

		data, err := os.ReadFile(dest)
		require.NoError(t, err)
		assert.Contains(t, string(data), "## Games")

		// Atomic write must not leave temp files next to the output
		entries, err := os.ReadDir(filepath.Dir(dest))
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "README.md", entries[0].Name())
	})

	t.Run("creates parent directories", func(t *testing.T) {
		dir := t.TempDir()
		writeTemplate(t, dir, "EXAMPLE_README.md.tpl", readmeTemplate)
		dest := filepath.Join(t.TempDir(), "examples", "README.md")

		renderer := NewRenderer(Options{
			TemplateDir: dir,
			Template:    "EXAMPLE_README.md.tpl",
		})

		err := renderer.RenderFile(testCatalog(), dest)
		require.NoError(t, err)
		assert.FileExists(t, dest)
	})

	t.Run("replaces existing file", func(t *testing.T) {
		dir := t.TempDir()
		writeTemplate(t, dir, "EXAMPLE_README.md.tpl", `fresh content`)
		dest := filepath.Join(t.TempDir(), "README.md")
		require.NoError(t, os.WriteFile(dest, []byte("stale content"), 0644))

		renderer := NewRenderer(Options{
			TemplateDir: dir,
			Template:    "EXAMPLE_README.md.tpl",
		})

		err := renderer.RenderFile(testCatalog(), dest)
		require.NoError(t, err)

		data, err := os.ReadFile(dest)
		require.NoError(t, err)
		assert.Equal(t, "fresh content", string(data))
	})

	t.Run("dry run skips write", func(t *testing.T) {
		dir := t.TempDir()
		writeTemplate(t, dir, "EXAMPLE_README.md.tpl", readmeTemplate)
		dest := filepath.Join(t.TempDir(), "README.md")

		renderer := NewRenderer(Options{
			TemplateDir: dir,
			Template:    "EXAMPLE_README.md.tpl",
			DryRun:      true,
		})

		err := renderer.RenderFile(testCatalog(), dest)
		require.NoError(t, err)
		assert.NoFileExists(t, dest)
	})

	t.Run("dry run still surfaces render errors", func(t *testing.T) {
		dir := t.TempDir()
		dest := filepath.Join(t.TempDir(), "README.md")

		renderer := NewRenderer(Options{
			TemplateDir: dir,
			Template:    "EXAMPLE_README.md.tpl",
			DryRun:      true,
		})

		err := renderer.RenderFile(testCatalog(), dest)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrRenderFailed)
		assert.NoFileExists(t, dest)
	})

	t.Run("render failure writes nothing", func(t *testing.T) {
		dir := t.TempDir()
		writeTemplate(t, dir, "other.md.tpl", `irrelevant`)
		dest := filepath.Join(t.TempDir(), "README.md")

		renderer := NewRenderer(Options{
			TemplateDir: dir,
			Template:    "EXAMPLE_README.md.tpl",
		})

		err := renderer.RenderFile(testCatalog(), dest)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrTemplateNotFound)
		assert.NoFileExists(t, dest)
	})
}
