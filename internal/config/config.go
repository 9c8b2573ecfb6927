// Package config loads astraloc settings from file, environment and
// defaults.
package config

import (
	"errors"
	"fmt"
)

// Table style names accepted by table.style.
const (
	// TableStylePretty renders through go-pretty.
	TableStylePretty = "pretty"
	// TableStylePlain renders through the width-computing fallback.
	TableStylePlain = "plain"
)

// Defaults for the Astra GUI repository layout.
const (
	DefaultTool         = "tokei"
	DefaultMarker       = "Cargo.toml"
	DefaultLayoutDir    = "crates"
	DefaultCodeLanguage = "Rust"
	DefaultDocsLanguage = "Markdown"
	DefaultExamplesDir  = "crates/astra-gui-wgpu/examples"
	DefaultSharedDir    = "shared"
	DefaultTableStyle   = TableStylePretty
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// LibraryRow is one fixed library subpart: a display name and a path
// relative to the repository root.
type LibraryRow struct {
	Name string `mapstructure:"name"`
	Path string `mapstructure:"path"`
}

// ExamplesConfig locates the examples category.
type ExamplesConfig struct {
	// Dir is the examples directory relative to the repository root.
	Dir string `mapstructure:"dir"`
	// Shared is the name of the optional shared sources directory under Dir.
	Shared string `mapstructure:"shared"`
}

// TableConfig selects the table rendering path.
type TableConfig struct {
	Style string `mapstructure:"style"`
}

// Config holds every runtime setting of the tool.
type Config struct {
	Tool         string         `mapstructure:"tool"`
	Marker       string         `mapstructure:"marker"`
	LayoutDir    string         `mapstructure:"layout_dir"`
	CodeLanguage string         `mapstructure:"code_language"`
	DocsLanguage string         `mapstructure:"docs_language"`
	Examples     ExamplesConfig `mapstructure:"examples"`
	Library      []LibraryRow   `mapstructure:"library"`
	Table        TableConfig    `mapstructure:"table"`
}

// Validate checks the invariants the rest of the program relies on.
func (c *Config) Validate() error {
	required := []struct {
		key   string
		value string
	}{
		{"tool", c.Tool},
		{"marker", c.Marker},
		{"layout_dir", c.LayoutDir},
		{"code_language", c.CodeLanguage},
		{"docs_language", c.DocsLanguage},
		{"examples.dir", c.Examples.Dir},
	}

	for _, field := range required {
		if field.value == "" {
			return fmt.Errorf("%w: %s must not be empty", ErrInvalidConfig, field.key)
		}
	}

	if c.Table.Style != TableStylePretty && c.Table.Style != TableStylePlain {
		return fmt.Errorf("%w: table.style must be %q or %q, got %q",
			ErrInvalidConfig, TableStylePretty, TableStylePlain, c.Table.Style)
	}

	for i, row := range c.Library {
		if row.Name == "" || row.Path == "" {
			return fmt.Errorf("%w: library row %d needs both name and path", ErrInvalidConfig, i)
		}
	}

	return nil
}
