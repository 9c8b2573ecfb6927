package scan_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astra-gui/astraloc/internal/config"
	"github.com/astra-gui/astraloc/internal/scan"
)

const exampleSource = "fn main() {\n    println!(\"hello\");\n}\n"

func writeExample(t *testing.T, dir, name string) {
	t.Helper()

	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(exampleSource), 0o600))
}

var examplesCfg = config.ExamplesConfig{Dir: "examples", Shared: "shared"}

func TestLibraryRows_SkipsMissingDirectories(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "crates", "astra-gui", "src"), 0o750))

	rows := scan.LibraryRows(root, []config.LibraryRow{
		{Name: "astra-gui", Path: "crates/astra-gui/src"},
		{Name: "astra-gui-fonts", Path: "crates/astra-gui-fonts/src"},
	})

	require.Len(t, rows, 1)
	assert.Equal(t, "astra-gui", rows[0].Name)
	assert.Equal(t, filepath.Join(root, "crates", "astra-gui", "src"), rows[0].Path)
}

func TestExampleRows_LexicographicOrder(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	dir := filepath.Join(root, "examples")
	require.NoError(t, os.MkdirAll(dir, 0o750))

	writeExample(t, dir, "z.rs")
	writeExample(t, dir, "a.rs")
	writeExample(t, dir, "m.rs")

	rows := scan.ExampleRows(root, examplesCfg, "Rust")

	names := make([]string, len(rows))
	for i, row := range rows {
		names[i] = row.Name
	}

	assert.Equal(t, []string{"a", "m", "z"}, names)
}

func TestExampleRows_SharedComesFirst(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	dir := filepath.Join(root, "examples")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "shared"), 0o750))

	writeExample(t, dir, "demo.rs")

	rows := scan.ExampleRows(root, examplesCfg, "Rust")

	require.Len(t, rows, 2)
	assert.Equal(t, "shared", rows[0].Name)
	assert.Equal(t, "demo", rows[1].Name)
}

func TestExampleRows_FiltersOtherLanguages(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	dir := filepath.Join(root, "examples")
	require.NoError(t, os.MkdirAll(dir, 0o750))

	writeExample(t, dir, "demo.rs")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# Examples\n"), 0o600))

	rows := scan.ExampleRows(root, examplesCfg, "Rust")

	require.Len(t, rows, 1)
	assert.Equal(t, "demo", rows[0].Name)
}

func TestExampleRows_MissingDirectory(t *testing.T) {
	t.Parallel()

	rows := scan.ExampleRows(t.TempDir(), examplesCfg, "Rust")
	assert.Empty(t, rows)
}

func TestPaths(t *testing.T) {
	t.Parallel()

	rows := []scan.PathRow{
		{Name: "a", Path: "/x/a"},
		{Name: "b", Path: "/x/b"},
	}

	assert.Equal(t, []string{"/x/a", "/x/b"}, scan.Paths(rows))
}
