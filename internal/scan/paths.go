// Package scan enumerates the filesystem paths behind each report row.
package scan

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/src-d/enry/v2"

	"github.com/astra-gui/astraloc/internal/config"
)

// PathRow is one countable subpart: a display label and the absolute path
// the counter is pointed at.
type PathRow struct {
	Name string
	Path string
}

// LibraryRows resolves the configured library rows against the repository
// root. Rows whose directory does not exist are omitted.
func LibraryRows(root string, rows []config.LibraryRow) []PathRow {
	out := make([]PathRow, 0, len(rows))

	for _, row := range rows {
		path := filepath.Join(root, filepath.FromSlash(row.Path))
		if !dirExists(path) {
			continue
		}

		out = append(out, PathRow{Name: row.Name, Path: path})
	}

	return out
}

// ExampleRows discovers the example subparts: the optional shared directory
// first, then every file directly under the examples directory whose
// detected language matches codeLang, in lexicographic filename order. A
// missing examples directory yields no rows.
func ExampleRows(root string, examples config.ExamplesConfig, codeLang string) []PathRow {
	base := filepath.Join(root, filepath.FromSlash(examples.Dir))

	var out []PathRow

	if examples.Shared != "" {
		shared := filepath.Join(base, examples.Shared)
		if dirExists(shared) {
			out = append(out, PathRow{Name: examples.Shared, Path: shared})
		}
	}

	entries, err := os.ReadDir(base)
	if err != nil {
		return out
	}

	// os.ReadDir returns entries sorted by filename.
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !matchesLanguage(name, codeLang) {
			continue
		}

		label := strings.TrimSuffix(name, filepath.Ext(name))
		out = append(out, PathRow{Name: label, Path: filepath.Join(base, name)})
	}

	return out
}

// matchesLanguage reports whether lang is among enry's candidate languages
// for the file's extension. Extensionless files never match.
func matchesLanguage(name, lang string) bool {
	return slices.Contains(enry.GetLanguagesByExtension(name, nil, nil), lang)
}

// Paths projects the rows down to their path components, in row order.
func Paths(rows []PathRow) []string {
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = row.Path
	}

	return out
}

func dirExists(path string) bool {
	info, err := os.Stat(path)

	return err == nil && info.IsDir()
}
