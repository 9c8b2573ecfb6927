// Package report builds the ordered entry list behind the summary table.
package report

import (
	"fmt"

	"github.com/astra-gui/astraloc/internal/scan"
	"github.com/astra-gui/astraloc/internal/stats"
)

// Category names the two row groups of the report.
type Category string

// The two categories, in display order.
const (
	CategoryLibrary  Category = "library"
	CategoryExamples Category = "examples"
)

// Counter produces combined stats for a set of paths. *tokei.Runner is the
// production implementation.
type Counter interface {
	Count(paths []string) (stats.Stats, error)
}

// Entry is one table row: a category root or a subpart nested under it.
type Entry struct {
	Category Category
	Name     string
	Path     string
	Stats    stats.Stats
}

// IsRoot reports whether the entry is a category summary row.
func (e Entry) IsRoot() bool {
	return e.Name == string(e.Category)
}

// Builder assembles entries by querying a Counter.
type Builder struct {
	counter Counter
}

// NewBuilder returns a Builder backed by the given counter.
func NewBuilder(counter Counter) *Builder {
	return &Builder{counter: counter}
}

// Build produces the entries in display order: library root, library
// subparts when full is set, examples root, example subparts when full is
// set. Each category root is computed by a single counter query over the
// category's whole path set, independently of any subpart queries.
func (b *Builder) Build(root string, library, examples []scan.PathRow, full bool) ([]Entry, error) {
	entries := make([]Entry, 0, entryCapacity(library, examples, full))

	libEntries, err := b.categoryEntries(CategoryLibrary, root, library, full)
	if err != nil {
		return nil, err
	}

	exEntries, err := b.categoryEntries(CategoryExamples, root, examples, full)
	if err != nil {
		return nil, err
	}

	entries = append(entries, libEntries...)
	entries = append(entries, exEntries...)

	return entries, nil
}

// categoryEntries builds the root entry for one category plus, when full is
// set, one entry per subpart row.
func (b *Builder) categoryEntries(category Category, root string, rows []scan.PathRow, full bool) ([]Entry, error) {
	total, err := b.categoryTotal(category, rows)
	if err != nil {
		return nil, err
	}

	entries := []Entry{{
		Category: category,
		Name:     string(category),
		Path:     root,
		Stats:    total,
	}}

	if !full {
		return entries, nil
	}

	for _, row := range rows {
		rowStats, countErr := b.counter.Count([]string{row.Path})
		if countErr != nil {
			return nil, fmt.Errorf("count %s/%s: %w", category, row.Name, countErr)
		}

		entries = append(entries, Entry{
			Category: category,
			Name:     row.Name,
			Path:     row.Path,
			Stats:    rowStats,
		})
	}

	return entries, nil
}

func (b *Builder) categoryTotal(category Category, rows []scan.PathRow) (stats.Stats, error) {
	// An empty category never reaches the counter; querying the tool with no
	// paths would count the working directory instead.
	if len(rows) == 0 {
		return stats.Stats{}, nil
	}

	total, err := b.counter.Count(scan.Paths(rows))
	if err != nil {
		return stats.Stats{}, fmt.Errorf("count %s: %w", category, err)
	}

	return total, nil
}

func entryCapacity(library, examples []scan.PathRow, full bool) int {
	rootRows := 2
	if !full {
		return rootRows
	}

	return rootRows + len(library) + len(examples)
}
