// Package render turns report entries into the summary table and the
// optional HTML chart.
package render

import (
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"github.com/astra-gui/astraloc/internal/config"
	"github.com/astra-gui/astraloc/internal/report"
)

// branchMarker prefixes subpart rows under their category root.
const branchMarker = "├─ "

// columnGutter joins columns in the fallback renderer.
const columnGutter = "  "

// Catppuccin Mocha category colors: Blue for library, Mauve for examples.
var (
	libraryColor  = color.RGB(137, 180, 250)
	examplesColor = color.RGB(203, 166, 247)
)

// TableOptions controls the table layout.
type TableOptions struct {
	// Detailed adds the docs-line and total columns.
	Detailed bool
	// Full marks subpart rows with the branch prefix.
	Full bool
	// Color applies the category colors. Callers gate this on TTY via
	// ShouldColorize.
	Color bool
	// Style is config.TableStylePretty or config.TableStylePlain.
	Style string
	// CodeHeader and DocsHeader name the count columns, e.g. Rust/Markdown.
	CodeHeader string
	DocsHeader string
}

// ShouldColorize reports whether category coloring should be applied: only
// when requested and stdout is an interactive terminal.
func ShouldColorize(flag bool) bool {
	fd := os.Stdout.Fd()

	return flag && (isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd))
}

// Table renders the entries as one combined table with a dashed separator
// row between the library and examples blocks.
func Table(entries []report.Entry, opts TableOptions) string {
	headers := tableHeaders(opts)
	rows, rowCategories := tableRows(entries, headers, opts)

	if opts.Style == config.TableStylePlain {
		// The fallback computes widths from raw cell text, so it stays
		// uncolored to keep columns aligned.
		return renderPlain(headers, rows)
	}

	if opts.Color {
		colorizeRows(rows, rowCategories)
	}

	return renderPretty(headers, rows)
}

func tableHeaders(opts TableOptions) []string {
	if opts.Detailed {
		return []string{"Name", opts.CodeHeader, opts.DocsHeader, "Total"}
	}

	return []string{"Name", opts.CodeHeader}
}

// tableRows builds the cell grid plus a parallel category slice; separator
// rows carry an empty category and are never colorized.
func tableRows(entries []report.Entry, headers []string, opts TableOptions) ([][]string, []report.Category) {
	var (
		rows       [][]string
		categories []report.Category
	)

	appendBlock := func(category report.Category) {
		for _, entry := range entries {
			if entry.Category != category {
				continue
			}

			rows = append(rows, entryRow(entry, opts))
			categories = append(categories, category)
		}
	}

	appendBlock(report.CategoryLibrary)

	libRows := len(rows)
	if libRows > 0 && countCategory(entries, report.CategoryExamples) > 0 {
		rows = append(rows, separatorRow(headers))
		categories = append(categories, "")
	}

	appendBlock(report.CategoryExamples)

	return rows, categories
}

func entryRow(entry report.Entry, opts TableOptions) []string {
	label := entry.Name
	if opts.Full && !entry.IsRoot() {
		label = branchMarker + label
	}

	code := formatCount(entry.Stats.Code)

	if opts.Detailed {
		return []string{label, code, formatCount(entry.Stats.Docs), formatCount(entry.Stats.Total())}
	}

	return []string{label, code}
}

// separatorRow sizes each dash run to its header, like the original divider
// row between category blocks.
func separatorRow(headers []string) []string {
	row := make([]string, len(headers))
	for i, h := range headers {
		row[i] = strings.Repeat("-", len(h))
	}

	return row
}

func colorizeRows(rows [][]string, categories []report.Category) {
	for i, row := range rows {
		painter := categoryColor(categories[i])
		if painter == nil {
			continue
		}

		for j, cell := range row {
			row[j] = painter.Sprint(cell)
		}
	}
}

func categoryColor(category report.Category) *color.Color {
	switch category {
	case report.CategoryLibrary:
		return libraryColor
	case report.CategoryExamples:
		return examplesColor
	default:
		return nil
	}
}

// renderPretty delegates to go-pretty with the borderless style used across
// this codebase.
func renderPretty(headers []string, rows [][]string) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.SeparateColumns = false
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Options.SeparateHeader = true
	tbl.Style().Format.Header = text.FormatDefault

	header := make(table.Row, len(headers))
	for i, h := range headers {
		header[i] = h
	}

	tbl.AppendHeader(header)

	for _, row := range rows {
		cells := make(table.Row, len(row))
		for i, cell := range row {
			cells[i] = cell
		}

		tbl.AppendRow(cells)
	}

	return tbl.Render()
}

// formatCount renders a line count cell.
func formatCount(n uint64) string {
	return strconv.FormatUint(n, 10)
}

// renderPlain is the minimal fallback: left-justified cells, a two-space
// gutter, and a dashed line under the header. Widths are measured in runes
// so the branch marker does not skew columns.
func renderPlain(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}

	for _, row := range rows {
		for i, cell := range row {
			if w := utf8.RuneCountInString(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	formatRow := func(row []string) string {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = pad(cell, widths[i])
		}

		return strings.TrimRight(strings.Join(cells, columnGutter), " ")
	}

	dashes := make([]string, len(widths))
	for i, w := range widths {
		dashes[i] = strings.Repeat("-", w)
	}

	lines := []string{formatRow(headers), strings.Join(dashes, columnGutter)}
	for _, row := range rows {
		lines = append(lines, formatRow(row))
	}

	return strings.Join(lines, "\n")
}

func pad(cell string, width int) string {
	w := utf8.RuneCountInString(cell)
	if w >= width {
		return cell
	}

	return cell + strings.Repeat(" ", width-w)
}

func countCategory(entries []report.Entry, category report.Category) int {
	n := 0

	for _, entry := range entries {
		if entry.Category == category {
			n++
		}
	}

	return n
}
