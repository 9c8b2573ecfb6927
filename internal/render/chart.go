package render

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/astra-gui/astraloc/internal/report"
)

// Catppuccin hex values matching the table colors.
const (
	libraryHex  = "#89B4FA"
	examplesHex = "#CBA6F7"
)

const chartFilePerm = 0o600

// WriteChart renders a bar chart of per-entry code lines to an HTML file.
// One series per category; every entry keeps its slot on the shared axis so
// the two series stay aligned.
func WriteChart(entries []report.Entry, path string) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Astra GUI line counts",
			Subtitle: chartSubtitle(entries),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Code lines"}),
	)

	labels := make([]string, len(entries))
	for i, entry := range entries {
		labels[i] = entry.Name
	}

	bar.SetXAxis(labels)
	bar.AddSeries(string(report.CategoryLibrary), categorySeries(entries, report.CategoryLibrary),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: libraryHex}))
	bar.AddSeries(string(report.CategoryExamples), categorySeries(entries, report.CategoryExamples),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: examplesHex}))

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, chartFilePerm)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer file.Close()

	renderErr := bar.Render(file)
	if renderErr != nil {
		return fmt.Errorf("render chart: %w", renderErr)
	}

	return nil
}

// categorySeries fills the category's slots with its code-line counts and
// leaves the other category's slots empty.
func categorySeries(entries []report.Entry, category report.Category) []opts.BarData {
	data := make([]opts.BarData, len(entries))

	for i, entry := range entries {
		if entry.Category == category {
			data[i] = opts.BarData{Value: entry.Stats.Code}
		} else {
			data[i] = opts.BarData{Value: "-"}
		}
	}

	return data
}

func chartSubtitle(entries []report.Entry) string {
	var library, examples uint64

	for _, entry := range entries {
		if !entry.IsRoot() {
			continue
		}

		switch entry.Category {
		case report.CategoryLibrary:
			library = entry.Stats.Code
		case report.CategoryExamples:
			examples = entry.Stats.Code
		}
	}

	return fmt.Sprintf("library %s / examples %s code lines",
		humanize.Comma(int64(library)), humanize.Comma(int64(examples))) //nolint:gosec // counts fit in int64
}
