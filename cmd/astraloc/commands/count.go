// Package commands implements CLI command handlers for astraloc.
package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/astra-gui/astraloc/internal/config"
	"github.com/astra-gui/astraloc/internal/render"
	"github.com/astra-gui/astraloc/internal/repo"
	"github.com/astra-gui/astraloc/internal/report"
	"github.com/astra-gui/astraloc/internal/scan"
	"github.com/astra-gui/astraloc/internal/tokei"
	"github.com/astra-gui/astraloc/pkg/version"
)

// ErrUnexpectedLayout indicates the resolved repository root is missing the
// expected top-level directory.
var ErrUnexpectedLayout = errors.New("unexpected repository layout")

// CountCommand holds configuration and dependencies for the root count
// command.
type CountCommand struct {
	full     bool
	detailed bool
	color    bool
	verbose  bool

	chartPath  string
	configPath string

	// workDir overrides the starting directory for the root walk. Empty
	// means the current working directory.
	workDir string
}

// NewRootCommand creates the astraloc root command. Running it without a
// subcommand performs the count.
func NewRootCommand() *cobra.Command {
	countCmd := &CountCommand{}

	cmd := &cobra.Command{
		Use:   "astraloc",
		Short: "Report source-line counts for the Astra GUI crates and examples",
		Long: `astraloc aggregates line counts for the Astra GUI repository by
invoking an external counter (tokei by default) and rendering a summary
table: one row per category (library, examples), plus per-subpart rows
with --full.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return countCmd.Run(cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVarP(&countCmd.full, "full", "f", false, "show per-subpart breakdown")
	cmd.Flags().BoolVarP(&countCmd.detailed, "detailed", "d", false, "show docs-line and total columns")
	cmd.Flags().BoolVarP(&countCmd.color, "color", "c", false, "colorize output by category (TTY only)")
	cmd.Flags().BoolVarP(&countCmd.verbose, "verbose", "v", false, "log tool invocations to stderr")
	cmd.Flags().StringVar(&countCmd.chartPath, "chart", "", "also write an HTML bar chart to this file")
	cmd.Flags().StringVar(&countCmd.configPath, "config", "", "explicit config file path")

	cmd.AddCommand(newVersionCommand())

	return cmd
}

// Run performs one counting pass: resolve config and repository root, build
// the entries, render the table and the optional chart.
func (c *CountCommand) Run(out io.Writer) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}

	startDir := c.workDir
	if startDir == "" {
		startDir, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("resolve working directory: %w", err)
		}
	}

	root, err := repo.FindRoot(startDir, cfg.Marker)
	if err != nil {
		return err
	}

	layoutDir := filepath.Join(root, filepath.FromSlash(cfg.LayoutDir))

	info, statErr := os.Stat(layoutDir)
	if statErr != nil || !info.IsDir() {
		return fmt.Errorf("%w: expected %s/ under %s", ErrUnexpectedLayout, cfg.LayoutDir, root)
	}

	runner := tokei.NewRunner(cfg.Tool, cfg.CodeLanguage, cfg.DocsLanguage, c.logger())

	libraryRows := scan.LibraryRows(root, cfg.Library)
	exampleRows := scan.ExampleRows(root, cfg.Examples, cfg.CodeLanguage)

	entries, err := report.NewBuilder(runner).Build(root, libraryRows, exampleRows, c.full)
	if err != nil {
		return err
	}

	table := render.Table(entries, render.TableOptions{
		Detailed:   c.detailed,
		Full:       c.full,
		Color:      render.ShouldColorize(c.color),
		Style:      cfg.Table.Style,
		CodeHeader: cfg.CodeLanguage,
		DocsHeader: cfg.DocsLanguage,
	})

	fmt.Fprintln(out, table)

	if c.chartPath != "" {
		chartErr := render.WriteChart(entries, c.chartPath)
		if chartErr != nil {
			return chartErr
		}
	}

	return nil
}

// logger returns a stderr debug logger when --verbose is set, nil otherwise.
func (c *CountCommand) logger() *slog.Logger {
	if !c.verbose {
		return nil
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "astraloc %s (commit: %s, built: %s)\n",
				version.Version, version.Commit, version.Date)
		},
	}
}
