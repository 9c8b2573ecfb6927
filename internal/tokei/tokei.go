// Package tokei shells out to the external line-counting tool and converts
// its JSON report into line-count stats.
package tokei

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/astra-gui/astraloc/internal/stats"
)

var (
	// ErrToolNotFound indicates the counter executable is absent from PATH.
	ErrToolNotFound = errors.New("counting tool not found in PATH")
	// ErrToolFailed indicates the counter subprocess exited non-zero.
	ErrToolFailed = errors.New("counting tool failed")
	// ErrMalformedOutput indicates the counter emitted something other than
	// the expected JSON report.
	ErrMalformedOutput = errors.New("malformed counting tool output")
)

// LanguageReport is the per-language slice of the tool's JSON report. Only
// the fields the extractor reads are decoded; the rest of the report is
// ignored by contract.
type LanguageReport struct {
	Code  uint64 `json:"code"`
	Lines uint64 `json:"lines"`
}

// Report is the tool's JSON report keyed by language name. Languages with no
// matching files are omitted by the tool, never zero-valued.
type Report map[string]LanguageReport

// Extract reads the code-line count of codeLang and the total line count of
// docsLang from the report. Absent languages count as zero.
func (r Report) Extract(codeLang, docsLang string) stats.Stats {
	return stats.Stats{
		Code: r[codeLang].Code,
		Docs: r[docsLang].Lines,
	}
}

// Runner invokes the external counting tool over sets of paths.
type Runner struct {
	tool     string
	codeLang string
	docsLang string
	logger   *slog.Logger
}

// NewRunner returns a Runner for the given tool binary and language keys.
// A nil logger disables invocation logging.
func NewRunner(tool, codeLang, docsLang string, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Runner{
		tool:     tool,
		codeLang: codeLang,
		docsLang: docsLang,
		logger:   logger,
	}
}

// Report runs the tool over the given paths with JSON output and returns the
// parsed report.
func (r *Runner) Report(paths []string) (Report, error) {
	bin, lookErr := exec.LookPath(r.tool)
	if lookErr != nil {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, r.tool)
	}

	args := append([]string{"--output", "json", "--"}, paths...)
	cmd := exec.Command(bin, args...)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()

	runErr := cmd.Run()

	r.logger.Debug("ran counting tool",
		"tool", r.tool,
		"paths", len(paths),
		"elapsed", time.Since(start))

	if runErr != nil {
		diag := strings.TrimSpace(stderr.String())
		if diag == "" {
			diag = runErr.Error()
		}

		return nil, fmt.Errorf("%w: %s", ErrToolFailed, diag)
	}

	var report Report

	decodeErr := json.Unmarshal(stdout.Bytes(), &report)
	if decodeErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedOutput, decodeErr)
	}

	return report, nil
}

// Count runs the tool over the given paths and extracts the configured
// language counts.
func (r *Runner) Count(paths []string) (stats.Stats, error) {
	report, err := r.Report(paths)
	if err != nil {
		return stats.Stats{}, err
	}

	return report.Extract(r.codeLang, r.docsLang), nil
}
