// SPDX-FileCopyrightText: 2026 api2lua
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/api2lua/api2lua/internal/emit"
	"github.com/api2lua/api2lua/internal/luacheck"
	"github.com/api2lua/api2lua/internal/util"
)

// Exit codes for check command
const (
	ExitCodeMatch      = 0 // Output is valid and up to date
	ExitCodeDifference = 1 // Output is invalid Lua or out of date
	ExitCodeCheckError = 2 // Error during analysis
)

var (
	checkSkipStale bool
	checkCI        bool
)

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Check that generated definitions are valid and up to date",
	Long: `Check parses the API documentation, renders the definition files in
memory and validates their Lua syntax. Files already present in the output
directory are compared with the fresh rendering. Nothing is written.

It is useful in CI pipelines to ensure the committed definition files are
in sync with the documentation they were generated from.

Exit codes:
  0  Output is valid and up to date
  1  Output is invalid Lua or out of date
  2  Error during analysis (configuration or parse failure)

Example:
  api2lua check                       # Validate against configured paths
  api2lua check ./doc-html            # Validate specific paths
  api2lua check --skip-stale          # Only validate the Lua syntax
  api2lua check --ci                  # CI mode: print only the summary`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&checkSkipStale, "skip-stale", false, "do not compare with files in the output directory")
	checkCmd.Flags().BoolVar(&checkCI, "ci", false, "CI mode: print only the summary line")
}

// checkResult collects the findings of a check run.
type checkResult struct {
	Checked int
	Invalid []string
	Stale   []string
	Missing []string
}

func (r *checkResult) ok() bool {
	return len(r.Invalid) == 0 && len(r.Stale) == 0
}

func (r *checkResult) summary() string {
	if r.ok() {
		return fmt.Sprintf("%s checked, all valid and up to date", util.Plural(r.Checked, "file", "files"))
	}
	var parts []string
	if len(r.Invalid) > 0 {
		parts = append(parts, fmt.Sprintf("%d invalid", len(r.Invalid)))
	}
	if len(r.Stale) > 0 {
		parts = append(parts, fmt.Sprintf("%d out of date", len(r.Stale)))
	}
	return fmt.Sprintf("%s checked: %s", util.Plural(r.Checked, "file", "files"), strings.Join(parts, ", "))
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, paths, err := loadConfig(args)
	if err != nil {
		return &ExitError{Code: ExitCodeCheckError, Err: err}
	}
	cfg.Generation.StrictMode = true

	if err := cfg.Validate(); err != nil {
		return &ExitError{Code: ExitCodeCheckError, Err: fmt.Errorf("invalid configuration: %w", err)}
	}

	printVerbose("Check configuration:")
	printVerbose("  Output: %s", cfg.Output)
	printVerbose("  Compare with output: %t", !checkSkipStale)
	printVerbose("  Paths: %s", strings.Join(paths, ", "))

	docs, err := loadDocuments(cfg, paths)
	if err != nil {
		return &ExitError{Code: ExitCodeCheckError, Err: err}
	}
	targets, err := outputPaths(cfg, docs)
	if err != nil {
		return &ExitError{Code: ExitCodeCheckError, Err: err}
	}

	writer := emit.NewWriter(emit.Options{Sections: cfg.Generation.Sections})
	checker := luacheck.New()
	defer checker.Close()

	result := &checkResult{}
	for i, doc := range docs {
		target := targets[i]
		var buf bytes.Buffer
		if err := writer.Write(doc, &buf, cfg.Format); err != nil {
			return &ExitError{Code: ExitCodeCheckError, Err: fmt.Errorf("failed to render %s: %w", doc.Path, err)}
		}
		result.Checked++

		if cfg.Format == "" || cfg.Format == emit.FormatLua {
			err := checker.Validate(cmd.Context(), target, buf.Bytes())
			var verr *luacheck.ValidationError
			switch {
			case errors.As(err, &verr):
				result.Invalid = append(result.Invalid, target)
				if !checkCI {
					printError("%v", verr)
				}
			case err != nil:
				return &ExitError{Code: ExitCodeCheckError, Err: err}
			}
		}

		if checkSkipStale {
			continue
		}
		existing, err := os.ReadFile(target)
		switch {
		case errors.Is(err, os.ErrNotExist):
			result.Missing = append(result.Missing, target)
		case err != nil:
			return &ExitError{Code: ExitCodeCheckError, Err: fmt.Errorf("failed to read %s: %w", target, err)}
		case !bytes.Equal(existing, buf.Bytes()):
			result.Stale = append(result.Stale, target)
		}
	}

	if !checkCI {
		for _, path := range result.Stale {
			printInfo("  ~ %s is out of date", path)
		}
		for _, path := range result.Missing {
			printVerbose("  ? %s has not been generated", path)
		}
	}
	printInfo("%s", result.summary())

	if !result.ok() {
		if len(result.Stale) > 0 && !checkCI {
			printInfo("Run 'api2lua generate' to update the definition files")
		}
		return &ExitError{Code: ExitCodeDifference, Err: errors.New(result.summary())}
	}
	return nil
}
