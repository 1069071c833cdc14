// SPDX-FileCopyrightText: 2026 api2lua
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/api2lua/api2lua/internal/apidoc"
	"github.com/api2lua/api2lua/internal/differ"
)

var (
	diffFailOnBreaking bool
	diffSummaryOnly    bool
)

var diffCmd = &cobra.Command{
	Use:   "diff <old> <new>",
	Short: "Compare two versions of an API document",
	Long: `Compare two versions of an API document and show the differences.

Both files must be of the same stage. Classes and their attributes and
methods, concepts, defines, events and global objects are matched by name.
Removals are reported as breaking changes, since scripts using the removed
names stop working.

Example:
  api2lua diff 1.1/runtime-api.json 2.0/runtime-api.json
  api2lua diff --summary old.json new.json        # Only print the summary
  api2lua diff --fail-on-breaking old.json new.json`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

func init() {
	diffCmd.Flags().BoolVar(&diffFailOnBreaking, "fail-on-breaking", false, "exit with status 1 when breaking changes are found")
	diffCmd.Flags().BoolVar(&diffSummaryOnly, "summary", false, "print only the summary line")
}

func runDiff(cmd *cobra.Command, args []string) error {
	printVerbose("Comparing %s against %s...", args[0], args[1])

	oldDoc, err := apidoc.ReadFile(args[0])
	if err != nil {
		return err
	}
	newDoc, err := apidoc.ReadFile(args[1])
	if err != nil {
		return err
	}

	result, err := differ.NewDiffer().Diff(oldDoc, newDoc)
	if err != nil {
		return err
	}
	log.Infow("compared documents", "stage", oldDoc.Stage, "changes", len(result.Changes))

	if diffSummaryOnly {
		fmt.Fprintln(stdout, result.Summary)
	} else {
		_, _ = io.WriteString(stdout, differ.FormatDiff(result))
	}

	if diffFailOnBreaking && result.HasBreakingChanges {
		return &ExitError{Code: 1, Err: errors.New("breaking changes detected")}
	}
	return nil
}
