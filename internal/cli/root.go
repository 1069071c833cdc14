// SPDX-FileCopyrightText: 2026 api2lua
// SPDX-License-Identifier: FSL-1.1-MIT

// Package cli provides the command-line interface for api2lua.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/api2lua/api2lua/internal/logging"
)

// Global flags
var (
	cfgFile   string
	output    string
	format    string
	verbosity int
	quiet     bool
)

// Output streams and logger, bound to the executing command.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
	log              = logging.Nop()
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "api2lua",
	Short: "Lua language server definitions from machine-readable API docs",
	Long: `api2lua turns the machine-readable API documentation of a Lua-scripted
game into annotation files for the Lua language server.

It reads the runtime and prototype JSON documents, builds a typed model of
every class, concept, define, event and prototype, and writes ---@class and
---@field declarations that editors use for completion and type checking.

Example:
  api2lua generate ./doc-html          # Write library/runtime.lua and library/prototype.lua
  api2lua init                         # Create an api2lua.yaml config file
  api2lua check --ci                   # Verify generated files are valid and up to date
  api2lua print runtime-api.json LuaEntity
  api2lua watch                        # Regenerate when the docs change`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		stdout = cmd.OutOrStdout()
		stderr = cmd.ErrOrStderr()
		log = logging.New(stderr, verbosity)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	defer func() { _ = log.Sync() }()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: api2lua.yaml)")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "output directory (default: library)")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "", "output format: lua, yaml, json (default: lua)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "enable verbose output (repeat for debug logs)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(printCmd)
}

// ExitError carries the process exit code of a failed command.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode returns the process exit code for an error returned by Execute.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}

// printInfo prints a message if not in quiet mode.
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(stdout, format+"\n", args...)
	}
}

// printVerbose prints a message if verbose mode is enabled.
func printVerbose(format string, args ...interface{}) {
	if verbosity > 0 && !quiet {
		fmt.Fprintf(stdout, format+"\n", args...)
	}
}

// printError prints an error message.
func printError(format string, args ...interface{}) {
	fmt.Fprintf(stderr, "Error: "+format+"\n", args...)
}
