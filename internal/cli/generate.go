// SPDX-FileCopyrightText: 2026 api2lua
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/api2lua/api2lua/internal/config"
	"github.com/api2lua/api2lua/internal/util"
)

var (
	generateSections []string
	generateVerify   bool
	generateStrict   bool
	generateDryRun   bool
	generateInclude  []string
	generateExclude  []string
)

var generateCmd = &cobra.Command{
	Use:   "generate [paths...]",
	Short: "Generate Lua definition files from API documentation",
	Long: `Generate Lua language server definition files from API documentation.

The generate command scans the given paths for runtime-api.json and
prototype-api.json, parses them and writes one annotation file per
document into the output directory (runtime.lua, prototype.lua).

Sections:
  defines, concepts, classes, events, global objects, global functions,
  prototypes, types

Example:
  api2lua generate                             # Generate from configured paths
  api2lua generate ./doc-html                  # Generate from a specific directory
  api2lua generate -o types runtime-api.json   # Write types/runtime.lua
  api2lua generate --sections classes,defines  # Only emit some sections
  api2lua generate --verify                    # Check the Lua syntax of the output
  api2lua generate -f yaml                     # Dump the parsed model as YAML
  api2lua generate --dry-run                   # Preview without writing`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringSliceVarP(&generateSections, "sections", "s", nil, "sections to emit (default: all)")
	generateCmd.Flags().BoolVar(&generateVerify, "verify", false, "parse generated Lua files and fail on syntax errors")
	generateCmd.Flags().BoolVar(&generateStrict, "strict", false, "fail when any document cannot be parsed")
	generateCmd.Flags().BoolVar(&generateDryRun, "dry-run", false, "preview output without writing files")
	generateCmd.Flags().StringSliceVarP(&generateInclude, "include", "i", nil, "glob patterns to include")
	generateCmd.Flags().StringSliceVarP(&generateExclude, "exclude", "e", nil, "glob patterns to exclude")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, paths, err := loadConfig(args)
	if err != nil {
		return err
	}
	applyGenerateFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	printVerbose("Configuration:")
	printVerbose("  Output: %s", cfg.Output)
	printVerbose("  Format: %s", cfg.Format)
	if len(cfg.Generation.Sections) > 0 {
		printVerbose("  Sections: %s", strings.Join(cfg.Generation.Sections, ", "))
	}
	printVerbose("  Verify: %t", cfg.Generation.Verify)
	printVerbose("  Paths: %s", strings.Join(paths, ", "))

	if generateDryRun {
		printInfo("Dry run mode - no files will be written")
	}

	files, err := runGeneration(cmd.Context(), cfg, paths, generateOptions{DryRun: generateDryRun})
	if err != nil {
		return err
	}

	for _, f := range files {
		if generateDryRun {
			printInfo("Would write %s (%d bytes) from %s", f.Path, f.Size, f.Source)
		} else {
			printInfo("Wrote %s (%d bytes)", f.Path, f.Size)
		}
	}
	printVerbose("Generated %s", util.Plural(len(files), "file", "files"))

	return nil
}

// applyGenerateFlags applies generate's command-line overrides to cfg.
func applyGenerateFlags(cfg *config.Config) {
	if len(generateSections) > 0 {
		cfg.Generation.Sections = generateSections
	}
	if generateVerify {
		cfg.Generation.Verify = true
	}
	if generateStrict {
		cfg.Generation.StrictMode = true
	}
	if len(generateInclude) > 0 {
		cfg.Source.Include = generateInclude
	}
	if len(generateExclude) > 0 {
		cfg.Source.Exclude = generateExclude
	}
}
