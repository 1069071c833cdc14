// SPDX-FileCopyrightText: 2026 api2lua
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/api2lua/api2lua/internal/config"
	"github.com/api2lua/api2lua/internal/scanner"
)

var (
	initForce  bool
	initVerify bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new api2lua configuration file",
	Long: `Initialize a new api2lua configuration file in the current directory.

This command creates an api2lua.yaml file with sensible defaults
that you can customize for your project.

Features:
  - Finds directories holding runtime-api.json or prototype-api.json
  - Keeps the output directory out of the scanned paths
  - Applies the global --output and --format flags

Example:
  api2lua init                         # Detect documentation and create config
  api2lua init -o types                # Write definitions into ./types
  api2lua init --verify                # Enable Lua syntax verification
  api2lua init --force                 # Overwrite existing config`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite existing config file")
	initCmd.Flags().BoolVar(&initVerify, "verify", false, "enable verification of generated Lua files")
}

func runInit(cmd *cobra.Command, args []string) error {
	configFile := "api2lua.yaml"

	if _, err := os.Stat(configFile); err == nil && !initForce {
		return fmt.Errorf("config file %s already exists, use --force to overwrite", configFile)
	}

	projectRoot, err := filepath.Abs(".")
	if err != nil {
		return fmt.Errorf("failed to determine project root: %w", err)
	}

	cfg := config.Default()
	if output != "" {
		cfg.Output = output
	}
	if format != "" {
		cfg.Format = strings.ToLower(format)
	}
	cfg.Generation.Verify = initVerify

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	docDirs := detectDocumentDirs(projectRoot, cfg)
	if len(docDirs) > 0 {
		cfg.Source.Paths = docDirs
		printInfo("Found API documentation in: %s", strings.Join(docDirs, ", "))
	} else {
		printInfo("No API documentation found. Scanning '.' by default.")
	}

	out, err := buildConfigYAML(cfg)
	if err != nil {
		return err
	}

	if err := os.WriteFile(configFile, []byte(out), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	printInfo("Created %s", configFile)
	printVerbose("Output: %s", cfg.Output)
	printVerbose("Format: %s", cfg.Format)
	printVerbose("Paths: %s", strings.Join(cfg.Source.Paths, ", "))

	return nil
}

// detectDocumentDirs returns the directories, relative to projectRoot,
// that hold API documentation files.
func detectDocumentDirs(projectRoot string, cfg *config.Config) []string {
	s := scanner.New(scanner.Config{
		BasePath:        projectRoot,
		IncludePatterns: cfg.Source.Include,
		ExcludePatterns: append(slices.Clone(cfg.Source.Exclude), filepath.ToSlash(cfg.Output)+"/**"),
	})
	files, err := s.Scan()
	if err != nil {
		printVerbose("Documentation detection failed: %v", err)
		return nil
	}

	seen := make(map[string]bool)
	var dirs []string
	for _, f := range files {
		rel, err := filepath.Rel(projectRoot, filepath.Dir(f.Path))
		if err != nil {
			continue
		}
		rel = filepath.ToSlash(rel)
		if rel != "." {
			rel = "./" + rel
		}
		if !seen[rel] {
			seen[rel] = true
			dirs = append(dirs, rel)
		}
	}
	slices.Sort(dirs)
	return dirs
}

// buildConfigYAML builds a YAML config with a header comment.
func buildConfigYAML(cfg *config.Config) (string, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to encode config: %w", err)
	}

	header := `# api2lua configuration file
#
# source.paths are scanned for runtime-api.json and prototype-api.json.
# Definition files are written to output as <stage>.lua.

`
	return header + string(data), nil
}
