// SPDX-FileCopyrightText: 2026 api2lua
// SPDX-License-Identifier: FSL-1.1-MIT

// Package config provides configuration loading and validation for api2lua.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the api2lua configuration.
type Config struct {
	// Output is the directory generated files are written to
	Output string `mapstructure:"output" yaml:"output" json:"output"`

	// Format is the output format (lua, yaml, json)
	Format string `mapstructure:"format" yaml:"format" json:"format"`

	// Source contains documentation file discovery configuration
	Source SourceConfig `mapstructure:"source" yaml:"source" json:"source"`

	// Generation contains generation behavior configuration
	Generation GenerationConfig `mapstructure:"generation" yaml:"generation" json:"generation"`

	// Watch contains file watching configuration
	Watch WatchConfig `mapstructure:"watch" yaml:"watch" json:"watch"`
}

// SourceConfig contains documentation file discovery configuration.
type SourceConfig struct {
	// Paths is a list of files or directories to scan
	Paths []string `mapstructure:"paths" yaml:"paths" json:"paths"`

	// Include is a list of glob patterns to include
	Include []string `mapstructure:"include" yaml:"include" json:"include"`

	// Exclude is a list of glob patterns to exclude
	Exclude []string `mapstructure:"exclude" yaml:"exclude" json:"exclude"`
}

// GenerationConfig contains generation behavior configuration.
type GenerationConfig struct {
	// Sections restricts the emitted sections; empty means all
	Sections []string `mapstructure:"sections" yaml:"sections" json:"sections"`

	// Verify parses generated Lua files and fails on syntax errors
	Verify bool `mapstructure:"verify" yaml:"verify" json:"verify"`

	// StrictMode aborts on the first document that fails to parse
	// instead of skipping it
	StrictMode bool `mapstructure:"strictMode" yaml:"strictMode" json:"strictMode"`
}

// WatchConfig contains file watching configuration.
type WatchConfig struct {
	// Debounce is the debounce duration in milliseconds
	Debounce int `mapstructure:"debounce" yaml:"debounce" json:"debounce"`
}

// configFileNames is the list of config file names to search for (in order).
var configFileNames = []string{
	"api2lua.yaml",
	"api2lua.json",
	".api2lua.yaml",
	".api2lua.json",
}

// supportedFormats is the list of supported output formats.
var supportedFormats = []string{
	"lua",
	"yaml",
	"json",
}

// supportedSections mirrors the section names the emitter produces.
var supportedSections = []string{
	"defines",
	"concepts",
	"classes",
	"events",
	"global objects",
	"global functions",
	"prototypes",
	"types",
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation error: %s: %s", e.Field, e.Message)
}

// ValidationErrors represents multiple validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	var sb strings.Builder
	sb.WriteString("config validation errors:\n")
	for _, err := range e {
		sb.WriteString("  - ")
		sb.WriteString(err.Field)
		sb.WriteString(": ")
		sb.WriteString(err.Message)
		sb.WriteString("\n")
	}
	return sb.String()
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Output: "library",
		Format: "lua",
		Source: SourceConfig{
			Paths:   []string{"."},
			Include: []string{"**/runtime-api.json", "**/prototype-api.json"},
			Exclude: []string{
				".git/**",
				"node_modules/**",
				"library/**",
			},
		},
		Generation: GenerationConfig{
			Sections: []string{},
		},
		Watch: WatchConfig{
			Debounce: 500,
		},
	}
}

// Load loads the configuration from a file.
// It searches for config files in the following order:
// 1. api2lua.yaml
// 2. api2lua.json
// 3. .api2lua.yaml
// 4. .api2lua.json
//
// If configPath is provided, it will use that path instead.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		name := ConfigFilePath()
		if name == "" {
			return Default(), nil
		}
		v.SetConfigFile(name)
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// LoadFromPath loads the configuration from a specific directory.
func LoadFromPath(dir string) (*Config, error) {
	for _, name := range configFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}
	return Default(), nil
}

// setDefaults sets the default values for viper.
func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("output", d.Output)
	v.SetDefault("format", d.Format)
	v.SetDefault("source.paths", d.Source.Paths)
	v.SetDefault("source.include", d.Source.Include)
	v.SetDefault("source.exclude", d.Source.Exclude)
	v.SetDefault("generation.sections", d.Generation.Sections)
	v.SetDefault("generation.verify", d.Generation.Verify)
	v.SetDefault("generation.strictMode", d.Generation.StrictMode)
	v.SetDefault("watch.debounce", d.Watch.Debounce)
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if c.Format != "" && !slices.Contains(supportedFormats, c.Format) {
		errs = append(errs, ValidationError{
			Field:   "format",
			Message: fmt.Sprintf("unsupported format %q, must be one of: %s", c.Format, strings.Join(supportedFormats, ", ")),
		})
	}

	for _, section := range c.Generation.Sections {
		if !slices.Contains(supportedSections, section) {
			errs = append(errs, ValidationError{
				Field:   "generation.sections",
				Message: fmt.Sprintf("unknown section %q, must be one of: %s", section, strings.Join(supportedSections, ", ")),
			})
		}
	}

	if c.Generation.Verify && c.Format != "" && c.Format != "lua" {
		errs = append(errs, ValidationError{
			Field:   "generation.verify",
			Message: "verify requires the lua format",
		})
	}

	if c.Watch.Debounce < 0 {
		errs = append(errs, ValidationError{
			Field:   "watch.debounce",
			Message: "debounce must be non-negative",
		})
	}

	if c.Output == "" {
		errs = append(errs, ValidationError{
			Field:   "output",
			Message: "output directory is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ConfigFilePath returns the path of the config file in the working
// directory, if any.
func ConfigFilePath() string {
	for _, name := range configFileNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}
