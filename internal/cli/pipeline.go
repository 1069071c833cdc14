// SPDX-FileCopyrightText: 2026 api2lua
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/api2lua/api2lua/internal/apidoc"
	"github.com/api2lua/api2lua/internal/config"
	"github.com/api2lua/api2lua/internal/emit"
	"github.com/api2lua/api2lua/internal/luacheck"
	"github.com/api2lua/api2lua/internal/scanner"
	"github.com/api2lua/api2lua/internal/util"
)

// loadConfig loads the config file and applies the global flag overrides.
// It returns the paths to scan: args if given, else the configured paths.
func loadConfig(args []string) (*config.Config, []string, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if output != "" {
		cfg.Output = output
	}
	if format != "" {
		cfg.Format = strings.ToLower(format)
	}

	paths := args
	if len(paths) == 0 {
		paths = cfg.Source.Paths
	}
	return cfg, paths, nil
}

// scanDocuments discovers documentation files under each path.
func scanDocuments(cfg *config.Config, paths []string) ([]scanner.DocumentFile, error) {
	scannerCfg := scanner.Config{
		IncludePatterns: cfg.Source.Include,
		ExcludePatterns: cfg.Source.Exclude,
	}

	var files []scanner.DocumentFile
	seen := make(map[string]bool)
	for _, path := range paths {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve path %s: %w", path, err)
		}
		scannerCfg.BasePath = absPath
		pathFiles, err := scanner.New(scannerCfg).Scan()
		if err != nil {
			return nil, fmt.Errorf("failed to scan path %s: %w", path, err)
		}
		for _, f := range pathFiles {
			if !seen[f.Path] {
				seen[f.Path] = true
				files = append(files, f)
			}
		}
	}
	return files, nil
}

// loadDocuments scans and parses every documentation file. A file that
// fails to parse is skipped with a warning unless strict mode is on.
func loadDocuments(cfg *config.Config, paths []string) ([]*apidoc.Document, error) {
	files, err := scanDocuments(cfg, paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no API documentation files found in %s", strings.Join(paths, ", "))
	}
	log.Debugw("scanned documentation files", "count", len(files))

	var docs []*apidoc.Document
	for _, f := range files {
		doc, err := apidoc.Decode(f.Content)
		if err != nil {
			if cfg.Generation.StrictMode {
				return nil, fmt.Errorf("%s: %w", f.Path, err)
			}
			log.Warnw("skipping document", "path", f.Path, "error", err)
			continue
		}
		doc.Path = f.Path
		if f.Stage != "" && f.Stage != doc.Stage {
			log.Warnw("document stage does not match file name", "path", f.Path, "stage", doc.Stage)
		}
		log.Infow("parsed document", append([]any{"path", f.Path}, documentStats(doc)...)...)
		docs = append(docs, doc)
	}

	if len(docs) == 0 {
		return nil, fmt.Errorf("none of the %s could be parsed", util.Plural(len(files), "documentation file", "documentation files"))
	}
	return docs, nil
}

// documentStats returns structured log fields describing doc.
func documentStats(doc *apidoc.Document) []any {
	info := doc.Info()
	fields := []any{"stage", doc.Stage, "api_version", info.APIVersion}
	switch {
	case doc.Runtime != nil:
		fields = append(fields,
			"classes", len(doc.Runtime.Classes),
			"events", len(doc.Runtime.Events),
			"concepts", len(doc.Runtime.Concepts),
			"defines", len(doc.Runtime.Defines),
		)
	case doc.Prototype != nil:
		fields = append(fields,
			"prototypes", len(doc.Prototype.Prototypes),
			"types", len(doc.Prototype.Types),
		)
	}
	return fields
}

// outputPaths maps every document to its file in the output directory.
// Two documents of the same stage would overwrite each other.
func outputPaths(cfg *config.Config, docs []*apidoc.Document) ([]string, error) {
	paths := make([]string, len(docs))
	owner := make(map[string]string, len(docs))
	for i, doc := range docs {
		path := filepath.Join(cfg.Output, emit.OutputName(doc, cfg.Format))
		if prev, ok := owner[path]; ok {
			return nil, fmt.Errorf("%s and %s both write %s", prev, doc.Path, path)
		}
		owner[path] = doc.Path
		paths[i] = path
	}
	return paths, nil
}

// generatedFile describes one emitted output file.
type generatedFile struct {
	Path   string
	Source string
	Size   int
}

// generateOptions controls runGeneration.
type generateOptions struct {
	DryRun bool
}

// runGeneration parses the documents under paths and writes one output
// file per document.
func runGeneration(ctx context.Context, cfg *config.Config, paths []string, opts generateOptions) ([]generatedFile, error) {
	docs, err := loadDocuments(cfg, paths)
	if err != nil {
		return nil, err
	}
	targets, err := outputPaths(cfg, docs)
	if err != nil {
		return nil, err
	}

	writer := emit.NewWriter(emit.Options{Sections: cfg.Generation.Sections})
	var checker *luacheck.Checker
	if cfg.Generation.Verify {
		checker = luacheck.New()
		defer checker.Close()
	}

	files := make([]generatedFile, 0, len(docs))
	for i, doc := range docs {
		target := targets[i]

		if opts.DryRun {
			var buf bytes.Buffer
			if err := writer.Write(doc, &buf, cfg.Format); err != nil {
				return nil, fmt.Errorf("failed to render %s: %w", doc.Path, err)
			}
			if checker != nil {
				if err := checker.Validate(ctx, target, buf.Bytes()); err != nil {
					return nil, err
				}
			}
			files = append(files, generatedFile{Path: target, Source: doc.Path, Size: buf.Len()})
			continue
		}

		if err := writer.WriteFile(doc, target, cfg.Format); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", target, err)
		}
		if checker != nil {
			if err := checker.ValidateFile(ctx, target); err != nil {
				return nil, err
			}
		}
		info, err := os.Stat(target)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", target, err)
		}
		log.Debugw("wrote output file", "path", target, "bytes", info.Size())
		files = append(files, generatedFile{Path: target, Source: doc.Path, Size: int(info.Size())})
	}
	return files, nil
}
