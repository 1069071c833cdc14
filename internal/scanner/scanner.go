// SPDX-FileCopyrightText: 2026 api2lua
// SPDX-License-Identifier: FSL-1.1-MIT

package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Config holds scanner configuration.
type Config struct {
	// BasePath is the directory patterns are matched against (defaults to
	// the current directory)
	BasePath string

	// IncludePatterns select documentation files, e.g. "**/runtime-api.json"
	IncludePatterns []string

	// ExcludePatterns drop files; a pattern ending in "/**" also prunes the
	// directory it names, e.g. "library/**"
	ExcludePatterns []string
}

// DefaultIncludePatterns match the file names the game ships its API
// documentation under.
var DefaultIncludePatterns = []string{"**/runtime-api.json", "**/prototype-api.json"}

// Scanner discovers API documentation files.
type Scanner struct {
	config Config
}

// New creates a new Scanner with the given configuration.
func New(config Config) *Scanner {
	if config.BasePath == "" {
		config.BasePath = "."
	}
	if len(config.IncludePatterns) == 0 {
		config.IncludePatterns = DefaultIncludePatterns
	}

	return &Scanner{
		config: config,
	}
}

// Scan reads every documentation file under the base path.
func (s *Scanner) Scan() ([]DocumentFile, error) {
	return s.ScanPath(s.config.BasePath)
}

// ScanPath reads the documentation files under path. A path naming a file
// is read whenever it has the documentation extension, regardless of the
// include patterns.
func (s *Scanner) ScanPath(path string) ([]DocumentFile, error) {
	root, info, err := stat(path)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if !IsSupportedFile(root) {
			return nil, nil
		}
		f, err := readDocument(root, info)
		if err != nil {
			return nil, err
		}
		return []DocumentFile{f}, nil
	}

	var files []DocumentFile
	err = s.walk(root, func(path string, info fs.FileInfo) {
		// Unreadable files are skipped like unreadable directories.
		if f, err := readDocument(path, info); err == nil {
			files = append(files, f)
		}
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// ScanPaths scans several paths, returning each file once.
func (s *Scanner) ScanPaths(paths []string) ([]DocumentFile, error) {
	var all []DocumentFile
	seen := make(map[string]bool)

	for _, path := range paths {
		files, err := s.ScanPath(path)
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			if !seen[f.Path] {
				seen[f.Path] = true
				all = append(all, f)
			}
		}
	}

	return all, nil
}

// FileCount counts the matching files under the base path without reading
// them.
func (s *Scanner) FileCount() (int, error) {
	root, _, err := stat(s.config.BasePath)
	if err != nil {
		return 0, err
	}

	count := 0
	err = s.walk(root, func(string, fs.FileInfo) { count++ })
	return count, err
}

// walk calls visit for every included file under root. Patterns are matched
// against slash-separated paths relative to the base path.
func (s *Scanner) walk(root string, visit func(path string, info fs.FileInfo)) error {
	base, err := filepath.Abs(s.config.BasePath)
	if err != nil {
		return fmt.Errorf("failed to resolve base path: %w", err)
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		rel := relativeTo(base, path)

		if d.IsDir() {
			if path != root && s.prunes(rel) {
				return filepath.SkipDir
			}
			return nil
		}
		if !IsSupportedFile(path) || !s.includes(rel) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}
		visit(path, info)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to walk directory: %w", err)
	}
	return nil
}

// includes applies the exclude patterns, then the include patterns.
func (s *Scanner) includes(rel string) bool {
	return !matchAny(s.config.ExcludePatterns, rel) && matchAny(s.config.IncludePatterns, rel)
}

// prunes reports whether an exclude pattern covers the whole directory.
func (s *Scanner) prunes(rel string) bool {
	for _, pattern := range s.config.ExcludePatterns {
		dir, ok := strings.CutSuffix(pattern, "/**")
		if !ok {
			continue
		}
		if matched, _ := doublestar.Match(dir, rel); matched {
			return true
		}
	}
	return false
}

// matchAny ignores malformed patterns.
func matchAny(patterns []string, rel string) bool {
	for _, pattern := range patterns {
		if matched, _ := doublestar.Match(pattern, rel); matched {
			return true
		}
	}
	return false
}

func relativeTo(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		rel = filepath.Base(path)
	}
	return filepath.ToSlash(rel)
}

func stat(path string) (string, fs.FileInfo, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", nil, fmt.Errorf("failed to resolve path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil, fmt.Errorf("path does not exist: %s", abs)
		}
		return "", nil, fmt.Errorf("failed to stat path: %w", err)
	}
	return abs, info, nil
}

func readDocument(path string, info fs.FileInfo) (DocumentFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return DocumentFile{}, fmt.Errorf("failed to read file: %w", err)
	}
	return DocumentFile{
		Path:    path,
		Stage:   DetectStage(path),
		Content: content,
		ModTime: info.ModTime(),
	}, nil
}
