// SPDX-FileCopyrightText: 2026 api2lua
// SPDX-License-Identifier: FSL-1.1-MIT

// Package scanner discovers machine-readable API documentation files.
package scanner

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/api2lua/api2lua/pkg/types"
)

// DocumentFile represents a discovered API documentation file.
type DocumentFile struct {
	// Path is the absolute path to the file
	Path string

	// Stage is the stage guessed from the file name, empty when unknown.
	// The authoritative stage is read from the document itself.
	Stage types.Stage

	// Content is the file content
	Content []byte

	// ModTime is the last modification time
	ModTime time.Time
}

// stagePrefixes maps file name prefixes to document stages.
var stagePrefixes = map[string]types.Stage{
	"runtime":   types.StageRuntime,
	"prototype": types.StagePrototype,
}

// documentExtension is the extension API documentation is shipped with.
const documentExtension = ".json"

// DetectStage guesses the document stage from a file name such as
// "runtime-api.json".
func DetectStage(path string) types.Stage {
	base := strings.ToLower(filepath.Base(path))
	prefix, _, _ := strings.Cut(base, "-")
	prefix = strings.TrimSuffix(prefix, filepath.Ext(prefix))
	return stagePrefixes[prefix]
}

// IsSupportedFile reports whether path has the documentation extension.
func IsSupportedFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), documentExtension)
}
