// SPDX-FileCopyrightText: 2026 api2lua
// SPDX-License-Identifier: FSL-1.1-MIT

package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/api2lua/api2lua/pkg/types"
)

func TestDetectStage(t *testing.T) {
	tests := []struct {
		path     string
		expected types.Stage
	}{
		{"runtime-api.json", types.StageRuntime},
		{"Runtime-API.json", types.StageRuntime},
		{"/doc-html/runtime-api.json", types.StageRuntime},
		{"prototype-api.json", types.StagePrototype},
		{"prototype.json", types.StagePrototype},
		{"data/prototype-api-2.0.json", types.StagePrototype},
		{"changelog.json", ""},
		{"api.json", ""},
		{"Makefile", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectStage(tt.path))
		})
	}
}

func TestIsSupportedFile(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"runtime-api.json", true},
		{"PROTOTYPE-API.JSON", true},
		{"runtime.lua", false},
		{"runtime-api.json.bak", false},
		{"readme.md", false},
		{"config.yaml", false},
		{"Makefile", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsSupportedFile(tt.path))
		})
	}
}
