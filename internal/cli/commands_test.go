// SPDX-FileCopyrightText: 2026 api2lua
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture returns the contents of a document in the apidoc test data.
func fixture(t *testing.T, name string) []byte {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("..", "apidoc", "testdata", name))
	require.NoError(t, err)
	return data
}

// setupDocs creates a directory holding both fixture documents and returns
// it together with a fresh output directory path.
func setupDocs(t *testing.T) (docs string, out string) {
	t.Helper()

	root := t.TempDir()
	docs = filepath.Join(root, "doc-html")
	require.NoError(t, os.MkdirAll(docs, 0o755))
	for _, name := range []string{"runtime-api.json", "prototype-api.json"} {
		require.NoError(t, os.WriteFile(filepath.Join(docs, name), fixture(t, name), 0o644))
	}
	return docs, filepath.Join(root, "library")
}

// withoutClass writes a copy of the runtime fixture lacking the named class.
func withoutClass(t *testing.T, dir, name string) string {
	t.Helper()

	var obj map[string]any
	require.NoError(t, json.Unmarshal(fixture(t, "runtime-api.json"), &obj))

	var kept []any
	for _, c := range obj["classes"].([]any) {
		if c.(map[string]any)["name"] != name {
			kept = append(kept, c)
		}
	}
	obj["classes"] = kept

	data, err := json.Marshal(obj)
	require.NoError(t, err)
	path := filepath.Join(dir, "runtime-api.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestGenerateCommand(t *testing.T) {
	docs, out := setupDocs(t)

	output, err := executeCommand(rootCmd, "generate", "-o", out, docs)
	require.NoError(t, err)

	assert.Contains(t, output, "Wrote "+filepath.Join(out, "runtime.lua"))
	assert.Contains(t, output, "Wrote "+filepath.Join(out, "prototype.lua"))

	runtimeLua, err := os.ReadFile(filepath.Join(out, "runtime.lua"))
	require.NoError(t, err)
	assert.Contains(t, string(runtimeLua), "---@meta\n")
	assert.Contains(t, string(runtimeLua), "---@class LuaEntity\n")

	prototypeLua, err := os.ReadFile(filepath.Join(out, "prototype.lua"))
	require.NoError(t, err)
	assert.Contains(t, string(prototypeLua), "---@class AccumulatorPrototype\n")
}

func TestGenerateCommand_Verify(t *testing.T) {
	docs, out := setupDocs(t)

	_, err := executeCommand(rootCmd, "generate", "--verify", "-o", out, docs)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(out, "runtime.lua"))
}

func TestGenerateCommand_DryRun(t *testing.T) {
	docs, out := setupDocs(t)

	output, err := executeCommand(rootCmd, "generate", "--dry-run", "--verify", "-o", out, docs)
	require.NoError(t, err)

	assert.Contains(t, output, "Dry run mode")
	assert.Contains(t, output, "Would write "+filepath.Join(out, "runtime.lua"))
	assert.NoDirExists(t, out)
}

func TestGenerateCommand_Sections(t *testing.T) {
	docs, out := setupDocs(t)

	_, err := executeCommand(rootCmd, "generate", "--sections", "classes", "-o", out, docs)
	require.NoError(t, err)

	runtimeLua, err := os.ReadFile(filepath.Join(out, "runtime.lua"))
	require.NoError(t, err)
	assert.Contains(t, string(runtimeLua), "-- Classes\n")
	assert.NotContains(t, string(runtimeLua), "-- Defines\n")
}

func TestGenerateCommand_InvalidSection(t *testing.T) {
	docs, out := setupDocs(t)

	_, err := executeCommand(rootCmd, "generate", "--sections", "operators", "-o", out, docs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestGenerateCommand_YAML(t *testing.T) {
	docs, out := setupDocs(t)

	_, err := executeCommand(rootCmd, "generate", "-f", "yaml", "-o", out, docs)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(out, "runtime.yaml"))
	assert.FileExists(t, filepath.Join(out, "prototype.yaml"))
}

func TestGenerateCommand_NoDocuments(t *testing.T) {
	_, err := executeCommand(rootCmd, "generate", "-o", filepath.Join(t.TempDir(), "out"), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no API documentation files found")
}

func TestGenerateCommand_SkipsBrokenDocuments(t *testing.T) {
	docs, out := setupDocs(t)
	require.NoError(t, os.WriteFile(filepath.Join(docs, "runtime-api.json"), []byte(`{"stage": "runtime", "classes": [{}]}`), 0o644))

	output, err := executeCommand(rootCmd, "generate", "-o", out, docs)
	require.NoError(t, err)
	assert.Contains(t, output, "skipping document")
	assert.NoFileExists(t, filepath.Join(out, "runtime.lua"))
	assert.FileExists(t, filepath.Join(out, "prototype.lua"))

	_, err = executeCommand(rootCmd, "generate", "--strict", "-o", out, docs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "runtime-api.json")
}

func TestGenerateCommand_OutputCollision(t *testing.T) {
	docs, out := setupDocs(t)
	other := filepath.Join(filepath.Dir(docs), "other")
	require.NoError(t, os.MkdirAll(other, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(other, "runtime-api.json"), fixture(t, "runtime-api.json"), 0o644))

	_, err := executeCommand(rootCmd, "generate", "-o", out, docs, other)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "both write")
}

func TestCheckCommand(t *testing.T) {
	docs, out := setupDocs(t)

	// Nothing generated yet: valid, with missing files tolerated.
	output, err := executeCommand(rootCmd, "check", "-o", out, docs)
	require.NoError(t, err)
	assert.Contains(t, output, "2 files checked, all valid and up to date")

	_, err = executeCommand(rootCmd, "generate", "-o", out, docs)
	require.NoError(t, err)

	_, err = executeCommand(rootCmd, "check", "-o", out, docs)
	require.NoError(t, err)

	runtimeLua := filepath.Join(out, "runtime.lua")
	require.NoError(t, os.WriteFile(runtimeLua, []byte("---@meta\n"), 0o644))

	output, err = executeCommand(rootCmd, "check", "-o", out, docs)
	require.Error(t, err)
	assert.Equal(t, ExitCodeDifference, ExitCode(err))
	assert.Contains(t, output, runtimeLua+" is out of date")
	assert.Contains(t, output, "1 out of date")

	output, err = executeCommand(rootCmd, "check", "--ci", "-o", out, docs)
	require.Error(t, err)
	assert.Equal(t, ExitCodeDifference, ExitCode(err))
	assert.NotContains(t, output, "is out of date")

	_, err = executeCommand(rootCmd, "check", "--skip-stale", "-o", out, docs)
	assert.NoError(t, err)
}

func TestCheckCommand_ParseError(t *testing.T) {
	docs, out := setupDocs(t)
	require.NoError(t, os.WriteFile(filepath.Join(docs, "prototype-api.json"), []byte(`{"stage": "prototype", "prototypes": [{"name": "X"`), 0o644))

	_, err := executeCommand(rootCmd, "check", "-o", out, docs)
	require.Error(t, err)
	assert.Equal(t, ExitCodeCheckError, ExitCode(err))
}

func TestCheckCommand_InvalidConfig(t *testing.T) {
	docs, _ := setupDocs(t)

	_, err := executeCommand(rootCmd, "check", "-f", "xml", docs)
	require.Error(t, err)
	assert.Equal(t, ExitCodeCheckError, ExitCode(err))
}

func TestCheckResult_Summary(t *testing.T) {
	r := &checkResult{Checked: 1}
	assert.True(t, r.ok())
	assert.Equal(t, "1 file checked, all valid and up to date", r.summary())

	r = &checkResult{Checked: 2, Invalid: []string{"a.lua"}, Stale: []string{"b.lua"}}
	assert.False(t, r.ok())
	assert.Equal(t, "2 files checked: 1 invalid, 1 out of date", r.summary())
}

func TestDiffCommand(t *testing.T) {
	dir := t.TempDir()
	oldPath := filepath.Join(dir, "old.json")
	require.NoError(t, os.WriteFile(oldPath, fixture(t, "runtime-api.json"), 0o644))
	newPath := withoutClass(t, dir, "LuaInventory")

	output, err := executeCommand(rootCmd, "diff", oldPath, newPath)
	require.NoError(t, err)
	assert.Contains(t, output, "- class LuaInventory\n")
	assert.Contains(t, output, "[BREAKING CHANGES DETECTED]")

	output, err = executeCommand(rootCmd, "diff", "--summary", oldPath, newPath)
	require.NoError(t, err)
	assert.Equal(t, "1 removed [BREAKING CHANGES DETECTED]\n", output)

	_, err = executeCommand(rootCmd, "diff", "--fail-on-breaking", oldPath, newPath)
	require.Error(t, err)
	assert.Equal(t, 1, ExitCode(err))

	output, err = executeCommand(rootCmd, "diff", oldPath, oldPath)
	require.NoError(t, err)
	assert.Equal(t, "No changes detected\n", output)
}

func TestDiffCommand_Errors(t *testing.T) {
	dir := t.TempDir()
	runtimePath := filepath.Join(dir, "runtime-api.json")
	prototypePath := filepath.Join(dir, "prototype-api.json")
	require.NoError(t, os.WriteFile(runtimePath, fixture(t, "runtime-api.json"), 0o644))
	require.NoError(t, os.WriteFile(prototypePath, fixture(t, "prototype-api.json"), 0o644))

	_, err := executeCommand(rootCmd, "diff", runtimePath, prototypePath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot diff")

	_, err = executeCommand(rootCmd, "diff", runtimePath)
	assert.Error(t, err)

	_, err = executeCommand(rootCmd, "diff", runtimePath, filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestPrintCommand(t *testing.T) {
	docs, _ := setupDocs(t)
	runtimePath := filepath.Join(docs, "runtime-api.json")

	output, err := executeCommand(rootCmd, "print", runtimePath)
	require.NoError(t, err)
	assert.Contains(t, output, "---@meta\n")

	output, err = executeCommand(rootCmd, "print", runtimePath, "LuaEntity", "defines.direction")
	require.NoError(t, err)
	assert.Contains(t, output, "---@class LuaEntity\n")
	assert.Contains(t, output, "---@class defines.direction\n")
	assert.NotContains(t, output, "LuaInventory")
	assert.NotContains(t, output, "---@meta")

	_, err = executeCommand(rootCmd, "print", runtimePath, "LuaNothing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not declared")
	assert.Contains(t, err.Error(), "LuaNothing")
}

func TestPrintCommand_List(t *testing.T) {
	docs, _ := setupDocs(t)
	runtimePath := filepath.Join(docs, "runtime-api.json")

	output, err := executeCommand(rootCmd, "print", "--list", runtimePath)
	require.NoError(t, err)
	assert.Contains(t, output, "LuaEntity\n")
	assert.Contains(t, output, "defines.inventory.chest\n")
	assert.Contains(t, output, "on_tick\n")

	output, err = executeCommand(rootCmd, "print", "--list", "--section", "events", runtimePath)
	require.NoError(t, err)
	assert.Equal(t, "on_tick\n", output)
}

func TestPrintCommand_Format(t *testing.T) {
	docs, _ := setupDocs(t)

	output, err := executeCommand(rootCmd, "print", "-f", "json", filepath.Join(docs, "prototype-api.json"))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(output), &decoded))
}

func TestWatchLoop(t *testing.T) {
	dir := t.TempDir()

	watcher, err := fsnotify.NewWatcher()
	require.NoError(t, err)
	defer watcher.Close()
	require.NoError(t, watcher.Add(dir))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	done := make(chan error, 1)
	go func() {
		relevant := func(name string) bool { return filepath.Ext(name) == ".json" }
		done <- watchLoop(ctx, watcher, 20*time.Millisecond, relevant, func() { calls.Add(1) })
	}()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "runtime-api.json"), []byte("{}"), 0o644))
	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch loop did not stop")
	}
}

func TestAddWatchPath(t *testing.T) {
	docs, out := setupDocs(t)
	require.NoError(t, os.MkdirAll(out, 0o755))

	watcher, err := fsnotify.NewWatcher()
	require.NoError(t, err)
	defer watcher.Close()

	require.NoError(t, addWatchPath(watcher, filepath.Dir(docs), out))
	watched := watcher.WatchList()
	assert.Contains(t, watched, docs)
	assert.NotContains(t, watched, out)

	assert.Error(t, addWatchPath(watcher, filepath.Join(docs, "missing"), out))
}

func TestIsWithin(t *testing.T) {
	base := filepath.Join(string(filepath.Separator), "project", "library")

	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{"same directory", base, true},
		{"child", filepath.Join(base, "runtime.lua"), true},
		{"nested child", filepath.Join(base, "a", "b.lua"), true},
		{"sibling", filepath.Join(filepath.Dir(base), "doc-html", "runtime-api.json"), false},
		{"prefix sibling", base + "-old", false},
		{"parent", filepath.Dir(base), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isWithin(tt.path, base))
		})
	}
}
