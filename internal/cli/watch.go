// SPDX-FileCopyrightText: 2026 api2lua
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/api2lua/api2lua/internal/scanner"
)

var watchDebounce int

var watchCmd = &cobra.Command{
	Use:   "watch [paths...]",
	Short: "Watch for documentation changes and regenerate definitions",
	Long: `Watch for documentation changes and automatically regenerate the Lua
definition files.

This command generates once, then monitors the scanned directories and
regenerates whenever an API documentation file is created or modified.
Bursts of events are coalesced by the debounce interval. It's useful when
tracking a game's experimental releases.

Example:
  api2lua watch                          # Watch configured paths
  api2lua watch ./doc-html               # Watch a specific directory
  api2lua watch --debounce 1000          # Wait 1s before regenerating`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().IntVar(&watchDebounce, "debounce", 0, "debounce duration in milliseconds (default: from config)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, paths, err := loadConfig(args)
	if err != nil {
		return err
	}
	applyGenerateFlags(cfg)
	if watchDebounce > 0 {
		cfg.Watch.Debounce = watchDebounce
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	outputDir, err := filepath.Abs(cfg.Output)
	if err != nil {
		return fmt.Errorf("failed to resolve output directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	for _, path := range paths {
		if err := addWatchPath(watcher, path, outputDir); err != nil {
			return err
		}
	}

	printVerbose("Watch configuration:")
	printVerbose("  Debounce: %dms", cfg.Watch.Debounce)
	printVerbose("  Output: %s", cfg.Output)
	printInfo("Watching for changes in: %s", strings.Join(paths, ", "))
	printInfo("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	regenerate := func() {
		files, err := runGeneration(ctx, cfg, paths, generateOptions{})
		if err != nil {
			printError("%v", err)
			return
		}
		for _, f := range files {
			printInfo("Wrote %s (%d bytes)", f.Path, f.Size)
		}
	}
	regenerate()

	relevant := func(name string) bool {
		return scanner.IsSupportedFile(name) && !isWithin(name, outputDir)
	}
	return watchLoop(ctx, watcher, time.Duration(cfg.Watch.Debounce)*time.Millisecond, relevant, regenerate)
}

// addWatchPath watches path. Directories are watched recursively, except
// for the output directory. A file is watched through its parent directory.
func addWatchPath(watcher *fsnotify.Watcher, path, outputDir string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", path, err)
	}
	info, err := os.Stat(absPath)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !info.IsDir() {
		return watcher.Add(filepath.Dir(absPath))
	}

	return filepath.WalkDir(absPath, func(p string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		if isWithin(p, outputDir) || (p != absPath && strings.HasPrefix(d.Name(), ".")) {
			return filepath.SkipDir
		}
		if err := watcher.Add(p); err != nil {
			return fmt.Errorf("failed to watch %s: %w", p, err)
		}
		log.Debugw("watching directory", "path", p)
		return nil
	})
}

// watchLoop calls onChange once events for relevant files have been quiet
// for the debounce interval. It returns when ctx is done or the watcher is
// closed.
func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, debounce time.Duration, relevant func(string) bool, onChange func()) error {
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op == fsnotify.Chmod || !relevant(event.Name) {
				continue
			}
			log.Debugw("file changed", "path", event.Name, "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warnw("watch error", "error", err)

		case <-fire:
			fire = nil
			onChange()
		}
	}
}

// isWithin reports whether path is dir or inside it.
func isWithin(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
