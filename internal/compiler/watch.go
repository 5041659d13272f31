// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package compiler

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long file events must settle before a re-import
// fires. Editors typically emit several writes per save.
const DefaultDebounce = 500 * time.Millisecond

// WatchFile watches one schema file and invokes fn once its change events
// settle. The parent directory is watched rather than the file itself:
// most editors replace the file on save, which would drop an inode-bound
// watch. WatchFile runs until ctx is done; fn errors are logged and do not
// stop the watch.
func WatchFile(ctx context.Context, path string, debounce time.Duration, logger *slog.Logger, fn func(context.Context) error) error {
	if logger == nil {
		logger = slog.Default()
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}
	base := filepath.Base(abs)
	logger.Info("watching schema file", "path", abs, "debounce", debounce)

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != base {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
				fire = timer.C
			} else {
				timer.Reset(debounce)
			}

		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("file watch error", "error", werr)

		case <-fire:
			timer = nil
			fire = nil
			logger.Info("schema file changed", "path", abs)
			if err := fn(ctx); err != nil {
				logger.Error("schema re-import failed", "error", err)
			}
		}
	}
}
