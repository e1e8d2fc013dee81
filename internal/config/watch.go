package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/mj1618/xraise/internal/logger"
)

// Watch reloads the file at path whenever it is written or replaced and
// passes each valid result to onChange. Invalid files are logged and skipped.
// Watch blocks until ctx is done.
func Watch(ctx context.Context, path string, log *logger.Logger, onChange func(*Config)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create config watcher: %w", err)
	}
	defer watcher.Close()

	// Editors save by renaming over the file, which drops a watch on the
	// file itself.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	log.Debug("Watching config", "path", path)

	target := filepath.Clean(path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			cfg, err := LoadFile(path)
			if err != nil {
				log.Error("Ignoring invalid config", err, "path", path)
				continue
			}
			log.Info("Config reloaded", "path", path)
			onChange(cfg)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error("Config watcher error", err)
		}
	}
}
