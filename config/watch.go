package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch calls onChange with the freshly read configuration every time
// cfile is written, created or replaced. Invalid files are logged and
// skipped. Watch blocks until ctx is done.
//
// The parent directory is watched instead of the file itself so that
// editors which save by renaming a temp file are noticed.
func Watch(ctx context.Context, cfile string, onChange func(*Config)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("can't create config watcher: %w", err)
	}
	defer watcher.Close()

	target := filepath.Clean(cfile)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("can't watch %s: %w", filepath.Dir(target), err)
	}
	slog.Debug("Watching config file", "file", target)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			conf, err := ReadConfig(target)
			if err != nil {
				slog.Error("Ignoring changed config", "file", target, "error", err)
				continue
			}
			slog.Info("Config file changed, reloaded", "file", target, "presets", len(conf.Presets))
			onChange(conf)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("Config watcher error", "error", err)
		}
	}
}
