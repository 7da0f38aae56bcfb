package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/transmute-dev/transmute/logger"
)

// Watch reloads the configuration whenever a config file changes and
// passes the fresh Config to onChange. It blocks until ctx is cancelled.
func Watch(ctx context.Context, onChange func(*Config)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	watched := 0
	for _, path := range configFilePaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := watcher.Add(path); err != nil {
			logger.Warnw("cannot watch config file", logger.FieldFile, path, logger.FieldError, err)
			continue
		}
		watched++
	}
	if watched == 0 {
		// Nothing to watch; wait for cancellation so callers can treat
		// Watch uniformly.
		<-ctx.Done()
		return ctx.Err()
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			Reset()
			cfg, err := Load()
			if err != nil {
				logger.Errorw("config reload failed", logger.FieldFile, event.Name, logger.FieldError, err)
				continue
			}
			logger.Infow("config reloaded", logger.FieldFile, event.Name)
			onChange(cfg)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warnw("config watch error", logger.FieldError, err)
		}
	}
}

// configFilePaths lists the config files Load would consult, lowest
// precedence first.
func configFilePaths() []string {
	homeDir, _ := os.UserHomeDir()
	paths := []string{filepath.Join(homeDir, ".transmute", "config.toml")}
	if projectConfig := findProjectConfig(); projectConfig != "" {
		paths = append(paths, projectConfig)
	}
	return paths
}
