// File: watch.go
// Title: Configuration File Watching
// Description: Monitors the loaded configuration file for changes via
//              fsnotify and reloads it, notifying registered handlers.
// Author: AugmentedFifth
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial implementation

package config

import (
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	brwerror "github.com/AugmentedFifth/brouwer/core/error"
	brwstringx "github.com/AugmentedFifth/brouwer/utils/stringx"
)

// OnChange registers a handler invoked after each successful reload
func (c *Config) OnChange(handler ChangeHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.changeHandlers = append(c.changeHandlers, handler)
}

// StartWatching begins monitoring the configuration file for changes.
// It returns immediately; reloads happen on a background goroutine until
// StopWatching is called.
func (c *Config) StartWatching() error {
	c.mu.Lock()
	if brwstringx.IsBlank(c.filePath) {
		c.mu.Unlock()
		return brwerror.New("file path required for watching").
			WithCode(brwerror.CodeValidationFailed).
			WithOperation("config.StartWatching")
	}
	if c.watching {
		c.mu.Unlock()
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		c.mu.Unlock()
		return brwerror.Wrap(err, "failed to create file watcher").
			WithCode(brwerror.CodeIOError).
			WithOperation("config.StartWatching")
	}

	// Watch the directory: editors often replace the file instead of
	// writing it in place.
	if err := watcher.Add(filepath.Dir(c.filePath)); err != nil {
		watcher.Close()
		c.mu.Unlock()
		return brwerror.Wrap(err, "failed to watch config directory").
			WithCode(brwerror.CodeIOError).
			WithOperation("config.StartWatching").
			WithDetail("filePath", c.filePath)
	}

	c.watching = true
	c.watchDone = make(chan struct{})
	done := c.watchDone
	target := c.filePath
	c.mu.Unlock()

	go func() {
		defer watcher.Close()

		for {
			select {
			case <-done:
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(target) {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				// Reload failures keep the previous configuration.
				c.reload()

			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return nil
}

// StopWatching stops monitoring the configuration file
func (c *Config) StopWatching() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.watching {
		return
	}
	c.watching = false
	close(c.watchDone)
}

// IsWatching reports whether the configuration file is being monitored
func (c *Config) IsWatching() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.watching
}

// reload re-reads the configuration file and notifies change handlers
func (c *Config) reload() error {
	c.mu.RLock()
	filePath := c.filePath
	format := c.format
	c.mu.RUnlock()

	info, err := os.Stat(filePath)
	if err != nil {
		return brwerror.Wrap(err, "failed to stat config file during reload").
			WithCode(brwerror.CodeIOError).
			WithOperation("config.reload").
			WithDetail("filePath", filePath)
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return brwerror.Wrap(err, "failed to read config file during reload").
			WithCode(brwerror.CodeIOError).
			WithOperation("config.reload").
			WithDetail("filePath", filePath)
	}

	newData, err := parseContent(content, format)
	if err != nil {
		return brwerror.Wrap(err, "failed to parse config file during reload").
			WithCode(brwerror.CodeInvalidConfig).
			WithOperation("config.reload").
			WithDetail("filePath", filePath)
	}

	c.mu.Lock()
	oldConfig := &Config{
		data:   deepCopyMap(c.data),
		format: c.format,
	}
	c.data = newData
	c.lastModified = info.ModTime()
	handlers := make([]ChangeHandler, len(c.changeHandlers))
	copy(handlers, c.changeHandlers)
	c.mu.Unlock()

	for _, handler := range handlers {
		handler(oldConfig, c)
	}

	return nil
}
