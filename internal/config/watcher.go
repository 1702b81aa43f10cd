// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
)

// =============================================================================
// CONFIG WATCHER
// =============================================================================

// ReloadEvent is delivered after the watched config file changes.
type ReloadEvent struct {
	Config *Config // Reloaded configuration; nil when Err is set
	Err    error   // Load or validation failure
}

// Watcher reloads the config file when it changes on disk. It watches the
// parent directory so editors that save by rename are seen too.
type Watcher struct {
	fs       afero.Fs
	path     string
	watcher  *fsnotify.Watcher
	debounce time.Duration
	events   chan ReloadEvent

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewWatcher creates a watcher for the config file at path. Events are
// debounced so a burst of writes produces one reload.
func NewWatcher(fs afero.Fs, path string, debounce time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		fs:       fs,
		path:     filepath.Clean(path),
		watcher:  fw,
		debounce: debounce,
		events:   make(chan ReloadEvent, 1),
		ctx:      ctx,
		cancel:   cancel,
	}

	w.wg.Add(1)
	go w.run()
	return w, nil
}

// Events returns the channel reload events are sent on. It is closed by Close.
func (w *Watcher) Events() <-chan ReloadEvent {
	return w.events
}

// Close stops watching and closes the events channel.
func (w *Watcher) Close() error {
	w.cancel()
	err := w.watcher.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()
	defer close(w.events)

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			cfg, err := LoadFromPath(w.fs, w.path)
			select {
			case w.events <- ReloadEvent{Config: cfg, Err: err}:
			case <-w.ctx.Done():
				return
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}
