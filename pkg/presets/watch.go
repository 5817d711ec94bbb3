// Mood Selector
// Copyright (c) 2026 The Mood Selector Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Mood Selector.
//
// Mood Selector is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Mood Selector is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Mood Selector.  If not, see <http://www.gnu.org/licenses/>.

package presets

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

const watchOps = fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename

// Watch reports preset documents appearing, changing or disappearing in dir.
// onChange receives the preset name and is called from the watcher's
// goroutine. The watch ends when ctx is cancelled or the returned stop
// function is called; stop waits for the goroutine to exit.
func Watch(ctx context.Context, dir string, onChange func(name string)) (func() error, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create preset watcher: %w", err)
	}

	if err := watcher.Add(dir); err != nil {
		if closeErr := watcher.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("error closing preset watcher")
		}
		return nil, fmt.Errorf("failed to watch preset dir (%s): %w", dir, err)
	}

	ctx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&watchOps == 0 {
					continue
				}
				name, ok := nameFromKey(filepath.Base(event.Name))
				if !ok {
					continue
				}
				log.Debug().Str("preset", name).Str("op", event.Op.String()).Msg("preset changed")
				onChange(name)
			case watchErr, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Error().Err(watchErr).Msg("error in preset watcher")
			}
		}
	}()

	log.Info().Str("dir", dir).Msg("watching preset dir")

	var once sync.Once
	var closeErr error
	return func() error {
		once.Do(func() {
			cancel()
			closeErr = watcher.Close()
			wg.Wait()
		})
		if closeErr != nil {
			return fmt.Errorf("failed to close preset watcher: %w", closeErr)
		}
		return nil
	}, nil
}
