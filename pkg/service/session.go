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

// Package service is the boundary between front ends and the launcher core.
// A Session turns user actions (pick an engine, add files, save or load a
// preset, run) into calls on the config store, the preset registry and the
// launch planner.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/moodselector/moodselector/pkg/launch"
	"github.com/moodselector/moodselector/pkg/presets"
	"github.com/moodselector/moodselector/pkg/userconfig"
	"github.com/rs/zerolog/log"
)

var (
	ErrFileIndex        = errors.New("file index out of range")
	ErrWatchUnsupported = errors.New("preset storage cannot be watched")
)

// UnknownPresetError is returned when a preset name matches nothing stored.
// Suggestions holds similar stored names, best first.
type UnknownPresetError struct {
	Err         error
	Name        string
	Suggestions []string
}

func (e *UnknownPresetError) Error() string {
	return e.Err.Error()
}

func (e *UnknownPresetError) Unwrap() error {
	return e.Err
}

type Session struct {
	store    *userconfig.Store
	registry presets.Registry
	planner  *launch.Planner
	spawner  *launch.Spawner
}

func NewSession(
	store *userconfig.Store,
	registry presets.Registry,
	planner *launch.Planner,
	spawner *launch.Spawner,
) *Session {
	return &Session{
		store:    store,
		registry: registry,
		planner:  planner,
		spawner:  spawner,
	}
}

// Record returns a fresh copy of the configuration document. A corrupt or
// unreadable document reads as defaults.
func (s *Session) Record() userconfig.Record {
	return s.store.LoadOrDefault()
}

func (s *Session) EnginePath() string {
	return s.Record().EnginePath
}

func (s *Session) SetEnginePath(path string) error {
	if err := s.store.UpdateEnginePath(path); err != nil {
		return fmt.Errorf("failed to set engine path: %w", err)
	}
	log.Info().Str("path", path).Msg("engine path set")
	return nil
}

// Files returns the active data-file list in launch order.
func (s *Session) Files() []string {
	return s.Record().Files
}

// AddFiles appends paths to the active list. Paths already present are added
// again; the engine receives them as many times as they appear.
func (s *Session) AddFiles(paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	err := s.store.Update(func(rec *userconfig.Record) error {
		rec.Files = append(rec.Files, paths...)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to add files: %w", err)
	}
	log.Info().Strs("files", paths).Msg("added files")
	return nil
}

// RemoveFile drops the entry at index from the active list. An index out
// of range leaves the document untouched.
func (s *Session) RemoveFile(index int) error {
	err := s.store.Update(func(rec *userconfig.Record) error {
		if index < 0 || index >= len(rec.Files) {
			return fmt.Errorf("%w: %d", ErrFileIndex, index)
		}
		rec.Files = append(rec.Files[:index], rec.Files[index+1:]...)
		return nil
	})
	if errors.Is(err, ErrFileIndex) {
		return err
	} else if err != nil {
		return fmt.Errorf("failed to remove file: %w", err)
	}
	return nil
}

func (s *Session) ClearFiles() error {
	if err := s.store.UpdateFiles(nil); err != nil {
		return fmt.Errorf("failed to clear files: %w", err)
	}
	return nil
}

func (s *Session) ListPresets(ctx context.Context) ([]string, error) {
	names, err := s.registry.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list presets: %w", err)
	}
	return names, nil
}

// SavePreset stores the active file list under name, replacing any preset
// with the same name.
func (s *Session) SavePreset(ctx context.Context, name string) error {
	if err := s.registry.Save(ctx, name, s.Files()); err != nil {
		return fmt.Errorf("failed to save preset: %w", err)
	}
	return nil
}

// LoadPreset replaces the active file list with the preset's list and
// returns it.
func (s *Session) LoadPreset(ctx context.Context, name string) ([]string, error) {
	files, err := s.loadPreset(ctx, name)
	if err != nil {
		return nil, err
	}
	if err := s.store.UpdateFiles(files); err != nil {
		return nil, fmt.Errorf("failed to activate preset: %w", err)
	}
	log.Info().Str("preset", name).Int("files", len(files)).Msg("loaded preset")
	return files, nil
}

// Run launches the engine with the active file list and returns the new
// process ID.
func (s *Session) Run(ctx context.Context) (int, error) {
	rec := s.Record()
	return s.launch(ctx, rec.EnginePath, rec.Files)
}

// RunPreset launches the engine with a preset's files. The active list is
// left as it was.
func (s *Session) RunPreset(ctx context.Context, name string) (int, error) {
	files, err := s.loadPreset(ctx, name)
	if err != nil {
		return 0, err
	}
	return s.launch(ctx, s.EnginePath(), files)
}

func (s *Session) SaveWindowPosition(id string, x, y int) error {
	if err := s.store.UpdateWindowPosition(id, x, y); err != nil {
		return fmt.Errorf("failed to save window position: %w", err)
	}
	return nil
}

func (s *Session) WindowPosition(id string) userconfig.Position {
	rec := s.Record()
	return rec.WindowPosition(id)
}

// WatchPresets calls onChange whenever a preset document in the storage
// directory changes. Only the fs backend can be watched.
func (s *Session) WatchPresets(ctx context.Context, onChange func(name string)) (func() error, error) {
	fileReg, ok := s.registry.(*presets.FileRegistry)
	if !ok {
		return nil, ErrWatchUnsupported
	}
	stop, err := presets.Watch(ctx, fileReg.Dir(), onChange)
	if err != nil {
		return nil, fmt.Errorf("failed to watch presets: %w", err)
	}
	return stop, nil
}

func (s *Session) loadPreset(ctx context.Context, name string) ([]string, error) {
	files, err := s.registry.Load(ctx, name)
	if errors.Is(err, presets.ErrPresetNotFound) {
		unknown := &UnknownPresetError{Name: name, Err: err}
		if names, listErr := s.registry.List(ctx); listErr == nil {
			unknown.Suggestions = presets.Suggest(name, names)
		}
		return nil, unknown
	} else if err != nil {
		return nil, fmt.Errorf("failed to load preset: %w", err)
	}
	return files, nil
}

func (s *Session) launch(ctx context.Context, enginePath string, files []string) (int, error) {
	v, err := s.planner.Plan(enginePath, files)
	if err != nil {
		log.Warn().Err(err).Msg("launch rejected")
		return 0, err //nolint:wrapcheck // typed planner errors are the result
	}

	pid, err := s.spawner.Spawn(ctx, v)
	if err != nil {
		return 0, fmt.Errorf("failed to launch engine: %w", err)
	}
	return pid, nil
}
