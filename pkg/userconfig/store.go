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

// Package userconfig persists the launcher's configuration document: the
// engine path, the active data-file list and window position hints.
//
// Every mutation is a fresh read of the whole document, a change, and a
// whole-document write. Two windows holding their own Store over the same
// directory can therefore overwrite each other's unrelated fields if their
// updates interleave. The most recent save wins and nothing is merged.
package userconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/moodselector/moodselector/pkg/helpers"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const (
	// Name is the reserved document identity. The preset registry must
	// never treat it as a preset.
	Name = "config"
	// FileName is the document's file name inside the storage directory.
	FileName = Name + ".json"
)

var (
	// ErrCorruptConfig is returned when the document exists but cannot be
	// parsed.
	ErrCorruptConfig = errors.New("config document is corrupt")
	// ErrIO is returned when the storage medium fails a read or write.
	ErrIO = errors.New("config storage failure")
)

type Store struct {
	fs   afero.Fs
	path string
}

// NewStore returns a store for the document in dir. Nothing is read or
// created until the first Load or Save.
func NewStore(fs afero.Fs, dir string) *Store {
	return &Store{
		fs:   fs,
		path: filepath.Join(dir, FileName),
	}
}

// Path returns the full path of the configuration document.
func (s *Store) Path() string {
	return s.path
}

// Load reads the document from disk. A missing document is not an error and
// yields DefaultRecord.
func (s *Store) Load() (Record, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if errors.Is(err, os.ErrNotExist) {
		log.Debug().Str("path", s.path).Msg("no config document, using defaults")
		return DefaultRecord(), nil
	} else if err != nil {
		return Record{}, fmt.Errorf("%w: failed to read %s: %w", ErrIO, s.path, err)
	}

	rec := DefaultRecord()
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("%w: %s: %w", ErrCorruptConfig, s.path, err)
	}
	rec.normalize()

	return rec, nil
}

// LoadOrDefault is Load for callers that must keep running: a corrupt or
// unreadable document is logged and replaced by defaults.
func (s *Store) LoadOrDefault() Record {
	rec, err := s.Load()
	if err != nil {
		log.Error().Err(err).Msg("error loading config, falling back to defaults")
		return DefaultRecord()
	}
	return rec
}

// Save overwrites the whole document with rec.
//
//nolint:gocritic // record passed by value, the caller keeps its copy
func (s *Store) Save(rec Record) error {
	out := rec.clone()
	out.normalize()

	data, err := json.MarshalIndent(&out, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := helpers.WriteFileAtomic(s.fs, s.path, data, 0o600); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	log.Debug().Str("path", s.path).Msg("saved config document")
	return nil
}

// UpdateEnginePath sets the engine path in a fresh read-modify-write.
func (s *Store) UpdateEnginePath(path string) error {
	return s.Update(func(rec *Record) error {
		rec.EnginePath = path
		return nil
	})
}

// UpdateFiles replaces the active data-file list in a fresh
// read-modify-write. Order is kept as given.
func (s *Store) UpdateFiles(files []string) error {
	return s.Update(func(rec *Record) error {
		rec.Files = append([]string{}, files...)
		return nil
	})
}

// UpdateWindowPosition stores the position of window id in a fresh
// read-modify-write.
func (s *Store) UpdateWindowPosition(id string, x, y int) error {
	return s.Update(func(rec *Record) error {
		rec.WindowPositions[id] = Position{X: x, Y: y}
		return nil
	})
}

// Update loads the document, applies mutate and saves the result. A corrupt
// document is replaced by defaults before mutate runs. Nothing is held
// between the read and the write: a concurrent Save in that window is lost.
// If mutate returns an error nothing is written and that error is returned.
func (s *Store) Update(mutate func(*Record) error) error {
	rec, err := s.Load()
	switch {
	case errors.Is(err, ErrCorruptConfig):
		// the document is unusable either way, rewriting it from defaults
		// is what the user would get by deleting it
		log.Warn().Err(err).Msg("config document is corrupt, updating from defaults")
		rec = DefaultRecord()
	case err != nil:
		return err
	}

	if err := mutate(&rec); err != nil {
		return err
	}
	return s.Save(rec)
}
