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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/moodselector/moodselector/pkg/helpers"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// FileRegistry keeps each preset as <name>.json in a single directory,
// alongside config.json.
type FileRegistry struct {
	fs  afero.Fs
	dir string
}

func NewFileRegistry(fs afero.Fs, dir string) *FileRegistry {
	return &FileRegistry{fs: fs, dir: dir}
}

// Dir returns the directory scanned for presets.
func (r *FileRegistry) Dir() string {
	return r.dir
}

func (r *FileRegistry) path(name string) string {
	return filepath.Join(r.dir, name+Ext)
}

func (r *FileRegistry) List(_ context.Context) ([]string, error) {
	entries, err := afero.ReadDir(r.fs, r.dir)
	if errors.Is(err, os.ErrNotExist) {
		return []string{}, nil
	} else if err != nil {
		return nil, fmt.Errorf("%w: failed to read preset dir %s: %w", ErrIO, r.dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name, ok := nameFromKey(entry.Name())
		if !ok {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	log.Debug().Str("dir", r.dir).Int("count", len(names)).Msg("listed presets")
	return names, nil
}

func (r *FileRegistry) Load(_ context.Context, name string) ([]string, error) {
	name, err := NormalizeName(name)
	if err != nil {
		return nil, err
	}

	data, err := afero.ReadFile(r.fs, r.path(name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrPresetNotFound, name)
	} else if err != nil {
		return nil, fmt.Errorf("%w: failed to read preset %s: %w", ErrIO, name, err)
	}

	return decode(name, data)
}

func (r *FileRegistry) Save(_ context.Context, name string, files []string) error {
	name, err := normalizeSaveName(name)
	if err != nil {
		return err
	}

	data, err := encode(files)
	if err != nil {
		return err
	}

	if err := helpers.WriteFileAtomic(r.fs, r.path(name), data, 0o644); err != nil {
		return fmt.Errorf("%w: failed to save preset %s: %w", ErrIO, name, err)
	}

	log.Info().Str("preset", name).Int("files", len(files)).Msg("saved preset")
	return nil
}

func (*FileRegistry) Close() error {
	return nil
}
