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

package helpers

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Layout of the tree built by CreateLauncherTree.
const (
	TestEngineDir  = "/games/gzdoom"
	TestEnginePath = TestEngineDir + "/gzdoom"
	TestModsDir    = "/games/mods"
	TestDataDir    = "/launcher"
)

// FSHelper provides utilities for filesystem mocking in tests
type FSHelper struct {
	Fs afero.Fs
}

// NewMemoryFS creates a new in-memory filesystem for testing
func NewMemoryFS() *FSHelper {
	return &FSHelper{
		Fs: afero.NewMemMapFs(),
	}
}

// NewOSFS creates a filesystem helper using the real filesystem (for integration tests)
func NewOSFS() *FSHelper {
	return &FSHelper{
		Fs: afero.NewOsFs(),
	}
}

// WriteFile creates path and any missing parents.
func (h *FSHelper) WriteFile(path string, content []byte, perm os.FileMode) error {
	if err := h.Fs.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := afero.WriteFile(h.Fs, path, content, perm); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// CreateConfigFile writes cfg as config.json inside dir.
func (h *FSHelper) CreateConfigFile(dir string, cfg map[string]any) error {
	data, err := json.MarshalIndent(cfg, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal config to JSON: %w", err)
	}
	return h.WriteFile(filepath.Join(dir, "config.json"), data, 0o600)
}

// CreatePresetFile writes a preset document named name inside dir.
func (h *FSHelper) CreatePresetFile(dir, name string, files []string) error {
	data, err := json.Marshal(files)
	if err != nil {
		return fmt.Errorf("failed to marshal preset to JSON: %w", err)
	}
	return h.WriteFile(filepath.Join(dir, name+".json"), data, 0o644)
}

// CreateLauncherTree creates an engine binary, an empty data directory and
// the named mod files under TestModsDir. It returns the absolute mod paths
// in the order given.
func (h *FSHelper) CreateLauncherTree(mods ...string) ([]string, error) {
	if err := h.WriteFile(TestEnginePath, []byte("#!/bin/sh\n"), 0o755); err != nil {
		return nil, err
	}
	if err := h.Fs.MkdirAll(TestDataDir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	paths := make([]string, 0, len(mods))
	for _, mod := range mods {
		path := filepath.Join(TestModsDir, mod)
		if err := h.WriteFile(path, []byte{}, 0o644); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// FileExists checks if a file exists in the filesystem
func (h *FSHelper) FileExists(path string) bool {
	exists, err := afero.Exists(h.Fs, path)
	return err == nil && exists
}

// ListFiles returns the names in a directory.
func (h *FSHelper) ListFiles(path string) ([]string, error) {
	entries, err := afero.ReadDir(h.Fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", path, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}
