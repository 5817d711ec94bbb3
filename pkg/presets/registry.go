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

// Package presets stores named, ordered lists of data files.
//
// A preset document is a bare JSON array of paths. Order and duplicates are
// significant: the list is passed to the engine exactly as stored. The
// Registry interface hides the storage medium; the file backend keeps one
// document per preset next to the launcher's config.json, which is never
// treated as a preset.
package presets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/moodselector/moodselector/pkg/userconfig"
)

// Ext is the file extension of preset documents.
const Ext = ".json"

var (
	ErrPresetNotFound = errors.New("preset not found")
	ErrCorruptPreset  = errors.New("preset document is corrupt")
	ErrInvalidName    = errors.New("invalid preset name")
	ErrIO             = errors.New("preset storage failure")
)

// Registry discovers, loads and saves presets. Implementations never cache
// listings: every List reflects the medium at the time of the call.
type Registry interface {
	// List returns the names of all stored presets, sorted by name.
	List(ctx context.Context) ([]string, error)
	// Load returns the stored file list for name.
	Load(ctx context.Context, name string) ([]string, error)
	// Save stores files under name, replacing any existing preset.
	Save(ctx context.Context, name string, files []string) error
	// Close releases any handle held by the backend.
	Close() error
}

// NormalizeName strips a trailing document extension and validates the
// result. Names may not be empty, contain path separators, or be the
// configuration document's name.
func NormalizeName(name string) (string, error) {
	name = strings.TrimSuffix(strings.TrimSpace(name), Ext)

	switch {
	case name == "", name == ".", name == "..":
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	case strings.ContainsAny(name, `/\`):
		return "", fmt.Errorf("%w: %q contains a path separator", ErrInvalidName, name)
	case name == userconfig.Name:
		return "", fmt.Errorf("%w: %q is reserved for the launcher configuration", ErrInvalidName, name)
	}

	return name, nil
}

// normalizeSaveName is NormalizeName plus a case-insensitive check against
// the configuration document, so a save can't replace config.json on a
// case-insensitive filesystem.
func normalizeSaveName(name string) (string, error) {
	name, err := NormalizeName(name)
	if err != nil {
		return "", err
	}
	if strings.EqualFold(name, userconfig.Name) {
		return "", fmt.Errorf("%w: %q is reserved for the launcher configuration", ErrInvalidName, name)
	}
	return name, nil
}

// nameFromKey returns the preset name for a stored key such as "a.json",
// and false for anything that isn't a preset document. Only the exact
// config.json key is excluded.
func nameFromKey(key string) (string, bool) {
	if !strings.HasSuffix(key, Ext) {
		return "", false
	}
	name := strings.TrimSuffix(key, Ext)
	if name == "" || name == userconfig.Name {
		return "", false
	}
	return name, true
}

func encode(files []string) ([]byte, error) {
	if files == nil {
		files = []string{}
	}
	data, err := json.Marshal(files)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal preset: %w", err)
	}
	return data, nil
}

func decode(name string, data []byte) ([]string, error) {
	var files []string
	if err := json.Unmarshal(data, &files); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCorruptPreset, name, err)
	}
	if files == nil {
		files = []string{}
	}
	return files, nil
}
