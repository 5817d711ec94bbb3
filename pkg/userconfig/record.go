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

package userconfig

import (
	"encoding/json"
	"fmt"
)

// Window identifiers used by the bundled front ends. Any string is a valid
// id.
const (
	WindowPresets = "presets"
	WindowOptions = "options"
)

// DefaultPosition is reported for windows with no stored position.
var DefaultPosition = Position{X: 100, Y: 100}

// Position is an on-screen window position. It is stored as a two element
// JSON array, [x, y].
type Position struct {
	X int
	Y int
}

func (p Position) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal([2]int{p.X, p.Y})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal position: %w", err)
	}
	return data, nil
}

func (p *Position) UnmarshalJSON(data []byte) error {
	var pair []int
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("invalid window position: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("invalid window position: expected 2 values, got %d", len(pair))
	}
	p.X, p.Y = pair[0], pair[1]
	return nil
}

// Record is the whole configuration document. It is always read and written
// as a unit.
//
// Presets is the inline preset map older documents carried. It survives a
// save so nothing is dropped, but the preset registry never reads it.
type Record struct {
	WindowPositions map[string]Position `json:"window_positions"`
	Presets         map[string][]string `json:"presets"`
	EnginePath      string              `json:"engine_path"`
	Files           []string            `json:"files"`
}

// DefaultRecord returns the record used when no document exists yet.
func DefaultRecord() Record {
	return Record{
		EnginePath:      "",
		Files:           []string{},
		WindowPositions: map[string]Position{},
		Presets:         map[string][]string{},
	}
}

// WindowPosition returns the stored position for id, or DefaultPosition.
func (r *Record) WindowPosition(id string) Position {
	if pos, ok := r.WindowPositions[id]; ok {
		return pos
	}
	return DefaultPosition
}

// normalize replaces nil collections with empty ones so a loaded record
// never differs from a saved one by nil-ness alone.
func (r *Record) normalize() {
	if r.Files == nil {
		r.Files = []string{}
	}
	if r.WindowPositions == nil {
		r.WindowPositions = map[string]Position{}
	}
	if r.Presets == nil {
		r.Presets = map[string][]string{}
	}
	for k, v := range r.Presets {
		if v == nil {
			r.Presets[k] = []string{}
		}
	}
}

// clone returns a deep copy so callers mutating a loaded record can't reach
// into another copy's backing arrays.
func (r *Record) clone() Record {
	out := Record{
		EnginePath:      r.EnginePath,
		Files:           append([]string{}, r.Files...),
		WindowPositions: make(map[string]Position, len(r.WindowPositions)),
		Presets:         make(map[string][]string, len(r.Presets)),
	}
	for k, v := range r.WindowPositions {
		out.WindowPositions[k] = v
	}
	for k, v := range r.Presets {
		out.Presets[k] = append([]string{}, v...)
	}
	return out
}

// document is the on-disk shape, including the keys written by the first
// versions of the launcher. Legacy keys are only read when the current key
// is absent.
type document struct {
	EnginePath          *string             `json:"engine_path"`
	WindowPositions     map[string]Position `json:"window_positions"`
	Presets             map[string][]string `json:"presets"`
	LegacyEnginePath    *string             `json:"gzdoom_path"`
	LegacyPresetsWindow *Position           `json:"preset_window_position"`
	LegacyOptionsWindow *Position           `json:"options_window_position"`
	Files               []string            `json:"files"`
	LegacyFiles         []string            `json:"pk3_files"`
}

func (r *Record) UnmarshalJSON(data []byte) error {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return err //nolint:wrapcheck // caller wraps with ErrCorruptConfig
	}

	rec := DefaultRecord()

	switch {
	case doc.EnginePath != nil:
		rec.EnginePath = *doc.EnginePath
	case doc.LegacyEnginePath != nil:
		rec.EnginePath = *doc.LegacyEnginePath
	}

	switch {
	case doc.Files != nil:
		rec.Files = doc.Files
	case doc.LegacyFiles != nil:
		rec.Files = doc.LegacyFiles
	}

	if doc.WindowPositions != nil {
		rec.WindowPositions = doc.WindowPositions
	} else {
		if doc.LegacyPresetsWindow != nil {
			rec.WindowPositions[WindowPresets] = *doc.LegacyPresetsWindow
		}
		if doc.LegacyOptionsWindow != nil {
			rec.WindowPositions[WindowOptions] = *doc.LegacyOptionsWindow
		}
	}

	if doc.Presets != nil {
		rec.Presets = doc.Presets
	}

	rec.normalize()
	*r = rec
	return nil
}
