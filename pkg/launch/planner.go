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

// Package launch turns an engine path and an ordered list of data files into
// the engine's argument vector, and starts it.
//
// Planning and spawning are separate steps: Plan only validates and builds
// the vector, Spawner hands it to the operating system.
package launch

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"
)

// FileFlag precedes the data files on the engine command line.
const FileFlag = "-file"

var (
	ErrNoFilesSelected     = errors.New("no files selected")
	ErrEngineNotConfigured = errors.New("engine not configured")
	ErrEngineNotFound      = errors.New("engine not found")
)

// Vector is a complete command line: the engine path followed by its
// arguments.
type Vector []string

// Name returns the executable path.
func (v Vector) Name() string {
	if len(v) == 0 {
		return ""
	}
	return v[0]
}

// Args returns everything after the executable path.
func (v Vector) Args() []string {
	if len(v) < 2 {
		return nil
	}
	return v[1:]
}

// BuildVector returns [enginePath, "-file", files...]. Files are passed
// through untouched: no deduplication, no path cleaning.
func BuildVector(enginePath string, files []string) Vector {
	v := make(Vector, 0, len(files)+2)
	v = append(v, enginePath, FileFlag)
	return append(v, files...)
}

// Planner validates launch requests. The engine existence check runs
// against fs so callers can plan without touching the real disk.
type Planner struct {
	fs afero.Fs
}

func NewPlanner(fs afero.Fs) *Planner {
	return &Planner{fs: fs}
}

// Plan checks, in order, that files is non-empty, that enginePath is set and
// that it names an existing regular file, then returns the vector.
func (p *Planner) Plan(enginePath string, files []string) (Vector, error) {
	if len(files) == 0 {
		return nil, ErrNoFilesSelected
	}
	if enginePath == "" {
		return nil, ErrEngineNotConfigured
	}

	info, err := p.fs.Stat(enginePath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("%w: %s", ErrEngineNotFound, enginePath)
	case err != nil:
		return nil, fmt.Errorf("%w: %s: %w", ErrEngineNotFound, enginePath, err)
	case !info.Mode().IsRegular():
		return nil, fmt.Errorf("%w: %s is not a file", ErrEngineNotFound, enginePath)
	}

	return BuildVector(enginePath, files), nil
}
