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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// TempSuffix is appended to the names of in-flight atomic writes. Directory
// scans should skip anything carrying it.
const TempSuffix = ".tmp"

// WriteFileAtomic writes data to a uniquely named sibling of path and renames
// it over path, so a concurrent reader sees either the old document or the
// new one, never a truncated file. The parent directory is created if needed.
func WriteFileAtomic(fs afero.Fs, path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := fs.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmpPath := filepath.Join(dir, "."+filepath.Base(path)+"."+uuid.New().String()+TempSuffix)
	if err := afero.WriteFile(fs, tmpPath, data, perm); err != nil {
		removeTemp(fs, tmpPath)
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := fs.Rename(tmpPath, path); err != nil {
		removeTemp(fs, tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}

// IsTempFile reports whether name looks like a leftover from WriteFileAtomic.
func IsTempFile(name string) bool {
	base := filepath.Base(name)
	return strings.HasPrefix(base, ".") && strings.HasSuffix(base, TempSuffix)
}

func removeTemp(fs afero.Fs, path string) {
	err := fs.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msgf("error removing temp file: %s", path)
	}
}
