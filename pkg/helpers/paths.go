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
	"sync"

	"github.com/adrg/xdg"
	"github.com/moodselector/moodselector/pkg/config"
)

var (
	userDirOnce        sync.Once
	userDirCache       string
	userDirCacheExists bool
)

// userDirBeside returns the portable user directory next to exePath, if it
// exists.
func userDirBeside(exePath string) (string, bool) {
	userDir := filepath.Join(filepath.Dir(exePath), config.UserDir)
	info, err := os.Stat(userDir)
	if err != nil || !info.IsDir() {
		return "", false
	}
	return userDir, true
}

// HasUserDir checks if a "user" directory exists next to the executable
// and returns true and the absolute path to it. When present it replaces
// the XDG config and state directories, for a portable install.
// The result is cached after the first call.
func HasUserDir() (string, bool) {
	userDirOnce.Do(func() {
		exe, err := os.Executable()
		if err != nil {
			return
		}
		userDirCache, userDirCacheExists = userDirBeside(exe)
	})
	return userDirCache, userDirCacheExists
}

// ConfigDir holds the launcher settings file.
func ConfigDir() string {
	if v, ok := HasUserDir(); ok {
		return v
	}
	return filepath.Join(xdg.ConfigHome, config.AppName)
}

// LogDir holds the rotating log file.
func LogDir() string {
	if v, ok := HasUserDir(); ok {
		return filepath.Join(v, "logs")
	}
	return filepath.Join(xdg.StateHome, config.AppName)
}

// ResolveDataDir picks the directory holding config.json and the presets:
// the first non-empty of override and configured, else the working
// directory. The result is absolute.
func ResolveDataDir(override, configured string) (string, error) {
	dir := override
	if dir == "" {
		dir = configured
	}
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		return wd, nil
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve data directory %s: %w", dir, err)
	}
	return abs, nil
}
