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

package config

import (
	"path/filepath"
)

// Preset storage drivers.
const (
	DriverFS     = "fs"
	DriverBolt   = "bolt"
	DriverS3     = "s3"
	DriverMemory = "memory"
)

// DefaultBoltFile is the bolt database name used when none is configured.
const DefaultBoltFile = "presets.db"

type Storage struct {
	// Dir holds config.json and, for the fs driver, the preset documents.
	// Empty means the process working directory.
	Dir      string    `toml:"dir,omitempty"`
	Driver   string    `toml:"driver" validate:"oneof=fs bolt s3 memory"`
	BoltFile string    `toml:"bolt_file,omitempty"`
	S3       StorageS3 `toml:"s3,omitempty"`
}

type StorageS3 struct {
	Bucket    string `toml:"bucket,omitempty"`
	Region    string `toml:"region,omitempty"`
	Endpoint  string `toml:"endpoint,omitempty" validate:"omitempty,url"`
	Prefix    string `toml:"prefix,omitempty"`
	PathStyle bool   `toml:"path_style,omitempty"`
}

func (c *Instance) StorageDriver() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vals.Storage.Driver == "" {
		return DriverFS
	}
	return c.vals.Storage.Driver
}

func (c *Instance) SetStorageDriver(driver string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Storage.Driver = driver
}

// StorageDir returns the configured data directory, or "" for the working
// directory.
func (c *Instance) StorageDir() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Storage.Dir
}

func (c *Instance) SetStorageDir(dir string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Storage.Dir = dir
}

// BoltPath resolves the bolt database location. Relative names are placed
// inside dataDir.
func (c *Instance) BoltPath(dataDir string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	name := c.vals.Storage.BoltFile
	if name == "" {
		name = DefaultBoltFile
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dataDir, name)
}

func (c *Instance) S3() StorageS3 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Storage.S3
}
