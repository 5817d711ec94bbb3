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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, CfgFile), []byte(content), 0o600))
}

func TestNewConfig_CreatesDefaultFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(CfgEnv, "")

	cfg, err := NewConfig(dir, BaseDefaults)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, CfgFile), cfg.Path())
	assert.FileExists(t, cfg.Path())
	assert.Equal(t, DriverFS, cfg.StorageDriver())
	assert.Empty(t, cfg.StorageDir())
	assert.True(t, cfg.TUI().Mouse)
	assert.False(t, cfg.DebugLogging())

	data, err := os.ReadFile(cfg.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "config_schema = 1")
}

func TestNewConfig_EnvOverridesPath(t *testing.T) {
	dir := t.TempDir()
	custom := filepath.Join(dir, "nested", "custom.toml")
	t.Setenv(CfgEnv, custom)

	cfg, err := NewConfig(t.TempDir(), BaseDefaults)
	require.NoError(t, err)

	assert.Equal(t, custom, cfg.Path())
	assert.FileExists(t, custom)
}

func TestLoad_FileValuesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(CfgEnv, "")
	writeSettings(t, dir, `
config_schema = 1
debug_logging = true

[storage]
driver = "bolt"
dir = "/srv/doom"
bolt_file = "mods.db"
`)

	cfg, err := NewConfig(dir, BaseDefaults)
	require.NoError(t, err)

	assert.Equal(t, DriverBolt, cfg.StorageDriver())
	assert.Equal(t, "/srv/doom", cfg.StorageDir())
	assert.Equal(t, filepath.Join("/srv/doom", "mods.db"), cfg.BoltPath("/srv/doom"))
	assert.True(t, cfg.DebugLogging())
	// tui table absent, default kept
	assert.True(t, cfg.TUI().Mouse)

	cfg.SetDebugLogging(false)
}

func TestLoad_SchemaMismatch(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(CfgEnv, "")
	writeSettings(t, dir, "config_schema = 7\n")

	_, err := NewConfig(dir, BaseDefaults)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema version mismatch")
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "unknown driver",
			content: "config_schema = 1\n[storage]\ndriver = \"ftp\"\n",
			wantErr: "Driver",
		},
		{
			name:    "s3 without bucket",
			content: "config_schema = 1\n[storage]\ndriver = \"s3\"\n",
			wantErr: "Bucket",
		},
		{
			name:    "bad endpoint",
			content: "config_schema = 1\n[storage]\ndriver = \"s3\"\n[storage.s3]\nbucket = \"b\"\nendpoint = \"not a url\"\n",
			wantErr: "Endpoint",
		},
		{
			name:    "unknown theme",
			content: "config_schema = 1\n[tui]\ntheme = \"neon\"\n",
			wantErr: "Theme",
		},
		{
			name:    "not toml",
			content: "config_schema = = 1",
			wantErr: "failed to unmarshal config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			t.Setenv(CfgEnv, "")
			writeSettings(t, dir, tt.content)

			_, err := NewConfig(dir, BaseDefaults)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(CfgEnv, "")

	cfg, err := NewConfig(dir, BaseDefaults)
	require.NoError(t, err)

	cfg.SetStorageDriver(DriverMemory)
	cfg.SetStorageDir("/data")
	cfg.SetTUITheme("high_contrast")
	require.NoError(t, cfg.Save())

	reloaded, err := NewConfig(dir, BaseDefaults)
	require.NoError(t, err)
	assert.Equal(t, DriverMemory, reloaded.StorageDriver())
	assert.Equal(t, "/data", reloaded.StorageDir())
	assert.Equal(t, "high_contrast", reloaded.TUI().Theme)
}

func TestBoltPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		boltFile string
		dataDir  string
		expected string
	}{
		{name: "default name", boltFile: "", dataDir: "/data", expected: filepath.Join("/data", DefaultBoltFile)},
		{name: "relative name", boltFile: "x.db", dataDir: "/data", expected: filepath.Join("/data", "x.db")},
		{name: "absolute name", boltFile: "/var/lib/x.db", dataDir: "/data", expected: "/var/lib/x.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := &Instance{vals: Values{Storage: Storage{BoltFile: tt.boltFile}}}
			assert.Equal(t, tt.expected, cfg.BoltPath(tt.dataDir))
		})
	}
}

func TestValidate_S3WithBucket(t *testing.T) {
	t.Parallel()

	vals := BaseDefaults
	vals.Storage.Driver = DriverS3
	vals.Storage.S3 = StorageS3{Bucket: "mods", Endpoint: "http://localhost:9000", PathStyle: true}

	assert.NoError(t, Validate(&vals))
}
