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
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/moodselector/moodselector/pkg/config"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Not parallel: InitLogging replaces the global logger.
func TestInitLogging(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs", "nested")
	var console bytes.Buffer

	prev := log.Logger
	t.Cleanup(func() { log.Logger = prev })

	require.NoError(t, InitLogging(logDir, []io.Writer{&console}))
	log.Info().Str("preset", "doom").Msg("hello from test")

	data, err := os.ReadFile(filepath.Join(logDir, config.LogFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
	assert.Contains(t, string(data), `"preset":"doom"`)
	assert.Contains(t, console.String(), "hello from test")
}

func TestInitLogging_BadDir(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte{}, 0o600))

	prev := log.Logger
	t.Cleanup(func() { log.Logger = prev })

	err := InitLogging(filepath.Join(blocker, "logs"), nil)
	require.Error(t, err)
}
