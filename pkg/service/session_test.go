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

package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/moodselector/moodselector/pkg/helpers/command"
	"github.com/moodselector/moodselector/pkg/launch"
	"github.com/moodselector/moodselector/pkg/presets"
	testhelpers "github.com/moodselector/moodselector/pkg/testing/helpers"
	"github.com/moodselector/moodselector/pkg/testing/mocks"
	"github.com/moodselector/moodselector/pkg/userconfig"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	session *Session
	cmd     *mocks.MockCommandExecutor
	fsh     *testhelpers.FSHelper
	mods    []string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	fsh := testhelpers.NewMemoryFS()
	mods, err := fsh.CreateLauncherTree("a.pk3", "b.pk3", "c.wad")
	require.NoError(t, err)

	cmd := testhelpers.NewMockCommandExecutor()
	session := NewSession(
		userconfig.NewStore(fsh.Fs, testhelpers.TestDataDir),
		presets.NewFileRegistry(fsh.Fs, testhelpers.TestDataDir),
		launch.NewPlanner(fsh.Fs),
		launch.NewSpawner(cmd),
	)

	return &testEnv{session: session, cmd: cmd, fsh: fsh, mods: mods}
}

func TestSession_EnginePath(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	assert.Empty(t, env.session.EnginePath())

	require.NoError(t, env.session.SetEnginePath(testhelpers.TestEnginePath))
	assert.Equal(t, testhelpers.TestEnginePath, env.session.EnginePath())
}

func TestSession_FileList(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	s := env.session

	assert.Empty(t, s.Files())

	require.NoError(t, s.AddFiles(env.mods[0], env.mods[1]))
	require.NoError(t, s.AddFiles(env.mods[0]))
	assert.Equal(t, []string{env.mods[0], env.mods[1], env.mods[0]}, s.Files())

	require.NoError(t, s.RemoveFile(1))
	assert.Equal(t, []string{env.mods[0], env.mods[0]}, s.Files())

	err := s.RemoveFile(5)
	require.ErrorIs(t, err, ErrFileIndex)
	err = s.RemoveFile(-1)
	require.ErrorIs(t, err, ErrFileIndex)

	require.NoError(t, s.ClearFiles())
	assert.Empty(t, s.Files())

	require.NoError(t, s.AddFiles())
	assert.Empty(t, s.Files())
}

func TestSession_RemoveFileOutOfRangeKeepsDocument(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	s := env.session
	configPath := filepath.Join(testhelpers.TestDataDir, userconfig.FileName)

	require.NoError(t, env.fsh.WriteFile(configPath, []byte("not json"), 0o600))

	err := s.RemoveFile(0)
	require.ErrorIs(t, err, ErrFileIndex)

	data, err := afero.ReadFile(env.fsh.Fs, configPath)
	require.NoError(t, err)
	assert.Equal(t, "not json", string(data))

	require.NoError(t, s.AddFiles(env.mods[0]))
	before, err := afero.ReadFile(env.fsh.Fs, configPath)
	require.NoError(t, err)

	require.ErrorIs(t, s.RemoveFile(3), ErrFileIndex)
	after, err := afero.ReadFile(env.fsh.Fs, configPath)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestSession_PresetRoundTrip(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	s := env.session
	ctx := context.Background()

	require.NoError(t, s.AddFiles(env.mods[2], env.mods[0]))
	require.NoError(t, s.SavePreset(ctx, "brutal"))

	require.NoError(t, s.ClearFiles())
	require.NoError(t, s.AddFiles(env.mods[1]))

	files, err := s.LoadPreset(ctx, "brutal")
	require.NoError(t, err)
	assert.Equal(t, []string{env.mods[2], env.mods[0]}, files)
	// loading fully replaces the active list
	assert.Equal(t, []string{env.mods[2], env.mods[0]}, s.Files())

	names, err := s.ListPresets(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"brutal"}, names)
}

func TestSession_SavePresetDoesNotTouchConfig(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	s := env.session
	ctx := context.Background()
	require.NoError(t, s.SetEnginePath(testhelpers.TestEnginePath))
	require.NoError(t, s.AddFiles(env.mods[0]))

	cfgPath := filepath.Join(testhelpers.TestDataDir, userconfig.FileName)
	before, err := afero.ReadFile(env.fsh.Fs, cfgPath)
	require.NoError(t, err)

	require.NoError(t, s.SavePreset(ctx, "p1"))

	after, err := afero.ReadFile(env.fsh.Fs, cfgPath)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestSession_SavePresetReservedName(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	require.NoError(t, env.session.AddFiles(env.mods[0]))

	err := env.session.SavePreset(context.Background(), "config")
	require.ErrorIs(t, err, presets.ErrInvalidName)
	assert.Equal(t, []string{env.mods[0]}, env.session.Files())
}

func TestSession_LoadUnknownPreset(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	s := env.session
	ctx := context.Background()
	require.NoError(t, env.fsh.CreatePresetFile(testhelpers.TestDataDir, "heretic", []string{"h.wad"}))
	require.NoError(t, s.AddFiles(env.mods[0]))

	_, err := s.LoadPreset(ctx, "hertic")

	require.ErrorIs(t, err, presets.ErrPresetNotFound)
	var unknown *UnknownPresetError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "hertic", unknown.Name)
	assert.Equal(t, []string{"heretic"}, unknown.Suggestions)
	assert.Equal(t, []string{env.mods[0]}, s.Files())
}

func TestSession_LoadCorruptPreset(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	require.NoError(t, env.fsh.WriteFile(
		filepath.Join(testhelpers.TestDataDir, "bad.json"), []byte(`{"x":`), 0o644))

	_, err := env.session.LoadPreset(context.Background(), "bad")
	require.ErrorIs(t, err, presets.ErrCorruptPreset)
}

func TestSession_Run(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	s := env.session
	require.NoError(t, s.SetEnginePath(testhelpers.TestEnginePath))
	require.NoError(t, s.AddFiles(env.mods[0], env.mods[1]))

	env.cmd.ExpectedCalls = nil
	env.cmd.On("Start", mock.Anything, command.StartOptions{Detached: true},
		testhelpers.TestEnginePath, []string{"-file", env.mods[0], env.mods[1]}).Return(99, nil).Once()

	pid, err := s.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 99, pid)
	env.cmd.AssertExpectations(t)
}

func TestSession_RunRejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		setup   func(t *testing.T, env *testEnv)
		wantErr error
		name    string
	}{
		{
			name:    "no files",
			setup:   func(t *testing.T, env *testEnv) { require.NoError(t, env.session.SetEnginePath(testhelpers.TestEnginePath)) },
			wantErr: launch.ErrNoFilesSelected,
		},
		{
			name:    "no engine",
			setup:   func(t *testing.T, env *testEnv) { require.NoError(t, env.session.AddFiles(env.mods[0])) },
			wantErr: launch.ErrEngineNotConfigured,
		},
		{
			name: "engine gone",
			setup: func(t *testing.T, env *testEnv) {
				require.NoError(t, env.session.SetEnginePath("/games/gzdoom/missing"))
				require.NoError(t, env.session.AddFiles(env.mods[0]))
			},
			wantErr: launch.ErrEngineNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv(t)
			tt.setup(t, env)

			_, err := env.session.Run(context.Background())

			require.ErrorIs(t, err, tt.wantErr)
			env.cmd.AssertNotCalled(t, "Start", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestSession_RunPresetKeepsActiveList(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	s := env.session
	ctx := context.Background()
	require.NoError(t, s.SetEnginePath(testhelpers.TestEnginePath))
	require.NoError(t, env.fsh.CreatePresetFile(testhelpers.TestDataDir, "heretic", []string{"h.wad"}))
	require.NoError(t, s.AddFiles(env.mods[0]))

	env.cmd.ExpectedCalls = nil
	env.cmd.On("Start", mock.Anything, mock.Anything,
		testhelpers.TestEnginePath, []string{"-file", "h.wad"}).Return(7, nil).Once()

	pid, err := s.RunPreset(ctx, "heretic")

	require.NoError(t, err)
	assert.Equal(t, 7, pid)
	assert.Equal(t, []string{env.mods[0]}, s.Files())
	env.cmd.AssertExpectations(t)
}

func TestSession_RunSpawnFails(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	s := env.session
	require.NoError(t, s.SetEnginePath(testhelpers.TestEnginePath))
	require.NoError(t, s.AddFiles(env.mods[0]))

	spawnErr := errors.New("permission denied")
	env.cmd.ExpectedCalls = nil
	env.cmd.On("Start", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(0, spawnErr)

	_, err := s.Run(context.Background())
	require.ErrorIs(t, err, spawnErr)
}

func TestSession_WindowPositions(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	s := env.session

	assert.Equal(t, userconfig.DefaultPosition, s.WindowPosition(userconfig.WindowPresets))

	require.NoError(t, s.SaveWindowPosition(userconfig.WindowPresets, 320, 48))
	assert.Equal(t, userconfig.Position{X: 320, Y: 48}, s.WindowPosition(userconfig.WindowPresets))
	assert.Equal(t, userconfig.DefaultPosition, s.WindowPosition(userconfig.WindowOptions))
}

func TestSession_CorruptConfigReadsAsDefaults(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	require.NoError(t, env.fsh.WriteFile(
		filepath.Join(testhelpers.TestDataDir, userconfig.FileName), []byte(`{"engine_path": 5`), 0o600))

	assert.Empty(t, env.session.EnginePath())
	assert.Empty(t, env.session.Files())

	_, err := env.session.Run(context.Background())
	require.ErrorIs(t, err, launch.ErrNoFilesSelected)

	require.NoError(t, env.session.SetEnginePath(testhelpers.TestEnginePath))
	assert.Equal(t, testhelpers.TestEnginePath, env.session.EnginePath())
}

func TestSession_WatchUnsupported(t *testing.T) {
	t.Parallel()

	s := NewSession(
		userconfig.NewStore(afero.NewMemMapFs(), "/"),
		presets.NewMemoryRegistry(),
		launch.NewPlanner(afero.NewMemMapFs()),
		launch.NewSpawner(testhelpers.NewMockCommandExecutor()),
	)

	_, err := s.WatchPresets(context.Background(), func(string) {})
	require.ErrorIs(t, err, ErrWatchUnsupported)
}
