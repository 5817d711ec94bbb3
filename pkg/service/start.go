/*
Mood Selector
Copyright (C) 2026 The Mood Selector Contributors

This file is part of Mood Selector.

Mood Selector is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Mood Selector is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Mood Selector.  If not, see <http://www.gnu.org/licenses/>.
*/

package service

import (
	"context"
	"fmt"

	"github.com/moodselector/moodselector/pkg/config"
	"github.com/moodselector/moodselector/pkg/helpers/command"
	"github.com/moodselector/moodselector/pkg/launch"
	"github.com/moodselector/moodselector/pkg/presets"
	"github.com/moodselector/moodselector/pkg/userconfig"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Options are the collaborators a Session is built from. DataDir holds
// config.json and, for the fs driver, the presets.
type Options struct {
	Settings *config.Instance
	Fs       afero.Fs
	Executor command.Executor
	DataDir  string
}

func setupEnvironment(fs afero.Fs, dataDir string) error {
	log.Info().Str("dir", dataDir).Msg("using data directory")
	if err := fs.MkdirAll(dataDir, 0o750); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dataDir, err)
	}
	return nil
}

// Start builds a Session from the launcher settings. The returned stop
// function releases the preset backend.
func Start(ctx context.Context, opts Options) (*Session, func() error, error) {
	if err := setupEnvironment(opts.Fs, opts.DataDir); err != nil {
		return nil, nil, err
	}

	registry, err := presets.Open(ctx, opts.Settings, opts.Fs, opts.DataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open preset storage: %w", err)
	}

	session := NewSession(
		userconfig.NewStore(opts.Fs, opts.DataDir),
		registry,
		launch.NewPlanner(opts.Fs),
		launch.NewSpawner(opts.Executor),
	)

	return session, func() error {
		if err := registry.Close(); err != nil {
			log.Error().Err(err).Msg("error closing preset storage")
			return fmt.Errorf("failed to close preset storage: %w", err)
		}
		return nil
	}, nil
}
