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

package presets

import (
	"context"
	"fmt"

	"github.com/moodselector/moodselector/pkg/config"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Open returns the registry selected by the launcher settings. dataDir is
// the resolved directory holding config.json; the fs driver keeps presets
// there and the bolt driver places a relative database file inside it.
func Open(ctx context.Context, cfg *config.Instance, fs afero.Fs, dataDir string) (Registry, error) {
	driver := cfg.StorageDriver()
	log.Debug().Str("driver", driver).Str("dir", dataDir).Msg("opening preset registry")

	switch driver {
	case config.DriverFS:
		return NewFileRegistry(fs, dataDir), nil
	case config.DriverBolt:
		reg, err := NewBoltRegistry(cfg.BoltPath(dataDir))
		if err != nil {
			return nil, err
		}
		return reg, nil
	case config.DriverS3:
		s3Cfg := cfg.S3()
		reg, err := NewS3Registry(ctx, S3Config{
			Bucket:    s3Cfg.Bucket,
			Region:    s3Cfg.Region,
			Endpoint:  s3Cfg.Endpoint,
			Prefix:    s3Cfg.Prefix,
			PathStyle: s3Cfg.PathStyle,
		})
		if err != nil {
			return nil, err
		}
		return reg, nil
	case config.DriverMemory:
		return NewMemoryRegistry(), nil
	default:
		return nil, fmt.Errorf("unknown preset storage driver: %q", driver)
	}
}
