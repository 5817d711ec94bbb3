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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	bolt "go.etcd.io/bbolt"
	berrors "go.etcd.io/bbolt/errors"
)

// BucketPresets holds one key per preset name; values are preset documents.
const BucketPresets = "presets"

// BoltRegistry stores presets in a single bbolt database file. The file is
// locked by the process holding it open, so only one launcher process can
// use a given database at a time.
type BoltRegistry struct {
	db *bolt.DB
}

func NewBoltRegistry(path string) (*BoltRegistry, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("%w: failed to create preset db dir: %w", ErrIO, err)
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open preset db %s: %w", ErrIO, path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(BucketPresets))
		return err //nolint:wrapcheck // wrapped below
	})
	if err != nil {
		if closeErr := db.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("error closing preset db")
		}
		return nil, fmt.Errorf("%w: failed to create presets bucket: %w", ErrIO, err)
	}

	log.Debug().Str("path", path).Msg("opened preset db")
	return &BoltRegistry{db: db}, nil
}

func (r *BoltRegistry) List(_ context.Context) ([]string, error) {
	names := []string{}
	err := r.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketPresets))
		if b == nil {
			return fmt.Errorf("bucket %q does not exist", BucketPresets)
		}
		// bolt iterates keys in byte order
		return b.ForEach(func(k, _ []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list presets: %w", ErrIO, err)
	}
	return names, nil
}

func (r *BoltRegistry) Load(_ context.Context, name string) ([]string, error) {
	name, err := NormalizeName(name)
	if err != nil {
		return nil, err
	}

	var data []byte
	err = r.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketPresets))
		if b == nil {
			return fmt.Errorf("bucket %q does not exist", BucketPresets)
		}
		if v := b.Get([]byte(name)); v != nil {
			// v is only valid inside the transaction
			data = append([]byte{}, v...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read preset %s: %w", ErrIO, name, err)
	}
	if data == nil {
		return nil, fmt.Errorf("%w: %s", ErrPresetNotFound, name)
	}

	return decode(name, data)
}

func (r *BoltRegistry) Save(_ context.Context, name string, files []string) error {
	name, err := normalizeSaveName(name)
	if err != nil {
		return err
	}

	data, err := encode(files)
	if err != nil {
		return err
	}

	err = r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketPresets))
		if b == nil {
			return fmt.Errorf("bucket %q does not exist", BucketPresets)
		}
		return b.Put([]byte(name), data)
	})
	if err != nil {
		return fmt.Errorf("%w: failed to save preset %s: %w", ErrIO, name, err)
	}

	log.Info().Str("preset", name).Int("files", len(files)).Msg("saved preset")
	return nil
}

func (r *BoltRegistry) Close() error {
	if err := r.db.Close(); err != nil && !errors.Is(err, berrors.ErrDatabaseNotOpen) {
		return fmt.Errorf("failed to close preset db: %w", err)
	}
	return nil
}
