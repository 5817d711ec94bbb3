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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"
)

func newTestBolt(t *testing.T) *BoltRegistry {
	t.Helper()
	reg, err := NewBoltRegistry(filepath.Join(t.TempDir(), "presets.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, reg.Close())
	})
	return reg
}

func TestBoltRegistryContract(t *testing.T) {
	t.Parallel()

	testRegistryContract(t, func(t *testing.T) Registry {
		return newTestBolt(t)
	})
}

func TestBoltRegistry_Reopen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "presets.db")
	ctx := context.Background()

	reg, err := NewBoltRegistry(path)
	require.NoError(t, err)
	require.NoError(t, reg.Save(ctx, "doom", []string{"a.pk3", "b.pk3"}))
	require.NoError(t, reg.Close())

	reg, err = NewBoltRegistry(path)
	require.NoError(t, err)
	defer func() { assert.NoError(t, reg.Close()) }()

	got, err := reg.Load(ctx, "doom")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.pk3", "b.pk3"}, got)
}

func TestBoltRegistry_CorruptValue(t *testing.T) {
	t.Parallel()

	reg := newTestBolt(t)
	err := reg.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(BucketPresets)).Put([]byte("broken"), []byte(`{nope`))
	})
	require.NoError(t, err)

	names, err := reg.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"broken"}, names)

	_, err = reg.Load(context.Background(), "broken")
	require.ErrorIs(t, err, ErrCorruptPreset)
}

func TestBoltRegistry_CloseTwice(t *testing.T) {
	t.Parallel()

	reg, err := NewBoltRegistry(filepath.Join(t.TempDir(), "presets.db"))
	require.NoError(t, err)
	require.NoError(t, reg.Close())
	assert.NoError(t, reg.Close())
}
