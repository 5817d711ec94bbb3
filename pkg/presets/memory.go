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
	"sort"

	"github.com/moodselector/moodselector/pkg/helpers/syncutil"
)

// MemoryRegistry keeps presets in process memory. Nothing survives a
// restart; it backs the "memory" driver and tests of callers.
type MemoryRegistry struct {
	presets map[string][]string
	mu      syncutil.RWMutex
}

func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{presets: make(map[string][]string)}
}

func (r *MemoryRegistry) List(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.presets))
	for name := range r.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (r *MemoryRegistry) Load(_ context.Context, name string) ([]string, error) {
	name, err := NormalizeName(name)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	files, ok := r.presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPresetNotFound, name)
	}
	return append([]string{}, files...), nil
}

func (r *MemoryRegistry) Save(_ context.Context, name string, files []string) error {
	name, err := normalizeSaveName(name)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.presets[name] = append([]string{}, files...)
	return nil
}

func (*MemoryRegistry) Close() error {
	return nil
}
