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

package launch

import (
	"context"
	"errors"
	"fmt"

	"github.com/moodselector/moodselector/pkg/helpers/command"
	"github.com/rs/zerolog/log"
)

// Spawner starts planned vectors as detached processes.
type Spawner struct {
	exec command.Executor
}

func NewSpawner(exec command.Executor) *Spawner {
	return &Spawner{exec: exec}
}

// Spawn starts v without waiting for it and returns the new process ID.
// The process inherits the launcher's working directory, so relative data
// file paths resolve the same way they were picked. Streams are not captured
// and ctx has no effect once the process is running.
func (s *Spawner) Spawn(ctx context.Context, v Vector) (int, error) {
	if v.Name() == "" {
		return 0, errors.New("empty launch vector")
	}

	opts := command.StartOptions{Detached: true}

	log.Info().Strs("args", v.Args()).Str("engine", v.Name()).Msg("launching engine")
	pid, err := s.exec.Start(ctx, opts, v.Name(), v.Args()...)
	if err != nil {
		return 0, fmt.Errorf("failed to start %s: %w", v.Name(), err)
	}

	log.Info().Int("pid", pid).Msg("engine started")
	return pid, nil
}
