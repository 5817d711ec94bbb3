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

package command

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const missingCommand = "nonexistent_command_that_should_not_exist_12345"

func TestRealExecutor_Run(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" {
		t.Skip("relies on true/false binaries")
	}

	executor := &RealExecutor{}

	t.Run("executes_successful_command", func(t *testing.T) {
		t.Parallel()

		err := executor.Run(context.Background(), "true")

		assert.NoError(t, err)
	})

	t.Run("returns_error_for_failed_command", func(t *testing.T) {
		t.Parallel()

		err := executor.Run(context.Background(), "false")

		assert.Error(t, err)
	})

	t.Run("returns_error_for_nonexistent_command", func(t *testing.T) {
		t.Parallel()

		err := executor.Run(context.Background(), missingCommand)

		require.Error(t, err)
	})
}

func TestRealExecutor_Start(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" {
		t.Skip("relies on sh")
	}

	executor := &RealExecutor{}

	t.Run("returns_pid_without_waiting", func(t *testing.T) {
		t.Parallel()

		pid, err := executor.Start(context.Background(), StartOptions{}, "true")

		require.NoError(t, err)
		assert.Positive(t, pid)
	})

	t.Run("detached_outlives_cancelled_context", func(t *testing.T) {
		t.Parallel()

		marker := filepath.Join(t.TempDir(), "done")
		ctx, cancel := context.WithCancel(context.Background())
		_, err := executor.Start(ctx, StartOptions{Detached: true}, "sh", "-c", "sleep 0.2; touch \"$0\"", marker)
		require.NoError(t, err)
		cancel()

		assert.Eventually(t, func() bool {
			_, statErr := os.Stat(marker)
			return statErr == nil
		}, 5*time.Second, 50*time.Millisecond)
	})

	t.Run("returns_error_for_nonexistent_command", func(t *testing.T) {
		t.Parallel()

		pid, err := executor.Start(context.Background(), StartOptions{Detached: true}, missingCommand)

		require.Error(t, err)
		assert.Zero(t, pid)
	})
}

func TestExecutor_Interface(t *testing.T) {
	t.Parallel()

	// Verify that RealExecutor implements Executor
	var _ Executor = (*RealExecutor)(nil)
}
