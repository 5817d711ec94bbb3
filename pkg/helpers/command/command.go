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

// Package command provides an abstraction over exec.Command for testability.
package command

import (
	"context"
	"os/exec"

	"github.com/rs/zerolog/log"
)

// StartOptions configures command startup behavior.
type StartOptions struct {
	// Detached starts the process in its own session (Unix) or in a new
	// process group with no console (Windows). A detached process is not
	// tied to the caller's context and keeps running after the launcher
	// exits.
	Detached bool
}

// Executor provides an abstraction over exec.Command for testability.
// This allows commands to be mocked in tests without executing real system commands.
type Executor interface {
	// Run executes a command and waits for it to complete.
	// Returns an error if the command fails to start or exits with non-zero status.
	Run(ctx context.Context, name string, args ...string) error

	// Start starts a command without waiting for it to complete and returns
	// its process ID. Returns an error if the command fails to start.
	Start(ctx context.Context, opts StartOptions, name string, args ...string) (int, error)
}

// RealExecutor uses actual exec.Command to execute system commands.
// This is the production implementation used in normal operation.
type RealExecutor struct{}

// Run executes a system command using exec.CommandContext.
//
//nolint:wrapcheck // Wrapping exec errors loses important context
func (*RealExecutor) Run(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

// Start starts a command without waiting for it. The child's exit status is
// collected in the background so it never lingers as a zombie.
//
//nolint:wrapcheck // Wrapping exec errors loses important context
func (*RealExecutor) Start(ctx context.Context, opts StartOptions, name string, args ...string) (int, error) {
	if opts.Detached {
		ctx = context.WithoutCancel(ctx)
	}

	cmd := exec.CommandContext(ctx, name, args...)
	// no pipes: the child must not block on a launcher that has gone away
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	if opts.Detached {
		cmd.SysProcAttr = detachedAttr()
	}

	if err := cmd.Start(); err != nil {
		return 0, err
	}

	pid := cmd.Process.Pid
	go func() {
		err := cmd.Wait()
		log.Debug().Err(err).Int("pid", pid).Str("name", name).Msg("child process exited")
	}()

	return pid, nil
}
