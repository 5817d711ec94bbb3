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
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertValidLaunchArgs checks the shape of an engine invocation as it
// reaches the process executor: a non-empty program, then "-file" followed
// by at least one data file, with no empty entries. Use it inside a mock
// Run callback to check what a front end actually spawned.
func AssertValidLaunchArgs(t *testing.T, name string, args []string) {
	t.Helper()

	require.NotEmpty(t, name, "engine path must be set")
	require.GreaterOrEqual(t, len(args), 2, "expected -file and at least one data file, got %v", args)
	require.Equal(t, "-file", args[0], "first argument must be the file flag")
	for i, arg := range args[1:] {
		require.NotEmpty(t, arg, "data file %d is empty", i)
	}
}
