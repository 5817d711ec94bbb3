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
	"github.com/moodselector/moodselector/pkg/testing/mocks"
	"github.com/stretchr/testify/mock"
)

// DefaultMockPID is the process ID reported by NewMockCommandExecutor.
const DefaultMockPID = 4242

// NewMockCommandExecutor creates a MockCommandExecutor that succeeds by default.
// All Run() and Start() calls will return success unless explicitly overridden with On().
//
// Override specific commands in tests that need to verify exact behavior:
//
//	cmd := helpers.NewMockCommandExecutor()
//	// Clear defaults first
//	cmd.ExpectedCalls = nil
//	// Set specific expectations (note: args is []string not variadic in mock)
//	cmd.On("Start", mock.Anything, mock.Anything, "/bin/gzdoom", []string{"-file", "a.pk3"}).Return(1, nil)
func NewMockCommandExecutor() *mocks.MockCommandExecutor {
	cmd := &mocks.MockCommandExecutor{}
	// Match any command with any arguments - all succeed by default
	cmd.On("Run", mock.Anything, mock.AnythingOfType("string"), mock.Anything).Return(nil).Maybe()
	cmd.On(
		"Start", mock.Anything, mock.Anything, mock.AnythingOfType("string"), mock.Anything,
	).Return(DefaultMockPID, nil).Maybe()
	return cmd
}
