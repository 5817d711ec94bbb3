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

package config

// TUI holds settings for the terminal front end.
type TUI struct {
	Theme string `toml:"theme,omitempty" validate:"omitempty,oneof=default high_contrast"`
	Mouse bool   `toml:"mouse"`
}

func (c *Instance) TUI() TUI {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.TUI
}

func (c *Instance) SetTUITheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.TUI.Theme = theme
}
