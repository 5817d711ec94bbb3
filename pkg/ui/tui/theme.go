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

package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/moodselector/moodselector/pkg/helpers/syncutil"
	"github.com/rivo/tview"
)

// Theme defines all colors used in the TUI.
type Theme struct {
	Name                     string
	DisplayName              string
	AccentColorName          string
	SecondaryColor           string
	SuccessColorName         string
	ErrorColorName           string
	PrimitiveBackgroundColor tcell.Color
	ContrastBackgroundColor  tcell.Color
	BorderColor              tcell.Color
	PrimaryTextColor         tcell.Color
	SecondaryTextColor       tcell.Color
	InverseTextColor         tcell.Color
	FieldFocusedBg           tcell.Color
	FieldUnfocusedBg         tcell.Color
}

var ThemeDefault = Theme{
	Name:        "default",
	DisplayName: "Default",

	PrimitiveBackgroundColor: tcell.ColorDarkRed,
	ContrastBackgroundColor:  tcell.ColorMaroon,
	BorderColor:              tcell.ColorOrange,
	PrimaryTextColor:         tcell.ColorWhite,
	SecondaryTextColor:       tcell.ColorSilver,
	InverseTextColor:         tcell.ColorDarkRed,

	AccentColorName: "orange",
	SecondaryColor:  "silver",

	FieldFocusedBg:   tcell.ColorMaroon,
	FieldUnfocusedBg: tcell.ColorDarkRed,

	SuccessColorName: "lime",
	ErrorColorName:   "yellow",
}

// ThemeHighContrast uses true black background with bright yellow for accessibility.
var ThemeHighContrast = Theme{
	Name:        "high_contrast",
	DisplayName: "High Contrast",

	PrimitiveBackgroundColor: tcell.NewHexColor(0x000000),
	ContrastBackgroundColor:  tcell.NewHexColor(0x000000),
	BorderColor:              tcell.ColorYellow,
	PrimaryTextColor:         tcell.ColorWhite,
	SecondaryTextColor:       tcell.ColorWhite,
	InverseTextColor:         tcell.NewHexColor(0x000000),

	AccentColorName: "yellow",
	SecondaryColor:  "white",

	FieldFocusedBg:   tcell.ColorYellow,
	FieldUnfocusedBg: tcell.NewHexColor(0x000000),

	SuccessColorName: "lime",
	ErrorColorName:   "red",
}

// AvailableThemes maps the settings file theme names to theme definitions.
var AvailableThemes = map[string]*Theme{
	"default":       &ThemeDefault,
	"high_contrast": &ThemeHighContrast,
}

var (
	currentTheme = &ThemeDefault
	themeMu      syncutil.RWMutex
)

func CurrentTheme() *Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}

// SetCurrentTheme sets the current theme by name. An empty name selects the
// default theme. Returns false if the theme name is not found.
func SetCurrentTheme(name string) bool {
	if name == "" {
		name = ThemeDefault.Name
	}
	theme, ok := AvailableThemes[name]
	if !ok {
		return false
	}
	themeMu.Lock()
	currentTheme = theme
	themeMu.Unlock()
	ApplyTheme(theme)
	return true
}

// ApplyTheme applies the given theme to tview's global styles.
func ApplyTheme(theme *Theme) {
	tview.Styles.PrimitiveBackgroundColor = theme.PrimitiveBackgroundColor
	tview.Styles.ContrastBackgroundColor = theme.ContrastBackgroundColor
	tview.Styles.BorderColor = theme.BorderColor
	tview.Styles.PrimaryTextColor = theme.PrimaryTextColor
	tview.Styles.SecondaryTextColor = theme.SecondaryTextColor
	tview.Styles.InverseTextColor = theme.InverseTextColor
}
