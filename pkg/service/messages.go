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

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/moodselector/moodselector/pkg/launch"
	"github.com/moodselector/moodselector/pkg/presets"
	"github.com/moodselector/moodselector/pkg/userconfig"
)

// UserMessage returns a one-line explanation of err suitable for showing in
// a status bar or dialog. It names the failed precondition and leaves the
// details to the log.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var unknown *UnknownPresetError
	switch {
	case errors.Is(err, launch.ErrNoFilesSelected):
		return "No mods selected."
	case errors.Is(err, launch.ErrEngineNotConfigured):
		return "Engine is not configured."
	case errors.Is(err, launch.ErrEngineNotFound):
		return "Engine path is invalid."
	case errors.As(err, &unknown):
		return unknownPresetMessage(unknown)
	case errors.Is(err, presets.ErrInvalidName):
		return "Invalid preset name."
	case errors.Is(err, presets.ErrCorruptPreset), errors.Is(err, presets.ErrIO):
		return "Could not load the preset."
	case errors.Is(err, userconfig.ErrCorruptConfig):
		return "Configuration file is unreadable."
	case errors.Is(err, userconfig.ErrIO):
		return "Could not save the configuration."
	case errors.Is(err, ErrFileIndex):
		return "No such file in the list."
	default:
		return "Something went wrong, see the log for details."
	}
}

func unknownPresetMessage(err *UnknownPresetError) string {
	msg := fmt.Sprintf("Preset %q not found.", err.Name)
	switch len(err.Suggestions) {
	case 0:
		return msg
	case 1:
		return fmt.Sprintf("%s Did you mean %q?", msg, err.Suggestions[0])
	default:
		quoted := make([]string, 0, 2)
		for _, s := range err.Suggestions[:2] {
			quoted = append(quoted, fmt.Sprintf("%q", s))
		}
		return fmt.Sprintf("%s Did you mean %s?", msg, strings.Join(quoted, " or "))
	}
}
