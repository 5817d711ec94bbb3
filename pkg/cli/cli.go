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

package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/moodselector/moodselector/pkg/config"
	"github.com/moodselector/moodselector/pkg/helpers"
	"github.com/rs/zerolog/log"
)

// stringList collects every value of a repeatable flag, in order.
type stringList []string

func (s *stringList) String() string {
	return strings.Join(*s, ",")
}

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

type Flags struct {
	set        *flag.FlagSet
	Dir        *string
	Engine     *string
	SavePreset *string
	LoadPreset *string
	RunPreset  *string
	Add        stringList
	Clear      *bool
	List       *bool
	Show       *bool
	Run        *bool
	Version    *bool
	Debug      *bool
}

// SetupFlags defines all CLI flags on fs.
func SetupFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{
		set: fs,
		Dir: fs.String(
			"dir",
			"",
			"directory holding config.json and presets (default: working directory)",
		),
		Engine: fs.String(
			"engine",
			"",
			"set the engine executable path",
		),
		SavePreset: fs.String(
			"save-preset",
			"",
			"save the active file list as a named preset",
		),
		LoadPreset: fs.String(
			"load-preset",
			"",
			"replace the active file list with a preset",
		),
		RunPreset: fs.String(
			"run-preset",
			"",
			"launch the engine with a preset, leaving the active list alone",
		),
		Clear: fs.Bool(
			"clear",
			false,
			"empty the active file list",
		),
		List: fs.Bool(
			"list",
			false,
			"print stored preset names",
		),
		Show: fs.Bool(
			"show",
			false,
			"print the engine path and active file list",
		),
		Run: fs.Bool(
			"run",
			false,
			"launch the engine with the active file list",
		),
		Version: fs.Bool(
			"version",
			false,
			"print version and exit",
		),
		Debug: fs.Bool(
			"debug",
			false,
			"enable debug logging for this run",
		),
	}
	fs.Var(&f.Add, "add", "append a data file to the active list (repeatable)")
	return f
}

func (f *Flags) isFlagPassed(name string) bool {
	found := false
	f.set.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			found = true
		}
	})
	return found
}

// Pre parses args and actions any immediate flags that don't require
// environment setup.
func (f *Flags) Pre(args []string, out io.Writer) (exit bool, err error) {
	if err := f.set.Parse(args); err != nil {
		return true, fmt.Errorf("failed to parse flags: %w", err)
	}

	if *f.Version {
		_, _ = fmt.Fprintf(out, "Mood Selector v%s\n", config.AppVersion)
		return true, nil
	}
	return false, nil
}

// Setup initializes logging and the launcher settings. Returns a settings
// object.
//
//nolint:gocritic // config struct copied for immutability
func Setup(defaultConfig config.Values, writers []io.Writer) *config.Instance {
	err := helpers.InitLogging(helpers.LogDir(), writers)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.NewConfig(helpers.ConfigDir(), defaultConfig)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	log.Info().Str("version", config.AppVersion).Str("settings", cfg.Path()).Msg("mood selector starting")
	return cfg
}
