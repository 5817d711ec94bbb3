/*
Mood Selector
Copyright (C) 2026 The Mood Selector Contributors

This file is part of Mood Selector.

Mood Selector is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Mood Selector is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Mood Selector.  If not, see <http://www.gnu.org/licenses/>.
*/

package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/moodselector/moodselector/pkg/service"
	"github.com/rs/zerolog/log"
)

// Interactive reports whether no action flags were given, meaning the
// caller should start the interactive UI.
func (f *Flags) Interactive() bool {
	return *f.Engine == "" && len(f.Add) == 0 && !*f.Clear &&
		!f.isFlagPassed("save-preset") && !f.isFlagPassed("load-preset") &&
		!f.isFlagPassed("run-preset") && !*f.List && !*f.Show && !*f.Run
}

// Post actions the flags that need a session, in a fixed order: edits to
// the engine and file list first, then presets, then output, then launch.
// It returns the process exit code. Failures are printed to errOut as the
// short user message; details go to the log.
func (f *Flags) Post(ctx context.Context, s *service.Session, out, errOut io.Writer) int {
	fail := func(err error) int {
		log.Error().Err(err).Msg("command failed")
		_, _ = fmt.Fprintf(errOut, "Error: %s\n", service.UserMessage(err))
		return 1
	}

	if *f.Engine != "" {
		if err := s.SetEnginePath(*f.Engine); err != nil {
			return fail(err)
		}
	}

	if *f.Clear {
		if err := s.ClearFiles(); err != nil {
			return fail(err)
		}
	}

	if len(f.Add) > 0 {
		if err := s.AddFiles(f.Add...); err != nil {
			return fail(err)
		}
	}

	if f.isFlagPassed("load-preset") {
		files, err := s.LoadPreset(ctx, *f.LoadPreset)
		if err != nil {
			return fail(err)
		}
		_, _ = fmt.Fprintf(out, "Loaded preset %q (%d files)\n", *f.LoadPreset, len(files))
	}

	if f.isFlagPassed("save-preset") {
		if err := s.SavePreset(ctx, *f.SavePreset); err != nil {
			return fail(err)
		}
		_, _ = fmt.Fprintf(out, "Saved preset %q\n", *f.SavePreset)
	}

	if *f.List {
		names, err := s.ListPresets(ctx)
		if err != nil {
			return fail(err)
		}
		for _, name := range names {
			_, _ = fmt.Fprintln(out, name)
		}
	}

	if *f.Show {
		rec := s.Record()
		engine := rec.EnginePath
		if engine == "" {
			engine = "(not configured)"
		}
		_, _ = fmt.Fprintf(out, "Engine: %s\n", engine)
		for i, file := range rec.Files {
			_, _ = fmt.Fprintf(out, "%3d  %s\n", i+1, file)
		}
	}

	switch {
	case f.isFlagPassed("run-preset"):
		pid, err := s.RunPreset(ctx, *f.RunPreset)
		if err != nil {
			return fail(err)
		}
		_, _ = fmt.Fprintf(out, "Launched (pid %d)\n", pid)
	case *f.Run:
		pid, err := s.Run(ctx)
		if err != nil {
			return fail(err)
		}
		_, _ = fmt.Fprintf(out, "Launched (pid %d)\n", pid)
	}

	return 0
}
