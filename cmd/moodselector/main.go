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

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/moodselector/moodselector/pkg/cli"
	"github.com/moodselector/moodselector/pkg/config"
	"github.com/moodselector/moodselector/pkg/helpers"
	"github.com/moodselector/moodselector/pkg/helpers/command"
	"github.com/moodselector/moodselector/pkg/service"
	"github.com/moodselector/moodselector/pkg/ui/tui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

func main() {
	code, err := run()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	os.Exit(code)
}

func run() (int, error) {
	flags := cli.SetupFlags(flag.CommandLine)
	if exit, err := flags.Pre(os.Args[1:], os.Stdout); err != nil {
		return 2, nil //nolint:nilerr // flag package already printed the error
	} else if exit {
		return 0, nil
	}

	var logWriters []io.Writer
	if !flags.Interactive() {
		logWriters = []io.Writer{os.Stderr}
	}

	cfg := cli.Setup(config.BaseDefaults, logWriters)
	if *flags.Debug {
		cfg.SetDebugLogging(true)
	}

	defer func() {
		if err := recover(); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Panic: %s\n", err)
			log.Fatal().Msgf("panic: %v", err)
		}
	}()

	dataDir, err := helpers.ResolveDataDir(*flags.Dir, cfg.StorageDir())
	if err != nil {
		return 1, err
	}

	ctx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	session, stopSvc, err := service.Start(ctx, service.Options{
		Settings: cfg,
		Fs:       afero.NewOsFs(),
		Executor: &command.RealExecutor{},
		DataDir:  dataDir,
	})
	if err != nil {
		log.Error().Err(err).Msg("error starting launcher")
		return 1, fmt.Errorf("error starting launcher: %w", err)
	}
	defer func() {
		if err := stopSvc(); err != nil {
			log.Error().Err(err).Msg("error stopping launcher")
		}
	}()

	if !flags.Interactive() {
		return flags.Post(ctx, session, os.Stdout, os.Stderr), nil
	}

	if err := tui.Run(ctx, cfg, session); err != nil {
		log.Error().Err(err).Msg("error running UI")
		return 1, fmt.Errorf("error running UI: %w", err)
	}
	return 0, nil
}
