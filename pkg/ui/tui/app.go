// Package tui is the interactive terminal front end. It shows the stored
// presets on its first page and the engine path and active file list on an
// options page.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/moodselector/moodselector/pkg/config"
	"github.com/moodselector/moodselector/pkg/service"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"
)

func build(ctx context.Context, cfg *config.Instance, session *service.Session) (*tview.Application, *launcher) {
	app := tview.NewApplication()
	l := newLauncher(ctx, app, session)
	app.SetRoot(l.root(), true).EnableMouse(cfg.TUI().Mouse)
	return app, l
}

// Run shows the launcher until the user quits. Preset changes made by other
// programs are picked up while it runs when the storage can be watched.
func Run(ctx context.Context, cfg *config.Instance, session *service.Session) error {
	if theme := cfg.TUI().Theme; !SetCurrentTheme(theme) {
		log.Warn().Str("theme", theme).Msg("unknown theme, using default")
		SetCurrentTheme(ThemeDefault.Name)
	}

	app, l := build(ctx, cfg, session)

	stop, err := session.WatchPresets(ctx, func(name string) {
		log.Debug().Str("preset", name).Msg("preset changed")
		app.QueueUpdateDraw(l.refreshPresets)
	})
	switch {
	case errors.Is(err, service.ErrWatchUnsupported):
		log.Debug().Msg("preset storage not watchable")
	case err != nil:
		log.Warn().Err(err).Msg("failed to watch presets")
	default:
		defer func() {
			if err := stop(); err != nil {
				log.Warn().Err(err).Msg("failed to stop preset watcher")
			}
		}()
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			app.Stop()
		case <-done:
		}
	}()

	if err := app.Run(); err != nil {
		return fmt.Errorf("failed to run application: %w", err)
	}
	return nil
}
