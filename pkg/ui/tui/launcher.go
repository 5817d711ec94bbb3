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
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/moodselector/moodselector/pkg/config"
	"github.com/moodselector/moodselector/pkg/service"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"
)

const (
	PagePresets    = "presets"
	PageOptions    = "options"
	PageSavePreset = "save_preset"
)

const presetsHelp = "Enter: run  o: options  r: refresh  Esc: quit"

const optionsHelp = "Del: remove file  Esc: back to presets"

// launcher holds the widgets shared by both pages. All methods must run on
// the tview event loop once the application is running.
type launcher struct {
	ctx        context.Context
	app        *tview.Application
	pages      *tview.Pages
	session    *service.Session
	presetList *tview.List
	fileList   *tview.List
	engine     *tview.InputField
	addInput   *tview.InputField
	status     *tview.TextView
}

func newLauncher(ctx context.Context, app *tview.Application, session *service.Session) *launcher {
	l := &launcher{
		ctx:     ctx,
		app:     app,
		session: session,
		pages:   tview.NewPages(),
		status:  tview.NewTextView().SetDynamicColors(true),
	}

	l.pages.AddPage(PagePresets, l.buildPresetsPage(), true, true)
	l.pages.AddPage(PageOptions, l.buildOptionsPage(), true, false)

	l.refreshPresets()
	l.refreshFiles()
	return l
}

func (l *launcher) buildPresetsPage() tview.Primitive {
	l.presetList = tview.NewList().ShowSecondaryText(false)
	l.presetList.SetBorder(true).SetTitle(" Presets ")
	l.presetList.SetSelectedFunc(func(_ int, name, _ string, _ rune) {
		l.runPreset(name)
	})
	l.presetList.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() { //nolint:exhaustive
		case tcell.KeyEscape:
			l.app.Stop()
			return nil
		case tcell.KeyRune:
			switch event.Rune() {
			case 'o':
				l.showOptions()
				return nil
			case 'r':
				l.refreshPresets()
				return nil
			}
		}
		return event
	})

	help := tview.NewTextView().SetText(presetsHelp)
	help.SetTextColor(CurrentTheme().SecondaryTextColor)

	page := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(l.presetList, 0, 1, true).
		AddItem(help, 1, 0, false)
	page.SetTitle(" Mood Selector v" + config.AppVersion + " ").
		SetBorder(true).
		SetTitleAlign(tview.AlignCenter)
	return page
}

func (l *launcher) buildOptionsPage() tview.Primitive {
	theme := CurrentTheme()

	l.engine = tview.NewInputField().SetLabel("Engine ")
	l.engine.SetFieldBackgroundColor(theme.FieldUnfocusedBg)
	l.engine.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEnter {
			l.setEngine()
		}
	})

	l.addInput = tview.NewInputField().SetLabel("Add    ")
	l.addInput.SetFieldBackgroundColor(theme.FieldUnfocusedBg)
	l.addInput.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEnter {
			l.addFile()
		}
	})

	l.fileList = tview.NewList()
	l.fileList.SetBorder(true).SetTitle(" Active files ")
	l.fileList.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() { //nolint:exhaustive
		case tcell.KeyDelete, tcell.KeyBackspace, tcell.KeyBackspace2:
			l.removeSelected()
			return nil
		}
		return event
	})

	form := tview.NewForm().
		AddFormItem(l.engine).
		AddFormItem(l.addInput).
		AddButton("Run", l.runActive).
		AddButton("Save preset", l.showSavePreset).
		AddButton("Clear", l.clearFiles)
	form.SetFieldBackgroundColor(theme.FieldUnfocusedBg)
	form.SetButtonBackgroundColor(theme.FieldFocusedBg)

	help := tview.NewTextView().SetText(optionsHelp)
	help.SetTextColor(theme.SecondaryTextColor)

	page := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(form, 7, 0, true).
		AddItem(l.fileList, 0, 1, false).
		AddItem(help, 1, 0, false)
	page.SetTitle(" Options ").SetBorder(true)
	page.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() { //nolint:exhaustive
		case tcell.KeyEscape:
			l.showPresets()
			return nil
		case tcell.KeyTab:
			if form.HasFocus() {
				if _, btn := form.GetFocusedItemIndex(); btn == form.GetButtonCount()-1 {
					l.app.SetFocus(l.fileList)
					return nil
				}
			} else if l.fileList.HasFocus() {
				l.app.SetFocus(form)
				return nil
			}
		}
		return event
	})
	return page
}

func (l *launcher) root() tview.Primitive {
	return tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(l.pages, 0, 1, true).
		AddItem(l.status, 1, 0, false)
}

func (l *launcher) showPresets() {
	l.pages.SwitchToPage(PagePresets)
	l.refreshPresets()
}

func (l *launcher) showOptions() {
	l.refreshFiles()
	l.pages.SwitchToPage(PageOptions)
}

func (l *launcher) refreshPresets() {
	names, err := l.session.ListPresets(l.ctx)
	if err != nil {
		l.fail(err)
		return
	}

	current := l.presetList.GetCurrentItem()
	l.presetList.Clear()
	for _, name := range names {
		l.presetList.AddItem(name, "", 0, nil)
	}
	if current < len(names) {
		l.presetList.SetCurrentItem(current)
	}
	if len(names) == 0 {
		l.info("No presets yet. Press o to pick files and save one.")
	}
}

func (l *launcher) refreshFiles() {
	rec := l.session.Record()
	l.engine.SetText(rec.EnginePath)

	l.fileList.Clear()
	for _, file := range rec.Files {
		l.fileList.AddItem(filepath.Base(file), file, 0, nil)
	}
}

func (l *launcher) runPreset(name string) {
	pid, err := l.session.RunPreset(l.ctx, name)
	if err != nil {
		l.fail(err)
		return
	}
	l.ok(fmt.Sprintf("Launched %s (pid %d)", name, pid))
}

func (l *launcher) runActive() {
	pid, err := l.session.Run(l.ctx)
	if err != nil {
		l.fail(err)
		return
	}
	l.ok(fmt.Sprintf("Launched (pid %d)", pid))
}

func (l *launcher) setEngine() {
	path := strings.TrimSpace(l.engine.GetText())
	if err := l.session.SetEnginePath(path); err != nil {
		l.fail(err)
		return
	}
	l.ok("Engine set.")
}

func (l *launcher) addFile() {
	path := strings.TrimSpace(l.addInput.GetText())
	if path == "" {
		return
	}
	if err := l.session.AddFiles(path); err != nil {
		l.fail(err)
		return
	}
	l.addInput.SetText("")
	l.refreshFiles()
	l.fileList.SetCurrentItem(-1)
}

func (l *launcher) removeSelected() {
	if l.fileList.GetItemCount() == 0 {
		return
	}
	idx := l.fileList.GetCurrentItem()
	if err := l.session.RemoveFile(idx); err != nil {
		l.fail(err)
		return
	}
	l.refreshFiles()
	if n := l.fileList.GetItemCount(); n > 0 {
		l.fileList.SetCurrentItem(min(idx, n-1))
	}
}

func (l *launcher) clearFiles() {
	if err := l.session.ClearFiles(); err != nil {
		l.fail(err)
		return
	}
	l.refreshFiles()
}

func (l *launcher) showSavePreset() {
	name := tview.NewInputField().SetLabel("Name ").SetFieldWidth(32)
	closeModal := func() {
		l.pages.RemovePage(PageSavePreset)
		l.pages.SwitchToPage(PageOptions)
	}

	form := tview.NewForm().
		AddFormItem(name).
		AddButton("Save", func() {
			if l.savePreset(name.GetText()) {
				closeModal()
			}
		}).
		AddButton("Cancel", closeModal)
	form.SetBorder(true).SetTitle(" Save preset ")
	form.SetCancelFunc(closeModal)

	l.pages.AddPage(PageSavePreset, centered(44, 7, form), true, true)
}

func (l *launcher) savePreset(name string) bool {
	name = strings.TrimSpace(name)
	if err := l.session.SavePreset(l.ctx, name); err != nil {
		l.fail(err)
		return false
	}
	l.ok(fmt.Sprintf("Saved preset %q.", name))
	l.refreshPresets()
	return true
}

func (l *launcher) ok(msg string) {
	l.setStatus(CurrentTheme().SuccessColorName, msg)
}

func (l *launcher) info(msg string) {
	l.setStatus(CurrentTheme().SecondaryColor, msg)
}

func (l *launcher) fail(err error) {
	log.Error().Err(err).Msg("launcher action failed")
	l.setStatus(CurrentTheme().ErrorColorName, service.UserMessage(err))
}

func (l *launcher) setStatus(color, msg string) {
	l.status.SetText(fmt.Sprintf("[%s]%s[-]", color, tview.Escape(msg)))
}

func centered(width, height int, p tview.Primitive) tview.Primitive {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(p, height, 1, true).
			AddItem(nil, 0, 1, false), width, 1, true).
		AddItem(nil, 0, 1, false)
}
