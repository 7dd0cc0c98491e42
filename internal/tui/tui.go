package tui

import (
	"hanzi-cli/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

// Options are appearance and diagnostics preferences for Run.
type Options struct {
	Theme    string
	Glyphs   string
	DebugLog string
}

// Run browses d until the user quits. The terminal is put into raw mode and
// the alternate screen for the duration; bubbletea restores both on return,
// including when the model panics.
func Run(d *store.Dictionary, opt Options) error {
	applyColorProfilePreference()
	applyThemePreference(opt.Theme)
	applyGlyphPreference(opt.Glyphs)

	logger, closeLog, err := openDebugLog(opt.DebugLog)
	if err != nil {
		return err
	}
	defer closeLog()

	m := newAppModel(d, logger)
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		logger.Error("terminal session failed", "err", err)
	}
	return err
}
