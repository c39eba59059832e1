// Package dashboard implements the full-screen system vitals dashboard: a
// Bubble Tea model that acquires a fresh metrics snapshot each cycle,
// partitions the terminal into a fixed layout, and paints gauges, tables,
// and text panels until the user quits.
//
// There is no refresh timer. Each cycle draws one frame, then blocks on the
// next terminal event; the display is only as fresh as the last key press.
package dashboard

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Vazpera/supermarket/internal/errors"
	"github.com/Vazpera/supermarket/internal/logger"
	"github.com/Vazpera/supermarket/internal/metrics"
)

// Run starts the dashboard TUI on the alternate screen and blocks until the
// user quits or a fatal error ends the session. Bubble Tea restores the
// terminal on every exit path, including panics, before Run returns.
func Run(provider metrics.Provider, log logger.Logger) error {
	model, err := NewModel(provider, log)
	if err != nil {
		return err
	}

	program := tea.NewProgram(model, tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrTerminal,
			"Terminal session failed",
			"The terminal has been restored; re-run from an interactive terminal.")
	}

	if m, ok := final.(Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
