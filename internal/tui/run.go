package tui

import (
	"io"

	"wuerfel/internal/config"
	"wuerfel/internal/controller"
	"wuerfel/internal/errors"
	"wuerfel/internal/log"

	tea "github.com/charmbracelet/bubbletea"
)

// Run drives the dice picker on the alternate screen until a quit key is
// pressed. Bubble Tea restores the terminal on exit and on failure.
func Run(ctrl *controller.Controller, theme config.Theme) error {
	// The program owns the terminal; log lines would tear the frame
	prev := log.Output()
	log.SetOutput(io.Discard)
	defer log.SetOutput(prev)

	p := tea.NewProgram(New(ctrl, theme), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.NewIOError("error running terminal UI", err)
	}
	return nil
}
