package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// RunOptions controls how the program takes over the terminal
type RunOptions struct {
	AltScreen bool
}

// Run starts the bridge view and blocks until the user quits
func Run(opts Options, run RunOptions) error {
	m := NewModel(opts)

	var progOpts []tea.ProgramOption
	if run.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(m, progOpts...)

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	if fm, ok := finalModel.(Model); ok {
		f := fm.Form()
		fm.logger.Debug("final form state",
			"from", f.SourceChain, "from_token", f.SourceToken,
			"to", f.DestChain, "to_token", f.DestToken,
			"mode", f.Mode, "theme", f.Theme)
	}
	return nil
}
