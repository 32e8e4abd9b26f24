package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the terminal game with the given deal settings.
func Run(maxRank int, seed func() int64) error {
	p := tea.NewProgram(NewModel(maxRank, seed), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
