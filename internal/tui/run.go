package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	navapp "github.com/ytget/adaptive-nav/internal/app"
)

// Run starts the terminal shell and blocks until the user quits
func Run(core *navapp.Core, cellWidth float32, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	program := tea.NewProgram(NewModel(core, cellWidth), opts...)

	core.Logger.Info("starting terminal shell", zap.Float32("cell_width", cellWidth))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run terminal shell: %w", err)
	}
	return nil
}
