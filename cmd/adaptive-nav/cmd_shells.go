package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	navapp "github.com/ytget/adaptive-nav/internal/app"
	"github.com/ytget/adaptive-nav/internal/tui"
	"github.com/ytget/adaptive-nav/internal/ui"
)

var (
	guiWidth  float32
	guiHeight float32
	cellWidth float32
)

// guiCmd opens the Fyne window
var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Open the graphical shell",
	Args:  cobra.NoArgs,
	RunE:  runGUI,
}

// tuiCmd runs the terminal shell
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Run the terminal shell",
	Long: `Run the navigation shell in the terminal. Each terminal column counts
as --cell-width logical pixels, so resizing the terminal switches between
the bottom bar, the rail and the sidebar.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func runGUI(cmd *cobra.Command, args []string) error {
	if guiWidth > 0 {
		cfg.Window.Width = guiWidth
	}
	if guiHeight > 0 {
		cfg.Window.Height = guiHeight
	}

	core, err := navapp.NewCore(cfg, logger)
	if err != nil {
		return err
	}
	defer core.Dispose()

	logger.Info("starting GUI", zap.String("session", session), zap.String("version", version))
	ui.Run(core, cfg, version)
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	if cellWidth > 0 {
		cfg.Terminal.CellWidth = cellWidth
	}

	core, err := navapp.NewCore(cfg, logger)
	if err != nil {
		return err
	}
	defer core.Dispose()

	if err := tui.Run(core, cfg.Terminal.CellWidth); err != nil {
		return fmt.Errorf("terminal shell: %w", err)
	}
	return nil
}
