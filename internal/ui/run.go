package ui

import (
	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	navapp "github.com/ytget/adaptive-nav/internal/app"
	"github.com/ytget/adaptive-nav/internal/config"
)

const (
	AppID   = "com.ytget.adaptive-nav"
	AppName = "Adaptive Nav"
)

// Run opens the main window and blocks until it is closed
func Run(core *navapp.Core, cfg config.File, version string) {
	myApp := fyneapp.NewWithID(AppID)
	settings := config.NewSettings(myApp)
	if cfg.Language != config.DefaultLanguage {
		settings.SetLanguage(cfg.Language)
	}

	myWindow := myApp.NewWindow(AppName)
	myWindow.SetIcon(LoadAppIcon(AppIcon))

	size := settings.GetWindowSize()
	if cfg.Window != config.Defaults().Window {
		size = fyne.NewSize(cfg.Window.Width, cfg.Window.Height)
	}
	myWindow.Resize(size)
	// Seed the width so the first frame already uses the right shell
	core.Responsive.SetWidth(size.Width)

	root := NewRootUI(myWindow, myApp, core, settings, version)
	myWindow.SetOnClosed(func() {
		settings.SetWindowSize(myWindow.Canvas().Size())
		root.Close()
	})

	core.Logger.Info("window opened",
		zap.Float32("width", size.Width),
		zap.Float32("height", size.Height),
		zap.Bool("mobile_device", fyne.CurrentDevice().IsMobile()),
	)
	myWindow.ShowAndRun()
}
