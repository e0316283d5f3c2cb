package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

const (
	AppIcon = "adaptive-nav.png"
)

// LoadAppIcon loads the window icon from path, falling back to the theme's home icon
func LoadAppIcon(path string) fyne.Resource {
	if path != "" {
		if res, err := fyne.LoadResourceFromPath(path); err == nil {
			return res
		}
	}
	return themeIcon(theme.IconNameHome)
}

// themeIcon resolves an icon name through the current app theme
func themeIcon(name fyne.ThemeIconName) fyne.Resource {
	if app := fyne.CurrentApp(); app != nil {
		if res := app.Settings().Theme().Icon(name); res != nil {
			return res
		}
	}
	return theme.DefaultTheme().Icon(name)
}
