package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/adaptive-nav/internal/model"
)

// AdaptiveTheme scales paddings and text for the active device class:
// roomy touch sizes on mobile, the compact set on desktop.
type AdaptiveTheme struct {
	device model.DeviceType
}

// NewAdaptiveTheme creates a theme for device
func NewAdaptiveTheme(device model.DeviceType) fyne.Theme {
	return &AdaptiveTheme{device: device}
}

// Device returns the device class the theme was built for
func (t *AdaptiveTheme) Device() model.DeviceType {
	return t.device
}

// Color returns theme colors
func (t *AdaptiveTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.RGBA{R: 25, G: 118, B: 210, A: 255} // Blue for the selected destination
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 18, G: 18, B: 18, A: 255}
		}
		return color.RGBA{R: 250, G: 250, B: 250, A: 255}
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 255, G: 255, B: 255, A: 255}
		}
		return color.RGBA{R: 33, G: 33, B: 33, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *AdaptiveTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *AdaptiveTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes adjusted for the device class
func (t *AdaptiveTheme) Size(name fyne.ThemeSizeName) float32 {
	switch t.device {
	case model.DeviceMobile:
		switch name {
		case theme.SizeNamePadding:
			return 6
		case theme.SizeNameInnerPadding:
			return 10
		case theme.SizeNameText:
			return 15
		case theme.SizeNameInlineIcon:
			return 24
		}
	case model.DeviceDesktop:
		switch name {
		case theme.SizeNamePadding:
			return 3 // Reduced from default 4
		case theme.SizeNameInnerPadding:
			return 6 // Reduced from default 8
		case theme.SizeNameLineSpacing:
			return 2
		case theme.SizeNameText:
			return 13
		case theme.SizeNameHeadingText:
			return 16
		case theme.SizeNameSubHeadingText:
			return 13
		case theme.SizeNameInputRadius:
			return 3
		}
	}

	// Tablet and everything else use the default sizes
	return theme.DefaultTheme().Size(name)
}
