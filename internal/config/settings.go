package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage     = "app_language"
	KeyWindowWidth  = "window_width"
	KeyWindowHeight = "window_height"
)

// Default values
const (
	DefaultLanguage             = "system"
	DefaultWindowWidth  float32 = 800
	DefaultWindowHeight float32 = 600
)

// Window size limits
const (
	MinWindowWidth  float32 = 320
	MinWindowHeight float32 = 480
	MaxWindowSide   float32 = 7680
)

// Settings manages UI preferences stored by Fyne
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetWindowSize returns the last saved window size
func (s *Settings) GetWindowSize() fyne.Size {
	width := float32(s.app.Preferences().FloatWithFallback(KeyWindowWidth, float64(DefaultWindowWidth)))
	height := float32(s.app.Preferences().FloatWithFallback(KeyWindowHeight, float64(DefaultWindowHeight)))
	return fyne.NewSize(clamp(width, MinWindowWidth, MaxWindowSide), clamp(height, MinWindowHeight, MaxWindowSide))
}

// SetWindowSize saves the window size, clamped to the supported range
func (s *Settings) SetWindowSize(size fyne.Size) {
	s.app.Preferences().SetFloat(KeyWindowWidth, float64(clamp(size.Width, MinWindowWidth, MaxWindowSide)))
	s.app.Preferences().SetFloat(KeyWindowHeight, float64(clamp(size.Height, MinWindowHeight, MaxWindowSide)))
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
