package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ytget/adaptive-nav/internal/model"
	"github.com/ytget/adaptive-nav/internal/navigation"
)

// DefaultCellWidth is the number of logical pixels one terminal column stands for
const DefaultCellWidth float32 = 8

// File is the optional YAML startup configuration
type File struct {
	Window     WindowConfig   `yaml:"window"`
	Language   string         `yaml:"language"`
	StartRoute string         `yaml:"start_route"`
	Terminal   TerminalConfig `yaml:"terminal"`
	Log        LogConfig      `yaml:"log"`
}

// WindowConfig sets the initial GUI window size
type WindowConfig struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

// TerminalConfig tunes the terminal shell
type TerminalConfig struct {
	CellWidth float32 `yaml:"cell_width"`
}

// LogConfig selects the logger flavour
type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Defaults returns the configuration used when no file is given
func Defaults() File {
	return File{
		Window: WindowConfig{
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
		},
		Language:   DefaultLanguage,
		StartRoute: navigation.RouteHome,
		Terminal:   TerminalConfig{CellWidth: DefaultCellWidth},
		Log:        LogConfig{Level: "info"},
	}
}

// Load reads path on top of Defaults. An empty path returns the defaults.
func Load(path string) (File, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration against catalog
func (f File) Validate(catalog *navigation.Catalog) error {
	var errs []error
	if f.Window.Width < MinWindowWidth || f.Window.Height < MinWindowHeight {
		errs = append(errs, fmt.Errorf("window %vx%v below minimum %vx%v: %w",
			f.Window.Width, f.Window.Height, MinWindowWidth, MinWindowHeight, model.ErrInvalidArgument))
	}
	if f.Terminal.CellWidth <= 0 {
		errs = append(errs, fmt.Errorf("terminal cell_width %v must be positive: %w", f.Terminal.CellWidth, model.ErrInvalidArgument))
	}
	if strings.TrimSpace(f.StartRoute) == "" {
		errs = append(errs, fmt.Errorf("start_route is empty: %w", model.ErrInvalidArgument))
	} else if !catalog.HasItemWithRoute(f.StartRoute) {
		errs = append(errs, fmt.Errorf("start_route %q: %w", f.StartRoute, model.ErrNotFound))
	}
	return errors.Join(errs...)
}
