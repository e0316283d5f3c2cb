package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ytget/adaptive-nav/internal/model"
	"github.com/ytget/adaptive-nav/internal/navigation"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "adaptive-nav.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if cfg != Defaults() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
	if err := cfg.Validate(navigation.NewDefaultCatalog()); err != nil {
		t.Errorf("Defaults should be valid: %v", err)
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
window:
  width: 1280
language: ru
start_route: /settings
terminal:
  cell_width: 10
log:
  level: debug
  development: true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Window.Width != 1280 {
		t.Errorf("Expected width 1280, got %v", cfg.Window.Width)
	}
	if cfg.Window.Height != DefaultWindowHeight {
		t.Errorf("Unset height should keep the default, got %v", cfg.Window.Height)
	}
	if cfg.Language != "ru" {
		t.Errorf("Expected language ru, got %s", cfg.Language)
	}
	if cfg.StartRoute != "/settings" {
		t.Errorf("Expected start route /settings, got %s", cfg.StartRoute)
	}
	if cfg.Terminal.CellWidth != 10 {
		t.Errorf("Expected cell width 10, got %v", cfg.Terminal.CellWidth)
	}
	if cfg.Log != (LogConfig{Level: "debug", Development: true}) {
		t.Errorf("Unexpected log config: %+v", cfg.Log)
	}
	if err := cfg.Validate(navigation.NewDefaultCatalog()); err != nil {
		t.Errorf("Loaded config should be valid: %v", err)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"missing file", filepath.Join(t.TempDir(), "missing.yaml"), "read config"},
		{"broken yaml", writeConfig(t, "window: [1, 2"), "parse config"},
	}

	for _, test := range tests {
		_, err := Load(test.path)
		if err == nil || !strings.Contains(err.Error(), test.want) {
			t.Errorf("%s: expected error containing %q, got %v", test.name, test.want, err)
		}
	}
}

func TestValidate(t *testing.T) {
	catalog := navigation.NewDefaultCatalog()

	cfg := Defaults()
	cfg.StartRoute = "/missing"
	if err := cfg.Validate(catalog); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("Unknown start route: expected ErrNotFound, got %v", err)
	}

	cfg = Defaults()
	cfg.StartRoute = " "
	if err := cfg.Validate(catalog); !errors.Is(err, model.ErrInvalidArgument) {
		t.Errorf("Blank start route: expected ErrInvalidArgument, got %v", err)
	}

	cfg = Defaults()
	cfg.Terminal.CellWidth = 0
	cfg.Window.Width = 100
	err := cfg.Validate(catalog)
	if err == nil {
		t.Fatal("Expected validation errors")
	}
	for _, want := range []string{"cell_width", "below minimum"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Expected %q in %v", want, err)
		}
	}
}
