package model

import (
	"testing"

	"fyne.io/fyne/v2/theme"
)

func TestNavigationEntry_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		entry    NavigationEntry
		expected bool
	}{
		{"complete", NewNavigationEntry("home", "Home", theme.IconNameHome, "/home"), true},
		{"nested route", NewNavigationEntry("docs", "Docs", theme.IconNameInfo, "/help/docs"), true},
		{"empty id", NewNavigationEntry("", "Home", theme.IconNameHome, "/home"), false},
		{"whitespace id", NewNavigationEntry("  ", "Home", theme.IconNameHome, "/home"), false},
		{"empty title", NewNavigationEntry("home", "", theme.IconNameHome, "/home"), false},
		{"empty icon", NewNavigationEntry("home", "Home", "", "/home"), false},
		{"empty route", NewNavigationEntry("home", "Home", theme.IconNameHome, ""), false},
		{"route without slash", NewNavigationEntry("home", "Home", theme.IconNameHome, "home"), false},
	}

	for _, test := range tests {
		result := test.entry.IsValid()
		if result != test.expected {
			t.Errorf("%s: IsValid() = %v, expected %v", test.name, result, test.expected)
		}
	}
}

func TestNavigationEntry_CopyWith(t *testing.T) {
	original := NewNavigationEntry("home", "Home", theme.IconNameHome, "/home")

	renamed := original.WithTitle("Start")
	if renamed.Title != "Start" {
		t.Errorf("Expected title 'Start', got '%s'", renamed.Title)
	}
	if original.Title != "Home" {
		t.Errorf("Original entry was mutated: title is '%s'", original.Title)
	}

	moved := original.WithRoute("/start").WithIcon(theme.IconNameComputer)
	if moved.Route != "/start" || moved.Icon != theme.IconNameComputer {
		t.Errorf("Unexpected copy: %+v", moved)
	}
	if original.Route != "/home" || original.Icon != theme.IconNameHome {
		t.Errorf("Original entry was mutated: %+v", original)
	}

	if original.WithTitle("Home") != original {
		t.Error("Copy with identical fields should compare equal")
	}
}

func TestNavigationEntry_String(t *testing.T) {
	entry := NewNavigationEntry("about", "About", theme.IconNameInfo, "/about")
	expected := "about (/about)"
	if entry.String() != expected {
		t.Errorf("String() = %s, expected %s", entry.String(), expected)
	}
}

func TestDeviceType(t *testing.T) {
	tests := []struct {
		device   DeviceType
		expected string
	}{
		{DeviceMobile, "mobile"},
		{DeviceTablet, "tablet"},
		{DeviceDesktop, "desktop"},
	}
	for _, test := range tests {
		if test.device.String() != test.expected {
			t.Errorf("DeviceType.String() = %s, expected %s", test.device.String(), test.expected)
		}
	}
}
