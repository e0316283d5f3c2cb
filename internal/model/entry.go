package model

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
)

// RoutePrefix is the required first character of every route
const RoutePrefix = "/"

// NavigationEntry represents a single navigation destination
type NavigationEntry struct {
	ID    string
	Title string
	Icon  fyne.ThemeIconName // resolved through the active theme by the UI
	Route string
}

// NewNavigationEntry creates a navigation entry without validating it
func NewNavigationEntry(id, title string, icon fyne.ThemeIconName, route string) NavigationEntry {
	return NavigationEntry{
		ID:    id,
		Title: title,
		Icon:  icon,
		Route: route,
	}
}

// IsValid reports whether every field satisfies its format constraint
func (e NavigationEntry) IsValid() bool {
	if strings.TrimSpace(e.ID) == "" || strings.TrimSpace(e.Title) == "" {
		return false
	}
	if e.Icon == "" {
		return false
	}
	return IsValidRoute(e.Route)
}

// WithTitle returns a copy of the entry with a different title
func (e NavigationEntry) WithTitle(title string) NavigationEntry {
	e.Title = title
	return e
}

// WithIcon returns a copy of the entry with a different icon
func (e NavigationEntry) WithIcon(icon fyne.ThemeIconName) NavigationEntry {
	e.Icon = icon
	return e
}

// WithRoute returns a copy of the entry with a different route
func (e NavigationEntry) WithRoute(route string) NavigationEntry {
	e.Route = route
	return e
}

// String returns a compact description used in logs and CLI output
func (e NavigationEntry) String() string {
	return fmt.Sprintf("%s (%s)", e.ID, e.Route)
}

// IsValidRoute reports whether route is non-empty and starts with RoutePrefix
func IsValidRoute(route string) bool {
	return route != "" && strings.HasPrefix(route, RoutePrefix)
}
