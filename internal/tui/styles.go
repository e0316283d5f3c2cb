package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.AdaptiveColor{Light: "#1565C0", Dark: "#64B5F6"}
	colorMuted  = lipgloss.AdaptiveColor{Light: "#757575", Dark: "#9E9E9E"}
	colorBorder = lipgloss.AdaptiveColor{Light: "#BDBDBD", Dark: "#424242"}

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	mutedStyle = lipgloss.NewStyle().Foreground(colorMuted)

	navItemStyle     = lipgloss.NewStyle().Padding(0, 1).Foreground(colorMuted)
	navSelectedStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(colorAccent).Reverse(true)

	sidebarStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(colorBorder)
	bottomBarStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(colorBorder)
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Align(lipgloss.Center)
)

const (
	railWidth    = 7
	sidebarWidth = 18
	gridItems    = 12
)
