// Package tui is the terminal host. It turns the terminal width into a
// logical pixel width, feeds it to the responsive state and draws the
// navigation shell for the resulting device class with lipgloss.
package tui
