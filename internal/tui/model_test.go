package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	navapp "github.com/ytget/adaptive-nav/internal/app"
	"github.com/ytget/adaptive-nav/internal/config"
	"github.com/ytget/adaptive-nav/internal/model"
	"github.com/ytget/adaptive-nav/internal/navigation"
)

func newTestModel(t *testing.T) (Model, *navapp.Core) {
	t.Helper()
	core, err := navapp.NewCore(config.Defaults(), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(core.Dispose)
	return NewModel(core, 8), core
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	result, ok := next.(Model)
	require.True(t, ok)
	return result
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_WindowSizeSelectsShell(t *testing.T) {
	m, core := newTestModel(t)

	tests := []struct {
		columns int
		device  model.DeviceType
		grid    int
	}{
		{60, model.DeviceMobile, 2},
		{90, model.DeviceTablet, 4},
		{120, model.DeviceDesktop, 6},
		{74, model.DeviceMobile, 2},
		{75, model.DeviceTablet, 4},
	}

	for _, tt := range tests {
		m = update(t, m, tea.WindowSizeMsg{Width: tt.columns, Height: 40})

		assert.Equal(t, float32(tt.columns*8), core.Responsive.Width())
		assert.Equal(t, tt.device, m.Device(), "columns %d", tt.columns)
		columns, err := core.Responsive.GridColumns()
		require.NoError(t, err)
		assert.Equal(t, tt.grid, columns)
		assert.Contains(t, m.View(), tt.device.String())
	}
}

func TestModel_CellWidthDefault(t *testing.T) {
	core, err := navapp.NewCore(config.Defaults(), zap.NewNop())
	require.NoError(t, err)
	defer core.Dispose()

	m := NewModel(core, 0)
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.Equal(t, float32(100*config.DefaultCellWidth), core.Responsive.Width())
}

func TestModel_ViewBeforeMeasure(t *testing.T) {
	m, core := newTestModel(t)

	assert.Equal(t, "Measuring terminal...", m.View())
	assert.False(t, core.Responsive.IsInitialized())
}

func TestModel_NumberKeysSelect(t *testing.T) {
	m, core := newTestModel(t)
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	m = update(t, m, runes("3"))
	assert.Equal(t, navigation.RouteSettings, core.Routes.Current())
	assert.Equal(t, 2, core.Selection.SelectedIndex())

	m = update(t, m, runes("9"))
	assert.Equal(t, navigation.RouteSettings, core.Routes.Current())
	assert.Contains(t, m.View(), "no destination 9")
}

func TestModel_BackAndReset(t *testing.T) {
	m, core := newTestModel(t)
	m = update(t, m, tea.WindowSizeMsg{Width: 90, Height: 40})

	m = update(t, m, runes("b"))
	assert.Contains(t, m.View(), "nothing to go back to")

	m = update(t, m, runes("2"))
	m = update(t, m, runes("b"))
	assert.Equal(t, navigation.RouteHome, core.Routes.Current())
	assert.Equal(t, 0, core.Selection.SelectedIndex())

	m = update(t, m, runes("4"))
	m = update(t, m, runes("r"))
	assert.Equal(t, navigation.RouteHome, core.Routes.Current())
	assert.False(t, core.Routes.CanGoBack())
	assert.NotContains(t, m.View(), "nothing to go back to")
}

func TestModel_TabCycles(t *testing.T) {
	m, core := newTestModel(t)
	m = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 40})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, navigation.RouteAbout, core.Routes.Current())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, navigation.RouteHome, core.Routes.Current())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, navigation.RouteProfile, core.Routes.Current())
}

func TestModel_UnknownRoute(t *testing.T) {
	m, core := newTestModel(t)
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	core.Routes.SetRoute("/missing")
	assert.Equal(t, -1, core.Selection.SelectedIndex())
	assert.Contains(t, m.View(), "Page not found: /missing")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, navigation.RouteHome, core.Routes.Current())
}

func TestModel_Quit(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestModel_ShellContents(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 40})
	mobile := m.View()
	assert.Contains(t, mobile, "Item 12")
	assert.Contains(t, mobile, "Settings")

	m = update(t, m, tea.WindowSizeMsg{Width: 90, Height: 40})
	assert.Contains(t, m.View(), "3 S")

	m = update(t, m, tea.WindowSizeMsg{Width: 140, Height: 40})
	assert.Contains(t, m.View(), "3 Settings")
}
