package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	navapp "github.com/ytget/adaptive-nav/internal/app"
	"github.com/ytget/adaptive-nav/internal/config"
	"github.com/ytget/adaptive-nav/internal/model"
	"github.com/ytget/adaptive-nav/internal/navigation"
)

// Model is the bubbletea model of the terminal shell. The navigation state
// lives in the shared core, so copies of Model observe the same state.
type Model struct {
	core      *navapp.Core
	logger    *zap.Logger
	keys      keyMap
	help      help.Model
	cellWidth float32

	width  int
	height int
	status string
}

// NewModel creates the terminal shell. Each terminal column counts as
// cellWidth logical pixels; non-positive values fall back to the default.
func NewModel(core *navapp.Core, cellWidth float32) Model {
	if cellWidth <= 0 {
		cellWidth = config.DefaultCellWidth
	}
	return Model{
		core:      core,
		logger:    core.Logger.Named("tui"),
		keys:      defaultKeyMap(),
		help:      help.New(),
		cellWidth: cellWidth,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.core.Responsive.SetWidth(m.logicalWidth())
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		m.step(1)
	case key.Matches(msg, m.keys.Prev):
		m.step(-1)
	case key.Matches(msg, m.keys.Select):
		m.selectIndex(int(msg.String()[0] - '1'))
	case key.Matches(msg, m.keys.Back):
		if !m.core.Routes.GoBack() {
			m.status = "nothing to go back to"
		}
	case key.Matches(msg, m.keys.Reset):
		m.core.Routes.Reset()
	}
	return m, nil
}

// step moves the selection by delta, wrapping around the catalog
func (m *Model) step(delta int) {
	n := m.core.Catalog.Len()
	current := m.core.Selection.SelectedIndex()
	if current < 0 {
		current = 0
		if delta > 0 {
			delta--
		}
	}
	m.selectIndex(((current+delta)%n + n) % n)
}

func (m *Model) selectIndex(index int) {
	if index >= m.core.Catalog.Len() {
		m.status = fmt.Sprintf("no destination %d", index+1)
		return
	}
	if err := m.core.Selection.SelectByIndex(index); err != nil {
		m.logger.Warn("selection failed", zap.Int("index", index), zap.Error(err))
		m.status = err.Error()
	}
}

func (m Model) logicalWidth() float32 {
	return float32(m.width) * m.cellWidth
}

// Device returns the device class of the shell being drawn
func (m Model) Device() model.DeviceType {
	device, err := m.core.Responsive.DeviceType()
	if err != nil {
		return model.DeviceMobile
	}
	return device
}

// View implements tea.Model
func (m Model) View() string {
	if m.width <= 0 {
		return "Measuring terminal..."
	}

	device := m.Device()
	switch device {
	case model.DeviceDesktop:
		nav := m.renderSidebar()
		body := m.renderBody(m.width - lipgloss.Width(nav))
		return lipgloss.JoinHorizontal(lipgloss.Top, nav, body)
	case model.DeviceTablet:
		nav := m.renderRail()
		body := m.renderBody(m.width - lipgloss.Width(nav))
		return lipgloss.JoinHorizontal(lipgloss.Top, nav, body)
	default:
		body := m.renderBody(m.width)
		return lipgloss.JoinVertical(lipgloss.Left, body, m.renderBottomBar())
	}
}

func (m Model) renderBody(width int) string {
	width = max(width, 1)
	parts := []string{
		m.renderHeader(width),
		"",
		m.renderPage(width),
	}
	if m.status != "" {
		parts = append(parts, "", mutedStyle.Render(m.status))
	}
	parts = append(parts, "", m.help.View(m.keys))
	return lipgloss.NewStyle().Width(width).PaddingLeft(1).Render(strings.Join(parts, "\n"))
}

func (m Model) renderHeader(width int) string {
	title := "Adaptive Nav"
	if entry, ok := m.core.Navigator.Current(); ok {
		title = entry.Title
	}
	if m.core.Routes.CanGoBack() {
		title = "‹ " + title
	}

	summary := m.Device().String()
	if columns, err := m.core.Responsive.GridColumns(); err == nil {
		summary = fmt.Sprintf("%s · %d cols · %.0fpx", summary, columns, m.core.Responsive.Width())
	}

	left := titleStyle.Render(title)
	right := mutedStyle.Render(summary)
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right)-2, 1)
	return left + strings.Repeat(" ", gap) + right
}

func (m Model) renderPage(width int) string {
	route := m.core.Routes.Current()
	switch route {
	case navigation.RouteHome:
		return m.renderGrid(width)
	case navigation.RouteProfile:
		return "Guest\n" + mutedStyle.Render("Sign in to sync your preferences.")
	case navigation.RouteSettings:
		return fmt.Sprintf("Cell width: %.0fpx\n%s", m.cellWidth, mutedStyle.Render("Resize the terminal to switch layouts."))
	case navigation.RouteAbout:
		extent, _ := m.core.Responsive.MaxItemExtent()
		return fmt.Sprintf("Layout:   %s\nWidth:    %.0fpx\nExtent:   %.0fpx", m.Device(), m.core.Responsive.Width(), extent)
	default:
		return fmt.Sprintf("Page not found: %s\n%s", route, mutedStyle.Render("Press r to go home."))
	}
}

// renderGrid lays the home cards out in as many columns as the device class allows
func (m Model) renderGrid(width int) string {
	columns, err := m.core.Responsive.GridColumns()
	if err != nil || columns <= 0 {
		columns = 1
	}
	cardWidth := max(width/columns-cardStyle.GetHorizontalFrameSize()-1, 4)

	var rows []string
	for start := 0; start < gridItems; start += columns {
		var cells []string
		for i := start; i < min(start+columns, gridItems); i++ {
			cells = append(cells, cardStyle.Width(cardWidth).Render(fmt.Sprintf("Item %d", i+1)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderBottomBar() string {
	items := m.core.Catalog.Items()
	cell := max(m.width/len(items), 1)
	selected := m.core.Selection.SelectedIndex()

	var cells []string
	for i, entry := range items {
		style := navItemStyle
		if i == selected {
			style = navSelectedStyle
		}
		cells = append(cells, style.Width(cell).Align(lipgloss.Center).Render(entry.Title))
	}
	return bottomBarStyle.Width(m.width).Render(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
}

func (m Model) renderRail() string {
	selected := m.core.Selection.SelectedIndex()

	var cells []string
	for i, entry := range m.core.Catalog.Items() {
		style := navItemStyle
		if i == selected {
			style = navSelectedStyle
		}
		label := fmt.Sprintf("%d %s", i+1, initial(entry.Title))
		cells = append(cells, style.Width(railWidth-1).Render(label))
	}
	return sidebarStyle.Render(lipgloss.JoinVertical(lipgloss.Left, cells...))
}

func (m Model) renderSidebar() string {
	selected := m.core.Selection.SelectedIndex()

	cells := []string{titleStyle.Render(" Adaptive Nav"), ""}
	for i, entry := range m.core.Catalog.Items() {
		style := navItemStyle
		if i == selected {
			style = navSelectedStyle
		}
		cells = append(cells, style.Width(sidebarWidth-1).Render(fmt.Sprintf("%d %s", i+1, entry.Title)))
	}
	return sidebarStyle.Render(lipgloss.JoinVertical(lipgloss.Left, cells...))
}

func initial(title string) string {
	for _, r := range title {
		return strings.ToUpper(string(r))
	}
	return "?"
}
