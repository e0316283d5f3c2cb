package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	navapp "github.com/ytget/adaptive-nav/internal/app"
	"github.com/ytget/adaptive-nav/internal/config"
	"github.com/ytget/adaptive-nav/internal/model"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	core         *navapp.Core
	settings     *config.Settings
	localization *Localization
	logger       *zap.Logger
	version      string

	// Rendered state
	body          *fyne.Container
	updatingWidth bool
	device        model.DeviceType
	navButtons    []*widget.Button
	backBtn       *widget.Button
	titleLabel    *widget.Label
	layoutLabel   *widget.Label

	// Subscriptions on the core state containers
	widthListener     binding.DataListener
	routeListener     binding.DataListener
	selectionListener binding.DataListener
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, core *navapp.Core, settings *config.Settings, version string) *RootUI {
	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		core:         core,
		settings:     settings,
		localization: localization,
		logger:       core.Logger.Named("ui"),
		version:      version,
	}

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	return ui
}

// setupUI subscribes to the core state and renders the first shell
func (ui *RootUI) setupUI() {
	ui.body = container.New(&widthProbe{onWidth: ui.onMeasured})
	ui.device = ui.currentDevice()
	ui.app.Settings().SetTheme(NewAdaptiveTheme(ui.device))

	ui.widthListener = binding.NewDataListener(ui.onResponsiveChange)
	ui.routeListener = binding.NewDataListener(ui.render)
	ui.selectionListener = binding.NewDataListener(ui.refreshNavigation)
	ui.core.Responsive.Subscribe(ui.widthListener)
	ui.core.Routes.Subscribe(ui.routeListener)
	ui.core.Selection.Subscribe(ui.selectionListener)

	ui.window.Canvas().SetOnTypedKey(ui.onTypedKey)
	ui.window.SetContent(ui.body)
	ui.render()

	ui.logger.Debug("UI setup completed", zap.Stringer("device", ui.device))
}

// Close drops the UI subscriptions on the core state
func (ui *RootUI) Close() {
	ui.core.Responsive.Unsubscribe(ui.widthListener)
	ui.core.Routes.Unsubscribe(ui.routeListener)
	ui.core.Selection.Unsubscribe(ui.selectionListener)
}

// Device returns the device class of the shell currently shown
func (ui *RootUI) Device() model.DeviceType {
	return ui.device
}

// onMeasured forwards a measured width to the responsive state. Swapping the
// shell lays the body out again; measurements from that nested pass are
// dropped because the responsive state is still notifying.
func (ui *RootUI) onMeasured(width float32) {
	if ui.updatingWidth {
		return
	}
	ui.updatingWidth = true
	defer func() { ui.updatingWidth = false }()

	ui.core.Responsive.SetWidth(width)
}

// onResponsiveChange swaps the shell when the device class changes
func (ui *RootUI) onResponsiveChange() {
	ui.updatingWidth = true
	defer func() { ui.updatingWidth = false }()

	device, err := ui.core.Responsive.DeviceType()
	if err != nil {
		ui.logger.Warn("ignoring unusable width", zap.Float32("width", ui.core.Responsive.Width()), zap.Error(err))
		return
	}
	if device == ui.device {
		return
	}

	ui.logger.Info("device class changed",
		zap.Stringer("from", ui.device),
		zap.Stringer("to", device),
		zap.Float32("width", ui.core.Responsive.Width()),
	)
	ui.device = device
	ui.app.Settings().SetTheme(NewAdaptiveTheme(device))
	ui.render()
}

// render rebuilds the shell and page for the current device and route
func (ui *RootUI) render() {
	page := ui.buildPage()
	shell := ui.buildShell(ui.device, page)
	ui.body.Objects = []fyne.CanvasObject{shell}
	ui.body.Refresh()
	ui.refreshNavigation()
}

// refreshNavigation highlights the selected entry and updates the top bar
func (ui *RootUI) refreshNavigation() {
	selected := ui.core.Selection.SelectedIndex()
	for i, btn := range ui.navButtons {
		if i == selected {
			btn.Importance = widget.HighImportance
		} else {
			btn.Importance = widget.LowImportance
		}
		btn.Refresh()
	}

	if ui.backBtn != nil {
		if ui.core.Routes.CanGoBack() {
			ui.backBtn.Enable()
		} else {
			ui.backBtn.Disable()
		}
	}

	if ui.titleLabel != nil {
		title := ui.localization.GetText(KeyAppTitle)
		if entry, ok := ui.core.Navigator.Current(); ok {
			title = ui.localization.EntryTitle(entry)
		}
		ui.titleLabel.SetText(title)
	}

	if ui.layoutLabel != nil {
		ui.layoutLabel.SetText(ui.layoutSummary())
	}
}

// layoutSummary returns e.g. "Tablet · 4"
func (ui *RootUI) layoutSummary() string {
	columns, err := ui.core.Responsive.GridColumns()
	if err != nil {
		return ui.localization.DeviceName(ui.device)
	}
	return fmt.Sprintf("%s%s%d", ui.localization.DeviceName(ui.device), MiddleDotSeparator, columns)
}

// onSelectIndex handles a tap on a navigation destination
func (ui *RootUI) onSelectIndex(index int) {
	if err := ui.core.Selection.SelectByIndex(index); err != nil {
		ui.logger.Warn("selection failed", zap.Int("index", index), zap.Error(err))
	}
}

// onBack handles the back button
func (ui *RootUI) onBack() {
	if !ui.core.Routes.GoBack() {
		ui.logger.Debug("nothing to go back to")
	}
}

// onSwipe moves to the neighbouring destination on the mobile shell
func (ui *RootUI) onSwipe(gesture GestureType) {
	current := ui.core.Selection.SelectedIndex()
	if current < 0 {
		current = 0
	}

	next := current
	switch gesture {
	case GestureSwipeLeft:
		next++
	case GestureSwipeRight:
		next--
	}
	if next == current || next < 0 || next >= ui.core.Catalog.Len() {
		return
	}
	ui.onSelectIndex(next)
}

// onTypedKey handles keyboard navigation: digits select, Escape goes back
func (ui *RootUI) onTypedKey(event *fyne.KeyEvent) {
	switch event.Name {
	case fyne.KeyEscape, fyne.KeyBackspace:
		ui.onBack()
	case fyne.Key1, fyne.Key2, fyne.Key3, fyne.Key4, fyne.Key5, fyne.Key6, fyne.Key7, fyne.Key8, fyne.Key9:
		index := int(event.Name[0] - '1')
		if index < ui.core.Catalog.Len() {
			ui.onSelectIndex(index)
		}
	}
}

// currentDevice returns the device class for the measured width, mobile until one is known
func (ui *RootUI) currentDevice() model.DeviceType {
	device, err := ui.core.Responsive.DeviceType()
	if err != nil {
		return model.DeviceMobile
	}
	return device
}
