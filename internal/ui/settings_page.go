package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"
)

// settingsForm holds the widgets of the settings page
type settingsForm struct {
	languageSelect *widget.Select
	codes          map[string]string // display name -> language code
}

// createSettingsPage creates the settings page
func (ui *RootUI) createSettingsPage() fyne.CanvasObject {
	form := ui.newSettingsForm()

	saveBtn := widget.NewButtonWithIcon(ui.localization.GetText(KeySave), themeIcon(theme.IconNameDocumentSave), func() {
		ui.onSaveSettings(form)
	})
	saveBtn.Importance = widget.HighImportance

	resetBtn := widget.NewButtonWithIcon(ui.localization.GetText(KeyResetNav), themeIcon(theme.IconNameViewRefresh), ui.core.Routes.Reset)

	return container.NewVBox(
		widget.NewLabel(ui.localization.GetText(KeyInterface)),
		widget.NewSeparator(),

		widget.NewLabel(ui.localization.GetText(KeyLanguage)+":"),
		form.languageSelect,

		widget.NewSeparator(),
		container.NewHBox(saveBtn, resetBtn),
	)
}

// newSettingsForm creates the form widgets and loads current settings into them
func (ui *RootUI) newSettingsForm() *settingsForm {
	form := &settingsForm{codes: make(map[string]string)}

	options := []string{}
	current := ui.settings.GetLanguage()
	selected := ""
	for code, name := range ui.settings.GetLanguageOptions() {
		form.codes[name] = code
		options = append(options, name)
		if code == current {
			selected = name
		}
	}
	sort.Strings(options)

	form.languageSelect = widget.NewSelect(options, nil)
	form.languageSelect.SetSelected(selected)
	return form
}

// onSaveSettings handles saving the settings
func (ui *RootUI) onSaveSettings(form *settingsForm) {
	code, ok := form.codes[form.languageSelect.Selected]
	if !ok {
		return
	}

	ui.settings.SetLanguage(code)
	ui.localization.SetLanguage(code)
	ui.logger.Info("language changed", zap.String("language", code))

	// Update UI texts
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.render()

	// Show confirmation
	dialog.ShowInformation(ui.localization.GetText(KeyAppTitle), ui.localization.GetText(KeySettingsSaved), ui.window)
}
