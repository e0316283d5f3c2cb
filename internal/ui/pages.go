package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/adaptive-nav/internal/model"
	"github.com/ytget/adaptive-nav/internal/navigation"
	"github.com/ytget/adaptive-nav/internal/responsive"
)

// buildPage returns the content for the current route
func (ui *RootUI) buildPage() fyne.CanvasObject {
	switch ui.core.Routes.Current() {
	case navigation.RouteHome:
		return ui.createHomePage()
	case navigation.RouteProfile:
		return ui.createProfilePage()
	case navigation.RouteSettings:
		return ui.createSettingsPage()
	case navigation.RouteAbout:
		return ui.createAboutPage()
	default:
		return ui.createNotFoundPage()
	}
}

// createHomePage lays out a card grid using the responsive column count
func (ui *RootUI) createHomePage() fyne.CanvasObject {
	profile, err := ui.core.Responsive.Profile()
	if err != nil {
		profile = responsive.Profile{Columns: responsive.MobileColumns, MaxExtent: responsive.MobileMaxExtent}
	}

	cardHeight := profile.MaxExtent * CardHeightRatio
	if cardHeight < MinCardHeight {
		cardHeight = MinCardHeight
	}

	fill := ui.primaryColor()
	cards := make([]fyne.CanvasObject, 0, GridItemCount)
	for i := 1; i <= GridItemCount; i++ {
		swatch := canvas.NewRectangle(fill)
		swatch.CornerRadius = theme.InputRadiusSize()
		swatch.SetMinSize(fyne.NewSize(0, cardHeight))
		cards = append(cards, widget.NewCard(fmt.Sprintf(ui.localization.GetText(KeyItem), i), "", swatch))
	}

	content := append(ui.homeHeader(), container.NewGridWithColumns(profile.Columns, cards...))
	return container.NewVScroll(container.NewVBox(content...))
}

// homeHeader returns the welcome text, plus the swipe hint on mobile
func (ui *RootUI) homeHeader() []fyne.CanvasObject {
	welcome := widget.NewLabel(ui.localization.GetText(KeyWelcome))
	welcome.Wrapping = fyne.TextWrapWord
	if ui.device != model.DeviceMobile {
		return []fyne.CanvasObject{welcome}
	}

	hint := widget.NewLabel(ui.localization.GetText(KeySwipeHint))
	hint.Importance = widget.LowImportance
	hint.Wrapping = fyne.TextWrapWord
	return []fyne.CanvasObject{welcome, hint}
}

// createProfilePage shows a placeholder profile
func (ui *RootUI) createProfilePage() fyne.CanvasObject {
	avatar := canvas.NewImageFromResource(themeIcon(theme.IconNameAccount))
	avatar.FillMode = canvas.ImageFillContain
	avatar.SetMinSize(fyne.NewSize(96, 96))

	name := widget.NewLabel(ui.localization.GetText(KeyProfileName))
	name.TextStyle = fyne.TextStyle{Bold: true}
	name.Alignment = fyne.TextAlignCenter

	hint := widget.NewLabel(ui.localization.GetText(KeyProfileHint))
	hint.Alignment = fyne.TextAlignCenter
	hint.Wrapping = fyne.TextWrapWord

	return container.NewVBox(container.NewCenter(avatar), name, hint)
}

// createAboutPage shows version and live layout information
func (ui *RootUI) createAboutPage() fyne.CanvasObject {
	title := widget.NewLabel(ui.localization.GetText(KeyAppTitle))
	title.TextStyle = fyne.TextStyle{Bold: true}

	body := widget.NewLabel(ui.localization.GetText(KeyAboutBody))
	body.Wrapping = fyne.TextWrapWord

	columns := DashPlaceholder
	if n, err := ui.core.Responsive.GridColumns(); err == nil {
		columns = fmt.Sprintf("%d", n)
	}

	info := widget.NewForm(
		widget.NewFormItem(ui.localization.GetText(KeyVersion), widget.NewLabel(ui.version)),
		widget.NewFormItem(ui.localization.GetText(KeyLayout), widget.NewLabel(ui.localization.DeviceName(ui.device))),
		widget.NewFormItem(ui.localization.GetText(KeyColumns), widget.NewLabel(columns)),
		widget.NewFormItem(ui.localization.GetText(KeyWidth), widget.NewLabel(fmt.Sprintf("%.0f", ui.core.Responsive.Width()))),
	)

	return container.NewVBox(title, body, widget.NewSeparator(), info)
}

// createNotFoundPage is shown for routes without a catalog entry
func (ui *RootUI) createNotFoundPage() fyne.CanvasObject {
	message := widget.NewLabel(fmt.Sprintf("%s: %s", ui.localization.GetText(KeyPageNotFound), ui.core.Routes.Current()))
	message.Alignment = fyne.TextAlignCenter

	home := widget.NewButtonWithIcon(ui.localization.GetText(KeyGoHome), themeIcon(theme.IconNameHome), ui.core.Routes.Reset)
	return container.NewCenter(container.NewVBox(message, home))
}

func (ui *RootUI) primaryColor() color.Color {
	settings := ui.app.Settings()
	return settings.Theme().Color(theme.ColorNamePrimary, settings.ThemeVariant())
}
