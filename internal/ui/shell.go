package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/adaptive-nav/internal/model"
)

// widthProbe is a stack layout that reports the width it is given
type widthProbe struct {
	onWidth func(float32)
}

// Layout stretches every object over size and reports size.Width
func (p *widthProbe) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	for _, o := range objects {
		o.Move(fyne.NewPos(0, 0))
		o.Resize(size)
	}
	if p.onWidth != nil && size.Width > 0 {
		p.onWidth(size.Width)
	}
}

// MinSize returns the largest minimum size of objects
func (p *widthProbe) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var minSize fyne.Size
	for _, o := range objects {
		if !o.Visible() {
			continue
		}
		minSize = minSize.Max(o.MinSize())
	}
	return minSize
}

// buildShell arranges navigation chrome for device around page
func (ui *RootUI) buildShell(device model.DeviceType, page fyne.CanvasObject) fyne.CanvasObject {
	top := ui.createTopBar()

	switch device {
	case model.DeviceMobile:
		buttons := ui.createNavButtons(true)
		bar := container.NewGridWithColumns(len(buttons), asObjects(buttons)...)
		bottom := container.NewStack(spacer(0, BottomBarHeight), bar)
		return container.NewBorder(top, bottom, nil, nil, NewSwipeArea(page, ui.onSwipe))
	case model.DeviceTablet:
		buttons := ui.createNavButtons(false)
		rail := container.NewStack(spacer(RailWidth, 0), container.NewVBox(asObjects(buttons)...))
		return container.NewBorder(top, nil, container.NewHBox(rail, widget.NewSeparator()), nil, page)
	default:
		buttons := ui.createNavButtons(true)
		for _, b := range buttons {
			b.Alignment = widget.ButtonAlignLeading
		}
		drawer := container.NewStack(spacer(DrawerWidth, 0), container.NewVBox(asObjects(buttons)...))
		return container.NewBorder(top, nil, container.NewHBox(drawer, widget.NewSeparator()), nil, page)
	}
}

// createNavButtons creates one button per catalog entry; rail buttons are icon-only
func (ui *RootUI) createNavButtons(withLabels bool) []*widget.Button {
	items := ui.core.Catalog.Items()
	ui.navButtons = make([]*widget.Button, 0, len(items))
	for i, entry := range items {
		index := i
		label := ""
		if withLabels {
			label = ui.localization.EntryTitle(entry)
		}
		btn := widget.NewButtonWithIcon(label, themeIcon(entry.Icon), func() {
			ui.onSelectIndex(index)
		})
		ui.navButtons = append(ui.navButtons, btn)
	}
	return ui.navButtons
}

// createTopBar creates the title row with back button and layout summary
func (ui *RootUI) createTopBar() fyne.CanvasObject {
	// Only the drawer layout has room for a labelled back button
	label := ""
	if ui.device == model.DeviceDesktop {
		label = ui.localization.GetText(KeyBack)
	}
	ui.backBtn = widget.NewButtonWithIcon(label, themeIcon(theme.IconNameNavigateBack), ui.onBack)
	ui.backBtn.Importance = widget.LowImportance

	ui.titleLabel = widget.NewLabel("")
	ui.titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	ui.layoutLabel = widget.NewLabel("")
	ui.layoutLabel.Importance = widget.LowImportance

	return container.NewVBox(
		container.NewBorder(nil, nil, ui.backBtn, ui.layoutLabel, ui.titleLabel),
		widget.NewSeparator(),
	)
}

func spacer(width, height float32) fyne.CanvasObject {
	rect := canvas.NewRectangle(color.Transparent)
	rect.SetMinSize(fyne.NewSize(width, height))
	return rect
}

func asObjects(buttons []*widget.Button) []fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, len(buttons))
	for i, b := range buttons {
		objects[i] = b
	}
	return objects
}
