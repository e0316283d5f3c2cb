package ui

// Package ui contains the Fyne-based user interface. It measures the window
// width, feeds it into the responsive state and swaps between the bottom bar,
// navigation rail and drawer shells as the device class changes. All UI
// strings are localized via Localization.
