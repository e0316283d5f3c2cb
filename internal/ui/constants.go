package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// Navigation chrome sizing
const (
	RailWidth       float32 = 72
	DrawerWidth     float32 = 220
	BottomBarHeight float32 = 56
)

// Home grid sizing
const (
	GridItemCount           = 12
	CardHeightRatio         = 0.6
	MinCardHeight   float32 = 64
)

// Gesture thresholds
const (
	DefaultSwipeThreshold    float32 = 50.0
	DefaultLongPressDuration         = 500 * time.Millisecond
)
