package ui

import (
	"math"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// GestureType represents different types of gestures
type GestureType int

const (
	GestureNone GestureType = iota
	GestureTap
	GestureSwipeLeft
	GestureSwipeRight
	GestureSwipeUp
	GestureSwipeDown
	GestureLongPress
)

// DetectGesture classifies a pointer movement of (dx, dy) that lasted duration
func DetectGesture(dx, dy float32, duration time.Duration, swipeThreshold float32, longPress time.Duration) GestureType {
	distance := float32(math.Hypot(float64(dx), float64(dy)))

	if distance >= swipeThreshold {
		if abs(dx) >= abs(dy) {
			if dx < 0 {
				return GestureSwipeLeft
			}
			return GestureSwipeRight
		}
		if dy < 0 {
			return GestureSwipeUp
		}
		return GestureSwipeDown
	}

	if duration >= longPress {
		return GestureLongPress
	}
	return GestureTap
}

// SwipeArea wraps content and reports horizontal swipes performed as drags.
// It works with touch on mobile and with the mouse on desktop.
type SwipeArea struct {
	widget.BaseWidget

	content fyne.CanvasObject
	onSwipe func(GestureType)

	// Drag tracking
	dragging  bool
	startTime time.Time
	dx, dy    float32

	// Gesture thresholds
	swipeThreshold    float32
	longPressDuration time.Duration
}

// NewSwipeArea creates a swipe area around content
func NewSwipeArea(content fyne.CanvasObject, onSwipe func(GestureType)) *SwipeArea {
	s := &SwipeArea{
		content:           content,
		onSwipe:           onSwipe,
		swipeThreshold:    DefaultSwipeThreshold,
		longPressDuration: DefaultLongPressDuration,
	}
	s.ExtendBaseWidget(s)
	return s
}

// CreateRenderer implements fyne.Widget
func (s *SwipeArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.content)
}

// Dragged accumulates the drag distance
func (s *SwipeArea) Dragged(event *fyne.DragEvent) {
	if !s.dragging {
		s.dragging = true
		s.startTime = time.Now()
		s.dx, s.dy = 0, 0
	}
	s.dx += event.Dragged.DX
	s.dy += event.Dragged.DY
}

// DragEnd reports a horizontal swipe if the drag was long enough
func (s *SwipeArea) DragEnd() {
	if !s.dragging {
		return
	}
	s.dragging = false

	gesture := DetectGesture(s.dx, s.dy, time.Since(s.startTime), s.swipeThreshold, s.longPressDuration)
	if gesture != GestureSwipeLeft && gesture != GestureSwipeRight {
		return
	}
	if s.onSwipe != nil {
		s.onSwipe(gesture)
	}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
