package state

import (
	"fyne.io/fyne/v2/data/binding"
	"go.uber.org/zap"

	"github.com/ytget/adaptive-nav/internal/model"
	"github.com/ytget/adaptive-nav/internal/responsive"
)

// ResponsiveState holds the measured screen width and derives layout values from it
type ResponsiveState struct {
	width     float32
	listeners listeners
	logger    *zap.Logger
}

var _ Observable[float32] = (*ResponsiveState)(nil)

// NewResponsiveState creates a responsive state with an uninitialized (zero) width
func NewResponsiveState(logger *zap.Logger) *ResponsiveState {
	return &ResponsiveState{
		listeners: listeners{owner: "ResponsiveState"},
		logger:    loggerOrNop(logger),
	}
}

// SetWidth stores width and notifies listeners if it changed. Negative
// widths are stored as-is; derived getters report them as invalid.
func (s *ResponsiveState) SetWidth(width float32) {
	s.listeners.guard("SetWidth")
	if width == s.width {
		return
	}

	previous := s.width
	s.width = width
	s.logger.Debug("width changed",
		zap.Float32("from", previous),
		zap.Float32("to", width),
	)
	s.listeners.notify()
}

// Width returns the stored width
func (s *ResponsiveState) Width() float32 {
	return s.width
}

// Value returns the stored width
func (s *ResponsiveState) Value() float32 {
	return s.width
}

// IsInitialized reports whether a width has been measured yet
func (s *ResponsiveState) IsInitialized() bool {
	return s.width > 0
}

// Profile returns every derived layout value at once
func (s *ResponsiveState) Profile() (responsive.Profile, error) {
	return responsive.Classify(s.width)
}

// DeviceType returns the device class for the stored width
func (s *ResponsiveState) DeviceType() (model.DeviceType, error) {
	return responsive.DeviceTypeOf(s.width)
}

// GridColumns returns the grid column count for the stored width
func (s *ResponsiveState) GridColumns() (int, error) {
	return responsive.GridColumns(s.width)
}

// MaxItemExtent returns the grid item extent for the stored width
func (s *ResponsiveState) MaxItemExtent() (float32, error) {
	return responsive.MaxCrossAxisExtent(s.width)
}

// ShowBottomNavigation reports whether the mobile shell should be used
func (s *ResponsiveState) ShowBottomNavigation() bool {
	return s.isDevice(model.DeviceMobile)
}

// ShowNavigationRail reports whether the tablet shell should be used
func (s *ResponsiveState) ShowNavigationRail() bool {
	return s.isDevice(model.DeviceTablet)
}

// ShowNavigationDrawer reports whether the desktop shell should be used
func (s *ResponsiveState) ShowNavigationDrawer() bool {
	return s.isDevice(model.DeviceDesktop)
}

// Subscribe registers listener for width changes
func (s *ResponsiveState) Subscribe(listener binding.DataListener) {
	s.listeners.add(listener)
}

// Unsubscribe removes listener; unknown listeners are ignored
func (s *ResponsiveState) Unsubscribe(listener binding.DataListener) {
	s.listeners.remove(listener)
}

// Dispose drops all listeners. It is safe to call more than once.
func (s *ResponsiveState) Dispose() {
	s.listeners.clear()
}

func (s *ResponsiveState) isDevice(want model.DeviceType) bool {
	device, err := s.DeviceType()
	return err == nil && device == want
}

func loggerOrNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
