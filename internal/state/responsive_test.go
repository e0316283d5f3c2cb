package state

import (
	"testing"

	"fyne.io/fyne/v2/data/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/adaptive-nav/internal/model"
	"github.com/ytget/adaptive-nav/internal/responsive"
)

func TestResponsiveState_Initial(t *testing.T) {
	s := NewResponsiveState(nil)

	assert.Equal(t, float32(0), s.Width())
	assert.False(t, s.IsInitialized())

	device, err := s.DeviceType()
	require.NoError(t, err)
	assert.Equal(t, model.DeviceMobile, device)
}

func TestResponsiveState_SetWidthNotifiesOnlyOnChange(t *testing.T) {
	s := NewResponsiveState(nil)
	listener, calls := counter()
	s.Subscribe(listener)

	s.SetWidth(800)
	s.SetWidth(800)

	assert.Equal(t, 1, *calls)
	assert.Equal(t, float32(800), s.Value())
	assert.True(t, s.IsInitialized())
}

func TestResponsiveState_ValueUpdatedBeforeNotify(t *testing.T) {
	s := NewResponsiveState(nil)
	var seen model.DeviceType
	s.Subscribe(binding.NewDataListener(func() {
		seen, _ = s.DeviceType()
	}))

	s.SetWidth(700)

	assert.Equal(t, model.DeviceTablet, seen)
}

func TestResponsiveState_DerivedValues(t *testing.T) {
	tests := []struct {
		width   float32
		columns int
		extent  float32
		bottom  bool
		rail    bool
		drawer  bool
	}{
		{375, responsive.MobileColumns, responsive.MobileMaxExtent, true, false, false},
		{768, responsive.TabletColumns, responsive.TabletMaxExtent, false, true, false},
		{1440, responsive.DesktopColumns, responsive.DesktopMaxExtent, false, false, true},
	}

	s := NewResponsiveState(nil)
	for _, test := range tests {
		s.SetWidth(test.width)

		columns, err := s.GridColumns()
		require.NoError(t, err)
		assert.Equal(t, test.columns, columns, "width %v", test.width)

		extent, err := s.MaxItemExtent()
		require.NoError(t, err)
		assert.Equal(t, test.extent, extent, "width %v", test.width)

		assert.Equal(t, test.bottom, s.ShowBottomNavigation(), "width %v", test.width)
		assert.Equal(t, test.rail, s.ShowNavigationRail(), "width %v", test.width)
		assert.Equal(t, test.drawer, s.ShowNavigationDrawer(), "width %v", test.width)
	}
}

func TestResponsiveState_NegativeWidthStoredButInvalid(t *testing.T) {
	s := NewResponsiveState(nil)
	listener, calls := counter()
	s.Subscribe(listener)

	s.SetWidth(-10)

	assert.Equal(t, 1, *calls)
	assert.Equal(t, float32(-10), s.Width())
	_, err := s.GridColumns()
	assert.ErrorIs(t, err, model.ErrInvalidArgument)
	_, err = s.Profile()
	assert.ErrorIs(t, err, model.ErrInvalidArgument)
	assert.False(t, s.ShowBottomNavigation())
	assert.False(t, s.ShowNavigationRail())
	assert.False(t, s.ShowNavigationDrawer())
}

func TestResponsiveState_ReentrantSetWidthPanics(t *testing.T) {
	s := NewResponsiveState(nil)
	s.Subscribe(binding.NewDataListener(func() {
		s.SetWidth(s.Width() + 1)
	}))

	assert.PanicsWithError(t, "ResponsiveState.SetWidth: state: mutation during notification", func() {
		s.SetWidth(500)
	})
	assert.Equal(t, float32(500), s.Width())
}

func TestResponsiveState_Dispose(t *testing.T) {
	s := NewResponsiveState(nil)
	s.Dispose()

	first, firstCalls := counter()
	second, secondCalls := counter()
	s.Subscribe(first)
	s.Subscribe(second)
	s.Unsubscribe(second)
	s.Dispose()
	s.Dispose()

	s.SetWidth(900)
	assert.Equal(t, 0, *firstCalls)
	assert.Equal(t, 0, *secondCalls)
}
