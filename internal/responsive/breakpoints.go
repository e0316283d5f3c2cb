package responsive

import (
	"fmt"
	"math"

	"github.com/ytget/adaptive-nav/internal/model"
)

// Width breakpoints. A width below MobileBreakpoint is mobile, a width below
// TabletBreakpoint is tablet, anything else is desktop.
const (
	MobileBreakpoint float32 = 600
	TabletBreakpoint float32 = 800
)

// Grid columns per device class
const (
	MobileColumns  = 2
	TabletColumns  = 4
	DesktopColumns = 6
)

// Max cross-axis extent of a grid item per device class
const (
	MobileMaxExtent  float32 = 200
	TabletMaxExtent  float32 = 180
	DesktopMaxExtent float32 = 160
)

// Profile bundles every value derived from one width
type Profile struct {
	Width     float32
	Device    model.DeviceType
	Columns   int
	MaxExtent float32
}

// Classify returns the full layout profile for width
func Classify(width float32) (Profile, error) {
	device, err := DeviceTypeOf(width)
	if err != nil {
		return Profile{}, err
	}
	return Profile{
		Width:     width,
		Device:    device,
		Columns:   columnsFor(device),
		MaxExtent: extentFor(device),
	}, nil
}

// DeviceTypeOf returns the device class for width
func DeviceTypeOf(width float32) (model.DeviceType, error) {
	if err := validateWidth(width); err != nil {
		return "", err
	}
	switch {
	case width < MobileBreakpoint:
		return model.DeviceMobile, nil
	case width < TabletBreakpoint:
		return model.DeviceTablet, nil
	default:
		return model.DeviceDesktop, nil
	}
}

// DeviceTag returns the device class tag ("mobile", "tablet" or "desktop") for width
func DeviceTag(width float32) (string, error) {
	device, err := DeviceTypeOf(width)
	if err != nil {
		return "", err
	}
	return device.String(), nil
}

// IsMobile reports whether width is below MobileBreakpoint
func IsMobile(width float32) (bool, error) {
	return is(width, model.DeviceMobile)
}

// IsTablet reports whether width is in [MobileBreakpoint, TabletBreakpoint)
func IsTablet(width float32) (bool, error) {
	return is(width, model.DeviceTablet)
}

// IsDesktop reports whether width is at least TabletBreakpoint
func IsDesktop(width float32) (bool, error) {
	return is(width, model.DeviceDesktop)
}

// GridColumns returns the number of grid columns for width
func GridColumns(width float32) (int, error) {
	device, err := DeviceTypeOf(width)
	if err != nil {
		return 0, err
	}
	return columnsFor(device), nil
}

// MaxCrossAxisExtent returns the grid item extent for width. The value only
// depends on the device class, not on the width itself.
func MaxCrossAxisExtent(width float32) (float32, error) {
	device, err := DeviceTypeOf(width)
	if err != nil {
		return 0, err
	}
	return extentFor(device), nil
}

func is(width float32, want model.DeviceType) (bool, error) {
	device, err := DeviceTypeOf(width)
	if err != nil {
		return false, err
	}
	return device == want, nil
}

func validateWidth(width float32) error {
	if width < 0 || math.IsNaN(float64(width)) {
		return fmt.Errorf("width %v: %w", width, model.ErrInvalidArgument)
	}
	return nil
}

func columnsFor(device model.DeviceType) int {
	switch device {
	case model.DeviceMobile:
		return MobileColumns
	case model.DeviceTablet:
		return TabletColumns
	default:
		return DesktopColumns
	}
}

func extentFor(device model.DeviceType) float32 {
	switch device {
	case model.DeviceMobile:
		return MobileMaxExtent
	case model.DeviceTablet:
		return TabletMaxExtent
	default:
		return DesktopMaxExtent
	}
}
