package model

// DeviceType is the device class derived from a screen width
type DeviceType string

const (
	// DeviceMobile is used for narrow layouts with bottom navigation
	DeviceMobile DeviceType = "mobile"

	// DeviceTablet is used for medium layouts with a navigation rail
	DeviceTablet DeviceType = "tablet"

	// DeviceDesktop is used for wide layouts with a permanent drawer
	DeviceDesktop DeviceType = "desktop"
)

// String returns the string representation of DeviceType
func (dt DeviceType) String() string {
	return string(dt)
}
