package responsive

// Package responsive classifies a screen width into a device class and the
// layout values that depend on it. All functions are pure and reject negative
// widths with model.ErrInvalidArgument.
