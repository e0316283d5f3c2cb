package model

import "errors"

// Sentinel errors returned (wrapped) by the classifier, catalog and state containers.
var (
	// ErrInvalidArgument is returned for negative widths, blank lookup keys and invalid entries
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIndexOutOfRange is returned when selecting outside the catalog bounds
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNotFound is returned by callers that need a hard error for a missing entry
	ErrNotFound = errors.New("not found")
)
