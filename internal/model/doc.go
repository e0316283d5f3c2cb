package model

// Package model defines domain values shared across the app: navigation
// entries, device classes, and the sentinel errors the core returns. Values
// are plain structs designed to be compared with == and copied freely.
