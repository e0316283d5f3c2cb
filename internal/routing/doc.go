package routing

// Package routing implements the navigator the selection state calls when
// the user picks an entry. It turns entries into routes and keeps the
// selection aligned with route changes made by back navigation or reset.
