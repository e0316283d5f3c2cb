package app

// Package app is the composition root shared by the GUI and terminal hosts.
// It builds the catalog, state containers and navigator once and hands them
// out explicitly; nothing in the core is reachable through globals.
