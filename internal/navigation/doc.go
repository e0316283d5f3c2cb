package navigation

// Package navigation holds the catalog of navigation destinations. A Catalog
// is built once at startup and passed explicitly to whoever needs it; it is
// never mutated after construction.
