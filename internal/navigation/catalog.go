package navigation

import (
	"errors"
	"fmt"
	"strings"

	"fyne.io/fyne/v2/theme"

	"github.com/ytget/adaptive-nav/internal/model"
)

// Entry ids of the default catalog
const (
	IDHome     = "home"
	IDProfile  = "profile"
	IDSettings = "settings"
	IDAbout    = "about"
)

// Routes of the default catalog
const (
	RouteHome     = "/home"
	RouteProfile  = "/profile"
	RouteSettings = "/settings"
	RouteAbout    = "/about"
)

// Catalog is an ordered, read-only list of navigation entries
type Catalog struct {
	entries []model.NavigationEntry
}

// NewCatalog creates a catalog from entries in display order. Duplicates are
// not rejected here; use Validate or the FindDuplicate helpers to detect them.
func NewCatalog(entries ...model.NavigationEntry) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("catalog needs at least one entry: %w", model.ErrInvalidArgument)
	}
	copied := make([]model.NavigationEntry, len(entries))
	copy(copied, entries)
	return &Catalog{entries: copied}, nil
}

// NewDefaultCatalog creates the four-entry catalog the app ships with
func NewDefaultCatalog() *Catalog {
	return &Catalog{entries: []model.NavigationEntry{
		model.NewNavigationEntry(IDHome, "Home", theme.IconNameHome, RouteHome),
		model.NewNavigationEntry(IDProfile, "Profile", theme.IconNameAccount, RouteProfile),
		model.NewNavigationEntry(IDSettings, "Settings", theme.IconNameSettings, RouteSettings),
		model.NewNavigationEntry(IDAbout, "About", theme.IconNameInfo, RouteAbout),
	}}
}

// Items returns a copy of all entries in catalog order
func (c *Catalog) Items() []model.NavigationEntry {
	items := make([]model.NavigationEntry, len(c.entries))
	copy(items, c.entries)
	return items
}

// Len returns the number of entries
func (c *Catalog) Len() int {
	return len(c.entries)
}

// At returns the entry at index i
func (c *Catalog) At(i int) (model.NavigationEntry, error) {
	if i < 0 || i >= len(c.entries) {
		return model.NavigationEntry{}, fmt.Errorf("index %d not in [0, %d): %w", i, len(c.entries), model.ErrIndexOutOfRange)
	}
	return c.entries[i], nil
}

// DefaultEntry returns the first entry in catalog order
func (c *Catalog) DefaultEntry() model.NavigationEntry {
	return c.entries[0]
}

// FindByID returns the entry with exactly this id. Matching is case-sensitive
// and keys are not trimmed. A blank id is an error; a miss is not.
func (c *Catalog) FindByID(id string) (model.NavigationEntry, bool, error) {
	if err := validateKey("id", id); err != nil {
		return model.NavigationEntry{}, false, err
	}
	for _, entry := range c.entries {
		if entry.ID == id {
			return entry, true, nil
		}
	}
	return model.NavigationEntry{}, false, nil
}

// FindByRoute returns the entry with exactly this route
func (c *Catalog) FindByRoute(route string) (model.NavigationEntry, bool, error) {
	if err := validateKey("route", route); err != nil {
		return model.NavigationEntry{}, false, err
	}
	for _, entry := range c.entries {
		if entry.Route == route {
			return entry, true, nil
		}
	}
	return model.NavigationEntry{}, false, nil
}

// HasItemWithID reports whether FindByID would find an entry
func (c *Catalog) HasItemWithID(id string) bool {
	_, ok, err := c.FindByID(id)
	return err == nil && ok
}

// HasItemWithRoute reports whether FindByRoute would find an entry
func (c *Catalog) HasItemWithRoute(route string) bool {
	_, ok, err := c.FindByRoute(route)
	return err == nil && ok
}

// Contains reports whether entry is present with all fields equal
func (c *Catalog) Contains(entry model.NavigationEntry) bool {
	return c.IndexOf(entry) >= 0
}

// IndexOf returns the position of entry, or -1 when absent
func (c *Catalog) IndexOf(entry model.NavigationEntry) int {
	for i, e := range c.entries {
		if e == entry {
			return i
		}
	}
	return -1
}

// FindDuplicateIDs returns every id that appears more than once
func (c *Catalog) FindDuplicateIDs() []string {
	return duplicates(c.entries, func(e model.NavigationEntry) string { return e.ID })
}

// FindDuplicateRoutes returns every route that appears more than once
func (c *Catalog) FindDuplicateRoutes() []string {
	return duplicates(c.entries, func(e model.NavigationEntry) string { return e.Route })
}

// ValidateAll reports whether every entry is valid on its own
func (c *Catalog) ValidateAll() bool {
	for _, entry := range c.entries {
		if !entry.IsValid() {
			return false
		}
	}
	return true
}

// Validate returns an error describing every structural problem in the catalog
func (c *Catalog) Validate() error {
	var errs []error
	for i, entry := range c.entries {
		if !entry.IsValid() {
			errs = append(errs, fmt.Errorf("entry %d %q is invalid: %w", i, entry.ID, model.ErrInvalidArgument))
		}
	}
	for _, id := range c.FindDuplicateIDs() {
		errs = append(errs, fmt.Errorf("duplicate id %q: %w", id, model.ErrInvalidArgument))
	}
	for _, route := range c.FindDuplicateRoutes() {
		errs = append(errs, fmt.Errorf("duplicate route %q: %w", route, model.ErrInvalidArgument))
	}
	return errors.Join(errs...)
}

func validateKey(kind, key string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("blank %s: %w", kind, model.ErrInvalidArgument)
	}
	return nil
}

// duplicates returns keys seen more than once, in order of first occurrence
func duplicates(entries []model.NavigationEntry, key func(model.NavigationEntry) string) []string {
	counts := make(map[string]int, len(entries))
	var order []string
	for _, entry := range entries {
		k := key(entry)
		if counts[k] == 0 {
			order = append(order, k)
		}
		counts[k]++
	}

	result := []string{}
	for _, k := range order {
		if counts[k] > 1 {
			result = append(result, k)
		}
	}
	return result
}
