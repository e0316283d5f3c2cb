package state

import (
	"fyne.io/fyne/v2/data/binding"
	"go.uber.org/zap"

	"github.com/ytget/adaptive-nav/internal/model"
	"github.com/ytget/adaptive-nav/internal/navigation"
)

// SelectionState holds the navigation entry the user picked
type SelectionState struct {
	catalog      *navigation.Catalog
	navigator    Navigator
	selected     model.NavigationEntry
	hasSelection bool
	pending      *alignment
	listeners    listeners
	logger       *zap.Logger
}

// alignment is a selection change requested by another container
type alignment struct {
	entry model.NavigationEntry
	found bool
}

var _ Observable[*model.NavigationEntry] = (*SelectionState)(nil)

// NewSelectionState creates an empty selection over catalog. navigator may be
// nil, in which case selection only updates state.
func NewSelectionState(catalog *navigation.Catalog, navigator Navigator, logger *zap.Logger) *SelectionState {
	return &SelectionState{
		catalog:   catalog,
		navigator: navigator,
		listeners: listeners{owner: "SelectionState"},
		logger:    loggerOrNop(logger),
	}
}

// Selected returns the selected entry and whether there is one
func (s *SelectionState) Selected() (model.NavigationEntry, bool) {
	return s.selected, s.hasSelection
}

// Value returns a copy of the selected entry, or nil when nothing is selected
func (s *SelectionState) Value() *model.NavigationEntry {
	if !s.hasSelection {
		return nil
	}
	entry := s.selected
	return &entry
}

// SelectedIndex returns the catalog position of the selection, or -1
func (s *SelectionState) SelectedIndex() int {
	if !s.hasSelection {
		return -1
	}
	return s.catalog.IndexOf(s.selected)
}

// Select stores entry, asks the navigator to show it, then notifies
// listeners. Selecting the current entry again does nothing. The navigator
// error is returned but the selection is kept.
func (s *SelectionState) Select(entry model.NavigationEntry) error {
	s.listeners.guard("Select")
	if !s.put(entry) {
		return nil
	}

	var err error
	if s.navigator != nil {
		err = s.navigator.Navigate(entry)
		if err != nil {
			s.logger.Warn("navigation failed", zap.Stringer("entry", entry), zap.Error(err))
		}
	}

	s.notify()
	return err
}

// SelectByIndex selects the catalog entry at index i
func (s *SelectionState) SelectByIndex(i int) error {
	entry, err := s.catalog.At(i)
	if err != nil {
		return err
	}
	return s.Select(entry)
}

// SelectByID selects the catalog entry with id. It returns false without
// touching the selection when no entry matches.
func (s *SelectionState) SelectByID(id string) (bool, error) {
	entry, ok, err := s.catalog.FindByID(id)
	if err != nil || !ok {
		return false, err
	}
	return true, s.Select(entry)
}

// Sync aligns the selection with a route change made elsewhere. It notifies
// on change but never calls the navigator.
func (s *SelectionState) Sync(entry model.NavigationEntry) {
	s.listeners.guard("Sync")
	if s.put(entry) {
		s.notify()
	}
}

// Clear removes the selection
func (s *SelectionState) Clear() {
	s.listeners.guard("Clear")
	if s.drop() {
		s.notify()
	}
}

// Align is Sync (found) or Clear (!found) for changes driven by another
// container. While selection listeners are running the request is held and
// applied once they return; the latest request wins.
func (s *SelectionState) Align(entry model.NavigationEntry, found bool) {
	request := alignment{entry: entry, found: found}
	if s.listeners.notifying {
		s.pending = &request
		return
	}
	if s.apply(request) {
		s.notify()
	}
}

// Subscribe registers listener for selection changes
func (s *SelectionState) Subscribe(listener binding.DataListener) {
	s.listeners.add(listener)
}

// Unsubscribe removes listener; unknown listeners are ignored
func (s *SelectionState) Unsubscribe(listener binding.DataListener) {
	s.listeners.remove(listener)
}

// Dispose drops all listeners. It is safe to call more than once.
func (s *SelectionState) Dispose() {
	s.listeners.clear()
	s.pending = nil
}

// notify runs the listeners, then any alignment they caused
func (s *SelectionState) notify() {
	s.listeners.notify()
	for s.pending != nil {
		request := *s.pending
		s.pending = nil
		if s.apply(request) {
			s.listeners.notify()
		}
	}
}

func (s *SelectionState) apply(request alignment) bool {
	if !request.found {
		return s.drop()
	}
	return s.put(request.entry)
}

// put stores entry and reports whether the selection changed
func (s *SelectionState) put(entry model.NavigationEntry) bool {
	if s.hasSelection && s.selected == entry {
		return false
	}
	s.store(entry)
	return true
}

func (s *SelectionState) drop() bool {
	if !s.hasSelection {
		return false
	}
	s.selected = model.NavigationEntry{}
	s.hasSelection = false
	s.logger.Debug("selection cleared")
	return true
}

func (s *SelectionState) store(entry model.NavigationEntry) {
	s.selected = entry
	s.hasSelection = true
	s.logger.Debug("selection changed", zap.Stringer("entry", entry))
}
