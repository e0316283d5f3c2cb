package routing

import (
	"fmt"

	"fyne.io/fyne/v2/data/binding"
	"go.uber.org/zap"

	"github.com/ytget/adaptive-nav/internal/model"
	"github.com/ytget/adaptive-nav/internal/navigation"
	"github.com/ytget/adaptive-nav/internal/state"
)

// Navigator maps selected entries onto the route state
type Navigator struct {
	catalog  *navigation.Catalog
	routes   *state.RouteState
	logger   *zap.Logger
	follower binding.DataListener
}

var _ state.Navigator = (*Navigator)(nil)

// NewNavigator creates a navigator writing into routes
func NewNavigator(catalog *navigation.Catalog, routes *state.RouteState, logger *zap.Logger) *Navigator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Navigator{
		catalog: catalog,
		routes:  routes,
		logger:  logger,
	}
}

// Navigate switches the route to entry's route, recording history. Entries
// that are invalid or not part of the catalog fall back to the default entry
// and are reported as model.ErrInvalidArgument.
func (n *Navigator) Navigate(entry model.NavigationEntry) error {
	if !entry.IsValid() || !n.catalog.Contains(entry) {
		fallback := n.catalog.DefaultEntry()
		n.logger.Warn("rejected navigation entry, falling back",
			zap.Stringer("entry", entry),
			zap.Stringer("fallback", fallback),
		)
		n.routes.SetRouteWithHistory(fallback.Route)
		return fmt.Errorf("navigate to %q: %w", entry.ID, model.ErrInvalidArgument)
	}

	n.routes.SetRouteWithHistory(entry.Route)
	return nil
}

// Current returns the catalog entry matching the current route, if any
func (n *Navigator) Current() (model.NavigationEntry, bool) {
	entry, ok, err := n.catalog.FindByRoute(n.routes.Current())
	if err != nil {
		return model.NavigationEntry{}, false
	}
	return entry, ok
}

// Follow keeps selection in step with route changes that did not start from
// a selection, such as GoBack or Reset. A route without a catalog entry
// clears the selection. Calling Follow again replaces the previous
// subscription.
func (n *Navigator) Follow(selection *state.SelectionState) {
	n.Dispose()
	n.follower = binding.NewDataListener(func() {
		selection.Align(n.Current())
	})
	n.routes.Subscribe(n.follower)
}

// Dispose stops following route changes. It is safe to call more than once.
func (n *Navigator) Dispose() {
	if n.follower == nil {
		return
	}
	n.routes.Unsubscribe(n.follower)
	n.follower = nil
}
