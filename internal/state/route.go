package state

import (
	"fyne.io/fyne/v2/data/binding"
	"go.uber.org/zap"

	"github.com/ytget/adaptive-nav/internal/navigation"
)

// DefaultRoute is the route a fresh or reset RouteState points at
const DefaultRoute = navigation.RouteHome

// RouteState holds the current content route and one level of back history
type RouteState struct {
	current     string
	previous    string
	hasPrevious bool
	listeners   listeners
	logger      *zap.Logger
}

var _ Observable[string] = (*RouteState)(nil)

// NewRouteState creates a route state pointing at DefaultRoute
func NewRouteState(logger *zap.Logger) *RouteState {
	return &RouteState{
		current:   DefaultRoute,
		listeners: listeners{owner: "RouteState"},
		logger:    loggerOrNop(logger),
	}
}

// Current returns the current route
func (s *RouteState) Current() string {
	return s.current
}

// Value returns the current route
func (s *RouteState) Value() string {
	return s.current
}

// Previous returns the remembered route, if any
func (s *RouteState) Previous() (string, bool) {
	return s.previous, s.hasPrevious
}

// CanGoBack reports whether GoBack would change the route
func (s *RouteState) CanGoBack() bool {
	return s.hasPrevious && s.previous != s.current
}

// SetRoute switches to route without touching history
func (s *RouteState) SetRoute(route string) {
	s.listeners.guard("SetRoute")
	if route == s.current {
		return
	}
	s.switchTo(route)
}

// SetRouteWithHistory remembers the current route, then switches to route.
// History holds a single slot; an older remembered route is overwritten.
func (s *RouteState) SetRouteWithHistory(route string) {
	s.listeners.guard("SetRouteWithHistory")
	if route == s.current {
		return
	}
	s.previous = s.current
	s.hasPrevious = true
	s.switchTo(route)
}

// GoBack returns to the remembered route and forgets it. It returns false and
// leaves the state untouched when nothing usable is remembered.
func (s *RouteState) GoBack() bool {
	s.listeners.guard("GoBack")
	if !s.CanGoBack() {
		return false
	}
	target := s.previous
	s.previous = ""
	s.hasPrevious = false
	s.switchTo(target)
	return true
}

// Reset points the state back at DefaultRoute and clears history
func (s *RouteState) Reset() {
	s.listeners.guard("Reset")
	s.previous = ""
	s.hasPrevious = false
	if s.current == DefaultRoute {
		return
	}
	s.switchTo(DefaultRoute)
}

// Subscribe registers listener for route changes
func (s *RouteState) Subscribe(listener binding.DataListener) {
	s.listeners.add(listener)
}

// Unsubscribe removes listener; unknown listeners are ignored
func (s *RouteState) Unsubscribe(listener binding.DataListener) {
	s.listeners.remove(listener)
}

// Dispose drops all listeners. It is safe to call more than once.
func (s *RouteState) Dispose() {
	s.listeners.clear()
}

func (s *RouteState) switchTo(route string) {
	from := s.current
	s.current = route
	s.logger.Debug("route changed", zap.String("from", from), zap.String("to", route))
	s.listeners.notify()
}
