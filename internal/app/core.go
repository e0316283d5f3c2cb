package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ytget/adaptive-nav/internal/config"
	"github.com/ytget/adaptive-nav/internal/navigation"
	"github.com/ytget/adaptive-nav/internal/routing"
	"github.com/ytget/adaptive-nav/internal/state"
)

// Core bundles everything a host needs to render responsive navigation
type Core struct {
	Catalog    *navigation.Catalog
	Responsive *state.ResponsiveState
	Routes     *state.RouteState
	Selection  *state.SelectionState
	Navigator  *routing.Navigator
	Logger     *zap.Logger
}

// NewCore wires the default catalog with fresh state containers and applies
// the configured start route.
func NewCore(cfg config.File, logger *zap.Logger) (*Core, error) {
	return NewCoreWithCatalog(navigation.NewDefaultCatalog(), cfg, logger)
}

// NewCoreWithCatalog is NewCore for a caller-provided catalog
func NewCoreWithCatalog(catalog *navigation.Catalog, cfg config.File, logger *zap.Logger) (*Core, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("invalid navigation catalog: %w", err)
	}
	if err := cfg.Validate(catalog); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	routes := state.NewRouteState(logger.Named("routes"))
	navigator := routing.NewNavigator(catalog, routes, logger.Named("navigator"))
	selection := state.NewSelectionState(catalog, navigator, logger.Named("selection"))
	navigator.Follow(selection)

	core := &Core{
		Catalog:    catalog,
		Responsive: state.NewResponsiveState(logger.Named("responsive")),
		Routes:     routes,
		Selection:  selection,
		Navigator:  navigator,
		Logger:     logger,
	}

	routes.SetRoute(cfg.StartRoute)
	if entry, ok := navigator.Current(); ok {
		selection.Sync(entry)
	}

	logger.Info("core ready",
		zap.Int("entries", catalog.Len()),
		zap.String("route", routes.Current()),
	)
	return core, nil
}

// Dispose releases every subscription held by the core. It is safe to call more than once.
func (c *Core) Dispose() {
	c.Navigator.Dispose()
	c.Responsive.Dispose()
	c.Selection.Dispose()
	c.Routes.Dispose()
}
