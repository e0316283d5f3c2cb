package app

import (
	"testing"

	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ytget/adaptive-nav/internal/config"
	"github.com/ytget/adaptive-nav/internal/model"
	"github.com/ytget/adaptive-nav/internal/navigation"
)

func TestNewCore_Defaults(t *testing.T) {
	core, err := NewCore(config.Defaults(), zap.NewNop())
	require.NoError(t, err)
	defer core.Dispose()

	assert.Equal(t, navigation.RouteHome, core.Routes.Current())
	assert.Equal(t, 0, core.Selection.SelectedIndex())
	assert.Equal(t, float32(0), core.Responsive.Width())
	_, ok := core.Routes.Previous()
	assert.False(t, ok)
}

func TestNewCore_StartRoute(t *testing.T) {
	cfg := config.Defaults()
	cfg.StartRoute = navigation.RouteAbout

	core, err := NewCore(cfg, nil)
	require.NoError(t, err)

	assert.Equal(t, navigation.RouteAbout, core.Routes.Current())
	assert.Equal(t, 3, core.Selection.SelectedIndex())
}

func TestNewCore_Rejects(t *testing.T) {
	cfg := config.Defaults()
	cfg.StartRoute = "/nowhere"
	_, err := NewCore(cfg, nil)
	assert.ErrorIs(t, err, model.ErrNotFound)

	catalog, err := navigation.NewCatalog(
		model.NewNavigationEntry("home", "Home", theme.IconNameHome, "/home"),
		model.NewNavigationEntry("home", "Home", theme.IconNameHome, "/home"),
	)
	require.NoError(t, err)
	_, err = NewCoreWithCatalog(catalog, config.Defaults(), nil)
	assert.ErrorContains(t, err, "invalid navigation catalog")
}

func TestCore_SelectionDrivesRoute(t *testing.T) {
	core, err := NewCore(config.Defaults(), nil)
	require.NoError(t, err)

	ok, err := core.Selection.SelectByID(navigation.IDProfile)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, navigation.RouteProfile, core.Routes.Current())

	require.True(t, core.Routes.GoBack())
	assert.Equal(t, 0, core.Selection.SelectedIndex())

	core.Dispose()
	core.Dispose()
}
