package shell

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuppressChrome(t *testing.T) {
	for _, route := range BareRoutes {
		assert.True(t, SuppressChrome(route), route)
	}
	for _, route := range []string{
		RouteDashboard, RouteStockManagement, RouteSettings,
		"/unknown", "/login/", "/Signup", "",
	} {
		assert.False(t, SuppressChrome(route), route)
	}
}

func TestPanelTransitions(t *testing.T) {
	tests := []struct {
		from   Panel
		intent Intent
		want   Panel
	}{
		{PanelClosed, RequestOpen, PanelOpen},
		{PanelOpen, RequestClose, PanelClosed},
		{PanelOpen, RequestOpen, PanelOpen},
		{PanelClosed, RequestClose, PanelClosed},
		{PanelOpen, Intent(42), PanelOpen},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.Apply(tt.intent), "%s + %s", tt.from, tt.intent)
	}
}

func TestReplay(t *testing.T) {
	assert.Equal(t, PanelClosed, Replay())
	assert.Equal(t, PanelOpen, Replay(RequestOpen))
	assert.Equal(t, PanelClosed, Replay(RequestOpen, RequestClose))
	assert.Equal(t, PanelOpen, Replay(RequestClose, RequestOpen, RequestOpen))
}

func TestParseIntent(t *testing.T) {
	i, err := ParseIntent("open")
	require.NoError(t, err)
	assert.Equal(t, RequestOpen, i)

	i, err = ParseIntent("close")
	require.NoError(t, err)
	assert.Equal(t, RequestClose, i)

	_, err = ParseIntent("toggle")
	assert.ErrorIs(t, err, ErrUnknownIntent)
}

func TestParsePanel(t *testing.T) {
	p, err := ParsePanel("open")
	require.NoError(t, err)
	assert.Equal(t, PanelOpen, p)

	_, err = ParsePanel("half")
	assert.ErrorIs(t, err, ErrUnknownPanel)
}

func TestComposeBareRoute(t *testing.T) {
	for _, route := range BareRoutes {
		f := Compose("HealiXPharm", route, PanelOpen)
		assert.True(t, f.Bare, route)
		assert.Nil(t, f.NavBar, route)
		assert.Nil(t, f.SidePanel, route)
	}
}

func TestComposeDashboardInitial(t *testing.T) {
	f := Compose("HealiXPharm", RouteDashboard, PanelClosed)
	require.NotNil(t, f.NavBar)
	assert.False(t, f.Bare)
	assert.Nil(t, f.SidePanel)
	assert.True(t, f.NavBar.ShowToggle())
	assert.Equal(t, RouteLogin, f.NavBar.SignOut.Route)
	assert.Equal(t, "HealiXPharm", f.NavBar.Brand)
}

func TestComposeToggleHidesWhenOpen(t *testing.T) {
	p := PanelClosed.Apply(RequestOpen)
	f := Compose("HealiXPharm", RouteDashboard, p)
	require.NotNil(t, f.SidePanel)
	require.NotNil(t, f.NavBar)
	assert.False(t, f.NavBar.ShowToggle())
	assert.Equal(t, CloseAction, f.SidePanel.CloseAction)
}

func TestToggleVisibleIffClosed(t *testing.T) {
	for _, p := range []Panel{PanelClosed, PanelOpen} {
		f := Compose("b", "/anything", p)
		assert.Equal(t, !p.IsOpen(), f.NavBar.ShowToggle())
		assert.Equal(t, p.IsOpen(), f.SidePanel != nil)
	}
}

func TestSidePanelOrder(t *testing.T) {
	f := Compose("b", RouteDashboard, PanelOpen)
	var names []string
	for _, d := range f.SidePanel.Primary {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{
		"Dashboard",
		"Stock Management",
		"Prescription Queue",
		"Orders and Deliveries",
		"Registered Patients",
	}, names)
	require.Len(t, f.SidePanel.Footer, 1)
	assert.Equal(t, RouteSettings, f.SidePanel.Footer[0].Route)
}

func TestStockManagementLinkCloses(t *testing.T) {
	d, ok := LookupDestination("stock-management")
	require.True(t, ok)
	assert.Equal(t, "/go/stock-management", d.Href())
	assert.Equal(t, RouteStockManagement, d.Route)
	assert.Equal(t, PanelClosed, PanelOpen.Apply(RequestClose))

	_, ok = LookupDestination("pharmacy")
	assert.False(t, ok)
}

func TestDestinationsIsCopy(t *testing.T) {
	ds := Destinations()
	ds[0].Name = "changed"
	assert.Equal(t, "Dashboard", Destinations()[0].Name)
}

func TestFrameJSON(t *testing.T) {
	b, err := json.Marshal(Compose("b", RouteDashboard, PanelOpen))
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, "open", got["panel"])
	assert.Contains(t, got, "side_panel")

	var f Frame
	require.NoError(t, json.Unmarshal(b, &f))
	assert.Equal(t, PanelOpen, f.Panel)
}
