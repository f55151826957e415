package shell

const (
	// OpenAction receives the navigation bar toggle.
	OpenAction = "/panel/open"
	// CloseAction receives the side panel close button.
	CloseAction = "/panel/close"
	// LinkPrefix prefixes side panel links; see Destination.Href.
	LinkPrefix = "/go/"
)

// SignOut is the fixed right-hand link of the navigation bar.
var SignOut = Destination{Name: "Logout", Route: RouteLogin}

// NavBar is everything the navigation bar needs to render.
type NavBar struct {
	Brand      string      `json:"brand"`
	Route      string      `json:"route"`
	PanelOpen  bool        `json:"panel_open"`
	OpenAction string      `json:"open_action"`
	SignOut    Destination `json:"sign_out"`
}

// ShowToggle reports whether the open-panel button is rendered. It never is
// while the panel is open, so there is only ever one way to reach the panel.
func (n NavBar) ShowToggle() bool { return !n.PanelOpen }

// SidePanel is everything the side panel needs to render.
type SidePanel struct {
	Route       string        `json:"route"`
	CloseAction string        `json:"close_action"`
	Primary     []Destination `json:"primary"`
	Footer      []Destination `json:"footer"`
}

// Frame is the chrome decision for one render.
type Frame struct {
	Route     string     `json:"route"`
	Bare      bool       `json:"bare"`
	Panel     Panel      `json:"panel"`
	NavBar    *NavBar    `json:"nav_bar,omitempty"`
	SidePanel *SidePanel `json:"side_panel,omitempty"`
}

// Compose decides the chrome for route given the current panel state.
func Compose(brand, route string, panel Panel) Frame {
	if SuppressChrome(route) {
		return Frame{Route: route, Bare: true, Panel: PanelClosed}
	}
	f := Frame{
		Route: route,
		Panel: panel,
		NavBar: &NavBar{
			Brand:      brand,
			Route:      route,
			PanelOpen:  panel.IsOpen(),
			OpenAction: OpenAction,
			SignOut:    SignOut,
		},
	}
	if panel.IsOpen() {
		f.SidePanel = newSidePanel(route)
	}
	return f
}

func newSidePanel(route string) *SidePanel {
	sp := &SidePanel{Route: route, CloseAction: CloseAction}
	for _, d := range destinations {
		if d.Footer {
			sp.Footer = append(sp.Footer, d)
		} else {
			sp.Primary = append(sp.Primary, d)
		}
	}
	return sp
}
