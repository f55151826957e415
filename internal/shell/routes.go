package shell

import "strings"

const (
	RouteLanding            = "/"
	RouteLogin              = "/login"
	RouteSignup             = "/signup"
	RouteDashboard          = "/dashboard"
	RouteStockManagement    = "/stock-management"
	RoutePrescriptionQueue  = "/prescription-queue"
	RouteOrdersDeliveries   = "/orders-deliveries"
	RouteRegisteredPatients = "/registered-patients"
	RouteSettings           = "/settings"
)

// BareRoutes are rendered full-bleed, without navigation bar or side panel.
var BareRoutes = []string{RouteLogin, RouteSignup, RouteLanding}

// SuppressChrome reports whether route is a bare route. Matching is exact;
// anything else, including unknown paths, gets chrome.
func SuppressChrome(route string) bool {
	switch route {
	case RouteLogin, RouteSignup, RouteLanding:
		return true
	}
	return false
}

// Destination is a named link target.
type Destination struct {
	Name  string `json:"name"`
	Route string `json:"route"`
	// Footer destinations are rendered below the main list.
	Footer bool `json:"footer,omitempty"`
}

// Slug is the route without its leading slash.
func (d Destination) Slug() string { return strings.TrimPrefix(d.Route, "/") }

// Href is the link that closes the side panel before navigating to Route.
func (d Destination) Href() string { return LinkPrefix + d.Slug() }

var destinations = []Destination{
	{Name: "Dashboard", Route: RouteDashboard},
	{Name: "Stock Management", Route: RouteStockManagement},
	{Name: "Prescription Queue", Route: RoutePrescriptionQueue},
	{Name: "Orders and Deliveries", Route: RouteOrdersDeliveries},
	{Name: "Registered Patients", Route: RouteRegisteredPatients},
	{Name: "Settings", Route: RouteSettings, Footer: true},
}

// Destinations returns the side panel links in display order.
func Destinations() []Destination {
	out := make([]Destination, len(destinations))
	copy(out, destinations)
	return out
}

// LookupDestination finds a destination by slug.
func LookupDestination(slug string) (Destination, bool) {
	for _, d := range destinations {
		if d.Slug() == slug {
			return d, true
		}
	}
	return Destination{}, false
}
