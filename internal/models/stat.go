package models

// StatCard is one tile on the dashboard. Values are display strings and are
// rendered verbatim.
type StatCard struct {
	Title string `mapstructure:"title" json:"title"`
	Value string `mapstructure:"value" json:"value"`
	Color string `mapstructure:"color" json:"color"`
}

// palette maps the named colors a stat may use to styling classes.
var palette = map[string]string{
	"blue":   "bg-blue-500",
	"red":    "bg-red-500",
	"yellow": "bg-yellow-500",
	"green":  "bg-green-500",
	"teal":   "bg-teal-500",
}

// ColorClass returns the styling class for the card's accent.
func (s StatCard) ColorClass() string {
	if c, ok := palette[s.Color]; ok {
		return c
	}
	return "bg-gray-400"
}

// ValidColor reports whether name is one of the named stat colors.
func ValidColor(name string) bool {
	_, ok := palette[name]
	return ok
}

// DefaultStats are the placeholder dashboard figures.
func DefaultStats() []StatCard {
	return []StatCard{
		{Title: "Total Medicines", Value: "1,240", Color: "blue"},
		{Title: "Low Stock Items", Value: "18", Color: "red"},
		{Title: "Pending Orders", Value: "32", Color: "yellow"},
		{Title: "Registered Patients", Value: "542", Color: "green"},
	}
}
