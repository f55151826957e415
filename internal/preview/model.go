// Package preview is a terminal rendition of the admin panel, driven by the
// same shell state machine as the web server.
package preview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/healixpharm/pharmpanel/internal/models"
	"github.com/healixpharm/pharmpanel/internal/shell"
)

const (
	colorBrand = "#0c2242"
	colorText  = "#ffffff"
	colorMuted = "241"
)

var statColors = map[string]string{
	"blue":   "33",
	"red":    "196",
	"yellow": "220",
	"green":  "34",
	"teal":   "37",
}

var styles = struct {
	NavBar   lipgloss.Style
	Toggle   lipgloss.Style
	SignOut  lipgloss.Style
	Panel    lipgloss.Style
	Selected lipgloss.Style
	Item     lipgloss.Style
	Title    lipgloss.Style
	Muted    lipgloss.Style
	Card     lipgloss.Style
}{
	NavBar:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorText)).Background(lipgloss.Color(colorBrand)).Padding(0, 2),
	Toggle:   lipgloss.NewStyle().Bold(true),
	SignOut:  lipgloss.NewStyle().Foreground(lipgloss.Color(colorBrand)).Background(lipgloss.Color(colorText)).Padding(0, 1),
	Panel:    lipgloss.NewStyle().Foreground(lipgloss.Color(colorText)).Background(lipgloss.Color(colorBrand)).Padding(1, 2).Width(28),
	Selected: lipgloss.NewStyle().Bold(true).Underline(true),
	Item:     lipgloss.NewStyle(),
	Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorBrand)),
	Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color(colorMuted)),
	Card:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2).MarginRight(1),
}

// Model is the bubbletea model for the preview.
type Model struct {
	brand  string
	stats  []models.StatCard
	route  string
	panel  shell.Panel
	cursor int
	width  int
}

// New starts the preview on the landing screen with the panel closed.
func New(brand string, stats []models.StatCard) Model {
	return Model{brand: brand, stats: stats, route: shell.RouteLanding}
}

// Route is the screen currently shown.
func (m Model) Route() string { return m.route }

// Panel is the current side panel state.
func (m Model) Panel() shell.Panel { return m.panel }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg.String())
	}
	return m, nil
}

func (m Model) handleKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	}

	if shell.SuppressChrome(m.route) {
		switch key {
		case "l":
			m.navigate(shell.RouteLogin)
		case "s":
			m.navigate(shell.RouteSignup)
		case "enter":
			m.navigate(shell.RouteDashboard)
		}
		return m, nil
	}

	frame := shell.Compose(m.brand, m.route, m.panel)
	switch key {
	case "m", "tab":
		if frame.NavBar.ShowToggle() {
			m.panel = m.panel.Apply(shell.RequestOpen)
			m.cursor = 0
		}
	case "o":
		m.panel = m.panel.Apply(shell.RequestClose)
		m.navigate(frame.NavBar.SignOut.Route)
	}
	if frame.SidePanel == nil {
		return m, nil
	}

	links := shell.Destinations()
	switch key {
	case "esc", "x":
		m.panel = m.panel.Apply(shell.RequestClose)
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(links)-1 {
			m.cursor++
		}
	case "enter":
		m.panel = m.panel.Apply(shell.RequestClose)
		m.navigate(links[m.cursor].Route)
	}
	return m, nil
}

// navigate switches screen. A new screen always starts with the panel closed.
func (m *Model) navigate(route string) {
	m.route = route
	m.panel = shell.PanelClosed
	m.cursor = 0
}

func (m Model) View() string {
	frame := shell.Compose(m.brand, m.route, m.panel)
	content := m.content()
	if frame.Bare {
		return content + "\n" + styles.Muted.Render(bareHelp(m.route))
	}

	width := m.width
	if frame.SidePanel != nil {
		width -= styles.Panel.GetWidth() + 1
	}
	nav := m.navBar(frame.NavBar, width)
	body := lipgloss.JoinVertical(lipgloss.Left, nav, "", content)
	if frame.SidePanel != nil {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.sidePanel(frame.SidePanel), " ", body)
	}
	help := "m: menu  o: logout  q: quit"
	if frame.SidePanel != nil {
		help = "↑/↓: choose  enter: open  x: close  q: quit"
	}
	return body + "\n\n" + styles.Muted.Render(help)
}

func (m Model) navBar(n *shell.NavBar, width int) string {
	var left []string
	if n.ShowToggle() {
		left = append(left, styles.Toggle.Render("☰"))
	}
	left = append(left, n.Brand)
	bar := strings.Join(left, "  ") + "    " + styles.SignOut.Render(n.SignOut.Name)
	st := styles.NavBar
	if width > 0 {
		st = st.Width(width)
	}
	return st.Render(bar)
}

func (m Model) sidePanel(sp *shell.SidePanel) string {
	lines := []string{"✕", ""}
	i := 0
	item := func(d shell.Destination) string {
		st := styles.Item
		marker := "  "
		if i == m.cursor {
			st = styles.Selected
			marker = "> "
		}
		i++
		return marker + st.Render(d.Name)
	}
	for _, d := range sp.Primary {
		lines = append(lines, item(d))
	}
	lines = append(lines, "")
	for _, d := range sp.Footer {
		lines = append(lines, item(d))
	}
	return styles.Panel.Render(strings.Join(lines, "\n"))
}

func (m Model) content() string {
	switch m.route {
	case shell.RouteLanding:
		return lipgloss.JoinVertical(lipgloss.Center,
			styles.Title.Render(m.brand),
			"Smart, Connected Pharmacy Care",
			styles.Muted.Render("Automation + AI to simplify pharmacy management & patient care"),
		)
	case shell.RouteLogin:
		return styles.Title.Render("Welcome Back") + "\n" + styles.Muted.Render("Sign in to "+m.brand)
	case shell.RouteSignup:
		return styles.Title.Render("Create Account") + "\n" + styles.Muted.Render("Join "+m.brand+" today")
	case shell.RouteDashboard:
		var cards []string
		for _, s := range m.stats {
			c := styles.Card.BorderForeground(lipgloss.Color(statColors[s.Color]))
			cards = append(cards, c.Render(s.Title+"\n"+styles.Title.Render(s.Value)))
		}
		return lipgloss.JoinVertical(lipgloss.Left,
			styles.Title.Render("Dashboard Overview"),
			styles.Muted.Render("Welcome to "+m.brand+" Admin Panel"),
			"",
			lipgloss.JoinHorizontal(lipgloss.Top, cards...),
		)
	}
	for _, d := range shell.Destinations() {
		if d.Route == m.route {
			return styles.Title.Render(d.Name) + "\n" + styles.Muted.Render("Nothing to show here yet.")
		}
	}
	return styles.Title.Render("Page not found")
}

func bareHelp(route string) string {
	switch route {
	case shell.RouteLogin:
		return "enter: sign in  s: sign up  q: quit"
	case shell.RouteSignup:
		return "enter: continue  l: login  q: quit"
	}
	return "l: login  s: sign up  enter: dashboard  q: quit"
}
