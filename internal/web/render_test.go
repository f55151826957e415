package web

import (
	"bytes"
	"io/fs"
	"strings"
	"testing"

	"github.com/healixpharm/pharmpanel/internal/models"
	"github.com/healixpharm/pharmpanel/internal/shell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, page string, frame shell.Frame) string {
	t.Helper()
	r, err := NewRenderer()
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, page, PageData{
		Title: "Test",
		Brand: "HealiXPharm",
		Frame: frame,
		Stats: models.DefaultStats(),
	}))
	return buf.String()
}

func TestBarePageHasNoChrome(t *testing.T) {
	html := render(t, PageLanding, shell.Compose("HealiXPharm", shell.RouteLanding, shell.PanelClosed))
	assert.NotContains(t, html, `data-shell="navbar"`)
	assert.NotContains(t, html, `data-shell="sidebar"`)
	assert.Contains(t, html, "Smart, Connected Pharmacy Care")
	assert.Contains(t, html, `href="/signup"`)
}

func TestDashboardClosed(t *testing.T) {
	html := render(t, PageDashboard, shell.Compose("HealiXPharm", shell.RouteDashboard, shell.PanelClosed))
	assert.Contains(t, html, `data-shell="navbar"`)
	assert.Contains(t, html, `data-shell="toggle"`)
	assert.Contains(t, html, `data-shell="signout"`)
	assert.Contains(t, html, `href="/login"`)
	assert.NotContains(t, html, `data-shell="sidebar"`)
	for _, s := range models.DefaultStats() {
		assert.Contains(t, html, s.Title)
		assert.Contains(t, html, s.Value)
		assert.Contains(t, html, s.ColorClass())
	}
}

func TestDashboardOpen(t *testing.T) {
	html := render(t, PageDashboard, shell.Compose("HealiXPharm", shell.RouteDashboard, shell.PanelOpen))
	assert.Contains(t, html, `data-shell="sidebar"`)
	assert.Contains(t, html, `data-shell="close"`)
	assert.NotContains(t, html, `data-shell="toggle"`)
	assert.Contains(t, html, `href="/go/stock-management"`)

	// Settings sits after the main list.
	assert.Less(t, strings.Index(html, "Registered Patients</a>"), strings.Index(html, "Settings</a>"))
}

func TestRenderUnknownPage(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)
	assert.Error(t, r.Render(&bytes.Buffer{}, "billing", PageData{}))
}

func TestStaticHasLogo(t *testing.T) {
	_, err := fs.Stat(Static(), "logo.svg")
	assert.NoError(t, err)
}
