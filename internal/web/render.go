// Package web renders the admin panel pages from embedded templates.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"github.com/healixpharm/pharmpanel/internal/models"
	"github.com/healixpharm/pharmpanel/internal/shell"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Page names accepted by Renderer.Render.
const (
	PageLanding   = "landing"
	PageLogin     = "login"
	PageSignup    = "signup"
	PageDashboard = "dashboard"
	PageSection   = "section"
	PageNotFound  = "notfound"
)

var pages = []string{PageLanding, PageLogin, PageSignup, PageDashboard, PageSection, PageNotFound}

// chrome templates shared by every page.
var chrome = []string{
	"templates/layout.tmpl",
	"templates/navbar.tmpl",
	"templates/sidebar.tmpl",
	"templates/statcard.tmpl",
}

// PageData is the root value handed to the layout.
type PageData struct {
	Title string
	Brand string
	Frame shell.Frame
	Stats []models.StatCard
}

// Renderer holds one parsed template set per page.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses all embedded templates.
func NewRenderer() (*Renderer, error) {
	base, err := template.ParseFS(templateFS, chrome...)
	if err != nil {
		return nil, fmt.Errorf("parse chrome templates: %w", err)
	}
	r := &Renderer{pages: make(map[string]*template.Template, len(pages))}
	for _, name := range pages {
		t, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := t.ParseFS(templateFS, "templates/"+name+".tmpl"); err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render writes page wrapped in the layout.
func (r *Renderer) Render(w io.Writer, page string, data PageData) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}
	return t.ExecuteTemplate(w, "layout", data)
}

// Static returns the embedded static assets rooted at static/.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
