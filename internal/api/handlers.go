package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/mux"
	"github.com/healixpharm/pharmpanel/internal/shell"
	"github.com/healixpharm/pharmpanel/internal/utils"
	"github.com/healixpharm/pharmpanel/internal/web"
	"go.uber.org/zap"
)

// handlePage renders a fixed screen, with chrome unless its route is bare.
func (s *server) handlePage(name, title string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.render(w, r, http.StatusOK, name, title)
	}
}

func (s *server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusNotFound, web.PageNotFound, "Not Found")
}

func (s *server) handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, utils.New(http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed)))
}

func (s *server) render(w http.ResponseWriter, r *http.Request, status int, name, title string) {
	route := r.URL.Path

	// Always drain pending intents so a stale open never leaks into a
	// later screen.
	panel, err := s.Panels.Consume(r, w)
	if err != nil {
		s.Logger.Warn("panel session save failed", zap.String("route", route), zap.Error(err))
	}

	data := web.PageData{
		Title: title,
		Brand: s.Brand,
		Frame: shell.Compose(s.Brand, route, panel),
		Stats: s.Stats,
	}
	var buf bytes.Buffer
	if err := s.Renderer.Render(&buf, name, data); err != nil {
		s.Logger.Error("render failed", zap.String("page", name), zap.Error(err))
		utils.WriteError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		s.Logger.Debug("response write failed", zap.Error(err))
	}
}

// handleIntent receives the navigation bar toggle and the side panel close
// button, then sends the browser back to the screen it came from.
func (s *server) handleIntent(w http.ResponseWriter, r *http.Request) {
	intent, err := shell.ParseIntent(mux.Vars(r)["intent"])
	if err != nil {
		utils.WriteError(w, utils.NotFound("unknown panel action"))
		return
	}
	if err := r.ParseForm(); err != nil {
		utils.WriteError(w, utils.BadRequest("malformed form"))
		return
	}
	if err := s.Panels.Record(r, w, intent); err != nil {
		s.Logger.Error("panel session save failed", zap.Stringer("intent", intent), zap.Error(err))
		utils.WriteError(w, err)
		return
	}
	http.Redirect(w, r, localPath(r.PostForm.Get("next")), http.StatusSeeOther)
}

// handleDestination is hit by every side panel link: the panel closes and the
// browser moves on to the destination.
func (s *server) handleDestination(w http.ResponseWriter, r *http.Request) {
	d, ok := shell.LookupDestination(mux.Vars(r)["slug"])
	if !ok {
		utils.WriteError(w, utils.NotFound("unknown destination"))
		return
	}
	if err := s.Panels.Record(r, w, shell.RequestClose); err != nil {
		s.Logger.Error("panel session save failed", zap.String("destination", d.Route), zap.Error(err))
		utils.WriteError(w, err)
		return
	}
	http.Redirect(w, r, d.Route, http.StatusSeeOther)
}

// handleFrame returns the chrome decision for ?route=&panel= as JSON.
func (s *server) handleFrame(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	route := q.Get("route")
	if route == "" {
		route = shell.RouteDashboard
	}
	panel := shell.PanelClosed
	if raw := q.Get("panel"); raw != "" {
		p, err := shell.ParsePanel(raw)
		if err != nil {
			utils.WriteError(w, utils.BadRequest(err.Error()))
			return
		}
		panel = p
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(shell.Compose(s.Brand, route, panel)); err != nil {
		s.Logger.Debug("frame encode failed", zap.Error(err))
	}
}

// localPath keeps redirects on this site. Anything that is not a plain
// absolute path, before or after percent-decoding, goes to the dashboard.
func localPath(next string) string {
	if !plainPath(next) {
		return shell.RouteDashboard
	}
	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" || !plainPath(u.Path) {
		return shell.RouteDashboard
	}
	return u.Path
}

// plainPath rejects empty, relative, protocol-relative and backslash paths.
// Browsers read a backslash as a slash.
func plainPath(p string) bool {
	return strings.HasPrefix(p, "/") && !strings.HasPrefix(p, "//") && !strings.Contains(p, `\`)
}
