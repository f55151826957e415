package api

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/healixpharm/pharmpanel/internal/models"
	"github.com/healixpharm/pharmpanel/internal/session"
	"github.com/healixpharm/pharmpanel/internal/shell"
	"github.com/healixpharm/pharmpanel/internal/web"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Deps are the collaborators the HTTP layer needs.
type Deps struct {
	Brand    string
	Stats    []models.StatCard
	Renderer *web.Renderer
	Panels   *session.PanelStore
	Logger   *zap.Logger
	Tracer   trace.Tracer
}

type server struct {
	Deps
}

// page is a screen served at a fixed route.
type page struct {
	route string
	name  string
	title string
}

func pageRoutes() []page {
	out := []page{
		{shell.RouteLanding, web.PageLanding, "Welcome"},
		{shell.RouteLogin, web.PageLogin, "Login"},
		{shell.RouteSignup, web.PageSignup, "Create Account"},
		{shell.RouteDashboard, web.PageDashboard, "Dashboard"},
	}
	for _, d := range shell.Destinations() {
		if d.Route == shell.RouteDashboard {
			continue
		}
		out = append(out, page{d.Route, web.PageSection, d.Name})
	}
	return out
}

func NewRouter(deps Deps) *mux.Router {
	s := &server{Deps: deps}
	r := mux.NewRouter()
	r.Use(s.requestLogger, s.tracing)

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if _, err := fmt.Fprintln(w, "OK"); err != nil {
			s.Logger.Debug("health write failed", zap.Error(err))
		}
	}).Methods(http.MethodGet)

	for _, p := range pageRoutes() {
		r.HandleFunc(p.route, s.handlePage(p.name, p.title)).Methods(http.MethodGet)
	}

	r.HandleFunc("/panel/{intent}", s.handleIntent).Methods(http.MethodPost)
	r.HandleFunc(shell.LinkPrefix+"{slug}", s.handleDestination).Methods(http.MethodGet)
	r.HandleFunc("/api/frame", s.handleFrame).Methods(http.MethodGet)

	r.PathPrefix("/static/").Handler(
		http.StripPrefix("/static/", http.FileServer(http.FS(web.Static()))),
	).Methods(http.MethodGet)

	// mux only runs middleware on matched routes.
	r.NotFoundHandler = s.requestLogger(s.tracing(http.HandlerFunc(s.handleNotFound)))
	r.MethodNotAllowedHandler = s.requestLogger(s.tracing(http.HandlerFunc(s.handleMethodNotAllowed)))
	return r
}
