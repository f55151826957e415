// Package session carries side panel intents between requests in a signed,
// encrypted cookie.
package session

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/healixpharm/pharmpanel/internal/shell"
)

const intentKey = "panel-intent"

// NewCookieStore returns a cookie store whose cookies last for the browser
// session only.
func NewCookieStore(hashKey, blockKey []byte, secure bool) *sessions.CookieStore {
	cs := sessions.NewCookieStore(hashKey, blockKey)
	cs.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return cs
}

// PanelStore records intents against the panel and hands them to the next
// page render exactly once. A reload after that render sees a closed panel.
type PanelStore struct {
	store sessions.Store
	name  string
}

// NewPanelStore creates a PanelStore using the named cookie.
func NewPanelStore(store sessions.Store, name string) *PanelStore {
	return &PanelStore{store: store, name: name}
}

// Record applies intent on top of whatever is still pending and keeps the
// result for the next render. Only an open panel needs remembering.
func (p *PanelStore) Record(r *http.Request, w http.ResponseWriter, intent shell.Intent) error {
	s := p.get(r)
	panel := shell.Replay(pending(s)...).Apply(intent)
	if panel.IsOpen() {
		s.AddFlash(shell.RequestOpen.String(), intentKey)
	}
	return p.store.Save(r, w, s)
}

// Consume returns the panel state for this render and clears anything
// pending. Must be called before the response body is written.
func (p *PanelStore) Consume(r *http.Request, w http.ResponseWriter) (shell.Panel, error) {
	s := p.get(r)
	intents := pending(s)
	if len(intents) == 0 {
		return shell.PanelClosed, nil
	}
	if err := p.store.Save(r, w, s); err != nil {
		return shell.PanelClosed, err
	}
	return shell.Replay(intents...), nil
}

// get never fails: a cookie that cannot be decoded (rotated secret,
// tampering) yields the fresh session the store hands back with the error.
func (p *PanelStore) get(r *http.Request) *sessions.Session {
	s, _ := p.store.Get(r, p.name)
	if s == nil {
		s = sessions.NewSession(p.store, p.name)
		s.Options = &sessions.Options{Path: "/", HttpOnly: true}
		s.IsNew = true
	}
	return s
}

// pending drains the recorded intents, skipping anything unrecognised.
func pending(s *sessions.Session) []shell.Intent {
	var out []shell.Intent
	for _, f := range s.Flashes(intentKey) {
		name, ok := f.(string)
		if !ok {
			continue
		}
		if intent, err := shell.ParseIntent(name); err == nil {
			out = append(out, intent)
		}
	}
	return out
}
