package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/healixpharm/pharmpanel/internal/shell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *PanelStore {
	hashKey := []byte("0123456789abcdef0123456789abcdef")
	blockKey := []byte("abcdef0123456789abcdef0123456789")
	return NewPanelStore(NewCookieStore(hashKey, blockKey, false), "pharmpanel")
}

// roundTrip runs fn against a request carrying cookies and returns the
// cookies the response set.
func roundTrip(t *testing.T, cookies []*http.Cookie, fn func(w http.ResponseWriter, r *http.Request)) []*http.Cookie {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	for _, c := range cookies {
		r.AddCookie(c)
	}
	w := httptest.NewRecorder()
	fn(w, r)
	return w.Result().Cookies()
}

func TestConsumeWithoutCookieIsClosed(t *testing.T) {
	ps := newTestStore()
	var got shell.Panel
	set := roundTrip(t, nil, func(w http.ResponseWriter, r *http.Request) {
		var err error
		got, err = ps.Consume(r, w)
		require.NoError(t, err)
	})
	assert.Equal(t, shell.PanelClosed, got)
	assert.Empty(t, set, "nothing pending, nothing to write")
}

func TestOpenIsSeenOnceThenClosed(t *testing.T) {
	ps := newTestStore()

	cookies := roundTrip(t, nil, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, ps.Record(r, w, shell.RequestOpen))
	})
	require.NotEmpty(t, cookies)

	var got shell.Panel
	after := roundTrip(t, cookies, func(w http.ResponseWriter, r *http.Request) {
		var err error
		got, err = ps.Consume(r, w)
		require.NoError(t, err)
	})
	assert.Equal(t, shell.PanelOpen, got)

	// Reload with the refreshed cookie: the open intent has been used up.
	roundTrip(t, after, func(w http.ResponseWriter, r *http.Request) {
		var err error
		got, err = ps.Consume(r, w)
		require.NoError(t, err)
	})
	assert.Equal(t, shell.PanelClosed, got)
}

func TestCloseCancelsPendingOpen(t *testing.T) {
	ps := newTestStore()

	cookies := roundTrip(t, nil, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, ps.Record(r, w, shell.RequestOpen))
	})
	cookies = roundTrip(t, cookies, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, ps.Record(r, w, shell.RequestClose))
	})

	var got shell.Panel
	roundTrip(t, cookies, func(w http.ResponseWriter, r *http.Request) {
		var err error
		got, err = ps.Consume(r, w)
		require.NoError(t, err)
	})
	assert.Equal(t, shell.PanelClosed, got)
}

func TestRepeatedOpenDoesNotAccumulate(t *testing.T) {
	ps := newTestStore()

	var cookies []*http.Cookie
	for i := 0; i < 3; i++ {
		cookies = roundTrip(t, cookies, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, ps.Record(r, w, shell.RequestOpen))
		})
	}
	roundTrip(t, cookies, func(w http.ResponseWriter, r *http.Request) {
		s := ps.get(r)
		assert.Len(t, s.Flashes(intentKey), 1)
	})
}

func TestTamperedCookieFallsBackToClosed(t *testing.T) {
	ps := newTestStore()
	bad := []*http.Cookie{{Name: "pharmpanel", Value: "not-a-valid-cookie"}}

	var got shell.Panel
	roundTrip(t, bad, func(w http.ResponseWriter, r *http.Request) {
		var err error
		got, err = ps.Consume(r, w)
		require.NoError(t, err)
	})
	assert.Equal(t, shell.PanelClosed, got)
}
