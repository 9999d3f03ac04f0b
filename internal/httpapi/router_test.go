package httpapi

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"requestdesk/internal/desk"
	"requestdesk/internal/metrics"
	"requestdesk/internal/session"
	"requestdesk/pkg/config"
	"requestdesk/pkg/logging"
)

type client struct {
	t      *testing.T
	h      http.Handler
	cookie *http.Cookie
}

func newClient(t *testing.T) (*client, *metrics.Metrics) {
	t.Helper()
	m := metrics.New()
	st, err := session.NewStore(session.StoreConfig{TTL: time.Hour, MaxSessions: 100}, func() *desk.Desk {
		return desk.New(desk.WithObserver(m))
	})
	require.NoError(t, err)
	t.Cleanup(st.Close)
	mgr, err := session.NewManager(st, session.ManagerConfig{Secret: []byte("test"), Created: m.SessionCreated})
	require.NoError(t, err)

	cfg := config.Config{
		Metrics: config.MetricsConfig{Enabled: true, Path: "/metrics"},
		HTMXURL: "https://unpkg.com/htmx.org@1.9.12",
	}
	h := NewRouter(Dependencies{
		Cfg:      cfg,
		Logger:   logging.New("error", "text", nil),
		Sessions: mgr,
		Metrics:  m,
	})
	return &client{t: t, h: h}, m
}

func (c *client) do(method, path string, form url.Values, htmx bool) *httptest.ResponseRecorder {
	c.t.Helper()
	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}
	rec := httptest.NewRecorder()
	c.h.ServeHTTP(rec, req)
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == session.DefaultCookieName {
			c.cookie = ck
		}
	}
	return rec
}

func (c *client) page() string {
	c.t.Helper()
	rec := c.do(http.MethodGet, "/", nil, false)
	require.Equal(c.t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func (c *client) post(path string, form url.Values) *httptest.ResponseRecorder {
	c.t.Helper()
	if form == nil {
		form = url.Values{}
	}
	return c.do(http.MethodPost, path, form, false)
}

func TestRouter_Healthz(t *testing.T) {
	c, _ := newClient(t)
	rec := c.do(http.MethodGet, "/healthz", nil, false)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestRouter_TravelFlow(t *testing.T) {
	c, _ := newClient(t)

	out := c.page()
	require.NotNil(t, c.cookie)
	assert.Contains(t, out, "Gestion des Demandes")

	rec := c.post("/requests/travel/new", nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.Contains(t, c.page(), "Demande de Voyage Professionnel")

	rec = c.post("/forms/travel/submit", url.Values{"requester": {"@Pierre"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	out = c.page()
	assert.Contains(t, out, "Demande de Voyage Professionnel")
	assert.Contains(t, out, "Champs requis manquants")
	assert.Contains(t, out, `value="@Pierre"`)

	rec = c.do(http.MethodPost, "/forms/travel/fields", url.Values{
		"requester":   {"@Pierre"},
		"destination": {"Berlin"},
		"startDate":   {"2025-01-01"},
		"endDate":     {"2025-01-03"},
	}, true)
	require.Equal(t, http.StatusOK, rec.Code)
	frag := rec.Body.String()
	assert.True(t, strings.HasPrefix(frag, `<form id="request-form"`))
	assert.Contains(t, frag, "2 jour(s)")

	rec = c.post("/forms/travel/submit", url.Values{
		"requester":   {"@Pierre"},
		"destination": {"Berlin"},
		"purpose":     {"Salon"},
		"startDate":   {"2025-01-01"},
		"endDate":     {"2025-01-03"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	out = c.page()
	assert.Contains(t, out, "Gestion des Demandes")
	assert.Contains(t, out, "Votre demande de voyage professionnel a été soumise avec succès.")

	// The toast is shown once.
	assert.NotContains(t, c.page(), `id="toast"`)

	metricsRec := c.do(http.MethodGet, "/metrics", nil, false)
	require.Equal(t, http.StatusOK, metricsRec.Code)
	body := metricsRec.Body.String()
	assert.Contains(t, body, `requestdesk_form_submissions_total{category="travel",outcome="invalid"} 1`)
	assert.Contains(t, body, `requestdesk_form_submissions_total{category="travel",outcome="submitted"} 1`)
	assert.Contains(t, body, "requestdesk_sessions_created_total 1")
}

func TestRouter_SaveKeepsForm(t *testing.T) {
	c, _ := newClient(t)
	c.page()
	c.post("/requests/purchase/new", nil)

	rec := c.post("/forms/purchase/save", url.Values{"item": {"Clavier"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	out := c.page()
	assert.Contains(t, out, "Brouillon sauvegardé")
	assert.Contains(t, out, `value="Clavier"`)

	c.post("/back", nil)
	c.post("/requests/purchase/new", nil)
	assert.NotContains(t, c.page(), `value="Clavier"`)
}

func TestRouter_RequestsView(t *testing.T) {
	c, _ := newClient(t)
	c.page()

	rec := c.post("/requests/view", url.Values{"category": {"visit"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	out := c.page()
	assert.Contains(t, out, "Toutes les demandes")
	assert.Contains(t, out, "Achat matériel - Amazon")

	rec = c.post("/requests/view", url.Values{"category": {"holiday"}})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_Errors(t *testing.T) {
	c, _ := newClient(t)
	c.page()

	rec := c.post("/requests/holiday/new", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"NOT_FOUND"`)

	rec = c.post("/forms/visit/save", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	c.post("/requests/visit/new", nil)
	rec = c.post("/forms/travel/submit", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"VIEW_MISMATCH"`)

	rec = c.post("/forms/visit/fields/budget", url.Values{"value": {"10"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"UNKNOWN_FIELD"`)

	rec = c.post("/forms/visit/fields/requester", url.Values{"value": {"@Marie"}})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, c.page(), `value="@Marie"`)
}

func TestRouter_ForgedCookieStartsOver(t *testing.T) {
	c, _ := newClient(t)
	c.page()
	c.post("/requests/ethics/new", nil)
	assert.Contains(t, c.page(), "DEMANDE DE COMITÉ ÉTHIQUE")

	c.cookie = &http.Cookie{Name: session.DefaultCookieName, Value: "forged"}
	out := c.page()
	assert.Contains(t, out, "Gestion des Demandes")
	assert.NotEqual(t, "forged", c.cookie.Value)
}
