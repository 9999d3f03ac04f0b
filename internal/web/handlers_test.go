package web

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"requestdesk/internal/api"
	"requestdesk/internal/desk"
	"requestdesk/internal/request"
	"requestdesk/internal/session"
)

func newSession(t *testing.T) *session.Session {
	t.Helper()
	st, err := session.NewStore(session.StoreConfig{TTL: time.Hour, MaxSessions: 10}, nil)
	require.NoError(t, err)
	t.Cleanup(st.Close)
	sess, err := st.Create()
	require.NoError(t, err)
	return sess
}

func TestIndex_RendersCurrentView(t *testing.T) {
	sess := newSession(t)
	require.NoError(t, sess.Do(func(d *desk.Desk) error {
		return d.CreateRequest(request.CategoryPurchase)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(api.WithSession(req.Context(), sess))
	rec := httptest.NewRecorder()
	Handlers{Requests: request.SeedSummaries()}.Index(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	assert.Contains(t, rec.Body.String(), `data-view="purchase"`)
	assert.Contains(t, rec.Body.String(), "Demande d&#39;Achat")
}

func TestIndex_WithoutSession(t *testing.T) {
	rec := httptest.NewRecorder()
	Handlers{}.Index(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":{"code":"INTERNAL","message":"missing session"}}`, rec.Body.String())
}

func TestWriteDeskError_HidesInternalErrors(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	rec := httptest.NewRecorder()
	writeDeskError(rec, req, errors.New("render dashboard: template exploded"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":{"code":"INTERNAL","message":"internal error"}}`, rec.Body.String())

	rec = httptest.NewRecorder()
	writeDeskError(rec, req, desk.ErrNoActiveForm)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "VIEW_MISMATCH")
}
