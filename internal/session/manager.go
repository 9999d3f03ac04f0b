package session

import (
	"fmt"
	"net/http"
	"time"

	"requestdesk/pkg/logging"
)

const DefaultCookieName = "rd_session"

type ManagerConfig struct {
	Secret     []byte
	CookieName string
	Secure     bool
	// Created runs after a new session is stored.
	Created func()
}

// Manager binds sessions in a Store to signed cookies.
type Manager struct {
	store *Store
	cfg   ManagerConfig
	now   func() time.Time
}

func NewManager(store *Store, cfg ManagerConfig) (*Manager, error) {
	if len(cfg.Secret) == 0 {
		return nil, fmt.Errorf("missing session secret")
	}
	if cfg.CookieName == "" {
		cfg.CookieName = DefaultCookieName
	}
	return &Manager{store: store, cfg: cfg, now: time.Now}, nil
}

// Load resolves the request cookie to a live session. A missing, forged or
// expired cookie, or a session the store already evicted, reports false.
//
// The store slides a session's lifetime on every hit, so the cookie has to
// follow: once less than half of it remains a fresh one is set on w.
func (m *Manager) Load(w http.ResponseWriter, r *http.Request) (*Session, bool) {
	c, err := r.Cookie(m.cfg.CookieName)
	if err != nil {
		return nil, false
	}
	now := m.now()
	claims, err := parseToken(c.Value, m.cfg.Secret, now)
	if err != nil {
		return nil, false
	}
	sess, ok := m.store.Get(claims.Subject)
	if !ok {
		return nil, false
	}

	if claims.ExpiresAt.Time.Sub(now) < m.store.TTL()/2 {
		if err := m.setCookie(w, sess.ID, now); err != nil {
			// The current cookie stays valid until its own expiry.
			logging.FromContext(r.Context()).WithError(err).Warn("refresh session cookie")
		}
	}
	return sess, true
}

// Issue creates a session and sets its cookie on w.
func (m *Manager) Issue(w http.ResponseWriter) (*Session, error) {
	sess, err := m.store.Create()
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	if err := m.setCookie(w, sess.ID, m.now()); err != nil {
		m.store.Delete(sess.ID)
		return nil, err
	}
	if m.cfg.Created != nil {
		m.cfg.Created()
	}
	return sess, nil
}

func (m *Manager) setCookie(w http.ResponseWriter, id string, now time.Time) error {
	tok, err := SignToken(id, m.cfg.Secret, now, m.store.TTL())
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     m.cfg.CookieName,
		Value:    tok,
		Path:     "/",
		Expires:  now.Add(m.store.TTL()),
		HttpOnly: true,
		Secure:   m.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
