package session

import (
	"errors"
	"sync"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/google/uuid"

	"requestdesk/internal/desk"
)

var ErrStoreRejected = errors.New("session store rejected entry")

// Session is one browser's desk. Desk is not safe for concurrent use, so every
// access goes through Do.
type Session struct {
	ID string

	mu   sync.Mutex
	desk *desk.Desk
}

func (s *Session) Do(fn func(d *desk.Desk) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.desk)
}

type StoreConfig struct {
	TTL         time.Duration
	MaxSessions int64
}

func DefaultStoreConfig() StoreConfig {
	return StoreConfig{
		TTL:         12 * time.Hour,
		MaxSessions: 10000,
	}
}

// Store keeps sessions in memory until they sit idle for TTL.
type Store struct {
	cache   *ristretto.Cache
	ttl     time.Duration
	newDesk func() *desk.Desk
}

func NewStore(cfg StoreConfig, newDesk func() *desk.Desk) (*Store, error) {
	def := DefaultStoreConfig()
	if cfg.TTL <= 0 {
		cfg.TTL = def.TTL
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = def.MaxSessions
	}
	if newDesk == nil {
		newDesk = func() *desk.Desk { return desk.New() }
	}

	// Cost counts sessions, not bytes.
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters:        cfg.MaxSessions * 10,
		MaxCost:            cfg.MaxSessions,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, err
	}
	return &Store{cache: cache, ttl: cfg.TTL, newDesk: newDesk}, nil
}

func (s *Store) TTL() time.Duration { return s.ttl }

// Create stores a fresh session on the initial dashboard view.
func (s *Store) Create() (*Session, error) {
	sess := &Session{ID: uuid.NewString(), desk: s.newDesk()}
	if !s.cache.SetWithTTL(sess.ID, sess, 1, s.ttl) {
		return nil, ErrStoreRejected
	}
	s.cache.Wait()
	return sess, nil
}

// Get returns a live session and extends its lifetime.
func (s *Store) Get(id string) (*Session, bool) {
	v, ok := s.cache.Get(id)
	if !ok {
		return nil, false
	}
	sess, ok := v.(*Session)
	if !ok {
		return nil, false
	}
	s.cache.SetWithTTL(id, sess, 1, s.ttl)
	return sess, true
}

func (s *Store) Delete(id string) {
	s.cache.Del(id)
}

func (s *Store) Close() {
	s.cache.Close()
}
