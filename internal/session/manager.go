package session

import (
	"context"
	"sync"

	"github.com/ariefcatur/go-shopfront.git/internal/checkout"
	"github.com/ariefcatur/go-shopfront.git/internal/kvstore"
	"golang.org/x/sync/singleflight"
)

// Manager memetakan session id -> *Session. Hydrate cuma sekali per sid;
// singleflight mencegah dua request paralel dengan sid sama hydrate dobel.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	sfg      singleflight.Group

	newStore func(sid string) kvstore.Store
	producer checkout.Publisher
	service  string
}

func NewManager(newStore func(sid string) kvstore.Store, producer checkout.Publisher, service string) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		newStore: newStore,
		producer: producer,
		service:  service,
	}
}

func (m *Manager) Get(ctx context.Context, sid string) *Session {
	m.mu.RLock()
	s, ok := m.sessions[sid]
	m.mu.RUnlock()
	if ok {
		return s
	}

	v, _, _ := m.sfg.Do(sid, func() (interface{}, error) {
		m.mu.RLock()
		s, ok := m.sessions[sid]
		m.mu.RUnlock()
		if ok {
			return s, nil
		}
		s = New(ctx, sid, m.newStore(sid), m.producer, m.service)
		m.mu.Lock()
		m.sessions[sid] = s
		m.mu.Unlock()
		return s, nil
	})
	return v.(*Session)
}

// Drop buang sesi dari memory (record yang dipersist tidak disentuh).
// Request berikutnya dengan sid sama akan hydrate ulang dari store.
func (m *Manager) Drop(sid string) {
	m.mu.Lock()
	delete(m.sessions, sid)
	m.mu.Unlock()
}
