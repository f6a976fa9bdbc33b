package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Lixing-Zhang/bandi-strawberry/internal/models"
)

// Store holds live sessions in memory. Sessions idle longer than the TTL
// are dropped by Sweep.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	products []models.Product
	ttl      time.Duration
	now      func() time.Time
}

// NewStore creates a store whose sessions start with a copy of products
func NewStore(products []models.Product, ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		products: append([]models.Product(nil), products...),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Get returns the session with id and refreshes its idle timer
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return nil, false
	}

	s.Lock()
	s.lastSeen = st.now()
	s.Unlock()
	return s, true
}

// Create starts a new session with a random ID
func (st *Store) Create() *Session {
	s := newSession(uuid.NewString(), st.products, st.now())

	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

// GetOrCreate returns the session for id, creating a fresh one when id is
// empty or unknown. created reports which happened.
func (st *Store) GetOrCreate(id string) (s *Session, created bool) {
	if id != "" {
		if s, ok := st.Get(id); ok {
			return s, false
		}
	}
	return st.Create(), true
}

// Len returns the number of live sessions
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Sweep removes sessions idle for longer than the TTL and returns how many
// were removed
func (st *Store) Sweep() int {
	cutoff := st.now().Add(-st.ttl)

	st.mu.Lock()
	defer st.mu.Unlock()

	removed := 0
	for id, s := range st.sessions {
		s.Lock()
		idle := s.lastSeen.Before(cutoff)
		s.Unlock()

		if idle {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}

// Run sweeps every interval until ctx is cancelled
func (st *Store) Run(ctx context.Context, interval time.Duration, log *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := st.Sweep(); removed > 0 {
				log.Debug("expired idle sessions", "removed", removed, "remaining", st.Len())
			}
		}
	}
}
