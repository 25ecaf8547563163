package repository

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/Azartis/Konsultabot2-sub000/internal/convo"
)

type memoryEntry struct {
	val     []byte
	expires time.Time
}

type memoryContextStore struct {
	ttl time.Duration

	mu        sync.Mutex
	items     map[string]memoryEntry
	lastSweep time.Time
}

// NewMemoryContextStore keeps contexts in process memory. It is used when
// no Redis address is configured. Like the Redis store, an entry expires
// ttl after its last save; a ttl <= 0 keeps entries until deleted.
func NewMemoryContextStore(ttl time.Duration) ContextStore {
	return &memoryContextStore{ttl: ttl, items: make(map[string]memoryEntry), lastSweep: time.Now()}
}

// Contexts are stored encoded so callers never share a *convo.Context.
func (s *memoryContextStore) Get(_ context.Context, chatID string) (*convo.Context, error) {
	s.mu.Lock()
	entry, ok := s.items[chatID]
	if ok && s.expired(entry, time.Now()) {
		delete(s.items, chatID)
		ok = false
	}
	s.mu.Unlock()
	if !ok {
		return nil, ErrNotFound
	}
	var c convo.Context
	if err := json.Unmarshal(entry.val, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *memoryContextStore) Save(_ context.Context, c *convo.Context) error {
	val, err := json.Marshal(c)
	if err != nil {
		return err
	}
	now := time.Now()
	entry := memoryEntry{val: val}
	if s.ttl > 0 {
		entry.expires = now.Add(s.ttl)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[c.SessionID] = entry
	s.sweep(now)
	return nil
}

func (s *memoryContextStore) Delete(_ context.Context, chatID string) error {
	s.mu.Lock()
	delete(s.items, chatID)
	s.mu.Unlock()
	return nil
}

func (s *memoryContextStore) expired(entry memoryEntry, now time.Time) bool {
	return !entry.expires.IsZero() && now.After(entry.expires)
}

// sweep drops expired entries at most once per ttl. s.mu must be held.
func (s *memoryContextStore) sweep(now time.Time) {
	if s.ttl <= 0 || now.Sub(s.lastSweep) < s.ttl {
		return
	}
	for id, entry := range s.items {
		if s.expired(entry, now) {
			delete(s.items, id)
		}
	}
	s.lastSweep = now
}
