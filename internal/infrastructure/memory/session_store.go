// Package memory holds process-local adapters. State is lost on restart and
// not shared between replicas.
package memory

import (
	"context"
	"sync"
	"time"
)

type sessionEntry struct {
	fields   map[string]string
	lastSeen time.Time
}

// SessionStore is a mutex-guarded map of session fields. With a TTL set,
// sessions idle for longer than the TTL read back empty and are evicted.
type SessionStore struct {
	ttl time.Duration
	now func() time.Time

	mu        sync.Mutex
	data      map[string]*sessionEntry
	lastSweep time.Time
}

func NewSessionStore() *SessionStore {
	return &SessionStore{now: time.Now, data: make(map[string]*sessionEntry)}
}

// WithTTL enables idle eviction. Zero keeps sessions until cleared.
func (s *SessionStore) WithTTL(ttl time.Duration) *SessionStore {
	s.ttl = ttl
	return s
}

func (s *SessionStore) WithClock(now func() time.Time) *SessionStore {
	s.now = now
	return s
}

func (s *SessionStore) Read(_ context.Context, sid string) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.maybeSweep(now)

	e, ok := s.data[sid]
	if ok && s.expired(e.lastSeen, now) {
		delete(s.data, sid)
		ok = false
	}
	if !ok {
		return map[string]string{}, nil
	}
	e.lastSeen = now
	out := make(map[string]string, len(e.fields))
	for k, v := range e.fields {
		out[k] = v
	}
	return out, nil
}

func (s *SessionStore) Write(_ context.Context, sid string, fields map[string]string) error {
	m := make(map[string]string, len(fields))
	for k, v := range fields {
		m[k] = v
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.maybeSweep(now)
	s.data[sid] = &sessionEntry{fields: m, lastSeen: now}
	return nil
}

func (s *SessionStore) Clear(_ context.Context, sid string) error {
	s.mu.Lock()
	delete(s.data, sid)
	s.mu.Unlock()
	return nil
}

// Len reports how many sessions are stored.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data)
}

// Sweep evicts idle sessions and returns how many were removed.
func (s *SessionStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sweepLocked(s.now())
}

func (s *SessionStore) maybeSweep(now time.Time) {
	if s.ttl > 0 && now.Sub(s.lastSweep) >= s.ttl {
		s.sweepLocked(now)
	}
}

func (s *SessionStore) sweepLocked(now time.Time) int {
	s.lastSweep = now
	if s.ttl <= 0 {
		return 0
	}
	n := 0
	for sid, e := range s.data {
		if s.expired(e.lastSeen, now) {
			delete(s.data, sid)
			n++
		}
	}
	return n
}

func (s *SessionStore) expired(lastSeen, now time.Time) bool {
	return s.ttl > 0 && now.Sub(lastSeen) > s.ttl
}
