package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bloodchain/portal/internal/core/domain"
	"github.com/bloodchain/portal/internal/core/ports"
)

type workspaceEntry struct {
	mu       sync.Mutex
	ws       *domain.Workspace
	lastSeen time.Time
}

// WorkspaceStore keeps one workspace per session. The map lock is held only
// to find or create an entry; each entry has its own lock so sessions do not
// block each other.
//
// With a TTL set, workspaces untouched for longer than the TTL are evicted.
type WorkspaceStore struct {
	source ports.FixtureSource
	ttl    time.Duration
	now    func() time.Time

	mu        sync.Mutex
	entries   map[string]*workspaceEntry
	lastSweep time.Time
}

func NewWorkspaceStore(source ports.FixtureSource) *WorkspaceStore {
	return &WorkspaceStore{
		source:  source,
		now:     time.Now,
		entries: make(map[string]*workspaceEntry),
	}
}

// WithTTL enables idle eviction. Zero keeps workspaces until dropped.
func (s *WorkspaceStore) WithTTL(ttl time.Duration) *WorkspaceStore {
	s.ttl = ttl
	return s
}

func (s *WorkspaceStore) WithClock(now func() time.Time) *WorkspaceStore {
	s.now = now
	return s
}

func (s *WorkspaceStore) Update(ctx context.Context, sid string, fn func(*domain.Workspace) error) error {
	e := s.entry(sid)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.ws == nil {
		f, err := s.source.Load(ctx)
		if err != nil {
			return fmt.Errorf("workspace: %w", err)
		}
		e.ws = domain.NewWorkspace(f)
	}
	return fn(e.ws)
}

func (s *WorkspaceStore) Drop(_ context.Context, sid string) error {
	s.mu.Lock()
	delete(s.entries, sid)
	s.mu.Unlock()
	return nil
}

// Len reports how many sessions currently hold a workspace.
func (s *WorkspaceStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Sweep evicts idle workspaces and returns how many were removed.
func (s *WorkspaceStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sweepLocked(s.now())
}

func (s *WorkspaceStore) entry(sid string) *workspaceEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if s.ttl > 0 && now.Sub(s.lastSweep) >= s.ttl {
		s.sweepLocked(now)
	}

	e, ok := s.entries[sid]
	if !ok || s.expired(e.lastSeen, now) {
		e = &workspaceEntry{}
		s.entries[sid] = e
	}
	e.lastSeen = now
	return e
}

// sweepLocked requires s.mu. An update already running on an evicted entry
// finishes against its detached workspace.
func (s *WorkspaceStore) sweepLocked(now time.Time) int {
	s.lastSweep = now
	if s.ttl <= 0 {
		return 0
	}
	n := 0
	for sid, e := range s.entries {
		if s.expired(e.lastSeen, now) {
			delete(s.entries, sid)
			n++
		}
	}
	return n
}

func (s *WorkspaceStore) expired(lastSeen, now time.Time) bool {
	return s.ttl > 0 && now.Sub(lastSeen) > s.ttl
}
