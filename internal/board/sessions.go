package board

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/TylorMayfield/nh-jobsearch/internal/catalog"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrTooManySessions = errors.New("too many sessions")
)

// Sessions keeps one Board per open UI session. Boards live in memory only and
// are dropped after sitting idle for the TTL.
type Sessions struct {
	mu       sync.Mutex
	cat      *catalog.Catalog
	boards   map[string]*Board
	ttl      time.Duration
	max      int
	now      func() time.Time
	onChange func(View)
}

type SessionsConfig struct {
	TTL time.Duration
	Max int // 0 means unbounded
	Now func() time.Time

	// OnChange is passed to every board; View.ID names the session.
	OnChange func(View)
}

func NewSessions(cat *catalog.Catalog, cfg SessionsConfig) *Sessions {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Sessions{
		cat:      cat,
		boards:   make(map[string]*Board),
		ttl:      cfg.TTL,
		max:      cfg.Max,
		now:      now,
		onChange: cfg.OnChange,
	}
}

func (s *Sessions) Create() (*Board, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.max > 0 && len(s.boards) >= s.max {
		return nil, fmt.Errorf("create session (limit %d): %w", s.max, ErrTooManySessions)
	}

	id := uuid.NewString()
	b := New(s.cat, WithID(id), WithClock(s.now), WithOnChange(s.onChange))
	s.boards[id] = b
	return b, nil
}

func (s *Sessions) Get(id string) (*Board, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.boards[id]
	if !ok {
		return nil, fmt.Errorf("session %q: %w", id, ErrSessionNotFound)
	}
	return b, nil
}

func (s *Sessions) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.boards[id]; !ok {
		return fmt.Errorf("session %q: %w", id, ErrSessionNotFound)
	}
	delete(s.boards, id)
	return nil
}

func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.boards)
}

// Sweep drops boards idle for longer than the TTL and returns their ids.
// A zero TTL keeps every board.
func (s *Sessions) Sweep() []string {
	if s.ttl <= 0 {
		return nil
	}
	cutoff := s.now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	var dropped []string
	for id, b := range s.boards {
		if b.idleSince().Before(cutoff) {
			delete(s.boards, id)
			dropped = append(dropped, id)
		}
	}
	return dropped
}
