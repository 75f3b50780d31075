// Package session keeps per-chat conversation state in memory: the display
// name of the person on the other end and a bounded history of recent turns.
// Sessions expire after a period of inactivity and are never persisted.
package session

import (
	"sync"
	"time"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is a single utterance in a conversation.
type Turn struct {
	Role Role
	Text string
}

const (
	DefaultTimeout    = 30 * time.Minute
	DefaultHistoryCap = 10

	// PlaceholderName is used when the chat never supplied a usable name.
	PlaceholderName = "friend"
)

type state struct {
	name       string
	history    []Turn
	lastActive time.Time
}

// Store is a concurrency-safe in-memory session table. A single mutex guards
// the whole table; contention is negligible at chat-message rates and keeps
// each read-modify-write of a session's history atomic.
type Store struct {
	mu         sync.Mutex
	sessions   map[string]*state
	timeout    time.Duration
	historyCap int
	now        func() time.Time
}

func New(timeout time.Duration, historyCap int) *Store {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if historyCap < 1 {
		historyCap = DefaultHistoryCap
	}
	return &Store{
		sessions:   map[string]*state{},
		timeout:    timeout,
		historyCap: historyCap,
		now:        time.Now,
	}
}

// Touch creates the session if needed and marks it active. The display name
// is refreshed from every message that carries one, so a renamed user is
// picked up immediately; an empty name falls back to the placeholder only
// when nothing better was ever seen.
func (s *Store) Touch(id, displayName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.get(id)
	if st == nil {
		st = &state{name: PlaceholderName}
		s.sessions[id] = st
	}
	if displayName != "" {
		st.name = displayName
	}
	st.lastActive = s.now()
}

// Name reports the display name for a live session. The second return is
// false when the session does not exist or has idled out.
func (s *Store) Name(id string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.get(id)
	if st == nil {
		return "", false
	}
	return st.name, true
}

// AppendTurn records one turn, creating the session if needed. When the
// history is at capacity the oldest turn is dropped.
func (s *Store) AppendTurn(id string, role Role, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.get(id)
	if st == nil {
		st = &state{name: PlaceholderName}
		s.sessions[id] = st
	}
	st.history = append(st.history, Turn{Role: role, Text: text})
	if len(st.history) > s.historyCap {
		st.history = st.history[len(st.history)-s.historyCap:]
	}
	st.lastActive = s.now()
}

// History returns a copy of the session's turns in insertion order, or nil
// for an absent or expired session.
func (s *Store) History(id string) []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.get(id)
	if st == nil {
		return nil
	}
	out := make([]Turn, len(st.history))
	copy(out, st.history)
	return out
}

// Sweep removes every expired session and reports how many were dropped.
// Expiry is also enforced lazily on access; the sweep only bounds the memory
// held by chats that never come back.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	dropped := 0
	for id, st := range s.sessions {
		if s.expired(st) {
			delete(s.sessions, id)
			dropped++
		}
	}
	return dropped
}

// get returns the live session or nil, deleting it if expired. Callers hold
// the mutex.
func (s *Store) get(id string) *state {
	st, ok := s.sessions[id]
	if !ok {
		return nil
	}
	if s.expired(st) {
		delete(s.sessions, id)
		return nil
	}
	return st
}

func (s *Store) expired(st *state) bool {
	return s.now().Sub(st.lastActive) > s.timeout
}
