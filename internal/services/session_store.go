package services

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionStore holds the State of every connected client by session id.
type SessionStore struct {
	mu      sync.Mutex
	states  map[string]*State
	backend *Backend
	now     func() time.Time
}

func NewSessionStore(b *Backend) *SessionStore {
	return &SessionStore{states: make(map[string]*State), backend: b, now: time.Now}
}

func (st *SessionStore) Backend() *Backend { return st.backend }

func (st *SessionStore) Create() *State {
	s := NewState(uuid.NewString(), st.backend)
	s.touch(st.now())
	st.mu.Lock()
	st.states[s.ID] = s
	st.mu.Unlock()
	log.Printf("session %s created", s.ID)
	return s
}

// Get returns the session and marks it as used.
func (st *SessionStore) Get(id string) (*State, error) {
	st.mu.Lock()
	s, ok := st.states[id]
	st.mu.Unlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	s.touch(st.now())
	return s, nil
}

func (st *SessionStore) Delete(id string) bool {
	st.mu.Lock()
	s, ok := st.states[id]
	delete(st.states, id)
	st.mu.Unlock()
	if ok {
		s.Close()
	}
	return ok
}

// Sweep drops sessions idle for longer than ttl and returns how many went.
func (st *SessionStore) Sweep(ttl time.Duration) int {
	cutoff := st.now().Add(-ttl)
	var stale []*State
	st.mu.Lock()
	for id, s := range st.states {
		if s.LastSeen().Before(cutoff) {
			stale = append(stale, s)
			delete(st.states, id)
		}
	}
	st.mu.Unlock()
	for _, s := range stale {
		s.Close()
	}
	if len(stale) > 0 {
		log.Printf("swept %d idle session(s)", len(stale))
	}
	return len(stale)
}

func (st *SessionStore) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.states)
}
