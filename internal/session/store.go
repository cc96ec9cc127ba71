package session

import (
	"sync"

	"florada/internal/models"

	apperrors "florada/internal/errors"
)

// Store keeps active sessions in process memory. Single-operator tool,
// so an in-memory map with a mutex is the whole persistence story; a
// restart simply asks the user to register again.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Create builds a new session for the user and registers it.
func (st *Store) Create(user models.UserInfo) *Session {
	s := New(user)
	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

// Get returns a deep copy of the session with the given ID. The copy is
// taken under the store lock, so callers can read it freely while Do
// calls keep mutating the live session.
func (st *Store) Get(id string) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	if !ok {
		return nil, apperrors.ErrSessionNotFound
	}
	return s.Clone(), nil
}

// Do runs fn with the session looked up by ID, serialized against every
// other Do call on the store. Mutating session methods must only be
// called inside fn.
func (st *Store) Do(id string, fn func(*Session) error) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[id]
	if !ok {
		return apperrors.ErrSessionNotFound
	}
	return fn(s)
}

// Delete removes the session. Deleting an unknown ID is a no-op.
func (st *Store) Delete(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}

// Count reports the number of active sessions.
func (st *Store) Count() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
