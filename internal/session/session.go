package session

import (
	"sync"

	"github.com/google/uuid"
)

// Store keeps signed-in sessions in memory: opaque token -> user id.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]uint
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]uint)}
}

// Issue creates a session for the user and returns its token.
func (s *Store) Issue(userID uint) string {
	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = userID
	s.mu.Unlock()
	return token
}

// Resolve returns the user id behind a token.
func (s *Store) Resolve(token string) (uint, bool) {
	s.mu.RLock()
	userID, ok := s.sessions[token]
	s.mu.RUnlock()
	return userID, ok
}

// Drop removes a session. Dropping an unknown token is a no-op.
func (s *Store) Drop(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// ResultStore parks generated report text server-side across the
// redirect boundary. Entries are read-once: Take removes what it
// returns, so a result id never resolves twice.
type ResultStore struct {
	mu      sync.Mutex
	results map[string]string
}

func NewResultStore() *ResultStore {
	return &ResultStore{results: make(map[string]string)}
}

// Put stores text and returns the id to redirect with.
func (r *ResultStore) Put(text string) string {
	id := uuid.NewString()
	r.mu.Lock()
	r.results[id] = text
	r.mu.Unlock()
	return id
}

// Take returns and removes the text behind id.
func (r *ResultStore) Take(id string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	text, ok := r.results[id]
	if ok {
		delete(r.results, id)
	}
	return text, ok
}
