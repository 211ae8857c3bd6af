package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"creator-toolkit/internal/models"
)

// State is the explicit per-session context passed between tool actions:
// the last search criteria and result set, and the last generated artifacts.
// It is created on first contact and dropped when the session expires.
type State struct {
	ID           string                    `json:"id"`
	Criteria     *models.SearchCriteria    `json:"criteria,omitempty"`
	Results      *models.ResearchResult    `json:"results,omitempty"`
	Draft        *models.DraftArtifact     `json:"draft,omitempty"`
	LastKeywords []models.KeywordReport    `json:"last_keywords,omitempty"`
	LastTitles   []models.TitleSuggestion  `json:"last_titles,omitempty"`
	LastConcepts []models.ThumbnailConcept `json:"last_concepts,omitempty"`
}

type entry struct {
	state    *State
	lastSeen time.Time
}

// Store keeps session state in memory only. Nothing survives a restart;
// results are transient by design.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	ttl      time.Duration
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*entry),
		ttl:      ttl,
	}
}

// GetOrCreate returns the session for id, creating a fresh one when id is
// empty or unknown. The returned ID is what the client should carry forward.
func (s *Store) GetOrCreate(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != "" {
		if e, ok := s.sessions[id]; ok && time.Since(e.lastSeen) < s.ttl {
			e.lastSeen = time.Now()
			return id
		}
	}

	id = uuid.NewString()
	s.sessions[id] = &entry{
		state:    &State{ID: id},
		lastSeen: time.Now(),
	}
	return id
}

// View runs fn with read access to the session state. Returns false when the
// session does not exist.
func (s *Store) View(id string, fn func(*State)) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.sessions[id]
	if !ok {
		return false
	}
	fn(e.state)
	return true
}

// Update runs fn with write access to the session state and refreshes its
// expiry. Returns false when the session does not exist.
func (s *Store) Update(id string, fn func(*State)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return false
	}
	fn(e.state)
	e.lastSeen = time.Now()
	return true
}

// Sweep drops sessions idle longer than the TTL and reports how many were
// removed.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-s.ttl)
	removed := 0
	for id, e := range s.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
