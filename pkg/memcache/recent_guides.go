package mem

import (
	"sync"
	"time"

	"wanderguard/internal/guide"
)

// RecentGuideStore keeps the most recently generated guide per session so a
// save request can reference "the current guide" without resending it.
type RecentGuideStore interface {
	Set(sessionID string, data guide.TravelData, ttl time.Duration)

	// Get returns the session's current guide if not expired.
	Get(sessionID string) (guide.TravelData, bool)

	Drop(sessionID string)
}

type guideEntry struct {
	data      guide.TravelData
	expiresAt time.Time
}

type RecentGuides struct {
	mu   sync.RWMutex
	data map[string]guideEntry
}

func NewRecentGuides() *RecentGuides {
	return &RecentGuides{
		data: make(map[string]guideEntry),
	}
}

func (s *RecentGuides) Set(sessionID string, data guide.TravelData, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sessionID] = guideEntry{
		data:      data,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *RecentGuides) Get(sessionID string) (guide.TravelData, bool) {
	s.mu.RLock()
	e, ok := s.data[sessionID]
	s.mu.RUnlock()

	if !ok || time.Now().After(e.expiresAt) {
		return guide.TravelData{}, false
	}
	return e.data, true
}

func (s *RecentGuides) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sessionID)
}
