package store

import (
	"sync"
	"time"

	"hadith-voice-be/pkg/llm"

	gocache "github.com/patrickmn/go-cache"
)

const (
	historyTTL      = 2 * time.Hour
	cleanupInterval = 10 * time.Minute
)

// HistoryStore keeps the conversation-so-far per room, in memory only.
// Entries expire with the room session; nothing is persisted.
type HistoryStore struct {
	mu    sync.Mutex
	cache *gocache.Cache
}

func NewHistoryStore() *HistoryStore {
	return &HistoryStore{
		cache: gocache.New(historyTTL, cleanupInterval),
	}
}

// Append adds a message to a room's history and refreshes its TTL.
func (s *HistoryStore) Append(room string, msg llm.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := s.getLocked(room)
	history = append(history, msg)
	s.cache.Set(room, history, historyTTL)
}

// Get returns a copy of the room's history in arrival order.
func (s *HistoryStore) Get(room string) []llm.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := s.getLocked(room)
	out := make([]llm.Message, len(history))
	copy(out, history)
	return out
}

// Clear drops a room's history (session teardown).
func (s *HistoryStore) Clear(room string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Delete(room)
}

func (s *HistoryStore) getLocked(room string) []llm.Message {
	if v, found := s.cache.Get(room); found {
		if history, ok := v.([]llm.Message); ok {
			return history
		}
	}
	return nil
}
