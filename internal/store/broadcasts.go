package store

import (
	"slices"
	"sync"
	"time"

	"skillswap/internal/models"
)

// BroadcastStore holds platform-wide admin broadcast messages.
type BroadcastStore struct {
	mu       sync.RWMutex
	messages []models.BroadcastMessage
	nextID   uint
}

// Create assigns an id, stamps CreatedAt, and stores the message.
func (s *BroadcastStore) Create(m models.BroadcastMessage) models.BroadcastMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	m.ID = s.nextID
	s.nextID++
	m.CreatedAt = time.Now()
	s.messages = append(s.messages, m)
	return m
}

// GetByID returns the broadcast with the given id, active or not.
func (s *BroadcastStore) GetByID(id uint) (*models.BroadcastMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.messages {
		if s.messages[i].ID == id {
			m := s.messages[i]
			return &m, nil
		}
	}
	return nil, models.NewNotFoundError("Broadcast message", id)
}

// ListActive returns active broadcasts in insertion order. This is the
// member-facing read path.
func (s *BroadcastStore) ListActive() []models.BroadcastMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.BroadcastMessage
	for i := range s.messages {
		if s.messages[i].IsActive {
			out = append(out, s.messages[i])
		}
	}
	return out
}

// ListAll returns every broadcast including deactivated ones.
func (s *BroadcastStore) ListAll() []models.BroadcastMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.BroadcastMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// Update replaces the stored broadcast with the same id.
func (s *BroadcastStore) Update(m models.BroadcastMessage) (*models.BroadcastMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.messages {
		if s.messages[i].ID == m.ID {
			m.CreatedAt = s.messages[i].CreatedAt
			s.messages[i] = m
			return &m, nil
		}
	}
	return nil, models.NewNotFoundError("Broadcast message", m.ID)
}

// Delete removes the broadcast with the given id. Unknown ids are a no-op.
func (s *BroadcastStore) Delete(id uint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages = slices.DeleteFunc(s.messages, func(m models.BroadcastMessage) bool {
		return m.ID == id
	})
}
