package store

import (
	"sync"
	"time"

	"skillswap/internal/models"
)

// MessageStore holds direct messages between users.
type MessageStore struct {
	mu       sync.RWMutex
	messages []models.DirectMessage
	nextID   uint
}

// Create assigns an id, stamps CreatedAt, and stores the message.
func (s *MessageStore) Create(m models.DirectMessage) models.DirectMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	m.ID = s.nextID
	s.nextID++
	m.CreatedAt = time.Now()
	s.messages = append(s.messages, m)
	return m
}

// GetByID returns the message with the given id.
func (s *MessageStore) GetByID(id uint) (*models.DirectMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.messages {
		if s.messages[i].ID == id {
			m := s.messages[i]
			return &m, nil
		}
	}
	return nil, models.NewNotFoundError("Message", id)
}

// ListForUser returns every message the user sent or received,
// in insertion order.
func (s *MessageStore) ListForUser(userID uint) []models.DirectMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.DirectMessage
	for i := range s.messages {
		m := s.messages[i]
		if m.SenderID == userID || m.ReceiverID == userID {
			out = append(out, m)
		}
	}
	return out
}

// ListConversation returns the messages exchanged between two users,
// in insertion order.
func (s *MessageStore) ListConversation(userID, otherID uint) []models.DirectMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.DirectMessage
	for i := range s.messages {
		m := s.messages[i]
		if (m.SenderID == userID && m.ReceiverID == otherID) ||
			(m.SenderID == otherID && m.ReceiverID == userID) {
			out = append(out, m)
		}
	}
	return out
}

// MarkRead flags the message as read.
func (s *MessageStore) MarkRead(id uint) (*models.DirectMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.messages {
		if s.messages[i].ID == id {
			s.messages[i].IsRead = true
			m := s.messages[i]
			return &m, nil
		}
	}
	return nil, models.NewNotFoundError("Message", id)
}
