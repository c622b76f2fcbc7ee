package store

import (
	"slices"
	"sync"
	"time"

	"skillswap/internal/models"
)

// SwapStore holds every swap request.
type SwapStore struct {
	mu     sync.RWMutex
	swaps  []models.SwapRequest
	nextID uint
}

// Create assigns an id, stamps the timestamps, and stores the request.
func (s *SwapStore) Create(r models.SwapRequest) models.SwapRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	r.ID = s.nextID
	s.nextID++
	r.CreatedAt = now
	r.UpdatedAt = now
	s.swaps = append(s.swaps, r)
	return r
}

// GetByID returns the swap request with the given id.
func (s *SwapStore) GetByID(id uint) (*models.SwapRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.swaps {
		if s.swaps[i].ID == id {
			r := s.swaps[i]
			return &r, nil
		}
	}
	return nil, models.NewNotFoundError("Swap request", id)
}

// ListByUserID returns requests where the user is requester or receiver.
func (s *SwapStore) ListByUserID(userID uint) []models.SwapRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.SwapRequest
	for i := range s.swaps {
		if s.swaps[i].HasParticipant(userID) {
			out = append(out, s.swaps[i])
		}
	}
	return out
}

// ListAll returns every swap request, for the moderation view.
func (s *SwapStore) ListAll() []models.SwapRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.SwapRequest, len(s.swaps))
	copy(out, s.swaps)
	return out
}

// Update replaces the stored request with the same id and refreshes UpdatedAt.
func (s *SwapStore) Update(r models.SwapRequest) (*models.SwapRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.swaps {
		if s.swaps[i].ID == r.ID {
			r.CreatedAt = s.swaps[i].CreatedAt
			r.UpdatedAt = time.Now()
			s.swaps[i] = r
			return &r, nil
		}
	}
	return nil, models.NewNotFoundError("Swap request", r.ID)
}

// Delete removes the request with the given id. Unknown ids are a no-op.
func (s *SwapStore) Delete(id uint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.swaps = slices.DeleteFunc(s.swaps, func(r models.SwapRequest) bool {
		return r.ID == id
	})
}
