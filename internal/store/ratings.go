package store

import (
	"sync"
	"time"

	"skillswap/internal/models"
)

// RatingStore holds all swap ratings. Ratings are append-only; the
// one-rating-per-swap-per-rater rule is enforced by the handler layer
// via FindBySwapAndRater before insert.
type RatingStore struct {
	mu      sync.RWMutex
	ratings []models.Rating
	nextID  uint
}

// Create assigns an id, stamps CreatedAt, and stores the rating.
func (s *RatingStore) Create(r models.Rating) models.Rating {
	s.mu.Lock()
	defer s.mu.Unlock()

	r.ID = s.nextID
	s.nextID++
	r.CreatedAt = time.Now()
	s.ratings = append(s.ratings, r)
	return r
}

// ListAll returns every rating in insertion order.
func (s *RatingStore) ListAll() []models.Rating {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Rating, len(s.ratings))
	copy(out, s.ratings)
	return out
}

// ListByRatedUser returns ratings received by the given user.
func (s *RatingStore) ListByRatedUser(userID uint) []models.Rating {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Rating
	for i := range s.ratings {
		if s.ratings[i].RatedUserID == userID {
			out = append(out, s.ratings[i])
		}
	}
	return out
}

// FindBySwapAndRater returns the rating the user left on the swap,
// or nil if they have not rated it.
func (s *RatingStore) FindBySwapAndRater(swapID, raterID uint) *models.Rating {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.ratings {
		if s.ratings[i].SwapRequestID == swapID && s.ratings[i].RaterID == raterID {
			r := s.ratings[i]
			return &r
		}
	}
	return nil
}
