package store

import (
	"slices"
	"strings"
	"sync"
	"time"

	"skillswap/internal/models"
)

// UserStore holds every registered user, banned or not.
type UserStore struct {
	mu     sync.RWMutex
	users  []models.User
	nextID uint
}

func copyUser(u models.User) models.User {
	u.Availability = slices.Clone(u.Availability)
	return u
}

// Create assigns an id, stamps the timestamps, and stores the user.
func (s *UserStore) Create(u models.User) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	u.ID = s.nextID
	s.nextID++
	u.CreatedAt = now
	u.UpdatedAt = now
	if u.Availability == nil {
		u.Availability = []string{}
	}
	s.users = append(s.users, copyUser(u))
	return u
}

// GetByID returns the user with the given id, banned or not.
func (s *UserStore) GetByID(id uint) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if s.users[i].ID == id {
			u := copyUser(s.users[i])
			return &u, nil
		}
	}
	return nil, models.NewNotFoundError("User", id)
}

// GetByEmail returns the user with the given email, or nil if no such
// user exists. Email comparison is case-insensitive.
func (s *UserStore) GetByEmail(email string) *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if strings.EqualFold(s.users[i].Email, email) {
			u := copyUser(s.users[i])
			return &u
		}
	}
	return nil
}

// List returns all non-banned users in insertion order. This is the
// default read path for member-facing views.
func (s *UserStore) List() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, 0, len(s.users))
	for i := range s.users {
		if !s.users[i].IsBanned {
			out = append(out, copyUser(s.users[i]))
		}
	}
	return out
}

// ListAll returns every user including banned ones, for moderation views.
func (s *UserStore) ListAll() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, 0, len(s.users))
	for i := range s.users {
		out = append(out, copyUser(s.users[i]))
	}
	return out
}

// Update replaces the stored user with the same id and refreshes UpdatedAt.
func (s *UserStore) Update(u models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == u.ID {
			u.CreatedAt = s.users[i].CreatedAt
			u.UpdatedAt = time.Now()
			s.users[i] = copyUser(u)
			return &u, nil
		}
	}
	return nil, models.NewNotFoundError("User", u.ID)
}

// Delete removes the user with the given id. Deleting an unknown id is a no-op.
func (s *UserStore) Delete(id uint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = slices.DeleteFunc(s.users, func(u models.User) bool {
		return u.ID == id
	})
}
