package store

import (
	"slices"
	"sync"
	"time"

	"skillswap/internal/models"
)

// SkillStore holds every listed skill, approved or pending.
type SkillStore struct {
	mu     sync.RWMutex
	skills []models.Skill
	nextID uint
}

// Create assigns an id, stamps CreatedAt, and stores the skill.
func (s *SkillStore) Create(sk models.Skill) models.Skill {
	s.mu.Lock()
	defer s.mu.Unlock()

	sk.ID = s.nextID
	s.nextID++
	sk.CreatedAt = time.Now()
	s.skills = append(s.skills, sk)
	return sk
}

// GetByID returns the skill with the given id regardless of approval state.
func (s *SkillStore) GetByID(id uint) (*models.Skill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.skills {
		if s.skills[i].ID == id {
			sk := s.skills[i]
			return &sk, nil
		}
	}
	return nil, models.NewNotFoundError("Skill", id)
}

// ListApproved returns all approved skills in insertion order.
func (s *SkillStore) ListApproved() []models.Skill {
	return s.filter(func(sk models.Skill) bool { return sk.IsApproved })
}

// ListPending returns skills awaiting (or stripped of) approval.
func (s *SkillStore) ListPending() []models.Skill {
	return s.filter(func(sk models.Skill) bool { return !sk.IsApproved })
}

// ListByUserID returns every skill owned by the user, approved or not.
func (s *SkillStore) ListByUserID(userID uint) []models.Skill {
	return s.filter(func(sk models.Skill) bool { return sk.UserID == userID })
}

func (s *SkillStore) filter(keep func(models.Skill) bool) []models.Skill {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Skill
	for i := range s.skills {
		if keep(s.skills[i]) {
			out = append(out, s.skills[i])
		}
	}
	return out
}

// Update replaces the stored skill with the same id.
func (s *SkillStore) Update(sk models.Skill) (*models.Skill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.skills {
		if s.skills[i].ID == sk.ID {
			sk.CreatedAt = s.skills[i].CreatedAt
			s.skills[i] = sk
			return &sk, nil
		}
	}
	return nil, models.NewNotFoundError("Skill", sk.ID)
}

// Delete removes the skill with the given id. Unknown ids are a no-op.
func (s *SkillStore) Delete(id uint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.skills = slices.DeleteFunc(s.skills, func(sk models.Skill) bool {
		return sk.ID == id
	})
}

// DeleteByUserID removes every skill owned by the user. Used when an
// admin deletes the account itself.
func (s *SkillStore) DeleteByUserID(userID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.skills = slices.DeleteFunc(s.skills, func(sk models.Skill) bool {
		return sk.UserID == userID
	})
}
