package models

import "time"

// SkillType says whether the owner offers the skill or wants to learn it.
type SkillType string

const (
	// SkillOffered marks a skill the owner can teach.
	SkillOffered SkillType = "offered"
	// SkillWanted marks a skill the owner wants to learn.
	SkillWanted SkillType = "wanted"
)

// ValidSkillType reports whether t is a known skill type.
func ValidSkillType(t SkillType) bool {
	return t == SkillOffered || t == SkillWanted
}

// Skill is a single offered or wanted skill belonging to one user.
type Skill struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	Name        string    `json:"name"`
	Type        SkillType `json:"type"`
	Description string    `json:"description,omitempty"`
	IsApproved  bool      `json:"is_approved"`
	CreatedAt   time.Time `json:"created_at"`
}
