// Package models contains data structures for the application's domain models.
package models

import "time"

// UserRole distinguishes regular members from platform administrators.
type UserRole string

const (
	// RoleUser is the default role assigned at registration.
	RoleUser UserRole = "user"
	// RoleAdmin grants access to the moderation endpoints.
	RoleAdmin UserRole = "admin"
)

// Availability slot names a user can advertise on their profile.
const (
	AvailabilityWeekdays = "weekdays"
	AvailabilityWeekends = "weekends"
	AvailabilityEvenings = "evenings"
	AvailabilityMornings = "mornings"
)

// AvailabilitySlots lists every valid availability value.
var AvailabilitySlots = []string{
	AvailabilityWeekdays,
	AvailabilityWeekends,
	AvailabilityEvenings,
	AvailabilityMornings,
}

// ValidAvailability reports whether slot is a known availability value.
func ValidAvailability(slot string) bool {
	for _, s := range AvailabilitySlots {
		if s == slot {
			return true
		}
	}
	return false
}

// User represents a member of the skill-swap marketplace.
type User struct {
	ID           uint      `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Password     string    `json:"-"`
	Location     string    `json:"location,omitempty"`
	ProfilePhoto string    `json:"profile_photo,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	IsPublic     bool      `json:"is_public"`
	Availability []string  `json:"availability"`
	Role         UserRole  `json:"role"`
	IsBanned     bool      `json:"is_banned"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
