package models

import "time"

// BroadcastType categorizes a platform-wide broadcast message.
type BroadcastType string

const (
	// BroadcastAnnouncement is a general announcement to all users.
	BroadcastAnnouncement BroadcastType = "announcement"
	// BroadcastUpdate announces a product or feature update.
	BroadcastUpdate BroadcastType = "update"
	// BroadcastMaintenance warns about scheduled maintenance.
	BroadcastMaintenance BroadcastType = "maintenance"
)

// ValidBroadcastType reports whether t is a known broadcast type.
func ValidBroadcastType(t BroadcastType) bool {
	return t == BroadcastAnnouncement || t == BroadcastUpdate || t == BroadcastMaintenance
}

// BroadcastMessage is a platform-wide message published by an admin.
type BroadcastMessage struct {
	ID        uint          `json:"id"`
	AdminID   uint          `json:"admin_id"`
	Title     string        `json:"title"`
	Content   string        `json:"content"`
	Type      BroadcastType `json:"type"`
	IsActive  bool          `json:"is_active"`
	CreatedAt time.Time     `json:"created_at"`
}
