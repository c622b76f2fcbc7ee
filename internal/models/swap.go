package models

import "time"

// SwapStatus defines lifecycle states for a swap request.
type SwapStatus string

const (
	// SwapStatusPending indicates the request is awaiting a response.
	SwapStatusPending SwapStatus = "pending"
	// SwapStatusAccepted indicates the receiver (or an admin) accepted the request.
	SwapStatusAccepted SwapStatus = "accepted"
	// SwapStatusRejected indicates the request was declined.
	SwapStatusRejected SwapStatus = "rejected"
	// SwapStatusCompleted indicates both sides finished the exchange.
	SwapStatusCompleted SwapStatus = "completed"
	// SwapStatusCancelled indicates a participant withdrew before completion.
	SwapStatusCancelled SwapStatus = "cancelled"
	// SwapStatusFlagged indicates an admin flagged the request for review.
	SwapStatusFlagged SwapStatus = "flagged"
)

// ValidSwapStatus reports whether s is a known swap status.
func ValidSwapStatus(s SwapStatus) bool {
	switch s {
	case SwapStatusPending, SwapStatusAccepted, SwapStatusRejected,
		SwapStatusCompleted, SwapStatusCancelled, SwapStatusFlagged:
		return true
	}
	return false
}

// swapTransitions is the allowed participant-driven state machine.
// Flagging is admin-only and allowed from any status, so it is handled
// separately by the moderation endpoints.
var swapTransitions = map[SwapStatus][]SwapStatus{
	SwapStatusPending:  {SwapStatusAccepted, SwapStatusRejected, SwapStatusCancelled},
	SwapStatusAccepted: {SwapStatusCompleted, SwapStatusCancelled},
}

// CanTransition reports whether a participant may move a swap request
// from one status to another.
func CanTransition(from, to SwapStatus) bool {
	for _, allowed := range swapTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// SwapRequest is a proposal to exchange one skill for another between two users.
type SwapRequest struct {
	ID             uint       `json:"id"`
	RequesterID    uint       `json:"requester_id"`
	ReceiverID     uint       `json:"receiver_id"`
	OfferedSkillID uint       `json:"offered_skill_id"`
	WantedSkillID  uint       `json:"wanted_skill_id"`
	Status         SwapStatus `json:"status"`
	Message        string     `json:"message,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// HasParticipant reports whether userID is the requester or the receiver.
func (r *SwapRequest) HasParticipant(userID uint) bool {
	return r.RequesterID == userID || r.ReceiverID == userID
}
