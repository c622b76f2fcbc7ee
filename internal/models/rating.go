package models

import "time"

// Rating is feedback left by one participant of a completed swap about the other.
type Rating struct {
	ID            uint      `json:"id"`
	SwapRequestID uint      `json:"swap_request_id"`
	RaterID       uint      `json:"rater_id"`
	RatedUserID   uint      `json:"rated_user_id"`
	Rating        int       `json:"rating"`
	Feedback      string    `json:"feedback,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// RatingWithRater decorates a rating with display details of its author
// for the profile view.
type RatingWithRater struct {
	Rating
	RaterName  string `json:"rater_name"`
	RaterPhoto string `json:"rater_photo,omitempty"`
}
