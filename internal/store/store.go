// Package store is the in-process system of record for the marketplace.
// All data lives in memory and is lost on restart; there is deliberately no
// persistence layer behind it. Each collection guards its records with a
// RWMutex and assigns ids from a per-collection counter, so concurrent
// creates always receive unique, monotonically increasing ids. Lookups
// return copies, never pointers into the underlying slices.
package store

// Store aggregates the per-entity collections.
type Store struct {
	Users      *UserStore
	Skills     *SkillStore
	Swaps      *SwapStore
	Ratings    *RatingStore
	Broadcasts *BroadcastStore
	Messages   *MessageStore
}

// New returns an empty store.
func New() *Store {
	return &Store{
		Users:      &UserStore{nextID: 1},
		Skills:     &SkillStore{nextID: 1},
		Swaps:      &SwapStore{nextID: 1},
		Ratings:    &RatingStore{nextID: 1},
		Broadcasts: &BroadcastStore{nextID: 1},
		Messages:   &MessageStore{nextID: 1},
	}
}
