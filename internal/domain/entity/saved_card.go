package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserSavedCard is a card a user keeps in their wallet. The pair
// (UserID, CardID) is unique; saving an already-saved card is a no-op.
type UserSavedCard struct {
	ID      uuid.UUID `json:"id"`
	UserID  uuid.UUID `json:"user_id"`
	CardID  string    `json:"card_id"`
	SavedAt time.Time `json:"saved_at"`
}

// SavedCardDetail joins a saved-card row with its catalog card for list
// responses.
type SavedCardDetail struct {
	UserSavedCard
	Card *CreditCard `json:"card"`
}

// UserSearchHistory records one store lookup by a user.
type UserSearchHistory struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	StoreID    string    `json:"store_id"`
	SearchedAt time.Time `json:"searched_at"`
}
