package usecase

import (
	"context"

	"cashreap/internal/domain/entity"

	"github.com/google/uuid"
)

// CardWithEarnings projects a saved card's annual value against the user's
// spending profile.
type CardWithEarnings struct {
	Card                *entity.CreditCard           `json:"card"`
	AnnualEarningsCents int64                        `json:"annual_earnings_cents"`
	NetAnnualValueCents int64                        `json:"net_annual_value_cents"`
	TopCategories       []*entity.CardCategoryReward `json:"top_categories"` // Best three category rates for the card.
}

// SavedCardUsecase manages the user's wallet of saved cards.
type SavedCardUsecase interface {
	// ListSaved returns the saved cards joined with their catalog rows.
	ListSaved(ctx context.Context, userID uuid.UUID) ([]*entity.SavedCardDetail, error)

	// SaveCard is idempotent: saving an already-saved card succeeds without
	// creating a second row.
	SaveCard(ctx context.Context, userID uuid.UUID, cardID string) (*entity.UserSavedCard, error)

	// UnsaveCard removes the card from the wallet; not saved → not found.
	UnsaveCard(ctx context.Context, userID uuid.UUID, cardID string) error

	// ListEarnings projects each saved card's annual earnings from the
	// user's spending profile.
	ListEarnings(ctx context.Context, userID uuid.UUID) ([]*CardWithEarnings, error)
}

// SearchHistoryUsecase records and lists per-user store lookups.
type SearchHistoryUsecase interface {
	RecordSearch(ctx context.Context, userID uuid.UUID, storeID string) (*entity.UserSearchHistory, error)
	ListHistory(ctx context.Context, userID uuid.UUID) ([]*entity.UserSearchHistory, error)
}
