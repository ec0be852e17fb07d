package entity

import (
	"time"

	"github.com/google/uuid"
)

// PurchasePlan is a planned future purchase the user wants card advice for.
// Either StoreID or CategoryID may be set; when both are present the store
// wins for recommendation purposes.
type PurchasePlan struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	Title       string     `json:"title"`
	AmountCents int64      `json:"amount_cents"`
	StoreID     *string    `json:"store_id"`
	CategoryID  *string    `json:"category_id"`
	TargetDate  *time.Time `json:"target_date"`
	IsCompleted bool       `json:"is_completed"`
	CreatedAt   time.Time  `json:"created_at"`
}

// PurchasePlanDetail annotates a plan with the recommendations for its
// store or category and the cash back the best card would earn on the
// planned amount.
type PurchasePlanDetail struct {
	PurchasePlan
	RecommendedCards       []*CardRecommendation `json:"recommended_cards"`
	PotentialEarningsCents int64                 `json:"potential_earnings_cents"`
}

// UserSpendingProfile captures the user's stated monthly spend in one
// merchant category. One row per (user, category); updates upsert.
type UserSpendingProfile struct {
	ID                   uuid.UUID `json:"id"`
	UserID               uuid.UUID `json:"user_id"`
	CategoryID           string    `json:"category_id"`
	MonthlySpendingCents int64     `json:"monthly_spending_cents"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// SpendingAnalysis is the per-category insight derived from a spending
// profile: which cards to use and what the best one would earn monthly.
type SpendingAnalysis struct {
	CategoryID             string                `json:"category_id"`
	CategoryName           string                `json:"category_name"`
	MonthlySpendingCents   int64                 `json:"monthly_spending_cents"`
	RecommendedCards       []*CardRecommendation `json:"recommended_cards"`
	PotentialEarningsCents int64                 `json:"potential_earnings_cents"`
}

// CardComparison is a user-saved set of cards to compare side by side.
// CardIDs preserves the order the user picked.
type CardComparison struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	CardIDs        []string  `json:"card_ids"`
	ComparisonName string    `json:"comparison_name"`
	CreatedAt      time.Time `json:"created_at"`
}

// UserPreferences stores per-user catalog filtering defaults.
type UserPreferences struct {
	ID                   uuid.UUID `json:"id"`
	UserID               uuid.UUID `json:"user_id"`
	CreditScoreRange     string    `json:"credit_score_range"`
	MaxAnnualFeeCents    int64     `json:"max_annual_fee_cents"`
	PreferredIssuers     string    `json:"preferred_issuers"`
	NotificationsEnabled bool      `json:"notifications_enabled"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// DefaultPreferences are returned for users who never saved preferences.
func DefaultPreferences(userID uuid.UUID) *UserPreferences {
	return &UserPreferences{
		UserID:               userID,
		CreditScoreRange:     "650-700",
		MaxAnnualFeeCents:    0,
		NotificationsEnabled: true,
	}
}
