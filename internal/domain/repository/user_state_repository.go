package repository

import (
	"context"
	"errors"

	"cashreap/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSavedCardNotFound is returned when a user has no saved row for a card.
var ErrSavedCardNotFound = errors.New("saved card not found")

// ErrPlanNotFound is returned when a purchase plan does not exist.
var ErrPlanNotFound = errors.New("purchase plan not found")

// ErrBonusTrackingNotFound is returned when a bonus tracker does not exist.
var ErrBonusTrackingNotFound = errors.New("welcome bonus tracking not found")

// ErrComparisonNotFound is returned when a card comparison does not exist.
var ErrComparisonNotFound = errors.New("card comparison not found")

// ErrDuplicateSavedCard is returned when the (user, card) unique index
// rejects a second save. Callers treat it as idempotent success.
var ErrDuplicateSavedCard = errors.New("card already saved")

// SavedCardRepository persists the user's wallet of saved cards.
type SavedCardRepository interface {
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserSavedCard, error)
	FindByUserAndCard(ctx context.Context, userID uuid.UUID, cardID string) (*entity.UserSavedCard, error)
	Create(ctx context.Context, saved *entity.UserSavedCard) error

	// Delete removes the saved row; ErrSavedCardNotFound when absent.
	Delete(ctx context.Context, userID uuid.UUID, cardID string) error
}

// SearchHistoryRepository appends and lists per-user store lookups.
type SearchHistoryRepository interface {
	Append(ctx context.Context, record *entity.UserSearchHistory) error

	// FindByUser returns the newest records first, capped at limit.
	FindByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.UserSearchHistory, error)
}

// SpendingProfileRepository persists per-category monthly spend figures.
type SpendingProfileRepository interface {
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserSpendingProfile, error)

	// Upsert inserts or updates the row keyed by (user, category).
	Upsert(ctx context.Context, profile *entity.UserSpendingProfile) error
}

// PurchasePlanRepository persists planned purchases.
type PurchasePlanRepository interface {
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PurchasePlan, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PurchasePlan, error)
	Create(ctx context.Context, plan *entity.PurchasePlan) error
	Update(ctx context.Context, plan *entity.PurchasePlan) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// BonusTrackingRepository persists welcome-bonus progress trackers.
type BonusTrackingRepository interface {
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.WelcomeBonusTracking, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.WelcomeBonusTracking, error)
	Create(ctx context.Context, tracking *entity.WelcomeBonusTracking) error
	Update(ctx context.Context, tracking *entity.WelcomeBonusTracking) error
}

// PreferencesRepository persists per-user catalog preferences.
type PreferencesRepository interface {
	// FindByUser reports a missing row as (nil, nil) so the caller can
	// substitute defaults.
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.UserPreferences, error)
	Upsert(ctx context.Context, prefs *entity.UserPreferences) error
}

// ComparisonRepository persists saved card comparisons.
type ComparisonRepository interface {
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CardComparison, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CardComparison, error)
	Create(ctx context.Context, comparison *entity.CardComparison) error
}
