package usecase

import (
	"context"

	"cashreap/internal/domain/entity"

	"github.com/google/uuid"
)

// UpsertSpendingProfileInput sets the user's monthly spend for a category.
type UpsertSpendingProfileInput struct {
	CategoryID           string
	MonthlySpendingCents int64
}

// SpendingUsecase manages spending profiles and the insights derived from
// them.
type SpendingUsecase interface {
	ListProfiles(ctx context.Context, userID uuid.UUID) ([]*entity.UserSpendingProfile, error)
	UpsertProfile(ctx context.Context, userID uuid.UUID, input UpsertSpendingProfileInput) (*entity.UserSpendingProfile, error)

	// Analyze recommends cards per profiled category and projects the
	// monthly cash back the best card would earn.
	Analyze(ctx context.Context, userID uuid.UUID) ([]*entity.SpendingAnalysis, error)
}

// PreferencesUsecase reads and writes per-user catalog preferences.
type PreferencesUsecase interface {
	// GetPreferences returns stored preferences, or defaults for users who
	// never saved any.
	GetPreferences(ctx context.Context, userID uuid.UUID) (*entity.UserPreferences, error)
	UpdatePreferences(ctx context.Context, prefs *entity.UserPreferences) (*entity.UserPreferences, error)
}
