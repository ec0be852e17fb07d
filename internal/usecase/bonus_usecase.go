package usecase

import (
	"context"
	"time"

	"cashreap/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateBonusTrackingInput starts a welcome-bonus tracker for a card.
type CreateBonusTrackingInput struct {
	CardID                string
	RequiredSpendingCents int64
	TimeframeMonths       int
	StartDate             time.Time
}

// BonusUsecase tracks spending progress toward welcome bonuses.
type BonusUsecase interface {
	// ListTracking returns each tracker joined with its card and computed
	// progress figures.
	ListTracking(ctx context.Context, userID uuid.UUID) ([]*entity.WelcomeBonusProgress, error)

	CreateTracking(ctx context.Context, userID uuid.UUID, input CreateBonusTrackingInput) (*entity.WelcomeBonusTracking, error)

	// UpdateSpending sets the current spend; the tracker auto-completes
	// when it reaches the required amount.
	UpdateSpending(ctx context.Context, userID, trackingID uuid.UUID, currentSpendingCents int64) (*entity.WelcomeBonusTracking, error)
}
