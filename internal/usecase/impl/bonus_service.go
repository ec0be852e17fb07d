package impl

import (
	"context"
	"time"

	"cashreap/internal/domain/entity"
	domainerrors "cashreap/internal/domain/errors"
	"cashreap/internal/domain/repository"
	"cashreap/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// defaultBonusTimeframeMonths applies when a tracker is created without an
// explicit timeframe; three months is the usual issuer window.
const defaultBonusTimeframeMonths = 3

// bonusService implements the BonusUsecase interface.
type bonusService struct {
	trackingRepo repository.BonusTrackingRepository
	cardRepo     repository.CardRepository
}

// BonusServiceParams holds dependencies for BonusService, injected by Fx.
type BonusServiceParams struct {
	fx.In

	TrackingRepo repository.BonusTrackingRepository
	CardRepo     repository.CardRepository
}

// NewBonusService is the constructor for bonusService.
func NewBonusService(params BonusServiceParams) usecase.BonusUsecase {
	return &bonusService{
		trackingRepo: params.TrackingRepo,
		cardRepo:     params.CardRepo,
	}
}

// ListTracking returns each tracker joined with its card and computed
// progress figures.
func (s *bonusService) ListTracking(ctx context.Context, userID uuid.UUID) ([]*entity.WelcomeBonusProgress, error) {
	trackers, err := s.trackingRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bonus tracking")
	}

	cardIDs := make([]string, 0, len(trackers))
	for _, tracker := range trackers {
		cardIDs = append(cardIDs, tracker.CardID)
	}

	cards, err := s.cardRepo.FindByIDs(ctx, cardIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cards for trackers")
	}

	cardsByID := make(map[string]*entity.CreditCard, len(cards))
	for _, card := range cards {
		cardsByID[card.ID] = card
	}

	now := time.Now()
	result := make([]*entity.WelcomeBonusProgress, 0, len(trackers))
	for _, tracker := range trackers {
		result = append(result, &entity.WelcomeBonusProgress{
			WelcomeBonusTracking: *tracker,
			Card:                 cardsByID[tracker.CardID],
			ProgressPct:          tracker.ProgressPercentage(),
			RemainingCents:       tracker.RemainingSpendingCents(),
			DaysLeft:             tracker.DaysRemaining(now),
		})
	}

	return result, nil
}

// CreateTracking starts a welcome-bonus tracker for a catalog card.
func (s *bonusService) CreateTracking(ctx context.Context, userID uuid.UUID, input usecase.CreateBonusTrackingInput) (*entity.WelcomeBonusTracking, error) {
	if input.RequiredSpendingCents <= 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "required spending must be positive")
	}

	if _, err := s.cardRepo.FindByID(ctx, input.CardID); err != nil {
		if errors.Is(err, repository.ErrCardNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCardNotFound, "cannot track bonus for unknown card")
		}

		return nil, errors.Wrap(err, "failed to verify card")
	}

	timeframe := input.TimeframeMonths
	if timeframe <= 0 {
		timeframe = defaultBonusTimeframeMonths
	}
	startDate := input.StartDate
	if startDate.IsZero() {
		startDate = time.Now()
	}

	tracking := &entity.WelcomeBonusTracking{
		UserID:                userID,
		CardID:                input.CardID,
		RequiredSpendingCents: input.RequiredSpendingCents,
		TimeframeMonths:       timeframe,
		StartDate:             startDate,
	}

	if err := s.trackingRepo.Create(ctx, tracking); err != nil {
		return nil, errors.Wrap(err, "failed to create bonus tracking")
	}

	return tracking, nil
}

// UpdateSpending sets the current spend on a tracker the user owns. The
// tracker auto-completes once spend reaches the required amount.
func (s *bonusService) UpdateSpending(ctx context.Context, userID, trackingID uuid.UUID, currentSpendingCents int64) (*entity.WelcomeBonusTracking, error) {
	if currentSpendingCents < 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "current spending cannot be negative")
	}

	tracking, err := s.trackingRepo.FindByID(ctx, trackingID)
	if err != nil {
		if errors.Is(err, repository.ErrBonusTrackingNotFound) {
			return nil, errors.Wrap(domainerrors.ErrBonusTrackingNotFound, "tracker lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find bonus tracking")
	}

	if tracking.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "tracker belongs to another user")
	}

	tracking.CurrentSpendingCents = currentSpendingCents
	tracking.IsCompleted = currentSpendingCents >= tracking.RequiredSpendingCents

	if err := s.trackingRepo.Update(ctx, tracking); err != nil {
		return nil, errors.Wrap(err, "failed to update bonus tracking")
	}

	return tracking, nil
}
