package impl

import (
	"context"
	"log/slog"

	"cashreap/internal/domain/entity"
	domainerrors "cashreap/internal/domain/errors"
	"cashreap/internal/domain/repository"
	"cashreap/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// savedCardService implements the SavedCardUsecase interface.
type savedCardService struct {
	savedCardRepo repository.SavedCardRepository
	cardRepo      repository.CardRepository
	rewardRepo    repository.RewardRepository
	profileRepo   repository.SpendingProfileRepository
	logger        *slog.Logger
}

// SavedCardServiceParams holds dependencies for SavedCardService, injected by Fx.
type SavedCardServiceParams struct {
	fx.In

	SavedCardRepo repository.SavedCardRepository
	CardRepo      repository.CardRepository
	RewardRepo    repository.RewardRepository
	ProfileRepo   repository.SpendingProfileRepository
	Logger        *slog.Logger
}

// NewSavedCardService is the constructor for savedCardService.
func NewSavedCardService(params SavedCardServiceParams) usecase.SavedCardUsecase {
	return &savedCardService{
		savedCardRepo: params.SavedCardRepo,
		cardRepo:      params.CardRepo,
		rewardRepo:    params.RewardRepo,
		profileRepo:   params.ProfileRepo,
		logger:        params.Logger,
	}
}

// ListSaved returns the saved cards joined with their catalog rows.
func (s *savedCardService) ListSaved(ctx context.Context, userID uuid.UUID) ([]*entity.SavedCardDetail, error) {
	saved, err := s.savedCardRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list saved cards")
	}

	cardIDs := make([]string, 0, len(saved))
	for _, row := range saved {
		cardIDs = append(cardIDs, row.CardID)
	}

	cards, err := s.cardRepo.FindByIDs(ctx, cardIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cards for wallet")
	}

	cardsByID := make(map[string]*entity.CreditCard, len(cards))
	for _, card := range cards {
		cardsByID[card.ID] = card
	}

	details := make([]*entity.SavedCardDetail, 0, len(saved))
	for _, row := range saved {
		details = append(details, &entity.SavedCardDetail{
			UserSavedCard: *row,
			Card:          cardsByID[row.CardID],
		})
	}

	return details, nil
}

// SaveCard adds a card to the wallet. Saving an already-saved card returns
// the existing row; the unique index is the backstop against races.
func (s *savedCardService) SaveCard(ctx context.Context, userID uuid.UUID, cardID string) (*entity.UserSavedCard, error) {
	if _, err := s.cardRepo.FindByID(ctx, cardID); err != nil {
		if errors.Is(err, repository.ErrCardNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCardNotFound, "cannot save unknown card")
		}

		return nil, errors.Wrap(err, "failed to verify card")
	}

	saved := &entity.UserSavedCard{
		UserID: userID,
		CardID: cardID,
	}

	if err := s.savedCardRepo.Create(ctx, saved); err != nil {
		if errors.Is(err, repository.ErrDuplicateSavedCard) {
			existing, findErr := s.savedCardRepo.FindByUserAndCard(ctx, userID, cardID)
			if findErr != nil {
				return nil, errors.Wrap(findErr, "failed to load existing saved card")
			}
			s.logger.Debug("Card already saved", slog.Any("userID", userID), slog.String("cardID", cardID))

			return existing, nil
		}

		return nil, errors.Wrap(err, "failed to save card")
	}

	return saved, nil
}

// UnsaveCard removes the card from the wallet.
func (s *savedCardService) UnsaveCard(ctx context.Context, userID uuid.UUID, cardID string) error {
	if err := s.savedCardRepo.Delete(ctx, userID, cardID); err != nil {
		if errors.Is(err, repository.ErrSavedCardNotFound) {
			return errors.Wrap(domainerrors.ErrSavedCardNotFound, "card is not in the wallet")
		}

		return errors.Wrap(err, "failed to unsave card")
	}

	return nil
}

// ListEarnings projects each saved card's annual earnings against the
// user's spending profile, using the card's category rate where one exists
// and its base rate everywhere else.
func (s *savedCardService) ListEarnings(ctx context.Context, userID uuid.UUID) ([]*usecase.CardWithEarnings, error) {
	details, err := s.ListSaved(ctx, userID)
	if err != nil {
		return nil, err
	}

	profiles, err := s.profileRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load spending profiles")
	}

	result := make([]*usecase.CardWithEarnings, 0, len(details))
	for _, detail := range details {
		if detail.Card == nil {
			continue
		}

		rewards, err := s.rewardRepo.FindByCard(ctx, detail.Card.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load rewards for card")
		}

		rateByCategory := make(map[string]int, len(rewards))
		for _, reward := range rewards {
			rateByCategory[reward.CategoryID] = reward.RewardRateBP
		}

		var annualEarnings int64
		for _, profile := range profiles {
			rateBP, ok := rateByCategory[profile.CategoryID]
			if !ok {
				rateBP = detail.Card.BaseRewardBP
			}
			annualEarnings += profile.MonthlySpendingCents * 12 * int64(rateBP) / 10000
		}

		topCategories := rewards
		if len(topCategories) > 3 {
			topCategories = topCategories[:3]
		}

		result = append(result, &usecase.CardWithEarnings{
			Card:                detail.Card,
			AnnualEarningsCents: annualEarnings,
			NetAnnualValueCents: annualEarnings - detail.Card.AnnualFeeCents,
			TopCategories:       topCategories,
		})
	}

	return result, nil
}
