// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"sort"

	"cashreap/internal/domain/entity"
	domainerrors "cashreap/internal/domain/errors"
	"cashreap/internal/domain/repository"
	"cashreap/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxRecommendations caps every recommendation list.
const maxRecommendations = 5

// recommendationService implements the RecommendationUsecase interface.
type recommendationService struct {
	cardRepo     repository.CardRepository
	categoryRepo repository.CategoryRepository
	rewardRepo   repository.RewardRepository
	storeRepo    repository.StoreRepository
}

// RecommendationServiceParams holds dependencies for RecommendationService, injected by Fx.
type RecommendationServiceParams struct {
	fx.In

	CardRepo     repository.CardRepository
	CategoryRepo repository.CategoryRepository
	RewardRepo   repository.RewardRepository
	StoreRepo    repository.StoreRepository
}

// NewRecommendationService is the constructor for recommendationService.
func NewRecommendationService(params RecommendationServiceParams) usecase.RecommendationUsecase {
	return &recommendationService{
		cardRepo:     params.CardRepo,
		categoryRepo: params.CategoryRepo,
		rewardRepo:   params.RewardRepo,
		storeRepo:    params.StoreRepo,
	}
}

// RecommendForStore resolves the best cards for the store's category.
func (s *recommendationService) RecommendForStore(ctx context.Context, storeID string) (*usecase.StoreRecommendationsOutput, error) {
	store, err := s.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, errors.Wrap(domainerrors.ErrStoreNotFound, "store lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find store")
	}

	recommendations, err := s.recommendForCategory(ctx, store.Category)
	if err != nil {
		return nil, err
	}

	return &usecase.StoreRecommendationsOutput{
		Store:           store,
		Recommendations: recommendations,
	}, nil
}

// RecommendForCategory resolves the best cards for a merchant category.
func (s *recommendationService) RecommendForCategory(ctx context.Context, categoryID string) (*usecase.CategoryRecommendationsOutput, error) {
	category, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCategoryNotFound, "category lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	recommendations, err := s.recommendForCategory(ctx, category)
	if err != nil {
		return nil, err
	}

	return &usecase.CategoryRecommendationsOutput{
		Category:        category,
		Recommendations: recommendations,
	}, nil
}

// recommendForCategory is the shared resolver. Categories with no reward
// rows fall back to the first active cards at their base rates, so the
// result is only empty when the catalog itself is.
func (s *recommendationService) recommendForCategory(ctx context.Context, category *entity.MerchantCategory) ([]*entity.CardRecommendation, error) {
	rewards, err := s.rewardRepo.FindByCategory(ctx, category.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load rewards for category")
	}

	if len(rewards) == 0 {
		return s.fallbackRecommendations(ctx)
	}

	cardIDs := make([]string, 0, len(rewards))
	for _, reward := range rewards {
		cardIDs = append(cardIDs, reward.CardID)
	}

	cards, err := s.cardRepo.FindByIDs(ctx, cardIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cards for rewards")
	}

	cardsByID := make(map[string]*entity.CreditCard, len(cards))
	for _, card := range cards {
		cardsByID[card.ID] = card
	}

	recommendations := make([]*entity.CardRecommendation, 0, len(rewards))
	for _, reward := range rewards {
		card, ok := cardsByID[reward.CardID]
		if !ok || !card.IsActive {
			continue
		}

		recommendations = append(recommendations, &entity.CardRecommendation{
			CreditCard:     *card,
			MatchedRateBP:  reward.RewardRateBP,
			CategoryMatch:  category.Name,
			IsRotating:     reward.IsRotating,
			RotationPeriod: reward.RotationPeriod,
			Description:    entity.RecommendationDescription(card, reward.RewardRateBP),
		})
	}

	sortRecommendations(recommendations)
	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}

	return recommendations, nil
}

// fallbackRecommendations returns the first active catalog cards at their
// base rates when a category has no reward data.
func (s *recommendationService) fallbackRecommendations(ctx context.Context) ([]*entity.CardRecommendation, error) {
	cards, err := s.cardRepo.ListActive(ctx, maxRecommendations)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load fallback cards")
	}

	recommendations := make([]*entity.CardRecommendation, 0, len(cards))
	for _, card := range cards {
		recommendations = append(recommendations, &entity.CardRecommendation{
			CreditCard:    *card,
			MatchedRateBP: card.BaseRewardBP,
			CategoryMatch: "none",
			Description:   entity.RecommendationDescription(card, card.BaseRewardBP),
		})
	}

	return recommendations, nil
}

// sortRecommendations orders by matched rate descending, then card name
// ascending so equal-rate cards come out deterministically.
func sortRecommendations(recommendations []*entity.CardRecommendation) {
	sort.SliceStable(recommendations, func(i, j int) bool {
		if recommendations[i].MatchedRateBP != recommendations[j].MatchedRateBP {
			return recommendations[i].MatchedRateBP > recommendations[j].MatchedRateBP
		}

		return recommendations[i].Name < recommendations[j].Name
	})
}
