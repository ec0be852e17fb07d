// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"cashreap/internal/domain/entity"
)

// StoreRecommendationsOutput bundles the matched store with the cards that
// earn the most at it.
type StoreRecommendationsOutput struct {
	Store           *entity.StoreWithCategory    `json:"store"`
	Recommendations []*entity.CardRecommendation `json:"recommendations"`
}

// CategoryRecommendationsOutput bundles a category with its best cards.
type CategoryRecommendationsOutput struct {
	Category        *entity.MerchantCategory     `json:"category"`
	Recommendations []*entity.CardRecommendation `json:"recommendations"`
}

// RecommendationUsecase resolves the best cash-back cards for a store or a
// merchant category. Results are never empty while the catalog has active
// cards: categories with no reward rows fall back to the first cards in
// catalog order at their base rates.
type RecommendationUsecase interface {
	RecommendForStore(ctx context.Context, storeID string) (*StoreRecommendationsOutput, error)
	RecommendForCategory(ctx context.Context, categoryID string) (*CategoryRecommendationsOutput, error)
}
