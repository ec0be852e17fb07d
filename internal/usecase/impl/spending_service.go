package impl

import (
	"context"

	"cashreap/internal/domain/entity"
	domainerrors "cashreap/internal/domain/errors"
	"cashreap/internal/domain/repository"
	"cashreap/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// spendingService implements the SpendingUsecase interface.
type spendingService struct {
	profileRepo    repository.SpendingProfileRepository
	categoryRepo   repository.CategoryRepository
	recommendation usecase.RecommendationUsecase
}

// SpendingServiceParams holds dependencies for SpendingService, injected by Fx.
type SpendingServiceParams struct {
	fx.In

	ProfileRepo    repository.SpendingProfileRepository
	CategoryRepo   repository.CategoryRepository
	Recommendation usecase.RecommendationUsecase
}

// NewSpendingService is the constructor for spendingService.
func NewSpendingService(params SpendingServiceParams) usecase.SpendingUsecase {
	return &spendingService{
		profileRepo:    params.ProfileRepo,
		categoryRepo:   params.CategoryRepo,
		recommendation: params.Recommendation,
	}
}

// ListProfiles returns the user's per-category spend figures.
func (s *spendingService) ListProfiles(ctx context.Context, userID uuid.UUID) ([]*entity.UserSpendingProfile, error) {
	profiles, err := s.profileRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list spending profiles")
	}

	return profiles, nil
}

// UpsertProfile sets the monthly spend for one category.
func (s *spendingService) UpsertProfile(ctx context.Context, userID uuid.UUID, input usecase.UpsertSpendingProfileInput) (*entity.UserSpendingProfile, error) {
	if input.MonthlySpendingCents < 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "monthly spending cannot be negative")
	}

	if _, err := s.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCategoryNotFound, "cannot profile unknown category")
		}

		return nil, errors.Wrap(err, "failed to verify category")
	}

	profile := &entity.UserSpendingProfile{
		UserID:               userID,
		CategoryID:           input.CategoryID,
		MonthlySpendingCents: input.MonthlySpendingCents,
	}

	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to upsert spending profile")
	}

	return profile, nil
}

// Analyze recommends cards per profiled category and projects the monthly
// cash back the best one would earn on the stated spend.
func (s *spendingService) Analyze(ctx context.Context, userID uuid.UUID) ([]*entity.SpendingAnalysis, error) {
	profiles, err := s.profileRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load spending profiles")
	}

	analyses := make([]*entity.SpendingAnalysis, 0, len(profiles))
	for _, profile := range profiles {
		output, err := s.recommendation.RecommendForCategory(ctx, profile.CategoryID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to resolve recommendations for profile")
		}

		var potential int64
		if len(output.Recommendations) > 0 {
			best := output.Recommendations[0]
			potential = profile.MonthlySpendingCents * int64(best.MatchedRateBP) / 10000
		}

		analyses = append(analyses, &entity.SpendingAnalysis{
			CategoryID:             profile.CategoryID,
			CategoryName:           output.Category.Name,
			MonthlySpendingCents:   profile.MonthlySpendingCents,
			RecommendedCards:       output.Recommendations,
			PotentialEarningsCents: potential,
		})
	}

	return analyses, nil
}
