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

// planService implements the PlanUsecase interface.
type planService struct {
	planRepo       repository.PurchasePlanRepository
	recommendation usecase.RecommendationUsecase
}

// PlanServiceParams holds dependencies for PlanService, injected by Fx.
type PlanServiceParams struct {
	fx.In

	PlanRepo       repository.PurchasePlanRepository
	Recommendation usecase.RecommendationUsecase
}

// NewPlanService is the constructor for planService.
func NewPlanService(params PlanServiceParams) usecase.PlanUsecase {
	return &planService{
		planRepo:       params.PlanRepo,
		recommendation: params.Recommendation,
	}
}

// ListPlans annotates each plan with card advice for its store or category
// and the cash back the best card would earn on the planned amount.
func (s *planService) ListPlans(ctx context.Context, userID uuid.UUID) ([]*entity.PurchasePlanDetail, error) {
	plans, err := s.planRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list purchase plans")
	}

	details := make([]*entity.PurchasePlanDetail, 0, len(plans))
	for _, plan := range plans {
		recommendations, err := s.planRecommendations(ctx, plan)
		if err != nil {
			return nil, err
		}

		var potential int64
		if len(recommendations) > 0 {
			potential = plan.AmountCents * int64(recommendations[0].MatchedRateBP) / 10000
		}

		details = append(details, &entity.PurchasePlanDetail{
			PurchasePlan:           *plan,
			RecommendedCards:       recommendations,
			PotentialEarningsCents: potential,
		})
	}

	return details, nil
}

// CreatePlan persists a new plan after validating its references.
func (s *planService) CreatePlan(ctx context.Context, userID uuid.UUID, input usecase.CreatePlanInput) (*entity.PurchasePlan, error) {
	if input.Title == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "plan title is required")
	}
	if input.AmountCents <= 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "plan amount must be positive")
	}

	plan := &entity.PurchasePlan{
		UserID:      userID,
		Title:       input.Title,
		AmountCents: input.AmountCents,
		StoreID:     input.StoreID,
		CategoryID:  input.CategoryID,
		TargetDate:  input.TargetDate,
	}

	if err := s.planRepo.Create(ctx, plan); err != nil {
		return nil, errors.Wrap(err, "failed to create purchase plan")
	}

	return plan, nil
}

// UpdatePlan patches a plan. Only the owner may modify it.
func (s *planService) UpdatePlan(ctx context.Context, userID, planID uuid.UUID, input usecase.UpdatePlanInput) (*entity.PurchasePlan, error) {
	plan, err := s.loadOwnedPlan(ctx, userID, planID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		plan.Title = *input.Title
	}
	if input.AmountCents != nil {
		if *input.AmountCents <= 0 {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "plan amount must be positive")
		}
		plan.AmountCents = *input.AmountCents
	}
	if input.StoreID != nil {
		plan.StoreID = input.StoreID
	}
	if input.CategoryID != nil {
		plan.CategoryID = input.CategoryID
	}
	if input.TargetDate != nil {
		plan.TargetDate = input.TargetDate
	}
	if input.IsCompleted != nil {
		plan.IsCompleted = *input.IsCompleted
	}

	if err := s.planRepo.Update(ctx, plan); err != nil {
		return nil, errors.Wrap(err, "failed to update purchase plan")
	}

	return plan, nil
}

// DeletePlan removes a plan. Only the owner may delete it.
func (s *planService) DeletePlan(ctx context.Context, userID, planID uuid.UUID) error {
	if _, err := s.loadOwnedPlan(ctx, userID, planID); err != nil {
		return err
	}

	if err := s.planRepo.Delete(ctx, planID); err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			return errors.Wrap(domainerrors.ErrPlanNotFound, "plan already removed")
		}

		return errors.Wrap(err, "failed to delete purchase plan")
	}

	return nil
}

func (s *planService) loadOwnedPlan(ctx context.Context, userID, planID uuid.UUID) (*entity.PurchasePlan, error) {
	plan, err := s.planRepo.FindByID(ctx, planID)
	if err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPlanNotFound, "plan lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find purchase plan")
	}

	if plan.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "plan belongs to another user")
	}

	return plan, nil
}

// planRecommendations resolves advice for the plan's store when set,
// otherwise its category. Plans with neither get no recommendations.
func (s *planService) planRecommendations(ctx context.Context, plan *entity.PurchasePlan) ([]*entity.CardRecommendation, error) {
	switch {
	case plan.StoreID != nil && *plan.StoreID != "":
		output, err := s.recommendation.RecommendForStore(ctx, *plan.StoreID)
		if err != nil {
			if errors.Is(err, domainerrors.ErrStoreNotFound) {
				return nil, nil
			}

			return nil, errors.Wrap(err, "failed to resolve store recommendations for plan")
		}

		return output.Recommendations, nil
	case plan.CategoryID != nil && *plan.CategoryID != "":
		output, err := s.recommendation.RecommendForCategory(ctx, *plan.CategoryID)
		if err != nil {
			if errors.Is(err, domainerrors.ErrCategoryNotFound) {
				return nil, nil
			}

			return nil, errors.Wrap(err, "failed to resolve category recommendations for plan")
		}

		return output.Recommendations, nil
	default:
		return nil, nil
	}
}
