package usecase

import (
	"context"
	"time"

	"cashreap/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePlanInput defines the data required to create a purchase plan.
// StoreID and CategoryID are both optional; when both are set the store's
// category drives recommendations.
type CreatePlanInput struct {
	Title       string
	AmountCents int64
	StoreID     *string
	CategoryID  *string
	TargetDate  *time.Time
}

// UpdatePlanInput patches a plan. Nil fields are left unchanged.
type UpdatePlanInput struct {
	Title       *string
	AmountCents *int64
	StoreID     *string
	CategoryID  *string
	TargetDate  *time.Time
	IsCompleted *bool
}

// PlanUsecase manages planned purchases and their card advice.
type PlanUsecase interface {
	// ListPlans annotates each plan with recommendations for its store or
	// category and the cash back the best card would earn on the amount.
	ListPlans(ctx context.Context, userID uuid.UUID) ([]*entity.PurchasePlanDetail, error)

	CreatePlan(ctx context.Context, userID uuid.UUID, input CreatePlanInput) (*entity.PurchasePlan, error)
	UpdatePlan(ctx context.Context, userID, planID uuid.UUID, input UpdatePlanInput) (*entity.PurchasePlan, error)
	DeletePlan(ctx context.Context, userID, planID uuid.UUID) error
}
